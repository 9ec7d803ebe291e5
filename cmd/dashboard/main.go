package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"healthmonitor/internal/client"
	"healthmonitor/internal/config"
	"healthmonitor/internal/domain"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if err := run(ctx, logger, level); err != nil {
		logger.Error("dashboard failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, level *slog.LevelVar) error {
	cfg, err := config.LoadDashboard()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	view := client.New(
		client.NewHTTPFetcher(cfg.MonitorURL, cfg.FetchTimeout),
		logger,
		client.WithFetchTimeout(cfg.FetchTimeout),
		client.WithAlertHandler(func(a domain.Alert) {
			logger.Info("alert",
				slog.String("type", a.Type),
				slog.String("severity", string(a.Severity)),
				slog.String("message", a.Message),
				slog.Time("timestamp", a.Timestamp))
		}),
	)

	logger.Info("connecting to health monitor", slog.String("url", cfg.WebSocketURL))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		view.Run(gctx, client.NewWebSocketDialer(cfg.WebSocketURL, cfg.FetchTimeout))
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-view.Updates():
				render(logger, view)
			}
		}
	})

	return g.Wait()
}

func render(logger *slog.Logger, s *client.Sync) {
	attrs := []any{
		slog.String("state", s.State().String()),
		slog.Bool("connected", s.Connected()),
	}
	if snap, ok := s.Snapshot(); ok {
		attrs = append(attrs,
			slog.Int64("uptime", snap.Uptime),
			slog.Uint64("requests", snap.Requests),
			slog.Uint64("errors", snap.Errors),
			slog.Uint64("heap_used_mb", snap.Memory.Used),
			slog.Int("blocked_ips", len(snap.Security.BlockedIPs)),
			slog.Int("alerts", len(snap.Alerts)),
		)
	}
	logger.Info("dashboard update", attrs...)
}
