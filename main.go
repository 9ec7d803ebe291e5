package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"

	"healthmonitor/internal/broadcast"
	"healthmonitor/internal/cache"
	"healthmonitor/internal/config"
	"healthmonitor/internal/handler"
	"healthmonitor/internal/idgen"
	"healthmonitor/internal/metrics"
	custommiddleware "healthmonitor/internal/middleware"
	"healthmonitor/internal/monitor"
	"healthmonitor/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if err := run(ctx, logger, level); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, level *slog.LevelVar) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	ids, err := idgen.New()
	if err != nil {
		return fmt.Errorf("failed to create id generator: %w", err)
	}

	strikes, err := cache.New(cfg.Security.StrikeCachePow2, cfg.Security.StrikeWindow, logger)
	if err != nil {
		return fmt.Errorf("failed to create strike cache: %w", err)
	}
	defer strikes.Close()

	recorder := metrics.NewRecorder()

	store := monitor.NewStore(
		monitor.WithMemoryReader(monitor.NewRuntimeMemory(logger)),
		monitor.WithAlertCapacity(cfg.Monitor.AlertCapacity),
		monitor.WithSnapshotAlerts(cfg.Monitor.SnapshotAlerts),
	)

	hub := broadcast.New(store, ids, recorder, broadcast.Config{
		QueueSize:   cfg.Broadcast.QueueSize,
		SendTimeout: cfg.Broadcast.SendTimeout,
	}, logger)
	defer hub.Close()

	publisher := broadcast.NewPeriodicPublisher(store, hub, cfg.Broadcast.Interval, logger)

	svc := service.NewMonitorService(store, hub, strikes, service.Config{
		Version:         cfg.Monitor.Version,
		StrikeThreshold: cfg.Security.StrikeThreshold,
	}, logger)
	h := handler.New(svc, hub, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Pre(custommiddleware.RecordRequest(svc))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.CORS.AllowOrigins}))
	e.Use(custommiddleware.Metrics(recorder, svc))
	if cfg.Security.EnforceBlocklist {
		e.Use(custommiddleware.Blocklist(svc, logger))
	}
	e.Use(custommiddleware.RateLimit(&cfg.RateLimit, svc, logger))

	h.Register(e, cfg.Broadcast.Path)
	e.GET("/metrics/prometheus", echo.WrapHandler(recorder.Handler()))

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting health monitor",
		slog.String("addr", httpAddr),
		slog.String("channel", cfg.Broadcast.Path),
		slog.String("version", cfg.Monitor.Version),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	httpListener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		httpListener = netutil.LimitListener(httpListener, cfg.Server.MaxConnections)
	}

	// Upgraded channel connections have their deadlines cleared by the
	// WebSocket upgrade, so these timeouts only bound plain HTTP exchanges.
	httpServer := &http.Server{
		Handler:        e,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return publisher.Run(gctx)
	})

	g.Go(func() error {
		collectInfraMetrics(gctx, recorder, strikes)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down health monitor")

		hub.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		return nil
	})

	svc.Bootstrap()

	return g.Wait()
}

func collectInfraMetrics(ctx context.Context, recorder *metrics.Recorder, strikes *cache.StrikeCache) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			hits, misses, ratio := strikes.Stats()
			recorder.RecordInfra(metrics.InfraMetric{
				Time:          time.Now(),
				CacheHits:     int64(hits),
				CacheMisses:   int64(misses),
				CacheHitRatio: ratio,
			})
		}
	}
}
