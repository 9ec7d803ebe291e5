package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Log        LogConfig
	Monitor    MonitorConfig
	Broadcast  BroadcastConfig
	Validation ValidationConfig
	RateLimit  RateLimitConfig
	Security   SecurityConfig
	CORS       CORSConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:""`
	Port           int    `env:"HEALTH_PORT" envDefault:"3002"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"1024"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type MonitorConfig struct {
	Version        string `env:"MONITOR_VERSION" envDefault:"3.0.0"`
	AlertCapacity  int    `env:"ALERT_CAPACITY" envDefault:"50"`
	SnapshotAlerts int    `env:"SNAPSHOT_ALERTS" envDefault:"10"`
}

type BroadcastConfig struct {
	Path        string        `env:"BROADCAST_PATH" envDefault:"/ws"`
	Interval    time.Duration `env:"BROADCAST_INTERVAL" envDefault:"5s"`
	SendTimeout time.Duration `env:"BROADCAST_SEND_TIMEOUT" envDefault:"2s"`
	QueueSize   int           `env:"BROADCAST_QUEUE_SIZE" envDefault:"16"`
}

type ValidationConfig struct {
	MaxRequestBodySize string `env:"MAX_REQUEST_BODY_SIZE" envDefault:"64K"`
}

type RateLimitConfig struct {
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"50"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"100"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type SecurityConfig struct {
	StrikeThreshold  int           `env:"SECURITY_STRIKE_THRESHOLD" envDefault:"20"`
	StrikeWindow     time.Duration `env:"SECURITY_STRIKE_WINDOW" envDefault:"10m"`
	EnforceBlocklist bool          `env:"SECURITY_ENFORCE_BLOCKLIST" envDefault:"true"`
	StrikeCachePow2  int           `env:"SECURITY_STRIKE_CACHE_POW2" envDefault:"20"`
}

type CORSConfig struct {
	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
}

// DashboardConfig configures the dashboard client binary.
type DashboardConfig struct {
	MonitorURL   string        `env:"MONITOR_URL" envDefault:"http://localhost:3002"`
	WebSocketURL string        `env:"MONITOR_WS_URL" envDefault:"ws://localhost:3002/ws"`
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"5s"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if cfg.Monitor.AlertCapacity < 1 {
		return nil, fmt.Errorf("ALERT_CAPACITY must be positive, got %d", cfg.Monitor.AlertCapacity)
	}
	if cfg.Monitor.SnapshotAlerts < 0 {
		return nil, fmt.Errorf("SNAPSHOT_ALERTS must not be negative, got %d", cfg.Monitor.SnapshotAlerts)
	}
	if cfg.Broadcast.Interval <= 0 {
		return nil, fmt.Errorf("BROADCAST_INTERVAL must be positive, got %s", cfg.Broadcast.Interval)
	}
	return &cfg, nil
}

func LoadDashboard() (*DashboardConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	var cfg DashboardConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadDotEnv preloads .env when present. Variables already set in the
// environment win.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load .env: %w", err)
}
