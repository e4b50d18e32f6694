package config

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr            = ":8080"
	defaultBaseURL         = "http://localhost:8080"
	defaultPageTTL         = 30 * time.Minute
	defaultSweepInterval   = time.Minute
	defaultActionRateLimit = 20.0
)

// Provider exposes the configuration values the application reads.
type Provider interface {
	GetAddr() string
	GetBaseURL() string
	GetPageTTL() time.Duration
	GetSweepInterval() time.Duration
	GetActionRateLimit() float64
	GetContentPath() string
	GetStaticDir() string
}

// Config holds all configuration for the application.
type Config struct {
	Addr            string
	BaseURL         string
	PageTTL         time.Duration
	SweepInterval   time.Duration
	ActionRateLimit float64
	ContentPath     string
	StaticDir       string
}

// New loads configuration from a .env file, if present, and the environment.
// Malformed values fall back to their defaults with a warning.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	return &Config{
		Addr:            getString("APP_ADDR", defaultAddr),
		BaseURL:         getString("APP_BASE_URL", defaultBaseURL),
		PageTTL:         getDuration("PAGE_TTL", defaultPageTTL),
		SweepInterval:   getDuration("PAGE_SWEEP_INTERVAL", defaultSweepInterval),
		ActionRateLimit: getFloat("ACTION_RATE_LIMIT", defaultActionRateLimit),
		ContentPath:     os.Getenv("CONTENT_PATH"),
		StaticDir:       os.Getenv("STATIC_DIR"),
	}
}

func (c *Config) GetAddr() string                 { return c.Addr }
func (c *Config) GetBaseURL() string              { return c.BaseURL }
func (c *Config) GetPageTTL() time.Duration       { return c.PageTTL }
func (c *Config) GetSweepInterval() time.Duration { return c.SweepInterval }
func (c *Config) GetActionRateLimit() float64     { return c.ActionRateLimit }
func (c *Config) GetContentPath() string          { return c.ContentPath }
func (c *Config) GetStaticDir() string            { return c.StaticDir }

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("Invalid duration in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		slog.Warn("Invalid number in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}
