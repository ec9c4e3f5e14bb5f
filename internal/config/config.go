// Package config loads per-service settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Transport names accepted by TRANSPORT and CLICK_TRANSPORT.
const (
	TransportHTTP = "http"
	TransportDapr = "dapr"
	TransportNATS = "nats"
)

// Common holds settings every service reads.
type Common struct {
	Port           string        `mapstructure:"port"`
	LogFormat      string        `mapstructure:"log_format"`
	LogLevel       string        `mapstructure:"log_level"`
	MetricsEnabled bool          `mapstructure:"metrics_enabled"`
	PeerTimeout    time.Duration `mapstructure:"peer_timeout"`
	CacheTTL       time.Duration `mapstructure:"cache_ttl"`
	CacheDriver    string        `mapstructure:"cache_driver"`
	RedisAddr      string        `mapstructure:"redis_addr"`
	RedisPassword  string        `mapstructure:"redis_password"`
	RedisDB        int           `mapstructure:"redis_db"`
	Transport      string        `mapstructure:"transport"`
	NATSURL        string        `mapstructure:"nats_url"`
}

// Creation configures cmd/creation-service.
type Creation struct {
	Common              `mapstructure:",squash"`
	BaseURL             string `mapstructure:"base_url"`
	StoreDriver         string `mapstructure:"store_driver"`
	DatabasePath        string `mapstructure:"database_path"`
	DatabaseURL         string `mapstructure:"database_url"`
	RateLimit           int    `mapstructure:"rate_limit"`
	AnalyticsServiceURL string `mapstructure:"analytics_service_url"`
}

// Redirect configures cmd/redirect-service.
type Redirect struct {
	Common              `mapstructure:",squash"`
	CreationServiceURL  string `mapstructure:"creation_service_url"`
	AnalyticsServiceURL string `mapstructure:"analytics_service_url"`
	RedirectStatus      int    `mapstructure:"redirect_status"`
	LocalStorePath      string `mapstructure:"local_store_path"`
	ClickQueueSize      int    `mapstructure:"click_queue_size"`
	ClickWorkers        int    `mapstructure:"click_workers"`
	ClickTransport      string `mapstructure:"click_transport"`
}

// Analytics configures cmd/analytics-service.
type Analytics struct {
	Common             `mapstructure:",squash"`
	DatabasePath       string `mapstructure:"database_path"`
	CreationServiceURL string `mapstructure:"creation_service_url"`
	GeoIPDBPath        string `mapstructure:"geoip_db_path"`
}

func newViper(port string) (*viper.Viper, error) {
	// Local .env for development, ignored when missing.
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", port)
	v.SetDefault("log_format", "console")
	v.SetDefault("log_level", "")
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("peer_timeout", 2*time.Second)
	v.SetDefault("cache_ttl", time.Hour)
	v.SetDefault("cache_driver", "memory")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("transport", TransportHTTP)
	v.SetDefault("nats_url", "")
	return v, nil
}

func unmarshal(v *viper.Viper, out interface{}) error {
	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

func (c Common) validate() error {
	switch c.CacheDriver {
	case "memory", "redis":
	default:
		return fmt.Errorf("CACHE_DRIVER must be memory or redis, got %q", c.CacheDriver)
	}
	switch c.Transport {
	case TransportHTTP, TransportDapr:
	case TransportNATS:
		if c.NATSURL == "" {
			return fmt.Errorf("NATS_URL is required when TRANSPORT=nats")
		}
	default:
		return fmt.Errorf("TRANSPORT must be http, dapr or nats, got %q", c.Transport)
	}
	if c.PeerTimeout <= 0 {
		return fmt.Errorf("PEER_TIMEOUT must be positive")
	}
	return nil
}

// LoadCreation reads the Creation Service configuration.
func LoadCreation() (*Creation, error) {
	v, err := newViper("8080")
	if err != nil {
		return nil, err
	}
	v.SetDefault("base_url", "http://localhost:8081")
	v.SetDefault("store_driver", "sqlite")
	v.SetDefault("database_path", "data/shortlink.db")
	v.SetDefault("database_url", "")
	v.SetDefault("rate_limit", 100)
	v.SetDefault("analytics_service_url", "http://localhost:8082")

	var cfg Creation
	if err := unmarshal(v, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	switch cfg.StoreDriver {
	case "sqlite":
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=postgres")
		}
	default:
		return nil, fmt.Errorf("STORE_DRIVER must be sqlite or postgres, got %q", cfg.StoreDriver)
	}
	if cfg.RateLimit <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT must be positive, got %d", cfg.RateLimit)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &cfg, nil
}

// LoadRedirect reads the Redirection Service configuration.
func LoadRedirect() (*Redirect, error) {
	v, err := newViper("8081")
	if err != nil {
		return nil, err
	}
	v.SetDefault("creation_service_url", "http://localhost:8080")
	v.SetDefault("analytics_service_url", "http://localhost:8082")
	v.SetDefault("redirect_status", 302)
	v.SetDefault("local_store_path", "")
	v.SetDefault("click_queue_size", 10000)
	v.SetDefault("click_workers", 4)
	v.SetDefault("click_transport", TransportHTTP)

	var cfg Redirect
	if err := unmarshal(v, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.RedirectStatus != 301 && cfg.RedirectStatus != 302 {
		return nil, fmt.Errorf("REDIRECT_STATUS must be 301 or 302, got %d", cfg.RedirectStatus)
	}
	switch cfg.ClickTransport {
	case TransportHTTP, TransportDapr:
	case TransportNATS:
		if cfg.NATSURL == "" {
			return nil, fmt.Errorf("NATS_URL is required when CLICK_TRANSPORT=nats")
		}
	default:
		return nil, fmt.Errorf("CLICK_TRANSPORT must be http, dapr or nats, got %q", cfg.ClickTransport)
	}
	return &cfg, nil
}

// LoadAnalytics reads the Analytics Service configuration.
func LoadAnalytics() (*Analytics, error) {
	v, err := newViper("8082")
	if err != nil {
		return nil, err
	}
	v.SetDefault("database_path", "data/analytics.db")
	v.SetDefault("creation_service_url", "http://localhost:8080")
	v.SetDefault("geoip_db_path", "")

	var cfg Analytics
	if err := unmarshal(v, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
