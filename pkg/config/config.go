package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App     AppConfig
	Feed    FeedConfig
	Advisor AdvisorConfig
	CORS    CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"VENDASCOPE_APP_ENV" default:"dev"`
	Port         string `envconfig:"VENDASCOPE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"VENDASCOPE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"VENDASCOPE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// FeedConfig points at the spreadsheet CSV export the dashboard ingests.
// When the URL is empty, the service runs entirely off the embedded
// fallback dataset.
type FeedConfig struct {
	URL             string        `envconfig:"VENDASCOPE_FEED_URL"`
	FetchTimeout    time.Duration `envconfig:"VENDASCOPE_FEED_FETCH_TIMEOUT" default:"10s"`
	RefreshInterval time.Duration `envconfig:"VENDASCOPE_FEED_REFRESH_INTERVAL" default:"60s"`
	MaxAttempts     int           `envconfig:"VENDASCOPE_FEED_MAX_ATTEMPTS" default:"3"`
}

// AdvisorConfig carries the budget used when a suggestions request does
// not name one.
type AdvisorConfig struct {
	DefaultOverallBudget decimal.Decimal `envconfig:"VENDASCOPE_ADVISOR_DEFAULT_BUDGET" default:"10000"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"VENDASCOPE_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
