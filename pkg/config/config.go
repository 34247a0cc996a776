package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `env:", prefix=SERVER_"`
	Provider ProviderConfig `env:", prefix=PROVIDER_"`
	Viewer   ViewerConfig   `env:", prefix=VIEWER_"`
	Security SecurityConfig `env:", prefix=SECURITY_"`
	Logging  LoggingConfig  `env:", prefix=LOG_"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host         string        `env:"HOST, default=0.0.0.0"`
	Port         int           `env:"PORT, default=8080"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT, default=30s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT, default=60s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT, default=120s"`
}

// ProviderConfig holds market-data provider configuration
type ProviderConfig struct {
	// Source selects the daily-bars provider: "yahoo" or "binance".
	Source         string        `env:"SOURCE, default=yahoo"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT, default=30s"`
	BinanceAPIURL  string        `env:"BINANCE_API_URL, default=https://api.binance.com"`
}

// ViewerConfig holds the defaults and limits of the viewer surface
type ViewerConfig struct {
	DefaultSymbols string `env:"DEFAULT_SYMBOLS, default=BTC-USD,BNB-USD"`
	LookbackDays   int    `env:"LOOKBACK_DAYS, default=365"`
	MaxSymbols     int    `env:"MAX_SYMBOLS, default=20"`
	CurrencyPrefix string `env:"CURRENCY_PREFIX, default=$"`
}

// SecurityConfig holds security configuration
type SecurityConfig struct {
	CORSEnabled bool     `env:"CORS_ENABLED, default=true"`
	CORSOrigins []string `env:"CORS_ORIGINS, default=*"`
	CORSMethods []string `env:"CORS_METHODS, default=GET,OPTIONS"`
	CORSHeaders []string `env:"CORS_HEADERS, default=*"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `env:"LEVEL, default=info"`
	Format string `env:"FORMAT, default=json"`
	Output string `env:"OUTPUT, default=stdout"`
}

// Load loads configuration from environment variables using go-envconfig
func Load() (*Config, error) {
	ctx := context.Background()
	var cfg Config

	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Provider.Source == "" {
		return fmt.Errorf("provider source is required")
	}

	if c.Provider.RequestTimeout <= 0 {
		return fmt.Errorf("invalid provider request timeout: %s", c.Provider.RequestTimeout)
	}

	if c.Viewer.LookbackDays <= 0 {
		return fmt.Errorf("invalid viewer lookback days: %d", c.Viewer.LookbackDays)
	}

	if c.Viewer.MaxSymbols <= 0 {
		return fmt.Errorf("invalid viewer max symbols: %d", c.Viewer.MaxSymbols)
	}

	return nil
}

// GetServerAddr returns server address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
