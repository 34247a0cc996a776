package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
		Provider: ProviderConfig{
			Source:         "yahoo",
			RequestTimeout: 30 * time.Second,
		},
		Viewer: ViewerConfig{
			DefaultSymbols: "BTC-USD",
			LookbackDays:   365,
			MaxSymbols:     20,
		},
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "invalid server port",
		},
		{
			name:    "missing provider source",
			mutate:  func(c *Config) { c.Provider.Source = "" },
			wantErr: "provider source is required",
		},
		{
			name:    "zero request timeout",
			mutate:  func(c *Config) { c.Provider.RequestTimeout = 0 },
			wantErr: "invalid provider request timeout",
		},
		{
			name:    "zero lookback",
			mutate:  func(c *Config) { c.Viewer.LookbackDays = 0 },
			wantErr: "invalid viewer lookback days",
		},
		{
			name:    "zero max symbols",
			mutate:  func(c *Config) { c.Viewer.MaxSymbols = 0 },
			wantErr: "invalid viewer max symbols",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load defaults: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Provider.Source != "yahoo" {
		t.Errorf("provider source = %q, want yahoo", cfg.Provider.Source)
	}
	if cfg.Viewer.DefaultSymbols != "BTC-USD,BNB-USD" {
		t.Errorf("default symbols = %q", cfg.Viewer.DefaultSymbols)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("PROVIDER_SOURCE", "binance")
	t.Setenv("VIEWER_MAX_SYMBOLS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Provider.Source != "binance" {
		t.Errorf("provider source = %q, want binance", cfg.Provider.Source)
	}
	if cfg.Viewer.MaxSymbols != 5 {
		t.Errorf("max symbols = %d, want 5", cfg.Viewer.MaxSymbols)
	}
}

func TestGetServerAddr(t *testing.T) {
	cfg := validConfig()
	if got := cfg.GetServerAddr(); got != "0.0.0.0:8080" {
		t.Errorf("addr = %q, want 0.0.0.0:8080", got)
	}
}
