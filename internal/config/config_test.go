package config

import "testing"

func validConfig() Config {
	return Config{
		HTTP: HTTPConfig{Port: 8080},
		Catalog: CatalogConfig{
			BaseURL: "http://localhost:8000",
			APIKey:  "key",
		},
		Bot: BotConfig{
			Token:      "test-token",
			WebhookURL: "https://example.com/webhook",
			MiniAppURL: "https://daha-git.vercel.app/",
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingCatalogBaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.Catalog.BaseURL = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing catalog base URL")
	}
}

func TestValidate_MissingBotSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"token", func(c *Config) { c.Bot.Token = "" }},
		{"webhook_url", func(c *Config) { c.Bot.WebhookURL = "" }},
		{"mini_app_url", func(c *Config) { c.Bot.MiniAppURL = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected error for missing bot.%s", tt.name)
			}
		})
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Catalog.TimeoutSec != 30 {
		t.Errorf("expected TimeoutSec=30, got %d", cfg.Catalog.TimeoutSec)
	}
	if cfg.Catalog.DefaultLimit != 100 {
		t.Errorf("expected DefaultLimit=100, got %d", cfg.Catalog.DefaultLimit)
	}
	if cfg.Catalog.MaxLimit != 100 {
		t.Errorf("expected MaxLimit=100, got %d", cfg.Catalog.MaxLimit)
	}
}

func TestApplyDefaults_LimitCappedByMax(t *testing.T) {
	cfg := Config{Catalog: CatalogConfig{DefaultLimit: 500, MaxLimit: 100}}
	cfg.ApplyDefaults()

	if cfg.Catalog.DefaultLimit != 100 {
		t.Errorf("expected DefaultLimit capped to 100, got %d", cfg.Catalog.DefaultLimit)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:    HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Catalog: CatalogConfig{TimeoutSec: 5, DefaultLimit: 50, MaxLimit: 200},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Catalog.TimeoutSec != 5 {
		t.Errorf("expected TimeoutSec=5, got %d", cfg.Catalog.TimeoutSec)
	}
	if cfg.Catalog.DefaultLimit != 50 {
		t.Errorf("expected DefaultLimit=50, got %d", cfg.Catalog.DefaultLimit)
	}
}
