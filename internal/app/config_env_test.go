package app

import (
	"testing"
	"time"
)

func TestApplyEnvToConfig_FillsUnsetOnly(t *testing.T) {
	t.Setenv("WEBHOOK_URL", "https://env.example/ask")
	t.Setenv("WEBHOOK_TIMEOUT", "15s")
	t.Setenv("LOCALE", "fi")

	cfg := Config{Locale: "en"}
	ApplyEnvToConfig(&cfg)

	if cfg.WebhookURL != "https://env.example/ask" {
		t.Fatalf("url = %q", cfg.WebhookURL)
	}
	if cfg.Timeout != 15*time.Second {
		t.Fatalf("timeout = %v", cfg.Timeout)
	}
	if cfg.Locale != "en" {
		t.Fatalf("explicit value must be preserved, got %q", cfg.Locale)
	}
}

func TestApplyEnvOverrides_EnvWins(t *testing.T) {
	t.Setenv("WEBHOOK_URL", "https://env.example/ask")
	t.Setenv("VERBOSE", "false")

	cfg := Config{WebhookURL: "https://file.example/ask", Verbose: true}
	ApplyEnvOverrides(&cfg)

	if cfg.WebhookURL != "https://env.example/ask" {
		t.Fatalf("env should override the file value, got %q", cfg.WebhookURL)
	}
	if cfg.Verbose {
		t.Fatal("falsey env should switch verbose off in override mode")
	}
}

func TestApplyEnvToConfig_InvalidDurationIgnored(t *testing.T) {
	t.Setenv("WEBHOOK_TIMEOUT", "soon")
	cfg := Config{}
	ApplyEnvToConfig(&cfg)
	if cfg.Timeout != 0 {
		t.Fatalf("invalid duration must be ignored, got %v", cfg.Timeout)
	}
}
