package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.WebhookURL == "" {
		cfg.WebhookURL = os.Getenv("WEBHOOK_URL")
	}
	if cfg.Timeout == 0 {
		if s := os.Getenv("WEBHOOK_TIMEOUT"); s != "" {
			if d, err := time.ParseDuration(s); err == nil {
				cfg.Timeout = d
			}
		}
	}
	if cfg.MaxRetries == 0 {
		if s := os.Getenv("WEBHOOK_MAX_RETRIES"); s != "" {
			if n, err := strconv.Atoi(s); err == nil && n > 0 {
				cfg.MaxRetries = n
			}
		}
	}

	if cfg.AnswersFile == "" {
		cfg.AnswersFile = os.Getenv("ANSWERS_FILE")
	}

	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = os.Getenv("LLM_BASE_URL")
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = os.Getenv("LLM_MODEL")
	}
	if cfg.LLMAPIKey == "" {
		cfg.LLMAPIKey = os.Getenv("LLM_API_KEY")
	}

	if cfg.Locale == "" {
		cfg.Locale = os.Getenv("LOCALE")
	}
	if cfg.OutputPDF == "" {
		cfg.OutputPDF = os.Getenv("OUTPUT_PDF")
	}
	if cfg.ServeAddr == "" {
		cfg.ServeAddr = os.Getenv("SERVE_ADDR")
	}

	setBool(&cfg.Verbose, "VERBOSE", false)
}

// ApplyEnvOverrides forcefully overrides cfg fields when the corresponding
// env vars are set. Lets env take precedence over a config file while flags
// remain highest precedence.
func ApplyEnvOverrides(cfg *Config) {
	if cfg == nil {
		return
	}

	if v := os.Getenv("WEBHOOK_URL"); v != "" {
		cfg.WebhookURL = v
	}
	if s := os.Getenv("WEBHOOK_TIMEOUT"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			cfg.Timeout = d
		}
	}
	if s := os.Getenv("WEBHOOK_MAX_RETRIES"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	if v := os.Getenv("ANSWERS_FILE"); v != "" {
		cfg.AnswersFile = v
	}

	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLMBaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLMModel = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLMAPIKey = v
	}

	if v := os.Getenv("LOCALE"); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv("OUTPUT_PDF"); v != "" {
		cfg.OutputPDF = v
	}
	if v := os.Getenv("SERVE_ADDR"); v != "" {
		cfg.ServeAddr = v
	}

	setBool(&cfg.Verbose, "VERBOSE", true)
}

// setBool applies a truthy/falsey env var to dst. When override is false a
// value already set to true is kept and only truthy values apply.
func setBool(dst *bool, envKey string, override bool) {
	s := strings.ToLower(strings.TrimSpace(os.Getenv(envKey)))
	if s == "" {
		return
	}
	switch s {
	case "1", "true", "yes", "on":
		*dst = true
	case "0", "false", "no", "off":
		if override {
			*dst = false
		}
	}
}
