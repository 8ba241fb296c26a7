package app

import (
	"errors"
	"strings"
	"time"
)

// Config holds runtime configuration for the application.
type Config struct {
	// Webhook
	WebhookURL string
	Timeout    time.Duration
	MaxRetries int
	UserAgent  string

	// Offline answers
	AnswersFile string

	// Direct LLM fallback, used when no webhook endpoint is configured
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	// Presentation
	Locale    string
	OutputPDF string

	// Modes
	Query     string
	ServeAddr string

	// Behavior
	Verbose bool
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if trim(cfg.WebhookURL) == "" && trim(cfg.AnswersFile) == "" && trim(cfg.LLMModel) == "" {
		return errors.New("config: webhook.url is required (or set WEBHOOK_URL, or configure answers.file / llm.model)")
	}
	if cfg.Timeout < 0 {
		return errors.New("config: negative timeout is not allowed")
	}
	if cfg.MaxRetries < 0 {
		return errors.New("config: negative retry count is not allowed")
	}
	return nil
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
