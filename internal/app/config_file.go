package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested sections
// map naturally to flags and env vars.
type FileConfig struct {
	Webhook struct {
		// Timeout is a duration string such as "30s" or "500ms".
		URL        string `yaml:"url" json:"url"`
		Timeout    string `yaml:"timeout" json:"timeout"`
		MaxRetries int    `yaml:"maxRetries" json:"maxRetries"`
		UA         string `yaml:"ua" json:"ua"`
	} `yaml:"webhook" json:"webhook"`

	Answers struct {
		File string `yaml:"file" json:"file"`
	} `yaml:"answers" json:"answers"`

	LLM struct {
		BaseURL string `yaml:"base" json:"base"`
		Model   string `yaml:"model" json:"model"`
		APIKey  string `yaml:"key" json:"key"`
	} `yaml:"llm" json:"llm"`

	Locale    string `yaml:"locale" json:"locale"`
	OutputPDF string `yaml:"outputPDF" json:"outputPDF"`

	Serve struct {
		Addr string `yaml:"addr" json:"addr"`
	} `yaml:"serve" json:"serve"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset/zero in cfg. Flags should already have been parsed; this
// lets file config supply defaults while preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}

	if cfg.WebhookURL == "" && fc.Webhook.URL != "" {
		cfg.WebhookURL = fc.Webhook.URL
	}
	if cfg.Timeout == 0 && fc.Webhook.Timeout != "" {
		if d, err := time.ParseDuration(fc.Webhook.Timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if cfg.MaxRetries == 0 && fc.Webhook.MaxRetries > 0 {
		cfg.MaxRetries = fc.Webhook.MaxRetries
	}
	if cfg.UserAgent == "" && fc.Webhook.UA != "" {
		cfg.UserAgent = fc.Webhook.UA
	}

	if cfg.AnswersFile == "" && fc.Answers.File != "" {
		cfg.AnswersFile = fc.Answers.File
	}

	if cfg.LLMBaseURL == "" && fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" && fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}

	if cfg.Locale == "" && fc.Locale != "" {
		cfg.Locale = fc.Locale
	}
	if cfg.OutputPDF == "" && fc.OutputPDF != "" {
		cfg.OutputPDF = fc.OutputPDF
	}
	if cfg.ServeAddr == "" && fc.Serve.Addr != "" {
		cfg.ServeAddr = fc.Serve.Addr
	}

	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
