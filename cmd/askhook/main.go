package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/askhookio/askhook/internal/app"
	"github.com/askhookio/askhook/internal/serve"
	"github.com/askhookio/askhook/internal/ui"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// .env is optional; explicit env always wins over it.
	_ = godotenv.Load()

	var (
		configPath  string
		webhookURL  string
		timeout     time.Duration
		maxRetries  int
		userAgent   string
		answersFile string
		llmBaseURL  string
		llmModel    string
		llmKey      string
		locale      string
		outputPDF   string
		serveAddr   string
		query       string
		verbose     bool
	)

	flag.StringVar(&configPath, "config", "", "Path to YAML or JSON config file")
	flag.StringVar(&webhookURL, "webhook.url", os.Getenv("WEBHOOK_URL"), "Webhook endpoint that answers queries")
	flag.DurationVar(&timeout, "webhook.timeout", 0, "Per-request timeout (default 30s)")
	flag.IntVar(&maxRetries, "webhook.maxRetries", 0, "Retries for timeouts and transport failures (0 disables)")
	flag.StringVar(&userAgent, "webhook.ua", "askhook/1.0 (+https://github.com/askhookio/askhook)", "Custom User-Agent for webhook requests")
	flag.StringVar(&answersFile, "answers.file", os.Getenv("ANSWERS_FILE"), "Path to JSON file of canned answers for offline use")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL for the direct provider")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name for the direct provider")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for OpenAI-compatible server")
	flag.StringVar(&locale, "locale", os.Getenv("LOCALE"), "Locale for number and time formatting, e.g. 'en' or 'fi'")
	flag.StringVar(&outputPDF, "output.pdf", "", "Write the answer to this PDF path after a successful query")
	flag.StringVar(&serveAddr, "serve", "", "Serve the search widget on this address instead of running a query")
	flag.StringVar(&query, "q", "", "Run a single query and exit; omit for the interactive prompt")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		WebhookURL:  webhookURL,
		Timeout:     timeout,
		MaxRetries:  maxRetries,
		UserAgent:   userAgent,
		AnswersFile: answersFile,
		LLMBaseURL:  llmBaseURL,
		LLMModel:    llmModel,
		LLMAPIKey:   llmKey,
		Locale:      locale,
		OutputPDF:   outputPDF,
		ServeAddr:   serveAddr,
		Query:       query,
		Verbose:     verbose,
	}

	// Precedence: flags, then env, then config file. Env fills unset fields
	// first so file values never shadow the environment.
	app.ApplyEnvToConfig(&cfg)
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()

	if cfg.ServeAddr != "" {
		if err := app.ValidateConfig(cfg); err != nil {
			return err
		}
		answerer, err := app.NewAnswerer(cfg)
		if err != nil {
			return err
		}
		srv := &serve.Server{
			Addr:      cfg.ServeAddr,
			Answerer:  answerer,
			Endpoint:  cfg.WebhookURL,
			Formatter: ui.NewFormatter(cfg.Locale),
			Log:       log.Logger,
		}
		return srv.ListenAndServe()
	}

	a, err := app.New(cfg, os.Stdin, os.Stdout)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(ctx)
}
