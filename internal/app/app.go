package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/askhookio/askhook/internal/provider"
	"github.com/askhookio/askhook/internal/ui"
	"github.com/askhookio/askhook/internal/webhook"
)

// ErrQueryFailed signals that the final display state of a one-shot query was
// Error. The failure itself has already been rendered to the user.
var ErrQueryFailed = errors.New("query failed")

// App wires the configured answer provider to a terminal presentation.
type App struct {
	cfg  Config
	view *ui.TerminalView
	ctrl *ui.Controller
	in   io.Reader
	out  io.Writer
}

// New validates cfg and assembles the provider, view and controller.
func New(cfg Config, in io.Reader, out io.Writer) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	answerer, err := NewAnswerer(cfg)
	if err != nil {
		return nil, err
	}

	view := ui.NewTerminalView(out, ui.NewFormatter(cfg.Locale))
	ctrl := ui.NewController(view, answerer, cfg.WebhookURL, log.Logger)
	return &App{cfg: cfg, view: view, ctrl: ctrl, in: in, out: out}, nil
}

// NewAnswerer selects the answer provider for cfg: canned answers file first,
// then the webhook client, then the direct LLM fallback.
func NewAnswerer(cfg Config) (provider.Answerer, error) {
	switch {
	case trim(cfg.AnswersFile) != "":
		return &provider.FileProvider{Path: cfg.AnswersFile}, nil
	case trim(cfg.WebhookURL) != "":
		c := webhook.New(webhook.Config{
			Endpoint:   cfg.WebhookURL,
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
			UserAgent:  cfg.UserAgent,
		})
		c.HTTPClient = newWebhookHTTPClient()
		return c, nil
	case trim(cfg.LLMModel) != "":
		return &provider.LLMProvider{
			Client: provider.NewOpenAIClient(cfg.LLMBaseURL, cfg.LLMAPIKey),
			Model:  cfg.LLMModel,
		}, nil
	}
	return nil, errors.New("no answer provider configured")
}

// Run executes a single query when one is configured, otherwise enters the
// interactive prompt loop.
func (a *App) Run(ctx context.Context) error {
	if trim(a.cfg.Query) != "" {
		return a.Ask(ctx, a.cfg.Query)
	}
	return a.runInteractive(ctx)
}

// Ask runs one full submit lifecycle and, on success, exports the result to
// PDF when configured.
func (a *App) Ask(ctx context.Context, query string) error {
	a.view.SetQuery(query)
	state := a.ctrl.Submit(ctx)
	if state == ui.StateError {
		return ErrQueryFailed
	}
	if state == ui.StateResult && trim(a.cfg.OutputPDF) != "" {
		res := a.ctrl.Result()
		if res != nil {
			if err := writeResultPDF(strings.TrimSpace(query), res, a.cfg.OutputPDF); err != nil {
				return fmt.Errorf("write pdf: %w", err)
			}
			log.Info().Str("path", a.cfg.OutputPDF).Msg("saved answer PDF")
		}
	}
	return nil
}

// runInteractive reads queries line by line. A trailing backslash continues
// the query on the next line; "exit" or "quit" (or EOF) ends the session.
// Failed queries render their error and the loop continues.
func (a *App) runInteractive(ctx context.Context) error {
	scanner := bufio.NewScanner(a.in)
	var pending []string
	fmt.Fprint(a.out, "? ")
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasSuffix(line, "\\") {
			pending = append(pending, strings.TrimSuffix(line, "\\"))
			fmt.Fprint(a.out, "> ")
			continue
		}
		pending = append(pending, line)
		query := strings.Join(pending, "\n")
		pending = pending[:0]

		switch strings.TrimSpace(query) {
		case "exit", "quit":
			return nil
		}
		_ = a.Ask(ctx, query)
		fmt.Fprint(a.out, "? ")
	}
	return scanner.Err()
}
