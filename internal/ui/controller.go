package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/askhookio/askhook/internal/answer"
	"github.com/askhookio/askhook/internal/provider"
	"github.com/askhookio/askhook/internal/webhook"
)

const (
	submitLabelReady   = "Search"
	submitLabelLoading = "Searching..."

	emptyQueryNotice = "Please enter a question first."

	// revealDelay decouples the scroll-into-view side effect from the state
	// transition itself.
	revealDelay = 100 * time.Millisecond
)

// Controller owns the four-state display lifecycle around a single in-flight
// query. Not safe for concurrent Submit calls; the disabled submit control is
// the only concurrency guard, as in the widget it models.
type Controller struct {
	view     View
	answerer provider.Answerer
	endpoint string
	log      zerolog.Logger

	state  State
	result *answer.Response

	// revealAfter exists so tests can shorten the deferred reveal.
	revealAfter time.Duration
}

func NewController(view View, answerer provider.Answerer, endpoint string, log zerolog.Logger) *Controller {
	return &Controller{
		view:        view,
		answerer:    answerer,
		endpoint:    endpoint,
		log:         log,
		state:       StateIdle,
		revealAfter: revealDelay,
	}
}

// State returns the currently active display state.
func (c *Controller) State() State { return c.state }

// Result returns the response behind the Result state, nil otherwise.
func (c *Controller) Result() *answer.Response {
	if c.state != StateResult {
		return nil
	}
	return c.result
}

// Submit runs one full query lifecycle and returns the terminal state. The
// trimmed query gates everything: when empty, no request is made and no
// display state changes. Every other path ends in Result or Error with the
// submit control restored.
func (c *Controller) Submit(ctx context.Context) State {
	query := strings.TrimSpace(c.view.ReadQuery())
	if query == "" {
		c.view.Notify(emptyQueryNotice)
		c.state = StateIdle
		return c.state
	}

	c.state = StateLoading
	c.result = nil
	c.view.SetSubmitEnabled(false)
	c.view.SetSubmitLabel(submitLabelLoading)
	c.view.ShowPanel(true)
	c.view.ShowLoading(true)
	time.AfterFunc(c.revealAfter, c.view.RevealResult)

	// Restore the submit control on every path out of Loading.
	defer func() {
		c.view.SetSubmitEnabled(true)
		c.view.SetSubmitLabel(submitLabelReady)
	}()

	c.log.Debug().Str("provider", c.answerer.Name()).Str("query", query).Msg("submitting query")
	res, err := c.answerer.Answer(ctx, query)
	c.view.ShowLoading(false)
	if err != nil {
		c.log.Error().Err(err).Msg("query failed")
		c.view.RenderError(ErrorMessage(err, c.endpoint))
		c.state = StateError
		return c.state
	}

	c.log.Debug().Int("sources", len(res.Sources)).Msg("query answered")
	c.view.RenderResult(res)
	c.result = res
	c.state = StateResult
	return c.state
}

// ErrorMessage maps a failure to a kind-appropriate, human-readable message.
// A transport-level "cannot reach host" condition is rewritten to name the
// configured endpoint, which helps diagnose connectivity problems.
func ErrorMessage(err error, endpoint string) string {
	var timeoutErr *webhook.TimeoutError
	var transportErr *webhook.TransportError
	var statusErr *webhook.StatusError
	var decodeErr *webhook.DecodeError
	switch {
	case errors.As(err, &timeoutErr):
		return fmt.Sprintf("The request timed out after %s. The service may be busy; please try again.", timeoutErr.Timeout)
	case errors.As(err, &transportErr):
		return fmt.Sprintf("Could not reach the search service at %s. Check your connection and the endpoint configuration.", endpoint)
	case errors.As(err, &statusErr):
		return fmt.Sprintf("The search service answered with status %d %s.", statusErr.Code, statusErr.Status)
	case errors.As(err, &decodeErr):
		return "The search service sent a response that could not be understood."
	default:
		return fmt.Sprintf("The search failed: %v.", err)
	}
}
