package ui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/askhookio/askhook/internal/answer"
	"github.com/askhookio/askhook/internal/webhook"
)

// fakeView records every sink call.
type fakeView struct {
	mu       sync.Mutex
	query    string
	enabled  []bool
	labels   []string
	panel    []bool
	loading  []bool
	result   *answer.Response
	errorMsg string
	notices  []string
	revealed int
}

func (v *fakeView) ReadQuery() string { return v.query }

func (v *fakeView) SetSubmitEnabled(enabled bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.enabled = append(v.enabled, enabled)
}

func (v *fakeView) SetSubmitLabel(label string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.labels = append(v.labels, label)
}

func (v *fakeView) ShowPanel(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.panel = append(v.panel, visible)
}

func (v *fakeView) ShowLoading(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = append(v.loading, visible)
}

func (v *fakeView) RenderResult(res *answer.Response) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.result = res
}

func (v *fakeView) RenderError(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.errorMsg = message
}

func (v *fakeView) Notify(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notices = append(v.notices, message)
}

func (v *fakeView) RevealResult() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.revealed++
}

func (v *fakeView) revealCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.revealed
}

// fakeAnswerer returns a canned response or error and counts calls.
type fakeAnswerer struct {
	res   *answer.Response
	err   error
	calls int
}

func (f *fakeAnswerer) Name() string { return "fake" }

func (f *fakeAnswerer) Answer(context.Context, string) (*answer.Response, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

func newTestController(view *fakeView, a *fakeAnswerer, endpoint string) *Controller {
	c := NewController(view, a, endpoint, zerolog.Nop())
	c.revealAfter = time.Millisecond
	return c
}

func TestSubmit_WhitespaceQuerySendsNothing(t *testing.T) {
	for _, q := range []string{"", "   ", "\n\t  "} {
		view := &fakeView{query: q}
		a := &fakeAnswerer{res: &answer.Response{Answer: "x"}}
		c := newTestController(view, a, "")

		if state := c.Submit(context.Background()); state != StateIdle {
			t.Fatalf("state = %v, want idle", state)
		}
		if a.calls != 0 {
			t.Fatalf("no request should be sent for %q, got %d calls", q, a.calls)
		}
		if len(view.notices) != 1 {
			t.Fatalf("expected a blocking notice, got %v", view.notices)
		}
		if len(view.panel) != 0 || len(view.enabled) != 0 {
			t.Fatalf("display state must not change for empty input")
		}
	}
}

func TestSubmit_SuccessLifecycle(t *testing.T) {
	res := &answer.Response{Answer: "30 days"}
	view := &fakeView{query: "  What is the refund policy?  "}
	a := &fakeAnswerer{res: res}
	c := newTestController(view, a, "")

	if state := c.Submit(context.Background()); state != StateResult {
		t.Fatalf("state = %v, want result", state)
	}
	if a.calls != 1 {
		t.Fatalf("expected exactly one request, got %d", a.calls)
	}
	if view.result != res {
		t.Fatalf("result not rendered")
	}
	if c.Result() != res {
		t.Fatalf("controller should expose the result")
	}
	// Loading was shown and then hidden.
	if len(view.loading) != 2 || !view.loading[0] || view.loading[1] {
		t.Fatalf("loading sequence = %v", view.loading)
	}
	// Submit disabled on entry, re-enabled on exit.
	if len(view.enabled) != 2 || view.enabled[0] || !view.enabled[1] {
		t.Fatalf("enabled sequence = %v", view.enabled)
	}
	if len(view.labels) != 2 || view.labels[0] != submitLabelLoading || view.labels[1] != submitLabelReady {
		t.Fatalf("label sequence = %v", view.labels)
	}
}

func TestSubmit_ErrorLifecycleRestoresSubmit(t *testing.T) {
	view := &fakeView{query: "q"}
	a := &fakeAnswerer{err: &webhook.StatusError{Code: 500, Status: "Internal Server Error"}}
	c := newTestController(view, a, "")

	if state := c.Submit(context.Background()); state != StateError {
		t.Fatalf("state = %v, want error", state)
	}
	if !strings.Contains(view.errorMsg, "500") {
		t.Fatalf("error message should reference status 500: %q", view.errorMsg)
	}
	if len(view.enabled) != 2 || !view.enabled[1] {
		t.Fatalf("submit must be re-enabled after a failure, got %v", view.enabled)
	}
	if c.Result() != nil {
		t.Fatalf("no result should be exposed in error state")
	}
}

func TestSubmit_TimeoutMessageEmbedsDuration(t *testing.T) {
	view := &fakeView{query: "q"}
	a := &fakeAnswerer{err: &webhook.TimeoutError{Timeout: 30 * time.Second}}
	c := newTestController(view, a, "")

	c.Submit(context.Background())
	if !strings.Contains(view.errorMsg, "30s") {
		t.Fatalf("timeout message should contain the configured duration: %q", view.errorMsg)
	}
}

func TestSubmit_ConnectivityMessageNamesEndpoint(t *testing.T) {
	view := &fakeView{query: "q"}
	a := &fakeAnswerer{err: &webhook.TransportError{Endpoint: "https://hooks.example/ask", Err: errors.New("connection refused")}}
	c := newTestController(view, a, "https://hooks.example/ask")

	c.Submit(context.Background())
	if !strings.Contains(view.errorMsg, "https://hooks.example/ask") {
		t.Fatalf("connectivity message should name the endpoint: %q", view.errorMsg)
	}
}

func TestSubmit_RevealIsDeferred(t *testing.T) {
	view := &fakeView{query: "q"}
	a := &fakeAnswerer{res: &answer.Response{Answer: "x"}}
	c := newTestController(view, a, "")
	c.revealAfter = 10 * time.Millisecond

	c.Submit(context.Background())
	deadline := time.Now().Add(time.Second)
	for view.revealCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("reveal never fired")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestErrorMessage_DecodeAndUnknownKinds(t *testing.T) {
	if msg := ErrorMessage(&webhook.DecodeError{Err: errors.New("bad json")}, ""); !strings.Contains(msg, "could not be understood") {
		t.Fatalf("decode message = %q", msg)
	}
	if msg := ErrorMessage(errors.New("weird"), ""); !strings.Contains(msg, "weird") {
		t.Fatalf("unknown kinds keep their cause: %q", msg)
	}
}
