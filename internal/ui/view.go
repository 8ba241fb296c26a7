package ui

import (
	"github.com/askhookio/askhook/internal/answer"
)

// View is the presentation surface the Controller writes to. The controller
// treats every method as an opaque sink and does not own visual styling.
type View interface {
	// ReadQuery returns the raw, untrimmed query text.
	ReadQuery() string
	// SetSubmitEnabled toggles the submit control.
	SetSubmitEnabled(enabled bool)
	// SetSubmitLabel relabels the submit control.
	SetSubmitLabel(label string)
	// ShowPanel toggles the result panel.
	ShowPanel(visible bool)
	// ShowLoading toggles the loading indicator inside the panel.
	ShowLoading(visible bool)
	// RenderResult displays a resolved response. Implementations must not
	// mutate res.
	RenderResult(res *answer.Response)
	// RenderError displays a human-readable failure message.
	RenderError(message string)
	// Notify raises a blocking user notification outside the panel.
	Notify(message string)
	// RevealResult brings the result region into view.
	RevealResult()
}
