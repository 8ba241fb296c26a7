package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/askhookio/askhook/internal/answer"
)

// TerminalView renders the lifecycle onto a terminal writer. The prompt plays
// the role of the submit control; the panel is a block of output, so most
// visibility sinks reduce to printing or nothing.
type TerminalView struct {
	Out       io.Writer
	Formatter *Formatter

	mu      sync.Mutex
	query   string
	enabled bool
}

func NewTerminalView(out io.Writer, f *Formatter) *TerminalView {
	if f == nil {
		f = NewFormatter("")
	}
	return &TerminalView{Out: out, Formatter: f, enabled: true}
}

// SetQuery stores the text the next Submit reads.
func (v *TerminalView) SetQuery(q string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.query = q
}

func (v *TerminalView) ReadQuery() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.query
}

// SubmitEnabled reports whether the prompt accepts a new query.
func (v *TerminalView) SubmitEnabled() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.enabled
}

func (v *TerminalView) SetSubmitEnabled(enabled bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.enabled = enabled
}

// SetSubmitLabel is a no-op; the prompt has no label.
func (v *TerminalView) SetSubmitLabel(string) {}

// ShowPanel is a no-op; terminal output has no hidden panel.
func (v *TerminalView) ShowPanel(bool) {}

func (v *TerminalView) ShowLoading(visible bool) {
	if visible {
		fmt.Fprintln(v.Out, "Searching...")
	}
}

func (v *TerminalView) RenderResult(res *answer.Response) {
	fmt.Fprintln(v.Out, res.Answer)
	if md := res.Metadata; md != nil {
		fmt.Fprintln(v.Out)
		if md.FileCount != nil {
			fmt.Fprintf(v.Out, "Files searched: %s\n", v.Formatter.FileCount(*md.FileCount))
		}
		if md.Timestamp != "" {
			fmt.Fprintf(v.Out, "Answered at: %s\n", v.Formatter.Timestamp(md.Timestamp))
		}
		if md.ProcessingTime != nil {
			fmt.Fprintf(v.Out, "Processing time: %ss\n", v.Formatter.Seconds(*md.ProcessingTime))
		}
	}
	if len(res.Sources) > 0 {
		fmt.Fprintln(v.Out)
		fmt.Fprintln(v.Out, "Sources:")
		for i, s := range res.Sources {
			fmt.Fprintf(v.Out, "  %d. %s <%s>\n", i+1, s.Name, SafeURL(s.URL))
		}
	}
}

func (v *TerminalView) RenderError(message string) {
	fmt.Fprintf(v.Out, "Error: %s\n", message)
}

func (v *TerminalView) Notify(message string) {
	fmt.Fprintln(v.Out, message)
}

// RevealResult is a no-op; terminal output is already in view.
func (v *TerminalView) RevealResult() {}
