package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/askhookio/askhook/internal/answer"
)

// HTMLView captures the lifecycle as an HTML fragment matching the search
// widget's result panel. Used by the serve mode's no-script form fallback.
type HTMLView struct {
	Formatter *Formatter

	mu      sync.Mutex
	query   string
	enabled bool
	label   string
	panel   bool
	loading bool
	content string
	notice  string
}

func NewHTMLView(query string, f *Formatter) *HTMLView {
	if f == nil {
		f = NewFormatter("")
	}
	return &HTMLView{Formatter: f, query: query, enabled: true}
}

func (v *HTMLView) ReadQuery() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.query
}

func (v *HTMLView) SetSubmitEnabled(enabled bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.enabled = enabled
}

func (v *HTMLView) SetSubmitLabel(label string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.label = label
}

func (v *HTMLView) ShowPanel(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.panel = visible
}

func (v *HTMLView) ShowLoading(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = visible
}

func (v *HTMLView) RenderResult(res *answer.Response) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.content = RenderResultHTML(res, v.Formatter)
}

func (v *HTMLView) RenderError(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.content = fmt.Sprintf(`<div class="error">%s</div>`, EscapeText(message))
}

func (v *HTMLView) Notify(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notice = message
}

// RevealResult is a no-op; the fragment is delivered whole.
func (v *HTMLView) RevealResult() {}

// Fragment returns the rendered result or error markup, empty when neither
// was rendered.
func (v *HTMLView) Fragment() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.content
}

// Notice returns the blocking notification raised by the validation gate.
func (v *HTMLView) Notice() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.notice
}

// RenderResultHTML builds the result panel markup. Every externally supplied
// string is escaped; the answer is inserted as escaped text content so it is
// never parsed as markup. The metadata and sources regions are omitted when
// they have nothing to show.
func RenderResultHTML(res *answer.Response, f *Formatter) string {
	if f == nil {
		f = NewFormatter("")
	}
	var b strings.Builder
	b.WriteString(`<div class="result">`)
	b.WriteString(`<p class="answer">`)
	b.WriteString(EscapeText(res.Answer))
	b.WriteString(`</p>`)

	if md := res.Metadata; md != nil {
		b.WriteString(`<dl class="metadata">`)
		if md.FileCount != nil {
			fmt.Fprintf(&b, `<dt>Files searched</dt><dd>%s</dd>`, EscapeText(f.FileCount(*md.FileCount)))
		}
		if md.Timestamp != "" {
			fmt.Fprintf(&b, `<dt>Answered at</dt><dd>%s</dd>`, EscapeText(f.Timestamp(md.Timestamp)))
		}
		if md.ProcessingTime != nil {
			fmt.Fprintf(&b, `<dt>Processing time</dt><dd>%ss</dd>`, EscapeText(f.Seconds(*md.ProcessingTime)))
		}
		b.WriteString(`</dl>`)
	}

	if len(res.Sources) > 0 {
		b.WriteString(`<ol class="sources">`)
		for _, s := range res.Sources {
			fmt.Fprintf(&b, `<li><a href="%s" rel="noopener">%s</a></li>`,
				EscapeText(SafeURL(s.URL)), EscapeText(s.Name))
		}
		b.WriteString(`</ol>`)
	}

	b.WriteString(`</div>`)
	return b.String()
}
