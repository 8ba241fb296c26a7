package ui

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// metadataTimeLayout is the human-readable form used for metadata timestamps.
const metadataTimeLayout = "Jan 2, 2006 15:04 MST"

// Formatter renders metadata values under a configured locale.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter parses a BCP 47 locale tag, falling back to English when the
// tag is empty or invalid.
func NewFormatter(locale string) *Formatter {
	tag := language.English
	if strings.TrimSpace(locale) != "" {
		if parsed, err := language.Parse(locale); err == nil {
			tag = parsed
		}
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

// FileCount renders a document count with locale-aware digit grouping.
func (f *Formatter) FileCount(n int) string {
	return f.printer.Sprintf("%d", n)
}

// Seconds renders a processing duration with exactly two decimal places.
func (f *Formatter) Seconds(v float64) string {
	return f.printer.Sprintf("%.2f", v)
}

// Timestamp reformats an RFC 3339 timestamp into the metadata layout in local
// time. Unparseable values render verbatim.
func (f *Formatter) Timestamp(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Local().Format(metadataTimeLayout)
}
