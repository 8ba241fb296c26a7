package ui

import (
	"html"
	"net/url"
	"strings"

	"github.com/askhookio/askhook/internal/answer"
)

// EscapeText makes an externally supplied string safe for insertion into
// structured output. Applied to every rendered field except answer text,
// which is always inserted as plain text content, never parsed as markup.
func EscapeText(s string) string {
	return html.EscapeString(s)
}

// SafeURL returns the URL when it carries an http(s) scheme and the
// non-navigating placeholder otherwise.
func SafeURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return answer.PlaceholderURL
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return raw
	default:
		return answer.PlaceholderURL
	}
}
