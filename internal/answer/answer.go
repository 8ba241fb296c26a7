package answer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const (
	// FallbackAnswer is shown when the payload carries neither an answer nor
	// a message field.
	FallbackAnswer = "No answer received."
	// PlaceholderURL is a non-navigating target used when a source has no
	// usable URL.
	PlaceholderURL = "#"
)

// Response is the resolved form of a webhook reply. Field fallbacks
// (answer over message, name over title, url over link) are applied once
// during Decode so renderers never consult alternate field names.
type Response struct {
	Answer   string
	Metadata *Metadata
	Sources  []Source
}

// Metadata is the optional processing-details block. Absent fields stay nil
// or empty and renderers skip them.
type Metadata struct {
	FileCount      *int
	Timestamp      string
	ProcessingTime *float64
}

// Source is one resolved source link.
type Source struct {
	Name string
	URL  string
}

// wireResponse mirrors the loosely-typed webhook payload. Every field is
// optional and untrusted; any subset may be absent.
type wireResponse struct {
	Answer   *string `json:"answer"`
	Message  *string `json:"message"`
	Metadata *struct {
		FileCount      *int     `json:"fileCount"`
		Timestamp      *string  `json:"timestamp"`
		ProcessingTime *float64 `json:"processingTime"`
	} `json:"metadata"`
	Sources []struct {
		Name  *string `json:"name"`
		Title *string `json:"title"`
		URL   *string `json:"url"`
		Link  *string `json:"link"`
	} `json:"sources"`
}

// Decode parses an untrusted webhook body into a Response. Precedence:
// answer, then message, then FallbackAnswer; per source, name then title then
// a synthesized "Reference N", and url then link then PlaceholderURL. An
// empty string counts as absent.
func Decode(r io.Reader) (*Response, error) {
	var w wireResponse
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return nil, err
	}

	out := &Response{Answer: pick(w.Answer, w.Message, FallbackAnswer)}

	if m := w.Metadata; m != nil {
		md := &Metadata{ProcessingTime: m.ProcessingTime}
		if m.FileCount != nil && *m.FileCount >= 0 {
			md.FileCount = m.FileCount
		}
		if m.Timestamp != nil {
			md.Timestamp = strings.TrimSpace(*m.Timestamp)
		}
		if md.FileCount != nil || md.Timestamp != "" || md.ProcessingTime != nil {
			out.Metadata = md
		}
	}

	for i, s := range w.Sources {
		out.Sources = append(out.Sources, Source{
			Name: pick(s.Name, s.Title, fmt.Sprintf("Reference %d", i+1)),
			URL:  pick(s.URL, s.Link, PlaceholderURL),
		})
	}
	return out, nil
}

// pick returns the first non-empty candidate, else the fallback.
func pick(first, second *string, fallback string) string {
	if first != nil && strings.TrimSpace(*first) != "" {
		return *first
	}
	if second != nil && strings.TrimSpace(*second) != "" {
		return *second
	}
	return fallback
}
