package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/askhookio/askhook/internal/answer"
)

// FileProvider serves canned answers from a local JSON file for offline and
// testing use. The file format is an array of objects:
// {"query": "...", "answer": "...", "sources": [{"name": "...", "url": "..."}]}.
type FileProvider struct {
	Path string
}

func (f *FileProvider) Name() string { return "file" }

type fileEntry struct {
	Query   string `json:"query"`
	Answer  string `json:"answer"`
	Sources []struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"sources"`
}

// Answer matches the query against the canned entries, first exactly
// (case-insensitive), then by substring. No match yields the standard
// fallback answer rather than an error.
func (f *FileProvider) Answer(_ context.Context, query string) (*answer.Response, error) {
	if strings.TrimSpace(f.Path) == "" {
		return nil, errors.New("file provider path is empty")
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	var entries []fileEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("parse answers file: %w", err)
	}

	q := strings.ToLower(strings.TrimSpace(query))
	match := -1
	for i, e := range entries {
		eq := strings.ToLower(strings.TrimSpace(e.Query))
		if eq == q {
			match = i
			break
		}
		if match < 0 && eq != "" && strings.Contains(eq, q) {
			match = i
		}
	}
	if match < 0 {
		return &answer.Response{Answer: answer.FallbackAnswer}, nil
	}

	e := entries[match]
	res := &answer.Response{Answer: e.Answer}
	if strings.TrimSpace(res.Answer) == "" {
		res.Answer = answer.FallbackAnswer
	}
	for i, s := range e.Sources {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			name = fmt.Sprintf("Reference %d", i+1)
		}
		url := strings.TrimSpace(s.URL)
		if url == "" {
			url = answer.PlaceholderURL
		}
		res.Sources = append(res.Sources, answer.Source{Name: name, URL: url})
	}
	return res, nil
}
