package provider

import (
	"context"

	"github.com/askhookio/askhook/internal/answer"
)

// Answerer produces an answer for a single user query. The webhook client is
// the primary implementation; file and LLM providers cover offline use and
// direct-model fallback.
type Answerer interface {
	Answer(ctx context.Context, query string) (*answer.Response, error)
	Name() string
}
