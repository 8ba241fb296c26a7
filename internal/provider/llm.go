package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/askhookio/askhook/internal/answer"
)

// ChatClient is the minimal surface needed to ask a chat model. It mirrors the
// CreateChatCompletion method so any OpenAI-compatible or local backend can be
// adapted.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// LLMProvider answers queries directly against an OpenAI-compatible chat
// model. It is used when no webhook endpoint is configured.
type LLMProvider struct {
	Client ChatClient
	Model  string
}

const llmSystemPrompt = "You are a concise assistant. Answer the user's question in plain text without markup."

// NewOpenAIClient builds an *openai.Client, pointing it at baseURL when one is
// given so local OpenAI-compatible servers work unchanged.
func NewOpenAIClient(baseURL, apiKey string) *openai.Client {
	if strings.TrimSpace(baseURL) == "" {
		return openai.NewClient(apiKey)
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return openai.NewClientWithConfig(cfg)
}

func (p *LLMProvider) Name() string { return "llm" }

func (p *LLMProvider) Answer(ctx context.Context, query string) (*answer.Response, error) {
	if p.Client == nil || strings.TrimSpace(p.Model) == "" {
		return nil, errors.New("llm provider not configured")
	}
	start := time.Now()
	resp, err := p.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: llmSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	text := ""
	if len(resp.Choices) > 0 {
		text = strings.TrimSpace(resp.Choices[0].Message.Content)
	}
	if text == "" {
		text = answer.FallbackAnswer
	}
	secs := time.Since(start).Seconds()
	return &answer.Response{
		Answer: text,
		Metadata: &answer.Metadata{
			Timestamp:      time.Now().UTC().Format(time.RFC3339),
			ProcessingTime: &secs,
		},
	}, nil
}
