// Package tutor runs AI tutoring sessions: a chat transcript per
// student with an optional generated practice quiz folded into the
// conversation.
package tutor

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

// Completer produces one assistant reply for a prompt pair. The
// controller only depends on this surface so tests can stub it.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ClientConfig configures the chat completion backend.
type ClientConfig struct {
	BaseURL string // empty for the default endpoint
	APIKey  string
	Model   string
}

// Client is a Completer backed by an OpenAI-compatible API.
type Client struct {
	api    *openai.Client
	model  string
	logger zerolog.Logger
}

// NewClient creates a chat completion client. A custom base URL points
// it at any OpenAI-compatible server.
func NewClient(cfg ClientConfig, logger zerolog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("tutor: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = openai.GPT4oMini
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	return &Client{
		api:    openai.NewClientWithConfig(apiCfg),
		model:  cfg.Model,
		logger: logger.With().Str("component", "tutor_client").Logger(),
	}, nil
}

// Complete sends one completion request and returns the reply text.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
