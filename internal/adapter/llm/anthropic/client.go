// Package anthropic generates post text with Claude models.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/postcraft-backend/internal/adapter/llm"
)

const defaultModel = "claude-sonnet-4-5"

// Client implements the worker's completer on the Messages API.
type Client struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// New creates a Client. opts are appended after the API key and base URL.
func New(apiKey, baseURL, model string, maxTokens int, opts ...option.RequestOption) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic: api key missing")
	}
	if model == "" {
		model = defaultModel
	}
	all := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		all = append(all, option.WithBaseURL(baseURL))
	}
	all = append(all, opts...)

	return &Client{
		client:    anthropic.NewClient(all...),
		model:     model,
		maxTokens: int64(maxTokens),
	}, nil
}

// Complete sends one prompt and returns the concatenated text blocks.
func (c *Client) Complete(ctx context.Context, p llm.Prompt) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(p.User)),
		},
	}
	if p.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: p.System}}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic: messages: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", errors.New("anthropic: empty response")
	}
	return text, nil
}
