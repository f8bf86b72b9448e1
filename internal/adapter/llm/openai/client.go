// Package openai generates post text with OpenAI-compatible chat models.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/heartmarshall/postcraft-backend/internal/adapter/llm"
)

const defaultModel = "gpt-4o-mini"

// Client implements the worker's completer on chat completions.
type Client struct {
	client    openai.Client
	model     string
	maxTokens int64
}

// New creates a Client. opts are appended after the API key and base URL.
func New(apiKey, baseURL, model string, maxTokens int, opts ...option.RequestOption) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("openai: api key missing")
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
		client:    openai.NewClient(all...),
		model:     model,
		maxTokens: int64(maxTokens),
	}, nil
}

// Complete sends one prompt and returns the first choice.
func (c *Client) Complete(ctx context.Context, p llm.Prompt) (string, error) {
	var msgs []openai.ChatCompletionMessageParamUnion
	if p.System != "" {
		msgs = append(msgs, openai.SystemMessage(p.System))
	}
	msgs = append(msgs, openai.UserMessage(p.User))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: msgs,
	}
	if c.maxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(c.maxTokens)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai: chat completions: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New("openai: empty response")
	}
	return text, nil
}
