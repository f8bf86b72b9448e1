package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if err := c.Generation.validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}
	if c.RateLimit.GeneratePerMinute < 0 {
		return fmt.Errorf("rate_limit.generate_per_minute must be >= 0 (got %d)", c.RateLimit.GeneratePerMinute)
	}
	return nil
}

// Validate checks the worker configuration.
func (c *WorkerConfig) Validate() error {
	if c.Worker.Concurrency <= 0 {
		return fmt.Errorf("worker.concurrency must be > 0 (got %d)", c.Worker.Concurrency)
	}
	if c.Worker.ClaimBatch <= 0 {
		return fmt.Errorf("worker.claim_batch must be > 0 (got %d)", c.Worker.ClaimBatch)
	}
	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	return nil
}

func (g *GenerationConfig) validate() error {
	if g.MaxActive <= 0 {
		return fmt.Errorf("max_active must be > 0 (got %d)", g.MaxActive)
	}
	if g.BatchSize <= 0 || g.BatchSize > g.MaxActive {
		return fmt.Errorf("batch_size must be in [1, %d] (got %d)", g.MaxActive, g.BatchSize)
	}
	if g.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be > 0 (got %d)", g.HistoryLimit)
	}
	if g.StaleAfter <= 0 {
		return errors.New("stale_after must be positive")
	}

	u, err := url.Parse(g.WorkerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("worker_url %q is not an absolute URL", g.WorkerURL)
	}

	g.PostTypes = ParseList(g.PostTypesRaw)
	if len(g.PostTypes) == 0 {
		return errors.New("post_types must not be empty")
	}
	return nil
}

func (l *LLMConfig) validate() error {
	switch l.Provider {
	case "echo":
		return nil
	case "anthropic", "openai":
		if l.APIKey == "" {
			return fmt.Errorf("api_key is required for provider %q", l.Provider)
		}
		if l.Model == "" {
			return fmt.Errorf("model is required for provider %q", l.Provider)
		}
		if l.MaxTokens <= 0 {
			return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
		}
		return nil
	default:
		return fmt.Errorf("unknown provider %q (want anthropic, openai or echo)", l.Provider)
	}
}

// ParseList splits a comma-separated list, trimming blanks and dropping
// empty items.
func ParseList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
