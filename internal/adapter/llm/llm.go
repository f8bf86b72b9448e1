// Package llm holds the prompt type shared by the text-generation backends
// and a deterministic echo backend used for local runs and tests.
package llm

import (
	"context"
	"fmt"
	"strings"
)

// Prompt is one completion request.
type Prompt struct {
	System string
	User   string
}

// Echo returns a canned post built from the prompt. It never calls out.
type Echo struct{}

// Complete implements the completer contract.
func (Echo) Complete(ctx context.Context, p Prompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line := strings.TrimSpace(p.User)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return fmt.Sprintf("Draft post: %s", line), nil
}
