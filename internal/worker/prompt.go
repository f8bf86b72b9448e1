package worker

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/postcraft-backend/internal/adapter/llm"
)

const systemPrompt = `You are a ghostwriter for LinkedIn creators. Write one ready-to-publish LinkedIn post.
Rules:
- 80 to 200 words, short paragraphs, no hashtags unless they add meaning
- a strong first line that makes people stop scrolling
- plain text only, no markdown, no preamble, no explanations`

// buildPrompt asks for post index of total. previous posts of the same run
// are listed so the model does not repeat itself.
func buildPrompt(postType string, index, total int, previous []string) llm.Prompt {
	var sb strings.Builder
	if postType != "" {
		fmt.Fprintf(&sb, "Write a %s post (%d of %d).\n", postType, index, total)
	} else {
		fmt.Fprintf(&sb, "Write a post (%d of %d).\n", index, total)
	}
	if len(previous) > 0 {
		sb.WriteString("\nAvoid repeating the angle or opening of these earlier drafts:\n")
		for i, p := range previous {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, firstLine(p))
		}
	}
	return llm.Prompt{System: systemPrompt, User: sb.String()}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 120 {
		s = s[:120]
	}
	return s
}
