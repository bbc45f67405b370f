package llm

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Request is one chat turn: a role's system prompt and the user message.
type Request struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// Completer generates text for a request. A model that produces nothing
// yields "" and a nil error.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, req Request) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

type Options struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
	// RequestsPerMinute throttles calls when positive.
	RequestsPerMinute float64
}

func New(ctx context.Context, opts Options) (Completer, error) {
	provider := strings.ToLower(strings.TrimSpace(opts.Provider))
	if provider == "" {
		provider = "gemini"
	}

	var c Completer
	switch provider {
	case "gemini":
		g, err := NewGemini(ctx, opts.APIKey, opts.Model)
		if err != nil {
			return nil, err
		}
		c = g
	case "openai", "lmstudio":
		c = NewOpenAI(opts.APIKey, opts.Model, opts.BaseURL, opts.Timeout)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", opts.Provider)
	}

	if opts.RequestsPerMinute > 0 {
		c = WithRateLimit(c, opts.RequestsPerMinute)
	}
	return c, nil
}

// cleanOutput strips a surrounding markdown code fence from model output.
func cleanOutput(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```markdown") {
		text = strings.TrimPrefix(text, "```markdown")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
