package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

type rateLimited struct {
	next    Completer
	limiter *rate.Limiter
}

// WithRateLimit wraps c so that at most perMinute calls start each minute.
// Callers block until a slot is free or ctx is done.
func WithRateLimit(c Completer, perMinute float64) Completer {
	return &rateLimited{
		next:    c,
		limiter: rate.NewLimiter(rate.Limit(perMinute/60), 1),
	}
}

func (r *rateLimited) Complete(ctx context.Context, req Request) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for rate limiter: %w", err)
	}
	return r.next.Complete(ctx, req)
}
