package llm

import (
	"context"
	"fmt"
	"time"
)

// Oracle is the external text-completion capability the pipeline queries.
// The response text is unconstrained: it may or may not contain JSON.
// Implementations must return *RateLimitError when the upstream throttles,
// so the analyzer can tell transient pressure from hard failures.
type Oracle interface {
	Complete(ctx context.Context, prompt string, maxTokens int64, system string) (string, error)
}

// RateLimitError signals upstream throttling. RetryAfter carries the
// server-suggested wait when one was provided, zero otherwise.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
	}
	return "rate limited"
}
