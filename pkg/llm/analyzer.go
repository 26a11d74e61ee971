package llm

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/katherinemll/MoodRingMarkets/internal/model"
)

const (
	// DefaultMaxInputChars suits short texts like comment threads;
	// DefaultMaxArticleChars suits full article bodies.
	DefaultMaxInputChars   = 3000
	DefaultMaxArticleChars = 20000
	DefaultMaxOutputTokens = 1024

	maxAttempts    = 5
	backoffBase    = 2000 * time.Millisecond
	errMalformed   = "model did not return valid JSON"
	errRetriesDone = "rate limit retries exhausted"
)

// Config carries the externally-overridable knobs of one analyzer. The zero
// value is not usable; construct through NewAnalyzer.
type Config struct {
	MaxInputChars   int
	MaxOutputTokens int64
}

// Analyzer drives one oracle call per text: build the prompt, request a
// completion, then reduce the response through extraction and coercion.
// Rate limits are retried with increasing backoff; malformed output and any
// other API error are terminal and become the Error sentinel record.
type Analyzer struct {
	oracle Oracle
	cfg    Config
	sleep  func(ctx context.Context, d time.Duration)
}

func NewAnalyzer(oracle Oracle, cfg Config) *Analyzer {
	if cfg.MaxInputChars <= 0 {
		cfg.MaxInputChars = DefaultMaxInputChars
	}
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = DefaultMaxOutputTokens
	}
	return &Analyzer{oracle: oracle, cfg: cfg, sleep: sleepCtx}
}

// Score resolves a text to a SentimentRecord. It never returns an error:
// terminal failures produce the sentinel record so batch processing always
// emits one row per input.
func (a *Analyzer) Score(ctx context.Context, text string) model.SentimentRecord {
	prompt := BuildPrompt(text, a.cfg.MaxInputChars)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		out, err := a.oracle.Complete(ctx, prompt, a.cfg.MaxOutputTokens, SystemPrompt)
		if err != nil {
			var rle *RateLimitError
			if errors.As(err, &rle) {
				wait := rle.RetryAfter
				if wait <= 0 {
					wait = backoffBase * time.Duration(attempt+1)
				}
				slog.Warn("rate limited, backing off", "attempt", attempt+1, "wait", wait)
				a.sleep(ctx, wait)
				continue
			}
			// Non-rate-limit API errors are not worth retrying.
			return model.ErrorRecord(err.Error())
		}

		record := Coerce(ExtractJSON(out))
		if record == nil {
			// A malformed response means the prompt and model disagree;
			// retrying the same prompt will not fix that.
			return model.ErrorRecord(errMalformed)
		}
		return *record
	}

	return model.ErrorRecord(errRetriesDone)
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
