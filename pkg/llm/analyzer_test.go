package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/katherinemll/MoodRingMarkets/internal/model"
)

type fakeOracle struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func (f *fakeOracle) Complete(ctx context.Context, prompt string, maxTokens int64, system string) (string, error) {
	i := f.calls
	f.calls++
	f.prompts = append(f.prompts, prompt)
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	var out string
	if i < len(f.responses) {
		out = f.responses[i]
	}
	return out, err
}

func newTestAnalyzer(oracle Oracle) *Analyzer {
	a := NewAnalyzer(oracle, Config{})
	a.sleep = func(ctx context.Context, d time.Duration) {}
	return a
}

func TestScoreSuccess(t *testing.T) {
	oracle := &fakeOracle{
		responses: []string{"```json\n{\"label\": \"Bullish\", \"score\": 0.5, \"summary\": \"up\", \"tickers\": {\"AAPL\": {\"score\": 0.5, \"explanation\": \"x\"}}}\n```"},
	}

	record := newTestAnalyzer(oracle).Score(context.Background(), "Apple rallies")

	assert.Equal(t, model.Bullish, record.Label)
	assert.Equal(t, 0.5, record.Score)
	assert.Equal(t, "up", record.Summary)
	assert.Equal(t, 0.5, record.Tickers["AAPL"].Score)
	assert.Equal(t, 1, oracle.calls)
}

func TestScoreMalformedOutputNotRetried(t *testing.T) {
	oracle := &fakeOracle{
		responses: []string{"sorry, I can only answer in prose"},
	}

	record := newTestAnalyzer(oracle).Score(context.Background(), "text")

	assert.Equal(t, model.LabelError, record.Label)
	assert.Equal(t, 0.0, record.Score)
	assert.Equal(t, "model did not return valid JSON", record.Summary)
	assert.Equal(t, 0, len(record.Tickers))
	assert.Equal(t, 1, oracle.calls)
}

func TestScoreRateLimitRetriesExhausted(t *testing.T) {
	oracle := &fakeOracle{
		errs: []error{
			&RateLimitError{}, &RateLimitError{}, &RateLimitError{},
			&RateLimitError{}, &RateLimitError{}, &RateLimitError{},
		},
	}

	var waits []time.Duration
	a := NewAnalyzer(oracle, Config{})
	a.sleep = func(ctx context.Context, d time.Duration) { waits = append(waits, d) }

	record := a.Score(context.Background(), "text")

	assert.Equal(t, model.LabelError, record.Label)
	assert.Equal(t, "rate limit retries exhausted", record.Summary)
	assert.Equal(t, 5, oracle.calls)
	assert.Equal(t, []time.Duration{
		2 * time.Second, 4 * time.Second, 6 * time.Second,
		8 * time.Second, 10 * time.Second,
	}, waits)
}

func TestScoreRateLimitThenSuccess(t *testing.T) {
	oracle := &fakeOracle{
		errs:      []error{&RateLimitError{RetryAfter: 7 * time.Second}, nil},
		responses: []string{"", `{"label": "Neutral", "score": 0}`},
	}

	var waits []time.Duration
	a := NewAnalyzer(oracle, Config{})
	a.sleep = func(ctx context.Context, d time.Duration) { waits = append(waits, d) }

	record := a.Score(context.Background(), "text")

	assert.Equal(t, model.Neutral, record.Label)
	assert.Equal(t, 2, oracle.calls)
	// Server-suggested interval wins over the default backoff.
	assert.Equal(t, []time.Duration{7 * time.Second}, waits)
}

func TestScoreOtherErrorNotRetried(t *testing.T) {
	oracle := &fakeOracle{
		errs: []error{errors.New("authentication failed")},
	}

	record := newTestAnalyzer(oracle).Score(context.Background(), "text")

	assert.Equal(t, model.LabelError, record.Label)
	assert.Equal(t, "authentication failed", record.Summary)
	assert.Equal(t, 1, oracle.calls)
}

func TestScoreTruncatesPrompt(t *testing.T) {
	oracle := &fakeOracle{
		responses: []string{`{"label": "Neutral", "score": 0}`},
	}
	a := NewAnalyzer(oracle, Config{MaxInputChars: 10})
	a.sleep = func(ctx context.Context, d time.Duration) {}

	long := "0123456789ABCDEF"
	a.Score(context.Background(), long)

	assert.Equal(t, BuildPrompt(long, 10), oracle.prompts[0])
	assert.Equal(t, promptInstructions+"0123456789", oracle.prompts[0])
}
