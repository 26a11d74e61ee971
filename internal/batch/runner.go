package batch

import (
	"context"
	"log/slog"
	"time"

	"github.com/katherinemll/MoodRingMarkets/internal/model"
)

// Scorer resolves one text to a sentiment record. It never fails: terminal
// errors surface as the Error sentinel record.
type Scorer interface {
	Score(ctx context.Context, text string) model.SentimentRecord
}

// Runner drives the scorer across an ordered row sequence, strictly
// sequentially: the oracle has one global rate limit, so concurrency would
// only add contention. One output row is written per input row, in input
// order, flushed as it lands.
type Runner struct {
	scorer Scorer
	sink   *Sink
	// delay is the fixed inter-request pause applied after every row to stay
	// under upstream rate limits proactively.
	delay time.Duration
}

func NewRunner(scorer Scorer, sink *Sink, delay time.Duration) *Runner {
	return &Runner{scorer: scorer, sink: sink, delay: delay}
}

// Run scores every row and streams results to the sink. Row-level failures
// become sentinel rows; only sink write errors abort, since continuing
// would silently drop output.
func (r *Runner) Run(ctx context.Context, rows []Row) error {
	if err := r.sink.WriteHeader(); err != nil {
		return err
	}

	for i, row := range rows {
		var record model.SentimentRecord
		if row.Err != nil {
			record = model.ErrorRecord(row.Err.Error())
		} else {
			record = r.scorer.Score(ctx, row.Text)
		}

		if err := r.sink.WriteRecord(row.Key, row.Title, record); err != nil {
			return err
		}

		slog.Info("row scored",
			"row", i+1,
			"total", len(rows),
			"label", record.Label,
			"score", record.Score,
			"key", row.Key,
		)

		if r.delay > 0 {
			sleep(ctx, r.delay)
		}
	}

	return nil
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
