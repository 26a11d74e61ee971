package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katherinemll/MoodRingMarkets/internal/model"
)

// Sink writes scored rows as CSV. Every cell is double-quoted regardless of
// content, with embedded quotes doubled, so the file stays parseable no
// matter what the model put in a summary. encoding/csv quotes only when it
// has to, which is why the quoting is done by hand here.
type Sink struct {
	w io.Writer
	// syncer is set when the underlying writer can be flushed to disk, so a
	// crash mid-batch leaves a valid file ending on a complete row.
	syncer interface{ Sync() error }
}

func NewSink(w io.Writer) *Sink {
	s := &Sink{w: w}
	if f, ok := w.(interface{ Sync() error }); ok {
		s.syncer = f
	}
	return s
}

// WriteHeader emits the column header. Call once before the first record.
func (s *Sink) WriteHeader() error {
	return s.writeRow("url", "title", "label", "score", "summary", "tickers")
}

// WriteRecord appends one scored row and flushes it to stable storage.
func (s *Sink) WriteRecord(key, title string, record model.SentimentRecord) error {
	tickers, err := json.Marshal(record.Tickers)
	if err != nil {
		return fmt.Errorf("marshal tickers: %w", err)
	}

	score := strconv.FormatFloat(record.Score, 'g', -1, 64)
	if err := s.writeRow(key, title, string(record.Label), score, record.Summary, string(tickers)); err != nil {
		return err
	}

	if s.syncer != nil {
		return s.syncer.Sync()
	}
	return nil
}

func (s *Sink) writeRow(cells ...string) error {
	var sb strings.Builder
	for i, cell := range cells {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		sb.WriteByte('"')
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(s.w, sb.String())
	return err
}
