package model

// Label is the coarse market-mood bucket for a scored text.
type Label string

const (
	VeryBearish Label = "VeryBearish"
	Bearish     Label = "Bearish"
	Neutral     Label = "Neutral"
	Bullish     Label = "Bullish"
	VeryBullish Label = "VeryBullish"

	// LabelError marks the sentinel record written when a row could not be
	// scored. It keeps one output row per input row so downstream consumers
	// never have to handle missing rows.
	LabelError Label = "Error"
)

// TickerSentiment is the per-symbol slice of a sentiment record.
type TickerSentiment struct {
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// SentimentRecord is the canonical normalized output of the pipeline.
type SentimentRecord struct {
	Label   Label                      `json:"label"`
	Score   float64                    `json:"score"`
	Summary string                     `json:"summary"`
	Tickers map[string]TickerSentiment `json:"tickers"`
}

// ErrorRecord builds the sentinel record for a failed row.
func ErrorRecord(detail string) SentimentRecord {
	return SentimentRecord{
		Label:   LabelError,
		Score:   0,
		Summary: detail,
		Tickers: map[string]TickerSentiment{},
	}
}
