// Package stocks aggregates a scored sentiment CSV into per-ticker mood
// cards for the read-side API.
package stocks

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/katherinemll/MoodRingMarkets/internal/model"
)

const (
	topN            = 10
	maxSummaryChars = 200
)

// Stock is the aggregated view of one symbol across all scored rows.
type Stock struct {
	Symbol           string  `json:"symbol"`
	CompanyName      string  `json:"companyName"`
	SentimentScore   float64 `json:"sentimentScore"` // 0-100, one decimal
	SentimentSummary string  `json:"sentimentSummary"`
	Mentions         int     `json:"mentions"`
}

type accumulator struct {
	scores    []float64
	summaries []string
}

// Aggregate reads a scored CSV and returns the top-scored symbols. Rows with
// unparseable cells contribute nothing rather than failing the load; error
// sentinel rows carry no tickers and fall through the summary fallback.
func Aggregate(path string) ([]Stock, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scored csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read scored csv header: %w", err)
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	acc := map[string]*accumulator{}
	for {
		cells, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		summary := column(cells, cols, "summary")
		rowScore, rowScoreOK := parseScore(column(cells, cols, "score"))

		var tickers map[string]model.TickerSentiment
		if raw := column(cells, cols, "tickers"); raw != "" {
			json.Unmarshal([]byte(raw), &tickers)
		}

		if len(tickers) > 0 {
			for symbol, ts := range tickers {
				add(acc, symbol, ts.Score, ts.Explanation)
			}
			continue
		}

		// No per-ticker data: fall back to symbol-shaped tokens in the
		// summary, scored with the row-level sentiment.
		if rowScoreOK {
			for _, symbol := range symbolsFromText(summary) {
				add(acc, symbol, rowScore, summary)
			}
		}
	}

	stocks := make([]Stock, 0, len(acc))
	for symbol, a := range acc {
		stocks = append(stocks, Stock{
			Symbol:           symbol,
			CompanyName:      CompanyName(symbol),
			SentimentScore:   moodScore(a.scores),
			SentimentSummary: combineSummaries(a.summaries),
			Mentions:         len(a.scores),
		})
	}

	sort.Slice(stocks, func(i, j int) bool {
		if stocks[i].SentimentScore != stocks[j].SentimentScore {
			return stocks[i].SentimentScore > stocks[j].SentimentScore
		}
		return stocks[i].Symbol < stocks[j].Symbol
	})

	if len(stocks) > topN {
		stocks = stocks[:topN]
	}
	return stocks, nil
}

func column(cells []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(cells) {
		return ""
	}
	return cells[i]
}

func parseScore(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

func add(acc map[string]*accumulator, symbol string, score float64, summary string) {
	a, ok := acc[symbol]
	if !ok {
		a = &accumulator{}
		acc[symbol] = a
	}
	a.scores = append(a.scores, score)
	if strings.TrimSpace(summary) != "" {
		a.summaries = append(a.summaries, summary)
	}
}

// moodScore converts a mean [-1, 1] sentiment to a 0-100 mood, one decimal.
func moodScore(scores []float64) float64 {
	var sum float64
	for _, s := range scores {
		sum += s
	}
	mean := sum / float64(len(scores))
	mood := math.Max(0, math.Min(100, (mean+1)*50))
	return math.Round(mood*10) / 10
}

func combineSummaries(summaries []string) string {
	combined := strings.Join(summaries, " ")
	if len(combined) > maxSummaryChars {
		return combined[:maxSummaryChars] + "..."
	}
	return combined
}

var symbolToken = regexp.MustCompile(`\b[A-Z]{2,5}\b`)

// symbolStopWords filters everyday uppercase words out of the symbol
// fallback.
var symbolStopWords = map[string]bool{
	"THE": true, "AND": true, "FOR": true, "ARE": true, "BUT": true,
	"NOT": true, "YOU": true, "ALL": true, "CAN": true, "HAD": true,
	"HER": true, "WAS": true, "ONE": true, "OUR": true, "OUT": true,
	"DAY": true, "GET": true, "HAS": true, "HIM": true, "HIS": true,
	"HOW": true, "ITS": true, "MAY": true, "NEW": true, "NOW": true,
	"OLD": true, "SEE": true, "TWO": true, "WAY": true, "WHO": true,
	"BOY": true, "DID": true, "LET": true, "PUT": true, "SAY": true,
	"SHE": true, "TOO": true, "USE": true, "CEO": true, "IPO": true,
	"GDP": true, "USA": true,
}

func symbolsFromText(text string) []string {
	var symbols []string
	seen := map[string]bool{}
	for _, token := range symbolToken.FindAllString(text, -1) {
		if symbolStopWords[token] || seen[token] {
			continue
		}
		seen[token] = true
		symbols = append(symbols, token)
	}
	return symbols
}
