package stocks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/assert/v2"
)

func writeScoredCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scored.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAggregate(t *testing.T) {
	content := `"url","title","label","score","summary","tickers"
"https://a","one","Bullish","0.5","Apple up","{""AAPL"": {""score"": 0.5, ""explanation"": ""strong quarter""}}"
"https://b","two","Bearish","-0.4","Apple wobbles","{""AAPL"": {""score"": -0.1, ""explanation"": ""supply risk""}, ""TSLA"": {""score"": -0.4, ""explanation"": ""recall""}}"
`
	stocks, err := Aggregate(writeScoredCSV(t, content))

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(stocks))

	// AAPL mean (0.5 + -0.1)/2 = 0.2 -> (0.2+1)*50 = 60.
	assert.Equal(t, "AAPL", stocks[0].Symbol)
	assert.Equal(t, "Apple Inc.", stocks[0].CompanyName)
	assert.Equal(t, 60.0, stocks[0].SentimentScore)
	assert.Equal(t, 2, stocks[0].Mentions)
	assert.Equal(t, "strong quarter supply risk", stocks[0].SentimentSummary)

	// TSLA -0.4 -> 30.
	assert.Equal(t, "TSLA", stocks[1].Symbol)
	assert.Equal(t, 30.0, stocks[1].SentimentScore)
	assert.Equal(t, 1, stocks[1].Mentions)
}

func TestAggregateSymbolFallback(t *testing.T) {
	content := `"url","title","label","score","summary","tickers"
"https://a","one","Bullish","0.6","NVDA leads the rally while the market waits","{}"
`
	stocks, err := Aggregate(writeScoredCSV(t, content))

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(stocks))
	assert.Equal(t, "NVDA", stocks[0].Symbol)
	assert.Equal(t, 80.0, stocks[0].SentimentScore)
}

func TestAggregateSkipsErrorRows(t *testing.T) {
	content := `"url","title","label","score","summary","tickers"
"https://a","one","Error","0","rate limit retries exhausted","{}"
"https://b","two","Bullish","0.4","","{""MSFT"": {""score"": 0.4, ""explanation"": ""cloud growth""}}"
`
	stocks, err := Aggregate(writeScoredCSV(t, content))

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(stocks))
	assert.Equal(t, "MSFT", stocks[0].Symbol)
}

func TestCompanyNameFallback(t *testing.T) {
	assert.Equal(t, "Apple Inc.", CompanyName("AAPL"))
	assert.Equal(t, "ZZZQ Corporation", CompanyName("ZZZQ"))
}
