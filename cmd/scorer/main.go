package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/katherinemll/MoodRingMarkets/internal/batch"
	"github.com/katherinemll/MoodRingMarkets/pkg/llm"
	"github.com/katherinemll/MoodRingMarkets/pkg/news"
	"github.com/katherinemll/MoodRingMarkets/pkg/reddit"
)

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	var (
		inCSV     = flag.String("in", "", "input CSV with url/title/text columns")
		inDir     = flag.String("dir", "", "directory of raw text files to score")
		redditURL = flag.String("reddit", "", "reddit thread URL to score as one row")
		feed      = flag.String("feed", "", "news feed to score (finnhub or alphavantage)")
		feedLimit = flag.Int("feed-limit", 50, "articles to fetch from the news feed")
		out       = flag.String("out", "combined_sentiment.csv", "output CSV path")
		provider  = flag.String("provider", "anthropic", "oracle provider (anthropic or openai)")
		delay     = flag.Duration("delay", 500*time.Millisecond, "pause between rows")
		maxChars  = flag.Int("max-chars", llm.DefaultMaxArticleChars, "input text character cap per row")
		maxTokens = flag.Int64("max-tokens", llm.DefaultMaxOutputTokens, "completion output token cap")
	)
	flag.Parse()

	oracle, err := buildOracle(*provider)
	if err != nil {
		// Missing credentials is the one error allowed to abort the run
		// before any row is processed.
		log.Fatalf("configuration error: %v", err)
	}

	rows, err := collectRows(*inCSV, *inDir, *redditURL, *feed, *feedLimit)
	if err != nil {
		log.Fatalf("error reading input: %v", err)
	}
	if len(rows) == 0 {
		slog.Info("no rows to score, exiting")
		return
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("error creating output file: %v", err)
	}
	defer f.Close()

	analyzer := llm.NewAnalyzer(oracle, llm.Config{
		MaxInputChars:   *maxChars,
		MaxOutputTokens: *maxTokens,
	})
	runner := batch.NewRunner(analyzer, batch.NewSink(f), *delay)

	slog.Info("scoring batch", "rows", len(rows), "provider", *provider, "out", *out)

	if err := runner.Run(context.Background(), rows); err != nil {
		log.Fatalf("error writing output: %v", err)
	}

	slog.Info("batch complete", "rows", len(rows), "out", *out)
}

func buildOracle(provider string) (llm.Oracle, error) {
	switch provider {
	case "openai":
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return nil, errMissingKey("OPENAI_API_KEY")
		}
		return llm.NewOpenAIClient(key), nil
	default:
		key := os.Getenv("ANTHROPIC_API_KEY")
		if key == "" {
			return nil, errMissingKey("ANTHROPIC_API_KEY")
		}
		return llm.NewAnthropicClient(key), nil
	}
}

type errMissingKey string

func (e errMissingKey) Error() string {
	return "missing " + string(e) + " environment variable"
}

func collectRows(inCSV, inDir, redditURL, feed string, feedLimit int) ([]batch.Row, error) {
	switch {
	case inCSV != "":
		return batch.CSVSource(inCSV)
	case inDir != "":
		return batch.DirSource(inDir)
	case redditURL != "":
		return batch.RedditSource(reddit.NewClient(), redditURL, 100)
	case feed == "finnhub":
		return batch.NewsSource(news.NewFinnHubClient(os.Getenv("FINNHUB_API_KEY")), feedLimit)
	case feed == "alphavantage":
		return batch.NewsSource(news.NewAlphaVantageClient(os.Getenv("ALPHA_VANTAGE_API_KEY")), feedLimit)
	default:
		return nil, errors.New("no input: pass one of -in, -dir, -reddit or -feed")
	}
}
