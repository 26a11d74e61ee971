package batch

import (
	"fmt"

	"github.com/katherinemll/MoodRingMarkets/pkg/news"
)

// NewsSource fetches recent articles from a feed and shapes them into rows,
// so the scorer can run straight off a news API instead of a pre-scraped
// file.
func NewsSource(client news.Client, limit int) ([]Row, error) {
	articles, err := client.Fetch(limit)
	if err != nil {
		return nil, fmt.Errorf("fetch %s news: %w", client.Name(), err)
	}

	rows := make([]Row, 0, len(articles))
	for _, a := range articles {
		text := a.Headline
		if a.Summary != "" {
			text = a.Headline + "\n\n" + a.Summary
		}
		rows = append(rows, Row{
			Key:   a.URL,
			Title: a.Headline,
			Text:  text,
		})
	}

	return rows, nil
}
