package news

import "time"

// Article is one fetched news item, before scoring.
type Article struct {
	Headline    string
	Summary     string
	URL         string
	Publisher   string
	PublishedAt time.Time
}

// Client fetches recent market news from one upstream feed.
type Client interface {
	Fetch(limit int) ([]Article, error)
	Name() string
}
