package batch

import (
	"fmt"
	"strings"

	"github.com/katherinemll/MoodRingMarkets/pkg/reddit"
)

// maxRedditComments caps how many comments are joined into the scored text,
// keeping the prompt within the input character budget's neighborhood.
const maxRedditComments = 50

// RedditSource scores a whole discussion thread as a single row keyed by the
// thread URL.
func RedditSource(client *reddit.Client, threadURL string, limit int) ([]Row, error) {
	comments, err := client.FetchComments(threadURL, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch reddit thread: %w", err)
	}
	if len(comments) == 0 {
		return nil, fmt.Errorf("no comments found in %s", threadURL)
	}

	if len(comments) > maxRedditComments {
		comments = comments[:maxRedditComments]
	}

	return []Row{{
		Key:   threadURL,
		Title: "reddit thread",
		Text:  strings.Join(comments, "\n\n"),
	}}, nil
}
