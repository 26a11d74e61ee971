// Package reddit fetches the comments of a thread through the public .json
// listing, for scoring a discussion as one text.
package reddit

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchComments returns the comment bodies of a thread, depth-first in
// listing order. Deleted and removed comments are skipped. limit bounds the
// number of top-level comments requested, not the recursion.
func (c *Client) FetchComments(threadURL string, limit int) ([]string, error) {
	jsonURL := strings.TrimSuffix(threadURL, "/")
	if !strings.HasSuffix(jsonURL, ".json") {
		jsonURL += ".json"
	}
	if limit > 0 {
		jsonURL = fmt.Sprintf("%s?limit=%d", jsonURL, limit)
	}

	req, err := http.NewRequest(http.MethodGet, jsonURL, nil)
	if err != nil {
		return nil, fmt.Errorf("reddit request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reddit fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reddit fetch: HTTP %d", resp.StatusCode)
	}

	// A thread listing is a two-element array: [post, comments].
	var listings []listing
	if err := json.NewDecoder(resp.Body).Decode(&listings); err != nil {
		return nil, fmt.Errorf("reddit decode: %w", err)
	}
	if len(listings) < 2 {
		return nil, nil
	}

	return extractBodies(listings[1].Data.Children), nil
}

func extractBodies(children []thing) []string {
	var bodies []string
	for _, child := range children {
		// Only t1 nodes are comments; "more" stubs carry no text.
		if child.Kind != "t1" {
			continue
		}

		body := strings.TrimSpace(child.Data.Body)
		if body != "" && body != "[deleted]" && body != "[removed]" {
			bodies = append(bodies, body)
		}

		if len(child.Data.Replies.Data.Children) > 0 {
			bodies = append(bodies, extractBodies(child.Data.Replies.Data.Children)...)
		}
	}
	return bodies
}

type listing struct {
	Data struct {
		Children []thing `json:"children"`
	} `json:"data"`
}

type thing struct {
	Kind string `json:"kind"`
	Data struct {
		Body    string  `json:"body"`
		Replies listing `json:"replies"`
	} `json:"data"`
}

// UnmarshalJSON tolerates the empty-replies case, where reddit sends "" in
// place of a listing object.
func (l *listing) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == `""` || string(data) == "null" {
		return nil
	}
	type plain listing
	return json.Unmarshal(data, (*plain)(l))
}
