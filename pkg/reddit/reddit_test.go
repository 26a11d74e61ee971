package reddit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

const threadJSON = `[
  {"data": {"children": [{"kind": "t3", "data": {"title": "New tariff rules"}}]}},
  {"data": {"children": [
    {"kind": "t1", "data": {"body": "This is chaos", "replies": {"data": {"children": [
      {"kind": "t1", "data": {"body": "Agreed, selling everything", "replies": ""}}
    ]}}}},
    {"kind": "t1", "data": {"body": "[deleted]", "replies": ""}},
    {"kind": "more", "data": {}},
    {"kind": "t1", "data": {"body": "Buying the dip", "replies": ""}}
  ]}}
]`

func TestFetchComments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, true, r.URL.Path == "/r/StockMarket/comments/abc/thread.json")
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(threadJSON))
	}))
	defer srv.Close()

	client := NewClient()
	comments, err := client.FetchComments(srv.URL+"/r/StockMarket/comments/abc/thread/", 100)

	assert.Equal(t, nil, err)
	assert.Equal(t, []string{
		"This is chaos",
		"Agreed, selling everything",
		"Buying the dip",
	}, comments)
}

func TestFetchCommentsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient()
	_, err := client.FetchComments(srv.URL+"/r/x/comments/1/t", 0)
	assert.NotEqual(t, nil, err)
}
