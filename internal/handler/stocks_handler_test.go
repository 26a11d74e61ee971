package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
	"github.com/katherinemll/MoodRingMarkets/internal/stocks"
)

type fakeStockStore struct {
	stocks    []stocks.Stock
	err       error
	refreshed bool
}

func (f *fakeStockStore) Stocks() ([]stocks.Stock, error) {
	return f.stocks, f.err
}

func (f *fakeStockStore) Refresh() error {
	f.refreshed = true
	return f.err
}

func newTestStocksRouter(store StockStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewStocksHandler(store)
	r.GET("/api/stocks", h.GetStocks)
	r.GET("/api/stocks/:symbol", h.GetStock)
	r.POST("/api/refresh", h.Refresh)
	return r
}

func TestGetStocks_DataError(t *testing.T) {
	store := &fakeStockStore{err: errors.New("file missing")}

	r := newTestStocksRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/stocks", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetStocks_WithResults(t *testing.T) {
	store := &fakeStockStore{
		stocks: []stocks.Stock{
			{Symbol: "AAPL", CompanyName: "Apple Inc.", SentimentScore: 72.5, SentimentSummary: "strong quarter", Mentions: 3},
			{Symbol: "TSLA", CompanyName: "Tesla, Inc.", SentimentScore: 31.0, Mentions: 1},
		},
	}

	r := newTestStocksRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/stocks", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res StocksResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, true, res.Success)
	assert.Equal(t, 2, len(res.Data))
	assert.Equal(t, "AAPL", res.Data[0].Symbol)
	assert.Equal(t, 72.5, res.Data[0].SentimentScore)
}

func TestGetStock_CaseInsensitive(t *testing.T) {
	store := &fakeStockStore{
		stocks: []stocks.Stock{
			{Symbol: "AAPL", CompanyName: "Apple Inc.", SentimentScore: 72.5},
		},
	}

	r := newTestStocksRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/stocks/aapl", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res StockResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "AAPL", res.Data.Symbol)
}

func TestGetStock_NotFound(t *testing.T) {
	store := &fakeStockStore{}

	r := newTestStocksRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/stocks/ZZZQ", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRefresh(t *testing.T) {
	store := &fakeStockStore{}

	r := newTestStocksRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/refresh", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, store.refreshed)
}
