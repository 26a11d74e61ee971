package handler

import "github.com/katherinemll/MoodRingMarkets/internal/stocks"

type StocksResponse struct {
	Success bool           `json:"success"`
	Data    []stocks.Stock `json:"data"`
}

type StockResponse struct {
	Success bool         `json:"success"`
	Data    stocks.Stock `json:"data"`
}
