package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/katherinemll/MoodRingMarkets/internal/stocks"
)

type StockStore interface {
	Stocks() ([]stocks.Stock, error)
	Refresh() error
}

type StocksHandler struct {
	store StockStore
}

func NewStocksHandler(store StockStore) *StocksHandler {
	return &StocksHandler{store: store}
}

func (h *StocksHandler) GetStocks(c *gin.Context) {
	list, err := h.store.Stocks()
	if err != nil {
		slog.Error("error loading stocks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Data error"})
		return
	}

	c.JSON(http.StatusOK, StocksResponse{
		Success: true,
		Data:    list,
	})
}

func (h *StocksHandler) GetStock(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))

	list, err := h.store.Stocks()
	if err != nil {
		slog.Error("error loading stocks", "error", err, "symbol", symbol)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Data error"})
		return
	}

	for _, stock := range list {
		if stock.Symbol == symbol {
			c.JSON(http.StatusOK, StockResponse{Success: true, Data: stock})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Stock not found"})
}

func (h *StocksHandler) Refresh(c *gin.Context) {
	if err := h.store.Refresh(); err != nil {
		slog.Error("error refreshing stocks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Data error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Data refreshed successfully"})
}

func (h *StocksHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
