package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/katherinemll/MoodRingMarkets/internal/handler"
	"github.com/katherinemll/MoodRingMarkets/internal/stocks"
)

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	var (
		csvPath = flag.String("csv", "combined_sentiment.csv", "scored sentiment CSV to serve")
		addr    = flag.String("addr", ":5002", "listen address")
	)
	flag.Parse()

	store := stocks.NewStore(*csvPath)
	if err := store.Refresh(); err != nil {
		log.Fatalf("error loading %s: %v", *csvPath, err)
	}

	stocksHandler := handler.NewStocksHandler(store)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/api/stocks", stocksHandler.GetStocks)
	r.GET("/api/stocks/:symbol", stocksHandler.GetStock)
	r.POST("/api/refresh", stocksHandler.Refresh)
	r.GET("/health", stocksHandler.GetHealth)

	if err := r.Run(*addr); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
