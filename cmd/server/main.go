package main

import (
	"log"

	"github.com/sand1027/careerConnect/internal/config"
	"github.com/sand1027/careerConnect/internal/server"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.New()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Create and run server
	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to create server", zap.Error(err))
	}
	defer srv.Close()

	if err := srv.Run(); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
