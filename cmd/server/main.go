package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"schoolportal/internal/config"
	"schoolportal/internal/server"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	cfg := config.New()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to create server", zap.Error(err))
	}
	defer srv.Close()

	if err := srv.Run(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
