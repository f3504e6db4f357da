package main

import (
	"log"
	"os"

	_ "github.com/niktin06sash/MicroserviceProject/Relay_service/docs"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/app"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/configs"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/logs"
	"go.uber.org/zap"
)

// @title Relay-Service
// @version 1.0
// @description Relays contact form submissions and visitor photos to a Telegram chat.
// @host localhost:3000
// @BasePath /
// @schemes http

func main() {
	config, err := configs.LoadConfig("internal/configs")
	if err != nil {
		log.Fatalf("[ERROR] [Relay-Service] Failed to load config: %v", err)
	}
	logger, err := logs.NewLogger(config.Logger)
	if err != nil {
		log.Fatalf("[ERROR] [Relay-Service] Failed to init logger: %v", err)
	}
	defer logger.Sync()
	application := app.NewRelayApplication(config, logger.ZapLogger)
	if err := application.Start(); err != nil {
		logger.ZapLogger.Error("Relay-Service stopped with error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
