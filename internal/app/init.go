package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/client"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/configs"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/handlers"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/handlers/middleware"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/metrics"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/server"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/service"
	"go.uber.org/zap"
)

type RelayApplication struct {
	config configs.Config
	logger *zap.Logger
	server *server.Server
}

func NewRelayApplication(config configs.Config, logger *zap.Logger) *RelayApplication {
	return &RelayApplication{config: config, logger: logger}
}

// CheckCredentials fails on missing Telegram credentials unless the process
// runs in production mode, where the gap is only logged.
func (a *RelayApplication) CheckCredentials() error {
	err := a.config.Validate()
	if err == nil {
		return nil
	}
	if a.config.IsProduction() {
		a.logger.Error("Telegram credentials are missing, notifications will fail", zap.Error(err))
		return nil
	}
	return err
}

// Build wires the relay and returns the routed handler.
func (a *RelayApplication) Build(logproducer *kafka.LogProducer, mw *middleware.Middleware) (*gin.Engine, error) {
	extractor, err := service.NewMetadataExtractor(a.config.App.Timezone, nil)
	if err != nil {
		return nil, err
	}
	formatter := service.NewFormatter(a.config.Telegram.ParseMode, a.config.App.Timezone)
	telegram := client.NewTelegramClient(a.config.Telegram)
	relay := service.NewRelayService(telegram, extractor, formatter, logproducer, a.config.Server.MaxUploadSize)
	handler := handlers.NewHandler(relay, mw, logproducer, a.config.Server)
	return handler.InitRoutes(), nil
}

func (a *RelayApplication) Start() error {
	defer func() {
		a.logger.Debug("Count of active goroutines", zap.Int("goroutines", runtime.NumGoroutine()))
	}()
	if err := a.CheckCredentials(); err != nil {
		return err
	}
	if a.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	metrics.Start()
	defer metrics.Stop()
	logproducer := kafka.NewLogProducer(a.config.Kafka, a.logger)
	defer logproducer.Close()
	mw := middleware.NewMiddleware(logproducer, a.config.RateLimit)
	defer mw.Stop()
	router, err := a.Build(logproducer, mw)
	if err != nil {
		return err
	}
	a.server = server.NewServer(a.config.Server, router, a.logger)
	serverError := make(chan error, 1)
	go func() {
		if err := a.server.Run(); err != nil {
			serverError <- fmt.Errorf("server run failed: %w", err)
			return
		}
		close(serverError)
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(quit)
	select {
	case sig := <-quit:
		a.logger.Info("Server shutting down with signal", zap.String("signal", sig.String()))
	case err, ok := <-serverError:
		if ok {
			a.logger.Error("Server startup failed", zap.Error(err))
			return err
		}
		return nil
	}
	return a.Stop()
}
func (a *RelayApplication) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.GracefulShutdown)
	defer cancel()
	a.logger.Info("Server is shutting down...")
	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Error("Server shutdown error", zap.Error(err))
		return err
	}
	a.logger.Info("Server has shutted down successfully")
	return nil
}
