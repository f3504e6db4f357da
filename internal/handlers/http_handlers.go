package handlers

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/configs"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/handlers/middleware"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/model"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//go:generate mockgen -source=http_handlers.go -destination=mocks/mock.go

type RelayService interface {
	SubmitContact(ctx context.Context, traceid string, sub *model.ContactSubmission, info model.ClientInfo) *service.ServiceResponse
	UploadPhoto(ctx context.Context, traceid string, photo *model.PhotoSubmission, info model.ClientInfo) *service.ServiceResponse
}
type LogProducer interface {
	NewRelayLog(level, place, traceid, msg string)
}
type Handler struct {
	service        RelayService
	middleware     *middleware.Middleware
	logproducer    LogProducer
	staticDir      string
	maxUploadSize  int64
	trustedProxies []string
}

const (
	API_SubmitContact = "API-SubmitContact"
	API_UploadPhoto   = "API-UploadPhoto"
	API_NotFound      = "API-NotFound"
	API_InitRoutes    = "API-InitRoutes"
)

func NewHandler(service RelayService, middleware *middleware.Middleware, logproducer LogProducer, config configs.ServerConfig) *Handler {
	return &Handler{
		service:        service,
		middleware:     middleware,
		logproducer:    logproducer,
		staticDir:      config.StaticDir,
		maxUploadSize:  config.MaxUploadSize,
		trustedProxies: config.TrustedProxies,
	}
}
func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()
	// Forwarded headers only count when the peer is a listed proxy; the
	// per-IP limiter keys on the resulting client address.
	if err := r.SetTrustedProxies(h.trustedProxies); err != nil {
		h.logproducer.NewRelayLog(kafka.LogLevelError, API_InitRoutes, "", fmt.Sprintf("Invalid trusted proxies, trusting none: %v", err))
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(h.middleware.Logging(), h.middleware.Metrics(), h.middleware.Recovery())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", h.Health)
	r.GET("/", h.Index)
	r.Static("/static", h.staticDir)
	relay := r.Group("/", h.middleware.RateLimiter())
	{
		relay.POST("/submit", h.SubmitContact)
		relay.POST("/upload-photo", h.UploadPhoto)
	}
	r.NoRoute(h.NotFound)
	return r
}
