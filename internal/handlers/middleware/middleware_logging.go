package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/handlers/response"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/metrics"
)

func (m *Middleware) Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := uuid.New().String()
		c.Set(TraceIDKey, traceID)
		c.Header(TraceIDHeader, traceID)
		start := time.Now()
		m.logproducer.NewRelayLog(kafka.LogLevelInfo, Logging, traceID, fmt.Sprintf("Request %s %s from %s", c.Request.Method, c.Request.URL.Path, c.ClientIP()))
		c.Next()
		m.logproducer.NewRelayLog(kafka.LogLevelInfo, Logging, traceID, fmt.Sprintf("Completed with status %d in %v", c.Writer.Status(), time.Since(start)))
	}
}

// Metrics labels requests by route template so unmatched paths share one series.
func (m *Middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RelayTotalRequests.WithLabelValues(path).Inc()
		metrics.RelayRequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}
}

func (m *Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		traceID := c.GetString(TraceIDKey)
		m.logproducer.NewRelayLog(kafka.LogLevelError, Recovery, traceID, fmt.Sprintf("Recovered from panic: %v", recovered))
		metrics.RelayErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
		response.SendResponse(c, http.StatusInternalServerError, response.Failure(erro.ErrorInternalServer), traceID, Recovery, m.logproducer)
		c.Abort()
	})
}
