package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/handlers/response"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/metrics"
	"golang.org/x/time/rate"
)

func (m *Middleware) RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limits.Enabled {
			c.Next()
			return
		}
		traceID := c.GetString(TraceIDKey)
		ip := c.ClientIP()
		limiter := getLimit(m, ip)
		if !limiter.Allow() {
			m.logproducer.NewRelayLog(kafka.LogLevelWarn, RateLimiter, traceID, fmt.Sprintf("Too many requests from %s", ip))
			response.SendResponse(c, http.StatusTooManyRequests, response.Failure(erro.ErrorTooManyRequests), traceID, RateLimiter, m.logproducer)
			c.Abort()
			metrics.RelayErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
			metrics.RelayRateLimitExceededTotal.WithLabelValues(c.Request.URL.Path).Inc()
			return
		}
		c.Next()
	}
}
func getLimit(m *Middleware, ip string) *rate.Limiter {
	entry, exist := m.rateLimiters.Load(ip)
	if !exist {
		newEntry := &RateLimiterEntry{Limiter: rate.NewLimiter(rate.Limit(m.limits.RPS), m.limits.Burst)}
		entry, _ = m.rateLimiters.LoadOrStore(ip, newEntry)
	}
	e := entry.(*RateLimiterEntry)
	e.LastUsed.Store(time.Now().UnixNano())
	return e.Limiter
}
func cleanLimit(m *Middleware) {
	ticker := time.NewTicker(m.limits.TTL)
	defer ticker.Stop()
	for {
		select {
		case <-m.stopclean:
			m.logproducer.NewRelayLog(kafka.LogLevelInfo, RateLimiter, "", "Successful completion of RateLimiter")
			return
		case <-ticker.C:
			removeIdle(m, time.Now())
		}
	}
}

// removeIdle drops limiters untouched for at least the configured TTL.
func removeIdle(m *Middleware, now time.Time) int {
	var removed int
	m.rateLimiters.Range(func(key, value any) bool {
		entry := value.(*RateLimiterEntry)
		if now.Sub(time.Unix(0, entry.LastUsed.Load())) >= m.limits.TTL {
			m.rateLimiters.Delete(key)
			removed++
		}
		return true
	})
	if removed > 0 {
		m.logproducer.NewRelayLog(kafka.LogLevelInfo, RateLimiter, "", fmt.Sprintf("Removed %d idle limiters", removed))
	}
	return removed
}
