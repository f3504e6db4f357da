package middleware

import (
	"sync"
	"sync/atomic"

	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/configs"
	"golang.org/x/time/rate"
)

type RateLimiterEntry struct {
	Limiter  *rate.Limiter
	LastUsed atomic.Int64
}
type Middleware struct {
	logproducer  LogProducer
	limits       configs.RateLimitConfig
	rateLimiters sync.Map
	stopclean    chan struct{}
	stopOnce     sync.Once
}
type LogProducer interface {
	NewRelayLog(level, place, traceid, msg string)
}

const (
	Logging     = "Middleware-Logging"
	RateLimiter = "Middleware-RateLimiter"
	Recovery    = "Middleware-Recovery"
)

// TraceIDKey is the gin context key holding the request trace id.
const TraceIDKey = "traceID"
const TraceIDHeader = "X-Trace-ID"

func NewMiddleware(logproducer LogProducer, limits configs.RateLimitConfig) *Middleware {
	m := &Middleware{
		logproducer: logproducer,
		limits:      limits,
		stopclean:   make(chan struct{}),
	}
	if limits.Enabled && limits.TTL > 0 {
		go cleanLimit(m)
	}
	return m
}
func (m *Middleware) Stop() {
	m.stopOnce.Do(func() { close(m.stopclean) })
}
