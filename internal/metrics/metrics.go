package metrics

import (
	"runtime"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RelayTotalRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "relay_service_requests_total",
	Help: "Total number of requests to Relay-Service",
}, []string{"path"})
var RelayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "relay_service_duration_seconds",
	Help:    "Histogram for the request duration in seconds in Relay-Service",
	Buckets: []float64{0.1, 0.5, 1, 2, 5},
}, []string{"handler"})
var RelayErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "relay_service_errors_total",
	Help: "Total number of errors encountered by the Relay-Service",
}, []string{"error_type"})
var RelayTotalSuccessfulRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "relay_service_successful_requests_total",
	Help: "Total number of successful requests to Relay-Service",
}, []string{"handler"})
var RelayBackendRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "relay_service_backend_requests_total",
	Help: "Total number of requests sent to the Telegram Bot API",
}, []string{"method"})
var RelayDeliveryFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "relay_service_delivery_failures_total",
	Help: "Total number of notifications the Telegram Bot API did not accept",
}, []string{"method", "reason"})
var RelayRateLimitExceededTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "relay_service_rate_limit_exceeded_total",
	Help: "Total number of requests that exceeded the rate limit",
}, []string{"path"})
var RelayMemoryUsage = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "relay_service_memory_usage_bytes",
	Help: "Current memory usage in bytes",
})
var RelayKafkaProducerMessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "relay_service_kafka_producer_messages_sent_total",
	Help: "Total number of messages sent to Kafka by Relay-Service",
}, []string{"topics"})
var RelayKafkaProducerErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "relay_service_kafka_producer_send_errors_total",
	Help: "Total number of errors encountered while sending messages to Kafka by Relay-Service",
}, []string{"topics"})
var RelayKafkaProducerBufferSize = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "relay_service_kafka_producer_queue_size",
	Help: "Current size of the Kafka producer message queue in Relay-Service",
})

var (
	stop     = make(chan struct{})
	stopOnce sync.Once
)

// Start samples process memory every 10 seconds until Stop is called.
func Start() {
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				var memStats runtime.MemStats
				runtime.ReadMemStats(&memStats)
				RelayMemoryUsage.Set(float64(memStats.Alloc))
			case <-stop:
				return
			}
		}
	}()
}
func Stop() {
	stopOnce.Do(func() { close(stop) })
}
