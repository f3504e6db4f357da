package kafka

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/configs"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	LogLevelInfo  = "INFO"
	LogLevelWarn  = "WARN"
	LogLevelError = "ERROR"
)

// LogProducer writes request-scoped log events to zap and, when Kafka is
// configured, ships them to relay-<level>-log-topic.
type LogProducer struct {
	logger  *zap.Logger
	writer  *kafka.Writer
	logchan chan RelayLog
	wg      *sync.WaitGroup
	mu      sync.RWMutex
	closed  bool
	context context.Context
	cancel  context.CancelFunc
}

func NewLogProducer(config configs.KafkaConfig, logger *zap.Logger) *LogProducer {
	ctx, cancel := context.WithCancel(context.Background())
	producer := &LogProducer{
		logger:  logger,
		wg:      &sync.WaitGroup{},
		context: ctx,
		cancel:  cancel,
	}
	if config.BootstrapServers == "" {
		logger.Info("Kafka log shipping disabled")
		return producer
	}
	brokers := strings.Split(config.BootstrapServers, ",")
	var acks kafka.RequiredAcks
	switch config.Acks {
	case "0":
		acks = kafka.RequireNone
	case "1":
		acks = kafka.RequireOne
	default:
		acks = kafka.RequireAll
	}
	producer.writer = &kafka.Writer{
		Addr:            kafka.TCP(brokers...),
		Balancer:        &kafka.LeastBytes{},
		WriteTimeout:    10 * time.Second,
		WriteBackoffMin: time.Duration(config.RetryBackoffMs) * time.Millisecond,
		WriteBackoffMax: 5 * time.Second,
		MaxAttempts:     3,
		BatchSize:       config.BatchSize,
		RequiredAcks:    acks,
	}
	producer.logchan = make(chan RelayLog, config.BufferSize)
	for i := 1; i <= config.Workers; i++ {
		producer.wg.Add(1)
		go producer.sendLogs(i)
	}
	logger.Info("Successful connect to Kafka-Producer", zap.Strings("brokers", brokers))
	return producer
}

// Close drains queued logs for up to five seconds, then abandons the rest.
func (kf *LogProducer) Close() {
	kf.mu.Lock()
	if kf.closed {
		kf.mu.Unlock()
		return
	}
	kf.closed = true
	if kf.logchan != nil {
		close(kf.logchan)
	}
	kf.mu.Unlock()
	done := make(chan struct{})
	go func() {
		kf.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		kf.logger.Warn("Kafka-Producer drain timed out")
	}
	kf.cancel()
	<-done
	if kf.writer != nil {
		if err := kf.writer.Close(); err != nil {
			kf.logger.Error("Failed to close Kafka-Producer", zap.Error(err))
			return
		}
		kf.logger.Info("Successful close Kafka-Producer")
	}
}
