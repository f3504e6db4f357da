package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/metrics"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type RelayLog struct {
	Level     string `json:"-"`
	Service   string `json:"service"`
	Place     string `json:"place"`
	TraceID   string `json:"trace_id"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

func (kf *LogProducer) NewRelayLog(level, place, traceid, msg string) {
	fields := []zap.Field{zap.String("place", place), zap.String("trace_id", traceid)}
	switch level {
	case LogLevelError:
		kf.logger.Error(msg, fields...)
	case LogLevelWarn:
		kf.logger.Warn(msg, fields...)
	default:
		kf.logger.Info(msg, fields...)
	}
	if kf.writer == nil {
		return
	}
	newlog := RelayLog{
		Level:     level,
		Service:   "Relay-Service",
		Place:     place,
		TraceID:   traceid,
		Timestamp: time.Now().Format(time.RFC3339),
		Message:   msg,
	}
	kf.mu.RLock()
	defer kf.mu.RUnlock()
	if kf.closed {
		return
	}
	select {
	case kf.logchan <- newlog:
		metrics.RelayKafkaProducerBufferSize.Set(float64(len(kf.logchan)))
	default:
		kf.logger.Warn("Log channel is full, dropping log", zap.String("trace_id", traceid), zap.String("place", place))
	}
}
func (kf *LogProducer) sendLogs(num int) {
	defer kf.wg.Done()
	for logg := range kf.logchan {
		metrics.RelayKafkaProducerBufferSize.Set(float64(len(kf.logchan)))
		topic := "relay-" + strings.ToLower(logg.Level) + "-log-topic"
		data, err := json.Marshal(logg)
		if err != nil {
			kf.logger.Error("Failed to marshal log", zap.Int("worker", num), zap.Error(err))
			continue
		}
		ctx, cancel := context.WithTimeout(kf.context, 5*time.Second)
		err = kf.writer.WriteMessages(ctx, kafka.Message{
			Topic: topic,
			Key:   []byte(logg.TraceID),
			Value: data,
		})
		cancel()
		if err != nil {
			kf.logger.Warn("Failed to send log", zap.Int("worker", num), zap.String("topic", topic), zap.Error(err))
			metrics.RelayKafkaProducerErrorsTotal.WithLabelValues(topic).Inc()
			metrics.RelayErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
			continue
		}
		metrics.RelayKafkaProducerMessagesSent.WithLabelValues(topic).Inc()
	}
}
