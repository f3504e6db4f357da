package logs

import (
	"fmt"
	"os"
	"strings"

	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/configs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	ZapLogger *zap.Logger
	writer    *lumberjack.Logger
}

// NewLogger builds a JSON zap logger writing to stdout and, when config.File is
// set, to a rotated log file.
func NewLogger(config configs.LoggerConfig) (*Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(config.Level))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "timestamp"
	encoder := zapcore.NewJSONEncoder(encoderConfig)
	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)}
	var writer *lumberjack.Logger
	if config.File != "" {
		writer = &lumberjack.Logger{
			Filename:   config.File,
			MaxSize:    config.Rotation.MaxSize,
			MaxAge:     config.Rotation.MaxAge,
			MaxBackups: config.Rotation.MaxBackups,
			Compress:   config.Rotation.Compress,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(writer), level))
	}
	logger := zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zapcore.ErrorLevel)).With(zap.String("service", "Relay-Service"))
	return &Logger{ZapLogger: logger, writer: writer}, nil
}
func (logg *Logger) Sync() {
	_ = logg.ZapLogger.Sync()
	if logg.writer != nil {
		logg.writer.Close()
	}
}
