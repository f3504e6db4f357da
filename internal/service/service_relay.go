package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/client"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/metrics"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/model"
)

// RelayService turns one submission into one Telegram call.
type RelayService struct {
	notifier      Notifier
	extractor     *MetadataExtractor
	formatter     *Formatter
	validator     *validator.Validate
	logproducer   LogProducer
	maxUploadSize int64
}

func NewRelayService(notifier Notifier, extractor *MetadataExtractor, formatter *Formatter, logproducer LogProducer, maxUploadSize int64) *RelayService {
	return &RelayService{
		notifier:      notifier,
		extractor:     extractor,
		formatter:     formatter,
		validator:     validator.New(),
		logproducer:   logproducer,
		maxUploadSize: maxUploadSize,
	}
}

// SubmitContact validates before metadata is extracted, so an incomplete
// submission never reaches the formatter or the notifier.
func (s *RelayService) SubmitContact(ctx context.Context, traceid string, sub *model.ContactSubmission, info model.ClientInfo) *ServiceResponse {
	const place = UseCase_SubmitContact
	if err := s.validator.Struct(sub); err != nil {
		s.logproducer.NewRelayLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Validation error: %v", err))
		return failure(erro.ErrValidation, erro.ErrorMissingFields)
	}
	meta := s.extractor.Extract(info)
	text := s.formatter.ContactMessage(*sub, meta)
	result, err := s.notifier.SendMessage(ctx, text)
	return s.deliveryResponse(place, traceid, client.MethodSendMessage, result, err)
}

func (s *RelayService) UploadPhoto(ctx context.Context, traceid string, photo *model.PhotoSubmission, info model.ClientInfo) *ServiceResponse {
	const place = UseCase_UploadPhoto
	if photo == nil || len(photo.Data) == 0 {
		s.logproducer.NewRelayLog(kafka.LogLevelWarn, place, traceid, "No photo attached")
		return failure(erro.ErrValidation, erro.ErrorMissingPhoto)
	}
	if s.maxUploadSize > 0 && int64(len(photo.Data)) > s.maxUploadSize {
		s.logproducer.NewRelayLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("File too large: %v bytes", len(photo.Data)))
		return failure(erro.ErrValidation, erro.ErrorLargeFile)
	}
	meta := s.extractor.Extract(info)
	caption := s.formatter.PhotoCaption(meta)
	result, err := s.notifier.SendPhoto(ctx, photo.Data, caption)
	return s.deliveryResponse(place, traceid, client.MethodSendPhoto, result, err)
}

// deliveryResponse applies the same ok-check to both methods.
func (s *RelayService) deliveryResponse(place, traceid, method string, result *model.NotificationResult, err error) *ServiceResponse {
	if err != nil {
		s.logproducer.NewRelayLog(kafka.LogLevelError, place, traceid, fmt.Sprintf("%s error: %v", method, err))
		metrics.RelayDeliveryFailuresTotal.WithLabelValues(method, "transport").Inc()
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return failure(err, erro.ErrorContextCanceled)
		}
		return failure(err, erro.ErrorInternalServer)
	}
	if result == nil || !result.OK {
		var code int
		var description string
		if result != nil {
			code, description = result.ErrorCode, result.Description
		}
		s.logproducer.NewRelayLog(kafka.LogLevelError, place, traceid, fmt.Sprintf(erro.ErrorTelegramRejected, code, description))
		metrics.RelayDeliveryFailuresTotal.WithLabelValues(method, "rejected").Inc()
		return failure(erro.ErrDeliveryRejected, erro.ErrorDeliveryFailed)
	}
	s.logproducer.NewRelayLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("Notification delivered via %s", method))
	return &ServiceResponse{Success: true, Status: http.StatusOK}
}

func failure(err error, message string) *ServiceResponse {
	status := erro.StatusCode(err)
	if status < http.StatusInternalServerError {
		metrics.RelayErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
		return &ServiceResponse{Success: false, Errors: erro.ClientError(message), Status: status}
	}
	metrics.RelayErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
	return &ServiceResponse{Success: false, Errors: erro.ServerError(message), Status: status}
}
