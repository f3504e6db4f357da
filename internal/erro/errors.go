package erro

import (
	"errors"
	"net/http"
)

const ClientErrorType = "Client"
const ServerErrorType = "Server"

const (
	ErrorMissingFields    = "Missing required fields."
	ErrorInvalidBody      = "Invalid request body."
	ErrorMissingPhoto     = "No photo attached."
	ErrorLargeFile        = "File too large."
	ErrorDeliveryFailed   = "Telegram delivery failed."
	ErrorInternalServer   = "Internal server error."
	ErrorPageNotFound     = "Page not found"
	ErrorTooManyRequests  = "Too many requests"
	ErrorContextCanceled  = "Context canceled or deadline exceeded"
	ErrorTelegramRejected = "Telegram rejected notification (code %d): %s"
)

var (
	ErrValidation       = errors.New("validation error")
	ErrTransport        = errors.New("transport error")
	ErrDeliveryRejected = errors.New("delivery rejected")
)

type CustomError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (ce *CustomError) Error() string {
	return ce.Message
}
func ServerError(reason string) *CustomError {
	return &CustomError{Message: reason, Type: ServerErrorType}
}
func ClientError(reason string) *CustomError {
	return &CustomError{Message: reason, Type: ClientErrorType}
}

// StatusCode maps an error of the relay taxonomy to the HTTP status returned
// to the caller.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrDeliveryRejected):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
