package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/metrics"
)

// swagger:model HTTPResponse
type HTTPResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// swagger:model ContactRequest
type ContactRequest struct {
	Email     string `json:"email" example:"visitor@example.com"`
	Instagram string `json:"instagram,omitempty" example:"@visitor"`
	Subject   string `json:"subject" example:"Booking"`
	Message   string `json:"message" example:"Hello!"`
}

type LogProducer interface {
	NewRelayLog(level, place, traceid, msg string)
}

func SendResponse(c *gin.Context, status int, response HTTPResponse, traceid string, place string, logproducer LogProducer) {
	c.JSON(status, response)
	if response.Success {
		metrics.RelayTotalSuccessfulRequests.WithLabelValues(place).Inc()
		logproducer.NewRelayLog(kafka.LogLevelInfo, place, traceid, "Succesfull send response to client")
		return
	}
	level := kafka.LogLevelWarn
	if status >= http.StatusInternalServerError {
		level = kafka.LogLevelError
	}
	logproducer.NewRelayLog(level, place, traceid, "Send error response to client: "+response.Error)
}
func Success() HTTPResponse {
	return HTTPResponse{Success: true}
}
func Failure(message string) HTTPResponse {
	return HTTPResponse{Success: false, Error: message}
}
