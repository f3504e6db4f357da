package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/handlers/response"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/model"
)

// @Summary Submit the contact form
// @Description Relays a contact form submission to the configured Telegram chat.
// @Tags Relay
// @Accept json
// @Produce json
// @Param input body response.ContactRequest true "Contact form fields"
// @Success 200 {object} response.HTTPResponse "Notification delivered"
// @Failure 400 {object} response.HTTPResponse "Missing required fields"
// @Failure 429 {object} response.HTTPResponse "Too many requests"
// @Failure 500 {object} response.HTTPResponse "Internal server error"
// @Failure 502 {object} response.HTTPResponse "Telegram delivery failed"
// @Router /submit [post]
func (h *Handler) SubmitContact(c *gin.Context) {
	const place = API_SubmitContact
	traceID := c.GetString("traceID")
	var sub model.ContactSubmission
	// An empty body is an empty submission, reported as missing fields.
	if err := c.ShouldBindJSON(&sub); err != nil && !errors.Is(err, io.EOF) {
		h.logproducer.NewRelayLog(kafka.LogLevelWarn, place, traceID, fmt.Sprintf("Failed to decode body: %v", err))
		response.SendResponse(c, http.StatusBadRequest, response.Failure(erro.ErrorInvalidBody), traceID, place, h.logproducer)
		return
	}
	serviceresponse := h.service.SubmitContact(c.Request.Context(), traceID, &sub, clientInfo(c))
	sendServiceResponse(c, serviceresponse, traceID, place, h.logproducer)
}

// @Summary Upload a visitor photo
// @Description Relays a captured photo to the configured Telegram chat with a caption describing the visitor.
// @Tags Relay
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Photo file"
// @Success 200 {object} response.HTTPResponse "Photo delivered"
// @Failure 400 {object} response.HTTPResponse "No photo attached or file too large"
// @Failure 429 {object} response.HTTPResponse "Too many requests"
// @Failure 500 {object} response.HTTPResponse "Internal server error"
// @Failure 502 {object} response.HTTPResponse "Telegram delivery failed"
// @Router /upload-photo [post]
func (h *Handler) UploadPhoto(c *gin.Context) {
	const place = API_UploadPhoto
	traceID := c.GetString("traceID")
	if h.maxUploadSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize+multipartOverhead)
	}
	photo, err := readPhoto(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logproducer.NewRelayLog(kafka.LogLevelWarn, place, traceID, fmt.Sprintf("Request body over %d bytes", tooLarge.Limit))
			response.SendResponse(c, http.StatusBadRequest, response.Failure(erro.ErrorLargeFile), traceID, place, h.logproducer)
			return
		}
		h.logproducer.NewRelayLog(kafka.LogLevelError, place, traceID, fmt.Sprintf("Failed to read photo: %v", err))
		response.SendResponse(c, http.StatusInternalServerError, response.Failure(erro.ErrorInternalServer), traceID, place, h.logproducer)
		return
	}
	serviceresponse := h.service.UploadPhoto(c.Request.Context(), traceID, photo, clientInfo(c))
	sendServiceResponse(c, serviceresponse, traceID, place, h.logproducer)
}
