package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/handlers/response"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/model"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/service"
)

// multipartOverhead is the room left for form boundaries and headers on top
// of the photo size limit.
const multipartOverhead = 1 << 20

func clientInfo(c *gin.Context) model.ClientInfo {
	return model.ClientInfo{
		ForwardedFor: strings.Join(c.Request.Header.Values("X-Forwarded-For"), ", "),
		RemoteAddr:   c.Request.RemoteAddr,
		UserAgent:    c.Request.UserAgent(),
	}
}

// readPhoto returns nil without error when the request carries no photo part;
// the service reports that case.
func readPhoto(c *gin.Context) (*model.PhotoSubmission, error) {
	header, err := c.FormFile("photo")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, err
		}
		return nil, nil
	}
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open photo: %w", err)
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}
	return &model.PhotoSubmission{
		Data:        data,
		ContentType: http.DetectContentType(data),
		Filename:    header.Filename,
	}, nil
}

func sendServiceResponse(c *gin.Context, serviceresponse *service.ServiceResponse, traceid, place string, logproducer response.LogProducer) {
	if serviceresponse.Success {
		response.SendResponse(c, http.StatusOK, response.Success(), traceid, place, logproducer)
		return
	}
	message := serviceresponse.Errors.Message
	response.SendResponse(c, serviceresponse.Status, response.Failure(message), traceid, place, logproducer)
}
