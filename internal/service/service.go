package service

import (
	"context"

	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/model"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go

type Notifier interface {
	SendMessage(ctx context.Context, text string) (*model.NotificationResult, error)
	SendPhoto(ctx context.Context, photo []byte, caption string) (*model.NotificationResult, error)
}
type LogProducer interface {
	NewRelayLog(level, place, traceid, msg string)
}

const UseCase_SubmitContact = "UseCase_SubmitContact"
const UseCase_UploadPhoto = "UseCase_UploadPhoto"

type ServiceResponse struct {
	Success bool
	Errors  *erro.CustomError
	Status  int
}
