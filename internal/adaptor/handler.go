package adaptor

import (
	"travel-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Trip    *TripHandler
	Inquiry *InquiryHandler
	Upload  *UploadHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Trip:    NewTripHandler(service.Trip, log),
		Inquiry: NewInquiryHandler(service.Inquiry, log),
		Upload:  NewUploadHandler(service.Upload, log),
	}
}
