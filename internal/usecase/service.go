package usecase

import (
	"travel-booking/internal/data/repository"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Trip    TripService
	Inquiry InquiryService
	Upload  UploadService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Trip:    NewTripService(repo, log),
		Inquiry: NewInquiryService(repo, log),
		Upload:  NewUploadService(config, log),
	}
}
