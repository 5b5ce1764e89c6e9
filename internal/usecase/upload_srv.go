package usecase

import (
	"context"
	"fmt"
	"io"

	"travel-booking/internal/dto/response"
	"travel-booking/pkg/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

type UploadService interface {
	// UploadImage pushes the file to the CDN and returns its public address.
	// The backend stores nothing; trip rows reference the returned URL.
	UploadImage(ctx context.Context, file io.Reader) (*response.UploadResponse, error)
}

type uploadService struct {
	cld    *cloudinary.Cloudinary
	folder string
	log    *zap.Logger
}

func NewUploadService(config *utils.Config, log *zap.Logger) UploadService {
	s := &uploadService{
		folder: config.Cloudinary.Folder,
		log:    log.With(zap.String("service", "upload")),
	}

	if config.Cloudinary.URL == "" {
		s.log.Warn("CLOUDINARY_URL unset; image upload disabled")
		return s
	}

	cld, err := cloudinary.NewFromURL(config.Cloudinary.URL)
	if err != nil {
		s.log.Error("Failed to init Cloudinary; image upload disabled", zap.Error(err))
		return s
	}
	s.cld = cld

	return s
}

func (s *uploadService) UploadImage(ctx context.Context, file io.Reader) (*response.UploadResponse, error) {
	if s.cld == nil {
		return nil, fmt.Errorf("image upload not configured")
	}

	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         s.folder,
		UseFilename:    api.Bool(true),
		UniqueFilename: api.Bool(true),
	})
	if err != nil {
		s.log.Error("Image upload failed", zap.Error(err))
		return nil, fmt.Errorf("image upload failed: %w", err)
	}
	if result.Error.Message != "" {
		s.log.Error("Image upload rejected", zap.String("reason", result.Error.Message))
		return nil, fmt.Errorf("image upload failed: %s", result.Error.Message)
	}

	s.log.Info("Image uploaded",
		zap.String("public_id", result.PublicID),
		zap.Int("width", result.Width),
		zap.Int("height", result.Height),
	)

	return &response.UploadResponse{
		Success:  true,
		URL:      result.SecureURL,
		PublicID: result.PublicID,
		Width:    result.Width,
		Height:   result.Height,
	}, nil
}
