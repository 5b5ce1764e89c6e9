package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/pkg/middleware"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUpload(
	r chi.Router,
	uploadHandler *adaptor.UploadHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Only admins push images to the CDN
	r.With(middleware.AdminAuth(config.JWT, log)).Post("/api/upload", uploadHandler.UploadImage)
}
