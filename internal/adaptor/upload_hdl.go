package adaptor

import (
	"net/http"

	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

const maxUploadBytes = 10 << 20 // 10 MB

type UploadHandler struct {
	service usecase.UploadService
	log     *zap.Logger
}

func NewUploadHandler(service usecase.UploadService, log *zap.Logger) *UploadHandler {
	return &UploadHandler{
		service: service,
		log:     log.With(zap.String("handler", "upload")),
	}
}

type uploadError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UploadImage handles POST /api/upload (admin only): multipart field "image"
// is pushed to the CDN and its public address returned.
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.ResponseJSON(w, http.StatusBadRequest, uploadError{Message: "No image file uploaded"})
		return
	}
	defer file.Close()

	resp, err := h.service.UploadImage(r.Context(), file)
	if err != nil {
		h.log.Error("Image upload failed",
			zap.Error(err),
			zap.String("filename", header.Filename),
		)
		utils.ResponseJSON(w, http.StatusInternalServerError, uploadError{Message: "Image upload failed"})
		return
	}

	utils.ResponseJSON(w, http.StatusOK, resp)
}
