package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/pkg/middleware"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireInquiry(
	r chi.Router,
	inquiryHandler *adaptor.InquiryHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// The contact form posts here; /api/send-email is the legacy alias the
	// original frontend still calls.
	r.Post("/api/inquiries", inquiryHandler.CreateInquiry)
	r.Post("/api/send-email", inquiryHandler.CreateInquiry)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminAuth(config.JWT, log))

		r.Get("/api/inquiries", inquiryHandler.GetInquiries)
		r.Get("/api/inquiries/export", inquiryHandler.ExportInquiries)
		r.Patch("/api/inquiries/{id}", inquiryHandler.PatchInquiryStatus)
	})
}
