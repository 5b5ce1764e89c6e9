package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type InquiryHandler struct {
	service usecase.InquiryService
	log     *zap.Logger
}

func NewInquiryHandler(service usecase.InquiryService, log *zap.Logger) *InquiryHandler {
	return &InquiryHandler{
		service: service,
		log:     log.With(zap.String("handler", "inquiry")),
	}
}

// CreateInquiry handles POST /api/inquiries and the legacy POST
// /api/send-email alias; both shared one table and now share one rule set.
func (h *InquiryHandler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var req request.InquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	id, err := h.service.CreateInquiry(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create inquiry")
		return
	}

	utils.ResponseCreated(w, "Inquiry submitted successfully", id)
}

// GetInquiries handles GET /api/inquiries (admin only)
func (h *InquiryHandler) GetInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.service.GetInquiries(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get inquiries")
		return
	}

	utils.ResponseSuccess(w, inquiries)
}

// PatchInquiryStatus handles PATCH /api/inquiries/{id} (admin only)
func (h *InquiryHandler) PatchInquiryStatus(w http.ResponseWriter, r *http.Request) {
	inquiryID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid inquiry ID")
		return
	}

	var req request.InquiryStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsCompleted == nil {
		utils.ResponseBadRequest(w, "Invalid status provided. Expecting a boolean value for is_completed.")
		return
	}

	if err := h.service.PatchInquiryStatus(r.Context(), inquiryID, *req.IsCompleted); err != nil {
		h.handleServiceError(w, err, "patch inquiry status")
		return
	}

	utils.ResponseMessage(w, "Inquiry status updated successfully")
}

// ExportInquiries handles GET /api/inquiries/export (admin only)
func (h *InquiryHandler) ExportInquiries(w http.ResponseWriter, r *http.Request) {
	pdfBytes, filename, err := h.service.ExportInquiriesPDF(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "export inquiries")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

func (h *InquiryHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Inquiry not found")

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, errMsg)
	}
}
