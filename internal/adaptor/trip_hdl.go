package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TripHandler struct {
	service usecase.TripService
	log     *zap.Logger
}

func NewTripHandler(service usecase.TripService, log *zap.Logger) *TripHandler {
	return &TripHandler{
		service: service,
		log:     log.With(zap.String("handler", "trip")),
	}
}

// GetTrips handles GET /api/trips
func (h *TripHandler) GetTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := h.service.GetTrips(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get trips")
		return
	}

	utils.ResponseSuccess(w, trips)
}

// GetTripByID handles GET /api/trips/{id}
func (h *TripHandler) GetTripByID(w http.ResponseWriter, r *http.Request) {
	tripID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid trip ID")
		return
	}

	trip, err := h.service.GetTripByID(r.Context(), tripID)
	if err != nil {
		h.handleServiceError(w, err, "get trip by ID")
		return
	}

	utils.ResponseSuccess(w, trip)
}

// CreateTrip handles POST /api/trips (admin only)
func (h *TripHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req request.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	id, err := h.service.CreateTrip(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create trip")
		return
	}

	utils.ResponseCreated(w, "Trip created successfully", id)
}

// ReplaceTrip handles PUT /api/trips/{id} (admin only, full replace)
func (h *TripHandler) ReplaceTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid trip ID")
		return
	}

	var req request.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.ReplaceTrip(r.Context(), tripID, &req); err != nil {
		h.handleServiceError(w, err, "update trip")
		return
	}

	utils.ResponseMessage(w, "Trip updated successfully")
}

// DeleteTrip handles DELETE /api/trips/{id} (admin only)
func (h *TripHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid trip ID")
		return
	}

	if err := h.service.DeleteTrip(r.Context(), tripID); err != nil {
		h.handleServiceError(w, err, "delete trip")
		return
	}

	utils.ResponseMessage(w, "Trip deleted successfully")
}

// handleServiceError maps service errors onto the response taxonomy
func (h *TripHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Trip not found")

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg)

	default:
		// Internal admin tool: the underlying store message passes through.
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, errMsg)
	}
}
