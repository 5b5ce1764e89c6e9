package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/pkg/middleware"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTrip(
	r chi.Router,
	tripHandler *adaptor.TripHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Anyone can browse the catalog
	r.Get("/api/trips", tripHandler.GetTrips)
	r.Get("/api/trips/{id}", tripHandler.GetTripByID)

	// ==================== ADMIN ROUTES ====================
	// Mutations require a verified admin token
	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminAuth(config.JWT, log))

		r.Post("/api/trips", tripHandler.CreateTrip)
		r.Put("/api/trips/{id}", tripHandler.ReplaceTrip)
		r.Delete("/api/trips/{id}", tripHandler.DeleteTrip)
	})
}
