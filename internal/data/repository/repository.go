package repository

import (
	"travel-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Trip    TripRepository
	Inquiry InquiryRepository
	Admin   AdminRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Trip:    NewTripRepository(db, log),
		Inquiry: NewInquiryRepository(db, log),
		Admin:   NewAdminRepository(db, log),
	}
}
