package usecase

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

type TripService interface {
	GetTrips(ctx context.Context) ([]response.TripResponse, error)
	GetTripByID(ctx context.Context, tripID int64) (*response.TripResponse, error)
	CreateTrip(ctx context.Context, req *request.TripRequest) (int64, error)
	// ReplaceTrip overwrites every field; there is no partial-patch path for
	// trips, unlike the inquiry status toggle.
	ReplaceTrip(ctx context.Context, tripID int64, req *request.TripRequest) error
	DeleteTrip(ctx context.Context, tripID int64) error
}

type tripService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTripService(repo *repository.Repository, log *zap.Logger) TripService {
	return &tripService{
		repo: repo,
		log:  log.With(zap.String("service", "trip")),
	}
}

func (s *tripService) GetTrips(ctx context.Context) ([]response.TripResponse, error) {
	trips, err := s.repo.Trip.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get trips", zap.Error(err))
		return nil, fmt.Errorf("get trips: %w", err)
	}

	tripResponses := make([]response.TripResponse, len(trips))
	for i, trip := range trips {
		tripResponses[i] = s.annotate(trip)
	}

	s.log.Info("Trips retrieved", zap.Int("count", len(trips)))

	return tripResponses, nil
}

func (s *tripService) GetTripByID(ctx context.Context, tripID int64) (*response.TripResponse, error) {
	trip, err := s.repo.Trip.FindByID(ctx, tripID)
	if err != nil {
		s.log.Error("Failed to get trip by ID",
			zap.Error(err),
			zap.Int64("trip_id", tripID),
		)
		return nil, fmt.Errorf("get trip by id: %w", err)
	}

	if trip == nil {
		return nil, fmt.Errorf("trip not found")
	}

	resp := s.annotate(trip)
	return &resp, nil
}

func (s *tripService) CreateTrip(ctx context.Context, req *request.TripRequest) (int64, error) {
	trip, err := s.buildTrip(req)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.Trip.Create(ctx, trip)
	if err != nil {
		s.log.Error("Failed to create trip",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return 0, fmt.Errorf("create trip: %w", err)
	}

	s.log.Info("Trip created",
		zap.Int64("trip_id", id),
		zap.String("title", trip.Title),
	)

	return id, nil
}

func (s *tripService) ReplaceTrip(ctx context.Context, tripID int64, req *request.TripRequest) error {
	trip, err := s.buildTrip(req)
	if err != nil {
		return err
	}
	trip.ID = tripID

	if err := s.repo.Trip.Replace(ctx, trip); err != nil {
		if err.Error() == "trip not found" {
			return err
		}
		s.log.Error("Failed to update trip",
			zap.Error(err),
			zap.Int64("trip_id", tripID),
		)
		return fmt.Errorf("update trip: %w", err)
	}

	s.log.Info("Trip updated",
		zap.Int64("trip_id", tripID),
		zap.String("title", trip.Title),
	)

	return nil
}

func (s *tripService) DeleteTrip(ctx context.Context, tripID int64) error {
	if err := s.repo.Trip.Delete(ctx, tripID); err != nil {
		if err.Error() == "trip not found" {
			return err
		}
		s.log.Error("Failed to delete trip",
			zap.Error(err),
			zap.Int64("trip_id", tripID),
		)
		return fmt.Errorf("delete trip: %w", err)
	}

	return nil
}

// annotate decodes the stored itinerary and attaches the derived fields. A
// malformed itinerary degrades to an empty one instead of failing the read.
func (s *tripService) annotate(trip *entity.Trip) response.TripResponse {
	itinerary, err := entity.DecodeItinerary(trip.ItineraryData)
	if err != nil {
		s.log.Warn("Malformed itinerary in storage, serving empty",
			zap.Error(err),
			zap.Int64("trip_id", trip.ID),
		)
	}
	return response.TripToResponse(trip, itinerary)
}

// buildTrip validates and normalizes the submitted form into a row. Shared by
// create and replace so both apply the identical coercion policy.
func (s *tripService) buildTrip(req *request.TripRequest) (*entity.Trip, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Trip validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	days, err := entity.DecodeItinerary(req.ItineraryData)
	if err != nil {
		s.log.Warn("Submitted itinerary failed to decode", zap.Error(err))
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("validation failed: itinerary_data must contain at least one day")
	}

	bookedSeats := req.BookedSeats.Or(0)
	if req.TotalSeats.Value != nil && bookedSeats > *req.TotalSeats.Value {
		return nil, fmt.Errorf("validation failed: booked_seats (%d) exceeds total_seats (%d)",
			bookedSeats, *req.TotalSeats.Value)
	}

	// Out-of-range ratings coerce to null like every other invalid numeric.
	rating := req.Rating.Value
	if rating != nil && (*rating < 0 || *rating > 5) {
		s.log.Warn("Rating out of range, storing null", zap.Float64("rating", *rating))
		rating = nil
	}

	var startDate *time.Time
	if req.StartDate != nil && *req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			s.log.Warn("Invalid start date, storing null", zap.String("start_date", *req.StartDate))
		} else {
			startDate = &parsed
		}
	}

	return &entity.Trip{
		LocationName: req.LocationName,
		Distance:     req.Distance,
		CardImg:      req.CardImg,
		InfoImg:      req.InfoImg,
		Title:        req.Title,
		CardSubtitle: req.CardSubtitle,
		Subtitle:     req.Subtitle,
		OriginalCost: req.OriginalCost.Value,
		Cost:         req.Cost.Value,
		Duration:     req.Duration,
		IsUpcoming:   req.IsUpcoming.Value,
		Description:  req.Description,
		Rating:       rating,
		ReviewsCount: req.ReviewsCount.Or(0),
		Features:     entity.SafeArray(req.Features),
		StartDate:    startDate,
		TotalSeats:   req.TotalSeats.Value,
		BookedSeats:  bookedSeats,
		Badge:        req.Badge,
		MapsIframe:   req.MapsIframe,
		// Store the normalized encoding, not the raw submission.
		ItineraryData: entity.EncodeItinerary(days),
		PDFURL:        req.PDFURL,
	}, nil
}
