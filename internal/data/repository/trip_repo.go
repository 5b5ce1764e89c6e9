package repository

import (
	"context"
	"fmt"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TripRepository interface {
	FindAll(ctx context.Context) ([]*entity.Trip, error)
	FindByID(ctx context.Context, id int64) (*entity.Trip, error)
	Create(ctx context.Context, trip *entity.Trip) (int64, error)
	// Replace overwrites every column. Trips have no partial-patch path.
	Replace(ctx context.Context, trip *entity.Trip) error
	Delete(ctx context.Context, id int64) error
}

type tripRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTripRepository(db database.PgxIface, log *zap.Logger) TripRepository {
	return &tripRepository{
		db:  db,
		log: log.With(zap.String("repository", "trip")),
	}
}

const tripColumns = `id, location_name, distance, card_img, info_img, title,
	       card_subtitle, subtitle, original_cost, cost, duration, is_upcoming,
	       description, rating, reviews_count, features, start_date,
	       total_seats, booked_seats, badge, maps_iframe, itinerary_data, pdf_url`

func scanTrip(row pgx.Row) (*entity.Trip, error) {
	var trip entity.Trip
	err := row.Scan(
		&trip.ID,
		&trip.LocationName,
		&trip.Distance,
		&trip.CardImg,
		&trip.InfoImg,
		&trip.Title,
		&trip.CardSubtitle,
		&trip.Subtitle,
		&trip.OriginalCost,
		&trip.Cost,
		&trip.Duration,
		&trip.IsUpcoming,
		&trip.Description,
		&trip.Rating,
		&trip.ReviewsCount,
		&trip.Features,
		&trip.StartDate,
		&trip.TotalSeats,
		&trip.BookedSeats,
		&trip.Badge,
		&trip.MapsIframe,
		&trip.ItineraryData,
		&trip.PDFURL,
	)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// FindAll returns every trip, newest-created first so the latest trips float
// to the top of the catalog.
func (r *tripRepository) FindAll(ctx context.Context) ([]*entity.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips ORDER BY id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all trips", zap.Error(err))
		return nil, fmt.Errorf("failed to find trips: %w", err)
	}
	defer rows.Close()

	var trips []*entity.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			r.log.Error("Failed to scan trip row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, trip)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Trips found", zap.Int("count", len(trips)))

	return trips, nil
}

func (r *tripRepository) FindByID(ctx context.Context, id int64) (*entity.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	trip, err := scanTrip(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find trip by ID",
			zap.Error(err),
			zap.Int64("trip_id", id),
		)
		return nil, fmt.Errorf("failed to find trip: %w", err)
	}

	return trip, nil
}

func (r *tripRepository) Create(ctx context.Context, trip *entity.Trip) (int64, error) {
	query := `
		INSERT INTO trips (location_name, distance, card_img, info_img, title,
		                   card_subtitle, subtitle, original_cost, cost, duration,
		                   is_upcoming, description, rating, reviews_count, features,
		                   start_date, total_seats, booked_seats, badge, maps_iframe,
		                   itinerary_data, pdf_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		        $16, $17, $18, $19, $20, $21, $22)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		trip.LocationName,
		trip.Distance,
		trip.CardImg,
		trip.InfoImg,
		trip.Title,
		trip.CardSubtitle,
		trip.Subtitle,
		trip.OriginalCost,
		trip.Cost,
		trip.Duration,
		trip.IsUpcoming,
		trip.Description,
		trip.Rating,
		trip.ReviewsCount,
		trip.Features,
		trip.StartDate,
		trip.TotalSeats,
		trip.BookedSeats,
		trip.Badge,
		trip.MapsIframe,
		trip.ItineraryData,
		trip.PDFURL,
	).Scan(&id)

	if err != nil {
		r.log.Error("Failed to create trip",
			zap.Error(err),
			zap.String("title", trip.Title),
		)
		return 0, fmt.Errorf("failed to create trip: %w", err)
	}

	return id, nil
}

func (r *tripRepository) Replace(ctx context.Context, trip *entity.Trip) error {
	query := `
		UPDATE trips
		SET location_name = $2, distance = $3, card_img = $4, info_img = $5,
		    title = $6, card_subtitle = $7, subtitle = $8, original_cost = $9,
		    cost = $10, duration = $11, is_upcoming = $12, description = $13,
		    rating = $14, reviews_count = $15, features = $16, start_date = $17,
		    total_seats = $18, booked_seats = $19, badge = $20, maps_iframe = $21,
		    itinerary_data = $22, pdf_url = $23
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		trip.ID,
		trip.LocationName,
		trip.Distance,
		trip.CardImg,
		trip.InfoImg,
		trip.Title,
		trip.CardSubtitle,
		trip.Subtitle,
		trip.OriginalCost,
		trip.Cost,
		trip.Duration,
		trip.IsUpcoming,
		trip.Description,
		trip.Rating,
		trip.ReviewsCount,
		trip.Features,
		trip.StartDate,
		trip.TotalSeats,
		trip.BookedSeats,
		trip.Badge,
		trip.MapsIframe,
		trip.ItineraryData,
		trip.PDFURL,
	)

	if err != nil {
		r.log.Error("Failed to update trip",
			zap.Error(err),
			zap.Int64("trip_id", trip.ID),
		)
		return fmt.Errorf("failed to update trip: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("trip not found")
	}

	return nil
}

func (r *tripRepository) Delete(ctx context.Context, id int64) error {
	// Hard delete; trips have no dependent rows.
	query := `DELETE FROM trips WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete trip",
			zap.Error(err),
			zap.Int64("trip_id", id),
		)
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("trip not found")
	}

	r.log.Info("Trip deleted", zap.Int64("trip_id", id))
	return nil
}
