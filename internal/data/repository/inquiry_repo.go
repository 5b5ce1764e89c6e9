package repository

import (
	"context"
	"fmt"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"

	"go.uber.org/zap"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) (int64, error)
	FindAll(ctx context.Context) ([]*entity.Inquiry, error)
	// SetStatus touches only the completion flag, nothing else on the row.
	SetStatus(ctx context.Context, id int64, completed bool) error
}

type inquiryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewInquiryRepository(db database.PgxIface, log *zap.Logger) InquiryRepository {
	return &inquiryRepository{
		db:  db,
		log: log.With(zap.String("repository", "inquiry")),
	}
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) (int64, error) {
	query := `
		INSERT INTO inquiries (name, email, phone, destination, guests,
		                       travel_dates, message, received_at, is_completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		inquiry.Name,
		inquiry.Email,
		inquiry.Phone,
		inquiry.Destination,
		inquiry.Guests,
		inquiry.TravelDates,
		inquiry.Message,
		inquiry.ReceivedAt,
		inquiry.IsCompleted,
	).Scan(&id)

	if err != nil {
		r.log.Error("Failed to create inquiry",
			zap.Error(err),
			zap.String("email", inquiry.Email),
		)
		return 0, fmt.Errorf("failed to create inquiry: %w", err)
	}

	return id, nil
}

func (r *inquiryRepository) FindAll(ctx context.Context) ([]*entity.Inquiry, error) {
	query := `
		SELECT id, name, email, phone, destination, guests, travel_dates,
		       message, received_at, is_completed
		FROM inquiries
		ORDER BY received_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all inquiries", zap.Error(err))
		return nil, fmt.Errorf("failed to find inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []*entity.Inquiry
	for rows.Next() {
		var inquiry entity.Inquiry
		err := rows.Scan(
			&inquiry.ID,
			&inquiry.Name,
			&inquiry.Email,
			&inquiry.Phone,
			&inquiry.Destination,
			&inquiry.Guests,
			&inquiry.TravelDates,
			&inquiry.Message,
			&inquiry.ReceivedAt,
			&inquiry.IsCompleted,
		)
		if err != nil {
			r.log.Error("Failed to scan inquiry row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, &inquiry)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return inquiries, nil
}

func (r *inquiryRepository) SetStatus(ctx context.Context, id int64, completed bool) error {
	query := `UPDATE inquiries SET is_completed = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, completed)
	if err != nil {
		r.log.Error("Failed to update inquiry status",
			zap.Error(err),
			zap.Int64("inquiry_id", id),
		)
		return fmt.Errorf("failed to update inquiry status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("inquiry not found")
	}

	r.log.Info("Inquiry status updated",
		zap.Int64("inquiry_id", id),
		zap.Bool("is_completed", completed),
	)
	return nil
}
