package repository

import (
	"context"
	"fmt"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*entity.Admin, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, admin *entity.Admin) error
}

type adminRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAdminRepository(db database.PgxIface, log *zap.Logger) AdminRepository {
	return &adminRepository{
		db:  db,
		log: log.With(zap.String("repository", "admin")),
	}
}

func (r *adminRepository) FindByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	query := `SELECT id, username, password_hash FROM admins WHERE username = $1`

	var admin entity.Admin
	err := r.db.QueryRow(ctx, query, username).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find admin by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}

	return &admin, nil
}

func (r *adminRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count admins", zap.Error(err))
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return total, nil
}

func (r *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	query := `INSERT INTO admins (username, password_hash) VALUES ($1, $2)`

	_, err := r.db.Exec(ctx, query, admin.Username, admin.PasswordHash)
	if err != nil {
		r.log.Error("Failed to create admin",
			zap.Error(err),
			zap.String("username", admin.Username),
		)
		return fmt.Errorf("failed to create admin: %w", err)
	}

	return nil
}
