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

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	// Login checks the single credential row and issues a short-lived signed
	// token. The gate itself holds no state; the middleware verifies the
	// token on every mutating request.
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	// EnsureDefaultAdmin seeds the credential row on first boot.
	EnsureDefaultAdmin(ctx context.Context) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	admin, err := s.repo.Admin.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to look up admin", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("look up admin: %w", err)
	}

	if admin == nil {
		s.log.Warn("Unknown admin username", zap.String("username", req.Username))
		return nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		s.log.Warn("Password mismatch", zap.String("username", req.Username))
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := s.issueToken(admin.Username)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.log.Info("Admin logged in", zap.String("username", admin.Username))

	return &response.LoginResponse{
		Message: "Login successful",
		Token:   token,
	}, nil
}

func (s *authService) issueToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"exp": now.Add(time.Duration(s.config.JWT.ExpiryHours) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWT.Secret))
}

func (s *authService) EnsureDefaultAdmin(ctx context.Context) error {
	count, err := s.repo.Admin.Count(ctx)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	if s.config.Admin.Password == "" {
		s.log.Warn("No admin row and ADMIN_PASSWORD unset; login will fail until one is created")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.config.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &entity.Admin{
		Username:     s.config.Admin.Username,
		PasswordHash: string(hash),
	}
	if err := s.repo.Admin.Create(ctx, admin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	s.log.Info("Default admin created", zap.String("username", admin.Username))
	return nil
}
