package admin

import (
	"context"
	"errors"
	"strings"

	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/models"
	"assettrack/pkg/security"

	"go.uber.org/zap"
)

type Repository interface {
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	PersistAdmin(ctx context.Context, admin models.Admin) (int64, error)
	UpdateAdmin(ctx context.Context, admin models.Admin) error
}

type AdminService struct {
	repo   Repository
	logger *zap.Logger
}

func NewAdminService(repo Repository, logger *zap.Logger) *AdminService {
	return &AdminService{
		repo:   repo,
		logger: logger,
	}
}

func (s *AdminService) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *AdminService) Profile(ctx context.Context, username string) (*models.Admin, error) {
	return s.repo.FindByUsername(ctx, username)
}

// UpdateProfile changes the fields present in req once the current password
// has been confirmed.
func (s *AdminService) UpdateProfile(ctx context.Context, username string, req models.AdminUpdateRequest) (*models.Admin, error) {
	admin, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if !security.CheckPassword(admin.PasswordHash, req.CurrentPassword) {
		return nil, custom_error.NewValidation("currentPassword", "Current password is incorrect")
	}

	if fullName := strings.TrimSpace(req.FullName); fullName != "" {
		admin.FullName = fullName
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		admin.Email = email
	}
	if req.Password != "" {
		hash, err := security.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = hash
	}

	if err := s.repo.UpdateAdmin(ctx, *admin); err != nil {
		return nil, err
	}

	s.logger.Info("Admin profile updated", zap.String("username", username))
	return admin, nil
}

// EnsureAdmin creates the administrator account unless it already exists.
func (s *AdminService) EnsureAdmin(ctx context.Context, username, password, email, fullName string) (bool, error) {
	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	var notFound *custom_error.NotFoundError
	if !errors.As(err, &notFound) {
		return false, err
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return false, err
	}

	if _, err := s.repo.PersistAdmin(ctx, models.Admin{
		Username:     username,
		PasswordHash: hash,
		Email:        email,
		FullName:     fullName,
	}); err != nil {
		return false, err
	}

	s.logger.Info("Admin account created", zap.String("username", username))
	return true, nil
}
