package users

import (
	"context"
	"errors"
	"strings"

	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/models"

	"go.uber.org/zap"
)

type UserService struct {
	repo   UserRepository
	logger *zap.Logger
}

func NewUserService(repo UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
	}
}

// FindUser resolves an assignee for the asset engine.
func (s *UserService) FindUser(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.GetUsers(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *UserService) Create(ctx context.Context, req models.UserRequest) (*models.User, error) {
	req = normalize(req)

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, custom_error.NewAlreadyExists("Email already exists")
	}

	if err := s.ensureDepartment(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	id, err := s.repo.PersistUser(ctx, req)
	if err != nil {
		return nil, translate(err)
	}

	s.logger.Info("User created", zap.Int64("user_id", id))
	return s.repo.GetUser(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id int64, req models.UserRequest) (*models.User, error) {
	req = normalize(req)

	current, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(current.Email, req.Email) {
		exists, err := s.repo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, custom_error.NewAlreadyExists("Email already exists")
		}
	}

	if err := s.ensureDepartment(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateUser(ctx, id, req); err != nil {
		return nil, translate(err)
	}

	return s.repo.GetUser(ctx, id)
}

// Delete refuses to remove a user who still holds assets, so no asset is left
// pointing at a missing assignee.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetUser(ctx, id); err != nil {
		return err
	}

	assigned, err := s.repo.CountAssignedAssets(ctx, id)
	if err != nil {
		return err
	}
	if assigned > 0 {
		return custom_error.NewRuleViolation("Cannot delete user with assigned assets")
	}

	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return translate(err)
	}

	s.logger.Info("User deleted", zap.Int64("user_id", id))
	return nil
}

func (s *UserService) ensureDepartment(ctx context.Context, id int64) error {
	exists, err := s.repo.DepartmentExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return custom_error.NewNotFound("Department", id)
	}
	return nil
}

func normalize(req models.UserRequest) models.UserRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	return req
}

func translate(err error) error {
	var unique *custom_error.UniqueViolationError
	var foreignKey *custom_error.ForeignKeyViolationError

	switch {
	case errors.As(err, &unique):
		return custom_error.NewAlreadyExists("Email already exists")
	case errors.As(err, &foreignKey):
		return custom_error.NewRuleViolation("User is still referenced by assets")
	default:
		return err
	}
}
