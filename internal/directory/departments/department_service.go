package departments

import (
	"context"
	"errors"
	"strings"

	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/models"

	"go.uber.org/zap"
)

type Repository interface {
	GetDepartments(ctx context.Context) ([]models.Department, error)
	GetDepartment(ctx context.Context, id int64) (*models.Department, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	CountUsers(ctx context.Context, id int64) (int, error)
	PersistDepartment(ctx context.Context, name string) (int64, error)
	UpdateDepartment(ctx context.Context, id int64, name string) error
	DeleteDepartment(ctx context.Context, id int64) error
}

type DepartmentService struct {
	repo   Repository
	logger *zap.Logger
}

func NewDepartmentService(repo Repository, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{
		repo:   repo,
		logger: logger,
	}
}

func (s *DepartmentService) List(ctx context.Context) ([]models.Department, error) {
	return s.repo.GetDepartments(ctx)
}

func (s *DepartmentService) Get(ctx context.Context, id int64) (*models.Department, error) {
	return s.repo.GetDepartment(ctx, id)
}

func (s *DepartmentService) Create(ctx context.Context, req models.DepartmentRequest) (*models.Department, error) {
	name := strings.TrimSpace(req.Name)
	if err := s.ensureNameAvailable(ctx, name); err != nil {
		return nil, err
	}

	id, err := s.repo.PersistDepartment(ctx, name)
	if err != nil {
		return nil, translate(err)
	}

	s.logger.Info("Department created", zap.Int64("department_id", id), zap.String("name", name))
	return s.repo.GetDepartment(ctx, id)
}

func (s *DepartmentService) Update(ctx context.Context, id int64, req models.DepartmentRequest) (*models.Department, error) {
	current, err := s.repo.GetDepartment(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name != current.Name {
		if err := s.ensureNameAvailable(ctx, name); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateDepartment(ctx, id, name); err != nil {
		return nil, translate(err)
	}

	return s.repo.GetDepartment(ctx, id)
}

// Delete refuses to remove a department that still has employees.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetDepartment(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountUsers(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return custom_error.NewRuleViolation("Cannot delete department with assigned users")
	}

	if err := s.repo.DeleteDepartment(ctx, id); err != nil {
		return translate(err)
	}

	s.logger.Info("Department deleted", zap.Int64("department_id", id))
	return nil
}

func (s *DepartmentService) ensureNameAvailable(ctx context.Context, name string) error {
	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return custom_error.NewAlreadyExists("Department name already exists")
	}
	return nil
}

// translate maps constraint failures that slipped past the pre-checks, e.g.
// under concurrent writes.
func translate(err error) error {
	var unique *custom_error.UniqueViolationError
	var foreignKey *custom_error.ForeignKeyViolationError

	switch {
	case errors.As(err, &unique):
		return custom_error.NewAlreadyExists("Department name already exists")
	case errors.As(err, &foreignKey):
		return custom_error.NewRuleViolation("Cannot delete department with assigned users")
	default:
		return err
	}
}
