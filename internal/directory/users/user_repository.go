package users

import (
	"context"
	"fmt"

	"assettrack/internal/repository"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type UserRepository interface {
	PersistUser(ctx context.Context, req models.UserRequest) (int64, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id int64, req models.UserRequest) error
	DeleteUser(ctx context.Context, id int64) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	DepartmentExists(ctx context.Context, id int64) (bool, error)
	CountAssignedAssets(ctx context.Context, id int64) (int, error)
}

type userRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) UserRepository {
	return &userRepositoryImpl{repository: r}
}

func (r *userRepositoryImpl) PersistUser(ctx context.Context, req models.UserRequest) (int64, error) {
	query := r.repository.GoquDBWrapper.Insert("users").
		Rows(goqu.Record{
			"name":          req.Name,
			"email":         req.Email,
			"department_id": req.DepartmentID,
		})

	id, err := r.repository.InsertReturningID(ctx, query)
	if err != nil {
		return 0, custom_error.FromDriver(err, "failed to insert user")
	}

	return id, nil
}

func (r *userRepositoryImpl) GetUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := r.getUserQuery().
		Order(goqu.I("u.id").Asc()).
		Executor().
		ScanStructsContext(ctx, &users)
	if err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return users, nil
}

func (r *userRepositoryImpl) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	found, err := r.getUserQuery().
		Where(goqu.Ex{"u.id": id}).
		Executor().
		ScanStructContext(ctx, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !found {
		return nil, custom_error.NewNotFound("User", id)
	}

	return &user, nil
}

func (r *userRepositoryImpl) UpdateUser(ctx context.Context, id int64, req models.UserRequest) error {
	result, err := r.repository.GoquDBWrapper.Update("users").
		Set(goqu.Record{
			"name":          req.Name,
			"email":         req.Email,
			"department_id": req.DepartmentID,
		}).
		Where(goqu.Ex{"id": id}).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return custom_error.FromDriver(err, "failed to update user")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return custom_error.NewNotFound("User", id)
	}

	return nil
}

func (r *userRepositoryImpl) DeleteUser(ctx context.Context, id int64) error {
	_, err := r.repository.GoquDBWrapper.Delete("users").
		Where(goqu.Ex{"id": id}).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return custom_error.FromDriver(err, "failed to delete user")
	}

	return nil
}

func (r *userRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "users", goqu.Ex{"email": email})
}

func (r *userRepositoryImpl) DepartmentExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "departments", goqu.Ex{"id": id})
}

func (r *userRepositoryImpl) CountAssignedAssets(ctx context.Context, id int64) (int, error) {
	var count int
	_, err := r.repository.GoquDBWrapper.
		Select(goqu.COUNT("*")).
		From("assets").
		Where(goqu.Ex{"assigned_to": id}).
		Executor().
		ScanValContext(ctx, &count)
	if err != nil {
		return 0, fmt.Errorf("failed to count assigned assets: %w", err)
	}

	return count, nil
}

func (r *userRepositoryImpl) exists(ctx context.Context, table string, condition goqu.Ex) (bool, error) {
	var count int
	_, err := r.repository.GoquDBWrapper.
		Select(goqu.COUNT("*")).
		From(table).
		Where(condition).
		Executor().
		ScanValContext(ctx, &count)
	if err != nil {
		return false, fmt.Errorf("failed to query %s: %w", table, err)
	}

	return count > 0, nil
}

func (r *userRepositoryImpl) getUserQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.Select(
		goqu.I("u.id").As("id"),
		goqu.I("u.name").As("name"),
		goqu.I("u.email").As("email"),
		goqu.I("u.department_id").As("department_id"),
		goqu.I("d.name").As("department_name"),
	).
		From(goqu.T("users").As("u")).
		InnerJoin(
			goqu.T("departments").As("d"),
			goqu.On(goqu.Ex{"u.department_id": goqu.I("d.id")}),
		)
}
