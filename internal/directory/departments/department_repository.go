package departments

import (
	"context"
	"fmt"

	"assettrack/internal/repository"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type DepartmentRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *DepartmentRepository {
	return &DepartmentRepository{
		repository: r,
	}
}

func (r *DepartmentRepository) GetDepartments(ctx context.Context) ([]models.Department, error) {
	departments := []models.Department{}
	err := r.getDepartmentQuery().
		Order(goqu.I("d.name").Asc()).
		Executor().
		ScanStructsContext(ctx, &departments)
	if err != nil {
		return nil, fmt.Errorf("unable to select departments from database: %w", err)
	}

	return departments, nil
}

func (r *DepartmentRepository) GetDepartment(ctx context.Context, id int64) (*models.Department, error) {
	var department models.Department
	found, err := r.getDepartmentQuery().
		Where(goqu.Ex{"d.id": id}).
		Executor().
		ScanStructContext(ctx, &department)
	if err != nil {
		return nil, fmt.Errorf("unable to select department from database: %w", err)
	}
	if !found {
		return nil, custom_error.NewNotFound("Department", id)
	}

	return &department, nil
}

func (r *DepartmentRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int
	_, err := r.repository.GoquDBWrapper.
		Select(goqu.COUNT("*")).
		From("departments").
		Where(goqu.Ex{"name": name}).
		Executor().
		ScanValContext(ctx, &count)
	if err != nil {
		return false, fmt.Errorf("failed to check department name: %w", err)
	}

	return count > 0, nil
}

func (r *DepartmentRepository) CountUsers(ctx context.Context, id int64) (int, error) {
	var count int
	_, err := r.repository.GoquDBWrapper.
		Select(goqu.COUNT("*")).
		From("users").
		Where(goqu.Ex{"department_id": id}).
		Executor().
		ScanValContext(ctx, &count)
	if err != nil {
		return 0, fmt.Errorf("failed to count department users: %w", err)
	}

	return count, nil
}

func (r *DepartmentRepository) PersistDepartment(ctx context.Context, name string) (int64, error) {
	id, err := r.repository.InsertReturningID(ctx,
		r.repository.GoquDBWrapper.Insert("departments").Rows(goqu.Record{"name": name}),
	)
	if err != nil {
		return 0, custom_error.FromDriver(err, "failed to insert department")
	}

	return id, nil
}

func (r *DepartmentRepository) UpdateDepartment(ctx context.Context, id int64, name string) error {
	result, err := r.repository.GoquDBWrapper.
		Update("departments").
		Set(goqu.Record{"name": name}).
		Where(goqu.Ex{"id": id}).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return custom_error.FromDriver(err, "failed to update department")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return custom_error.NewNotFound("Department", id)
	}

	return nil
}

func (r *DepartmentRepository) DeleteDepartment(ctx context.Context, id int64) error {
	_, err := r.repository.GoquDBWrapper.
		Delete("departments").
		Where(goqu.Ex{"id": id}).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return custom_error.FromDriver(err, "failed to delete department")
	}

	return nil
}

// getDepartmentQuery derives the employee count from the users table.
func (r *DepartmentRepository) getDepartmentQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.Select(
		goqu.I("d.id").As("id"),
		goqu.I("d.name").As("name"),
		goqu.COUNT(goqu.I("u.id")).As("employee_count"),
	).
		From(goqu.T("departments").As("d")).
		LeftJoin(
			goqu.T("users").As("u"),
			goqu.On(goqu.Ex{"u.department_id": goqu.I("d.id")}),
		).
		GroupBy(goqu.I("d.id"), goqu.I("d.name"))
}
