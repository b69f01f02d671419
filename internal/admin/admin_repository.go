package admin

import (
	"context"
	"fmt"

	"assettrack/internal/repository"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type AdminRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *AdminRepository {
	return &AdminRepository{repository: r}
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	found, err := r.repository.GoquDBWrapper.
		Select("id", "username", "password_hash", "email", "full_name").
		From("admins").
		Where(goqu.Ex{"username": username}).
		Executor().
		ScanStructContext(ctx, &admin)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	if !found {
		return nil, custom_error.NewNotFound("Admin", username)
	}

	return &admin, nil
}

func (r *AdminRepository) PersistAdmin(ctx context.Context, admin models.Admin) (int64, error) {
	query := r.repository.GoquDBWrapper.Insert("admins").
		Rows(goqu.Record{
			"username":      admin.Username,
			"password_hash": admin.PasswordHash,
			"email":         admin.Email,
			"full_name":     admin.FullName,
		})

	id, err := r.repository.InsertReturningID(ctx, query)
	if err != nil {
		return 0, custom_error.FromDriver(err, "failed to insert admin")
	}

	return id, nil
}

func (r *AdminRepository) UpdateAdmin(ctx context.Context, admin models.Admin) error {
	result, err := r.repository.GoquDBWrapper.Update("admins").
		Set(goqu.Record{
			"password_hash": admin.PasswordHash,
			"email":         admin.Email,
			"full_name":     admin.FullName,
		}).
		Where(goqu.Ex{"id": admin.ID}).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update admin: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return custom_error.NewNotFound("Admin", admin.Username)
	}

	return nil
}
