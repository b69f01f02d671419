package admin

import (
	"context"
	"testing"

	"assettrack/internal/repository/testdb"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/models"
	"assettrack/pkg/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupService(t *testing.T) *AdminService {
	service := NewAdminService(NewRepository(testdb.New(t)), zap.NewNop())
	created, err := service.EnsureAdmin(context.Background(), "admin", "admin123", "admin@company.com", "System Administrator")
	require.NoError(t, err)
	require.True(t, created)
	return service
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	service := setupService(t)

	created, err := service.EnsureAdmin(context.Background(), "admin", "other-password", "x@company.com", "X")
	require.NoError(t, err)
	assert.False(t, created)

	admin, err := service.Profile(context.Background(), "admin")
	require.NoError(t, err)
	assert.True(t, security.CheckPassword(admin.PasswordHash, "admin123"), "existing password untouched")
}

func TestProfileMissing(t *testing.T) {
	service := setupService(t)

	_, err := service.Profile(context.Background(), "ghost")

	var notFound *custom_error.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("wrong current password", func(t *testing.T) {
		service := setupService(t)

		_, err := service.UpdateProfile(ctx, "admin", models.AdminUpdateRequest{CurrentPassword: "wrong-one", FullName: "Eve"})

		var validation *custom_error.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "Current password is incorrect", validation.Fields["currentPassword"])

		admin, err := service.Profile(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, "System Administrator", admin.FullName)
	})

	t.Run("only given fields change", func(t *testing.T) {
		service := setupService(t)

		updated, err := service.UpdateProfile(ctx, "admin", models.AdminUpdateRequest{CurrentPassword: "admin123", FullName: "Jane Admin"})
		require.NoError(t, err)
		assert.Equal(t, "Jane Admin", updated.FullName)
		assert.Equal(t, "admin@company.com", updated.Email)

		stored, err := service.Profile(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, "Jane Admin", stored.FullName)
		assert.True(t, security.CheckPassword(stored.PasswordHash, "admin123"))
	})

	t.Run("password change", func(t *testing.T) {
		service := setupService(t)

		_, err := service.UpdateProfile(ctx, "admin", models.AdminUpdateRequest{CurrentPassword: "admin123", Password: "n3w-pass"})
		require.NoError(t, err)

		stored, err := service.Profile(ctx, "admin")
		require.NoError(t, err)
		assert.True(t, security.CheckPassword(stored.PasswordHash, "n3w-pass"))
		assert.False(t, security.CheckPassword(stored.PasswordHash, "admin123"))
	})
}
