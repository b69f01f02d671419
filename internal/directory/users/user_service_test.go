package users

import (
	"context"
	"testing"

	"assettrack/internal/repository/testdb"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupService(t *testing.T) *UserService {
	repo := testdb.New(t)
	testdb.Exec(t, repo,
		`INSERT INTO departments (id, name) VALUES (1, 'Engineering'), (2, 'Marketing')`,
		`INSERT INTO users (id, name, email, department_id) VALUES
			(1, 'Alice Johnson', 'alice@company.com', 1),
			(2, 'Bob Smith', 'bob@company.com', 2)`,
		`INSERT INTO assets (asset_id, name, category, status, purchase_date, assigned_to, vendor)
			VALUES ('IT-001', 'MacBook Pro', 'LAPTOP', 'IN_USE', '2023-01-15', 2, 'Apple Inc.')`,
	)
	return NewUserService(NewRepository(repo), zap.NewNop())
}

func TestListUsersWithDepartmentName(t *testing.T) {
	service := setupService(t)

	users, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "Alice Johnson", users[0].Name)
	assert.Equal(t, "Engineering", users[0].DepartmentName)
	assert.Equal(t, "Marketing", users[1].DepartmentName)
}

func TestFindUser(t *testing.T) {
	service := setupService(t)

	user, err := service.FindUser(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "bob@company.com", user.Email)

	_, err = service.FindUser(context.Background(), 99)
	var notFound *custom_error.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.EqualError(t, err, "User not found with id: 99")
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("created", func(t *testing.T) {
		service := setupService(t)

		user, err := service.Create(ctx, models.UserRequest{Name: " Carol White ", Email: "carol@company.com", DepartmentID: 2})
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.Equal(t, "Carol White", user.Name)
		assert.Equal(t, "Marketing", user.DepartmentName)
	})

	t.Run("duplicate email", func(t *testing.T) {
		service := setupService(t)

		_, err := service.Create(ctx, models.UserRequest{Name: "Other", Email: "alice@company.com", DepartmentID: 1})

		var alreadyExists *custom_error.AlreadyExistsError
		assert.ErrorAs(t, err, &alreadyExists)
		assert.EqualError(t, err, "Email already exists")
	})

	t.Run("unknown department", func(t *testing.T) {
		service := setupService(t)

		_, err := service.Create(ctx, models.UserRequest{Name: "Dan", Email: "dan@company.com", DepartmentID: 9})

		var notFound *custom_error.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces every field", func(t *testing.T) {
		service := setupService(t)

		user, err := service.Update(ctx, 1, models.UserRequest{Name: "Alice J.", Email: "alice.j@company.com", DepartmentID: 2})
		require.NoError(t, err)
		assert.Equal(t, "Alice J.", user.Name)
		assert.Equal(t, "alice.j@company.com", user.Email)
		assert.Equal(t, int64(2), user.DepartmentID)
	})

	t.Run("keeping own email", func(t *testing.T) {
		service := setupService(t)

		_, err := service.Update(ctx, 1, models.UserRequest{Name: "Alice", Email: "alice@company.com", DepartmentID: 1})
		assert.NoError(t, err)
	})

	t.Run("email taken by someone else", func(t *testing.T) {
		service := setupService(t)

		_, err := service.Update(ctx, 1, models.UserRequest{Name: "Alice", Email: "bob@company.com", DepartmentID: 1})

		var alreadyExists *custom_error.AlreadyExistsError
		assert.ErrorAs(t, err, &alreadyExists)
	})

	t.Run("missing user", func(t *testing.T) {
		service := setupService(t)

		_, err := service.Update(ctx, 99, models.UserRequest{Name: "Ghost", Email: "ghost@company.com", DepartmentID: 1})

		var notFound *custom_error.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	service := setupService(t)

	err := service.Delete(ctx, 2)
	var violation *custom_error.RuleViolationError
	assert.ErrorAs(t, err, &violation, "bob still holds IT-001")

	require.NoError(t, service.Delete(ctx, 1))

	var notFound *custom_error.NotFoundError
	assert.ErrorAs(t, service.Delete(ctx, 1), &notFound)
}
