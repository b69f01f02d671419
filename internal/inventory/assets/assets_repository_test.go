package assets

import (
	"context"
	"testing"
	"time"

	"assettrack/internal/repository"
	"assettrack/internal/repository/testdb"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/metadata"
	"assettrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubUsers struct {
	repo *repository.Repository
}

func (s stubUsers) FindUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	found, err := s.repo.GoquDBWrapper.From("users").
		Select("id", "name", "email", "department_id").
		Where(goqu.Ex{"id": id}).
		Executor().
		ScanStructContext(ctx, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, custom_error.NewNotFound("User", id)
	}
	return &user, nil
}

func setupRepository(t *testing.T) (*AssetsRepository, *repository.Repository) {
	repo := testdb.New(t)
	testdb.Exec(t, repo,
		`INSERT INTO departments (id, name) VALUES (1, 'Engineering'), (2, 'Marketing')`,
		`INSERT INTO users (id, name, email, department_id) VALUES
			(7, 'Alice Johnson', 'alice@company.com', 1),
			(42, 'Bob Smith', 'bob@company.com', 2)`,
	)
	return NewRepository(repo), repo
}

func newAsset(id, name string, status metadata.AssetStatus, assignedTo *int64) models.Asset {
	return models.Asset{
		ID:           id,
		Name:         name,
		Category:     metadata.CategoryLaptop,
		Status:       status,
		PurchaseDate: models.NewDate(2023, time.January, 15),
		AssignedTo:   assignedTo,
		Vendor:       "Apple Inc.",
		History:      []models.HistoryEntry{},
	}
}

func insertAsset(t *testing.T, r *AssetsRepository, asset models.Asset) {
	t.Helper()
	entry := creationEntry(asset, models.NewDate(2026, time.January, 1))
	require.NoError(t, r.Insert(context.Background(), asset, entry))
}

func TestRepositoryInsertAndFind(t *testing.T) {
	ctx := context.Background()
	r, _ := setupRepository(t)

	asset := newAsset("IT-001", "MacBook Pro", metadata.StatusInUse, idPtr(7))
	warranty := models.NewDate(2026, time.January, 15)
	asset.WarrantyExpiry = &warranty
	asset.Specs = "M3 Pro, 18GB"
	insertAsset(t, r, asset)

	found, err := r.FindByID(ctx, "IT-001")
	require.NoError(t, err)

	assert.Equal(t, "MacBook Pro", found.Name)
	assert.Equal(t, metadata.CategoryLaptop, found.Category)
	assert.Equal(t, metadata.StatusInUse, found.Status)
	assert.Equal(t, "2023-01-15", found.PurchaseDate.String())
	require.NotNil(t, found.WarrantyExpiry)
	assert.Equal(t, "2026-01-15", found.WarrantyExpiry.String())
	require.NotNil(t, found.AssignedTo)
	assert.Equal(t, int64(7), *found.AssignedTo)
	assert.Equal(t, "Alice Johnson", found.AssignedUserName)
	assert.Equal(t, "M3 Pro, 18GB", found.Specs)

	require.Len(t, found.History, 1)
	assert.Equal(t, NoteAssetCreated, found.History[0].Notes)
	assert.Equal(t, metadata.StatusInUse, found.History[0].Status)
	require.NotNil(t, found.History[0].UserID)
	assert.Equal(t, int64(7), *found.History[0].UserID)

	exists, err := r.ExistsByID(ctx, "IT-001")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRepositoryFindByIDMissing(t *testing.T) {
	r, _ := setupRepository(t)

	_, err := r.FindByID(context.Background(), "IT-404")

	var notFound *custom_error.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRepositoryInsertDuplicateID(t *testing.T) {
	r, _ := setupRepository(t)
	insertAsset(t, r, newAsset("IT-001", "MacBook Pro", metadata.StatusInUse, nil))

	asset := newAsset("IT-001", "Other", metadata.StatusInStorage, nil)
	err := r.Insert(context.Background(), asset, creationEntry(asset, models.NewDate(2026, time.January, 2)))

	var unique *custom_error.UniqueViolationError
	assert.ErrorAs(t, err, &unique)
}

func TestRepositoryUpdateWithoutEntryKeepsHistory(t *testing.T) {
	ctx := context.Background()
	r, _ := setupRepository(t)
	asset := newAsset("IT-001", "MacBook Pro", metadata.StatusInUse, nil)
	insertAsset(t, r, asset)

	asset.Name = "MacBook Pro 16"
	require.NoError(t, r.Update(ctx, asset, nil))

	found, err := r.FindByID(ctx, "IT-001")
	require.NoError(t, err)
	assert.Equal(t, "MacBook Pro 16", found.Name)
	assert.Len(t, found.History, 1)
}

func TestRepositoryUpdateMissingAsset(t *testing.T) {
	r, _ := setupRepository(t)

	err := r.Update(context.Background(), newAsset("IT-404", "Ghost", metadata.StatusInUse, nil), nil)

	var notFound *custom_error.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRepositoryDeleteRemovesHistory(t *testing.T) {
	ctx := context.Background()
	r, repo := setupRepository(t)
	asset := newAsset("IT-001", "MacBook Pro", metadata.StatusInUse, nil)
	insertAsset(t, r, asset)
	asset.Status = metadata.StatusInRepair
	require.NoError(t, r.Update(ctx, asset, changeEntry(newAsset("IT-001", "MacBook Pro", metadata.StatusInUse, nil), asset, models.NewDate(2026, time.January, 3))))

	require.NoError(t, r.DeleteByID(ctx, "IT-001"))

	exists, err := r.ExistsByID(ctx, "IT-001")
	require.NoError(t, err)
	assert.False(t, exists)

	var remaining int
	require.NoError(t, repo.DB.QueryRow(`SELECT COUNT(*) FROM asset_history WHERE asset_id = 'IT-001'`).Scan(&remaining))
	assert.Zero(t, remaining)

	var notFound *custom_error.NotFoundError
	assert.ErrorAs(t, r.DeleteByID(ctx, "IT-001"), &notFound)
}

func TestRepositorySearchByTerm(t *testing.T) {
	ctx := context.Background()
	r, _ := setupRepository(t)
	insertAsset(t, r, newAsset("IT-001", "MacBook Pro", metadata.StatusInStorage, nil))
	insertAsset(t, r, newAsset("IT-002", "Dell Monitor", metadata.StatusInUse, idPtr(7)))
	insertAsset(t, r, newAsset("IT-003", "ThinkPad", metadata.StatusInUse, idPtr(42)))

	tests := []struct {
		term string
		want []string
	}{
		{"mac", []string{"IT-001"}},
		{"MAC", []string{"IT-001"}},
		{"alice", []string{"IT-002"}},
		{"o", []string{"IT-001", "IT-002", "IT-003"}},
		{"printer", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			found, err := r.SearchByTerm(ctx, tt.term)
			require.NoError(t, err)

			ids := []string{}
			for _, a := range found {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestRepositorySearchByTermFoldsNonASCII(t *testing.T) {
	ctx := context.Background()
	r, repo := setupRepository(t)
	testdb.Exec(t, repo,
		`INSERT INTO users (id, name, email, department_id) VALUES (43, 'Ümit Yılmaz', 'umit@company.com', 1)`,
	)
	insertAsset(t, r, newAsset("IT-011", "ThinkPad T14", metadata.StatusInUse, idPtr(43)))
	insertAsset(t, r, newAsset("IT-012", "Überwachungskamera", metadata.StatusInStorage, nil))

	tests := []struct {
		term string
		want []string
	}{
		{"ümit", []string{"IT-011"}},
		{"ÜMIT", []string{"IT-011"}},
		{"yılmaz", []string{"IT-011"}},
		{"überwachung", []string{"IT-012"}},
		{"ÜBERWACHUNG", []string{"IT-012"}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			found, err := r.SearchByTerm(ctx, tt.term)
			require.NoError(t, err)

			ids := []string{}
			for _, a := range found {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestRepositoryFilters(t *testing.T) {
	ctx := context.Background()
	r, _ := setupRepository(t)
	insertAsset(t, r, newAsset("IT-001", "MacBook Pro", metadata.StatusInStorage, nil))
	insertAsset(t, r, newAsset("IT-002", "Dell Monitor", metadata.StatusInUse, idPtr(7)))
	insertAsset(t, r, newAsset("IT-003", "ThinkPad", metadata.StatusInUse, idPtr(42)))

	inUse, err := r.FindByStatus(ctx, metadata.StatusInUse)
	require.NoError(t, err)
	assert.Len(t, inUse, 2)

	decommissioned, err := r.FindByStatus(ctx, metadata.StatusDecommissioned)
	require.NoError(t, err)
	assert.Empty(t, decommissioned)

	bobs, err := r.FindByAssignee(ctx, 42)
	require.NoError(t, err)
	require.Len(t, bobs, 1)
	assert.Equal(t, "IT-003", bobs[0].ID)

	all, err := r.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, a := range all {
		assert.Len(t, a.History, 1, "history of %s", a.ID)
	}
}

func TestLifecycleAgainstDatabase(t *testing.T) {
	ctx := context.Background()
	r, repo := setupRepository(t)
	testdb.Exec(t, repo, `INSERT INTO users (id, name, email, department_id) VALUES (43, 'Carol', 'carol@company.com', 1)`)

	day := time.Date(2026, time.January, 14, 10, 0, 0, 0, time.UTC)
	service := NewAssetService(r, stubUsers{repo: repo}, nil, zap.NewNop()).WithClock(func() time.Time { return day })

	created, err := service.Create(ctx, assetRequest(metadata.StatusInStorage, nil))
	require.NoError(t, err)
	require.Len(t, created.History, 1)
	assert.Equal(t, NoteAssetCreated, created.History[0].Notes)
	assert.Equal(t, metadata.StatusInStorage, created.History[0].Status)
	assert.Nil(t, created.History[0].UserID)

	day = day.AddDate(0, 0, 1)
	updated, err := service.Update(ctx, "IT-010", assetRequest(metadata.StatusInUse, idPtr(42)))
	require.NoError(t, err)
	require.Len(t, updated.History, 2)
	last := updated.History[1]
	assert.Equal(t, "Status changed from InStorage to InUse. Reassignment", last.Notes)
	assert.Equal(t, metadata.StatusInUse, last.Status)
	require.NotNil(t, last.UserID)
	assert.Equal(t, int64(42), *last.UserID)
	assert.Equal(t, "2026-01-15", last.Date.String())

	unchanged, err := service.Update(ctx, "IT-010", assetRequest(metadata.StatusInUse, idPtr(42)))
	require.NoError(t, err)
	assert.Len(t, unchanged.History, 2)

	reassigned, err := service.Update(ctx, "IT-010", assetRequest(metadata.StatusInUse, idPtr(43)))
	require.NoError(t, err)
	require.Len(t, reassigned.History, 3)
	assert.Equal(t, NoteReassignment, reassigned.History[2].Notes)

	history, err := service.History(ctx, "IT-010")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, NoteReassignment, history[0].Notes, "newest first")

	_, err = service.Create(ctx, assetRequest(metadata.StatusInStorage, nil))
	var alreadyExists *custom_error.AlreadyExistsError
	assert.ErrorAs(t, err, &alreadyExists)

	require.NoError(t, service.Delete(ctx, "IT-010"))
	var notFound *custom_error.NotFoundError
	assert.ErrorAs(t, service.Delete(ctx, "IT-010"), &notFound)
}
