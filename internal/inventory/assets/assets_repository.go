package assets

import (
	"context"
	"fmt"
	"strings"

	"assettrack/internal/repository"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/metadata"
	"assettrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type AssetsRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *AssetsRepository {
	return &AssetsRepository{
		repository: r,
	}
}

func (r *AssetsRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int
	_, err := r.repository.GoquDBWrapper.
		Select(goqu.COUNT("*")).
		From("assets").
		Where(goqu.Ex{"asset_id": id}).
		Executor().
		ScanValContext(ctx, &count)
	if err != nil {
		return false, fmt.Errorf("failed to check if asset exists: %w", err)
	}

	return count > 0, nil
}

func (r *AssetsRepository) FindByID(ctx context.Context, id string) (*models.Asset, error) {
	var flatAsset models.FlatAssetRecord
	found, err := r.getAssetQuery().
		Where(goqu.Ex{"a.asset_id": id}).
		Executor().
		ScanStructContext(ctx, &flatAsset)
	if err != nil {
		return nil, fmt.Errorf("unable to select asset from database: %w", err)
	}
	if !found {
		return nil, custom_error.NewNotFound("Asset", id)
	}

	assets := []models.Asset{flatAsset.TransformToAsset()}
	if err := r.loadHistory(ctx, assets); err != nil {
		return nil, err
	}

	return &assets[0], nil
}

func (r *AssetsRepository) FindAll(ctx context.Context) ([]models.Asset, error) {
	return r.fetchAssets(ctx, r.getAssetQuery())
}

func (r *AssetsRepository) FindByStatus(ctx context.Context, status metadata.AssetStatus) ([]models.Asset, error) {
	return r.FindBy(ctx, repository.NewQueryBuilder().AddCondition("status", string(status)))
}

func (r *AssetsRepository) FindByAssignee(ctx context.Context, userID int64) ([]models.Asset, error) {
	return r.FindBy(ctx, repository.NewQueryBuilder().AddCondition("assigned_to", userID))
}

func (r *AssetsRepository) FindBy(ctx context.Context, conditions repository.QueryBuilder) ([]models.Asset, error) {
	aliases := map[string]string{
		"status":      "a.status",
		"category":    "a.category",
		"assigned_to": "a.assigned_to",
		"vendor":      "a.vendor",
	}

	return r.fetchAssets(ctx, r.getAssetQuery().Where(conditions.BuildConditions(aliases)))
}

// SearchByTerm matches the term as a case-insensitive substring of the asset
// name or of the assignee's name.
func (r *AssetsRepository) SearchByTerm(ctx context.Context, term string) ([]models.Asset, error) {
	pattern := "%" + strings.ToLower(term) + "%"

	query := r.getAssetQuery().Where(goqu.Or(
		goqu.Func("LOWER", goqu.I("a.name")).Like(pattern),
		goqu.Func("LOWER", goqu.I("u.name")).Like(pattern),
	))

	return r.fetchAssets(ctx, query)
}

// FindHistory returns the entries of one asset, newest first.
func (r *AssetsRepository) FindHistory(ctx context.Context, assetID string) ([]models.HistoryEntry, error) {
	entries := []models.HistoryEntry{}
	err := r.getHistoryQuery().
		Where(goqu.Ex{"asset_id": assetID}).
		Order(goqu.I("entry_date").Desc(), goqu.I("id").Desc()).
		Executor().
		ScanStructsContext(ctx, &entries)
	if err != nil {
		return nil, fmt.Errorf("unable to select asset history: %w", err)
	}

	return entries, nil
}

// Insert stores a new asset together with its creation entry.
func (r *AssetsRepository) Insert(ctx context.Context, asset models.Asset, entry models.HistoryEntry) error {
	return repository.WithTransaction(ctx, r.repository.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		_, err := tx.Insert("assets").
			Rows(assetRecord(asset, true)).
			Executor().
			ExecContext(ctx)
		if err != nil {
			return custom_error.FromDriver(err, fmt.Sprintf("failed to insert asset %s", asset.ID))
		}

		return r.appendHistory(ctx, tx, entry)
	})
}

// Update overwrites every mutable column and appends entry when it is not nil.
func (r *AssetsRepository) Update(ctx context.Context, asset models.Asset, entry *models.HistoryEntry) error {
	return repository.WithTransaction(ctx, r.repository.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		result, err := tx.Update("assets").
			Set(assetRecord(asset, false)).
			Where(goqu.Ex{"asset_id": asset.ID}).
			Executor().
			ExecContext(ctx)
		if err != nil {
			return custom_error.FromDriver(err, fmt.Sprintf("failed to update asset %s", asset.ID))
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return custom_error.NewNotFound("Asset", asset.ID)
		}

		if entry == nil {
			return nil
		}
		return r.appendHistory(ctx, tx, *entry)
	})
}

// DeleteByID removes the history rows of the asset and then the asset itself.
func (r *AssetsRepository) DeleteByID(ctx context.Context, id string) error {
	return repository.WithTransaction(ctx, r.repository.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		_, err := tx.Delete("asset_history").
			Where(goqu.Ex{"asset_id": id}).
			Executor().
			ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete asset history: %w", err)
		}

		result, err := tx.Delete("assets").
			Where(goqu.Ex{"asset_id": id}).
			Executor().
			ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete asset: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return custom_error.NewNotFound("Asset", id)
		}

		return nil
	})
}

func (r *AssetsRepository) appendHistory(ctx context.Context, tx *goqu.TxDatabase, entry models.HistoryEntry) error {
	_, err := tx.Insert("asset_history").
		Rows(goqu.Record{
			"asset_id":   entry.AssetID,
			"entry_date": entry.Date.String(),
			"status":     string(entry.Status),
			"user_id":    nullableID(entry.UserID),
			"notes":      entry.Notes,
		}).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to append asset history: %w", err)
	}

	return nil
}

func (r *AssetsRepository) fetchAssets(ctx context.Context, query *goqu.SelectDataset) ([]models.Asset, error) {
	var flatAssets []models.FlatAssetRecord
	err := query.
		Order(goqu.I("a.asset_id").Asc()).
		Executor().
		ScanStructsContext(ctx, &flatAssets)
	if err != nil {
		return nil, fmt.Errorf("unable to select assets from database: %w", err)
	}

	assets := make([]models.Asset, 0, len(flatAssets))
	for _, flatAsset := range flatAssets {
		assets = append(assets, flatAsset.TransformToAsset())
	}

	if err := r.loadHistory(ctx, assets); err != nil {
		return nil, err
	}

	return assets, nil
}

// loadHistory attaches the date-ordered history to every asset using a single
// query for the whole batch.
func (r *AssetsRepository) loadHistory(ctx context.Context, assets []models.Asset) error {
	if len(assets) == 0 {
		return nil
	}

	ids := make([]string, 0, len(assets))
	for _, asset := range assets {
		ids = append(ids, asset.ID)
	}

	var entries []models.HistoryEntry
	err := r.getHistoryQuery().
		Where(goqu.Ex{"asset_id": ids}).
		Order(goqu.I("entry_date").Asc(), goqu.I("id").Asc()).
		Executor().
		ScanStructsContext(ctx, &entries)
	if err != nil {
		return fmt.Errorf("unable to select asset history: %w", err)
	}

	byAsset := make(map[string][]models.HistoryEntry, len(assets))
	for _, entry := range entries {
		byAsset[entry.AssetID] = append(byAsset[entry.AssetID], entry)
	}

	for i := range assets {
		if history, ok := byAsset[assets[i].ID]; ok {
			assets[i].History = history
		}
	}

	return nil
}

func (r *AssetsRepository) getAssetQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.Select(
		goqu.I("a.asset_id").As("asset_id"),
		goqu.I("a.name").As("name"),
		goqu.I("a.category").As("category"),
		goqu.I("a.status").As("status"),
		goqu.I("a.purchase_date").As("purchase_date"),
		goqu.I("a.assigned_to").As("assigned_to"),
		goqu.I("u.name").As("assigned_user_name"),
		goqu.I("a.notes").As("notes"),
		goqu.I("a.vendor").As("vendor"),
		goqu.I("a.warranty_expiry").As("warranty_expiry"),
		goqu.I("a.specs").As("specs"),
	).
		From(goqu.T("assets").As("a")).
		LeftJoin(
			goqu.T("users").As("u"),
			goqu.On(goqu.Ex{"a.assigned_to": goqu.I("u.id")}),
		)
}

func (r *AssetsRepository) getHistoryQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.
		Select("id", "asset_id", "entry_date", "status", "user_id", "notes").
		From("asset_history")
}

func assetRecord(asset models.Asset, withID bool) goqu.Record {
	record := goqu.Record{
		"name":            asset.Name,
		"category":        string(asset.Category),
		"status":          string(asset.Status),
		"purchase_date":   asset.PurchaseDate.String(),
		"assigned_to":     nullableID(asset.AssignedTo),
		"notes":           asset.Notes,
		"vendor":          asset.Vendor,
		"warranty_expiry": nil,
		"specs":           asset.Specs,
	}

	if asset.WarrantyExpiry != nil {
		record["warranty_expiry"] = asset.WarrantyExpiry.String()
	}
	if withID {
		record["asset_id"] = asset.ID
	}

	return record
}

func nullableID(id *int64) interface{} {
	if id == nil {
		return nil
	}
	return *id
}
