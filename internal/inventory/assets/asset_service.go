package assets

import (
	"context"
	"errors"
	"strings"
	"time"

	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/metadata"
	"assettrack/pkg/models"

	"go.uber.org/zap"
)

type Repository interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
	FindByID(ctx context.Context, id string) (*models.Asset, error)
	FindAll(ctx context.Context) ([]models.Asset, error)
	FindByStatus(ctx context.Context, status metadata.AssetStatus) ([]models.Asset, error)
	FindByAssignee(ctx context.Context, userID int64) ([]models.Asset, error)
	SearchByTerm(ctx context.Context, term string) ([]models.Asset, error)
	FindHistory(ctx context.Context, assetID string) ([]models.HistoryEntry, error)
	Insert(ctx context.Context, asset models.Asset, entry models.HistoryEntry) error
	Update(ctx context.Context, asset models.Asset, entry *models.HistoryEntry) error
	DeleteByID(ctx context.Context, id string) error
}

// UserFinder resolves assignees. Implementations return a NotFoundError for
// unknown ids.
type UserFinder interface {
	FindUser(ctx context.Context, id int64) (*models.User, error)
}

type HistoryRecorder interface {
	HistoryEntryRecorded(reason string)
}

type AssetService struct {
	repo     Repository
	users    UserFinder
	recorder HistoryRecorder
	logger   *zap.Logger
	now      func() time.Time
}

func NewAssetService(repo Repository, users UserFinder, recorder HistoryRecorder, logger *zap.Logger) *AssetService {
	return &AssetService{
		repo:     repo,
		users:    users,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock replaces the source of "today" used for history entries.
func (s *AssetService) WithClock(now func() time.Time) *AssetService {
	s.now = now
	return s
}

func (s *AssetService) Get(ctx context.Context, id string) (*models.Asset, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AssetService) List(ctx context.Context) ([]models.Asset, error) {
	return s.repo.FindAll(ctx)
}

func (s *AssetService) Search(ctx context.Context, term string) ([]models.Asset, error) {
	return s.repo.SearchByTerm(ctx, term)
}

func (s *AssetService) ListByStatus(ctx context.Context, status metadata.AssetStatus) ([]models.Asset, error) {
	return s.repo.FindByStatus(ctx, status)
}

func (s *AssetService) ListByAssignee(ctx context.Context, userID int64) ([]models.Asset, error) {
	if _, err := s.users.FindUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.FindByAssignee(ctx, userID)
}

// History returns the audit trail of one asset, newest first.
func (s *AssetService) History(ctx context.Context, id string) ([]models.HistoryEntry, error) {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, custom_error.NewNotFound("Asset", id)
	}

	return s.repo.FindHistory(ctx, id)
}

func (s *AssetService) Create(ctx context.Context, req models.AssetRequest) (*models.Asset, error) {
	id := req.ID
	if strings.TrimSpace(id) == "" {
		return nil, custom_error.NewValidation("id", "must not be blank")
	}
	if strings.TrimSpace(id) != id {
		return nil, custom_error.NewValidation("id", "must not have leading or trailing whitespace")
	}

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, custom_error.NewAlreadyExists("Asset ID already exists: %s", id)
	}

	asset, err := s.buildAsset(id, req)
	if err != nil {
		return nil, err
	}

	if req.AssignedTo != nil {
		if _, err := s.users.FindUser(ctx, *req.AssignedTo); err != nil {
			return nil, err
		}
		asset.AssignedTo = copyID(req.AssignedTo)
	}

	entry := creationEntry(asset, s.today())
	if err := s.repo.Insert(ctx, asset, entry); err != nil {
		var uniqueErr *custom_error.UniqueViolationError
		if errors.As(err, &uniqueErr) {
			return nil, custom_error.NewAlreadyExists("Asset ID already exists: %s", id)
		}
		return nil, err
	}

	s.record("created")
	s.logger.Info("Asset created",
		zap.String("asset_id", asset.ID),
		zap.String("status", asset.Status.Name()),
	)

	return s.repo.FindByID(ctx, id)
}

// Update replaces every field of the asset with the payload. A nil or
// non-positive assignee clears the assignment.
func (s *AssetService) Update(ctx context.Context, id string, req models.AssetRequest) (*models.Asset, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.buildAsset(current.ID, req)
	if err != nil {
		return nil, err
	}

	if req.AssignedTo != nil && *req.AssignedTo > 0 {
		if _, err := s.users.FindUser(ctx, *req.AssignedTo); err != nil {
			return nil, err
		}
		updated.AssignedTo = copyID(req.AssignedTo)
	}

	entry := changeEntry(*current, updated, s.today())
	if err := s.repo.Update(ctx, updated, entry); err != nil {
		return nil, err
	}

	if entry != nil {
		s.record("changed")
		s.logger.Info("Asset history entry recorded",
			zap.String("asset_id", updated.ID),
			zap.String("notes", entry.Notes),
		)
	}

	return s.repo.FindByID(ctx, id)
}

func (s *AssetService) Delete(ctx context.Context, id string) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return custom_error.NewNotFound("Asset", id)
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Asset deleted", zap.String("asset_id", id))
	return nil
}

func (s *AssetService) buildAsset(id string, req models.AssetRequest) (models.Asset, error) {
	validation := &custom_error.ValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		validation.Add("name", "must not be blank")
	}
	if strings.TrimSpace(req.Vendor) == "" {
		validation.Add("vendor", "must not be blank")
	}
	if !req.Category.IsValid() {
		validation.Add("category", "must not be null")
	}
	if !req.Status.IsValid() {
		validation.Add("status", "must not be null")
	}
	if req.PurchaseDate == nil {
		validation.Add("purchaseDate", "must not be null")
	}
	if len(validation.Fields) > 0 {
		return models.Asset{}, validation
	}

	asset := models.Asset{
		ID:           id,
		Name:         req.Name,
		Category:     req.Category,
		Status:       req.Status,
		PurchaseDate: *req.PurchaseDate,
		Notes:        req.Notes,
		Vendor:       req.Vendor,
		Specs:        req.Specs,
		History:      []models.HistoryEntry{},
	}
	if req.WarrantyExpiry != nil {
		warranty := *req.WarrantyExpiry
		asset.WarrantyExpiry = &warranty
	}

	return asset, nil
}

func (s *AssetService) today() models.Date {
	return models.DateOf(s.now())
}

func (s *AssetService) record(reason string) {
	if s.recorder != nil {
		s.recorder.HistoryEntryRecorded(reason)
	}
}
