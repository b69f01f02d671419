package models

import (
	"database/sql"

	"assettrack/pkg/metadata"
)

type Asset struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	Category         metadata.AssetCategory `json:"category"`
	Status           metadata.AssetStatus   `json:"status"`
	PurchaseDate     Date                   `json:"purchaseDate"`
	AssignedTo       *int64                 `json:"assignedTo"`
	AssignedUserName string                 `json:"assignedUserName,omitempty"`
	Notes            string                 `json:"notes"`
	Vendor           string                 `json:"vendor"`
	WarrantyExpiry   *Date                  `json:"warrantyExpiry"`
	Specs            string                 `json:"specs"`
	History          []HistoryEntry         `json:"history"`
}

// HistoryEntry is one immutable line of an asset's audit trail.
type HistoryEntry struct {
	ID      int64                `json:"id" db:"id"`
	AssetID string               `json:"-" db:"asset_id"`
	Date    Date                 `json:"date" db:"entry_date"`
	Status  metadata.AssetStatus `json:"status" db:"status"`
	UserID  *int64               `json:"userId" db:"user_id"`
	Notes   string               `json:"notes" db:"notes"`
}

// AssetRequest is the full replacement payload for create and update. ID is
// only read on create.
type AssetRequest struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name" binding:"required,notblank"`
	Category       metadata.AssetCategory `json:"category" binding:"required"`
	Status         metadata.AssetStatus   `json:"status" binding:"required"`
	PurchaseDate   *Date                  `json:"purchaseDate" binding:"required"`
	AssignedTo     *int64                 `json:"assignedTo"`
	Notes          string                 `json:"notes"`
	Vendor         string                 `json:"vendor" binding:"required,notblank"`
	WarrantyExpiry *Date                  `json:"warrantyExpiry"`
	Specs          string                 `json:"specs"`
}

type FlatAssetRecord struct {
	ID               string                 `db:"asset_id"`
	Name             string                 `db:"name"`
	Category         metadata.AssetCategory `db:"category"`
	Status           metadata.AssetStatus   `db:"status"`
	PurchaseDate     Date                   `db:"purchase_date"`
	AssignedTo       sql.NullInt64          `db:"assigned_to"`
	AssignedUserName sql.NullString         `db:"assigned_user_name"`
	Notes            string                 `db:"notes"`
	Vendor           string                 `db:"vendor"`
	WarrantyExpiry   *Date                  `db:"warranty_expiry"`
	Specs            string                 `db:"specs"`
}

func (fa *FlatAssetRecord) TransformToAsset() Asset {
	asset := Asset{
		ID:             fa.ID,
		Name:           fa.Name,
		Category:       fa.Category,
		Status:         fa.Status,
		PurchaseDate:   fa.PurchaseDate,
		Notes:          fa.Notes,
		Vendor:         fa.Vendor,
		WarrantyExpiry: fa.WarrantyExpiry,
		Specs:          fa.Specs,
		History:        []HistoryEntry{},
	}

	if fa.AssignedTo.Valid {
		userID := fa.AssignedTo.Int64
		asset.AssignedTo = &userID
		asset.AssignedUserName = fa.AssignedUserName.String
	}

	return asset
}
