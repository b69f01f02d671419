package metadata

import (
	"encoding/json"
	"fmt"
)

// AssetStatus is stored by its identifier (e.g. IN_USE) and serialized by its
// display name (e.g. "In Use").
type AssetStatus string

const (
	StatusInUse          AssetStatus = "IN_USE"
	StatusInStorage      AssetStatus = "IN_STORAGE"
	StatusInRepair       AssetStatus = "IN_REPAIR"
	StatusDecommissioned AssetStatus = "DECOMMISSIONED"
)

var statuses = []enumValue[AssetStatus]{
	{StatusInUse, "InUse", "In Use"},
	{StatusInStorage, "InStorage", "In Storage"},
	{StatusInRepair, "InRepair", "In Repair"},
	{StatusDecommissioned, "Decommissioned", "Decommissioned"},
}

func AssetStatuses() []AssetStatus {
	return codes(statuses)
}

// NewAssetStatus accepts the display name, the identifier or the camel-case
// name, ignoring case, spaces and underscores.
func NewAssetStatus(value string) (AssetStatus, error) {
	return parse("status", value, statuses)
}

func (s AssetStatus) IsValid() bool {
	_, ok := lookup(s, statuses)
	return ok
}

// Name is the camel-case name used in history notes.
func (s AssetStatus) Name() string {
	if v, ok := lookup(s, statuses); ok {
		return v.name
	}
	return string(s)
}

func (s AssetStatus) DisplayName() string {
	if v, ok := lookup(s, statuses); ok {
		return v.display
	}
	return string(s)
}

func (s AssetStatus) String() string {
	return s.DisplayName()
}

func (s AssetStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.DisplayName())
}

func (s *AssetStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return &InvalidValueError{Field: "status", Value: string(data), Valid: displayNames(statuses)}
	}

	status, err := NewAssetStatus(raw)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// InvalidValueError lists the accepted values of a closed enumeration.
type InvalidValueError struct {
	Field string
	Value string
	Valid []string
}

func (e *InvalidValueError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s value cannot be empty, expected one of: %s", e.Field, joinValues(e.Valid))
	}
	return fmt.Sprintf("unknown %s '%s', expected one of: %s", e.Field, e.Value, joinValues(e.Valid))
}
