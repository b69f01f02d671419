package metadata

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewAssetStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    AssetStatus
		wantErr bool
	}{
		{"display name", "In Use", StatusInUse, false},
		{"display name lower case", "in storage", StatusInStorage, false},
		{"identifier", "IN_REPAIR", StatusInRepair, false},
		{"identifier lower case", "decommissioned", StatusDecommissioned, false},
		{"camel case name", "InStorage", StatusInStorage, false},
		{"padded", "  In Repair ", StatusInRepair, false},
		{"unknown", "Lost", "", true},
		{"empty", "   ", "", true},
		{"scattered separators", "i-n u_se", "", true},
		{"hyphenated", "In-Use", "", true},
		{"identifier with space", "IN USE", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewAssetStatus(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewAssetStatus() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("NewAssetStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewAssetCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    AssetCategory
		wantErr bool
	}{
		{"display name with space", "Network Device", CategoryNetworkDevice, false},
		{"identifier", "NETWORK_DEVICE", CategoryNetworkDevice, false},
		{"camel case", "networkdevice", CategoryNetworkDevice, false},
		{"plain", "LAPTOP", CategoryLaptop, false},
		{"hyphenated display name", "Network-Device", "", true},
		{"trailing space", "Network Device ", CategoryNetworkDevice, false},
		{"unknown", "Toaster", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewAssetCategory(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewAssetCategory() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("NewAssetCategory() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInvalidValueListsValidValues(t *testing.T) {
	_, err := NewAssetStatus("Lost")

	var invalid *InvalidValueError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidValueError, got %T", err)
	}
	for _, want := range []string{"'Lost'", "In Use", "In Storage", "In Repair", "Decommissioned"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err.Error(), want)
		}
	}
}

func TestEnumJSONUsesDisplayNames(t *testing.T) {
	payload := struct {
		Category AssetCategory `json:"category"`
		Status   AssetStatus   `json:"status"`
	}{CategoryNetworkDevice, StatusInUse}

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"category":"Network Device","status":"In Use"}` {
		t.Errorf("unexpected JSON: %s", data)
	}

	var decoded struct {
		Category AssetCategory `json:"category"`
		Status   AssetStatus   `json:"status"`
	}
	if err := json.Unmarshal([]byte(`{"category":"network_device","status":"IN_REPAIR"}`), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Category != CategoryNetworkDevice || decoded.Status != StatusInRepair {
		t.Errorf("unexpected decode: %+v", decoded)
	}

	if err := json.Unmarshal([]byte(`{"status":"Broken"}`), &decoded); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestStatusName(t *testing.T) {
	if StatusInStorage.Name() != "InStorage" {
		t.Errorf("Name() = %s", StatusInStorage.Name())
	}
	if len(AssetStatuses()) != 4 || len(AssetCategories()) != 11 {
		t.Error("unexpected enumeration sizes")
	}
}
