package assets

import (
	"fmt"
	"strings"

	"assettrack/pkg/metadata"
	"assettrack/pkg/models"
)

const (
	NoteAssetCreated = "Asset created"
	NoteReassignment = "Reassignment"
)

// changeNotes describes what differs between the stored and the incoming state.
// The second return value is false when neither status nor assignee changed.
func changeNotes(oldStatus, newStatus metadata.AssetStatus, oldUser, newUser *int64) (string, bool) {
	statusChanged := oldStatus != newStatus
	userChanged := !sameAssignee(oldUser, newUser)

	if !statusChanged && !userChanged {
		return "", false
	}

	var notes []string
	if statusChanged {
		notes = append(notes, fmt.Sprintf("Status changed from %s to %s", oldStatus.Name(), newStatus.Name()))
	}
	if userChanged {
		notes = append(notes, NoteReassignment)
	}

	return strings.Join(notes, ". "), true
}

func sameAssignee(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func creationEntry(asset models.Asset, today models.Date) models.HistoryEntry {
	return models.HistoryEntry{
		AssetID: asset.ID,
		Date:    today,
		Status:  asset.Status,
		UserID:  copyID(asset.AssignedTo),
		Notes:   NoteAssetCreated,
	}
}

// changeEntry returns nil when the update does not touch status or assignee.
func changeEntry(current, updated models.Asset, today models.Date) *models.HistoryEntry {
	notes, changed := changeNotes(current.Status, updated.Status, current.AssignedTo, updated.AssignedTo)
	if !changed {
		return nil
	}

	return &models.HistoryEntry{
		AssetID: updated.ID,
		Date:    today,
		Status:  updated.Status,
		UserID:  copyID(updated.AssignedTo),
		Notes:   notes,
	}
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
