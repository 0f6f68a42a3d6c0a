package storage

import (
	"context"

	"github.com/iudanet/bookgrid/internal/models"
)

//go:generate moq -out overlay_mock.go . OverlayStorage

// DefaultNamespace is the fixed name of the persistent slot holding the overlay
const DefaultNamespace = "mock_schedule"

// OverlayStorage defines the local pending-edit overlay.
// The overlay is a single slot holding the final status per key, not a log.
type OverlayStorage interface {
	// ReadOverlay returns all pending edits.
	// Absent or malformed content is returned as an empty slice without error.
	ReadOverlay(ctx context.Context) ([]models.PendingEdit, error)

	// WriteOverlay replaces the whole overlay
	WriteOverlay(ctx context.Context, edits []models.PendingEdit) error

	// PutEdit stores one edit with read-modify-write of the whole slot.
	// An existing edit with the same key is replaced in place.
	PutEdit(ctx context.Context, edit models.PendingEdit) error

	// ClearOverlay removes all pending edits
	ClearOverlay(ctx context.Context) error
}
