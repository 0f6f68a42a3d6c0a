package storage

import (
	"context"

	"github.com/iudanet/bookgrid/internal/models"
	"github.com/iudanet/bookgrid/internal/validation"
)

//go:generate moq -out schedule_mock.go . ScheduleStorage

// ScheduleStorage defines persistence of the authoritative schedule
type ScheduleStorage interface {
	// Seed inserts a free row for every cell within limits that has no row yet.
	// Existing rows are never modified. Returns the number of inserted rows.
	Seed(ctx context.Context, limits validation.Limits) (int, error)

	// ListRecords returns all rows ordered by table, week and day.
	// Returns empty slice if the table is empty.
	ListRecords(ctx context.Context) ([]models.BookingRecord, error)

	// GetRecord returns the row for a cell key
	// Returns ErrRecordNotFound if the cell has no row
	GetRecord(ctx context.Context, key models.Key) (*models.BookingRecord, error)

	// UpsertRecord sets the status of a cell, creating the row if needed.
	// Returns the stored row with its ID.
	UpsertRecord(ctx context.Context, rec models.BookingRecord) (*models.BookingRecord, error)
}
