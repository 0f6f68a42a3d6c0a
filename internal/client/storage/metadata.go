package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// FetchInfo describes the last remote fetch
type FetchInfo struct {
	FetchedAt time.Time `json:"fetched_at"`
	Source    string    `json:"source"` // Source name of the strategy that answered, empty when all failed
	Records   int       `json:"records"`
}

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastFetch saves information about the last remote fetch
	SaveLastFetch(ctx context.Context, info FetchInfo) error

	// GetLastFetch retrieves information about the last remote fetch
	// Returns ErrFetchInfoNotFound if nothing was fetched yet
	GetLastFetch(ctx context.Context) (*FetchInfo, error)
}
