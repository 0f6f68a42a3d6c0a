package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/bookgrid/internal/client/storage"
)

const (
	keyLastFetch = "last_fetch"
)

// SaveLastFetch saves information about the last remote fetch
func (s *Storage) SaveLastFetch(ctx context.Context, info storage.FetchInfo) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal fetch info: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if err := bucket.Put([]byte(keyLastFetch), data); err != nil {
			return fmt.Errorf("failed to save last fetch: %w", err)
		}

		return nil
	})
}

// GetLastFetch retrieves information about the last remote fetch
// Returns ErrFetchInfoNotFound if nothing was fetched yet
func (s *Storage) GetLastFetch(ctx context.Context) (*storage.FetchInfo, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var info *storage.FetchInfo

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		data := bucket.Get([]byte(keyLastFetch))
		if data == nil {
			return storage.ErrFetchInfoNotFound
		}

		info = &storage.FetchInfo{}
		if err := json.Unmarshal(data, info); err != nil {
			return fmt.Errorf("failed to unmarshal fetch info: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return info, nil
}
