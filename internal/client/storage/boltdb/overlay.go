package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/bookgrid/internal/client/storage"
	"github.com/iudanet/bookgrid/internal/models"
	"github.com/iudanet/bookgrid/internal/validation"
	"github.com/iudanet/bookgrid/pkg/api"
)

// ReadOverlay returns all pending edits from the overlay slot.
// Absent or malformed content is treated as an empty overlay.
func (s *Storage) ReadOverlay(ctx context.Context) ([]models.PendingEdit, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var edits []models.PendingEdit

	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		edits, err = s.readSlot(tx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read overlay: %w", err)
	}

	return edits, nil
}

// WriteOverlay replaces the whole overlay slot.
// Repeated keys collapse to the last status; an edit outside limits rejects the write.
func (s *Storage) WriteOverlay(ctx context.Context, edits []models.PendingEdit) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return s.writeSlot(tx, edits)
	})
	if err != nil {
		return fmt.Errorf("failed to write overlay: %w", err)
	}

	return nil
}

// PutEdit stores one edit: read the full overlay, replace or append the key,
// write the full overlay back. Runs inside one bbolt transaction.
// An existing key keeps its position.
func (s *Storage) PutEdit(ctx context.Context, edit models.PendingEdit) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		edits, err := s.readSlot(tx)
		if err != nil {
			return err
		}

		return s.writeSlot(tx, append(edits, edit))
	})
	if err != nil {
		return fmt.Errorf("failed to put edit %s: %w", edit.Key(), err)
	}

	return nil
}

// ClearOverlay removes the overlay slot
func (s *Storage) ClearOverlay(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOverlay)
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(s.namespace))
	})
	if err != nil {
		return fmt.Errorf("failed to clear overlay: %w", err)
	}

	return nil
}

// readSlot читает слот оверлея внутри транзакции.
// Некорректное содержимое логируется и трактуется как пустой оверлей.
func (s *Storage) readSlot(tx *bbolt.Tx) ([]models.PendingEdit, error) {
	bucket := tx.Bucket(bucketOverlay)
	if bucket == nil {
		// Нет bucket - оверлей пуст
		return []models.PendingEdit{}, nil
	}

	data := bucket.Get([]byte(s.namespace))
	if data == nil {
		return []models.PendingEdit{}, nil
	}

	edits, err := decodeOverlay(data, s.limits)
	if err != nil {
		s.logger.Warn("Overlay slot is malformed, treating as empty",
			"namespace", s.namespace,
			"error", err)
		return []models.PendingEdit{}, nil
	}

	return edits, nil
}

// writeSlot проверяет правки, сводит их к одной на ключ и сохраняет слот целиком.
// ID бэкенда не хранится: ключ ячейки уже однозначен.
func (s *Storage) writeSlot(tx *bbolt.Tx, edits []models.PendingEdit) error {
	for _, e := range edits {
		if err := s.limits.ValidateRecord(e); err != nil {
			return fmt.Errorf("%w: %s: %w", storage.ErrInvalidEdit, e.Key(), err)
		}
	}

	records := api.FromModels(models.CollapseEdits(edits))
	for i := range records {
		records[i].ID = ""
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal overlay: %w", err)
	}

	bucket, err := tx.CreateBucketIfNotExists(bucketOverlay)
	if err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	return bucket.Put([]byte(s.namespace), data)
}

// decodeOverlay разбирает слот тем же критерием, что и удаленные источники:
// пропущенное поле, неизвестный день или статус, ключ вне limits делают
// некорректным весь слот. Повторы ключа сводятся к последнему статусу.
func decodeOverlay(data []byte, limits validation.Limits) ([]models.PendingEdit, error) {
	var raw []api.Record
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(storage.ErrMalformedOverlay, err)
	}

	edits, err := api.ToModels(raw, limits)
	if err != nil {
		return nil, errors.Join(storage.ErrMalformedOverlay, err)
	}

	return models.CollapseEdits(edits), nil
}
