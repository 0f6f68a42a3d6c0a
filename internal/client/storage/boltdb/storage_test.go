package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/bookgrid/internal/client/storage"
	"github.com/iudanet/bookgrid/internal/models"
)

// hasBuckets сообщает, созданы ли бакеты overlay и metadata
func hasBuckets(t *testing.T, db *bbolt.DB) bool {
	t.Helper()
	found := true
	require.NoError(t, db.View(func(tx *bbolt.Tx) error {
		found = tx.Bucket(bucketOverlay) != nil && tx.Bucket(bucketMetadata) != nil
		return nil
	}))
	return found
}

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		opts          []Option
		wantNamespace string
	}{
		{name: "default namespace", wantNamespace: storage.DefaultNamespace},
		{name: "custom namespace", opts: []Option{WithNamespace("semester_2025")}, wantNamespace: "semester_2025"},
		{name: "empty namespace keeps previous", opts: []Option{WithNamespace("spring"), WithNamespace("")}, wantNamespace: "spring"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := New(context.Background(), filepath.Join(t.TempDir(), "client.db"), tt.opts...)
			require.NoError(t, err)
			defer func() {
				require.NoError(t, store.Close())
			}()

			assert.Equal(t, tt.wantNamespace, store.Namespace())
			assert.True(t, hasBuckets(t, store.db))
		})
	}
}

func TestNew_MissingDirectory(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "missing-dir", "client.db"))
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNamespaces_AreIsolated(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "client.db")
	edit := models.NewRecord(models.Key{ResourceID: 1, Week: 4, Day: models.Friday}, models.StatusBooked)

	fall, err := New(ctx, path, WithNamespace("fall"))
	require.NoError(t, err)
	require.NoError(t, fall.PutEdit(ctx, edit))
	require.NoError(t, fall.Close())

	spring, err := New(ctx, path, WithNamespace("spring"))
	require.NoError(t, err)
	edits, err := spring.ReadOverlay(ctx)
	require.NoError(t, err)
	assert.Empty(t, edits, "another namespace sees an empty overlay")
	require.NoError(t, spring.Close())

	fall, err = New(ctx, path, WithNamespace("fall"))
	require.NoError(t, err)
	defer func() {
		_ = fall.Close()
	}()
	edits, err = fall.ReadOverlay(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.PendingEdit{edit}, edits, "overlay survives reopen")
}

func TestClose_Idempotent(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)

	require.NoError(t, store.Close())
	assert.Nil(t, store.db)
	assert.NoError(t, store.Close(), "second Close is a no-op")

	_, err = store.ReadOverlay(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, store.PutEdit(ctx, models.PendingEdit{}), storage.ErrStorageClosed)
	_, err = store.GetLastFetch(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestInitBuckets_OnExistingFile(t *testing.T) {
	db, err := bbolt.Open(filepath.Join(t.TempDir(), "raw.db"), 0o600, nil)
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()

	assert.False(t, hasBuckets(t, db))

	store := &Storage{db: db}
	require.NoError(t, store.initBuckets())
	assert.True(t, hasBuckets(t, db))

	// Повторная инициализация не ломает существующие бакеты
	require.NoError(t, store.initBuckets())
}
