package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bookgrid/internal/models"
	"github.com/iudanet/bookgrid/internal/server/storage"
	"github.com/iudanet/bookgrid/internal/validation"
)

func TestScheduleStorage_Seed(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	limits := validation.Limits{Resources: 2, Weeks: 3}

	inserted, err := s.Seed(ctx, limits)
	require.NoError(t, err)
	assert.Equal(t, 2*3*models.DaysPerWeek, inserted)

	records, err := s.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2*3*models.DaysPerWeek)

	for _, rec := range records {
		assert.Equal(t, models.StatusFree, rec.Status)
		_, err := uuid.Parse(rec.ID)
		assert.NoError(t, err, "id must be uuid")
	}

	// Повторный seed не создает дубликатов
	inserted, err = s.Seed(ctx, limits)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
}

func TestScheduleStorage_Seed_KeepsExistingRows(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	limits := validation.Limits{Resources: 1, Weeks: 1}
	key := models.Key{ResourceID: 1, Week: 1, Day: models.Wednesday}

	_, err := s.UpsertRecord(ctx, models.NewRecord(key, models.StatusBooked))
	require.NoError(t, err)

	inserted, err := s.Seed(ctx, limits)
	require.NoError(t, err)
	assert.Equal(t, models.DaysPerWeek-1, inserted)

	rec, err := s.GetRecord(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, models.StatusBooked, rec.Status)
}

func TestScheduleStorage_ListRecords_Order(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	records, err := s.ListRecords(ctx)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	keys := []models.Key{
		{ResourceID: 2, Week: 1, Day: models.Monday},
		{ResourceID: 1, Week: 3, Day: models.Sunday},
		{ResourceID: 1, Week: 3, Day: models.Monday},
		{ResourceID: 1, Week: 1, Day: models.Friday},
	}
	for _, key := range keys {
		_, err := s.UpsertRecord(ctx, models.NewRecord(key, models.StatusBooked))
		require.NoError(t, err)
	}

	records, err = s.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, len(keys))

	for i := 1; i < len(records); i++ {
		assert.True(t, records[i-1].Key().Less(records[i].Key()),
			"%s must precede %s", records[i-1].Key(), records[i].Key())
	}
}

func TestScheduleStorage_UpsertRecord(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	key := models.Key{ResourceID: 1, Week: 5, Day: models.Tuesday}

	created, err := s.UpsertRecord(ctx, models.NewRecord(key, models.StatusBooked))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, key, created.Key())
	assert.Equal(t, models.StatusBooked, created.Status)

	updated, err := s.UpsertRecord(ctx, models.NewRecord(key, models.StatusFree))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID, "id is kept on update")
	assert.Equal(t, models.StatusFree, updated.Status)

	records, err := s.ListRecords(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestScheduleStorage_UpsertRecord_UpdatedAt(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	fixed := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	key := models.Key{ResourceID: 2, Week: 22, Day: models.Sunday}
	_, err := s.UpsertRecord(ctx, models.NewRecord(key, models.StatusBooked))
	require.NoError(t, err)

	var updatedAt int64
	err = s.DB().QueryRowContext(ctx,
		"SELECT updated_at FROM schedule WHERE table_id = ? AND week = ? AND day = ?",
		key.ResourceID, key.Week, int(key.Day),
	).Scan(&updatedAt)
	require.NoError(t, err)
	assert.Equal(t, fixed.Unix(), updatedAt)
}

func TestScheduleStorage_GetRecord_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetRecord(ctx, models.Key{ResourceID: 1, Week: 1, Day: models.Monday})
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestScheduleStorage_RejectsInvalidStatus(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	rec := models.BookingRecord{ResourceID: 1, Week: 1, Day: models.Monday, Status: "maybe"}
	_, err := s.UpsertRecord(ctx, rec)
	assert.Error(t, err)
}

func TestNew_FileDatabase_Persists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bookgrid.db")

	s, err := New(ctx, path)
	require.NoError(t, err)

	key := models.Key{ResourceID: 1, Week: 2, Day: models.Thursday}
	_, err = s.UpsertRecord(ctx, models.NewRecord(key, models.StatusBooked))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Миграции при повторном открытии не ломают данные
	s, err = New(ctx, path)
	require.NoError(t, err)
	defer func() {
		_ = s.Close()
	}()

	rec, err := s.GetRecord(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, models.StatusBooked, rec.Status)
	require.NoError(t, s.Ping(ctx))
}

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	storage, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
	}

	return storage, cleanup
}
