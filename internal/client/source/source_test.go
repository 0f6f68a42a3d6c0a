package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/bookgrid/internal/client/api"
	"github.com/iudanet/bookgrid/internal/models"
	"github.com/iudanet/bookgrid/internal/validation"
	"github.com/iudanet/bookgrid/pkg/api"
)

func TestHTTPSource_Fetch(t *testing.T) {
	tests := []struct {
		name    string
		raw     []api.Record
		err     error
		want    []models.BookingRecord
		wantErr bool
	}{
		{
			name: "valid records",
			raw: []api.Record{
				{ID: "x", TableID: 1, Week: 3, Day: "Tue", Status: "booked"},
				{TableID: 2, Week: 22, Day: "日", Status: "free"},
			},
			want: []models.BookingRecord{
				{ID: "x", ResourceID: 1, Week: 3, Day: models.Tuesday, Status: models.StatusBooked},
				{ResourceID: 2, Week: 22, Day: models.Sunday, Status: models.StatusFree},
			},
		},
		{
			name: "empty array is success",
			raw:  []api.Record{},
			want: []models.BookingRecord{},
		},
		{
			name:    "transport error",
			err:     errors.New("connection refused"),
			wantErr: true,
		},
		{
			name:    "not an array",
			raw:     nil,
			wantErr: true,
		},
		{
			name: "one invalid element poisons the payload",
			raw: []api.Record{
				{TableID: 1, Week: 3, Day: "Tue", Status: "booked"},
				{TableID: 3, Week: 3, Day: "Tue", Status: "booked"},
			},
			wantErr: true,
		},
		{
			name:    "unknown status",
			raw:     []api.Record{{TableID: 1, Week: 1, Day: "Mon", Status: "maybe"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &ScheduleFetcherMock{
				FetchScheduleFunc: func(ctx context.Context, path string) ([]api.Record, error) {
					return tt.raw, tt.err
				},
			}

			src := NewAPISource(fetcher, validation.DefaultLimits())
			got, err := src.Fetch(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrRemoteUnavailable)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			calls := fetcher.FetchScheduleCalls()
			require.Len(t, calls, 1)
			assert.Equal(t, httpClient.SchedulePath, calls[0].Path)
		})
	}
}

func TestStaticSource_DefaultPath(t *testing.T) {
	fetcher := &ScheduleFetcherMock{
		FetchScheduleFunc: func(ctx context.Context, path string) ([]api.Record, error) {
			return []api.Record{}, nil
		},
	}

	src := NewStaticSource(fetcher, "", validation.DefaultLimits())
	_, err := src.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, NameStatic, src.Name())
	assert.Equal(t, httpClient.SnapshotPath, fetcher.FetchScheduleCalls()[0].Path)
}

func TestFileSource_Fetch(t *testing.T) {
	dir := t.TempDir()
	limits := validation.DefaultLimits()

	valid := filepath.Join(dir, "valid.json")
	require.NoError(t, os.WriteFile(valid, []byte(`[{"table_id":1,"week":1,"day":"Mon","status":"booked"}]`), 0o600))

	object := filepath.Join(dir, "object.json")
	require.NoError(t, os.WriteFile(object, []byte(`{"table_id":1}`), 0o600))

	badWeek := filepath.Join(dir, "week.json")
	require.NoError(t, os.WriteFile(badWeek, []byte(`[{"table_id":1,"week":0,"day":"Mon","status":"booked"}]`), 0o600))

	records, err := NewFileSource(valid, limits).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.BookingRecord{
		{ResourceID: 1, Week: 1, Day: models.Monday, Status: models.StatusBooked},
	}, records)

	for _, path := range []string{object, badWeek, filepath.Join(dir, "missing.json")} {
		_, err := NewFileSource(path, limits).Fetch(context.Background())
		assert.ErrorIs(t, err, ErrRemoteUnavailable, path)
	}
}

func TestEmbeddedSource_Fetch(t *testing.T) {
	src := NewEmbeddedSource(validation.DefaultLimits())

	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 28)

	booked := 0
	for _, rec := range records {
		if rec.Status == models.StatusBooked {
			booked++
		}
	}
	assert.Equal(t, 7, booked)
	assert.Contains(t, records, models.BookingRecord{ResourceID: 1, Week: 3, Day: models.Tuesday, Status: models.StatusBooked})
}

func TestDecode(t *testing.T) {
	limits := validation.DefaultLimits()

	records, err := Decode([]byte("  []  "), limits)
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = Decode([]byte(""), limits)
	assert.ErrorIs(t, err, httpClient.ErrNotArray)

	_, err = Decode([]byte(`[{"table_id":"one","week":1,"day":"Mon","status":"free"}]`), limits)
	assert.Error(t, err)

	_, err = Decode([]byte(`[{"table_id":1,"week":1,"day":"Mon","status":"free"}`), limits)
	assert.Error(t, err)
}
