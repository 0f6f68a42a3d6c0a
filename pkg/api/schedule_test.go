package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bookgrid/internal/models"
	"github.com/iudanet/bookgrid/internal/validation"
)

func TestRecord_ToModel(t *testing.T) {
	limits := validation.DefaultLimits()

	tests := []struct {
		name    string
		record  Record
		want    models.BookingRecord
		wantErr bool
	}{
		{
			name:   "english day",
			record: Record{ID: "abc", TableID: 1, Week: 3, Day: "Mon", Status: "booked"},
			want:   models.BookingRecord{ID: "abc", ResourceID: 1, Week: 3, Day: models.Monday, Status: models.StatusBooked},
		},
		{
			name:   "legacy day label",
			record: Record{TableID: 2, Week: 22, Day: "日", Status: "free"},
			want:   models.BookingRecord{ResourceID: 2, Week: 22, Day: models.Sunday, Status: models.StatusFree},
		},
		{name: "missing table id", record: Record{Week: 3, Day: "Mon", Status: "free"}, wantErr: true},
		{name: "unknown day", record: Record{TableID: 1, Week: 3, Day: "X", Status: "free"}, wantErr: true},
		{name: "unknown status", record: Record{TableID: 1, Week: 3, Day: "Mon", Status: "busy"}, wantErr: true},
		{name: "week out of range", record: Record{TableID: 1, Week: 0, Day: "Mon", Status: "free"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.record.ToModel(limits)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToModels_RejectsWholeArray(t *testing.T) {
	records := []Record{
		{TableID: 1, Week: 1, Day: "Mon", Status: "free"},
		{TableID: 1, Week: 1, Day: "Tue", Status: "unknown"},
	}

	got, err := ToModels(records, validation.DefaultLimits())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
	assert.Nil(t, got)
}

func TestFromModel(t *testing.T) {
	rec := models.BookingRecord{ResourceID: 2, Week: 5, Day: models.Thursday, Status: models.StatusBooked}

	got := FromModel(rec)
	assert.Equal(t, Record{TableID: 2, Week: 5, Day: "Thu", Status: "booked"}, got)

	back, err := got.ToModel(validation.DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, rec, back)
}
