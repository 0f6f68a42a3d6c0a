package source

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/bookgrid/internal/models"
)

type stubSource struct {
	err     error
	name    string
	records []models.BookingRecord
	calls   int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(ctx context.Context) ([]models.BookingRecord, error) {
	s.calls++
	if s.err != nil {
		return nil, unavailable(s.name, s.err)
	}
	return s.records, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestChain_FirstSuccessWins(t *testing.T) {
	rec := models.BookingRecord{ResourceID: 1, Week: 1, Day: models.Monday, Status: models.StatusBooked}

	first := &stubSource{name: "api", err: errors.New("timeout")}
	second := &stubSource{name: "static", records: []models.BookingRecord{rec}}
	third := &stubSource{name: "embedded", records: []models.BookingRecord{}}

	chain := NewChain(testLogger(), first, second, third)
	result := chain.Fetch(context.Background())

	assert.Equal(t, "static", result.Source)
	assert.Equal(t, []models.BookingRecord{rec}, result.Records)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
	assert.Equal(t, 0, third.calls, "later sources must not be consulted")
	assert.Equal(t, []string{"api", "static", "embedded"}, chain.Sources())
}

func TestChain_EmptyArrayIsSuccess(t *testing.T) {
	first := &stubSource{name: "api"}
	second := &stubSource{name: "embedded", records: []models.BookingRecord{{ResourceID: 1, Week: 1}}}

	result := NewChain(testLogger(), first, second).Fetch(context.Background())

	assert.Equal(t, "api", result.Source)
	assert.NotNil(t, result.Records)
	assert.Empty(t, result.Records)
	assert.Equal(t, 0, second.calls)
}

func TestChain_AllFail(t *testing.T) {
	chain := NewChain(testLogger(),
		&stubSource{name: "api", err: errors.New("down")},
		&stubSource{name: "file", err: errors.New("missing")},
	)

	result := chain.Fetch(context.Background())

	assert.Equal(t, "", result.Source)
	assert.NotNil(t, result.Records)
	assert.Empty(t, result.Records)
}

func TestChain_NoSources(t *testing.T) {
	result := NewChain(testLogger()).Fetch(context.Background())
	assert.Empty(t, result.Source)
	assert.Empty(t, result.Records)
}
