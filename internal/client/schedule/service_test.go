package schedule

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bookgrid/internal/calendar"
	"github.com/iudanet/bookgrid/internal/client/source"
	"github.com/iudanet/bookgrid/internal/client/storage"
	"github.com/iudanet/bookgrid/internal/models"
	"github.com/iudanet/bookgrid/internal/validation"
	"github.com/iudanet/bookgrid/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSemester() calendar.Semester {
	return calendar.MustSemester("2025-09-01", 22, time.UTC)
}

// memOverlay возвращает мок оверлея, хранящий правки в памяти
func memOverlay(initial ...models.PendingEdit) (*storage.OverlayStorageMock, *[]models.PendingEdit) {
	edits := append([]models.PendingEdit{}, initial...)
	mock := &storage.OverlayStorageMock{
		ReadOverlayFunc: func(ctx context.Context) ([]models.PendingEdit, error) {
			return append([]models.PendingEdit{}, edits...), nil
		},
		WriteOverlayFunc: func(ctx context.Context, e []models.PendingEdit) error {
			edits = append([]models.PendingEdit{}, e...)
			return nil
		},
		PutEditFunc: func(ctx context.Context, edit models.PendingEdit) error {
			for i := range edits {
				if edits[i].Key() == edit.Key() {
					edits[i] = edit
					return nil
				}
			}
			edits = append(edits, edit)
			return nil
		},
		ClearOverlayFunc: func(ctx context.Context) error {
			edits = nil
			return nil
		},
	}
	return mock, &edits
}

func staticFetcher(name string, records ...models.BookingRecord) *FetcherMock {
	return &FetcherMock{
		FetchFunc: func(ctx context.Context) source.Result {
			return source.Result{Source: name, Records: records}
		},
	}
}

func okWriter() *RemoteWriterMock {
	return &RemoteWriterMock{
		UpdateRecordFunc: func(ctx context.Context, req api.UpdateRequest) (*api.UpdateResponse, error) {
			req.ID = "srv-" + req.Day
			return &api.UpdateResponse{Status: "ok", Record: req}, nil
		},
	}
}

func failingWriter() *RemoteWriterMock {
	return &RemoteWriterMock{
		UpdateRecordFunc: func(ctx context.Context, req api.UpdateRequest) (*api.UpdateResponse, error) {
			return nil, errors.New("connection refused")
		},
	}
}

var (
	keyA = models.Key{ResourceID: 1, Week: 3, Day: models.Tuesday}
	keyB = models.Key{ResourceID: 2, Week: 10, Day: models.Sunday}
)

func TestNewService(t *testing.T) {
	overlay, _ := memOverlay()
	svc := NewService(Config{
		Fetcher:  staticFetcher("api"),
		Overlay:  overlay,
		Semester: testSemester(),
	})

	assert.NotNil(t, svc.logger)
	assert.Equal(t, validation.Limits{Resources: 2, Weeks: 22}, svc.Limits())
	assert.False(t, svc.CanPush())
	assert.Equal(t, testSemester(), svc.Semester())
}

func TestService_View_LocalAlwaysWins(t *testing.T) {
	overlay, _ := memOverlay(models.NewRecord(keyA, models.StatusFree))
	svc := NewService(Config{
		Fetcher:  staticFetcher("api", models.NewRecord(keyA, models.StatusBooked), models.NewRecord(keyB, models.StatusBooked)),
		Overlay:  overlay,
		Semester: testSemester(),
		Logger:   testLogger(),
	})

	view := svc.View(context.Background())

	assert.Equal(t, models.StatusFree, view.Status(keyA))
	assert.Equal(t, models.StatusBooked, view.Status(keyB))
	assert.Equal(t, "api", svc.Source())
}

func TestService_View_RefreshesOnce(t *testing.T) {
	fetcher := staticFetcher("embedded")
	overlay, _ := memOverlay()
	svc := NewService(Config{Fetcher: fetcher, Overlay: overlay, Semester: testSemester(), Logger: testLogger()})

	ctx := context.Background()
	svc.View(ctx)
	svc.View(ctx)
	svc.PendingCount(ctx)
	assert.Len(t, fetcher.FetchCalls(), 1)

	svc.Refresh(ctx)
	assert.Len(t, fetcher.FetchCalls(), 2)
}

func TestService_Refresh_SavesFetchInfo(t *testing.T) {
	var saved storage.FetchInfo
	metadata := &storage.MetadataStorageMock{
		SaveLastFetchFunc: func(ctx context.Context, info storage.FetchInfo) error {
			saved = info
			return nil
		},
		GetLastFetchFunc: func(ctx context.Context) (*storage.FetchInfo, error) {
			info := saved
			return &info, nil
		},
	}
	overlay, _ := memOverlay()
	fixed := time.Date(2025, 9, 3, 10, 0, 0, 0, time.UTC)

	svc := NewService(Config{
		Fetcher:  staticFetcher("static", models.NewRecord(keyA, models.StatusBooked)),
		Overlay:  overlay,
		Metadata: metadata,
		Semester: testSemester(),
		Logger:   testLogger(),
	})
	svc.now = func() time.Time { return fixed }

	result := svc.Refresh(context.Background())
	assert.Equal(t, "static", result.Source)

	info, err := svc.LastFetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, storage.FetchInfo{FetchedAt: fixed, Source: "static", Records: 1}, *info)
}

func TestService_Refresh_MetadataErrorIsIgnored(t *testing.T) {
	metadata := &storage.MetadataStorageMock{
		SaveLastFetchFunc: func(ctx context.Context, info storage.FetchInfo) error {
			return storage.ErrStorageClosed
		},
	}
	overlay, _ := memOverlay()
	svc := NewService(Config{Fetcher: staticFetcher(""), Overlay: overlay, Metadata: metadata, Semester: testSemester(), Logger: testLogger()})

	result := svc.Refresh(context.Background())
	assert.Empty(t, result.Source)
	assert.Len(t, metadata.SaveLastFetchCalls(), 1)
}

func TestService_LastFetch_NoMetadata(t *testing.T) {
	overlay, _ := memOverlay()
	svc := NewService(Config{Fetcher: staticFetcher("api"), Overlay: overlay, Semester: testSemester(), Logger: testLogger()})

	_, err := svc.LastFetch(context.Background())
	assert.ErrorIs(t, err, storage.ErrFetchInfoNotFound)
}

func TestService_Grid(t *testing.T) {
	overlay, _ := memOverlay()
	svc := NewService(Config{
		Fetcher:  staticFetcher("api", models.NewRecord(keyB, models.StatusBooked)),
		Overlay:  overlay,
		Semester: testSemester(),
		Logger:   testLogger(),
	})

	g, err := svc.Grid(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, g.Rows, 22)

	cell, ok := g.Cell(10, models.Sunday)
	require.True(t, ok)
	assert.Equal(t, models.StatusBooked, cell.Status)
	assert.Equal(t, 1, g.Count(models.StatusBooked))

	_, err = svc.Grid(context.Background(), 3)
	assert.Error(t, err)
}

func TestService_Toggle_LocalOnly(t *testing.T) {
	overlay, edits := memOverlay()
	svc := NewService(Config{Fetcher: staticFetcher("api"), Overlay: overlay, Semester: testSemester(), Logger: testLogger()})

	result, err := svc.Toggle(context.Background(), keyA)
	require.NoError(t, err)

	assert.Equal(t, models.NewRecord(keyA, models.StatusBooked), result.Record)
	assert.False(t, result.Pushed)
	assert.NoError(t, result.RemoteErr)
	assert.Equal(t, models.StatusBooked, result.View.Status(keyA))
	assert.Equal(t, []models.PendingEdit{models.NewRecord(keyA, models.StatusBooked)}, *edits)
}

func TestService_Toggle_TwiceRestoresStatus(t *testing.T) {
	overlay, edits := memOverlay()
	svc := NewService(Config{
		Fetcher:  staticFetcher("api", models.NewRecord(keyA, models.StatusBooked)),
		Overlay:  overlay,
		Semester: testSemester(),
		Logger:   testLogger(),
	})
	ctx := context.Background()

	first, err := svc.Toggle(ctx, keyA)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFree, first.Record.Status)

	second, err := svc.Toggle(ctx, keyA)
	require.NoError(t, err)
	assert.Equal(t, models.StatusBooked, second.Record.Status)
	assert.Equal(t, models.StatusBooked, svc.View(ctx).Status(keyA))

	// Оверлей хранит одну запись на ключ
	assert.Len(t, *edits, 1)
	assert.Equal(t, 0, svc.PendingCount(ctx))
}

func TestService_Toggle_PushSucceeds(t *testing.T) {
	overlay, _ := memOverlay()
	writer := okWriter()
	svc := NewService(Config{Fetcher: staticFetcher("api"), Overlay: overlay, Writer: writer, Semester: testSemester(), Logger: testLogger()})
	ctx := context.Background()

	result, err := svc.Toggle(ctx, keyB)
	require.NoError(t, err)

	assert.True(t, result.Pushed)
	assert.NoError(t, result.RemoteErr)

	calls := writer.UpdateRecordCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, api.UpdateRequest{TableID: 2, Week: 10, Day: "Sun", Status: "booked"}, calls[0].Req)

	// Отправленная правка больше не считается ожидающей
	assert.Equal(t, 0, svc.PendingCount(ctx))
}

func TestService_Toggle_PushFailsKeepsLocalEdit(t *testing.T) {
	overlay, edits := memOverlay()
	writer := failingWriter()
	svc := NewService(Config{Fetcher: staticFetcher("api"), Overlay: overlay, Writer: writer, Semester: testSemester(), Logger: testLogger()})
	ctx := context.Background()

	result, err := svc.Toggle(ctx, keyA)
	require.NoError(t, err)

	assert.False(t, result.Pushed)
	require.Error(t, result.RemoteErr)
	assert.ErrorIs(t, result.RemoteErr, ErrRemoteWriteFailed)
	assert.Equal(t, models.StatusBooked, result.View.Status(keyA))

	// Правка сохранена локально, повторной отправки нет
	assert.Equal(t, []models.PendingEdit{models.NewRecord(keyA, models.StatusBooked)}, *edits)
	assert.Len(t, writer.UpdateRecordCalls(), 1)
	assert.Equal(t, models.StatusBooked, svc.View(ctx).Status(keyA))
	assert.Equal(t, 1, svc.PendingCount(ctx))
}

func TestService_Toggle_Errors(t *testing.T) {
	t.Run("invalid key", func(t *testing.T) {
		overlay, edits := memOverlay()
		svc := NewService(Config{Fetcher: staticFetcher("api"), Overlay: overlay, Semester: testSemester(), Logger: testLogger()})

		_, err := svc.Toggle(context.Background(), models.Key{ResourceID: 1, Week: 23, Day: models.Monday})
		assert.Error(t, err)
		assert.Empty(t, *edits)
	})

	t.Run("overlay write fails", func(t *testing.T) {
		overlay, _ := memOverlay()
		overlay.PutEditFunc = func(ctx context.Context, edit models.PendingEdit) error {
			return storage.ErrStorageClosed
		}
		writer := okWriter()
		svc := NewService(Config{Fetcher: staticFetcher("api"), Overlay: overlay, Writer: writer, Semester: testSemester(), Logger: testLogger()})

		_, err := svc.Toggle(context.Background(), keyA)
		assert.ErrorIs(t, err, storage.ErrStorageClosed)
		assert.Empty(t, writer.UpdateRecordCalls())
	})
}

func TestService_View_OverlayReadError(t *testing.T) {
	overlay, _ := memOverlay()
	overlay.ReadOverlayFunc = func(ctx context.Context) ([]models.PendingEdit, error) {
		return nil, storage.ErrStorageClosed
	}
	svc := NewService(Config{
		Fetcher:  staticFetcher("api", models.NewRecord(keyA, models.StatusBooked)),
		Overlay:  overlay,
		Semester: testSemester(),
		Logger:   testLogger(),
	})

	view := svc.View(context.Background())
	assert.Equal(t, models.StatusBooked, view.Status(keyA))
}

func TestService_Push(t *testing.T) {
	overlay, _ := memOverlay(
		models.NewRecord(keyA, models.StatusBooked),
		models.NewRecord(keyB, models.StatusBooked),
		// совпадает с сервером, не отправляется
		models.NewRecord(models.Key{ResourceID: 1, Week: 1, Day: models.Monday}, models.StatusFree),
	)
	writer := &RemoteWriterMock{
		UpdateRecordFunc: func(ctx context.Context, req api.UpdateRequest) (*api.UpdateResponse, error) {
			if req.TableID == 2 {
				return nil, errors.New("bad gateway")
			}
			return &api.UpdateResponse{Status: "ok", Record: req}, nil
		},
	}
	svc := NewService(Config{
		Fetcher:  staticFetcher("api", models.NewRecord(models.Key{ResourceID: 1, Week: 1, Day: models.Monday}, models.StatusFree)),
		Overlay:  overlay,
		Writer:   writer,
		Semester: testSemester(),
		Logger:   testLogger(),
	})
	ctx := context.Background()

	assert.Equal(t, 2, svc.PendingCount(ctx))

	result, err := svc.Push(ctx)
	require.NoError(t, err)
	assert.Equal(t, &PushResult{Pushed: 1, Failed: 1}, result)
	assert.Len(t, writer.UpdateRecordCalls(), 2)

	pending := svc.Pending(ctx)
	require.Len(t, pending, 1)
	assert.Equal(t, keyB, pending[0].Key())
}

func TestService_Push_RefreshesRemoteFirst(t *testing.T) {
	overlay, _ := memOverlay(models.NewRecord(keyA, models.StatusBooked))
	writer := okWriter()

	var calls int
	fetcher := &FetcherMock{
		FetchFunc: func(ctx context.Context) source.Result {
			calls++
			if calls == 1 {
				return source.Result{Source: "api"}
			}
			// правку уже принял сервер
			return source.Result{Source: "api", Records: []models.BookingRecord{models.NewRecord(keyA, models.StatusBooked)}}
		},
	}
	svc := NewService(Config{
		Fetcher:  fetcher,
		Overlay:  overlay,
		Writer:   writer,
		Semester: testSemester(),
		Logger:   testLogger(),
	})
	ctx := context.Background()

	require.Equal(t, 1, svc.PendingCount(ctx))

	result, err := svc.Push(ctx)
	require.NoError(t, err)
	assert.Equal(t, &PushResult{}, result)
	assert.Empty(t, writer.UpdateRecordCalls())
	assert.Len(t, fetcher.FetchCalls(), 2)
	assert.Zero(t, svc.PendingCount(ctx))
}

func TestService_Push_NoWriter(t *testing.T) {
	overlay, _ := memOverlay()
	svc := NewService(Config{Fetcher: staticFetcher("api"), Overlay: overlay, Semester: testSemester(), Logger: testLogger()})

	_, err := svc.Push(context.Background())
	assert.ErrorIs(t, err, ErrNoRemoteWriter)
}

func TestUpsert(t *testing.T) {
	original := []models.BookingRecord{
		models.NewRecord(keyA, models.StatusFree),
		models.NewRecord(keyB, models.StatusFree),
	}

	updated := upsert(original, models.NewRecord(keyA, models.StatusBooked))
	assert.Equal(t, models.StatusBooked, updated[0].Status)
	assert.Equal(t, models.StatusFree, original[0].Status, "input must not be mutated")

	added := upsert(original, models.NewRecord(models.Key{ResourceID: 1, Week: 1, Day: models.Monday}, models.StatusBooked))
	assert.Len(t, added, 3)
}
