// Package schedule реализует конвейер правок: загрузка, слияние с оверлеем,
// переключение ячеек и отправка правок на сервер.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/bookgrid/internal/calendar"
	"github.com/iudanet/bookgrid/internal/client/source"
	"github.com/iudanet/bookgrid/internal/client/storage"
	"github.com/iudanet/bookgrid/internal/grid"
	"github.com/iudanet/bookgrid/internal/models"
	"github.com/iudanet/bookgrid/internal/reconcile"
	"github.com/iudanet/bookgrid/internal/validation"
	"github.com/iudanet/bookgrid/pkg/api"
)

//go:generate moq -out fetcher_mock.go . Fetcher
//go:generate moq -out writer_mock.go . RemoteWriter

// Fetcher определяет получение удаленных записей (цепочка стратегий)
type Fetcher interface {
	Fetch(ctx context.Context) source.Result
}

// RemoteWriter определяет отправку изменения ячейки на сервер
type RemoteWriter interface {
	UpdateRecord(ctx context.Context, req api.UpdateRequest) (*api.UpdateResponse, error)
}

// Config содержит зависимости сервиса. Metadata и Writer необязательны:
// без Writer правки остаются только в оверлее.
type Config struct {
	Fetcher  Fetcher
	Overlay  storage.OverlayStorage
	Metadata storage.MetadataStorage
	Writer   RemoteWriter
	Logger   *slog.Logger
	Semester calendar.Semester
	Limits   validation.Limits
}

// EditResult содержит результат переключения ячейки.
// RemoteErr заполнен, если отправка на сервер не удалась; правка при этом
// уже сохранена локально.
type EditResult struct {
	RemoteErr error
	View      *reconcile.View
	Record    models.PendingEdit
	Pushed    bool
}

// PushResult содержит итоги ручной отправки ожидающих правок
type PushResult struct {
	Pushed int // количество принятых сервером правок
	Failed int // количество правок, оставшихся только локально
}

// Service координирует источники данных, оверлей и отправку правок.
// Сервис не потокобезопасен: вызовы должны выполняться последовательно.
type Service struct {
	fetcher  Fetcher
	overlay  storage.OverlayStorage
	metadata storage.MetadataStorage
	writer   RemoteWriter
	logger   *slog.Logger
	now      func() time.Time
	source   string
	remote   []models.BookingRecord
	semester calendar.Semester
	limits   validation.Limits
	fetched  bool
}

// NewService создает сервис конвейера правок
func NewService(cfg Config) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	limits := cfg.Limits
	if limits == (validation.Limits{}) {
		limits = validation.Limits{Resources: validation.DefaultResources, Weeks: cfg.Semester.Weeks}
	}

	return &Service{
		fetcher:  cfg.Fetcher,
		overlay:  cfg.Overlay,
		metadata: cfg.Metadata,
		writer:   cfg.Writer,
		logger:   logger,
		now:      time.Now,
		semester: cfg.Semester,
		limits:   limits,
	}
}

// Semester возвращает календарь семестра
func (s *Service) Semester() calendar.Semester {
	return s.semester
}

// Limits возвращает допустимые диапазоны ключей
func (s *Service) Limits() validation.Limits {
	return s.limits
}

// Source возвращает имя стратегии, ответившей при последней загрузке
func (s *Service) Source() string {
	return s.source
}

// CanPush сообщает, настроена ли отправка правок на сервер
func (s *Service) CanPush() bool {
	return s.writer != nil
}

// Refresh загружает удаленные записи через цепочку стратегий и кэширует их.
// Сбои источников не возвращаются: при полном отказе удаленный набор пуст.
func (s *Service) Refresh(ctx context.Context) source.Result {
	result := s.fetcher.Fetch(ctx)

	s.remote = result.Records
	s.source = result.Source
	s.fetched = true

	s.logger.Info("Remote records loaded", "source", result.Source, "records", len(result.Records))

	if s.metadata != nil {
		info := storage.FetchInfo{FetchedAt: s.now().UTC(), Source: result.Source, Records: len(result.Records)}
		if err := s.metadata.SaveLastFetch(ctx, info); err != nil {
			s.logger.Warn("Failed to save fetch info", "error", err)
		}
	}

	return result
}

// LastFetch возвращает сведения о последней загрузке
func (s *Service) LastFetch(ctx context.Context) (*storage.FetchInfo, error) {
	if s.metadata == nil {
		return nil, storage.ErrFetchInfoNotFound
	}
	return s.metadata.GetLastFetch(ctx)
}

// View возвращает согласованное представление: удаленные записи, поверх
// которых наложен локальный оверлей. При первом вызове выполняет Refresh.
func (s *Service) View(ctx context.Context) *reconcile.View {
	if !s.fetched {
		s.Refresh(ctx)
	}
	return reconcile.Merge(s.remote, s.readOverlay(ctx))
}

// Grid строит сетку одного ресурса
func (s *Service) Grid(ctx context.Context, resourceID int) (grid.Grid, error) {
	if err := s.limits.ValidateResource(resourceID); err != nil {
		return grid.Grid{}, err
	}
	return grid.Project(s.View(ctx), s.semester, resourceID), nil
}

// Toggle переключает ячейку: текущий статус из согласованного представления
// инвертируется, правка сохраняется в оверлей, затем однократно отправляется
// на сервер. Ошибка отправки возвращается в EditResult.RemoteErr.
func (s *Service) Toggle(ctx context.Context, key models.Key) (*EditResult, error) {
	if err := s.limits.ValidateKey(key); err != nil {
		return nil, fmt.Errorf("invalid cell: %w", err)
	}

	view := s.View(ctx)
	edit := models.NewRecord(key, view.Status(key).Toggle())

	if err := s.overlay.PutEdit(ctx, edit); err != nil {
		return nil, fmt.Errorf("failed to save edit: %w", err)
	}

	s.logger.Info("Cell toggled", "table_id", key.ResourceID, "week", key.Week, "day", key.Day.String(), "status", edit.Status)

	result := &EditResult{
		Record: edit,
		View:   view.Apply(edit),
	}

	if s.writer == nil {
		return result, nil
	}

	if err := s.push(ctx, edit); err != nil {
		s.logger.Warn("Failed to push edit, kept locally", "cell", key.String(), "error", err)
		result.RemoteErr = err
		return result, nil
	}
	result.Pushed = true

	return result, nil
}

// Pending возвращает правки оверлея, отличающиеся от удаленных данных
func (s *Service) Pending(ctx context.Context) []models.PendingEdit {
	if !s.fetched {
		s.Refresh(ctx)
	}
	return reconcile.Diff(s.remote, s.readOverlay(ctx))
}

// PendingCount возвращает количество ожидающих отправки правок
func (s *Service) PendingCount(ctx context.Context) int {
	return len(s.Pending(ctx))
}

// Push однократно отправляет все ожидающие правки. Вызывается только
// пользователем; неудачные правки остаются в оверлее. Перед отправкой
// удаленные данные загружаются заново.
func (s *Service) Push(ctx context.Context) (*PushResult, error) {
	if s.writer == nil {
		return nil, ErrNoRemoteWriter
	}

	// правки, уже принятые сервером, не отправляются
	s.Refresh(ctx)

	pending := s.Pending(ctx)
	s.logger.Info("Pushing pending edits", "count", len(pending))

	result := &PushResult{}
	for _, edit := range pending {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := s.push(ctx, edit); err != nil {
			s.logger.Warn("Failed to push edit", "cell", edit.Key().String(), "error", err)
			result.Failed++
			continue
		}
		result.Pushed++
	}

	s.logger.Info("Push completed", "pushed", result.Pushed, "failed", result.Failed)
	return result, nil
}

// push отправляет одну правку и при успехе обновляет кэш удаленных записей
func (s *Service) push(ctx context.Context, edit models.PendingEdit) error {
	resp, err := s.writer.UpdateRecord(ctx, api.FromModel(edit))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRemoteWriteFailed, err)
	}

	stored := edit
	if resp != nil {
		if rec, err := resp.Record.ToModel(s.limits); err == nil && rec.Key() == edit.Key() {
			stored = rec
		}
	}
	s.remote = upsert(s.remote, stored)

	return nil
}

func (s *Service) readOverlay(ctx context.Context) []models.PendingEdit {
	edits, err := s.overlay.ReadOverlay(ctx)
	if err != nil {
		// Оверлей недоступен: отображаем только удаленные данные
		if !errors.Is(err, context.Canceled) {
			s.logger.Warn("Failed to read overlay, ignoring local edits", "error", err)
		}
		return nil
	}
	return edits
}

// upsert заменяет запись с тем же ключом или добавляет новую.
// Исходный срез не изменяется.
func upsert(records []models.BookingRecord, rec models.BookingRecord) []models.BookingRecord {
	result := make([]models.BookingRecord, 0, len(records)+1)
	replaced := false
	for _, r := range records {
		if r.Key() == rec.Key() {
			if !replaced {
				result = append(result, rec)
				replaced = true
			}
			continue
		}
		result = append(result, r)
	}
	if !replaced {
		result = append(result, rec)
	}
	return result
}
