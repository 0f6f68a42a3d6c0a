// Package snapshot выгружает расписание в статический JSON файл,
// который клиент читает через static источник без обращения к API.
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/robfig/cron/v3"

	"github.com/iudanet/bookgrid/internal/models"
	"github.com/iudanet/bookgrid/pkg/api"
)

// RelPath путь снимка относительно каталога статики
const RelPath = "api/schedule.json"

// Lister источник записей расписания
type Lister interface {
	ListRecords(ctx context.Context) ([]models.BookingRecord, error)
}

// Writer пишет снимок расписания в файл
type Writer struct {
	lister Lister
	logger *slog.Logger
	path   string
}

// NewWriter создает Writer, пишущий в <staticDir>/api/schedule.json
func NewWriter(lister Lister, staticDir string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{
		lister: lister,
		logger: logger,
		path:   filepath.Join(staticDir, filepath.FromSlash(RelPath)),
	}
}

// Path возвращает путь файла снимка
func (w *Writer) Path() string {
	return w.path
}

// Write выгружает текущее расписание. Файл заменяется атомарно,
// читатель никогда не видит наполовину записанный массив.
func (w *Writer) Write(ctx context.Context) (int, error) {
	records, err := w.lister.ListRecords(ctx)
	if err != nil {
		return 0, fmt.Errorf("list schedule: %w", err)
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(api.FromModels(records)); err != nil {
		return 0, fmt.Errorf("encode snapshot: %w", err)
	}

	if err := writeAtomic(w.path, buf.Bytes()); err != nil {
		return 0, err
	}

	return len(records), nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".schedule-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp snapshot: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename snapshot: %w", err)
	}
	return nil
}

// Scheduler периодически выгружает снимок по cron расписанию
type Scheduler struct {
	cron   *cron.Cron
	writer *Writer
	logger *slog.Logger
}

// NewScheduler проверяет cron выражение и регистрирует задачу выгрузки.
// Задача использует ctx для запросов к хранилищу.
func NewScheduler(ctx context.Context, spec string, writer *Writer, logger *slog.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Scheduler{
		cron:   cron.New(),
		writer: writer,
		logger: logger,
	}

	if _, err := s.cron.AddFunc(spec, func() { s.run(ctx) }); err != nil {
		return nil, fmt.Errorf("invalid snapshot schedule %q: %w", spec, err)
	}

	return s, nil
}

// Start выполняет первую выгрузку сразу и запускает расписание
func (s *Scheduler) Start(ctx context.Context) {
	s.run(ctx)
	s.cron.Start()
}

// Stop останавливает расписание и дожидается текущей выгрузки
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) run(ctx context.Context) {
	n, err := s.writer.Write(ctx)
	if err != nil {
		s.logger.Error("snapshot failed", slog.Any("error", err))
		return
	}
	s.logger.Debug("snapshot written", slog.String("path", s.writer.Path()), slog.Int("records", n))
}
