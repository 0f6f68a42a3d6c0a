package source

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	httpClient "github.com/iudanet/bookgrid/internal/client/api"
	"github.com/iudanet/bookgrid/internal/models"
	"github.com/iudanet/bookgrid/internal/validation"
	"github.com/iudanet/bookgrid/pkg/api"
)

//go:generate moq -out fetcher_mock.go . ScheduleFetcher

// Имена стратегий, сохраняемые в метаданных последней загрузки
const (
	NameAPI      = "api"
	NameStatic   = "static"
	NameFile     = "file"
	NameEmbedded = "embedded"
)

//go:embed defaults.json
var defaultsJSON []byte

// Source определяет одну стратегию получения удаленных записей
type Source interface {
	// Name возвращает имя стратегии для логов и статуса
	Name() string

	// Fetch возвращает все записи источника.
	// Любая ошибка оборачивает ErrRemoteUnavailable.
	Fetch(ctx context.Context) ([]models.BookingRecord, error)
}

// ScheduleFetcher определяет HTTP операцию загрузки массива записей
type ScheduleFetcher interface {
	FetchSchedule(ctx context.Context, path string) ([]api.Record, error)
}

// HTTPSource загружает записи по HTTP: живой API или опубликованный JSON документ
type HTTPSource struct {
	client ScheduleFetcher
	name   string
	path   string
	limits validation.Limits
}

// NewAPISource создает стратегию живого API (GET /api/schedule)
func NewAPISource(client ScheduleFetcher, limits validation.Limits) *HTTPSource {
	return &HTTPSource{client: client, name: NameAPI, path: httpClient.SchedulePath, limits: limits}
}

// NewStaticSource создает стратегию статического документа.
// Пустой path означает ./api/schedule.json относительно базового адреса клиента.
func NewStaticSource(client ScheduleFetcher, path string, limits validation.Limits) *HTTPSource {
	if path == "" {
		path = httpClient.SnapshotPath
	}
	return &HTTPSource{client: client, name: NameStatic, path: path, limits: limits}
}

// Name возвращает имя стратегии
func (s *HTTPSource) Name() string {
	return s.name
}

// Fetch загружает и проверяет записи
func (s *HTTPSource) Fetch(ctx context.Context) ([]models.BookingRecord, error) {
	raw, err := s.client.FetchSchedule(ctx, s.path)
	if err != nil {
		return nil, unavailable(s.name, err)
	}
	if raw == nil {
		return nil, unavailable(s.name, httpClient.ErrNotArray)
	}

	records, err := api.ToModels(raw, s.limits)
	if err != nil {
		return nil, unavailable(s.name, err)
	}
	return records, nil
}

// FileSource читает записи из локального JSON файла
type FileSource struct {
	path   string
	limits validation.Limits
}

// NewFileSource создает файловую стратегию
func NewFileSource(path string, limits validation.Limits) *FileSource {
	return &FileSource{path: path, limits: limits}
}

// Name возвращает имя стратегии
func (s *FileSource) Name() string {
	return NameFile
}

// Fetch читает файл и проверяет записи
func (s *FileSource) Fetch(ctx context.Context) ([]models.BookingRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable(NameFile, err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, unavailable(NameFile, err)
	}

	records, err := Decode(data, s.limits)
	if err != nil {
		return nil, unavailable(NameFile, err)
	}
	return records, nil
}

// EmbeddedSource отдает встроенный в бинарник набор данных по умолчанию
type EmbeddedSource struct {
	data   []byte
	limits validation.Limits
}

// NewEmbeddedSource создает стратегию встроенных данных
func NewEmbeddedSource(limits validation.Limits) *EmbeddedSource {
	return &EmbeddedSource{data: defaultsJSON, limits: limits}
}

// Name возвращает имя стратегии
func (s *EmbeddedSource) Name() string {
	return NameEmbedded
}

// Fetch разбирает встроенный набор данных
func (s *EmbeddedSource) Fetch(ctx context.Context) ([]models.BookingRecord, error) {
	records, err := Decode(s.data, s.limits)
	if err != nil {
		return nil, unavailable(NameEmbedded, err)
	}
	return records, nil
}

// Decode разбирает JSON документ с массивом записей.
// Документ корректен, только если это массив и каждый элемент проходит проверку.
func Decode(data []byte, limits validation.Limits) ([]models.BookingRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, httpClient.ErrNotArray
	}

	var raw []api.Record
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("invalid record field %q: %w", typeErr.Field, err)
		}
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}

	return api.ToModels(raw, limits)
}
