// Package admin содержит административные операции над локальным оверлеем:
// экспорт, импорт, очистку и выгрузку занятых ячеек в iCalendar.
package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/iudanet/bookgrid/internal/client/source"
	"github.com/iudanet/bookgrid/internal/client/storage"
	"github.com/iudanet/bookgrid/internal/models"
	"github.com/iudanet/bookgrid/internal/validation"
	"github.com/iudanet/bookgrid/pkg/api"
)

// ErrImportFormatInvalid indicates that an import document is not a JSON array
// of well-formed records. The overlay is left unchanged.
var ErrImportFormatInvalid = errors.New("invalid import format")

// Service выполняет административные операции над оверлеем
type Service struct {
	overlay storage.OverlayStorage
	logger  *slog.Logger
	now     func() time.Time
	limits  validation.Limits
}

// NewService создает административный сервис
func NewService(overlay storage.OverlayStorage, limits validation.Limits, logger *slog.Logger) *Service {
	return &Service{
		overlay: overlay,
		limits:  limits,
		logger:  logger,
		now:     time.Now,
	}
}

// Export записывает оверлей в w как JSON массив записей.
// Возвращает количество выгруженных правок.
func (s *Service) Export(ctx context.Context, w io.Writer) (int, error) {
	edits, err := s.overlay.ReadOverlay(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read overlay: %w", err)
	}

	data, err := json.MarshalIndent(api.FromModels(edits), "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to marshal overlay: %w", err)
	}
	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return 0, fmt.Errorf("failed to write export: %w", err)
	}

	s.logger.Info("Overlay exported", "edits", len(edits))
	return len(edits), nil
}

// Import заменяет оверлей содержимым документа целиком.
// Документ проверяется до записи: любая некорректная запись отклоняет весь импорт.
// Возвращает число ячеек, записанных в оверлей.
func (s *Service) Import(ctx context.Context, r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("failed to read import: %w", err)
	}

	edits, err := source.Decode(data, s.limits)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrImportFormatInvalid, err)
	}
	// повторный ключ: остается последний статус
	edits = models.CollapseEdits(edits)

	if err := s.overlay.WriteOverlay(ctx, edits); err != nil {
		return 0, fmt.Errorf("failed to write overlay: %w", err)
	}

	s.logger.Info("Overlay imported", "edits", len(edits))
	return len(edits), nil
}

// Clear удаляет все локальные правки
func (s *Service) Clear(ctx context.Context) error {
	if err := s.overlay.ClearOverlay(ctx); err != nil {
		return fmt.Errorf("failed to clear overlay: %w", err)
	}
	s.logger.Info("Overlay cleared")
	return nil
}
