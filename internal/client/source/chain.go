package source

import (
	"context"
	"log/slog"

	"github.com/iudanet/bookgrid/internal/models"
)

// Result содержит записи, полученные цепочкой, и имя ответившей стратегии.
// Source пуст, если ни одна стратегия не ответила.
type Result struct {
	Source  string
	Records []models.BookingRecord
}

// Chain опрашивает стратегии по порядку; первая успешная побеждает
type Chain struct {
	logger  *slog.Logger
	sources []Source
}

// NewChain создает цепочку стратегий
func NewChain(logger *slog.Logger, sources ...Source) *Chain {
	return &Chain{logger: logger, sources: sources}
}

// Sources возвращает имена стратегий в порядке опроса
func (c *Chain) Sources() []string {
	names := make([]string, 0, len(c.sources))
	for _, s := range c.sources {
		names = append(names, s.Name())
	}
	return names
}

// Fetch никогда не возвращает ошибку: сбои стратегий логируются и пропускаются,
// при полном отказе возвращается пустой набор записей
func (c *Chain) Fetch(ctx context.Context) Result {
	for _, s := range c.sources {
		records, err := s.Fetch(ctx)
		if err != nil {
			c.logger.Warn("Source unavailable, trying next", "source", s.Name(), "error", err)
			continue
		}

		c.logger.Debug("Source answered", "source", s.Name(), "records", len(records))
		if records == nil {
			records = []models.BookingRecord{}
		}
		return Result{Source: s.Name(), Records: records}
	}

	c.logger.Warn("All sources unavailable, using empty remote set", "tried", len(c.sources))
	return Result{Records: []models.BookingRecord{}}
}
