package validation

import (
	"fmt"

	"github.com/iudanet/bookgrid/internal/models"
)

const (
	// DefaultResources количество независимых столов (ресурсов)
	DefaultResources = 2
	// DefaultWeeks длина учебного семестра в неделях
	DefaultWeeks = 22
)

// Limits определяет допустимые диапазоны ключа ячейки.
// ResourceID лежит в 1..Resources, Week в 1..Weeks.
type Limits struct {
	Resources int
	Weeks     int
}

// DefaultLimits возвращает ограничения календаря по умолчанию (2 стола, 22 недели)
func DefaultLimits() Limits {
	return Limits{Resources: DefaultResources, Weeks: DefaultWeeks}
}

// ValidateResource проверяет номер ресурса
func (l Limits) ValidateResource(resourceID int) error {
	if resourceID < 1 || resourceID > l.Resources {
		return fmt.Errorf("resource %d out of range 1..%d", resourceID, l.Resources)
	}
	return nil
}

// ValidateWeek проверяет номер недели
func (l Limits) ValidateWeek(week int) error {
	if week < 1 || week > l.Weeks {
		return fmt.Errorf("week %d out of range 1..%d", week, l.Weeks)
	}
	return nil
}

// ValidateKey проверяет все компоненты естественного ключа
func (l Limits) ValidateKey(key models.Key) error {
	if err := l.ValidateResource(key.ResourceID); err != nil {
		return err
	}
	if err := l.ValidateWeek(key.Week); err != nil {
		return err
	}
	if !key.Day.Valid() {
		return fmt.Errorf("invalid weekday %d", int(key.Day))
	}
	return nil
}

// ValidateRecord проверяет ключ и статус записи
func (l Limits) ValidateRecord(rec models.BookingRecord) error {
	if err := l.ValidateKey(rec.Key()); err != nil {
		return err
	}
	if !rec.Status.Valid() {
		return fmt.Errorf("invalid status %q", rec.Status)
	}
	return nil
}

// ValidateRecords проверяет набор записей; возвращает ошибку первой невалидной
func (l Limits) ValidateRecords(records []models.BookingRecord) error {
	for i, rec := range records {
		if err := l.ValidateRecord(rec); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}
