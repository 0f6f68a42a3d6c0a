// Package calendar сопоставляет ячейкам сетки (неделя, день) календарные даты.
package calendar

import (
	"fmt"
	"time"

	"github.com/iudanet/bookgrid/internal/models"
)

// DateLayout формат даты начала семестра в конфигурации
const DateLayout = "2006-01-02"

// Semester описывает фиксированный учебный календарь.
// Start всегда приводится к полуночи понедельника в своей временной зоне.
type Semester struct {
	Start time.Time
	Weeks int
}

// NewSemester создает календарь из даты начала (YYYY-MM-DD), количества недель
// и временной зоны. Дата начала обязана быть понедельником.
func NewSemester(start string, weeks int, loc *time.Location) (Semester, error) {
	if loc == nil {
		loc = time.Local
	}
	if weeks <= 0 {
		return Semester{}, fmt.Errorf("weeks must be positive, got %d", weeks)
	}

	t, err := time.ParseInLocation(DateLayout, start, loc)
	if err != nil {
		return Semester{}, fmt.Errorf("invalid semester start %q: %w", start, err)
	}
	if t.Weekday() != time.Monday {
		return Semester{}, fmt.Errorf("semester start %s is %s, expected Monday", start, t.Weekday())
	}

	return Semester{Start: t, Weeks: weeks}, nil
}

// MustSemester как NewSemester, но паникует при ошибке. Для констант и тестов.
func MustSemester(start string, weeks int, loc *time.Location) Semester {
	s, err := NewSemester(start, weeks, loc)
	if err != nil {
		panic(err)
	}
	return s
}

// DateForCell возвращает дату ячейки: Start + (week-1)*7 + day дней, полночь.
// AddDate сохраняет полночь при переходах на летнее время.
func (s Semester) DateForCell(week int, day models.Weekday) time.Time {
	return s.Start.AddDate(0, 0, (week-1)*models.DaysPerWeek+int(day))
}

// Contains проверяет, что неделя входит в семестр
func (s Semester) Contains(week int) bool {
	return week >= 1 && week <= s.Weeks
}

// End возвращает первый день после семестра
func (s Semester) End() time.Time {
	return s.Start.AddDate(0, 0, s.Weeks*models.DaysPerWeek)
}

// CellForDate обратное преобразование: по дате возвращает неделю и день.
// ok = false, если дата вне семестра.
func (s Semester) CellForDate(t time.Time) (week int, day models.Weekday, ok bool) {
	local := t.In(s.Start.Location())
	date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.Start.Location())

	if date.Before(s.Start) || !date.Before(s.End()) {
		return 0, 0, false
	}

	// Считаем календарные дни через UTC, чтобы не зависеть от длины суток при DST
	startUTC := time.Date(s.Start.Year(), s.Start.Month(), s.Start.Day(), 0, 0, 0, 0, time.UTC)
	dateUTC := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	days := int(dateUTC.Sub(startUTC).Hours() / 24)

	return days/models.DaysPerWeek + 1, models.Weekday(days % models.DaysPerWeek), true
}

// ParseDate разбирает дату YYYY-MM-DD в зоне семестра
func (s Semester) ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, s.Start.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}
