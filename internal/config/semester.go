package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/iudanet/bookgrid/internal/calendar"
	"github.com/iudanet/bookgrid/internal/validation"
)

// Значения календаря по умолчанию
const (
	DefaultSemesterStart = "2025-09-01"
	DefaultTimezone      = "Local"
)

// SemesterConfig описывает календарь семестра и размер сетки
type SemesterConfig struct {
	// Start дата первого понедельника семестра (YYYY-MM-DD)
	Start string `yaml:"start" env:"BOOKGRID_SEMESTER_START"`
	// Timezone IANA зона, в которой считаются даты ячеек
	Timezone string `yaml:"timezone" env:"BOOKGRID_TIMEZONE"`
	// Weeks количество недель в семестре
	Weeks int `yaml:"weeks" env:"BOOKGRID_WEEKS"`
	// Resources количество столов
	Resources int `yaml:"resources" env:"BOOKGRID_RESOURCES"`
}

// Normalize заполняет пустые поля значениями по умолчанию
func (c *SemesterConfig) Normalize() {
	if c.Start == "" {
		c.Start = DefaultSemesterStart
	}
	if c.Timezone == "" {
		c.Timezone = DefaultTimezone
	}
	if c.Weeks <= 0 {
		c.Weeks = validation.DefaultWeeks
	}
	if c.Resources <= 0 {
		c.Resources = validation.DefaultResources
	}
}

// Semester строит календарь семестра
func (c SemesterConfig) Semester() (calendar.Semester, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return calendar.Semester{}, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return calendar.NewSemester(c.Start, c.Weeks, loc)
}

// Limits возвращает допустимые диапазоны ключей ячеек
func (c SemesterConfig) Limits() validation.Limits {
	return validation.Limits{Resources: c.Resources, Weeks: c.Weeks}
}

// ParseLevel переводит строковый уровень логирования в slog.Level.
// Неизвестное значение дает Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
