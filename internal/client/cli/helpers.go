package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/bookgrid/internal/calendar"
	"github.com/iudanet/bookgrid/internal/models"
	"github.com/iudanet/bookgrid/internal/validation"
)

// parseResource разбирает номер стола
func parseResource(arg string, limits validation.Limits) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid table %q: must be a number", arg)
	}
	if err := limits.ValidateResource(id); err != nil {
		return 0, err
	}
	return id, nil
}

// parseResources разбирает необязательный номер стола; без аргумента все столы
func parseResources(args []string, limits validation.Limits) ([]int, error) {
	if len(args) > 0 {
		id, err := parseResource(args[0], limits)
		if err != nil {
			return nil, err
		}
		return []int{id}, nil
	}

	ids := make([]int, 0, limits.Resources)
	for id := 1; id <= limits.Resources; id++ {
		ids = append(ids, id)
	}
	return ids, nil
}

// parseKey разбирает адрес ячейки:
//
//	<table> <week> <day>
//	<table> --date YYYY-MM-DD
func parseKey(args []string, semester calendar.Semester, limits validation.Limits) (models.Key, error) {
	if len(args) < 2 {
		return models.Key{}, fmt.Errorf("missing cell. %s", toggleUsage)
	}

	resourceID, err := parseResource(args[0], limits)
	if err != nil {
		return models.Key{}, err
	}

	if date, ok := dateArg(args[1:]); ok {
		t, err := semester.ParseDate(date)
		if err != nil {
			return models.Key{}, err
		}
		week, day, ok := semester.CellForDate(t)
		if !ok {
			return models.Key{}, fmt.Errorf("date %s is outside the semester (%s - %s)",
				date, semester.Start.Format(calendar.DateLayout), semester.End().AddDate(0, 0, -1).Format(calendar.DateLayout))
		}
		return models.Key{ResourceID: resourceID, Week: week, Day: day}, nil
	}

	if len(args) < 3 {
		return models.Key{}, fmt.Errorf("missing day. %s", toggleUsage)
	}

	week, err := strconv.Atoi(args[1])
	if err != nil {
		return models.Key{}, fmt.Errorf("invalid week %q: must be a number", args[1])
	}
	if err := limits.ValidateWeek(week); err != nil {
		return models.Key{}, err
	}

	day, err := models.ParseWeekday(args[2])
	if err != nil {
		return models.Key{}, err
	}

	return models.Key{ResourceID: resourceID, Week: week, Day: day}, nil
}

// dateArg ищет флаг --date в форме "--date D" или "--date=D"
func dateArg(args []string) (string, bool) {
	for i, arg := range args {
		switch {
		case arg == "--date" || arg == "-date":
			if i+1 < len(args) {
				return args[i+1], true
			}
			return "", true
		case strings.HasPrefix(arg, "--date="):
			return strings.TrimPrefix(arg, "--date="), true
		}
	}
	return "", false
}

// hasFlag проверяет наличие флага среди аргументов
func hasFlag(args []string, names ...string) bool {
	for _, arg := range args {
		for _, name := range names {
			if arg == name {
				return true
			}
		}
	}
	return false
}

// plural добавляет окончание множественного числа
func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
