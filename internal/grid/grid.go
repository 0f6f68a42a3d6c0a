// Package grid строит двумерную сетку (неделя x день) для одного ресурса
// из согласованного представления расписания.
package grid

import (
	"time"

	"github.com/iudanet/bookgrid/internal/calendar"
	"github.com/iudanet/bookgrid/internal/models"
	"github.com/iudanet/bookgrid/internal/reconcile"
)

// Cell ячейка сетки
type Cell struct {
	Date   time.Time     `json:"date"`
	Status models.Status `json:"status"`
}

// Row строка сетки: одна неделя, ровно 7 ячеек Mon..Sun
type Row struct {
	Cells [models.DaysPerWeek]Cell `json:"cells"`
	Week  int                      `json:"week"`
}

// Grid сетка одного ресурса: по строке на каждую неделю семестра
type Grid struct {
	Rows       []Row `json:"rows"`
	ResourceID int   `json:"table_id"`
}

// Project проецирует представление на сетку ресурса.
// Функция чистая и тотальная: всегда semester.Weeks строк по 7 ячеек,
// ключи, отсутствующие в представлении, получают статус free.
func Project(view *reconcile.View, semester calendar.Semester, resourceID int) Grid {
	g := Grid{
		ResourceID: resourceID,
		Rows:       make([]Row, semester.Weeks),
	}

	for i := range g.Rows {
		week := i + 1
		row := Row{Week: week}
		for _, day := range models.Weekdays() {
			key := models.Key{ResourceID: resourceID, Week: week, Day: day}
			row.Cells[day] = Cell{
				Date:   semester.DateForCell(week, day),
				Status: view.Status(key),
			}
		}
		g.Rows[i] = row
	}

	return g
}

// Cell возвращает ячейку по неделе и дню; ok = false вне сетки
func (g Grid) Cell(week int, day models.Weekday) (Cell, bool) {
	if week < 1 || week > len(g.Rows) || !day.Valid() {
		return Cell{}, false
	}
	return g.Rows[week-1].Cells[day], true
}

// Count возвращает количество ячеек с заданным статусом
func (g Grid) Count(status models.Status) int {
	n := 0
	for _, row := range g.Rows {
		for _, c := range row.Cells {
			if c.Status == status {
				n++
			}
		}
	}
	return n
}
