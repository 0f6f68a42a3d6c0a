package grid

import (
	"fmt"
	"io"
	"strings"

	"github.com/iudanet/bookgrid/internal/models"
)

// ANSI последовательности для цветного вывода в терминал
const (
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[0m"
)

// BookedMark отметка занятой ячейки
const BookedMark = "●"

// RenderOptions параметры текстового вывода
type RenderOptions struct {
	Title string // Title заголовок над сеткой
	Color bool   // Color раскрашивать статус (только для терминала)
}

// Render выводит сетку в текстовом виде. Вывод детерминирован:
// одна и та же сетка всегда дает одинаковые байты.
func Render(w io.Writer, g Grid, opts RenderOptions) error {
	var b strings.Builder

	if opts.Title != "" {
		b.WriteString(opts.Title)
		b.WriteString("\n")
	}

	b.WriteString("     ")
	for _, day := range models.Weekdays() {
		fmt.Fprintf(&b, " %-7s", day)
	}
	b.WriteString("\n")

	for _, row := range g.Rows {
		fmt.Fprintf(&b, "W%02d  ", row.Week)
		for _, c := range row.Cells {
			fmt.Fprintf(&b, " %s", formatCell(c, opts.Color))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// formatCell ячейка фиксированной ширины 7: дата M/D и отметка
func formatCell(c Cell, color bool) string {
	date := fmt.Sprintf("%d/%d", int(c.Date.Month()), c.Date.Day())
	mark := " "
	if c.Status == models.StatusBooked {
		mark = BookedMark
	}
	text := fmt.Sprintf("%-5s %s", date, mark)
	if !color {
		return text
	}
	if c.Status == models.StatusBooked {
		return ansiRed + text + ansiReset
	}
	return ansiGreen + text + ansiReset
}
