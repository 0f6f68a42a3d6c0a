package admin

import (
	"context"
	"fmt"
	"io"

	ical "github.com/arran4/golang-ical"

	"github.com/iudanet/bookgrid/internal/calendar"
	"github.com/iudanet/bookgrid/internal/models"
	"github.com/iudanet/bookgrid/internal/reconcile"
)

// CalendarName имя календаря в выгрузке
const CalendarName = "Booking schedule"

// ExportICS выгружает занятые ячейки согласованного представления как
// события на весь день. Возвращает количество событий.
func (s *Service) ExportICS(ctx context.Context, w io.Writer, view *reconcile.View, semester calendar.Semester) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	cal := ical.NewCalendarFor("bookgrid")
	cal.SetMethod(ical.MethodPublish)
	cal.SetXWRCalName(CalendarName)

	stamp := s.now()
	count := 0
	for resourceID := 1; resourceID <= s.limits.Resources; resourceID++ {
		for week := 1; week <= semester.Weeks; week++ {
			for _, day := range models.Weekdays() {
				key := models.Key{ResourceID: resourceID, Week: week, Day: day}
				if view.Status(key) != models.StatusBooked {
					continue
				}

				date := semester.DateForCell(week, day)
				event := cal.AddEvent(eventID(key))
				event.SetDtStampTime(stamp)
				event.SetAllDayStartAt(date)
				event.SetAllDayEndAt(date.AddDate(0, 0, 1))
				event.SetSummary(fmt.Sprintf("Table %d booked", resourceID))
				event.SetDescription(fmt.Sprintf("Week %d, %s", week, day))
				count++
			}
		}
	}

	if err := cal.SerializeTo(w); err != nil {
		return 0, fmt.Errorf("failed to write calendar: %w", err)
	}

	s.logger.Info("Calendar exported", "events", count)
	return count, nil
}

func eventID(key models.Key) string {
	return fmt.Sprintf("table%d-w%02d-%s@bookgrid", key.ResourceID, key.Week, key.Day)
}
