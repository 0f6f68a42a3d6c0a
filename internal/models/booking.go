package models

import (
	"fmt"
	"strings"
)

// Weekday день недели в сетке бронирования. Отсчет с понедельника:
// 0 = Mon ... 6 = Sun (в отличие от time.Weekday, где 0 = Sunday).
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysPerWeek количество колонок в строке сетки
const DaysPerWeek = 7

var weekdayNames = [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// weekdayAliases альтернативные обозначения дней, встречающиеся во входных данных.
// Исторические данные используют китайские метки 一..日.
var weekdayAliases = map[string]Weekday{
	"mon": Monday, "monday": Monday, "一": Monday, "周一": Monday,
	"tue": Tuesday, "tuesday": Tuesday, "二": Tuesday, "周二": Tuesday,
	"wed": Wednesday, "wednesday": Wednesday, "三": Wednesday, "周三": Wednesday,
	"thu": Thursday, "thursday": Thursday, "四": Thursday, "周四": Thursday,
	"fri": Friday, "friday": Friday, "五": Friday, "周五": Friday,
	"sat": Saturday, "saturday": Saturday, "六": Saturday, "周六": Saturday,
	"sun": Sunday, "sunday": Sunday, "日": Sunday, "天": Sunday, "周日": Sunday,
}

// Weekdays возвращает все дни недели в порядке колонок сетки
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// Valid проверяет, что день лежит в диапазоне Mon..Sun
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// ParseWeekday разбирает обозначение дня недели (Mon, monday, 一 ...)
func ParseWeekday(s string) (Weekday, error) {
	d, ok := weekdayAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", s)
	}
	return d, nil
}

// MarshalText сериализует день в короткое английское имя
func (d Weekday) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid weekday %d", int(d))
	}
	return []byte(weekdayNames[d]), nil
}

// UnmarshalText принимает любое обозначение из ParseWeekday
func (d *Weekday) UnmarshalText(text []byte) error {
	parsed, err := ParseWeekday(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Status состояние ячейки сетки
type Status string

const (
	StatusFree   Status = "free"
	StatusBooked Status = "booked"
)

// Valid проверяет, что статус один из free/booked
func (s Status) Valid() bool {
	return s == StatusFree || s == StatusBooked
}

// Toggle возвращает противоположный статус: free <-> booked.
// Неизвестный статус трактуется как free и становится booked.
func (s Status) Toggle() Status {
	if s == StatusBooked {
		return StatusFree
	}
	return StatusBooked
}

// ParseStatus разбирает статус ячейки
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return st, nil
}

// UnmarshalText отклоняет статусы вне free/booked
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Key естественный ключ ячейки: (ресурс, неделя, день).
// В согласованном представлении на каждый ключ приходится не более одной записи.
type Key struct {
	ResourceID int
	Week       int
	Day        Weekday
}

func (k Key) String() string {
	return fmt.Sprintf("r%d/w%02d/%s", k.ResourceID, k.Week, k.Day)
}

// Less задает детерминированный порядок ключей: ресурс, неделя, день
func (k Key) Less(other Key) bool {
	if k.ResourceID != other.ResourceID {
		return k.ResourceID < other.ResourceID
	}
	if k.Week != other.Week {
		return k.Week < other.Week
	}
	return k.Day < other.Day
}

// BookingRecord запись о состоянии одной ячейки.
// ID назначается бэкендом и не участвует в слиянии.
type BookingRecord struct {
	ID         string  `json:"id,omitempty"` // ID непрозрачный идентификатор бэкенда
	Status     Status  `json:"status"`       // Status free или booked
	ResourceID int     `json:"table_id"`     // ResourceID номер стола (ресурса)
	Week       int     `json:"week"`         // Week номер учебной недели (1..22)
	Day        Weekday `json:"day"`          // Day день недели
}

// PendingEdit локальная правка; по форме совпадает с BookingRecord
type PendingEdit = BookingRecord

// Key возвращает естественный ключ записи
func (r BookingRecord) Key() Key {
	return Key{ResourceID: r.ResourceID, Week: r.Week, Day: r.Day}
}

// NewRecord создает запись для ключа с заданным статусом
func NewRecord(key Key, status Status) BookingRecord {
	return BookingRecord{
		ResourceID: key.ResourceID,
		Week:       key.Week,
		Day:        key.Day,
		Status:     status,
	}
}

// CollapseEdits сводит правки к одной на ключ: порядок первого появления
// ключа сохраняется, статус берется из последней правки
func CollapseEdits(edits []PendingEdit) []PendingEdit {
	result := make([]PendingEdit, 0, len(edits))
	index := make(map[Key]int, len(edits))
	for _, e := range edits {
		if i, ok := index[e.Key()]; ok {
			result[i] = e
			continue
		}
		index[e.Key()] = len(result)
		result = append(result, e)
	}
	return result
}
