// Package reconcile сливает удаленные записи и локальные правки в одно
// согласованное представление расписания.
package reconcile

import (
	"sort"

	"github.com/iudanet/bookgrid/internal/models"
)

// Origin источник значения ячейки в согласованном представлении
type Origin int

const (
	// OriginDefault значение по умолчанию (free), ни один источник не упоминал ключ
	OriginDefault Origin = iota
	// OriginRemote значение пришло с сервера, из статического файла или встроенного набора
	OriginRemote
	// OriginLocal значение из локального оверлея правок
	OriginLocal
)

func (o Origin) String() string {
	switch o {
	case OriginRemote:
		return "remote"
	case OriginLocal:
		return "local"
	default:
		return "default"
	}
}

type cell struct {
	status models.Status
	origin Origin
}

// View согласованное представление: ключ -> статус.
// Хранит только упомянутые ключи; отсутствующие ключи читаются как free.
// View неизменяемо после создания, Apply возвращает новую копию.
type View struct {
	cells map[models.Key]cell
}

// Merge строит представление: сначала все удаленные записи, затем все
// локальные правки. Локальная правка всегда перекрывает удаленную запись
// с тем же ключом. Внутри одного источника побеждает последняя по порядку.
func Merge(remote []models.BookingRecord, local []models.PendingEdit) *View {
	v := &View{cells: make(map[models.Key]cell, len(remote)+len(local))}

	for _, rec := range remote {
		v.cells[rec.Key()] = cell{status: rec.Status, origin: OriginRemote}
	}
	for _, edit := range local {
		v.cells[edit.Key()] = cell{status: edit.Status, origin: OriginLocal}
	}

	return v
}

// Empty возвращает представление без записей (все ячейки free)
func Empty() *View {
	return Merge(nil, nil)
}

// Status возвращает статус ячейки; для неизвестного ключа free
func (v *View) Status(key models.Key) models.Status {
	status, _ := v.Lookup(key)
	return status
}

// Lookup возвращает статус и его источник
func (v *View) Lookup(key models.Key) (models.Status, Origin) {
	if v == nil {
		return models.StatusFree, OriginDefault
	}
	c, ok := v.cells[key]
	if !ok || !c.status.Valid() {
		return models.StatusFree, OriginDefault
	}
	return c.status, c.origin
}

// Apply возвращает новое представление, в котором ключ записи перекрыт
// локальной правкой. Исходное представление не меняется.
func (v *View) Apply(edit models.PendingEdit) *View {
	next := &View{cells: make(map[models.Key]cell, v.Len()+1)}
	if v != nil {
		for k, c := range v.cells {
			next.cells[k] = c
		}
	}
	next.cells[edit.Key()] = cell{status: edit.Status, origin: OriginLocal}
	return next
}

// Len количество явно известных ключей
func (v *View) Len() int {
	if v == nil {
		return 0
	}
	return len(v.cells)
}

// Keys возвращает явно известные ключи в детерминированном порядке
func (v *View) Keys() []models.Key {
	if v == nil {
		return nil
	}
	keys := make([]models.Key, 0, len(v.cells))
	for k := range v.cells {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// Records возвращает явно известные записи в порядке Keys
func (v *View) Records() []models.BookingRecord {
	keys := v.Keys()
	records := make([]models.BookingRecord, 0, len(keys))
	for _, k := range keys {
		records = append(records, models.NewRecord(k, v.Status(k)))
	}
	return records
}

// Diff возвращает локальные правки, которые отличаются от удаленных данных
// (удаленный статус другой, либо ключ отсутствует на сервере и правка не free).
// Порядок детерминирован. Используется для подсчета и отправки ожидающих правок.
func Diff(remote []models.BookingRecord, local []models.PendingEdit) []models.PendingEdit {
	remoteView := Merge(remote, nil)
	localView := Merge(nil, local)

	var pending []models.PendingEdit
	for _, key := range localView.Keys() {
		localStatus := localView.Status(key)
		remoteStatus, origin := remoteView.Lookup(key)
		if origin == OriginRemote && remoteStatus == localStatus {
			continue
		}
		if origin == OriginDefault && localStatus == models.StatusFree {
			continue
		}
		pending = append(pending, models.NewRecord(key, localStatus))
	}
	return pending
}
