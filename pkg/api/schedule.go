package api

import (
	"fmt"

	"github.com/iudanet/bookgrid/internal/models"
	"github.com/iudanet/bookgrid/internal/validation"
)

// Record представляет одну ячейку расписания в формате обмена с сервером.
// День и статус приходят строками и проверяются в ToModel.
type Record struct {
	ID      string `json:"id,omitempty"` // ID идентификатор строки на сервере (UUID)
	Day     string `json:"day"`          // Day день недели: Mon..Sun или 一..日
	Status  string `json:"status"`       // Status free или booked
	TableID int    `json:"table_id"`     // TableID номер стола
	Week    int    `json:"week"`         // Week номер недели 1..22
}

// UpdateRequest представляет тело POST /api/update
type UpdateRequest = Record

// UpdateResponse представляет ответ на успешное обновление ячейки
type UpdateResponse struct {
	Status string `json:"status"` // "ok"
	Record Record `json:"record"` // сохраненная запись
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

// FromModel конвертирует доменную запись в формат обмена
func FromModel(rec models.BookingRecord) Record {
	return Record{
		ID:      rec.ID,
		TableID: rec.ResourceID,
		Week:    rec.Week,
		Day:     rec.Day.String(),
		Status:  string(rec.Status),
	}
}

// ToModel конвертирует запись обмена в доменную и проверяет ее по limits.
// Это единый критерий корректности записи для всех источников данных.
func (r Record) ToModel(limits validation.Limits) (models.BookingRecord, error) {
	day, err := models.ParseWeekday(r.Day)
	if err != nil {
		return models.BookingRecord{}, err
	}
	status, err := models.ParseStatus(r.Status)
	if err != nil {
		return models.BookingRecord{}, err
	}

	rec := models.BookingRecord{
		ID:         r.ID,
		ResourceID: r.TableID,
		Week:       r.Week,
		Day:        day,
		Status:     status,
	}
	if err := limits.ValidateRecord(rec); err != nil {
		return models.BookingRecord{}, err
	}
	return rec, nil
}

// ToModels конвертирует массив записей; любая некорректная запись делает
// весь массив некорректным
func ToModels(records []Record, limits validation.Limits) ([]models.BookingRecord, error) {
	result := make([]models.BookingRecord, 0, len(records))
	for i, r := range records {
		rec, err := r.ToModel(limits)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		result = append(result, rec)
	}
	return result, nil
}

// FromModels конвертирует доменные записи в формат обмена
func FromModels(records []models.BookingRecord) []Record {
	result := make([]Record, 0, len(records))
	for _, rec := range records {
		result = append(result, FromModel(rec))
	}
	return result
}
