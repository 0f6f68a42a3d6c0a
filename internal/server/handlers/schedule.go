package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/bookgrid/internal/server/storage"
	"github.com/iudanet/bookgrid/internal/validation"
	"github.com/iudanet/bookgrid/pkg/api"
)

// maxUpdateBody ограничение размера тела POST /api/update
const maxUpdateBody = 64 << 10

// StatusOK значение поля status успешного ответа на обновление
const StatusOK = "ok"

// ScheduleHandler обслуживает чтение и обновление расписания
type ScheduleHandler struct {
	logger  *slog.Logger
	storage storage.ScheduleStorage
	limits  validation.Limits
}

// NewScheduleHandler создает handler расписания
func NewScheduleHandler(logger *slog.Logger, st storage.ScheduleStorage, limits validation.Limits) *ScheduleHandler {
	return &ScheduleHandler{
		logger:  logger,
		storage: st,
		limits:  limits,
	}
}

// List обрабатывает GET /api/schedule.
// Возвращает JSON массив всех ячеек, упорядоченный по столу, неделе и дню.
func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.storage.ListRecords(r.Context())
	if err != nil {
		h.logger.Error("failed to list schedule", slog.Any("error", err))
		sendError(h.logger, w, "failed to load schedule", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.FromModels(records), http.StatusOK)
}

// Update обрабатывает POST /api/update.
// Тело {table_id, week, day, status}; ячейка создается, если ее еще нет.
func (h *ScheduleHandler) Update(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpdateBody)

	var req api.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode update request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	rec, err := req.ToModel(h.limits)
	if err != nil {
		h.logger.Warn("invalid update request",
			slog.Int("table_id", req.TableID),
			slog.Int("week", req.Week),
			slog.String("day", req.Day),
			slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	stored, err := h.storage.UpsertRecord(r.Context(), rec)
	if err != nil {
		h.logger.Error("failed to update record",
			slog.String("key", rec.Key().String()),
			slog.Any("error", err))
		sendError(h.logger, w, "failed to update record", http.StatusInternalServerError)
		return
	}

	h.logger.Info("record updated",
		slog.String("key", stored.Key().String()),
		slog.String("status", string(stored.Status)))

	sendJSON(h.logger, w, api.UpdateResponse{
		Status: StatusOK,
		Record: api.FromModel(*stored),
	}, http.StatusOK)
}
