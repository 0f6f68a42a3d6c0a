// Package server собирает HTTP маршруты сервера расписания.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/bookgrid/internal/server/handlers"
	"github.com/iudanet/bookgrid/internal/server/middleware"
	"github.com/iudanet/bookgrid/internal/server/storage"
	"github.com/iudanet/bookgrid/internal/validation"
)

const (
	// SchedulePath чтение всего расписания
	SchedulePath = "/api/schedule"
	// UpdatePath обновление одной ячейки
	UpdatePath = "/api/update"
	// HealthPath health check
	HealthPath = "/api/v1/health"
)

// Config зависимости HTTP слоя
type Config struct {
	Storage      storage.ScheduleStorage
	Pinger       handlers.Pinger
	Logger       *slog.Logger
	StaticDir    string
	Version      string
	CORSOrigins  []string
	Limits       validation.Limits
	UpdateRate   int
	UpdateWindow time.Duration
}

// NewRouter создает http.Handler со всеми маршрутами и middleware.
// Статический каталог отдается с корня, включая снимок api/schedule.json.
func NewRouter(cfg Config) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	scheduleHandler := handlers.NewScheduleHandler(logger, cfg.Storage, cfg.Limits)
	healthHandler := handlers.NewHealthHandler(logger, cfg.Pinger, cfg.Version)

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+SchedulePath, scheduleHandler.List)
	mux.HandleFunc("POST "+UpdatePath, scheduleHandler.Update)
	mux.HandleFunc("GET "+HealthPath, healthHandler.Health)
	if cfg.StaticDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	limiter := middleware.NewRateLimiter(cfg.UpdateRate, cfg.UpdateWindow)

	return middleware.Chain(mux,
		middleware.Recovery(logger),
		middleware.Logging(logger, HealthPath),
		middleware.CORS(cfg.CORSOrigins),
		middleware.RateLimit(limiter, logger, UpdatePath),
	)
}
