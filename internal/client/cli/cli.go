package cli

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/iudanet/bookgrid/internal/client/admin"
	"github.com/iudanet/bookgrid/internal/client/iocli"
	"github.com/iudanet/bookgrid/internal/client/schedule"
)

// tickerFunc запускает периодические сигналы обновления для watch.
// Возвращает канал сигналов и функцию остановки.
type tickerFunc func(spec string) (<-chan struct{}, func(), error)

// Options дополнительные параметры CLI
type Options struct {
	// RefreshCron расписание обновления для watch
	RefreshCron string
	// Namespace ключ слота оверлея, показывается в status
	Namespace string
	// NoColor отключает цветной вывод даже в терминале
	NoColor bool
}

// Cli выполняет команды клиента поверх сервисов расписания
type Cli struct {
	io       iocli.IO
	schedule *schedule.Service
	admin    *admin.Service
	ticker   tickerFunc
	now      func() time.Time
	opts     Options
}

// New создает CLI
func New(io iocli.IO, scheduleService *schedule.Service, adminService *admin.Service, opts Options) *Cli {
	return &Cli{
		io:       io,
		schedule: scheduleService,
		admin:    adminService,
		ticker:   cronTicker,
		now:      time.Now,
		opts:     opts,
	}
}

// color решает, раскрашивать ли сетку
func (c *Cli) color() bool {
	return !c.opts.NoColor && c.io.IsTerminal()
}

// cronTicker преобразует задания cron в сигналы канала: задание только
// отправляет сигнал, сама работа выполняется в основном цикле команды
func cronTicker(spec string) (<-chan struct{}, func(), error) {
	ticks := make(chan struct{}, 1)

	scheduler := cron.New()
	_, err := scheduler.AddFunc(spec, func() {
		select {
		case ticks <- struct{}{}:
		default:
			// Предыдущий сигнал еще не обработан
		}
	})
	if err != nil {
		return nil, nil, fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}

	scheduler.Start()
	stop := func() {
		<-scheduler.Stop().Done()
	}
	return ticks, stop, nil
}

// PrintUsage выводит справку по командам
func PrintUsage(io iocli.IO) {
	io.Println("Bookgrid Client")
	io.Println()
	io.Println("Usage:")
	io.Println("  bookgrid [OPTIONS] COMMAND [ARGS]")
	io.Println()
	io.Println("Options:")
	io.Println("  --version          Show version information")
	io.Println("  --config PATH      Path to config file (default: bookgrid.yaml)")
	io.Println("  --server URL       Server URL (overrides config)")
	io.Println("  --db PATH          Path to local database (overrides config)")
	io.Println("  --no-color         Disable colored output")
	io.Println()
	io.Println("Commands:")
	io.Println("  show [table]                    Show the booking grid (all tables by default)")
	io.Println("  toggle <table> <week> <day>     Flip a cell between free and booked")
	io.Println("  toggle <table> --date DATE      Flip the cell for a calendar date (YYYY-MM-DD)")
	io.Println("  status                          Show data source and pending local edits")
	io.Println("  sync                            Push pending local edits to the server once")
	io.Println("  export [file]                   Export local edits as JSON (stdout by default)")
	io.Println("  import <file>                   Replace local edits with a JSON document")
	io.Println("  clear [-y]                      Discard all local edits")
	io.Println("  ics <file>                      Export booked cells as an iCalendar file")
	io.Println("  watch [table]                   Re-render the grid on the refresh schedule")
	io.Println()
	io.Println("Examples:")
	io.Println("  bookgrid show 1")
	io.Println("  bookgrid toggle 2 5 Fri")
	io.Println("  bookgrid toggle 1 --date 2025-09-16")
}
