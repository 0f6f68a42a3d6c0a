package config

import (
	"strconv"
	"time"
)

// ServerConfig конфигурация сервера расписания
type ServerConfig struct {
	// Listen адрес HTTP сервера
	Listen string `yaml:"listen" env:"BOOKGRID_LISTEN"`
	// DB путь к файлу SQLite
	DB string `yaml:"db" env:"BOOKGRID_SERVER_DB"`
	// StaticDir каталог статических файлов, отдаваемых с корня
	StaticDir string `yaml:"static_dir" env:"BOOKGRID_STATIC_DIR"`
	// SnapshotCron расписание выгрузки снимка api/schedule.json; "off" отключает
	SnapshotCron string `yaml:"snapshot" env:"BOOKGRID_SNAPSHOT"`
	// LogLevel уровень логирования
	LogLevel string `yaml:"log_level" env:"BOOKGRID_LOG_LEVEL"`
	// CORSOrigins разрешенные источники; "*" разрешает все
	CORSOrigins []string `yaml:"cors_origins" env:"BOOKGRID_CORS_ORIGINS" envSeparator:","`
	// Semester календарь семестра, задает набор засеваемых ячеек
	Semester SemesterConfig `yaml:"semester"`
	// UpdateRate лимит POST /api/update на один IP за UpdateWindow
	UpdateRate int `yaml:"update_rate" env:"BOOKGRID_UPDATE_RATE"`
	// UpdateWindow окно лимита запросов
	UpdateWindow time.Duration `yaml:"update_window" env:"BOOKGRID_UPDATE_WINDOW"`
	// Port порт из окружения хостинга; если задан, перекрывает порт в Listen
	Port int `yaml:"-" env:"PORT"`
}

// SnapshotDisabled значение SnapshotCron, отключающее выгрузку снимка
const SnapshotDisabled = "off"

// DefaultServerConfig возвращает конфигурацию сервера по умолчанию
func DefaultServerConfig() *ServerConfig {
	cfg := &ServerConfig{}
	cfg.Normalize()
	return cfg
}

// Normalize заполняет пустые поля значениями по умолчанию
func (c *ServerConfig) Normalize() {
	if c.Listen == "" {
		c.Listen = ":3000"
	}
	if c.DB == "" {
		c.DB = "bookgrid.db"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.SnapshotCron == "" {
		c.SnapshotCron = "*/5 * * * *"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.CORSOrigins == nil {
		c.CORSOrigins = []string{"*"}
	}
	if c.UpdateRate <= 0 {
		c.UpdateRate = 60
	}
	if c.UpdateWindow <= 0 {
		c.UpdateWindow = time.Minute
	}
	c.Semester.Normalize()
}

// Addr возвращает адрес прослушивания с учетом переменной PORT
func (c *ServerConfig) Addr() string {
	if c.Port > 0 {
		return ":" + strconv.Itoa(c.Port)
	}
	return c.Listen
}

// SnapshotEnabled сообщает, включена ли выгрузка снимка
func (c *ServerConfig) SnapshotEnabled() bool {
	return c.SnapshotCron != SnapshotDisabled
}

// LoadServer загружает конфигурацию сервера из YAML и переменных окружения
func LoadServer(path string) (*ServerConfig, error) {
	cfg := DefaultServerConfig()
	if err := loadFile(path, cfg); err != nil {
		return cfg, err
	}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return cfg, nil
}

// Save сохраняет конфигурацию сервера
func (c *ServerConfig) Save(path string) error {
	return saveFile(path, c)
}
