package config

import (
	"github.com/iudanet/bookgrid/internal/client/source"
	"github.com/iudanet/bookgrid/internal/client/storage"
)

// ClientConfig конфигурация CLI клиента
type ClientConfig struct {
	// Server базовый адрес сервера расписания
	Server string `yaml:"server" env:"BOOKGRID_SERVER"`
	// StaticURL базовый адрес статического хостинга снимка; пусто - Server
	StaticURL string `yaml:"static_url" env:"BOOKGRID_STATIC_URL"`
	// ScheduleFile путь к локальному JSON файлу для файловой стратегии
	ScheduleFile string `yaml:"schedule_file" env:"BOOKGRID_SCHEDULE_FILE"`
	// DB путь к файлу BoltDB с оверлеем
	DB string `yaml:"db" env:"BOOKGRID_DB"`
	// Namespace ключ слота оверлея
	Namespace string `yaml:"namespace" env:"BOOKGRID_NAMESPACE"`
	// RefreshCron расписание обновления в режиме watch
	RefreshCron string `yaml:"refresh" env:"BOOKGRID_REFRESH"`
	// LogLevel уровень логирования: debug, info, warn, error
	LogLevel string `yaml:"log_level" env:"BOOKGRID_LOG_LEVEL"`
	// Sources порядок стратегий загрузки: api, static, file, embedded
	Sources []string `yaml:"sources" env:"BOOKGRID_SOURCES" envSeparator:","`
	// Semester календарь семестра
	Semester SemesterConfig `yaml:"semester"`
	// ReadOnly отключает отправку правок на сервер
	ReadOnly bool `yaml:"read_only" env:"BOOKGRID_READ_ONLY"`
}

// DefaultClientConfig возвращает конфигурацию клиента по умолчанию
func DefaultClientConfig() *ClientConfig {
	cfg := &ClientConfig{}
	cfg.Normalize()
	return cfg
}

// DefaultSources порядок стратегий загрузки по умолчанию
func DefaultSources() []string {
	return []string{source.NameAPI, source.NameStatic, source.NameEmbedded}
}

// Normalize заполняет пустые поля значениями по умолчанию
func (c *ClientConfig) Normalize() {
	if c.Server == "" {
		c.Server = "http://localhost:3000"
	}
	if c.DB == "" {
		c.DB = "bookgrid-client.db"
	}
	if c.Namespace == "" {
		c.Namespace = storage.DefaultNamespace
	}
	if c.RefreshCron == "" {
		c.RefreshCron = "*/5 * * * *"
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if len(c.Sources) == 0 {
		c.Sources = DefaultSources()
	}
	c.Semester.Normalize()
}

// LoadClient загружает конфигурацию клиента из YAML и накладывает
// переменные окружения BOOKGRID_*
func LoadClient(path string) (*ClientConfig, error) {
	cfg := DefaultClientConfig()
	if err := loadFile(path, cfg); err != nil {
		return cfg, err
	}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return cfg, nil
}

// Save сохраняет конфигурацию клиента
func (c *ClientConfig) Save(path string) error {
	return saveFile(path, c)
}
