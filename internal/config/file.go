package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// normalizer реализуется конфигурациями, умеющими заполнять пустые поля
type normalizer interface {
	Normalize()
}

// loadFile читает YAML конфигурацию в cfg.
// Если файла нет, cfg (уже заполненный значениями по умолчанию) сохраняется
// по этому пути с правами 0600. Ошибка сохранения возвращается вместе с cfg,
// вызывающий код может продолжить работу.
func loadFile(path string, cfg normalizer) error {
	if path == "" {
		return errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// Первый запуск: создаем файл с настройками по умолчанию
			return saveFile(path, cfg)
		}
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	cfg.Normalize()

	return nil
}

// saveFile атомарно записывает cfg в YAML: временный файл в том же каталоге,
// права 0600, затем rename поверх целевого пути
func saveFile(path string, cfg normalizer) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".bookgrid-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
