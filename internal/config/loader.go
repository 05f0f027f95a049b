package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// LocalTuningPath - файл, который ищется в рабочей директории.
const LocalTuningPath = "configs/forager.yaml"

// Load загружает параметры игры.
// Порядок поиска: customPath -> ./configs/forager.yaml -> встроенный defaults.yaml.
// Файл накладывается поверх значений по умолчанию, так что в нём можно указать
// только то, что нужно изменить.
func Load(customPath string) (Tuning, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Tuning{}, err
		}
		return cfg, nil
	}

	if _, err := os.Stat(LocalTuningPath); err == nil {
		cfg, err := loadFile(LocalTuningPath)
		if err == nil {
			return cfg, nil
		}
		log.Warn("ignoring local tuning file", "path", LocalTuningPath, "err", err)
	}

	return embeddedTuning(), nil
}

func loadFile(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse разбирает YAML поверх значений по умолчанию и проверяет результат.
func Parse(data []byte) (Tuning, error) {
	cfg := embeddedTuning()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Tuning{}, fmt.Errorf("config: failed to parse tuning: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("config: invalid tuning: %w", err)
	}
	return cfg, nil
}
