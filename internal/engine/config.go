package engine

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config хранит параметры запуска движка. Значения читаются из
// переменных окружения; флаги в main могут переопределить отдельные
// поля поверх.
type Config struct {
	// Addr — адрес HTTP/WebSocket сервера.
	Addr string `env:"ADDR" envDefault:":8080"`

	// ArenaPreset — имя пресета арены.
	ArenaPreset string `env:"ARENA_PRESET" envDefault:"arena"`

	// SaveDir — каталог файлов расстановок.
	SaveDir string `env:"SAVE_DIR" envDefault:"./saves"`
}

// LoadConfig читает конфигурацию из окружения.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
