package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config - настройки демо. Читается из toml-файла, значения ниже -
// значения по умолчанию
type Config struct {
	Addr   string  `toml:"addr"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Sites  int     `toml:"sites"`
	Eps    float64 `toml:"eps"`
	Layout string  `toml:"layout"`
	Seed   int64   `toml:"seed"`
}

func defaultConfig() Config {
	return Config{
		Addr:   ":8080",
		Width:  1000,
		Height: 1000,
		Sites:  64,
		Eps:    1e-9,
		Layout: "random",
		Seed:   0,
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("чтение конфига %s: %w", path, err)
	}
	if cfg.Eps <= 0 {
		return cfg, fmt.Errorf("eps должен быть положительным, получен %v", cfg.Eps)
	}
	if cfg.Layout != "random" && cfg.Layout != "grid" {
		return cfg, fmt.Errorf("неизвестная раскладка %q", cfg.Layout)
	}
	return cfg, nil
}
