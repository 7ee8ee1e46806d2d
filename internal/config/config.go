// Package config loads the effective configuration from defaults, an
// optional YAML file, ROTE_* environment variables, and command-line flags,
// in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/example/rote/internal/domain"
	"github.com/example/rote/internal/sm2"
)

const envPrefix = "ROTE_"

// Config is the application configuration.
type Config struct {
	// DB is the SQLite database path.
	DB        string          `koanf:"db" validate:"required"`
	LogLevel  string          `koanf:"log-level" validate:"required,oneof=debug info warn error"`
	Scheduler SchedulerConfig `koanf:"scheduler"`
}

// SchedulerConfig exposes the tunable algorithm parameters. The fixed
// graduating steps and ease deltas are not configurable; they define the
// algorithm rather than tune it.
type SchedulerConfig struct {
	EaseFloor         float64 `koanf:"ease-floor" validate:"gt=1"`
	LapseIntervalDays int     `koanf:"lapse-interval-days" validate:"gte=1"`
	HardMultiplier    float64 `koanf:"hard-multiplier" validate:"gt=0"`
	GoodMultiplier    float64 `koanf:"good-multiplier" validate:"gt=0"`
	EasyMultiplier    float64 `koanf:"easy-multiplier" validate:"gt=0"`
}

// Default returns the built-in configuration.
func Default() Config {
	params := sm2.DefaultParams()
	return Config{
		DB:       "rote.db",
		LogLevel: "info",
		Scheduler: SchedulerConfig{
			EaseFloor:         params.EaseFloor,
			LapseIntervalDays: params.LapseIntervalDays,
			HardMultiplier:    params.GrowthMultipliers[domain.RatingHard],
			GoodMultiplier:    params.GrowthMultipliers[domain.RatingGood],
			EasyMultiplier:    params.GrowthMultipliers[domain.RatingEasy],
		},
	}
}

// Load builds the effective configuration. A missing config file is not an
// error; a file that exists but cannot be parsed is. flags may be nil when
// no command line is involved. Environment variables use the ROTE_ prefix
// with '__' for nesting and '_' for dashes, so ROTE_SCHEDULER__EASE_FLOOR
// maps to scheduler.ease-floor.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		key = strings.ReplaceAll(key, "__", ".")
		return strings.ReplaceAll(key, "_", "-")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Params returns the algorithm parameters with the configured tuning
// applied.
func (c SchedulerConfig) Params() sm2.Params {
	params := sm2.DefaultParams()
	params.EaseFloor = c.EaseFloor
	params.LapseIntervalDays = c.LapseIntervalDays
	params.GrowthMultipliers[domain.RatingHard] = c.HardMultiplier
	params.GrowthMultipliers[domain.RatingGood] = c.GoodMultiplier
	params.GrowthMultipliers[domain.RatingEasy] = c.EasyMultiplier
	return params
}

// SlogLevel maps the configured log level onto slog's scale. Unknown
// values fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
