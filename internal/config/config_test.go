package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/rote/internal/domain"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rote.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "rote.db", cfg.DB)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1.3, cfg.Scheduler.EaseFloor)
	assert.Equal(t, 1, cfg.Scheduler.LapseIntervalDays)
	assert.Equal(t, 0.8, cfg.Scheduler.HardMultiplier)
	assert.Equal(t, 1.0, cfg.Scheduler.GoodMultiplier)
	assert.Equal(t, 1.3, cfg.Scheduler.EasyMultiplier)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
db: /var/lib/rote/cards.db
log-level: warn
scheduler:
  ease-floor: 1.5
  easy-multiplier: 1.4
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/rote/cards.db", cfg.DB)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 1.5, cfg.Scheduler.EaseFloor)
	assert.Equal(t, 1.4, cfg.Scheduler.EasyMultiplier)
	// Keys the file does not mention keep their defaults.
	assert.Equal(t, 1, cfg.Scheduler.LapseIntervalDays)
	assert.Equal(t, 0.8, cfg.Scheduler.HardMultiplier)
	assert.Equal(t, 1.0, cfg.Scheduler.GoodMultiplier)
}

func TestLoadUnparseableFile(t *testing.T) {
	path := writeConfigFile(t, "db: [unclosed")

	_, err := Load(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config file")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "log-level: warn\n")
	t.Setenv("ROTE_LOG_LEVEL", "debug")
	t.Setenv("ROTE_SCHEDULER__LAPSE_INTERVAL_DAYS", "3")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel, "environment beats the file")
	assert.Equal(t, 3, cfg.Scheduler.LapseIntervalDays)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("ROTE_DB", "env.db")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("db", "rote.db", "")
	flags.String("log-level", "info", "")
	require.NoError(t, flags.Set("db", "flag.db"))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, "flag.db", cfg.DB, "an explicitly set flag beats the environment")
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadUnchangedFlagDefaultsDoNotOverride(t *testing.T) {
	path := writeConfigFile(t, "log-level: error\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")

	cfg, err := Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.LogLevel, "a flag left at its default must not mask the file")
}

func TestLoadValidation(t *testing.T) {
	testCases := []struct {
		name     string
		contents string
	}{
		{name: "unknown log level", contents: "log-level: loud\n"},
		{name: "empty db path", contents: `db: ""` + "\n"},
		{name: "ease floor too low", contents: "scheduler:\n  ease-floor: 0.9\n"},
		{name: "zero lapse interval", contents: "scheduler:\n  lapse-interval-days: 0\n"},
		{name: "negative multiplier", contents: "scheduler:\n  good-multiplier: -1\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfigFile(t, tc.contents)

			_, err := Load(path, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestSchedulerConfigParams(t *testing.T) {
	cfg := SchedulerConfig{
		EaseFloor:         1.6,
		LapseIntervalDays: 2,
		HardMultiplier:    0.7,
		GoodMultiplier:    1.1,
		EasyMultiplier:    1.5,
	}

	params := cfg.Params()
	require.NoError(t, params.Validate())
	assert.Equal(t, 1.6, params.EaseFloor)
	assert.Equal(t, 2, params.LapseIntervalDays)
	assert.Equal(t, 0.7, params.GrowthMultipliers[domain.RatingHard])
	assert.Equal(t, 1.1, params.GrowthMultipliers[domain.RatingGood])
	assert.Equal(t, 1.5, params.GrowthMultipliers[domain.RatingEasy])
}

func TestSlogLevel(t *testing.T) {
	testCases := []struct {
		in       string
		expected slog.Level
	}{
		{in: "debug", expected: slog.LevelDebug},
		{in: "info", expected: slog.LevelInfo},
		{in: "warn", expected: slog.LevelWarn},
		{in: "error", expected: slog.LevelError},
		{in: "WARN", expected: slog.LevelWarn},
		{in: "garbage", expected: slog.LevelInfo},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Config{LogLevel: tc.in}.SlogLevel(), "level %q", tc.in)
	}
}
