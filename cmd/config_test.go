package cmd_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"deliverychecker/cmd"
	"deliverychecker/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config, err := cmd.LoadConfig(envOf(nil))

		require.NoError(t, err)
		assert.Equal(t, "8080", config.HTTPPort)
		assert.Equal(t, "5432", config.DBPort)
		assert.Equal(t, "disable", config.DBSslMode)
		assert.Equal(t, slog.LevelInfo, config.LogLevel)
		assert.False(t, config.HistoryEnabled)
		assert.Equal(t, 30*24*time.Hour, config.HistoryRetention)
		assert.Equal(t, jobs.DefaultPurgeSchedule, config.HistoryPurgeSchedule)
	})

	t.Run("explicit values", func(t *testing.T) {
		config, err := cmd.LoadConfig(envOf(map[string]string{
			"HTTP_PORT":              "9000",
			"DB_HOST":                "db",
			"DB_USER":                "checker",
			"DB_PASSWORD":            "secret",
			"DB_NAME":                "checks",
			"LOG_LEVEL":              "DEBUG",
			"HISTORY_ENABLED":        "true",
			"HISTORY_RETENTION":      "72h",
			"HISTORY_PURGE_SCHEDULE": "0 */5 * * * *",
		}))

		require.NoError(t, err)
		assert.Equal(t, "9000", config.HTTPPort)
		assert.Equal(t, slog.LevelDebug, config.LogLevel)
		assert.True(t, config.HistoryEnabled)
		assert.Equal(t, 72*time.Hour, config.HistoryRetention)
		assert.Equal(t, "0 */5 * * * *", config.HistoryPurgeSchedule)
		assert.Equal(t,
			"host=db user=checker password=secret dbname=checks port=5432 sslmode=disable",
			config.DSN())
	})

	t.Run("reports every malformed value", func(t *testing.T) {
		_, err := cmd.LoadConfig(envOf(map[string]string{
			"LOG_LEVEL":         "loud",
			"HISTORY_ENABLED":   "maybe",
			"HISTORY_RETENTION": "-1h",
		}))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "LOG_LEVEL")
		assert.Contains(t, err.Error(), "HISTORY_ENABLED")
		assert.Contains(t, err.Error(), "HISTORY_RETENTION")
	})

	t.Run("history needs a database name", func(t *testing.T) {
		_, err := cmd.LoadConfig(envOf(map[string]string{"HISTORY_ENABLED": "1"}))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_NAME")
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := cmd.NewLogger(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown", "component", "test")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "component=test")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
