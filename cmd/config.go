package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"deliverychecker/internal/jobs"
)

const (
	defaultHTTPPort         = "8080"
	defaultDBPort           = "5432"
	defaultDBSslMode        = "disable"
	defaultLogLevel         = "info"
	defaultHistoryRetention = 30 * 24 * time.Hour
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	LogLevel   slog.Level

	HistoryEnabled       bool
	HistoryRetention     time.Duration
	HistoryPurgeSchedule string
}

// LoadConfig reads the configuration through lookup, usually os.LookupEnv.
// Unset variables take their defaults; malformed values are reported together.
func LoadConfig(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return fallback
	}

	config := Config{
		HTTPPort:             get("HTTP_PORT", defaultHTTPPort),
		DBHost:               get("DB_HOST", "localhost"),
		DBPort:               get("DB_PORT", defaultDBPort),
		DBUser:               get("DB_USER", ""),
		DBPassword:           get("DB_PASSWORD", ""),
		DBName:               get("DB_NAME", ""),
		DBSslMode:            get("DB_SSLMODE", defaultDBSslMode),
		HistoryPurgeSchedule: get("HISTORY_PURGE_SCHEDULE", jobs.DefaultPurgeSchedule),
	}

	var errList []error

	level, err := ParseLogLevel(get("LOG_LEVEL", defaultLogLevel))
	errList = append(errList, err)
	config.LogLevel = level

	config.HistoryEnabled, err = strconv.ParseBool(get("HISTORY_ENABLED", "false"))
	if err != nil {
		errList = append(errList, fmt.Errorf("HISTORY_ENABLED: %w", err))
	}

	config.HistoryRetention, err = time.ParseDuration(get("HISTORY_RETENTION", defaultHistoryRetention.String()))
	if err != nil {
		errList = append(errList, fmt.Errorf("HISTORY_RETENTION: %w", err))
	} else if config.HistoryRetention <= 0 {
		errList = append(errList, errors.New("HISTORY_RETENTION: must be greater than 0"))
	}

	if config.HistoryEnabled && config.DBName == "" {
		errList = append(errList, errors.New("DB_NAME: required when HISTORY_ENABLED is set"))
	}

	if err = errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return config, nil
}

// DSN returns the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSslMode)
}

// ParseLogLevel accepts debug, info, warn and error in any case.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

// NewLogger returns a text logger writing to w.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
