// Package config loads service and CLI settings from the environment.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds process-wide settings. LLM settings live in internal/llm.
type Config struct {
	Addr               string
	LogLevel           string
	LogFile            string
	APIURL             string
	DBPath             string
	OutlineConcurrency int
}

// Default returns the settings used when nothing is set in the environment.
func Default() Config {
	return Config{
		Addr:               ":8000",
		LogLevel:           "info",
		APIURL:             "http://localhost:8000",
		OutlineConcurrency: 4,
	}
}

// Load reads .env from the working directory (if any) and then the
// environment, falling back to defaults for unset values. Variables already
// present in the environment win over .env entries.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return FromEnv(), nil
}

// FromEnv reads settings from the environment only.
func FromEnv() Config {
	cfg := Default()

	if v := os.Getenv("STUDYPLAN_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("STUDYPLAN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("STUDYPLAN_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("STUDYPLAN_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("STUDYPLAN_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("STUDYPLAN_OUTLINE_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.OutlineConcurrency = n
		}
	}

	return cfg
}
