package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"STUDYPLAN_ADDR", "STUDYPLAN_LOG_LEVEL", "STUDYPLAN_LOG_FILE",
		"STUDYPLAN_API_URL", "STUDYPLAN_DB", "STUDYPLAN_OUTLINE_CONCURRENCY",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := FromEnv()
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, "http://localhost:8000", cfg.APIURL)
	assert.Equal(t, 4, cfg.OutlineConcurrency)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STUDYPLAN_ADDR", "127.0.0.1:9000")
	t.Setenv("STUDYPLAN_LOG_LEVEL", "debug")
	t.Setenv("STUDYPLAN_LOG_FILE", "/tmp/studyplan.log")
	t.Setenv("STUDYPLAN_API_URL", "http://planner:8000")
	t.Setenv("STUDYPLAN_DB", "/tmp/x.db")
	t.Setenv("STUDYPLAN_OUTLINE_CONCURRENCY", "2")

	cfg := FromEnv()
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/studyplan.log", cfg.LogFile)
	assert.Equal(t, "http://planner:8000", cfg.APIURL)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, 2, cfg.OutlineConcurrency)
}

func TestFromEnv_IgnoresBadConcurrency(t *testing.T) {
	clearEnv(t)
	for _, v := range []string{"zero", "0", "-3"} {
		t.Setenv("STUDYPLAN_OUTLINE_CONCURRENCY", v)
		assert.Equal(t, 4, FromEnv().OutlineConcurrency, v)
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("STUDYPLAN_ADDR")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STUDYPLAN_ADDR=:7000\n"), 0o644))
	t.Chdir(dir)
	t.Cleanup(func() { os.Unsetenv("STUDYPLAN_ADDR") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr)
}

func TestLoad_MissingDotEnv(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.Addr)
}
