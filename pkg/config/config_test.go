package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "goals.txt", cfg.SaveFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Autosave)
	assert.NotEmpty(t, cfg.DataDir)
	assert.NoError(t, cfg.Validate())
}

func TestLoadWithoutFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, filepath.Join(dir, "goals.txt"), cfg.SavePath())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "save_file: quests.txt\nlog_level: DEBUG\nautosave: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "quests.txt", cfg.SaveFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Autosave)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("save_file: quests.txt\n"), 0644))
	t.Setenv("QUEST_SAVE_FILE", "/abs/other.txt")
	t.Setenv("QUEST_LOG_LEVEL", "warn")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/abs/other.txt", cfg.SavePath())
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadDataDirFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUEST_DATA_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("save_file: env.txt\n"), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, "env.txt", cfg.SaveFile)
}

func TestLoadRejectsInvalidLevel(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("log_level: loud\n"), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LogLevel")
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, WriteDefault(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Config
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, dir, got.DataDir)
	assert.Equal(t, "goals.txt", got.SaveFile)

	// Refuses to overwrite
	assert.Error(t, WriteDefault(path))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestNewLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("warn", &buf)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
