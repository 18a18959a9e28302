package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := loadSettings(&rootFlags{}, "test", nil)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, "dark", s.cfg.Theme)
	assert.NotNil(t, s.log)
	assert.Nil(t, s.closer)
}

func TestLoadSettings_LogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "widgetry.log")

	s, err := loadSettings(&rootFlags{logFile: logPath, verbose: true}, "test", nil)
	require.NoError(t, err)
	s.log.Debug("hello from the test")
	require.NoError(t, s.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from the test")
	assert.Contains(t, string(data), "widgetry")
}

func TestLoadSettings_ConfigErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: neon\n"), 0o644))

	_, err := loadSettings(&rootFlags{configPath: path}, "test", nil)
	require.Error(t, err)

	var cmdErr *commandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Contains(t, err.Error(), "Fix the value of theme")
}

func TestGalleryRequiresTerminal(t *testing.T) {
	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	isTerminal = func() bool { return false }

	_, err := executeRoot(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a terminal")

	_, err = executeRoot(t, "gallery", "--touch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "widgetry replay")
}
