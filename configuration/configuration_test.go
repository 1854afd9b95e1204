package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(content), 0600)
	assert.Nil(t, err)
	return path
}

func TestReadSuccess(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: debug\ndisplay_logo: true\n")

	cfg, err := Read(path)
	assert.Nil(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.DisplayLogo)
}

func TestReadEmptyFile(t *testing.T) {
	cfg, err := Read(writeConfig(t, ""))
	assert.Nil(t, err)
	assert.Equal(t, Configuration{}, cfg)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)
}

func TestReadInvalid(t *testing.T) {
	for _, content := range []string{
		"logging: [",
		"unknown_field: 1\n",
		"logging:\n  level: loud\n",
	} {
		_, err := Read(writeConfig(t, content))
		assert.NotNil(t, err, content)
		assert.Contains(t, err.Error(), "config.yaml", content)
	}
}
