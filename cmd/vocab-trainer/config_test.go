package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/vocab-trainer/internal/config"
)

func TestConfigInitCommand(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()
	t.Setenv(config.EnvAPIKey, "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Cleanup(func() { configFile = "" })

	out, err := runCommand(t, "config", "init", "--config", path, "--api-key", "cli-key")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration written to "+path)

	_, err = os.Stat(path)
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cli-key", cfg.API.Key)

	_, err = runCommand(t, "config", "init", "--config", path)
	assert.Error(t, err, "existing file needs --force")

	out, err = runCommand(t, "config", "init", "--config", path, "--force")
	require.NoError(t, err)
	assert.Contains(t, out, config.EnvAPIKey)
}

func TestConfigPathCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out, err := runCommand(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, "config.yaml\n", filepath.Base(out))
}
