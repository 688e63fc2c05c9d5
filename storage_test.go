package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, exists, err := loadConfig(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, defaultConfig(), config)
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	config := defaultConfig()
	config.Theme = "Ocean Neon"
	config.Shadow = false
	config.Volume = 35

	require.NoError(t, saveConfig(path, config))
	loaded, exists, err := loadConfig(path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, config, loaded)
}

func TestLoadConfigNormalizesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"nope","volume":250,"fps":1}`), 0o644))

	config, _, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, themes[0].Name, config.Theme)
	assert.Equal(t, 100, config.Volume)
	assert.Equal(t, 10, config.FPS)
	assert.True(t, config.Sound)
}

func TestLoadConfigRejectsBrokenJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":`), 0o644))

	config, exists, err := loadConfig(path)
	assert.Error(t, err)
	assert.True(t, exists)
	assert.Equal(t, defaultConfig(), config)
}

func TestVolumeFromPercent(t *testing.T) {
	assert.Equal(t, 0.0, volumeFromPercent(-5))
	assert.Equal(t, 0.5, volumeFromPercent(50))
	assert.Equal(t, 1.0, volumeFromPercent(120))
}
