package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/illBeRoy/advent-2022/internal/adapters/config"
	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Success(t *testing.T) {
	content := `
version: "1"
inputs: my/inputs
cache:
  enabled: false
  path: tmp/answers.json
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "advent.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	cfg, err := config.Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "my/inputs", cfg.InputsDir)
	assert.False(t, cfg.CacheEnabled)
	assert.Equal(t, "tmp/answers.json", cfg.CachePath)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "advent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultInputsDir, cfg.InputsDir)
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, domain.DefaultCachePath, cfg.CachePath)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	content := `
version: "1"
cache:
  path: elsewhere.json
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "advent.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	cfg, err := config.Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultInputsDir, cfg.InputsDir)
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, "elsewhere.json", cfg.CachePath)
}

func TestLoad_MalformedYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "advent.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("inputs: [unclosed"), 0o600))

	_, err := config.Load(configPath)
	assert.Error(t, err)
}

func TestFileConfigLoader_Load(t *testing.T) {
	tmpDir := t.TempDir()
	content := "inputs: from/loader\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "advent.yaml"), []byte(content), 0o600))

	loader := &config.FileConfigLoader{Filename: "advent.yaml"}
	cfg, err := loader.Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "from/loader", cfg.InputsDir)
}
