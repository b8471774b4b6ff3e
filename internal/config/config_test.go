package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `input_path: /data/drops
output_dir: /data/out
permissive: true
write_xlsx: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/drops", cfg.InputPath)
	assert.Equal(t, "/data/out", cfg.OutputDir)
	assert.True(t, cfg.Permissive)
	assert.True(t, cfg.WriteXLSX)
	// unset fields keep defaults
	assert.Equal(t, os.TempDir(), cfg.WorkDir)
	assert.Equal(t, "run_log.json", cfg.RunLogName)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_path: [unterminated"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "run_log.json", cfg.RunLogName)
	assert.False(t, cfg.Permissive)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.ErrorContains(t, cfg.Validate(), "input path is required")

	cfg.InputPath = "statement.bai"
	assert.NoError(t, cfg.Validate())
}
