package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, DefaultAngleEpsilon, cfg.AngleEpsilon)
	assert.Equal(t, DefaultMaxPasses, cfg.MaxPasses)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestResetRestoresDefaults(t *testing.T) {
	cfg := NewConfig()
	cfg.AngleEpsilon = 3
	cfg.Log.File = "x.log"
	cfg.Reset()
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meshflat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
angle_epsilon: 0.001
max_passes: 4
log:
  level: debug
  file: out.log
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.001, cfg.AngleEpsilon)
	assert.Equal(t, 4, cfg.MaxPasses)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "out.log", cfg.Log.File)
	// untouched keys keep their defaults
	assert.Equal(t, 100, cfg.Log.MaxSizeMB)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative epsilon", "angle_epsilon: -1"},
		{"zero passes", "max_passes: 0"},
		{"negative workers", "workers: -2"},
		{"not yaml", "angle_epsilon: [1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
