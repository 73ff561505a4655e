package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/harsh9t/xapian/internal/config"
	xerrors "github.com/harsh9t/xapian/internal/errors"
)

// writeConfigFile marshals the given document to YAML in dir and returns the
// file path.
func writeConfigFile(t *testing.T, dir, name string, doc map[string]any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	require.NoError(t, err)

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	assert.Empty(t, cfg.Lock.HolderPath)
	assert.Equal(t, time.Second, cfg.Lock.ProbeInterval)
	assert.NoError(t, config.Validate(cfg))
}

func TestLoadFromPaths(t *testing.T) {
	t.Run("no files uses defaults", func(t *testing.T) {
		cfg, err := config.LoadFromPaths(context.Background(), "", "")
		require.NoError(t, err)
		assert.Equal(t, config.DefaultConfig(), cfg)
	})

	t.Run("global config applies", func(t *testing.T) {
		global := writeConfigFile(t, t.TempDir(), "config.yaml", map[string]any{
			"lock": map[string]any{
				"probe_interval": "250ms",
			},
		})

		cfg, err := config.LoadFromPaths(context.Background(), "", global)
		require.NoError(t, err)
		assert.Equal(t, 250*time.Millisecond, cfg.Lock.ProbeInterval)
	})

	t.Run("project config overrides global", func(t *testing.T) {
		dir := t.TempDir()
		global := writeConfigFile(t, dir, "global.yaml", map[string]any{
			"lock": map[string]any{
				"probe_interval": "250ms",
				"holder_path":    "/usr/local/libexec/xapian-lockd",
			},
		})
		project := writeConfigFile(t, dir, "project.yaml", map[string]any{
			"lock": map[string]any{
				"probe_interval": "2s",
			},
		})

		cfg, err := config.LoadFromPaths(context.Background(), project, global)
		require.NoError(t, err)
		assert.Equal(t, 2*time.Second, cfg.Lock.ProbeInterval)
		// Keys absent from the project config keep the global value.
		assert.Equal(t, "/usr/local/libexec/xapian-lockd", cfg.Lock.HolderPath)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		global := writeConfigFile(t, t.TempDir(), "config.yaml", map[string]any{
			"lock": map[string]any{
				"probe_interval": "1h",
			},
		})

		cfg, err := config.LoadFromPaths(context.Background(), "", global)
		require.Error(t, err)
		assert.ErrorIs(t, err, xerrors.ErrConfigInvalidLock)
		assert.Nil(t, cfg)
	})

	t.Run("missing file paths are tolerated", func(t *testing.T) {
		cfg, err := config.LoadFromPaths(context.Background(),
			filepath.Join(t.TempDir(), "nope.yaml"), "")
		require.NoError(t, err)
		assert.Equal(t, config.DefaultConfig(), cfg)
	})
}

func TestLoad_EnvOverride(t *testing.T) {
	// Point XAPIAN_HOME at an empty dir so no real global config interferes.
	t.Setenv("XAPIAN_HOME", t.TempDir())
	t.Setenv("XAPIAN_LOCK_PROBE_INTERVAL", "100ms")

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100*time.Millisecond, cfg.Lock.ProbeInterval)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*config.Config) {},
			wantErr: nil,
		},
		{
			name: "probe interval too small",
			mutate: func(cfg *config.Config) {
				cfg.Lock.ProbeInterval = time.Millisecond
			},
			wantErr: xerrors.ErrConfigInvalidLock,
		},
		{
			name: "probe interval too large",
			mutate: func(cfg *config.Config) {
				cfg.Lock.ProbeInterval = time.Hour
			},
			wantErr: xerrors.ErrConfigInvalidLock,
		},
		{
			name: "relative holder path",
			mutate: func(cfg *config.Config) {
				cfg.Lock.HolderPath = "bin/xapian-lockd"
			},
			wantErr: xerrors.ErrConfigInvalidLock,
		},
		{
			name: "absolute holder path",
			mutate: func(cfg *config.Config) {
				cfg.Lock.HolderPath = "/usr/local/libexec/xapian-lockd"
			},
			wantErr: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.DefaultConfig()
			tc.mutate(cfg)

			err := config.Validate(cfg)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidate_NilConfig(t *testing.T) {
	t.Parallel()
	assert.ErrorIs(t, config.Validate(nil), xerrors.ErrConfigNil)
}
