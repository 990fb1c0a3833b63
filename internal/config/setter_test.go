package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) *Configuration {
	t.Helper()
	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	return cfg
}

func TestSet(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		key     string
		value   string
		wantErr bool
		check   func(t *testing.T, cfg *Configuration)
	}{
		"platform": {
			key: "platform", value: "linux64",
			check: func(t *testing.T, cfg *Configuration) {
				assert.Equal(t, "linux64", cfg.Platform)
			},
		},
		"invalid platform rejected": {
			key: "platform", value: "amiga", wantErr: true,
		},
		"target directory": {
			key: "target_directory", value: "/opt/drivers",
			check: func(t *testing.T, cfg *Configuration) {
				assert.Equal(t, "/opt/drivers", cfg.TargetDirectory)
			},
		},
		"timeout": {
			key: "http_timeout_seconds", value: "60",
			check: func(t *testing.T, cfg *Configuration) {
				assert.Equal(t, 60, cfg.HTTPTimeoutSeconds)
			},
		},
		"timeout not a number": {
			key: "http_timeout_seconds", value: "soon", wantErr: true,
		},
		"timeout out of range": {
			key: "http_timeout_seconds", value: "0", wantErr: true,
		},
		"skip confirmations": {
			key: "skip_confirmations", value: "true",
			check: func(t *testing.T, cfg *Configuration) {
				assert.True(t, cfg.SkipConfirmations)
			},
		},
		"boolean garbage rejected": {
			key: "show_progress", value: "maybe", wantErr: true,
		},
		"unknown key": {
			key: "color_scheme", value: "dark", wantErr: true,
		},
		"last_update is not settable": {
			key: "last_update", value: "2026-01-01T00:00:00Z", wantErr: true,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig(t)
			err := Set(cfg, tt.key, tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestSettableKeys(t *testing.T) {
	t.Parallel()

	keys := SettableKeys()
	assert.Contains(t, keys, "platform")
	assert.Contains(t, keys, "target_directory")
	assert.NotContains(t, keys, "last_update")
	assert.IsIncreasing(t, keys)
}
