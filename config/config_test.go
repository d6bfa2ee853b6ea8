package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
	require.NoError(t, cfg.Validate())
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hamgrid.yaml")
	data := []byte("size: 12\nrender:\n  mode: animate\n  delay: 10ms\n  hold: true\nlogging:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 12, cfg.Size)
	require.Equal(t, ModeAnimate, cfg.Render.Mode)
	require.Equal(t, 10*time.Millisecond, cfg.GetDelay())
	require.True(t, cfg.Render.Hold)
	require.True(t, cfg.Render.Color, "unset fields keep their defaults")
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: [1, 2"), 0644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvSize, "14")
	t.Setenv(EnvDelay, "5ms")
	t.Setenv(EnvMode, "STREAM")
	t.Setenv(EnvLogLevel, "Info")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 14, cfg.Size)
	require.Equal(t, 5*time.Millisecond, cfg.GetDelay())
	require.Equal(t, ModeStream, cfg.Render.Mode)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestEnvOverrideBadSize(t *testing.T) {
	t.Setenv(EnvSize, "eight")
	_, err := Load("")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Load error = %v; want ErrInvalidConfig", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hamgrid.yaml")
	cfg := DefaultConfig()
	cfg.Size = 20
	cfg.Render.Mode = ModeNone
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"Mode", func(c *Config) { c.Render.Mode = "gif" }},
		{"Delay", func(c *Config) { c.Render.Delay = "soon" }},
		{"NegativeDelay", func(c *Config) { c.Render.Delay = "-1s" }},
		{"Level", func(c *Config) { c.Logging.Level = "trace" }},
		{"Format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate error = %v; want ErrInvalidConfig", err)
			}
		})
	}
}

func TestGetDelayFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Render.Delay = "garbage"
	require.Equal(t, 50*time.Millisecond, cfg.GetDelay())
}
