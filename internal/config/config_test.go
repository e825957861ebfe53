package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadAndResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"model":"icosahedron","frames":12}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	cfg.Resolve(Flags{OutputDir: "out"})
	require.Equal(t, "icosahedron", cfg.Model)
	require.Equal(t, "out", cfg.OutputDir)
	require.Equal(t, 12, cfg.Frames)
	require.Equal(t, 256, cfg.RenderSize)
	require.InDelta(t, 30.0, cfg.YawStepDeg, 1e-12) // 360/12
	require.Greater(t, cfg.Workers, 0)
}

func TestFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"frames":10,"render_size":64}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	cfg.Resolve(Flags{Frames: 8, Size: 128})
	require.Equal(t, 8, cfg.Frames)
	require.Equal(t, 128, cfg.RenderSize)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
