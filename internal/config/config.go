package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable render settings for the demo tools.
type Config struct {
	OutputDir   string  `json:"output_dir"`
	Model       string  `json:"model"`
	RenderSize  int     `json:"render_size"`
	Supersample int     `json:"supersample"`
	Frames      int     `json:"frames"`
	Workers     int     `json:"workers"`
	TiltDeg     float64 `json:"tilt_deg"`
	YawStepDeg  float64 `json:"yaw_step_deg"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Model     string
	Size      int
	Frames    int
	Workers   int
	TiltDeg   float64
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Model != "" {
		c.Model = flags.Model
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.TiltDeg != 0 {
		c.TiltDeg = flags.TiltDeg
	}

	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Model == "" {
		c.Model = "cube"
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 36
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.TiltDeg == 0 {
		c.TiltDeg = 20
	}
	if c.YawStepDeg == 0 {
		c.YawStepDeg = 360 / float64(c.Frames)
	}
}
