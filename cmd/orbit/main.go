package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"rotkit/internal/config"
	"rotkit/internal/frames"
	"rotkit/internal/mathutil"
	"rotkit/internal/raster"
	"rotkit/internal/rotation"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	model := flag.String("model", "", "Mesh to render: cube, icosahedron (default: cube)")
	size := flag.Int("size", 0, "Frame size in pixels (default: 256)")
	frameCount := flag.Int("frames", 0, "Number of frames for a full turn (default: 36)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	tilt := flag.Float64("tilt", 0, "Camera tilt in degrees (default: 20)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Model:     *model,
		Size:      *size,
		Frames:    *frameCount,
		Workers:   *workers,
		TiltDeg:   *tilt,
	})

	mesh, ok := raster.ByName(cfg.Model)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown model %q\n", cfg.Model)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Turntable renderer → WebP\n")
	fmt.Printf("Model: %s, Frames: %d, Size: %d, Workers: %d\n",
		cfg.Model, cfg.Frames, cfg.RenderSize, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Fixed tilt, one yaw step per frame; yaw spins the model first, the
	// tilt then pitches the whole turntable toward the camera.
	tiltRot := rotation.FromAngleX(mathutil.Deg2Rad(cfg.TiltDeg))
	yawStep := mathutil.Deg2Rad(cfg.YawStepDeg)
	spin := func(i int) rotation.Basis3[float64] {
		return tiltRot.Concat(rotation.FromAngleY(yawStep * float64(i)))
	}

	results := frames.Render(frames.Config{
		OutputDir:   cfg.OutputDir,
		Size:        cfg.RenderSize,
		Supersample: cfg.Supersample,
		Count:       cfg.Frames,
		Workers:     cfg.Workers,
	}, mesh, spin)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			fmt.Printf("  frame %d: %s\n", r.Frame, r.Error)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := frames.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
