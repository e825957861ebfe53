// Package frames renders a rotation sequence to numbered WebP files using a
// worker pool. Every frame is independent, so the pool needs no coordination
// beyond the work channel.
package frames

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"rotkit/internal/raster"
	"rotkit/internal/rotation"
)

// Config holds all shared resources for a frame batch.
type Config struct {
	OutputDir   string
	Size        int
	Supersample int
	Count       int
	Workers     int
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int    `json:"frame"`
	Image   string `json:"image"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Spin returns the rotation for frame i.
type Spin func(i int) rotation.Basis3[float64]

// Render draws all frames through a worker pool and reports per-frame
// results in frame order.
func Render(cfg Config, mesh raster.Mesh, spin Spin) []Result {
	total := cfg.Count
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, float64(p)/elapsed)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, mesh, spin(idx), idx)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg Config, mesh raster.Mesh, rot rotation.Basis3[float64], idx int) Result {
	name := fmt.Sprintf("frame_%04d.webp", idx)
	img := raster.Render(mesh, rot, cfg.Size, cfg.Supersample)

	outPath := filepath.Join(cfg.OutputDir, name)
	f, err := os.Create(outPath)
	if err != nil {
		return Result{Frame: idx, Image: name, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{Frame: idx, Image: name, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{Frame: idx, Image: name, Success: true}
}
