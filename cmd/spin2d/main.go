package main

import (
	"flag"
	"fmt"
	"image"
	stddraw "image/draw"
	"math"
	"os"
	"path/filepath"

	_ "github.com/ftrvxmtrx/tga"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"rotkit/internal/rotation"
)

func main() {
	in := flag.String("in", "", "Input TGA sprite")
	out := flag.String("out", "spin", "Output directory")
	frameCount := flag.Int("frames", 36, "Number of frames for a full turn")

	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "Error: -in is required")
		os.Exit(1)
	}
	if *frameCount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -frames must be positive")
		os.Exit(1)
	}

	src, err := loadSprite(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*out, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	b := src.Bounds()
	// Fit the whole sprite at any angle: frame edge = diagonal.
	side := int(math.Ceil(math.Hypot(float64(b.Dx()), float64(b.Dy()))))
	srcCX := float64(b.Min.X) + float64(b.Dx())/2
	srcCY := float64(b.Min.Y) + float64(b.Dy())/2
	dstC := float64(side) / 2

	step := 2 * math.Pi / float64(*frameCount)

	fmt.Printf("Sprite spin → WebP: %s (%dx%d), %d frames\n", *in, b.Dx(), b.Dy(), *frameCount)

	for i := 0; i < *frameCount; i++ {
		// Positive angles are counter-clockwise in math coordinates; with
		// the image y axis pointing down, the sprite appears to turn
		// clockwise.
		m := rotation.FromAngle(step * float64(i)).Mat()

		aff := f64.Aff3{
			m[0], m[1], dstC - m[0]*srcCX - m[1]*srcCY,
			m[2], m[3], dstC - m[2]*srcCX - m[3]*srcCY,
		}

		dst := image.NewNRGBA(image.Rect(0, 0, side, side))
		draw.BiLinear.Transform(dst, aff, src, b, draw.Src, nil)

		path := filepath.Join(*out, fmt.Sprintf("frame_%04d.webp", i))
		if err := writeWebP(path, dst); err != nil {
			fmt.Fprintf(os.Stderr, "Error: frame %d: %v\n", i, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Rendered: %d frames → %s\n", *frameCount, *out)
}

// loadSprite decodes a TGA (or any registered format) into NRGBA.
func loadSprite(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sprite: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("sprite: decode %s: %w", path, err)
	}

	if n, ok := img.(*image.NRGBA); ok {
		return n, nil
	}
	dst := image.NewNRGBA(img.Bounds())
	stddraw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, stddraw.Src)
	return dst, nil
}

func writeWebP(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return nativewebp.Encode(f, img, nil)
}
