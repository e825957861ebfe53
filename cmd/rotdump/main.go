package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"rotkit/internal/mathutil"
	"rotkit/internal/rotation"
)

func main() {
	euler := flag.String("euler", "", "Euler angles x,y,z in degrees (x applied first)")
	axis := flag.String("axis", "", "Rotation axis x,y,z (normalized before use)")
	angle := flag.Float64("angle", 0, "Rotation angle in degrees, used with -axis")

	flag.Parse()

	var rot rotation.Basis3[float64]
	switch {
	case *euler != "":
		x, y, z, err := parseTriple(*euler)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -euler: %v\n", err)
			os.Exit(1)
		}
		rot = rotation.FromEuler(
			mathutil.Deg2Rad(x), mathutil.Deg2Rad(y), mathutil.Deg2Rad(z))
	case *axis != "":
		x, y, z, err := parseTriple(*axis)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -axis: %v\n", err)
			os.Exit(1)
		}
		a := mathutil.Vec3[float64]{x, y, z}.Normalize()
		if a == (mathutil.Vec3[float64]{}) {
			fmt.Fprintln(os.Stderr, "Error: -axis must be non-zero")
			os.Exit(1)
		}
		rot = rotation.FromAxisAngle(a, mathutil.Deg2Rad(*angle))
	default:
		fmt.Fprintln(os.Stderr, "Usage: rotdump -euler x,y,z | -axis x,y,z -angle d")
		os.Exit(1)
	}

	fmt.Printf("%v\n", rot)
	fmt.Printf("Quaternion (x y z w): %v\n", rot.Quat())
	fmt.Printf("Inverse: %v\n", rot.Invert())

	round := rot.Concat(rot.Invert())
	if round.ApproxEq(rotation.One3[float64](), 1e-9) {
		fmt.Println("Round trip: OK")
	} else {
		fmt.Printf("Round trip: DRIFTED: %v\n", round)
	}
}

func parseTriple(s string) (float64, float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("want three comma-separated numbers, got %q", s)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("bad number %q", p)
		}
		v[i] = f
	}
	return v[0], v[1], v[2], nil
}
