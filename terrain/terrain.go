// Package terrain generates the noise-driven mountain heightfield that the demo
// command searches over. It is an input generator only: the core packages accept
// any mesh.Mesh and never depend on this package.
//
// Shape, per grid vertex at (x, z) ∈ [-1, 1]²:
//
//	n       = perlin(x*Scale, z*Scale), clamped to [-1, 1]
//	n       = n*ValleyShrink when n < 0       (flatten valleys, keep sign)
//	falloff = 1 - clamp(|(x,z)| / Radius, 0, 1) (peak near the center)
//	y       = Amplitude * |n*falloff|^Exponent
package terrain

import (
	"errors"
	"fmt"
	"math"

	perlin "github.com/aquilax/go-perlin"

	"github.com/katalvlaran/peakpath/mesh"
)

// ErrBadOptions indicates non-positive resolution, scale, radius or exponent, or negative amplitude.
var ErrBadOptions = errors.New("terrain: invalid options")

// Options shapes the generated heightfield.
type Options struct {
	N            int     // quads per side; the mesh has (N+1)² vertices
	Seed         int64   // noise seed
	Scale        float64 // noise zoom
	Amplitude    float64 // maximum height
	Exponent     float64 // peak sharpness
	Radius       float64 // radial falloff distance from the center
	ValleyShrink float64 // multiplier for negative noise
	Alpha        float64 // perlin weight when summing octaves
	Beta         float64 // perlin harmonic scaling
	Octaves      int32   // perlin octave count
}

// DefaultOptions returns a 100×100-quad mountain with the classic shaping constants.
func DefaultOptions() Options {
	return Options{
		N:            100,
		Seed:         2022053872,
		Scale:        3.0,
		Amplitude:    5.0,
		Exponent:     1.5,
		Radius:       1.0,
		ValleyShrink: 0.2,
		Alpha:        2,
		Beta:         2,
		Octaves:      3,
	}
}

// Validate reports option combinations that cannot produce a mesh.
func (o Options) Validate() error {
	switch {
	case o.N < 1:
		return fmt.Errorf("%w: N=%d", ErrBadOptions, o.N)
	case o.Scale <= 0:
		return fmt.Errorf("%w: Scale=%g", ErrBadOptions, o.Scale)
	case o.Radius <= 0:
		return fmt.Errorf("%w: Radius=%g", ErrBadOptions, o.Radius)
	case o.Exponent <= 0:
		return fmt.Errorf("%w: Exponent=%g", ErrBadOptions, o.Exponent)
	case o.Amplitude < 0:
		return fmt.Errorf("%w: Amplitude=%g", ErrBadOptions, o.Amplitude)
	case o.Octaves < 1:
		return fmt.Errorf("%w: Octaves=%d", ErrBadOptions, o.Octaves)
	}

	return nil
}

// Generate builds the heightfield mesh and returns it with its maximum height.
// Output is deterministic for a given Options value.
func Generate(opts Options) (*mesh.Mesh, float32, error) {
	if err := opts.Validate(); err != nil {
		return nil, 0, err
	}

	noise := perlin.NewPerlin(opts.Alpha, opts.Beta, opts.Octaves, opts.Seed)
	height := func(x, z float32) float32 {
		fx, fz := float64(x), float64(z)
		n := clamp(noise.Noise2D(fx*opts.Scale, fz*opts.Scale), -1, 1)
		if n < 0 {
			n *= opts.ValleyShrink
		}
		falloff := 1 - clamp(math.Hypot(fx, fz)/opts.Radius, 0, 1)
		shaped := math.Pow(math.Abs(n*falloff), opts.Exponent)

		return float32(opts.Amplitude * shaped)
	}

	m, err := mesh.Grid(opts.N, 1, height)
	if err != nil {
		return nil, 0, err
	}

	return m, m.MaxHeight(), nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
