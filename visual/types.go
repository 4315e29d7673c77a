package visual

import "github.com/katalvlaran/peakpath/mesh"

// RGB is a linear color with components in [0, 1].
type RGB struct {
	R, G, B float32
}

// Default colors.
var (
	Green  = RGB{R: 0.1, G: 0.9, B: 0.1}
	Yellow = RGB{R: 0.95, G: 0.8, B: 0.2}
	Red    = RGB{R: 0.9, G: 0.15, B: 0.15}
)

// Default thresholds and lifts.
const (
	DefaultEasyMax     float32 = 0.2
	DefaultModerateMax float32 = 0.5
	DefaultLineLift    float32 = 0.01
	DefaultPointLift   float32 = 0.02
)

// LineSegment is one colored path segment between two lifted positions.
type LineSegment struct {
	A, B  mesh.Vertex
	Color RGB
}

// Point is one colored, lifted node marker.
type Point struct {
	Position mesh.Vertex
	Color    RGB
}

// Palette holds the slope buckets, their colors and the vertical lifts.
type Palette struct {
	// EasyMax is the exclusive upper slope bound of the Easy bucket.
	EasyMax float32
	// ModerateMax is the exclusive upper slope bound of the Moderate bucket.
	ModerateMax float32

	Easy, Moderate, Hard RGB

	// LineLift raises path segment endpoints; PointLift raises point markers.
	LineLift, PointLift float32
}

// DefaultPalette returns the green/yellow/red palette with 0.2/0.5 cutoffs
// and 0.01/0.02 lifts.
func DefaultPalette() Palette {
	return Palette{
		EasyMax:     DefaultEasyMax,
		ModerateMax: DefaultModerateMax,
		Easy:        Green,
		Moderate:    Yellow,
		Hard:        Red,
		LineLift:    DefaultLineLift,
		PointLift:   DefaultPointLift,
	}
}

// SlopeColor buckets a slope: s < EasyMax → Easy, s < ModerateMax → Moderate, else Hard.
func (p Palette) SlopeColor(s float32) RGB {
	switch {
	case s < p.EasyMax:
		return p.Easy
	case s < p.ModerateMax:
		return p.Moderate
	default:
		return p.Hard
	}
}

// Option customizes a conversion.
type Option func(*Palette)

// WithPalette replaces the whole palette.
func WithPalette(p Palette) Option {
	return func(dst *Palette) { *dst = p }
}

// WithLift overrides the line and point lifts.
func WithLift(line, point float32) Option {
	return func(p *Palette) {
		p.LineLift = line
		p.PointLift = point
	}
}

func resolve(opts []Option) Palette {
	p := DefaultPalette()
	for _, opt := range opts {
		opt(&p)
	}

	return p
}
