package cost

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/peakpath/mesh"
)

// DefaultSteepnessFactor scales slope into extra cost on top of the base rate of 1.
const DefaultSteepnessFactor float32 = 2.0

// BaseCost is the cost of traversing a flat edge.
const BaseCost float32 = 1.0

// ErrNegativeSteepness indicates a steepness factor that would allow costs below BaseCost.
var ErrNegativeSteepness = errors.New("cost: steepness factor must be non-negative")

// Func computes the traversal cost between two adjacent positions.
// Implementations used for graph weights must be symmetric and return values >= 1.
type Func func(a, b mesh.Vertex) float32

// Model holds the tuning of the slope cost.
type Model struct {
	// SteepnessFactor multiplies the slope before it is added to BaseCost.
	SteepnessFactor float32
}

// DefaultModel returns a Model with DefaultSteepnessFactor.
func DefaultModel() Model {
	return Model{SteepnessFactor: DefaultSteepnessFactor}
}

// NewModel returns a Model with the given steepness factor.
// Returns ErrNegativeSteepness for negative or NaN factors.
func NewModel(steepness float32) (Model, error) {
	if steepness < 0 || math.IsNaN(float64(steepness)) {
		return Model{}, fmt.Errorf("%w: got %g", ErrNegativeSteepness, steepness)
	}

	return Model{SteepnessFactor: steepness}, nil
}

// Cost returns 1 + Slope(a, b) * m.SteepnessFactor.
func (m Model) Cost(a, b mesh.Vertex) float32 {
	return BaseCost + Slope(a, b)*m.SteepnessFactor
}

// Func adapts m to a Func.
func (m Model) Func() Func {
	return m.Cost
}

// EdgeCost is Cost under DefaultModel.
func EdgeCost(a, b mesh.Vertex) float32 {
	return DefaultModel().Cost(a, b)
}

// Slope returns |Δheight| / planar distance between a and b, or 0 when the
// two positions share the same (X, Z) column.
func Slope(a, b mesh.Vertex) float32 {
	dy := math.Abs(float64(b.Y) - float64(a.Y))
	dxz := PlanarDistance(a, b)
	if dxz <= 0 {
		return 0
	}

	return float32(dy / dxz)
}

// PlanarDistance returns the Euclidean distance between a and b on the X/Z plane.
func PlanarDistance(a, b mesh.Vertex) float64 {
	return planar.Distance(Planar(a), Planar(b))
}

// Planar projects v onto the ground plane as an orb.Point (X, Z).
func Planar(v mesh.Vertex) orb.Point {
	return orb.Point{float64(v.X), float64(v.Z)}
}
