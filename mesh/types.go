package mesh

import (
	"errors"
	"math"
)

// Sentinel errors for mesh validation and construction.
var (
	// ErrIndexCount indicates the index buffer length is not a multiple of three.
	ErrIndexCount = errors.New("mesh: index count is not a multiple of 3")

	// ErrIndexRange indicates an index refers past the end of the vertex list.
	ErrIndexRange = errors.New("mesh: vertex index out of range")

	// ErrGridSize indicates a grid resolution below one quad per side.
	ErrGridSize = errors.New("mesh: grid resolution must be at least 1")
)

// Vertex is an immutable 3D position. Y is the height axis; X and Z span the ground plane.
type Vertex struct {
	X, Y, Z float32
}

// Add returns v + o.
func (v Vertex) Add(o Vertex) Vertex {
	return Vertex{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vertex) Sub(o Vertex) Vertex {
	return Vertex{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Lift returns v raised by dy along the height axis.
func (v Vertex) Lift(dy float32) Vertex {
	return Vertex{X: v.X, Y: v.Y + dy, Z: v.Z}
}

// Length returns the Euclidean norm of v.
func (v Vertex) Length() float32 {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)

	return float32(math.Sqrt(x*x + y*y + z*z))
}

// Distance returns the 3D Euclidean distance between v and o.
func (v Vertex) Distance(o Vertex) float32 {
	return v.Sub(o).Length()
}

// Mesh is a triangle list over Vertices. Indices holds three entries per triangle.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}
