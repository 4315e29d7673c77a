package mesh

import "fmt"

// New wraps vertices and indices into a Mesh after validating them.
// The slices are not copied; callers must not mutate them afterwards.
func New(vertices []Vertex, indices []uint32) (*Mesh, error) {
	m := &Mesh{Vertices: vertices, Indices: indices}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate checks the triangle-list invariants:
//
//   - len(Indices) % 3 == 0 (else ErrIndexCount)
//   - every index < len(Vertices) (else ErrIndexRange)
//
// Out-of-range indices are reported, never clamped.
// Complexity: O(len(Indices)).
func (m *Mesh) Validate() error {
	return ValidateIndices(len(m.Vertices), m.Indices)
}

// ValidateIndices applies the Validate rules to a raw index buffer
// against a vertex count.
func ValidateIndices(vertexCount int, indices []uint32) error {
	if len(indices)%3 != 0 {
		return fmt.Errorf("%w: got %d indices", ErrIndexCount, len(indices))
	}
	for pos, idx := range indices {
		if uint64(idx) >= uint64(vertexCount) {
			return fmt.Errorf("%w: indices[%d]=%d, vertex count %d", ErrIndexRange, pos, idx, vertexCount)
		}
	}

	return nil
}

// TriangleCount returns len(Indices)/3.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the three vertex indices of triangle t.
// Panics if t is out of range, like a slice access.
func (m *Mesh) Triangle(t int) (a, b, c uint32) {
	base := 3 * t

	return m.Indices[base], m.Indices[base+1], m.Indices[base+2]
}

// HeightRange returns the minimum and maximum Y over all vertices.
// An empty mesh yields (0, 0).
func (m *Mesh) HeightRange() (minY, maxY float32) {
	if len(m.Vertices) == 0 {
		return 0, 0
	}
	minY, maxY = m.Vertices[0].Y, m.Vertices[0].Y
	for _, v := range m.Vertices[1:] {
		minY = min(minY, v.Y)
		maxY = max(maxY, v.Y)
	}

	return minY, maxY
}

// MaxHeight returns the highest Y over all vertices (0 for an empty mesh).
// Shading stages use it to normalize colors; graph building ignores it.
func (m *Mesh) MaxHeight() float32 {
	_, maxY := m.HeightRange()

	return maxY
}
