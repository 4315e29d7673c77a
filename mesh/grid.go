package mesh

import "fmt"

// HeightFunc returns the height (Y) at planar coordinate (x, z).
type HeightFunc func(x, z float32) float32

// Flat is a HeightFunc that always returns 0.
func Flat(_, _ float32) float32 { return 0 }

// Grid builds an n×n-quad triangulated heightfield spanning [-size, size] on X and Z.
//
// Vertices are emitted row-major: vertex i*(n+1)+j sits at
// x = i/n*2*size - size, z = j/n*2*size - size, y = height(x, z).
// Each quad (topLeft, topRight, bottomLeft, bottomRight) contributes triangles
// (topLeft, bottomLeft, bottomRight) and (topLeft, bottomRight, topRight).
//
// A nil height means Flat. Returns ErrGridSize if n < 1.
// Complexity: O(n²) time and memory.
func Grid(n int, size float32, height HeightFunc) (*Mesh, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrGridSize, n)
	}
	if height == nil {
		height = Flat
	}

	side := n + 1
	vertices := make([]Vertex, 0, side*side)
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			x := float32(i)/float32(n)*2*size - size
			z := float32(j)/float32(n)*2*size - size
			vertices = append(vertices, Vertex{X: x, Y: height(x, z), Z: z})
		}
	}

	indices := make([]uint32, 0, n*n*6)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			topLeft := uint32(i*side + j)
			topRight := topLeft + 1
			bottomLeft := uint32((i+1)*side + j)
			bottomRight := bottomLeft + 1

			indices = append(indices,
				topLeft, bottomLeft, bottomRight,
				topLeft, bottomRight, topRight,
			)
		}
	}

	return &Mesh{Vertices: vertices, Indices: indices}, nil
}
