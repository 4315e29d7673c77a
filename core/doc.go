// Package core provides the immutable terrain graph that peakpath searches over.
//
// A Graph is built once from a triangle mesh (vertex positions + triangle index
// list) and never mutated afterwards, so it can be shared read-only by any number
// of search engines and visualization passes without locking.
//
// Model:
//
//   - NodeIndex is a node's identity and equals the index of its originating vertex.
//   - Node holds the vertex Position and a Neighbors list of directed Edge records.
//   - Every triangle (a,b,c) contributes the undirected edges a-b, b-c and c-a, each
//     stored as two directed records carrying one shared cost.
//   - An edge shared by two triangles is inserted once per triangle. Neighbor lists
//     are therefore NOT deduplicated; shortest-path algorithms are unaffected since
//     relaxation over a duplicate record is idempotent.
//
// Construction:
//
//	g, err := core.BuildGraph(vertices, indices)                      // default slope cost
//	g, err := core.BuildGraph(vertices, indices, core.WithCostModel(m)) // tuned steepness
//
// Errors:
//
//	ErrInvalidMesh - index buffer length is not a multiple of 3, or an index is
//	                 out of range. Never clamped; construction fails as a whole.
//
// Complexity:
//
//	– Time:  O(V + T) where T = triangle count.
//	– Space: O(V + 6T) directed edge records.
package core
