// Package mesh defines the triangle-mesh input consumed by peakpath: 3D vertex
// positions plus a flat triangle index list (three indices per triangle).
//
// Overview:
//
//   - Vertex is a float32 (X, Y, Z) triple; Y is the height axis.
//   - Mesh bundles Vertices and Indices and can validate itself against the
//     rules every consumer relies on (len(Indices)%3 == 0, every index in range).
//   - Grid builds a regular (n+1)×(n+1) triangulated heightfield, splitting each
//     quad into (topLeft, bottomLeft, bottomRight) and (topLeft, bottomRight, topRight).
//
// A Mesh is treated as immutable once handed to core.BuildGraph; nothing in
// peakpath writes to Vertices or Indices.
//
// Quick ASCII example (Grid(1, ...)):
//
//	0───1
//	│ ╲ │
//	2───3
//
// yields vertices 0..3 and triangles (0,2,3), (0,3,1).
package mesh
