// Package cost implements the slope-sensitive traversal cost used to weight
// terrain graph edges.
//
// For two adjacent positions a and b:
//
//	dy    = |b.Y - a.Y|
//	dxz   = planar distance over (X, Z), height ignored
//	slope = dy / dxz          (0 when dxz == 0)
//	cost  = 1 + slope * SteepnessFactor
//
// Guarantees:
//
//   - Cost(a, b) == Cost(b, a) (the formula only uses |Δheight| and a symmetric distance).
//   - Cost(a, b) >= 1 for any non-negative SteepnessFactor, so every edge weight is
//     strictly positive and best-first searches over these weights terminate.
//
// The package is pure: no state, no side effects.
package cost
