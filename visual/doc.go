// Package visual converts graph node sequences into renderer-agnostic geometry:
// colored line segments for paths and colored points for visited/frontier sets.
//
// Nothing here talks to a GPU. Output is plain records (LineSegment, Point) or
// interleaved float buffers in [x y z r g b] vertex layout, ready for any
// line/point renderer to upload.
//
// Path colors are re-derived from terrain slope (cost.Slope) for each segment:
//
//	slope < 0.2        → green  (easy)
//	0.2 <= slope < 0.5 → yellow (moderate)
//	slope >= 0.5       → red    (hard)
//
// Every emitted position is lifted on the height axis (0.01 for lines, 0.02 for
// points by default) so the overlay does not z-fight with the terrain surface.
package visual
