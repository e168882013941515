package shclip

// Edge is a directed edge of a polygon. Its direction decides which
// half-plane counts as inside.
type Edge struct {
	From, To Point
}

// Side returns the 2D cross product of (To - From) and (p - From). It is
// negative when p lies to the right of the edge, positive when p lies to
// the left, and zero when p is on the line through the edge.
func (e Edge) Side(p Point) float64 {
	return (e.To.X-e.From.X)*(p.Y-e.From.Y) - (e.To.Y-e.From.Y)*(p.X-e.From.X)
}

// Inside reports whether p lies strictly to the right of e. For a
// clockwise clip region that is the inside of the region.
//
// A point exactly on the line (Side == 0) is outside, and so is a point
// whose Side is NaN. Clipping relies on this classification being applied
// the same way to every vertex.
func (e Edge) Inside(p Point) bool {
	return e.Side(p) < 0
}

// Degenerate reports whether the edge has zero length.
func (e Edge) Degenerate() bool {
	return e.From == e.To
}
