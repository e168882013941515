package shclip

import (
	"math"

	"github.com/ctessum/geom"
)

// Polygon is an ordered, implicitly closed sequence of vertices. The edge
// from the last vertex back to the first is part of the boundary, and the
// vertex order encodes the winding direction.
type Polygon []Point

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p)
}

// Edge returns the directed edge from vertex i to its successor, wrapping
// around at the end. It panics if p is empty.
func (p Polygon) Edge(i int) Edge {
	return Edge{From: p[i], To: p[(i+1)%len(p)]}
}

// Edges returns every directed edge of p in vertex order.
func (p Polygon) Edges() []Edge {
	edges := make([]Edge, len(p))
	for i := range p {
		edges[i] = p.Edge(i)
	}
	return edges
}

// SignedArea returns the shoelace area of p. It is positive when p winds
// counter-clockwise in a y-up frame and negative when it winds clockwise.
// see http://www.mathopenref.com/coordpolygonarea2.html
func (p Polygon) SignedArea() float64 {
	if len(p) < 3 {
		return 0
	}
	hi := len(p) - 1
	a := (p[hi].X + p[0].X) * (p[0].Y - p[hi].Y)
	for i := 0; i < hi; i++ {
		a += (p[i].X + p[i+1].X) * (p[i+1].Y - p[i].Y)
	}
	return a / 2
}

// Area returns the unsigned area of p.
func (p Polygon) Area() float64 {
	if len(p) < 3 {
		return 0
	}
	return math.Abs(p.Geom().Area())
}

// IsClockwise reports whether p winds clockwise. Degenerate polygons with
// zero area are neither clockwise nor counter-clockwise.
func (p Polygon) IsClockwise() bool {
	return p.SignedArea() < 0
}

// Clockwise returns p if it already winds clockwise (or has no area), and a
// reversed copy otherwise. Use it to prepare a convex clip region whose
// winding is unknown.
func (p Polygon) Clockwise() Polygon {
	if p.SignedArea() > 0 {
		return p.Reverse()
	}
	return p
}

// Reverse returns a new polygon with the vertex order reversed.
func (p Polygon) Reverse() Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

// Copy returns a new polygon with the same vertices.
func (p Polygon) Copy() Polygon {
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Equal reports whether p and q hold exactly the same vertices in the same
// order, starting at the same vertex.
func (p Polygon) Equal(q Polygon) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// EqualRotated reports whether p and q trace the same boundary: the same
// vertices in the same cyclic order, possibly starting at a different
// vertex.
func (p Polygon) EqualRotated(q Polygon) bool {
	if len(p) != len(q) {
		return false
	}
	if len(p) == 0 {
		return true
	}
	for shift := range q {
		if q[shift] != p[0] {
			continue
		}
		match := true
		for i := range p {
			if p[i] != q[(i+shift)%len(q)] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// Geom converts p to a single-ring geom.Polygon.
func (p Polygon) Geom() geom.Polygon {
	ring := make([]geom.Point, len(p))
	for i, pt := range p {
		ring[i] = pt.Geom()
	}
	return geom.Polygon{ring}
}

// PolygonFromGeom returns the outer ring of g. Holes are ignored.
func PolygonFromGeom(g geom.Polygon) Polygon {
	if len(g) == 0 {
		return Polygon{}
	}
	out := make(Polygon, len(g[0]))
	for i, pt := range g[0] {
		out[i] = PointFromGeom(pt)
	}
	return out
}

// Bounds returns the axis-aligned bounding box of p.
func (p Polygon) Bounds() *geom.Bounds {
	return p.Geom().Bounds()
}
