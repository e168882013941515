package shclip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unitSquare winds clockwise in a y-up frame.
var unitSquare = Polygon{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)}

func TestPolygonSignedArea(t *testing.T) {
	tests := []struct {
		name string
		p    Polygon
		want float64
	}{
		{"clockwise square", unitSquare, -1},
		{"counter-clockwise square", unitSquare.Reverse(), 1},
		{"triangle", Polygon{Pt(0, 0), Pt(4, 0), Pt(0, 3)}, 6},
		{"two points", Polygon{Pt(0, 0), Pt(1, 1)}, 0},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.p.SignedArea(), 1e-12)
		})
	}
}

func TestPolygonArea(t *testing.T) {
	assert.InDelta(t, 1.0, unitSquare.Area(), 1e-12)
	assert.InDelta(t, 1.0, unitSquare.Reverse().Area(), 1e-12)
	assert.InDelta(t, 6.0, Polygon{Pt(0, 0), Pt(4, 0), Pt(0, 3)}.Area(), 1e-12)
	assert.Zero(t, Polygon{Pt(0, 0)}.Area())
}

func TestPolygonWinding(t *testing.T) {
	assert.True(t, unitSquare.IsClockwise())
	assert.False(t, unitSquare.Reverse().IsClockwise())

	ccw := unitSquare.Reverse()
	cw := ccw.Clockwise()
	assert.True(t, cw.IsClockwise())
	assert.True(t, cw.EqualRotated(unitSquare))
	// Clockwise input is returned as is.
	assert.True(t, unitSquare.Clockwise().Equal(unitSquare))
}

func TestPolygonReverseDoesNotAlias(t *testing.T) {
	p := unitSquare.Copy()
	r := p.Reverse()
	r[0] = Pt(9, 9)
	assert.True(t, p.Equal(unitSquare))
}

func TestPolygonEdges(t *testing.T) {
	edges := unitSquare.Edges()
	require.Len(t, edges, 4)
	assert.Equal(t, Edge{From: Pt(0, 0), To: Pt(0, 1)}, edges[0])
	assert.Equal(t, Edge{From: Pt(1, 0), To: Pt(0, 0)}, edges[3])
	assert.Equal(t, edges[3], unitSquare.Edge(3))
	assert.Empty(t, Polygon{}.Edges())
}

func TestPolygonEqualRotated(t *testing.T) {
	rotated := Polygon{Pt(1, 1), Pt(1, 0), Pt(0, 0), Pt(0, 1)}

	assert.True(t, unitSquare.EqualRotated(rotated))
	assert.False(t, unitSquare.Equal(rotated))
	assert.False(t, unitSquare.EqualRotated(unitSquare.Reverse()))
	assert.False(t, unitSquare.EqualRotated(unitSquare[:3]))
	assert.True(t, Polygon{}.EqualRotated(nil))

	// Repeated vertices must not confuse the search for a start.
	p := Polygon{Pt(0, 0), Pt(0, 0), Pt(1, 0)}
	q := Polygon{Pt(0, 0), Pt(1, 0), Pt(0, 0)}
	assert.True(t, p.EqualRotated(q))
}

func TestPolygonBounds(t *testing.T) {
	b := Polygon{Pt(-1, 2), Pt(3, -4), Pt(0, 0)}.Bounds()
	assert.Equal(t, Pt(-1, -4), PointFromGeom(b.Min))
	assert.Equal(t, Pt(3, 2), PointFromGeom(b.Max))
}

func TestPolygonGeomRoundTrip(t *testing.T) {
	g := unitSquare.Geom()
	require.Len(t, g, 1)
	assert.True(t, PolygonFromGeom(g).Equal(unitSquare))
	assert.Empty(t, PolygonFromGeom(nil))
}
