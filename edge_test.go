package shclip

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeSide(t *testing.T) {
	// Upward edge along the y axis: right is +x.
	e := Edge{From: Pt(0, 0), To: Pt(0, 1)}

	tests := []struct {
		name   string
		p      Point
		side   float64
		inside bool
	}{
		{"right", Pt(2, 5), -2, true},
		{"left", Pt(-3, 0.5), 3, false},
		{"on line", Pt(0, 0.5), 0, false},
		{"on line beyond edge", Pt(0, 10), 0, false},
		{"edge start", Pt(0, 0), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.side, e.Side(tt.p))
			assert.Equal(t, tt.inside, e.Inside(tt.p))
		})
	}
}

func TestEdgeInsideNaN(t *testing.T) {
	e := Edge{From: Pt(0, 0), To: Pt(0, 1)}
	assert.False(t, e.Inside(Pt(math.NaN(), 0)))
}

func TestEdgeDegenerate(t *testing.T) {
	e := Edge{From: Pt(1, 1), To: Pt(1, 1)}
	assert.True(t, e.Degenerate())
	// Every point is on the "line" of a zero-length edge.
	assert.False(t, e.Inside(Pt(5, -5)))
	assert.False(t, Edge{From: Pt(0, 0), To: Pt(1, 0)}.Degenerate())
}
