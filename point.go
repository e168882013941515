package shclip

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
)

// Point is a 2D coordinate. Points are values and compare with ==.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("{%v, %v}", p.X, p.Y)
}

// Geom converts p to a geom.Point.
func (p Point) Geom() geom.Point {
	return geom.Point{X: p.X, Y: p.Y}
}

// PointFromGeom converts a geom.Point to a Point.
func PointFromGeom(g geom.Point) Point {
	return Point{X: g.X, Y: g.Y}
}

func (p Point) finite() bool {
	return !math.IsInf(p.X, 0) && !math.IsNaN(p.X) &&
		!math.IsInf(p.Y, 0) && !math.IsNaN(p.Y)
}
