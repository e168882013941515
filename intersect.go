package shclip

import "github.com/pkg/errors"

// Intersect returns the point where the infinite line through a1 and a2
// crosses the infinite line through b1 and b2.
//
// Parallel or coincident lines have no single crossing and yield
// ErrParallel. A crossing that overflows or involves NaN coordinates yields
// ErrNonFinite. The returned Point is the zero value whenever err != nil.
func Intersect(a1, a2, b1, b2 Point) (Point, error) {
	x1, y1, x2, y2 := a1.X, a1.Y, a2.X, a2.Y
	x3, y3, x4, y4 := b1.X, b1.Y, b2.X, b2.Y

	den := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if den == 0 {
		return Point{}, errors.Wrapf(ErrParallel, "lines %v-%v and %v-%v", a1, a2, b1, b2)
	}

	da := x1*y2 - y1*x2
	db := x3*y4 - y3*x4
	p := Point{
		X: (da*(x3-x4) - (x1-x2)*db) / den,
		Y: (da*(y3-y4) - (y1-y2)*db) / den,
	}
	if !p.finite() {
		return Point{}, errors.Wrapf(ErrNonFinite, "lines %v-%v and %v-%v", a1, a2, b1, b2)
	}
	return p, nil
}
