package shclip

import (
	"math"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// ValidateRegion checks that region can be used as a clip region: at least
// three finite vertices, non-zero area, clockwise winding, and a convex
// boundary that goes around once. Collinear vertices are allowed.
//
// Clip does not call ValidateRegion. The returned error is a
// *multierror.Error listing every problem found; each entry wraps one of
// ErrTooFewVertices, ErrNonFiniteVertex, ErrDegenerate, ErrWinding or
// ErrNotConvex.
func ValidateRegion(region Polygon) error {
	var result *multierror.Error

	n := len(region)
	if n < 3 {
		result = multierror.Append(result, errors.Wrapf(ErrTooFewVertices, "got %d", n))
		return result.ErrorOrNil()
	}

	for i, p := range region {
		if !p.finite() {
			result = multierror.Append(result, errors.Wrapf(ErrNonFiniteVertex, "vertex %d %v", i, p))
		}
	}
	if result != nil {
		return result.ErrorOrNil()
	}

	area := region.SignedArea()
	if area == 0 {
		result = multierror.Append(result, ErrDegenerate)
		return result.ErrorOrNil()
	}
	if area > 0 {
		result = multierror.Append(result, ErrWinding)
	}

	// Every turn must bend the same way as the winding, and the turning
	// angles must add up to one full revolution.
	var total float64
	for i := range region {
		prev := region[(i+n-1)%n]
		cur := region[i]
		next := region[(i+1)%n]

		in := Edge{From: prev, To: cur}
		turn := in.Side(next)
		if turn*area < 0 {
			result = multierror.Append(result, errors.Wrapf(ErrNotConvex, "vertex %d %v", i, cur))
		}

		dot := (cur.X-prev.X)*(next.X-cur.X) + (cur.Y-prev.Y)*(next.Y-cur.Y)
		total += math.Atan2(turn, dot)
	}
	if result == nil && math.Abs(total) > 2*math.Pi+1e-9 {
		result = multierror.Append(result, errors.Wrapf(ErrNotConvex,
			"boundary turns %.0f times", math.Abs(total)/(2*math.Pi)))
	}

	return result.ErrorOrNil()
}
