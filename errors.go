package shclip

import "github.com/pkg/errors"

// Errors returned by Intersect. Test for them with errors.Is.
var (
	ErrParallel  = errors.New("shclip: lines are parallel or coincident")
	ErrNonFinite = errors.New("shclip: intersection is not finite")
)

// Errors collected by ValidateRegion.
var (
	ErrTooFewVertices  = errors.New("shclip: clip region needs at least 3 vertices")
	ErrNonFiniteVertex = errors.New("shclip: clip region vertex is not finite")
	ErrDegenerate      = errors.New("shclip: clip region has zero area")
	ErrWinding         = errors.New("shclip: clip region is not clockwise")
	ErrNotConvex       = errors.New("shclip: clip region is not convex")
)
