package shclip

import (
	"math"

	"github.com/ctessum/geom"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

//===============================================================================
// Edge clipping
//===============================================================================

// ClipEdge restricts subject to the inside half-plane of the directed edge e,
// that is the points strictly to its right. It walks every edge i -> k of
// subject, wrapping from the last vertex to the first, and emits:
//
//	i inside,  k inside:  k
//	i outside, k inside:  the crossing with e, then k
//	i inside,  k outside: the crossing with e
//	i outside, k outside: nothing
//
// Points on the line through e are outside. A crossing is always placed on
// the subject edge i -> k; see segmentCrossing. If no finite crossing can
// be computed it is left out of the result and reported to the logger and
// pass hook. subject is never modified.
func ClipEdge(subject Polygon, e Edge, opts ...Option) Polygon {
	o := buildOptions(opts)
	out, stats := clipEdge(subject, e, 0, &o)
	if o.passHook != nil {
		o.passHook(stats)
	}
	return out
}

func clipEdge(subject Polygon, e Edge, pass int, o *options) (Polygon, PassStats) {
	stats := PassStats{Pass: pass, Edge: e, In: len(subject)}
	out := make(Polygon, 0, len(subject)+1)

	crossing := func(i, k Point) {
		x, interpolated, err := segmentCrossing(e, i, k)
		if err != nil {
			stats.Skipped++
			o.logger.WithFields(logrus.Fields{
				"action": "clip_intersection_skipped",
				"pass":   pass,
			}).WithError(err).Warn("dropping crossing point")
			return
		}
		if interpolated {
			stats.Interpolated++
			o.logger.WithFields(logrus.Fields{
				"action": "clip_intersection_interpolated",
				"pass":   pass,
			}).Debug("crossing point moved onto subject edge")
		}
		out = append(out, x)
	}

	for idx := range subject {
		i := subject[idx]
		k := subject[(idx+1)%len(subject)]
		iIn, kIn := e.Inside(i), e.Inside(k)

		switch {
		case iIn && kIn:
			out = append(out, k)
		case !iIn && kIn:
			crossing(i, k)
			out = append(out, k)
		case iIn && !kIn:
			crossing(i, k)
		}
	}

	stats.Out = len(out)
	return out, stats
}

// segmentTolerance is the slack, relative to the largest coordinate of the
// subject edge, allowed between a line crossing and the edge's bounding box.
const segmentTolerance = 1e-12

// segmentCrossing returns the point where the subject edge i -> k crosses
// the line through e. i and k lie on opposite sides of e, so the crossing
// lies on the segment between them.
//
// The line-line formula of Intersect is used when its result falls within
// the bounding box of i -> k. When both ends are on or very near the clip
// line the formula is badly conditioned and can land anywhere along that
// line; the crossing is then interpolated along the segment from the side
// values of i and k, and interpolated is true. err is non-nil only when
// neither way yields a finite point.
func segmentCrossing(e Edge, i, k Point) (x Point, interpolated bool, err error) {
	x, err = Intersect(e.From, e.To, i, k)
	if err == nil && withinSegmentBounds(x, i, k) {
		return x, false, nil
	}

	x = interpolateCrossing(e, i, k)
	if !x.finite() {
		if err == nil {
			err = errors.Wrapf(ErrNonFinite, "interpolating %v-%v across %v-%v", i, k, e.From, e.To)
		}
		return Point{}, false, err
	}
	return x, true, nil
}

// interpolateCrossing returns i + t*(k-i) where t is where the side value
// changes sign, clamped to [0, 1].
func interpolateCrossing(e Edge, i, k Point) Point {
	si, sk := e.Side(i), e.Side(k)
	t := si / (si - sk)
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	return Point{X: i.X + t*(k.X-i.X), Y: i.Y + t*(k.Y-i.Y)}
}

// withinSegmentBounds reports whether x lies in the bounding box of the
// segment i -> k, widened by segmentTolerance.
func withinSegmentBounds(x, i, k Point) bool {
	scale := math.Max(1, math.Max(
		math.Max(math.Abs(i.X), math.Abs(i.Y)),
		math.Max(math.Abs(k.X), math.Abs(k.Y))))
	tol := segmentTolerance * scale

	return x.X >= math.Min(i.X, k.X)-tol && x.X <= math.Max(i.X, k.X)+tol &&
		x.Y >= math.Min(i.Y, k.Y)-tol && x.Y <= math.Max(i.Y, k.Y)+tol
}

//===============================================================================
// Polygon clipping
//===============================================================================

// Clipper clips subject polygons against one convex clip region. A Clipper
// is immutable and may be used from several goroutines at once.
type Clipper struct {
	region Polygon
	bounds *geom.Bounds
	opts   options
}

// New returns a Clipper for region. The region must be convex and wound
// clockwise; New does not check this (see ValidateRegion). region is copied.
func New(region Polygon, opts ...Option) *Clipper {
	c := &Clipper{
		region: region.Copy(),
		opts:   buildOptions(opts),
	}
	if len(c.region) > 0 {
		c.bounds = c.region.Bounds()
	}
	return c
}

// Region returns a copy of the clip region.
func (c *Clipper) Region() Polygon {
	return c.region.Copy()
}

// Clip returns the part of subject inside the clip region. The result is a
// new polygon and may be empty. An empty subject or an empty region yields
// an empty result.
func (c *Clipper) Clip(subject Polygon) Polygon {
	logger := c.opts.logger
	logger.WithFields(logrus.Fields{
		"action":       "clip_start",
		"region_size":  len(c.region),
		"subject_size": len(subject),
	}).Debug("clipping polygon")

	if len(subject) == 0 || len(c.region) == 0 {
		return Polygon{}
	}

	if c.opts.boundsCheck && !subject.Bounds().Overlaps(c.bounds) {
		logger.WithField("action", "clip_rejected_bounds").
			Debug("subject and clip region bounds do not overlap")
		return Polygon{}
	}

	working := subject
	for pass := range c.region {
		// Nothing is left to clip; the remaining passes would return
		// empty polygons too.
		if len(working) == 0 {
			break
		}

		var stats PassStats
		working, stats = clipEdge(working, c.region.Edge(pass), pass, &c.opts)

		logger.WithFields(logrus.Fields{
			"action":  "clip_pass",
			"pass":    pass,
			"in_size": stats.In,
			"size":    stats.Out,
		}).Debug("clip pass done")
		if c.opts.passHook != nil {
			c.opts.passHook(stats)
		}
	}

	logger.WithFields(logrus.Fields{
		"action": "clip_done",
		"size":   len(working),
	}).Debug("clipped polygon")
	return working
}

// Clip returns the intersection of subject with the convex, clockwise clip
// region. It is shorthand for New(region, opts...).Clip(subject).
func Clip(subject, region Polygon, opts ...Option) Polygon {
	return New(region, opts...).Clip(subject)
}
