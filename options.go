package shclip

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures Clip, ClipEdge and New.
//
// Example:
//
//	// Log every pass at debug level
//	logger := logrus.New()
//	logger.SetLevel(logrus.DebugLevel)
//	out := shclip.Clip(subject, region, shclip.WithLogger(logger))
type Option func(*options)

type options struct {
	logger      logrus.FieldLogger
	passHook    func(PassStats)
	boundsCheck bool
}

func defaultOptions() options {
	return options{
		logger:      discardLogger(),
		boundsCheck: true,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// discardLogger returns a logger that drops every entry.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// WithLogger sends clipping diagnostics to l. Sizes of the inputs, of each
// pass and of the result are logged at debug level; skipped intersections
// are logged at warn level. Passing nil restores the silent default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l == nil {
			l = discardLogger()
		}
		o.logger = l
	}
}

// PassStats describes one clip pass: one edge of the clip region applied to
// the working polygon.
type PassStats struct {
	// Pass is the zero-based index of the clip edge.
	Pass int
	Edge Edge
	// In and Out are the vertex counts before and after the pass.
	In, Out int
	// Skipped counts crossings dropped because no finite point was found.
	Skipped int
	// Interpolated counts crossings placed by interpolating along the
	// subject edge instead of by line intersection.
	Interpolated int
}

// WithPassHook calls fn after each clip pass that runs. fn runs
// synchronously on the calling goroutine; it must be safe for concurrent use
// if the same Clipper is shared between goroutines.
//
// A region of n edges gives at most n calls, not always n. No pass runs
// when the subject or region is empty or when their bounding boxes do not
// overlap, and the remaining passes are skipped once the working polygon
// becomes empty. The result is the same as if every pass had run.
func WithPassHook(fn func(PassStats)) Option {
	return func(o *options) {
		o.passHook = fn
	}
}

// WithoutBoundsCheck disables the bounding box rejection that Clip performs
// before the first pass, so every pass runs even for disjoint inputs.
func WithoutBoundsCheck() Option {
	return func(o *options) {
		o.boundsCheck = false
	}
}
