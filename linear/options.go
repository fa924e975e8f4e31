package linear

import "github.com/YuminosukeSato/farefit/pkg/log"

// Option is a function that configures a Regressor
type Option func(*Regressor)

// WithRcond sets the relative cutoff below which singular values count as zero.
// Non-positive values select DefaultRcond.
func WithRcond(rcond float64) Option {
	return func(r *Regressor) {
		r.rcond = rcond
	}
}

// WithLogger sets the logger used for fit diagnostics
func WithLogger(logger log.Logger) Option {
	return func(r *Regressor) {
		r.logger = logger
	}
}

// WithParallelThreshold sets the row count above which design-matrix assembly
// is split across goroutines
func WithParallelThreshold(rows int) Option {
	return func(r *Regressor) {
		r.parallelThreshold = rows
	}
}
