package polysplit

// Options configures Split's behavior. The zero value (DefaultOptions)
// imposes no distance threshold: every projection is an admissible
// candidate anchor.
type Options struct {
	// Threshold caps the distance a reference point may be from a
	// candidate cut point; only meaningful when HasThreshold is true.
	Threshold float64

	// HasThreshold reports whether Threshold should be enforced. Kept
	// separate from a sentinel float value (e.g. +Inf) so the zero value
	// of Options is unambiguous and a threshold of 0 is expressible.
	HasThreshold bool
}

// Option is a functional option mutating Options, matching the
// configuration style used throughout this corpus (dijkstra.Option,
// dtw.Options).
type Option func(*Options)

// WithThreshold sets the optional distance threshold τ (spec.md §1, §6).
// Projections farther than tau from their reference point are excluded
// from the cut-point catalog and the layered graph.
func WithThreshold(tau float64) Option {
	return func(o *Options) {
		o.Threshold = tau
		o.HasThreshold = true
	}
}

// DefaultOptions returns an Options with no distance threshold.
func DefaultOptions() Options {
	return Options{}
}
