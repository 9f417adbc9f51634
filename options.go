package apgamma

import "log/slog"

const (
	// guardBits is the precision elevation applied by the dispatchers
	// before running a series, absorbed again when rounding back to the
	// caller's precision.
	guardBits = 20

	// maxSeriesTerms bounds the Ei series kernels. Process-wide and
	// fixed; WithMaxTerms can lower it per call for diagnostics.
	maxSeriesTerms = 10000
)

// config is per-call evaluation configuration, immutable once the entry
// point has applied its options.
type config struct {
	maxTerms int
	verbose  int
	log      *slog.Logger
}

// Option adjusts diagnostics or series limits for a single call. Options
// never change the numeric result of a converged evaluation.
type Option func(*config)

// WithVerbose sets the diagnostic trace level (0 = silent, 1 = branch
// decisions, 2 = per-term series progress).
func WithVerbose(level int) Option {
	return func(c *config) { c.verbose = level }
}

// WithLogger routes diagnostic traces to l instead of slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.log = l }
}

// WithMaxTerms overrides the series term cap. Values above the process
// cap or below 1 are ignored.
func WithMaxTerms(n int) Option {
	return func(c *config) {
		if n >= 1 && n <= maxSeriesTerms {
			c.maxTerms = n
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{maxTerms: maxSeriesTerms}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *config) tracef(level int, msg string, args ...any) {
	if c.verbose < level {
		return
	}
	l := c.log
	if l == nil {
		l = slog.Default()
	}
	l.Debug(msg, args...)
}
