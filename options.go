package kwaymerge

import (
	"log/slog"
	"runtime"
)

// options defines all configuration options for a merge call.
type options struct {
	parallelism int          // Maximum number of concurrent merge tasks
	logger      *slog.Logger // Debug tracing of engine phases; nil disables it
}

// Option is a function that configures the merge options.
type Option func(*options)

// WithParallelism caps the number of merge tasks running concurrently.
// The default is runtime.GOMAXPROCS(0); values below 1 are ignored.
// A cap of 1 runs the whole merge sequentially and yields output identical
// to any other setting; parallelism never changes the result.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.parallelism = n
		}
	}
}

// WithLogger sets a logger for Debug-level tracing of the merge phases.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		parallelism: runtime.GOMAXPROCS(0),
		logger:      nil,
	}
}
