package solver

import (
	"io"
	"log/slog"
	"time"
)

type options struct {
	logger           *slog.Logger
	maxAttempts      uint64
	progress         func(attempts uint64)
	progressInterval time.Duration
}

// Option configures solver behavior.
type Option func(*options)

// WithLogger configures structured logging for solve runs.
// Pass nil to disable logging.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxAttempts imposes a search budget: solving stops after n examined
// combinations with OutcomeBudgetExceeded. A budget stop is always reported
// distinctly from exhaustive unsolvability. n == 0 means unbounded.
func WithMaxAttempts(n uint64) Option {
	return func(o *options) {
		o.maxAttempts = n
	}
}

// WithProgress registers a callback invoked with the current attempt count
// while the search runs. Invocations are rate-limited (see
// WithProgressInterval); the callback must not retain or block.
func WithProgress(fn func(attempts uint64)) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// WithProgressInterval sets the minimum interval between progress callback
// invocations. Default is one second.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.progressInterval = d
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		progressInterval: time.Second,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
