package queens

import (
	"log/slog"

	"github.com/hupe1980/queens/solver"
)

type options struct {
	logger     *Logger
	solverOpts []solver.Option
}

// Option configures facade-level solve behavior.
type Option func(*options)

// WithLogger configures structured logging for parse and solve operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMaxAttempts imposes a search budget on the solver; hitting it yields
// solver.OutcomeBudgetExceeded rather than a claim of unsolvability.
func WithMaxAttempts(n uint64) Option {
	return func(o *options) {
		o.solverOpts = append(o.solverOpts, solver.WithMaxAttempts(n))
	}
}

// WithProgress registers a rate-limited attempt-count callback.
func WithProgress(fn func(attempts uint64)) Option {
	return func(o *options) {
		o.solverOpts = append(o.solverOpts, solver.WithProgress(fn))
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
