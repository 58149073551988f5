package contentstream

import (
	"github.com/rs/zerolog"
)

// Option configures a Composer.
type Option func(*options)

type options struct {
	logger zerolog.Logger
	maxOps int
}

// defaultOptions returns a silent, unbounded configuration.
func defaultOptions() options {
	return options{
		logger: zerolog.Nop(),
		maxOps: 0,
	}
}

// WithLogger sets the logger for debug events such as path rollbacks and
// constructs closed by the end of the stream.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMaxOperations limits the number of operations a composer will parse.
// Zero or a negative value means no limit.
func WithMaxOperations(n int) Option {
	return func(o *options) {
		o.maxOps = n
	}
}
