package collection

import "github.com/rs/zerolog"

type options struct {
	name   string
	logger zerolog.Logger
}

type Option func(o *options)

// WithName sets the name reported in log events.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger, by default nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) options {
	o := options{
		name:   "default",
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
