package interpreter

import (
	"github.com/rs/zerolog"
)

type interpreterOpts struct {
	logger zerolog.Logger
}

var defaultInterpreterOpts = interpreterOpts{
	logger: zerolog.Nop(),
}

type InterpreterOption func(*interpreterOpts)

// WithLogger sets the logger receiving a debug event per evaluated expression.
func WithLogger(logger zerolog.Logger) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.logger = logger
	}
}

func newInterpreterOpts(options ...InterpreterOption) *interpreterOpts {
	opts := defaultInterpreterOpts
	for _, opt := range options {
		opt(&opts)
	}

	return &opts
}
