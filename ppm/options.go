// SPDX-License-Identifier: MIT

package ppm

import (
	"context"
	"log/slog"
)

// DefaultMaxLineLength is the exclusive upper bound on the length of a pixel
// line, trailing separator included.
const DefaultMaxLineLength = 70

// MinMaxLineLength is the smallest accepted line limit: one full "255 "
// token plus one.
const MinMaxLineLength = 5

const (
	panicMaxLineLengthInvalid = "ppm: WithMaxLineLength: n must be >= MinMaxLineLength"
	panicLoggerNil            = "ppm: WithLogger: logger must not be nil"
)

// Option mutates encoder options.
type Option func(*Options)

// Options holds the effective encoder configuration. Fields are unexported;
// callers pass ...Option.
type Options struct {
	maxLineLength int
	logger        *slog.Logger
}

// WithMaxLineLength sets the exclusive line length bound.
// Panics if n < MinMaxLineLength.
func WithMaxLineLength(n int) Option {
	if n < MinMaxLineLength {
		panic(panicMaxLineLengthInvalid)
	}

	return func(o *Options) { o.maxLineLength = n }
}

// WithLogger routes encoder and file diagnostics to l. Without it nothing is logged.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// gatherOptions applies user setters over the defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		maxLineLength: DefaultMaxLineLength,
		logger:        slog.New(nopHandler{}),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// nopHandler discards every record.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }
