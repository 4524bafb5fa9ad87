package tsp

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// idleTimeout bounds each Pop; an empty poll triggers the idle check.
const idleTimeout = 100 * time.Millisecond

// DefaultShutdownTimeout bounds the wait for workers after completion.
const DefaultShutdownTimeout = 60 * time.Second

// Options configures an Engine. Build it with Option functions.
type Options struct {
	Policy          Policy
	Workers         int
	Root            int
	HasRoot         bool
	DropDeficient   bool
	StrictQuiesce   bool
	ShutdownTimeout time.Duration
	Logger          logrus.FieldLogger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns BestFS, one worker, smallest node as root,
// deficient nodes rejected, strict quiescence and a silent logger.
func DefaultOptions() Options {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	return Options{
		Policy:          BestFS,
		Workers:         1,
		StrictQuiesce:   true,
		ShutdownTimeout: DefaultShutdownTimeout,
		Logger:          silent,
	}
}

// WithPolicy selects the queue ordering.
func WithPolicy(p Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithWorkers sets the pool size (must be ≥ 1).
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithRoot fixes the 1-tree target node.
func WithRoot(id int) Option {
	return func(o *Options) {
		o.Root = id
		o.HasRoot = true
	}
}

// WithDropDeficient removes nodes with fewer than two edges instead of
// failing with an UnsolvableError.
func WithDropDeficient(drop bool) Option {
	return func(o *Options) { o.DropDeficient = drop }
}

// WithStrictQuiescence selects the idle rule; see package doc.
func WithStrictQuiescence(strict bool) Option {
	return func(o *Options) { o.StrictQuiesce = strict }
}

// WithShutdownTimeout bounds the wait for workers once completion is
// signalled. Non-positive values keep the default.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.ShutdownTimeout = d
		}
	}
}

// WithLogger routes engine logs to l. A nil l keeps the silent default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func (o Options) validate() error {
	if o.Workers < 1 {
		return ErrInvalidWorkers
	}
	if o.Policy != BestFS && o.Policy != DFS {
		return ErrUnknownPolicy
	}

	return nil
}
