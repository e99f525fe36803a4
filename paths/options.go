// SPDX-License-Identifier: MIT

// Package paths: functional configuration for Tally and Solve.
//
// Design goals:
//   - Deterministic behavior: the result never depends on the worker count.
//   - No dead switches: each option changes how the work is scheduled.
//   - Safe by construction: panic only on nonsensical values (programmer error).
package paths

import (
	"context"
	"runtime"
)

// DefaultWorkers runs Tally and Solve on the calling goroutine.
const DefaultWorkers = 1

const panicWorkersInvalid = "paths: WithWorkers: workers must be >= 0"

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers int             // >= 1 after gatherOptions
	ctx     context.Context // never nil after gatherOptions
}

// WithWorkers sets how many goroutines Tally and Solve may use.
// 0 selects runtime.GOMAXPROCS(0); 1 keeps everything sequential.
// Panics when workers < 0.
func WithWorkers(workers int) Option {
	if workers < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) {
		if workers == 0 {
			o.workers = runtime.GOMAXPROCS(0)
			return
		}
		o.workers = workers
	}
}

// WithContext sets a cancellation context. Solve checks it between
// intermediate iterations, Tally between ballots. Passing nil has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// defaultOptions returns sequential, non-cancellable settings.
func defaultOptions() Options {
	return Options{workers: DefaultWorkers, ctx: context.Background()}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.workers < 1 {
		o.workers = DefaultWorkers
	}

	return o
}

// Workers reports the effective worker count of opts; used by callers that
// want to log the resolved configuration.
func Workers(opts ...Option) int {
	return gatherOptions(opts...).workers
}
