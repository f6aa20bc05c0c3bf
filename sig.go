// Package sig is a small fine-grained reactive runtime: signals hold values,
// effects re-run whenever a signal they read is written.
package sig

import (
	"github.com/AnatoleLucet/hellmut/internal"
)

type (
	SignalID = internal.SignalID
	EffectID = internal.EffectID
)

// Runtime is a handle to a runtime instance. It is cheap to copy.
// The zero value is not usable, get one from New or Default.
type Runtime struct {
	rt *internal.Runtime
}

// New creates a runtime bound to the calling goroutine.
// A runtime is never torn down, signals and effects live as long as the process.
func New(opts ...Option) Runtime {
	cfg := internal.DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return Runtime{internal.NewRuntime(cfg)}
}

// Default returns the runtime of the calling goroutine, creating it on first use.
func Default() Runtime {
	return Runtime{internal.GetRuntime()}
}

// NewEffect stores fn and runs it once immediately.
// Every signal read during a run subscribes the effect, which is then re-run on each write to that signal.
func (r Runtime) NewEffect(fn func()) EffectID {
	return r.rt.NewEffect(fn)
}

// Running returns the effect currently executing, if any.
func (r Runtime) Running() (EffectID, bool) {
	return r.rt.Running()
}

// Subscribers returns the effects that a write to the given signal re-runs.
func (r Runtime) Subscribers(id SignalID) []EffectID {
	return r.rt.Subscribers(id)
}

// Signals returns the number of signals ever created on this runtime.
func (r Runtime) Signals() int { return r.rt.Signals() }

// Effects returns the number of effects ever created on this runtime.
func (r Runtime) Effects() int { return r.rt.Effects() }

func (r Runtime) String() string {
	return r.rt.String()
}

// Untrack runs the given function without tracking any reactive dependencies.
func Untrack[T any](r Runtime, fn func() T) T {
	var result T
	r.rt.Untrack(func() { result = fn() })
	return result
}
