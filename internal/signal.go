package internal

import (
	"go.opentelemetry.io/otel/attribute"
)

// NewSignal stores slot and returns its id.
func (r *Runtime) NewSignal(slot any) SignalID {
	r.checkAffinity()

	id := r.values.Push(slot)

	r.metrics.SignalCreated()
	r.logger.Debug("signal created", "signal", id)

	return id
}

// Read gives fn shared access to the slot and subscribes the running effect, if any.
func (r *Runtime) Read(id SignalID, fn func(slot any)) {
	r.checkAffinity()
	r.logger.Debug("signal read", "signal", id)

	r.values.With(id, fn)

	r.metrics.SignalRead()
	r.track(id)
}

// Write gives fn exclusive access to the slot, then re-runs the subscribers.
// Writing never subscribes the writer.
func (r *Runtime) Write(id SignalID, fn func(slot any)) {
	r.checkAffinity()
	r.logger.Debug("signal write", "signal", id)

	r.values.WithMut(id, fn)

	r.metrics.SignalWrite()
	r.propagate(id)
}

// Mutate is Write, except the running effect also subscribes to the signal, as it would on a read.
func (r *Runtime) Mutate(id SignalID, fn func(slot any)) {
	r.checkAffinity()
	r.logger.Debug("signal mutate", "signal", id)

	r.metrics.SignalRead()
	r.track(id)

	r.values.WithMut(id, fn)

	r.metrics.SignalWrite()
	r.propagate(id)
}

func (r *Runtime) track(id SignalID) {
	effect, ok := r.tracker.Tracking()
	if !ok {
		return
	}

	if r.graph.Subscribe(id, effect) {
		r.metrics.Subscribed()
		r.logger.Debug("subscribe", "signal", id, "effect", effect)
	}
}

// propagate re-runs every subscriber of id, one at a time, except the effect
// currently running: an effect writing a signal it reads must not re-enter itself.
func (r *Runtime) propagate(id SignalID) {
	subs := r.graph.Subscribers(id)
	if len(subs) == 0 {
		return
	}

	running, isRunning := r.tracker.Running()

	r.metrics.Propagated()
	r.logger.Debug("propagate", "signal", id, "subscribers", len(subs))

	attrs := []attribute.KeyValue{attribute.Int64("sig.signal.id", int64(id))}
	r.spans.Run("sig.signal.propagate", attrs, func() {
		for _, effect := range subs {
			if isRunning && effect == running {
				continue
			}

			r.runEffect(effect)
		}
	})
}
