package internal

import (
	"go.opentelemetry.io/otel/attribute"
)

// NewEffect stores fn and runs it once right away, so that its first reads are tracked.
func (r *Runtime) NewEffect(fn func()) EffectID {
	r.checkAffinity()

	id := r.effects.Push(fn)

	r.metrics.EffectCreated()
	r.logger.Debug("effect created", "effect", id)

	r.runEffect(id)

	return id
}

func (r *Runtime) runEffect(id EffectID) {
	fn := r.effects.Get(id)

	r.metrics.EffectRun()
	r.logger.Debug("effect run", "effect", id)

	attrs := []attribute.KeyValue{attribute.Int64("sig.effect.id", int64(id))}
	r.spans.Run("sig.effect.run", attrs, func() {
		r.tracker.RunWithEffect(id, fn)
	})
}
