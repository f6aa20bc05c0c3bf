package sig

import (
	"fmt"

	"github.com/AnatoleLucet/hellmut/internal"
)

// Signal is a typed handle to one value of a runtime. It carries no data and is cheap to copy.
type Signal[T any] struct {
	rt *internal.Runtime
	id SignalID
}

// NewSignal creates a signal holding initial.
func NewSignal[T any](r Runtime, initial T) Signal[T] {
	value := new(T)
	*value = initial

	return Signal[T]{
		rt: r.rt,
		id: r.rt.NewSignal(value),
	}
}

// Get returns the current value and subscribes the running effect, if any.
func (s Signal[T]) Get() T {
	var value T
	s.rt.Read(s.id, func(slot any) {
		value = *as[T](s.id, slot)
	})

	return value
}

// WithRef gives fn access to the value in place, without copying it.
// fn must not modify the value nor write any signal. Subscribes like Get.
func (s Signal[T]) WithRef(fn func(*T)) {
	s.rt.Read(s.id, func(slot any) {
		fn(as[T](s.id, slot))
	})
}

// Set replaces the value and re-runs every subscriber, even if the value did not change.
func (s Signal[T]) Set(value T) {
	s.rt.Write(s.id, func(slot any) {
		*as[T](s.id, slot) = value
	})
}

// WithMut lets fn modify the value in place, then re-runs every subscriber.
// Unlike Set, the running effect also subscribes to the signal.
// fn must not read or write any signal.
func (s Signal[T]) WithMut(fn func(*T)) {
	s.rt.Mutate(s.id, func(slot any) {
		fn(as[T](s.id, slot))
	})
}

func (s Signal[T]) ID() SignalID {
	return s.id
}

func (s Signal[T]) Runtime() Runtime {
	return Runtime{s.rt}
}

func as[T any](id SignalID, slot any) *T {
	value, ok := slot.(*T)
	if !ok {
		panic(fmt.Errorf("%w: %s holds %T, accessed as %T", internal.ErrTypeMismatch, id, slot, value))
	}

	return value
}
