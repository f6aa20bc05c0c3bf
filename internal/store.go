package internal

import "fmt"

// ValueStore is the append-only backing storage of signals.
// Slots are type-erased, the typed handle in the root package recovers the type.
type ValueStore struct {
	guard Guard

	slots []any
}

func NewValueStore() *ValueStore {
	return &ValueStore{
		guard: NewGuard("value store"),
		slots: make([]any, 0),
	}
}

func (s *ValueStore) Push(slot any) SignalID {
	defer s.guard.BorrowMut()()

	s.slots = append(s.slots, slot)
	return SignalID(len(s.slots) - 1)
}

// With gives shared access to a slot for the duration of fn.
func (s *ValueStore) With(id SignalID, fn func(any)) {
	defer s.guard.Borrow()()

	fn(s.slot(id))
}

// WithMut gives exclusive access to a slot for the duration of fn.
func (s *ValueStore) WithMut(id SignalID, fn func(any)) {
	defer s.guard.BorrowMut()()

	fn(s.slot(id))
}

func (s *ValueStore) Len() int {
	return len(s.slots)
}

func (s *ValueStore) slot(id SignalID) any {
	if uint64(id) >= uint64(len(s.slots)) {
		panic(fmt.Errorf("%w: %s", ErrUnknownSignal, id))
	}

	return s.slots[id]
}

// EffectStore is the append-only list of effect closures.
type EffectStore struct {
	guard Guard

	effects []func()
}

func NewEffectStore() *EffectStore {
	return &EffectStore{
		guard:   NewGuard("effect store"),
		effects: make([]func(), 0),
	}
}

func (s *EffectStore) Push(fn func()) EffectID {
	defer s.guard.BorrowMut()()

	s.effects = append(s.effects, fn)
	return EffectID(len(s.effects) - 1)
}

// Get returns the closure of an effect.
// The borrow ends before the caller invokes it, so the closure is free to create effects.
func (s *EffectStore) Get(id EffectID) func() {
	defer s.guard.Borrow()()

	if uint64(id) >= uint64(len(s.effects)) {
		panic(fmt.Errorf("%w: %s", ErrUnknownEffect, id))
	}

	return s.effects[id]
}

func (s *EffectStore) Len() int {
	return len(s.effects)
}
