package internal

import "errors"

// All of these are raised as panics wrapping the sentinel, never returned.
// They signal a misuse of the runtime, not a recoverable state.
var (
	// ErrTypeMismatch is raised when a signal slot is accessed with a type other than its creation type.
	ErrTypeMismatch = errors.New("sig: signal type mismatch")

	// ErrBorrowConflict is raised when a container is accessed while an incompatible access is outstanding,
	// e.g. writing a signal from inside WithRef.
	ErrBorrowConflict = errors.New("sig: borrow conflict")

	// ErrWrongGoroutine is raised when a runtime is used from a goroutine other than the one that created it.
	ErrWrongGoroutine = errors.New("sig: runtime used from another goroutine")

	ErrUnknownSignal = errors.New("sig: unknown signal")
	ErrUnknownEffect = errors.New("sig: unknown effect")
)
