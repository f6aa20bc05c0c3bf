package sig

import "github.com/AnatoleLucet/hellmut/internal"

// Runtime misuse is fatal: these are raised as panics wrapping the sentinel,
// so a recovering caller can still match them with errors.Is.
var (
	ErrTypeMismatch   = internal.ErrTypeMismatch
	ErrBorrowConflict = internal.ErrBorrowConflict
	ErrWrongGoroutine = internal.ErrWrongGoroutine
	ErrUnknownSignal  = internal.ErrUnknownSignal
	ErrUnknownEffect  = internal.ErrUnknownEffect
)
