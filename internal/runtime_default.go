//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

var runtimes sync.Map

// GetRuntime returns the runtime of the calling goroutine, creating it on first use.
// It is never released.
func GetRuntime() *Runtime {
	gid := goroutineID()

	if r, ok := runtimes.Load(gid); ok {
		return r.(*Runtime)
	}

	r := NewRuntime(DefaultConfig())
	runtimes.Store(gid, r)
	return r
}

func goroutineID() int64 {
	return goid.Get()
}
