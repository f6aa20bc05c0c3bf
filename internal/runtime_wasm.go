//go:build wasm

package internal

import "sync"

var once sync.Once
var globalRuntime *Runtime

func GetRuntime() *Runtime {
	once.Do(func() {
		globalRuntime = NewRuntime(DefaultConfig())
	})

	return globalRuntime
}

// wasm runs on a single thread, every goroutine shares the runtime.
func goroutineID() int64 {
	return 0
}
