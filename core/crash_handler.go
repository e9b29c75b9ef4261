package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashCleanup runs before the stack trace prints so hosts can restore the
// terminal or other global state first
var crashCleanup atomic.Value // func()

// SetCrashCleanup registers a cleanup hook invoked by HandleCrash
func SetCrashCleanup(fn func()) {
	crashCleanup.Store(fn)
}

// HandleCrash is the unified panic handler that runs the cleanup hook and
// prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn, ok := crashCleanup.Load().(func()); ok && fn != nil {
		fn()
	}

	// Force flush stdout/stderr before printing to stderr
	os.Stdout.Sync()
	os.Stderr.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure cleanup runs on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
