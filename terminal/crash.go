package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

// HandleCrash resets the terminal, prints r with the stack trace and exits
// A nil r is ignored so it can be fed recover() directly
func HandleCrash(r any) {
	if r == nil {
		return
	}

	EmergencyReset(os.Stdout)
	os.Stdout.Sync()

	// Raw mode may still be active, \r\n keeps lines from drifting
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mVI-GAUGE CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a new goroutine that restores the terminal if fn panics
func Go(fn func()) {
	go func() {
		defer func() {
			HandleCrash(recover())
		}()
		fn()
	}()
}
