// Command vi-gauge shows an interactive meter and slider in the terminal.
package main

import (
	"os"

	"github.com/lixenwraith/vi-gauge/terminal"
)

func main() {
	// Restore the terminal even if the UI loop panics
	defer func() {
		terminal.HandleCrash(recover())
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
