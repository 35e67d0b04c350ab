//go:build !linux

package terminal

// resetTerminalMode is a no-op off linux
func resetTerminalMode() {}
