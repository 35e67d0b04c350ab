package input

import (
	"github.com/lixenwraith/vi-gauge/core"
	"github.com/lixenwraith/vi-gauge/widget"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Ctrl+Q, Ctrl+C
	IntentEscape     // ESC, leaves editing
	IntentMuteToggle // Ctrl+S, m
	IntentResize     // Terminal resize event

	// Focus and navigation
	IntentFocusNext  // Tab
	IntentEditToggle // Enter, encoder push
	IntentStep       // Arrows and h/j/k/l, Key holds the direction

	// Pointer, Point is in canvas pixels
	IntentPointerDown
	IntentPointerMove
	IntentPointerUp
)

var intentNames = [...]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentEscape:      "escape",
	IntentMuteToggle:  "mute_toggle",
	IntentResize:      "resize",
	IntentFocusNext:   "focus_next",
	IntentEditToggle:  "edit_toggle",
	IntentStep:        "step",
	IntentPointerDown: "pointer_down",
	IntentPointerMove: "pointer_move",
	IntentPointerUp:   "pointer_up",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent represents a parsed semantic action
// Pure data struct with no widget references
type Intent struct {
	Type  IntentType
	Key   widget.Key // Step direction
	Point core.Point // Pointer position
	Cols  int        // Resize, in cells
	Rows  int
}
