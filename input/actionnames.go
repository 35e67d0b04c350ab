package input

import "github.com/lixenwraith/vi-gauge/widget"

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap config loader to resolve action strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	"quit":        {IntentQuit, 0},
	"escape":      {IntentEscape, 0},
	"mute_toggle": {IntentMuteToggle, 0},
	"focus_next":  {IntentFocusNext, 0},
	"edit_toggle": {IntentEditToggle, 0},

	"step_left":  {IntentStep, widget.KeyLeft},
	"step_right": {IntentStep, widget.KeyRight},
	"step_up":    {IntentStep, widget.KeyUp},
	"step_down":  {IntentStep, widget.KeyDown},
}

// ActionNames returns the bindable action names
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	return names
}
