package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-gauge/widget"
)

// KeyEntry describes a key's intent without function pointers
type KeyEntry struct {
	IntentType IntentType
	Key        widget.Key // Direction for IntentStep
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Tab, Enter)
	SpecialKeys map[tcell.Key]KeyEntry

	// Plain rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  {IntentQuit, 0},
			tcell.KeyCtrlC:  {IntentQuit, 0},
			tcell.KeyCtrlS:  {IntentMuteToggle, 0},
			tcell.KeyEscape: {IntentEscape, 0},
			tcell.KeyTab:    {IntentFocusNext, 0},
			tcell.KeyEnter:  {IntentEditToggle, 0},
			tcell.KeyUp:     {IntentStep, widget.KeyUp},
			tcell.KeyDown:   {IntentStep, widget.KeyDown},
			tcell.KeyLeft:   {IntentStep, widget.KeyLeft},
			tcell.KeyRight:  {IntentStep, widget.KeyRight},
		},

		Runes: map[rune]KeyEntry{
			'q': {IntentQuit, 0},
			'm': {IntentMuteToggle, 0},
			'h': {IntentStep, widget.KeyLeft},
			'j': {IntentStep, widget.KeyDown},
			'k': {IntentStep, widget.KeyUp},
			'l': {IntentStep, widget.KeyRight},
			' ': {IntentEditToggle, 0},
		},
	}
}

// Merge applies non-nil sections of override onto the table
// Entries with IntentNone unbind the key
func (kt *KeyTable) Merge(override *KeyTable) {
	for k, e := range override.SpecialKeys {
		if e.IntentType == IntentNone {
			delete(kt.SpecialKeys, k)
			continue
		}
		kt.SpecialKeys[k] = e
	}
	for r, e := range override.Runes {
		if e.IntentType == IntentNone {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = e
	}
}
