// Package input translates tcell events into semantic intents.
//
// The machine is pure: it holds the key table and the pointer button state
// and never touches widgets, so the dashboard decides what an intent means.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-gauge/core"
	"github.com/lixenwraith/vi-gauge/terminal"
)

// Machine is the input state machine
// Parses tcell.Event into semantic Intent
type Machine struct {
	state    InputState
	keyTable *KeyTable
	last     core.Point
}

// NewMachine creates a new input machine with the default bindings
func NewMachine() *Machine {
	return &Machine{
		state:    StateIdle,
		keyTable: DefaultKeyTable(),
	}
}

// SetKeyTable replaces the bindings
func (m *Machine) SetKeyTable(kt *KeyTable) {
	m.keyTable = kt
}

// State returns the pointer button state
func (m *Machine) State() InputState {
	return m.state
}

// Reset clears pending pointer state
func (m *Machine) Reset() {
	m.state = StateIdle
	m.last = core.Point{}
}

// Process parses a terminal event and returns an Intent
// Returns nil for events with no meaning, such as hover moves
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		return &Intent{Type: IntentResize, Cols: cols, Rows: rows}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyRune {
		if e, ok := m.keyTable.Runes[ev.Rune()]; ok {
			return &Intent{Type: e.IntentType, Key: e.Key}
		}
		return nil
	}
	if e, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
		return &Intent{Type: e.IntentType, Key: e.Key}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	p := terminal.CellOf(ev.Position())
	held := ev.Buttons()&tcell.Button1 != 0

	switch {
	case held && m.state == StateIdle:
		m.state = StatePressed
		m.last = p
		return &Intent{Type: IntentPointerDown, Point: p}

	case held:
		if p == m.last {
			return nil
		}
		m.last = p
		return &Intent{Type: IntentPointerMove, Point: p}

	case m.state == StatePressed:
		m.state = StateIdle
		return &Intent{Type: IntentPointerUp, Point: p}
	}
	return nil
}
