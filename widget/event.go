package widget

import (
	"fmt"

	"github.com/lixenwraith/vi-gauge/core"
	"github.com/lixenwraith/vi-gauge/draw"
)

// EventCode identifies what happened to a widget
type EventCode uint8

const (
	EventHitTest EventCode = iota
	EventPressed
	EventPressing
	EventReleased
	EventPressLost
	EventFocused
	EventSizeChanged
	EventKey
	EventRefrExtDrawSize
	EventDrawMain
)

var eventNames = [...]string{
	EventHitTest:         "hit_test",
	EventPressed:         "pressed",
	EventPressing:        "pressing",
	EventReleased:        "released",
	EventPressLost:       "press_lost",
	EventFocused:         "focused",
	EventSizeChanged:     "size_changed",
	EventKey:             "key",
	EventRefrExtDrawSize: "refr_ext_draw_size",
	EventDrawMain:        "draw_main",
}

func (c EventCode) String() string {
	if int(c) < len(eventNames) {
		return eventNames[c]
	}
	return fmt.Sprintf("event(%d)", c)
}

// Key is a navigation key delivered by keypads and encoders
type Key rune

const (
	KeyUp    Key = 17
	KeyDown  Key = 18
	KeyRight Key = 19
	KeyLeft  Key = 20
	KeyEsc   Key = 27
	KeyEnter Key = 10
)

// IndevType is the kind of input device producing an event
type IndevType uint8

const (
	IndevNone IndevType = iota
	IndevPointer
	IndevKeypad
	IndevButton
	IndevEncoder
)

// Group is a focus group, Editing routes encoder rotation into the focused widget
type Group struct {
	Editing bool
}

// Indev is the state of the input device that produced the current event
type Indev struct {
	Type  IndevType
	Point core.Point

	// ScrollLimit is the movement in pixels before a press turns into a drag
	ScrollLimit int

	// Scrolling is set while the device is scrolling some other object
	Scrolling bool

	Group *Group
}

// Result tells the dispatcher whether the widget is still valid after handling
type Result uint8

const (
	ResultOK Result = iota
	ResultInvalid
)

// Event is delivered to a widget's HandleEvent
// Fields used depend on Code, handlers write HitResult and ExtDrawSize in place
type Event struct {
	Code  EventCode
	Indev *Indev
	Key   Key
	Layer draw.Layer
	Point core.Point

	HitResult   bool
	ExtDrawSize int
}
