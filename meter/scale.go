package meter

import "github.com/lixenwraith/vi-gauge/core"

// Scale is the value range and angular geometry of the dial
// Angles are degrees, 0 at 3 o'clock, clockwise
type Scale struct {
	Min, Max   int32
	AngleRange uint32
	Rotation   uint32

	TickCount  uint16
	TickWidth  uint16
	TickLength uint16
	TickColor  core.RGB

	// Every MajorNth tick is major, 0 disables major ticks and labels
	MajorNth    uint16
	MajorWidth  uint16
	MajorLength uint16
	MajorColor  core.RGB

	LabelGap int16

	// RadiusMod shifts every needle tip relative to the outer radius
	RadiusMod int16
}

// Default geometry of a new meter
const (
	DefaultAngleRange = 270
	DefaultTickCount  = 6
	DefaultTickLength = 8
	DefaultTickWidth  = 2
	DefaultLabelGap   = 2
)

// DefaultScale returns a 0..100 scale over 270 degrees with the gap centered at the bottom
func DefaultScale() Scale {
	return Scale{
		Min:        0,
		Max:        100,
		AngleRange: DefaultAngleRange,
		Rotation:   90 + (360-DefaultAngleRange)/2,
		TickCount:  DefaultTickCount,
		TickLength: DefaultTickLength,
		TickWidth:  DefaultTickWidth,
		LabelGap:   DefaultLabelGap,
	}
}
