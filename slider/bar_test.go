package slider

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-gauge/core"
	"github.com/lixenwraith/vi-gauge/widget"
)

func newTestBar() *Bar {
	b := NewBar(nil)
	b.SetCoords(core.AreaFromSize(0, 0, 100, 10))
	return b
}

func TestBarClamping(t *testing.T) {
	b := newTestBar()

	b.SetValue(150)
	assert.Equal(t, int32(100), b.Value())
	b.SetValue(-5)
	assert.Equal(t, int32(0), b.Value())

	b.SetStartValue(30)
	assert.Equal(t, int32(0), b.StartValue(), "start value is fixed outside range mode")

	b.SetMode(ModeRange)
	b.SetValue(60)
	b.SetStartValue(80)
	assert.Equal(t, int32(60), b.StartValue(), "start limited to the value")
	b.SetValue(10)
	assert.Equal(t, int32(60), b.Value(), "value limited to the start")

	b.SetMode(ModeNormal)
	assert.Equal(t, int32(0), b.StartValue())
}

func TestBarSetRangePullsValuesIn(t *testing.T) {
	b := newTestBar()
	b.SetMode(ModeRange)
	b.SetValue(90)
	b.SetStartValue(40)

	b.SetRange(50, 80)
	assert.Equal(t, int32(80), b.Value())
	assert.Equal(t, int32(50), b.StartValue())

	assert.Panics(t, func() { b.SetRange(5, 5) })
}

func TestBarValuePosRoundTrip(t *testing.T) {
	b := newTestBar()
	for v := int32(0); v <= 100; v++ {
		p := core.Point{X: b.ValuePos(v), Y: 5}
		assert.InDelta(t, v, b.PosValue(p), 1, "value %d", v)
	}
}

func TestBarIndicatorArea(t *testing.T) {
	tests := []struct {
		name       string
		mode       Mode
		minV, maxV int32
		start, cur int32
		want       core.Area
	}{
		{"normal", ModeNormal, 0, 100, 0, 40, core.Area{X1: 0, Y1: 0, X2: 40, Y2: 9}},
		{"range", ModeRange, 0, 100, 20, 40, core.Area{X1: 20, Y1: 0, X2: 40, Y2: 9}},
		{"symmetrical negative", ModeSymmetrical, -50, 50, 0, -20, core.Area{X1: 30, Y1: 0, X2: 50, Y2: 9}},
		{"symmetrical positive", ModeSymmetrical, -50, 50, 0, 30, core.Area{X1: 50, Y1: 0, X2: 80, Y2: 9}},
		{"symmetrical without zero", ModeSymmetrical, 10, 110, 0, 60, core.Area{X1: 0, Y1: 0, X2: 50, Y2: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBar()
			b.SetMode(tt.mode)
			b.SetRange(tt.minV, tt.maxV)
			b.SetValue(tt.cur)
			b.SetStartValue(tt.start)
			assert.Equal(t, tt.want, b.IndicatorArea())
		})
	}
}

func TestBarChangesInvalidate(t *testing.T) {
	var dirty widget.DirtyList
	screen := widget.NewObj(nil)
	screen.SetInvalidator(&dirty)
	screen.SetCoords(core.AreaFromSize(0, 0, 100, 10))
	b := NewBar(screen)
	dirty.Reset()

	b.SetValue(b.Value())
	assert.Empty(t, dirty.Areas(), "unchanged value")

	b.SetValue(10)
	assert.Equal(t, []core.Area{b.Coords()}, dirty.Areas())
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeNormal, ModeSymmetrical, ModeRange} {
		got, ok := ParseMode(m.String())
		assert.True(t, ok)
		assert.Equal(t, m, got)
	}
	_, ok := ParseMode("diagonal")
	assert.False(t, ok)
}
