package draw

import (
	"testing"

	"github.com/lixenwraith/vi-gauge/core"
	"github.com/lixenwraith/vi-gauge/vmath"
	"github.com/stretchr/testify/assert"
)

func TestArcAreaContainsEndpoints(t *testing.T) {
	c := core.Point{X: 100, Y: 100}
	tests := []struct {
		name       string
		start, end int32
	}{
		{"first quarter", 10, 80},
		{"cross 90", 45, 135},
		{"cross 180 and 270", 135, 300},
		{"wrap past 360", 300, 420},
		{"meter span", 135, 405},
		{"swapped order", 200, 160},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ArcArea(c, 80, tt.start, tt.end, 10, false)
			for _, ang := range []int32{tt.start, tt.end} {
				assert.True(t, a.IsPointOn(vmath.PolarPoint(c, 80, ang)), "outer %d not in %+v", ang, a)
				assert.True(t, a.IsPointOn(vmath.PolarPoint(c, 70, ang)), "inner %d not in %+v", ang, a)
			}
		})
	}
}

func TestArcAreaTightForSmallSweep(t *testing.T) {
	c := core.Point{X: 100, Y: 100}
	a := ArcArea(c, 80, 10, 20, 10, false)

	// Wedge in the lower right quadrant stays well away from the full box
	assert.Greater(t, a.X1, c.X)
	assert.Greater(t, a.Y1, c.Y)
	assert.Less(t, a.Size(), (160*160)/8)
}

func TestArcAreaCoversCardinals(t *testing.T) {
	c := core.Point{X: 0, Y: 0}
	a := ArcArea(c, 50, 80, 100, 5, false)
	assert.GreaterOrEqual(t, a.Y2, 50, "bottom extreme at 90 degrees must be included")
}

func TestArcAreaFullTurn(t *testing.T) {
	c := core.Point{X: 50, Y: 50}
	a := ArcArea(c, 40, 0, 360, 5, false)
	assert.Equal(t, core.Area{X1: 9, Y1: 9, X2: 91, Y2: 91}, a)
}

func TestArcAreaRoundedGrows(t *testing.T) {
	c := core.Point{X: 50, Y: 50}
	flat := ArcArea(c, 40, 20, 60, 8, false)
	round := ArcArea(c, 40, 20, 60, 8, true)
	assert.Equal(t, flat.Increase(5, 5), round)
}
