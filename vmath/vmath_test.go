package vmath

import (
	"testing"

	"github.com/lixenwraith/vi-gauge/core"
	"github.com/stretchr/testify/assert"
)

func TestSinCardinalAngles(t *testing.T) {
	tests := []struct {
		angle int32
		want  int32
	}{
		{0, 0},
		{90, SinMax - 1},
		{180, 0},
		{270, -(SinMax - 1)},
		{360, 0},
		{-90, -(SinMax - 1)},
		{450, SinMax - 1},
	}

	for _, tt := range tests {
		if got := Sin(tt.angle); got != tt.want {
			t.Errorf("Sin(%d) = %d, want %d", tt.angle, got, tt.want)
		}
	}
}

func TestCosIsShiftedSin(t *testing.T) {
	for a := int32(-720); a <= 720; a += 7 {
		assert.Equal(t, Sin(a+90), Cos(a), "angle %d", a)
	}
}

func TestMapEndpointsExact(t *testing.T) {
	// Scale [0,100], span 270, rotation 135
	assert.Equal(t, int32(135), Map(0, 0, 100, 135, 405))
	assert.Equal(t, int32(405), Map(100, 0, 100, 135, 405))
	assert.Equal(t, int32(45), NormalizeAngle(Map(100, 0, 100, 135, 405)))
}

func TestMapSaturatesOutsideRange(t *testing.T) {
	assert.Equal(t, int32(135), Map(-50, 0, 100, 135, 405))
	assert.Equal(t, int32(405), Map(150, 0, 100, 135, 405))

	// Inverted input range
	assert.Equal(t, int32(10), Map(200, 100, 0, 10, 20))
	assert.Equal(t, int32(20), Map(-1, 100, 0, 10, 20))
}

func TestMapMonotonic(t *testing.T) {
	prev := Map(-20, -20, 37, 90, 450)
	for v := int32(-19); v <= 37; v++ {
		got := Map(v, -20, 37, 90, 450)
		if got < prev {
			t.Fatalf("Map not monotonic at %d: %d < %d", v, got, prev)
		}
		prev = got
	}
}

func TestMapDegenerateInput(t *testing.T) {
	// Equal bounds must not divide by zero
	assert.Equal(t, int32(7), Map(5, 5, 5, 3, 7))
	assert.Equal(t, int32(3), Map(4, 5, 5, 3, 7))
}

func TestNormalizeAngle10(t *testing.T) {
	assert.Equal(t, int32(0), NormalizeAngle10(3600))
	assert.Equal(t, int32(450), NormalizeAngle10(4050))
	assert.Equal(t, int32(3590), NormalizeAngle10(-10))
}

func TestTransformPointQuarterTurn(t *testing.T) {
	pivot := core.Point{X: 50, Y: 50}
	p := TransformPoint(core.Point{X: 150, Y: 50}, 900, ScaleNone, pivot)

	// Reduced precision may lose at most a pixel
	assert.InDelta(t, 50, p.X, 1)
	assert.InDelta(t, 150, p.Y, 1)
}

func TestTransformPointIdentity(t *testing.T) {
	p := core.Point{X: 3, Y: -4}
	assert.Equal(t, p, TransformPoint(p, 0, ScaleNone, core.Point{}))
	assert.Equal(t, p, TransformPoint(p, 3600, ScaleNone, core.Point{}))
}

func TestTransformPointScaleOnly(t *testing.T) {
	p := TransformPoint(core.Point{X: 10, Y: 20}, 0, 512, core.Point{})
	assert.Equal(t, core.Point{X: 20, Y: 40}, p)
}

func TestPolarPoint(t *testing.T) {
	c := core.Point{X: 100, Y: 100}
	// Largest table entry is SinMax-1, radius 100 truncates to 99
	assert.Equal(t, core.Point{X: 199, Y: 100}, PolarPoint(c, 100, 0))
	assert.Equal(t, core.Point{X: 100, Y: 199}, PolarPoint(c, 100, 90))
	assert.Equal(t, core.Point{X: 1, Y: 100}, PolarPoint(c, 100, 180))
}

func TestTransformedAreaHalfTurn(t *testing.T) {
	// 10x4 image rotated 180 degrees around its left-middle
	a := TransformedArea(10, 4, 1800, ScaleNone, core.Point{X: 0, Y: 2})
	assert.InDelta(t, -9, a.X1, 1)
	assert.InDelta(t, 0, a.X2, 1)
	assert.InDelta(t, 1, a.Y1, 1)
	assert.InDelta(t, 4, a.Y2, 1)
}

func TestTransformedAreaNoRotation(t *testing.T) {
	a := TransformedArea(10, 4, 0, ScaleNone, core.Point{X: 5, Y: 2})
	assert.Equal(t, core.Area{X1: 0, Y1: 0, X2: 9, Y2: 3}, a)
}
