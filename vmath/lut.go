package vmath

import (
	"math"
)

// Trigonometry is integer-only, angles in whole degrees, results scaled by SinMax
const (
	TrigoShift = 15
	SinMax     = 1 << TrigoShift

	// transformShift is the reduced precision used by TransformPoint to keep products in int32 range
	transformShift = 10
)

// sinLUT holds one quarter wave [0, 90] degrees, the rest is mirrored
var sinLUT [91]int32

func init() {
	for i := 0; i <= 90; i++ {
		v := math.Round(math.Sin(float64(i)*math.Pi/180) * SinMax)
		// Keep within int16 so products with 16-bit radii never overflow
		sinLUT[i] = int32(min(v, SinMax-1))
	}
}

// Sin returns sine of angle in degrees scaled by SinMax
// Any integer angle is accepted, it is wrapped into [0, 360)
func Sin(angle int32) int32 {
	angle %= 360
	if angle < 0 {
		angle += 360
	}

	switch {
	case angle < 90:
		return sinLUT[angle]
	case angle < 180:
		return sinLUT[180-angle]
	case angle < 270:
		return -sinLUT[angle-180]
	default:
		return -sinLUT[360-angle]
	}
}

// Cos returns cosine of angle in degrees scaled by SinMax
func Cos(angle int32) int32 {
	return Sin(angle + 90)
}
