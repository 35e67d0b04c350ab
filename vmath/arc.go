package vmath

// Angle units used across the package
const (
	FullTurn   = 360
	FullTurn10 = 3600
)

// NormalizeAngle wraps degrees to [0, 360)
func NormalizeAngle(angle int32) int32 {
	angle %= FullTurn
	if angle < 0 {
		angle += FullTurn
	}
	return angle
}

// NormalizeAngle10 wraps tenths of degree to [0, 3600)
func NormalizeAngle10(angle int32) int32 {
	angle %= FullTurn10
	if angle < 0 {
		angle += FullTurn10
	}
	return angle
}

// Map linearly interpolates x from [minIn, maxIn] to [minOut, maxOut]
// Result truncates toward zero and saturates outside the input range,
// so the input endpoints always map exactly to the output endpoints
func Map(x, minIn, maxIn, minOut, maxOut int32) int32 {
	if maxIn >= minIn && x >= maxIn {
		return maxOut
	}
	if maxIn >= minIn && x <= minIn {
		return minOut
	}
	if maxIn <= minIn && x <= maxIn {
		return maxOut
	}
	if maxIn <= minIn && x >= minIn {
		return minOut
	}

	deltaIn := int64(maxIn) - int64(minIn)
	deltaOut := int64(maxOut) - int64(minOut)
	return int32((int64(x)-int64(minIn))*deltaOut/deltaIn + int64(minOut))
}

// Clamp limits v to [lo, hi], lo wins if the bounds cross
func Clamp(lo, v, hi int32) int32 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Abs returns absolute value
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
