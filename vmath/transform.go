package vmath

import "github.com/lixenwraith/vi-gauge/core"

// ScaleNone is the identity scale factor, 256 = 1.0
const ScaleNone = 256

// TransformPoint rotates p about pivot by angle10 tenths of degree and scales by scale/256
// Sub-degree precision comes from interpolating neighbouring LUT entries
func TransformPoint(p core.Point, angle10, scale int32, pivot core.Point) core.Point {
	angle10 = NormalizeAngle10(angle10)
	if angle10 == 0 && scale == ScaleNone {
		return p
	}

	x := int32(p.X - pivot.X)
	y := int32(p.Y - pivot.Y)
	if scale != ScaleNone {
		x = (x * scale) >> 8
		y = (y * scale) >> 8
	}
	if angle10 == 0 {
		return core.Point{X: int(x) + pivot.X, Y: int(y) + pivot.Y}
	}

	low := angle10 / 10
	rem := angle10 - low*10

	sinma := (Sin(low)*(10-rem) + Sin(low+1)*rem) / 10
	cosma := (Cos(low)*(10-rem) + Cos(low+1)*rem) / 10
	sinma >>= TrigoShift - transformShift
	cosma >>= TrigoShift - transformShift

	return core.Point{
		X: int((cosma*x-sinma*y)>>transformShift) + pivot.X,
		Y: int((sinma*x+cosma*y)>>transformShift) + pivot.Y,
	}
}

// PolarPoint returns the point at radius r and angle (degrees) around center
// Uses the full SinMax precision, x grows right and y grows down
func PolarPoint(center core.Point, r int, angle int32) core.Point {
	return core.Point{
		X: int(int64(Cos(angle))*int64(r)/SinMax) + center.X,
		Y: int(int64(Sin(angle))*int64(r)/SinMax) + center.Y,
	}
}

// TransformedArea returns the bounding box of a w*h image rotated about pivot
// Coordinates are relative to the image's untransformed top-left corner
func TransformedArea(w, h int, angle10, scale int32, pivot core.Point) core.Area {
	if NormalizeAngle10(angle10) == 0 && scale == ScaleNone {
		return core.Area{X1: 0, Y1: 0, X2: w - 1, Y2: h - 1}
	}

	corners := [4]core.Point{
		{X: 0, Y: 0},
		{X: w - 1, Y: 0},
		{X: 0, Y: h - 1},
		{X: w - 1, Y: h - 1},
	}

	first := TransformPoint(corners[0], angle10, scale, pivot)
	res := core.Area{X1: first.X, Y1: first.Y, X2: first.X, Y2: first.Y}
	for _, c := range corners[1:] {
		p := TransformPoint(c, angle10, scale, pivot)
		res.X1 = min(res.X1, p.X)
		res.Y1 = min(res.Y1, p.Y)
		res.X2 = max(res.X2, p.X)
		res.Y2 = max(res.Y2, p.Y)
	}
	return res
}
