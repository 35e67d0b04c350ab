package core

// RGB stores explicit 8-bit color channels, decoupled from any backend
type RGB struct {
	R, G, B uint8
}

// Opa is an 8-bit opacity, 0 transparent and 255 fully covering
type Opa uint8

// Opacity levels
// Any value above OpaMax is treated as "inherit parent opacity" by indicators
const (
	OpaTransp Opa = 0
	OpaMin    Opa = 2
	OpaMax    Opa = 253
	OpaCover  Opa = 255
)

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Mix blends c toward other: ratio 255 yields c, ratio 0 yields other
// Integer only with round-to-nearest, stable across backends
func Mix(c, other RGB, ratio uint8) RGB {
	m := uint32(ratio)
	inv := 255 - m
	return RGB{
		R: uint8((uint32(c.R)*m + uint32(other.R)*inv + 127) / 255),
		G: uint8((uint32(c.G)*m + uint32(other.G)*inv + 127) / 255),
		B: uint8((uint32(c.B)*m + uint32(other.B)*inv + 127) / 255),
	}
}

// Blend performs alpha blending: result = src*opa + c*(1-opa)
func (c RGB) Blend(src RGB, opa Opa) RGB {
	if opa >= OpaMax {
		return src
	}
	if opa <= OpaMin {
		return c
	}
	return Mix(src, c, uint8(opa))
}

// Compose multiplies a parent opacity with a child opacity
// A child above OpaMax inherits the parent value unchanged
func Compose(parent, child Opa) Opa {
	if child > OpaMax {
		return parent
	}
	return Opa(uint32(parent) * uint32(child) / 255)
}
