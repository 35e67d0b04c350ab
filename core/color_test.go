package core

import "testing"

func TestMix(t *testing.T) {
	red := RGB{R: 255}
	blue := RGB{B: 255}

	if got := Mix(red, blue, 255); got != red {
		t.Errorf("ratio 255 keeps c, got %v", got)
	}
	if got := Mix(red, blue, 0); got != blue {
		t.Errorf("ratio 0 yields other, got %v", got)
	}
	if got := Mix(red, blue, 128); got != (RGB{R: 128, B: 127}) {
		t.Errorf("midpoint rounds to nearest, got %v", got)
	}
}

func TestBlend(t *testing.T) {
	bg := RGBBlack
	src := RGBWhite

	if got := bg.Blend(src, OpaCover); got != src {
		t.Errorf("cover: got %v", got)
	}
	if got := bg.Blend(src, OpaMax); got != src {
		t.Errorf("OpaMax counts as cover, got %v", got)
	}
	if got := bg.Blend(src, OpaMin); got != bg {
		t.Errorf("OpaMin counts as transparent, got %v", got)
	}
	if got := bg.Blend(src, 51); got != (RGB{R: 51, G: 51, B: 51}) {
		t.Errorf("20%%: got %v", got)
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		parent, child, want Opa
	}{
		{OpaCover, OpaCover, OpaCover},
		{128, OpaCover, 128},
		{OpaCover, 128, 128},
		{128, 128, 64},
		{200, OpaTransp, OpaTransp},
	}
	for _, tt := range tests {
		if got := Compose(tt.parent, tt.child); got != tt.want {
			t.Errorf("Compose(%d, %d) = %d, want %d", tt.parent, tt.child, got, tt.want)
		}
	}
}
