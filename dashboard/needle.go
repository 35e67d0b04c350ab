package dashboard

import (
	"image"
	"image/color"

	"github.com/lixenwraith/vi-gauge/core"
)

// needleImage draws a needle pointing right that tapers to a tip
// The pivot is the middle of the left edge
func needleImage(length, width int, c core.RGB) (*image.RGBA, core.Point) {
	length = max(length, 2)
	width = max(width|1, 3)
	img := image.NewRGBA(image.Rect(0, 0, length, width))
	mid := width / 2
	for x := range length {
		half := mid * (length - x) / length
		for y := mid - half; y <= mid+half; y++ {
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	return img, core.Point{X: 0, Y: mid}
}
