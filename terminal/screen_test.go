package terminal

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-gauge/core"
)

func newSimScreen(t *testing.T, cols, rows int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := New(sim, zerolog.Nop())
	require.NoError(t, s.Init())
	sim.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s, sim
}

func TestNotInitialized(t *testing.T) {
	s := New(tcell.NewSimulationScreen("UTF-8"), zerolog.Nop())

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	assert.ErrorIs(t, s.Blit(img, core.Area{X1: 0, Y1: 0, X2: 3, Y2: 3}), ErrNotInitialized)
	_, err := s.Text(0, 0, "x", core.RGBWhite, core.RGBBlack)
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.ErrorIs(t, s.Show(), ErrNotInitialized)
	assert.Nil(t, s.PollEvent())

	cols, rows := s.Size()
	assert.Zero(t, cols)
	assert.Zero(t, rows)

	s.Fini()
}

func TestBlitHalfBlocks(t *testing.T) {
	s, sim := newSimScreen(t, 10, 5)

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	img.SetRGBA(2, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(2, 1, color.RGBA{G: 255, A: 255})

	require.NoError(t, s.Blit(img, core.Area{X1: 0, Y1: 0, X2: 9, Y2: 9}))
	require.NoError(t, s.Show())

	r, _, st, _ := sim.GetContent(2, 0)
	assert.Equal(t, halfBlock, r)
	fg, bg, _ := st.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 255, 0), bg)
}

func TestBlitOnlyDirtyRows(t *testing.T) {
	s, sim := newSimScreen(t, 10, 5)

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	require.NoError(t, s.Blit(img, core.Area{X1: 0, Y1: 4, X2: 3, Y2: 5}))
	require.NoError(t, s.Show())

	r, _, _, _ := sim.GetContent(1, 2)
	assert.Equal(t, halfBlock, r, "pixel rows 4-5 are cell row 2")
	r, _, _, _ = sim.GetContent(1, 0)
	assert.NotEqual(t, halfBlock, r)
	r, _, _, _ = sim.GetContent(5, 2)
	assert.NotEqual(t, halfBlock, r, "column outside the area")
}

func TestText(t *testing.T) {
	s, sim := newSimScreen(t, 10, 5)

	n, err := s.Text(1, 4, "ab", core.RGBWhite, core.RGBBlack)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.Text(0, 3, "世界", core.RGBWhite, core.RGBBlack)
	require.NoError(t, err)
	assert.Equal(t, 4, n, "wide runes take two columns")

	n, err = s.Text(8, 2, "hello", core.RGBWhite, core.RGBBlack)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "truncated to the screen edge")

	require.NoError(t, s.Show())
	r, _, _, _ := sim.GetContent(2, 4)
	assert.Equal(t, 'b', r)
	r, _, _, _ = sim.GetContent(2, 3)
	assert.Equal(t, '界', r)
	r, _, _, _ = sim.GetContent(9, 2)
	assert.Equal(t, '…', r)
}

func TestPostEvent(t *testing.T) {
	s, _ := newSimScreen(t, 10, 5)

	require.NoError(t, s.PostEvent(tcell.NewEventResize(20, 8)))

	// The screen may queue its own resize on init, skip until ours arrives
	for range 4 {
		ev, ok := s.PollEvent().(*tcell.EventResize)
		if !ok {
			continue
		}
		if w, h := ev.Size(); w == 20 && h == 8 {
			return
		}
	}
	t.Fatal("posted resize not delivered")
}

func TestPixelMapping(t *testing.T) {
	w, h := PixelSize(80, 24)
	assert.Equal(t, 80, w)
	assert.Equal(t, 48, h)
	assert.Equal(t, core.Point{X: 3, Y: 10}, CellOf(3, 5))
}
