// Package terminal presents a raster canvas on a character terminal.
//
// Each cell shows two vertical pixels with the upper half block glyph: the
// foreground paints the top pixel and the background the bottom one, so a
// w*h terminal displays a w*2h image. Only dirty areas are re-blitted.
package terminal

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-gauge/core"
)

// ErrNotInitialized is returned by operations that need Init first
var ErrNotInitialized = errors.New("terminal: not initialized")

// halfBlock is the upper half block, fg is the top pixel
const halfBlock = '▀'

// Screen wraps a tcell screen with half-block blitting
type Screen struct {
	mu          sync.Mutex
	scr         tcell.Screen
	initialized bool
	finalized   bool
	log         zerolog.Logger
}

// New wraps scr, a nil scr opens the controlling terminal on Init
func New(scr tcell.Screen, log zerolog.Logger) *Screen {
	return &Screen{scr: scr, log: log.With().Str("component", "terminal").Logger()}
}

// Init enters raw mode and enables mouse reporting
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if s.scr == nil {
		scr, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal: open screen: %w", err)
		}
		s.scr = scr
	}
	if err := s.scr.Init(); err != nil {
		return fmt.Errorf("terminal: init: %w", err)
	}
	s.scr.EnableMouse()
	s.scr.HideCursor()
	s.scr.Clear()
	s.initialized = true

	w, h := s.scr.Size()
	s.log.Info().Int("cols", w).Int("rows", h).Msg("screen ready")
	return nil
}

// Fini restores terminal state, safe to call multiple times
func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}
	s.finalized = true
	s.scr.DisableMouse()
	s.scr.Fini()
}

// Size returns the terminal size in cells
func (s *Screen) Size() (cols, rows int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return 0, 0
	}
	return s.scr.Size()
}

// PixelSize returns the canvas size that fills rows
func PixelSize(cols, rows int) (w, h int) {
	return cols, rows * 2
}

// CellOf maps a terminal cell to the canvas pixel a pointer on it addresses
// The top pixel of the cell is reported
func CellOf(x, y int) core.Point {
	return core.Point{X: x, Y: y * 2}
}

// Blit copies the pixels of area from img into cells, rows are widened to whole cells
func (s *Screen) Blit(img *image.RGBA, area core.Area) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}

	b := img.Bounds()
	cols, rows := s.scr.Size()
	x1 := max(area.X1, b.Min.X, 0)
	x2 := min(area.X2, b.Max.X-1, cols-1)
	r1 := max(area.Y1, b.Min.Y, 0) / 2
	r2 := min(area.Y2/2, rows-1)

	for row := r1; row <= r2; row++ {
		top := row * 2
		for x := x1; x <= x2; x++ {
			fg := pixel(img, x, top)
			bg := pixel(img, x, top+1)
			st := tcell.StyleDefault.Foreground(fg).Background(bg)
			s.scr.SetContent(x, row, halfBlock, nil, st)
		}
	}
	return nil
}

// pixel reads img at (x, y), rows past the bottom edge read black
func pixel(img *image.RGBA, x, y int) tcell.Color {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return tcell.NewRGBColor(0, 0, 0)
	}
	p := img.RGBAAt(x, y)
	return tcell.NewRGBColor(int32(p.R), int32(p.G), int32(p.B))
}

// Text writes a single line at (x, y), truncated to the screen width
// Returns the number of columns used
func (s *Screen) Text(x, y int, text string, fg, bg core.RGB) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return 0, ErrNotInitialized
	}

	cols, _ := s.scr.Size()
	if x >= cols {
		return 0, nil
	}
	text = runewidth.Truncate(text, cols-x, "…")

	st := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
		Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
	col := x
	for _, r := range text {
		s.scr.SetContent(col, y, r, nil, st)
		col += runewidth.RuneWidth(r)
	}
	return col - x, nil
}

// Show flushes pending cell changes
func (s *Screen) Show() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}
	s.scr.Show()
	return nil
}

// Sync forces a full redraw after resize
func (s *Screen) Sync() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		s.scr.Sync()
	}
}

// PollEvent blocks until the next event, nil after Fini
func (s *Screen) PollEvent() tcell.Event {
	s.mu.Lock()
	scr := s.scr
	ok := s.initialized
	s.mu.Unlock()

	if !ok {
		return nil
	}
	return scr.PollEvent()
}

// PostEvent injects a synthetic event
func (s *Screen) PostEvent(ev tcell.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}
	return s.scr.PostEvent(ev)
}
