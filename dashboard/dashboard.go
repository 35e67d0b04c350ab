// Package dashboard composes a meter and a slider into one interactive view.
//
// The dashboard owns the widget tree, the animation timeline and the canvas.
// Slider changes are mapped onto the meter's scale and pushed into every
// indicator bound to the slider, animated when a duration is configured.
package dashboard

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-gauge/anim"
	"github.com/lixenwraith/vi-gauge/config"
	"github.com/lixenwraith/vi-gauge/core"
	"github.com/lixenwraith/vi-gauge/draw"
	"github.com/lixenwraith/vi-gauge/meter"
	"github.com/lixenwraith/vi-gauge/render"
	"github.com/lixenwraith/vi-gauge/slider"
	"github.com/lixenwraith/vi-gauge/vmath"
	"github.com/lixenwraith/vi-gauge/widget"
)

// Feedback receives interaction cues, audio.Clicker implements it
type Feedback interface {
	Tick(ratio uint8)
	Arrive()
}

// Focus is the widget receiving navigation keys
type Focus uint8

const (
	FocusSlider Focus = iota
	FocusMeter
	focusCount
)

func (f Focus) String() string {
	if f == FocusMeter {
		return "meter"
	}
	return "slider"
}

// Layout constants in pixels
const (
	margin       = 2
	sliderHeight = 6
)

type binding struct {
	ind    *meter.Indicator
	follow string
}

// Dashboard is the composed view, all methods run on the UI loop
type Dashboard struct {
	cfg      *config.Config
	log      zerolog.Logger
	feedback Feedback
	muted    bool

	dirty    widget.DirtyList
	root     *widget.Obj
	canvas   *render.Canvas
	timeline *anim.Timeline
	meter    *meter.Meter
	slider   *slider.Slider
	bindings []binding
	bg       core.RGB

	focus     Focus
	group     widget.Group
	keypad    widget.Indev
	pointer   widget.Indev
	pressed   bool
	animating bool
}

// Option configures a Dashboard at creation
type Option func(*Dashboard)

// WithLogger sets the logger, default is a no-op logger
func WithLogger(l zerolog.Logger) Option {
	return func(d *Dashboard) { d.log = l }
}

// WithFeedback sets the receiver of tick and arrival cues
func WithFeedback(f Feedback) Option {
	return func(d *Dashboard) { d.feedback = f }
}

// WithClock replaces the animation clock
func WithClock(clock func() time.Time) Option {
	return func(d *Dashboard) { d.timeline.Clock = clock }
}

// New builds the widget tree from cfg on a w x h pixel canvas
func New(cfg *config.Config, w, h int, opts ...Option) (*Dashboard, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode, _ := slider.ParseMode(cfg.Slider.Mode)

	d := &Dashboard{
		cfg:      cfg,
		log:      zerolog.Nop(),
		canvas:   render.NewCanvas(w, h),
		timeline: anim.NewTimeline(),
		bg:       config.MustColor(cfg.UI.Background),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.log = d.log.With().Str("component", "dashboard").Logger()

	d.keypad = widget.Indev{Type: widget.IndevKeypad, Group: &d.group}
	d.pointer = widget.Indev{Type: widget.IndevPointer, ScrollLimit: cfg.UI.ScrollLimit}

	d.root = widget.NewObj(nil)
	d.root.SetInvalidator(widget.InvalidatorFunc(d.invalidate))
	d.root.SetCoords(d.canvas.Bounds())

	d.meter = meter.New(d.root,
		meter.WithLogger(d.log),
		meter.WithAnimator(d.timeline),
	)
	mc := cfg.Meter
	d.meter.SetScaleRange(mc.Min, mc.Max, mc.AngleRange, mc.Rotation)
	d.meter.SetScaleTicks(mc.TickCount, mc.TickWidth, mc.TickLength, config.MustColor(mc.TickColor))
	d.meter.SetScaleMajorTicks(mc.MajorNth, mc.MajorWidth, mc.MajorLength, config.MustColor(mc.MajorColor), mc.LabelGap)
	d.meter.SetScaleRadiusMod(mc.RadiusMod)

	sc := cfg.Slider
	d.slider = slider.New(d.root,
		slider.WithLogger(d.log),
		slider.WithMode(mode),
		slider.WithRange(sc.Min, sc.Max),
	)
	d.slider.SetValue(sc.Value)
	d.slider.SetStartValue(sc.StartValue)

	d.applyTheme()
	d.Layout(w, h)

	if err := d.addIndicators(); err != nil {
		return nil, err
	}
	d.slider.OnValueChanged(d.sliderChanged)
	d.sync(false)

	d.log.Info().
		Int("width", w).
		Int("height", h).
		Int("indicators", len(d.meter.Indicators())).
		Str("mode", mode.String()).
		Msg("dashboard ready")
	return d, nil
}

// Layout places the meter above a slider band filling a w x h canvas
func (d *Dashboard) Layout(w, h int) {
	d.canvas.Resize(w, h)
	bounds := d.canvas.Bounds()
	d.root.SetCoords(bounds)

	knobPad := sliderHeight / 2
	sliderY := bounds.Y2 - margin - sliderHeight + 1
	side := max(min(w-2*margin, sliderY-2*margin), 1)
	d.meter.SetCoords(core.AreaFromSize((w-side)/2, margin, side, side))
	d.slider.SetCoords(core.Area{
		X1: margin + knobPad,
		Y1: sliderY,
		X2: max(bounds.X2-margin-knobPad, margin+knobPad),
		Y2: sliderY + sliderHeight - 1,
	})
	d.root.Invalidate()

	d.log.Debug().Int("width", w).Int("height", h).Int("meter", side).Msg("layout")
}

func (d *Dashboard) addIndicators() error {
	for i, ic := range d.cfg.Meter.Indicators {
		color := config.MustColor(ic.Color)
		var ind *meter.Indicator
		switch ic.Kind {
		case config.KindArc:
			ind = d.meter.AddArc(ic.Width, color, ic.RadiusMod)
		case config.KindNeedleLine:
			ind = d.meter.AddNeedleLine(ic.Width, color, ic.RadiusMod)
		case config.KindNeedleImage:
			src, pivot := needleImage(d.meter.Width()/2+int(ic.RadiusMod), int(max(ic.Width, 3)), color)
			ind = d.meter.AddNeedleImage(src, pivot.X, pivot.Y)
		case config.KindScaleLines:
			ind = d.meter.AddScaleLines(color, config.MustColor(ic.ColorEnd), ic.Local, int16(ic.Width))
		}
		if ind == nil {
			return fmt.Errorf("dashboard: indicator %d (%s) not added", i, ic.Kind)
		}

		d.meter.SetIndicatorStartValue(ind, ic.StartValue)
		d.meter.SetIndicatorEndValue(ind, ic.EndValue)
		if ic.Opa != 0 {
			d.meter.SetIndicatorOpa(ind, core.Opa(ic.Opa))
		}
		if ic.Follow != config.FollowNone {
			d.bindings = append(d.bindings, binding{ind: ind, follow: ic.Follow})
		}
	}
	return nil
}

// invalidate records a to the dirty list, clipped to the canvas
func (d *Dashboard) invalidate(a core.Area) {
	if clipped, ok := a.Intersect(d.canvas.Bounds()); ok {
		d.dirty.Invalidate(clipped)
	}
}

// toScale maps a slider value onto the meter's scale
func (d *Dashboard) toScale(v int32) int32 {
	sMin, sMax := d.slider.Range()
	mc := d.cfg.Meter
	return vmath.Map(v, sMin, sMax, mc.Min, mc.Max)
}

// sync pushes the slider state into every bound indicator
func (d *Dashboard) sync(animate bool) {
	value := d.toScale(d.slider.Value())
	start := d.toScale(d.slider.StartValue())

	var dur time.Duration
	if animate {
		dur = time.Duration(d.cfg.UI.AnimationMs) * time.Millisecond
	}
	for _, b := range d.bindings {
		if !animate {
			d.timeline.Cancel(b.ind)
		}
		switch b.follow {
		case config.FollowValue:
			d.meter.AnimateIndicatorValue(b.ind, value, dur, anim.EaseOut)
		case config.FollowRange:
			d.meter.AnimateIndicatorStartValue(b.ind, start, dur, anim.EaseOut)
			d.meter.AnimateIndicatorEndValue(b.ind, value, dur, anim.EaseOut)
		}
	}
	if animate && d.timeline.Running() > 0 {
		d.animating = true
	}
}

func (d *Dashboard) sliderChanged() {
	d.sync(true)

	if d.feedback == nil || d.muted {
		return
	}
	sMin, sMax := d.slider.Range()
	d.feedback.Tick(uint8(vmath.Map(d.slider.Value(), sMin, sMax, 0, 255)))
}

// SetValue moves the slider value and applies it to the bound indicators at once
func (d *Dashboard) SetValue(v int32) {
	d.slider.SetValue(v)
	d.sync(false)
}

// SetStartValue moves the slider start and applies it at once
func (d *Dashboard) SetStartValue(v int32) {
	d.slider.SetStartValue(v)
	d.sync(false)
}

// Frame advances animations and repaints the dirty areas
// The returned areas are the canvas regions that changed
func (d *Dashboard) Frame() []core.Area {
	d.timeline.Tick()
	if d.animating && d.timeline.Running() == 0 {
		d.animating = false
		if d.feedback != nil && !d.muted {
			d.feedback.Arrive()
		}
	}

	areas := d.dirty.Areas()
	if len(areas) == 0 {
		return nil
	}
	out := append([]core.Area(nil), areas...)
	d.canvas.Repaint(out, d.bg, d.paint)
	d.dirty.Reset()
	return out
}

func (d *Dashboard) paint(layer draw.Layer) {
	clip := d.canvas.Clip()
	ev := widget.Event{Code: widget.EventDrawMain, Layer: layer}
	if clip.IsOn(d.meter.Coords().Increase(d.meter.ExtDrawSize(), d.meter.ExtDrawSize())) {
		d.meter.HandleEvent(&ev)
	}
	if clip.IsOn(d.slider.Coords().Increase(d.slider.ExtDrawSize(), d.slider.ExtDrawSize())) {
		d.slider.HandleEvent(&ev)
	}
}

// Canvas returns the render target
func (d *Dashboard) Canvas() *render.Canvas {
	return d.canvas
}

// Meter returns the meter widget
func (d *Dashboard) Meter() *meter.Meter {
	return d.meter
}

// Slider returns the slider widget
func (d *Dashboard) Slider() *slider.Slider {
	return d.slider
}

// Focus returns the widget receiving navigation keys
func (d *Dashboard) Focus() Focus {
	return d.focus
}

// Editing reports whether the focus group is in edit mode
func (d *Dashboard) Editing() bool {
	return d.group.Editing
}

// Muted reports whether feedback cues are suppressed
func (d *Dashboard) Muted() bool {
	return d.muted
}

// Status is the one-line summary shown under the canvas
func (d *Dashboard) Status() string {
	s := fmt.Sprintf(" value %d", d.slider.Value())
	if d.slider.Mode() == slider.ModeRange {
		s = fmt.Sprintf(" range %d..%d", d.slider.StartValue(), d.slider.Value())
	}
	s += "  focus " + d.focus.String()
	if d.group.Editing {
		if d.slider.LeftKnobFocused() {
			s += " [edit start]"
		} else {
			s += " [edit]"
		}
	}
	if d.muted {
		s += "  muted"
	}
	return s
}
