// Package anim steps integer value animations from the UI loop.
//
// Animations are keyed by owner so a widget can cancel everything bound to
// an object before that object goes away.
package anim

import (
	"time"
)

// Resolution is the fixed-point unit of animation progress
const Resolution = 1024

// Path maps progress [0, Resolution] to eased progress, may leave the range to overshoot
type Path func(t int32) int32

// Linear path
func Linear(t int32) int32 { return t }

// EaseOut decelerates toward the end
func EaseOut(t int32) int32 { return bezier3(t, 0, 900, 950, Resolution) }

// Overshoot passes the target and settles back
func Overshoot(t int32) int32 { return bezier3(t, 0, 1000, 1300, Resolution) }

// bezier3 evaluates a cubic bezier with control values in Resolution units
func bezier3(t, u0, u1, u2, u3 int32) int32 {
	t64 := int64(t)
	r := int64(Resolution) - t64
	v := int64(u0)*r*r*r +
		3*int64(u1)*r*r*t64 +
		3*int64(u2)*r*t64*t64 +
		int64(u3)*t64*t64*t64
	return int32(v >> 30)
}

// Canceler drops every animation bound to an owner and reports how many were removed
type Canceler interface {
	Cancel(owner any) int
}

// Anim describes one value animation
// An animation with the same Owner and Key as a running one replaces it
type Anim struct {
	Owner    any
	Key      string
	From, To int32
	Duration time.Duration
	Path     Path
	Exec     func(v int32)
	Ready    func()

	start    time.Time
	canceled bool
}

// Timeline holds running animations
// Single-threaded: Start, Cancel and Tick must run on the UI loop
type Timeline struct {
	anims []*Anim
	Clock func() time.Time
}

// NewTimeline creates a timeline on the wall clock
func NewTimeline() *Timeline {
	return &Timeline{Clock: time.Now}
}

// Start registers a and applies its first value immediately
func (tl *Timeline) Start(a Anim) {
	for _, cur := range tl.anims {
		if cur.Owner == a.Owner && cur.Key == a.Key {
			cur.canceled = true
		}
	}
	tl.compact()

	if a.Path == nil {
		a.Path = Linear
	}
	a.start = tl.Clock()
	tl.anims = append(tl.anims, &a)
	if a.Exec != nil {
		a.Exec(a.From)
	}
}

// Cancel drops all animations of owner
func (tl *Timeline) Cancel(owner any) int {
	n := 0
	for _, a := range tl.anims {
		if a.Owner == owner && !a.canceled {
			a.canceled = true
			n++
		}
	}
	tl.compact()
	return n
}

// Running returns the number of live animations
func (tl *Timeline) Running() int {
	return len(tl.anims)
}

// Tick advances every animation to the current clock
// Exec callbacks may start or cancel animations
func (tl *Timeline) Tick() {
	now := tl.Clock()
	snapshot := append([]*Anim(nil), tl.anims...)

	for _, a := range snapshot {
		if a.canceled {
			continue
		}
		elapsed := now.Sub(a.start)
		if a.Duration <= 0 || elapsed >= a.Duration {
			a.canceled = true
			if a.Exec != nil {
				a.Exec(a.To)
			}
			if a.Ready != nil {
				a.Ready()
			}
			continue
		}

		progress := int32(int64(elapsed) * Resolution / int64(a.Duration))
		eased := int64(a.Path(progress))
		v := int64(a.From) + (int64(a.To)-int64(a.From))*eased/Resolution
		if a.Exec != nil {
			a.Exec(int32(v))
		}
	}
	tl.compact()
}

func (tl *Timeline) compact() {
	live := tl.anims[:0]
	for _, a := range tl.anims {
		if !a.canceled {
			live = append(live, a)
		}
	}
	for i := len(live); i < len(tl.anims); i++ {
		tl.anims[i] = nil
	}
	tl.anims = live
}
