package widget

import "github.com/lixenwraith/vi-gauge/core"

// maxDirtyAreas bounds the list; overflow collapses everything into one area
const maxDirtyAreas = 32

// DirtyList accumulates invalidated areas for the next repaint
// Overlapping areas are merged when the union is no larger than the two separately
type DirtyList struct {
	areas []core.Area
	all   bool
}

// Invalidate adds an area
func (d *DirtyList) Invalidate(a core.Area) {
	if a.Empty() {
		return
	}
	for i, existing := range d.areas {
		if a.IsIn(existing) {
			return
		}
		if existing.IsOn(a) {
			joined := existing.Join(a)
			if joined.Size() <= existing.Size()+a.Size() {
				d.areas = append(d.areas[:i], d.areas[i+1:]...)
				d.Invalidate(joined)
				return
			}
		}
	}
	if len(d.areas) >= maxDirtyAreas {
		merged := a
		for _, existing := range d.areas {
			merged = merged.Join(existing)
		}
		d.areas = append(d.areas[:0], merged)
		d.all = true
		return
	}
	d.areas = append(d.areas, a)
}

// Areas returns the pending areas
func (d *DirtyList) Areas() []core.Area {
	return d.areas
}

// Overflowed reports whether the list collapsed into a single area
func (d *DirtyList) Overflowed() bool {
	return d.all
}

// Reset clears pending areas after a repaint
func (d *DirtyList) Reset() {
	d.areas = d.areas[:0]
	d.all = false
}
