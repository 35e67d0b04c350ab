package widget

import (
	"testing"

	"github.com/lixenwraith/vi-gauge/core"
)

func newScreen() (*Obj, *DirtyList) {
	dirty := &DirtyList{}
	scr := NewObj(nil)
	scr.SetInvalidator(dirty)
	scr.SetCoords(core.AreaFromSize(0, 0, 100, 100))
	dirty.Reset()
	return scr, dirty
}

func TestNewObj_InheritsParent(t *testing.T) {
	scr, dirty := newScreen()
	o := NewObj(scr)

	if o.Parent() != scr {
		t.Error("expected parent link")
	}
	if o.Coords() != scr.Coords() {
		t.Errorf("expected parent coords, got %+v", o.Coords())
	}
	o.Invalidate()
	if len(dirty.Areas()) != 1 {
		t.Error("expected invalidator inherited from parent")
	}
	if !o.HasFlag(FlagClickable | FlagScrollChainHor) {
		t.Error("expected default flags")
	}
}

func TestSetCoords_NotifiesOnResizeOnly(t *testing.T) {
	scr, dirty := newScreen()
	o := NewObj(scr)
	calls := 0
	o.OnSizeChanged(func() { calls++ })

	o.SetCoords(core.AreaFromSize(10, 10, 20, 20))
	if calls != 1 {
		t.Fatalf("expected 1 size notification, got %d", calls)
	}
	o.SetCoords(core.AreaFromSize(30, 30, 20, 20))
	if calls != 1 {
		t.Errorf("move should not notify, got %d", calls)
	}
	o.SetCoords(core.AreaFromSize(30, 30, 20, 20))
	if calls != 1 {
		t.Errorf("same coords should not notify, got %d", calls)
	}

	// Old and new positions are both scheduled
	old := core.AreaFromSize(10, 10, 20, 20)
	found := false
	for _, a := range dirty.Areas() {
		if old.IsIn(a) {
			found = true
		}
	}
	if !found {
		t.Errorf("old position not invalidated: %+v", dirty.Areas())
	}
}

func TestSetCoords_NotifiesCoordsListenersOnMove(t *testing.T) {
	scr, _ := newScreen()
	o := NewObj(scr)
	var seen []core.Area
	o.OnCoordsChanged(func() { seen = append(seen, o.Coords()) })

	o.SetCoords(core.AreaFromSize(10, 10, 20, 20))
	o.SetCoords(core.AreaFromSize(30, 30, 20, 20))
	o.SetCoords(core.AreaFromSize(30, 30, 20, 20))

	want := []core.Area{core.AreaFromSize(10, 10, 20, 20), core.AreaFromSize(30, 30, 20, 20)}
	if len(seen) != len(want) {
		t.Fatalf("expected %d coords notifications, got %d", len(want), len(seen))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("notification %d: got %+v, want %+v", i, seen[i], want[i])
		}
	}
}

func TestSetStyle_NotifiesListeners(t *testing.T) {
	scr, dirty := newScreen()
	o := NewObj(scr)
	o.SetCoords(core.AreaFromSize(0, 0, 10, 10))
	dirty.Reset()

	var got []Part
	o.OnStyleChanged(func(p Part) { got = append(got, p) })

	s := DefaultStyle()
	s.BgColor = core.RGBWhite
	o.SetStyle(PartKnob, s)

	if len(got) != 1 || got[0] != PartKnob {
		t.Errorf("expected knob notification, got %v", got)
	}
	if o.Style(PartKnob).BgColor != core.RGBWhite {
		t.Error("style not stored")
	}
	if len(dirty.Areas()) == 0 {
		t.Error("style change should invalidate")
	}
}

func TestContentCoords(t *testing.T) {
	o := NewObj(nil)
	o.SetCoords(core.AreaFromSize(0, 0, 50, 40))
	s := DefaultStyle()
	s.PadLeft, s.PadRight, s.PadTop, s.PadBottom = 1, 2, 3, 4
	o.SetStyle(PartMain, s)

	want := core.Area{X1: 1, Y1: 3, X2: 47, Y2: 35}
	if got := o.ContentCoords(); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestOpaRecursive(t *testing.T) {
	scr, _ := newScreen()
	mid := NewObj(scr)
	leaf := NewObj(mid)

	s := DefaultStyle()
	s.Opa = 128
	mid.SetStyle(PartMain, s)

	if got := leaf.OpaRecursive(PartMain); got != 128 {
		t.Errorf("expected 128, got %d", got)
	}

	s.Opa = 1
	mid.SetStyle(PartMain, s)
	if got := leaf.OpaRecursive(PartIndicator); got != core.OpaTransp {
		t.Errorf("below OpaMin collapses to transparent, got %d", got)
	}
}

func TestInvalidateArea_ClippedToOverdraw(t *testing.T) {
	scr, dirty := newScreen()
	o := NewObj(scr)
	o.SetCoords(core.AreaFromSize(10, 10, 10, 10))
	o.AddExtDraw(func(cur int) int { return max(cur, 2) })
	o.RefreshExtDrawSize()
	dirty.Reset()

	if o.ExtDrawSize() != 2 {
		t.Fatalf("expected ext draw 2, got %d", o.ExtDrawSize())
	}

	o.InvalidateArea(core.AreaFromSize(0, 0, 100, 100))
	want := core.Area{X1: 8, Y1: 8, X2: 21, Y2: 21}
	if areas := dirty.Areas(); len(areas) != 1 || areas[0] != want {
		t.Errorf("expected %+v, got %+v", want, areas)
	}

	dirty.Reset()
	o.InvalidateArea(core.AreaFromSize(50, 50, 5, 5))
	if len(dirty.Areas()) != 0 {
		t.Error("areas outside the object are dropped")
	}
}

func TestValueChangedOrder(t *testing.T) {
	o := NewObj(nil)
	var order []int
	o.OnValueChanged(func() { order = append(order, 1) })
	o.OnValueChanged(func() { order = append(order, 2) })
	o.SendValueChanged()
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("expected registration order, got %v", order)
	}
}

func TestTransformPoint(t *testing.T) {
	o := NewObj(nil)
	p := core.Point{X: 3, Y: 4}
	if o.TransformPoint(p) != p {
		t.Error("nil transform is identity")
	}
	o.SetTransform(func(p core.Point) core.Point { return core.Point{X: -p.X, Y: p.Y} })
	if got := o.TransformPoint(p); got != (core.Point{X: -3, Y: 4}) {
		t.Errorf("got %v", got)
	}
}

func TestAssert(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic")
		}
	}()
	Assert(false, "bad %d", 1)
}
