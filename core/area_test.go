package core

import "testing"

func TestAreaSize(t *testing.T) {
	a := AreaFromSize(2, 3, 10, 4)
	if a != (Area{X1: 2, Y1: 3, X2: 11, Y2: 6}) {
		t.Fatalf("unexpected area %+v", a)
	}
	if a.Width() != 10 || a.Height() != 4 || a.Size() != 40 {
		t.Errorf("expected 10x4=40, got %dx%d=%d", a.Width(), a.Height(), a.Size())
	}

	degenerate := Area{X1: 5, X2: 4}
	if !degenerate.Empty() || degenerate.Size() != 0 {
		t.Errorf("expected empty area with size 0, got %d", degenerate.Size())
	}
}

func TestAreaIntersect(t *testing.T) {
	a := Area{X1: 0, Y1: 0, X2: 9, Y2: 9}
	b := Area{X1: 5, Y1: 5, X2: 14, Y2: 14}

	r, ok := a.Intersect(b)
	if !ok || r != (Area{X1: 5, Y1: 5, X2: 9, Y2: 9}) {
		t.Errorf("expected 5..9, got %+v %v", r, ok)
	}
	if !a.IsOn(b) {
		t.Error("expected overlap")
	}

	// Touching edges share a pixel row because corners are inclusive
	c := Area{X1: 9, Y1: 0, X2: 12, Y2: 3}
	if !a.IsOn(c) {
		t.Error("expected inclusive edge overlap")
	}

	far := Area{X1: 20, Y1: 20, X2: 30, Y2: 30}
	if _, ok := a.Intersect(far); ok {
		t.Error("expected no intersection")
	}
}

func TestAreaJoinIncreaseMove(t *testing.T) {
	a := Area{X1: 0, Y1: 0, X2: 3, Y2: 3}
	b := Area{X1: 6, Y1: -2, X2: 7, Y2: 1}
	if j := a.Join(b); j != (Area{X1: 0, Y1: -2, X2: 7, Y2: 3}) {
		t.Errorf("join: got %+v", j)
	}
	if g := a.Increase(2, 1); g != (Area{X1: -2, Y1: -1, X2: 5, Y2: 4}) {
		t.Errorf("increase: got %+v", g)
	}
	if m := a.Move(10, 5); m != (Area{X1: 10, Y1: 5, X2: 13, Y2: 8}) {
		t.Errorf("move: got %+v", m)
	}
	if !a.IsIn(a.Increase(1, 1)) || a.Increase(1, 1).IsIn(a) {
		t.Error("containment is one way")
	}
}

func TestAreaPointAndCenter(t *testing.T) {
	a := AreaFromSize(10, 10, 5, 5)
	if c := a.Center(); c != (Point{X: 12, Y: 12}) {
		t.Errorf("center: got %v", c)
	}
	if !a.IsPointOn(Point{X: 14, Y: 14}) || a.IsPointOn(Point{X: 15, Y: 14}) {
		t.Error("point test must be inclusive of X2 and exclusive past it")
	}
	if p := (Point{X: 3, Y: 4}).Add(Point{X: 1, Y: 1}).Sub(Point{X: 2, Y: 2}); p != (Point{X: 2, Y: 3}) {
		t.Errorf("point arithmetic: got %v", p)
	}
}
