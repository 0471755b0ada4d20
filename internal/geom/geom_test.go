package geom

import "testing"

func TestRectDimensions(t *testing.T) {
	r := Rect{LL: Point{2, 3}, UR: Point{6, 7}}
	if r.Width() != 4 || r.Height() != 4 {
		t.Fatalf("got w=%v h=%v, want 4,4", r.Width(), r.Height())
	}
	if r.HalfPerimeter() != 8 {
		t.Fatalf("got HPWL contribution %v, want 8", r.HalfPerimeter())
	}
}

func TestRectIsValid(t *testing.T) {
	cases := []struct {
		r    Rect
		want bool
	}{
		{Rect{Point{0, 0}, Point{1, 1}}, true},
		{Rect{Point{-1, 0}, Point{1, 1}}, false},
		{Rect{Point{0, 0}, Point{0, 1}}, false},
	}
	for _, c := range cases {
		if got := c.r.IsValid(); got != c.want {
			t.Errorf("IsValid(%+v) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{Point{0, 0}, Point{4, 4}}
	b := Rect{Point{3, 3}, Point{5, 5}}
	c := Rect{Point{4, 4}, Point{5, 5}}
	if !a.Intersects(b) {
		t.Error("expected overlap")
	}
	if a.Intersects(c) {
		t.Error("half-open rectangles sharing only a corner must not intersect")
	}
}

func TestBoundingBox(t *testing.T) {
	rs := []Rect{
		{Point{0, 0}, Point{2, 3}},
		{Point{2, 0}, Point{6, 1}},
	}
	bb := BoundingBox(rs)
	want := Rect{Point{0, 0}, Point{6, 3}}
	if bb != want {
		t.Fatalf("got %+v, want %+v", bb, want)
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	if bb := BoundingBox(nil); bb != (Rect{}) {
		t.Fatalf("expected zero Rect, got %+v", bb)
	}
}
