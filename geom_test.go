package mono

import "testing"

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"zero value", Rect{}, true},
		{"zero width", Rt(3, 4, 0, 5), true},
		{"zero height", Rt(3, 4, 5, 0), true},
		{"single pixel", Rt(0, 0, 1, 1), false},
		{"negative origin", Rt(-10, -10, 4, 4), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Empty(); got != tt.want {
				t.Errorf("%+v.Empty() = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", Rt(0, 0, 10, 10), Rt(5, 5, 10, 10), Rt(5, 5, 5, 5)},
		{"contained", Rt(0, 0, 10, 10), Rt(2, 3, 4, 5), Rt(2, 3, 4, 5)},
		{"disjoint", Rt(0, 0, 4, 4), Rt(10, 10, 4, 4), Rect{}},
		{"touching edges", Rt(0, 0, 4, 4), Rt(4, 0, 4, 4), Rect{}},
		{"empty operand", Rt(0, 0, 4, 4), Rect{}, Rect{}},
		{"negative coords", Rt(-5, -5, 10, 10), Rt(-2, -2, 10, 10), Rt(-2, -2, 7, 7)},
		{
			"int16 extremes",
			Rt(-32768, -32768, 65535, 65535),
			Rt(32000, 32000, 700, 700),
			Rt(32000, 32000, 767, 767),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect = %+v, want %+v", got, tt.want)
			}
			// Intersection is commutative.
			if got := tt.b.Intersect(tt.a); got != tt.want {
				t.Errorf("Intersect (swapped) = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectIntersectSelf(t *testing.T) {
	r := Rt(3, -4, 7, 9)
	if got := r.Intersect(r); got != r {
		t.Errorf("r.Intersect(r) = %+v, want %+v", got, r)
	}
}

func TestRectUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"disjoint", Rt(0, 0, 2, 2), Rt(8, 8, 2, 2), Rt(0, 0, 10, 10)},
		{"overlap", Rt(0, 0, 6, 6), Rt(4, 4, 6, 6), Rt(0, 0, 10, 10)},
		{"empty left identity", Rect{}, Rt(3, 4, 5, 6), Rt(3, 4, 5, 6)},
		{"empty right identity", Rt(3, 4, 5, 6), Rect{}, Rt(3, 4, 5, 6)},
		{"both empty", Rect{}, Rect{}, Rect{}},
		{"negative coords", Rt(-5, -5, 2, 2), Rt(3, 3, 2, 2), Rt(-5, -5, 10, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectClippedToBoundsIsContained(t *testing.T) {
	bounds := Rt(0, 0, 128, 64)
	rects := []Rect{
		Rt(-10, -10, 300, 300),
		Rt(100, 50, 100, 100),
		Rt(-32768, -32768, 65535, 65535),
		Rt(5, 5, 1, 1),
	}
	for _, r := range rects {
		clipped := r.Intersect(bounds)
		if clipped.Empty() {
			continue
		}
		if clipped.Intersect(bounds) != clipped {
			t.Errorf("clip of %+v = %+v escapes bounds %+v", r, clipped, bounds)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rt(2, 2, 4, 4)
	inside := []Point{Pt(2, 2), Pt(5, 5), Pt(3, 4)}
	outside := []Point{Pt(1, 2), Pt(6, 2), Pt(2, 6), Pt(-3, -3)}
	for _, p := range inside {
		if !r.Contains(p) {
			t.Errorf("%+v.Contains(%+v) = false, want true", r, p)
		}
	}
	for _, p := range outside {
		if r.Contains(p) {
			t.Errorf("%+v.Contains(%+v) = true, want false", r, p)
		}
	}
}
