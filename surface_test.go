package mono

import (
	"bytes"
	"testing"
)

// newTestSurface binds a surface to a fresh packed buffer.
func newTestSurface(w, h uint16) (*Surface, []byte) {
	stride := int(defaultStride(Size{W: w}))
	buf := make([]byte, stride*int(h))
	s := &Surface{}
	s.Bind(buf, Size{W: w, H: h}, 0)
	return s, buf
}

// bitAt samples one pixel from a packed buffer.
func bitAt(buf []byte, stride int, x, y int) bool {
	return buf[y*stride+x/8]&(0x80>>uint(x&7)) != 0
}

// countBits counts set pixels in a packed buffer.
func countBits(buf []byte) int {
	n := 0
	for _, b := range buf {
		for ; b != 0; b &= b - 1 {
			n++
		}
	}
	return n
}

func TestSurfaceUnboundIsNoOp(t *testing.T) {
	var s Surface
	// None of these may panic or record dirt.
	s.Clear(White)
	s.DrawPixel(Pt(0, 0), White, OpCopy)
	s.DrawHLine(Pt(0, 0), 5, White, OpCopy)
	s.DrawVLine(Pt(0, 0), 5, White, OpCopy)
	s.DrawLine(Pt(0, 0), Pt(3, 3), White, OpCopy)
	s.FillRect(Rt(0, 0, 4, 4), White, OpCopy)
	s.DrawCircle(Pt(2, 2), 2, White, OpCopy)
	if !s.DirtyRect().Empty() {
		t.Errorf("unbound surface accumulated dirty rect %+v", s.DirtyRect())
	}
}

func TestSurfaceBindAutoStride(t *testing.T) {
	buf := make([]byte, 2*16)
	var s Surface
	s.Bind(buf, Size{W: 10, H: 16}, 0)

	if got := s.Stride(); got != 2 {
		t.Errorf("auto stride for width 10 = %d, want 2", got)
	}
	if got := s.Clip(); got != Rt(0, 0, 10, 16) {
		t.Errorf("clip after Bind = %+v, want full bounds", got)
	}
	if !s.DirtyRect().Empty() {
		t.Errorf("dirty after Bind = %+v, want empty", s.DirtyRect())
	}
}

func TestSurfaceBindResetsClipAndDirty(t *testing.T) {
	s, _ := newTestSurface(16, 8)
	s.SetClip(Rt(1, 1, 2, 2))
	s.DrawPixel(Pt(1, 1), White, OpCopy)

	buf := make([]byte, 2*8)
	s.Bind(buf, Size{W: 16, H: 8}, 0)
	if got := s.Clip(); got != Rt(0, 0, 16, 8) {
		t.Errorf("clip after rebind = %+v, want full bounds", got)
	}
	if !s.DirtyRect().Empty() {
		t.Errorf("dirty after rebind = %+v, want empty", s.DirtyRect())
	}
}

func TestSurfaceClear(t *testing.T) {
	s, buf := newTestSurface(16, 8)

	s.Clear(White)
	for i, b := range buf {
		if b != 0xFF {
			t.Fatalf("Clear(White): byte %d = %#x, want 0xFF", i, b)
		}
	}
	if got := s.DirtyRect(); got != Rt(0, 0, 16, 8) {
		t.Errorf("dirty after Clear(White) = %+v, want full bounds", got)
	}

	s.ClearDirtyRect()
	s.Clear(Black)
	for i, b := range buf {
		if b != 0x00 {
			t.Fatalf("Clear(Black): byte %d = %#x, want 0x00", i, b)
		}
	}
	if got := s.DirtyRect(); got != Rt(0, 0, 16, 8) {
		t.Errorf("dirty after Clear(Black) = %+v, want full bounds", got)
	}
}

func TestSurfaceClearIgnoresClip(t *testing.T) {
	s, buf := newTestSurface(16, 8)
	s.SetClip(Rt(0, 0, 4, 4))
	s.Clear(White)
	if n := countBits(buf); n != 16*8 {
		t.Errorf("Clear with clip set %d pixels, want %d", n, 16*8)
	}
}

func TestSurfaceDrawPixelRasterOps(t *testing.T) {
	tests := []struct {
		name    string
		initial Color // pre-existing destination pixel
		color   Color
		op      RasterOp
		want    bool
	}{
		{"copy white over black", Black, White, OpCopy, true},
		{"copy black over white", White, Black, OpCopy, false},
		{"xor white flips set", White, White, OpXOR, false},
		{"xor white flips clear", Black, White, OpXOR, true},
		{"xor black keeps set", White, Black, OpXOR, true},
		{"and black clears", White, Black, OpAND, false},
		{"and white keeps set", White, White, OpAND, true},
		{"and white keeps clear", Black, White, OpAND, false},
		{"or white sets", Black, White, OpOR, true},
		{"or black keeps clear", Black, Black, OpOR, false},
		{"or black keeps set", White, Black, OpOR, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, buf := newTestSurface(8, 1)
			s.DrawPixel(Pt(3, 0), tt.initial, OpCopy)
			s.DrawPixel(Pt(3, 0), tt.color, tt.op)
			if got := bitAt(buf, 1, 3, 0); got != tt.want {
				t.Errorf("pixel = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSurfaceDrawPixelOutsideClip(t *testing.T) {
	s, buf := newTestSurface(16, 8)
	s.SetClip(Rt(4, 2, 4, 4))

	before := make([]byte, len(buf))
	copy(before, buf)

	outside := []Point{Pt(0, 0), Pt(3, 2), Pt(8, 2), Pt(4, 1), Pt(4, 6), Pt(-1, -1), Pt(100, 100)}
	for _, p := range outside {
		s.DrawPixel(p, White, OpCopy)
	}

	if !bytes.Equal(before, buf) {
		t.Error("out-of-clip DrawPixel mutated the buffer")
	}
	if !s.DirtyRect().Empty() {
		t.Errorf("out-of-clip DrawPixel extended dirty rect to %+v", s.DirtyRect())
	}

	s.DrawPixel(Pt(5, 3), White, OpCopy)
	if !bitAt(buf, 2, 5, 3) {
		t.Error("in-clip DrawPixel did not plot")
	}
	if got := s.DirtyRect(); got != Rt(5, 3, 1, 1) {
		t.Errorf("dirty after single pixel = %+v, want 1x1 at (5,3)", got)
	}
}

func TestSurfaceSetClipIntersectsBounds(t *testing.T) {
	s, _ := newTestSurface(16, 8)
	s.SetClip(Rt(-4, -4, 100, 100))
	if got := s.Clip(); got != Rt(0, 0, 16, 8) {
		t.Errorf("clip = %+v, want bounds", got)
	}
}

func TestSurfaceDrawHLineNegativeLength(t *testing.T) {
	forward, fbuf := newTestSurface(16, 4)
	backward, bbuf := newTestSurface(16, 4)

	forward.DrawHLine(Pt(2, 1), 5, White, OpCopy)
	backward.DrawHLine(Pt(7, 1), -5, White, OpCopy)

	if !bytes.Equal(fbuf, bbuf) {
		t.Error("DrawHLine(x=7, -5) differs from DrawHLine(x=2, 5)")
	}
	if forward.DirtyRect() != backward.DirtyRect() {
		t.Errorf("dirty rects differ: %+v vs %+v", forward.DirtyRect(), backward.DirtyRect())
	}
	if got := forward.DirtyRect(); got != Rt(2, 1, 5, 1) {
		t.Errorf("dirty = %+v, want 5x1 at (2,1)", got)
	}
}

func TestSurfaceDrawVLineNegativeLength(t *testing.T) {
	forward, fbuf := newTestSurface(8, 16)
	backward, bbuf := newTestSurface(8, 16)

	forward.DrawVLine(Pt(3, 2), 6, White, OpCopy)
	backward.DrawVLine(Pt(3, 8), -6, White, OpCopy)

	if !bytes.Equal(fbuf, bbuf) {
		t.Error("DrawVLine(y=8, -6) differs from DrawVLine(y=2, 6)")
	}
}

func TestSurfaceDrawHLineClipped(t *testing.T) {
	s, buf := newTestSurface(16, 4)
	s.SetClip(Rt(4, 0, 4, 4))
	s.DrawHLine(Pt(0, 1), 16, White, OpCopy)

	for x := 0; x < 16; x++ {
		want := x >= 4 && x < 8
		if got := bitAt(buf, 2, x, 1); got != want {
			t.Errorf("pixel (%d,1) = %v, want %v", x, got, want)
		}
	}
	if got := s.DirtyRect(); got != Rt(4, 1, 4, 1) {
		t.Errorf("dirty = %+v, want clipped span", got)
	}
}

func TestSurfaceDrawLineSinglePoint(t *testing.T) {
	s, buf := newTestSurface(16, 8)
	s.DrawLine(Pt(5, 3), Pt(5, 3), White, OpCopy)

	if n := countBits(buf); n != 1 {
		t.Fatalf("DrawLine(p,p) set %d pixels, want 1", n)
	}
	if !bitAt(buf, 2, 5, 3) {
		t.Error("DrawLine(p,p) did not plot p")
	}
}

func TestSurfaceDrawLineEndpointsInclusive(t *testing.T) {
	s, buf := newTestSurface(16, 8)
	s.DrawLine(Pt(1, 1), Pt(6, 6), White, OpCopy)

	if !bitAt(buf, 2, 1, 1) || !bitAt(buf, 2, 6, 6) {
		t.Error("DrawLine did not plot both endpoints")
	}
	// The perfect diagonal visits exactly one pixel per column.
	if n := countBits(buf); n != 6 {
		t.Errorf("diagonal set %d pixels, want 6", n)
	}
}

func TestSurfaceDrawLineShallow(t *testing.T) {
	// With dx > |dy| the error accumulation steps x every iteration:
	// exactly one pixel per column.
	s, buf := newTestSurface(16, 8)
	s.DrawLine(Pt(0, 0), Pt(6, 2), White, OpCopy)

	if n := countBits(buf); n != 7 {
		t.Errorf("shallow line set %d pixels, want 7", n)
	}
	for x := 0; x < 7; x++ {
		col := 0
		for y := 0; y < 8; y++ {
			if bitAt(buf, 2, x, y) {
				col++
			}
		}
		if col != 1 {
			t.Errorf("column %d has %d pixels, want 1", x, col)
		}
	}
}

func TestSurfaceDrawRectOutline(t *testing.T) {
	s, buf := newTestSurface(8, 8)
	s.DrawRect(Rt(1, 1, 5, 4), White, OpCopy)

	for y := 1; y < 5; y++ {
		for x := 1; x < 6; x++ {
			onEdge := y == 1 || y == 4 || x == 1 || x == 5
			if got := bitAt(buf, 1, x, y); got != onEdge {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, onEdge)
			}
		}
	}
}

func TestSurfaceDrawRectShortHeights(t *testing.T) {
	// Heights 1 and 2 draw only the horizontal edges.
	t.Run("height 1", func(t *testing.T) {
		s, buf := newTestSurface(8, 4)
		s.DrawRect(Rt(1, 1, 5, 1), White, OpCopy)
		if n := countBits(buf); n != 5 {
			t.Errorf("h=1 outline set %d pixels, want 5", n)
		}
	})

	t.Run("height 2", func(t *testing.T) {
		s, buf := newTestSurface(8, 4)
		s.DrawRect(Rt(1, 1, 5, 2), White, OpCopy)
		// Two full-width horizontal lines, no vertical edges.
		for x := 1; x < 6; x++ {
			if !bitAt(buf, 1, x, 1) || !bitAt(buf, 1, x, 2) {
				t.Errorf("missing horizontal edge pixel at x=%d", x)
			}
		}
		if n := countBits(buf); n != 10 {
			t.Errorf("h=2 outline set %d pixels, want 10", n)
		}
	})

	t.Run("height 3 has side pixels", func(t *testing.T) {
		s, buf := newTestSurface(8, 5)
		s.DrawRect(Rt(1, 1, 5, 3), White, OpCopy)
		if !bitAt(buf, 1, 1, 2) || !bitAt(buf, 1, 5, 2) {
			t.Error("h=3 outline missing vertical edge pixels on interior row")
		}
		if bitAt(buf, 1, 2, 2) || bitAt(buf, 1, 3, 2) || bitAt(buf, 1, 4, 2) {
			t.Error("h=3 outline filled the interior")
		}
	})
}

func TestSurfaceFillRect(t *testing.T) {
	s, buf := newTestSurface(16, 8)
	s.FillRect(Rt(2, 1, 5, 3), White, OpCopy)

	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			want := x >= 2 && x < 7 && y >= 1 && y < 4
			if got := bitAt(buf, 2, x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if got := s.DirtyRect(); got != Rt(2, 1, 5, 3) {
		t.Errorf("dirty = %+v, want filled rect", got)
	}
}

func TestSurfaceFillRectClipped(t *testing.T) {
	s, buf := newTestSurface(16, 8)
	s.SetClip(Rt(0, 0, 4, 4))
	s.FillRect(Rt(2, 2, 10, 10), White, OpCopy)

	if n := countBits(buf); n != 4 {
		t.Errorf("clipped fill set %d pixels, want 4", n)
	}
	if got := s.DirtyRect(); got != Rt(2, 2, 2, 2) {
		t.Errorf("dirty = %+v, want clipped fill", got)
	}
}

func TestSurfaceDrawCircleSymmetry(t *testing.T) {
	s, buf := newTestSurface(32, 32)
	center := Pt(16, 16)
	s.DrawCircle(center, 7, White, OpCopy)

	stride := 4
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if !bitAt(buf, stride, x, y) {
				continue
			}
			// Every plotted pixel must have its 8-way mirror plotted too.
			dx := x - int(center.X)
			dy := y - int(center.Y)
			mirrors := [][2]int{
				{-dx, dy}, {dx, -dy}, {-dx, -dy},
				{dy, dx}, {-dy, dx}, {dy, -dx}, {-dy, -dx},
			}
			for _, m := range mirrors {
				if !bitAt(buf, stride, int(center.X)+m[0], int(center.Y)+m[1]) {
					t.Fatalf("pixel (%d,%d) has no mirror at offset %v", x, y, m)
				}
			}
		}
	}
}

func TestSurfaceDrawCircleRadiusZero(t *testing.T) {
	s, buf := newTestSurface(8, 8)
	s.DrawCircle(Pt(4, 4), 0, White, OpCopy)
	if n := countBits(buf); n != 1 {
		t.Errorf("radius-0 circle set %d pixels, want 1", n)
	}
	if !bitAt(buf, 1, 4, 4) {
		t.Error("radius-0 circle missed the center")
	}
}

func TestSurfaceDrawBitmapStencil(t *testing.T) {
	// A cleared source bit must leave the destination untouched.
	src := []byte{0b10100000} // pixels 0 and 2 of a 4x1 bitmap
	s, buf := newTestSurface(8, 1)
	s.Clear(White)
	s.ClearDirtyRect()

	s.DrawBitmap(Pt(0, 0), src, Size{W: 4, H: 1}, Black, OpCopy)

	wantSet := map[int]bool{0: false, 1: true, 2: false, 3: true}
	for x, want := range wantSet {
		if got := bitAt(buf, 1, x, 0); got != want {
			t.Errorf("pixel (%d,0) = %v, want %v", x, got, want)
		}
	}
}

func TestSurfaceFillThenStencilRoundTrip(t *testing.T) {
	// Fill a pattern, then replay the filled buffer as a stencil onto a
	// fresh surface: the bit patterns must be identical.
	a, abuf := newTestSurface(16, 8)
	a.FillRect(Rt(3, 2, 7, 4), White, OpCopy)
	a.DrawCircle(Pt(8, 4), 3, White, OpCopy)

	b, bbuf := newTestSurface(16, 8)
	b.DrawBitmap(Pt(0, 0), abuf, Size{W: 16, H: 8}, White, OpCopy)

	if !bytes.Equal(abuf, bbuf) {
		t.Error("stencil round-trip did not reproduce the bit pattern")
	}
}

func TestSurfaceDirtyAccumulation(t *testing.T) {
	s, _ := newTestSurface(32, 32)

	s.DrawPixel(Pt(2, 3), White, OpCopy)
	s.DrawPixel(Pt(10, 20), White, OpCopy)
	if got := s.DirtyRect(); got != Rt(2, 3, 9, 18) {
		t.Errorf("dirty union = %+v, want bounding rect of both pixels", got)
	}

	s.AddDirtyRect(Rt(-10, -10, 100, 15))
	// The added rect clips to (0,0,32,5) before merging.
	want := Rt(0, 0, 32, 21)
	if got := s.DirtyRect(); got != want {
		t.Errorf("dirty after AddDirtyRect = %+v, want %+v (clipped to bounds)", got, want)
	}

	s.ClearDirtyRect()
	if !s.DirtyRect().Empty() {
		t.Errorf("dirty after clear = %+v, want empty", s.DirtyRect())
	}
}

func TestSurfaceDirtyNeverEscapesBounds(t *testing.T) {
	s, _ := newTestSurface(16, 16)
	s.DrawLine(Pt(-20, -20), Pt(40, 40), White, OpCopy)
	bounds := s.Bounds()
	if got := s.DirtyRect(); got.Intersect(bounds) != got {
		t.Errorf("dirty %+v escapes bounds %+v", got, bounds)
	}
}
