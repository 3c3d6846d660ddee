package mono

// Surface rasterizes primitives into a borrowed 1bpp, row-major,
// MSB-first bit-packed buffer.
//
// A Surface never allocates or frees pixel storage: the buffer is supplied
// by the caller via Bind and must stay alive while the Surface is bound.
// An unbound Surface (nil buffer or zero stride) turns every drawing call
// into a silent no-op.
//
// Besides the pixels, a Surface owns two pieces of state:
//
//   - the clip rect: drawing outside it is dropped without error
//   - the dirty rect: a running union of every touched region since the
//     last ClearDirtyRect, used by present.Present to minimize transfers
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
type Surface struct {
	bits   []byte
	size   Size
	stride uint16
	clip   Rect
	dirty  Rect
}

// defaultStride returns the packed stride ceil(w/8) in bytes.
func defaultStride(size Size) uint16 {
	if size.W == 0 {
		return 0
	}
	return (size.W + 7) / 8
}

// Bind attaches the surface to an external pixel buffer. A stride of 0
// auto-computes the packed stride ceil(width/8). The buffer must hold at
// least stride*height bytes; Bind does not verify this.
//
// Bind resets the clip to the full bounds and clears the dirty rect.
// Passing a nil buffer unbinds the surface.
func (s *Surface) Bind(bits []byte, size Size, stride uint16) {
	s.bits = bits
	s.size = size
	if stride == 0 {
		stride = defaultStride(size)
	}
	s.stride = stride
	s.ResetClip()
	s.ClearDirtyRect()
}

// Size returns the bound dimensions in pixels.
func (s *Surface) Size() Size {
	return s.size
}

// Stride returns the bound stride in bytes per row.
func (s *Surface) Stride() uint16 {
	return s.stride
}

// Bounds returns the full surface rect at the origin.
func (s *Surface) Bounds() Rect {
	return Rect{W: s.size.W, H: s.size.H}
}

// bound reports whether drawing can touch pixels at all.
func (s *Surface) bound() bool {
	return s.bits != nil && s.stride != 0
}

// Clear fills the whole buffer with the given color and marks the full
// bounds dirty. Clear ignores the clip rect.
func (s *Surface) Clear(c Color) {
	if !s.bound() || s.size.W == 0 || s.size.H == 0 {
		return
	}
	fill := byte(0x00)
	if c == White {
		fill = 0xFF
	}
	n := int(s.stride) * int(s.size.H)
	for i := range s.bits[:n] {
		s.bits[i] = fill
	}
	s.markDirty(s.Bounds())
}

// SetClip restricts subsequent drawing to the given rect, intersected
// with the surface bounds.
func (s *Surface) SetClip(r Rect) {
	s.clip = r.Intersect(s.Bounds())
}

// Clip returns the active clip rect.
func (s *Surface) Clip() Rect {
	return s.clip
}

// ResetClip restores the clip to the full surface bounds.
func (s *Surface) ResetClip() {
	s.clip = s.Bounds()
}

// DrawPixel plots a single pixel. Points outside the clip rect are
// dropped silently. The touched pixel is added to the dirty rect.
func (s *Surface) DrawPixel(p Point, c Color, op RasterOp) {
	if !s.bound() || !s.clip.Contains(p) {
		return
	}
	s.plotUnchecked(int32(p.X), int32(p.Y), c, op)
	s.markDirty(Rect{X: p.X, Y: p.Y, W: 1, H: 1})
}

// DrawHLine draws a horizontal span starting at p. A negative length is
// normalized to a forward span starting length pixels earlier, so a span
// at x=7 with length -5 equals a span at x=2 with length 5. The span is
// clipped once and the dirty rect updated once for the clipped extent.
func (s *Surface) DrawHLine(p Point, length int16, c Color, op RasterOp) {
	if !s.bound() || length == 0 {
		return
	}
	x := int32(p.X)
	span := int32(length)
	if span < 0 {
		x += span
		span = -span
	}

	r := Rect{X: int16(x), Y: p.Y, W: uint16(span), H: 1}
	r = r.Intersect(s.clip)
	if r.Empty() {
		return
	}
	for cx := int32(r.X); cx < int32(r.X)+int32(r.W); cx++ {
		s.plotUnchecked(cx, int32(r.Y), c, op)
	}
	s.markDirty(r)
}

// DrawVLine draws a vertical span starting at p. Negative lengths are
// normalized the same way as DrawHLine.
func (s *Surface) DrawVLine(p Point, length int16, c Color, op RasterOp) {
	if !s.bound() || length == 0 {
		return
	}
	y := int32(p.Y)
	span := int32(length)
	if span < 0 {
		y += span
		span = -span
	}

	r := Rect{X: p.X, Y: int16(y), W: 1, H: uint16(span)}
	r = r.Intersect(s.clip)
	if r.Empty() {
		return
	}
	for cy := int32(r.Y); cy < int32(r.Y)+int32(r.H); cy++ {
		s.plotUnchecked(int32(r.X), cy, c, op)
	}
	s.markDirty(r)
}

// DrawLine draws a line from p0 to p1 inclusive using integer Bresenham
// stepping. Every visited point goes through DrawPixel, so out-of-clip
// points are skipped silently.
func (s *Surface) DrawLine(p0, p1 Point, c Color, op RasterOp) {
	x0 := int32(p0.X)
	y0 := int32(p0.Y)
	x1 := int32(p1.X)
	y1 := int32(p1.Y)

	dx := abs32(x1 - x0)
	sx := int32(-1)
	if x0 < x1 {
		sx = 1
	}
	dy := -abs32(y1 - y0)
	sy := int32(-1)
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	for {
		s.DrawPixel(Point{X: int16(x0), Y: int16(y0)}, c, op)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawRect draws the outline of a rect: the top and bottom horizontal
// edges, plus the left and right vertical edges restricted to the interior
// rows so corners are not plotted twice (XOR-safe).
//
// For heights 1 and 2 only the horizontal edges are drawn; the vertical
// edges are intentionally omitted in this case.
func (s *Surface) DrawRect(r Rect, c Color, op RasterOp) {
	if r.Empty() {
		return
	}

	bottom := int16(int32(r.Y) + int32(r.H) - 1) //nolint:gosec // edge stays within int16 after int32 math
	s.DrawHLine(Point{X: r.X, Y: r.Y}, int16(r.W), c, op)
	if r.H > 1 {
		s.DrawHLine(Point{X: r.X, Y: bottom}, int16(r.W), c, op)
	}
	if r.H > 2 {
		s.DrawVLine(Point{X: r.X, Y: r.Y + 1}, int16(r.H-2), c, op)
		if r.W > 1 {
			right := int16(int32(r.X) + int32(r.W) - 1)
			s.DrawVLine(Point{X: right, Y: r.Y + 1}, int16(r.H-2), c, op)
		}
	}
}

// FillRect fills a rect, clipped to the clip region, row by row.
func (s *Surface) FillRect(r Rect, c Color, op RasterOp) {
	r = r.Intersect(s.clip)
	if r.Empty() {
		return
	}
	for y := int32(r.Y); y < int32(r.Y)+int32(r.H); y++ {
		s.DrawHLine(Point{X: r.X, Y: int16(y)}, int16(r.W), c, op)
	}
}

// DrawCircle draws the outline of a circle using the midpoint algorithm
// with 8-way symmetry. The interior is not filled.
func (s *Surface) DrawCircle(center Point, radius uint8, c Color, op RasterOp) {
	x := int32(radius)
	y := int32(0)
	err := 1 - x

	cx := int32(center.X)
	cy := int32(center.Y)
	for x >= y {
		s.DrawPixel(Point{X: int16(cx + x), Y: int16(cy + y)}, c, op)
		s.DrawPixel(Point{X: int16(cx + y), Y: int16(cy + x)}, c, op)
		s.DrawPixel(Point{X: int16(cx - y), Y: int16(cy + x)}, c, op)
		s.DrawPixel(Point{X: int16(cx - x), Y: int16(cy + y)}, c, op)
		s.DrawPixel(Point{X: int16(cx - x), Y: int16(cy - y)}, c, op)
		s.DrawPixel(Point{X: int16(cx - y), Y: int16(cy - x)}, c, op)
		s.DrawPixel(Point{X: int16(cx + y), Y: int16(cy - x)}, c, op)
		s.DrawPixel(Point{X: int16(cx + x), Y: int16(cy - y)}, c, op)

		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2 * (y - x + 1)
		}
	}
}

// DrawBitmap draws a foreign 1bpp bitmap as a stencil: set source bits are
// plotted as foreground through DrawPixel, cleared source bits leave the
// destination untouched. This is not an opaque blit.
//
// The source is row-major, MSB-first, with a packed stride of ceil(w/8).
func (s *Surface) DrawBitmap(p Point, bits []byte, size Size, foreground Color, op RasterOp) {
	if bits == nil || size.W == 0 || size.H == 0 {
		return
	}
	srcStride := int(defaultStride(size))
	for y := 0; y < int(size.H); y++ {
		row := bits[y*srcStride:]
		for x := 0; x < int(size.W); x++ {
			if row[x/8]&(0x80>>uint(x&7)) == 0 {
				continue
			}
			s.DrawPixel(Point{
				X: int16(int32(p.X) + int32(x)),
				Y: int16(int32(p.Y) + int32(y)),
			}, foreground, op)
		}
	}
}

// DirtyRect returns the running union of every region touched since the
// last ClearDirtyRect, clipped to the surface bounds.
func (s *Surface) DirtyRect() Rect {
	return s.dirty
}

// ClearDirtyRect resets the dirty rect to empty.
func (s *Surface) ClearDirtyRect() {
	s.dirty = Rect{}
}

// AddDirtyRect merges an externally known changed region into the dirty
// rect, clipped to the surface bounds.
func (s *Surface) AddDirtyRect(r Rect) {
	s.markDirty(r)
}

// plotUnchecked combines one source bit with the destination. The caller
// guarantees (x, y) lies inside the bound buffer.
func (s *Surface) plotUnchecked(x, y int32, c Color, op RasterOp) {
	idx := int(y)*int(s.stride) + int(x>>3)
	mask := byte(0x80) >> uint(x&7)
	srcSet := c == White

	switch op {
	case OpCopy:
		if srcSet {
			s.bits[idx] |= mask
		} else {
			s.bits[idx] &^= mask
		}
	case OpXOR:
		if srcSet {
			s.bits[idx] ^= mask
		}
	case OpAND:
		if !srcSet {
			s.bits[idx] &^= mask
		}
	case OpOR:
		if srcSet {
			s.bits[idx] |= mask
		}
	}
}

// markDirty unions a region into the dirty rect, clipped to bounds.
func (s *Surface) markDirty(r Rect) {
	clipped := r.Intersect(s.Bounds())
	if clipped.Empty() {
		return
	}
	s.dirty = s.dirty.Union(clipped)
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
