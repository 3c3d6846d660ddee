package mono

import "github.com/gogpu/mono/font"

// TextStyle configures glyph rendering for DrawText and DrawTextTopLeft.
// The zero value of ScaleX/ScaleY is treated as 1.
type TextStyle struct {
	// Font supplies the packed glyph table. Text calls are no-ops when
	// Font is nil or invalid.
	Font *font.Font

	// Color is the pixel value for "on" glyph bits.
	Color Color

	// Op is the raster op used when plotting glyph pixels.
	Op RasterOp

	// ScaleX and ScaleY expand each glyph pixel into a ScaleX x ScaleY
	// block. Zero means 1.
	ScaleX, ScaleY uint8

	// LetterSpacing is added to the horizontal advance of every
	// character, including skipped ones. May be negative.
	LetterSpacing int8
}

// scales returns the effective scale factors (zero mapped to one).
func (ts TextStyle) scales() (int32, int32) {
	sx := int32(ts.ScaleX)
	if sx == 0 {
		sx = 1
	}
	sy := int32(ts.ScaleY)
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

// lineHeight returns the unscaled line height: ascent+descent, falling
// back to the glyph height when the font declares neither.
func lineHeight(f *font.Font) int32 {
	h := int32(f.Ascent) + int32(f.Descent)
	if h == 0 {
		h = int32(f.GlyphHeight)
	}
	return h
}

// DrawText lays out fixed-cell glyphs with the pen at baseline. The glyph
// cell top sits Ascent*ScaleY pixels above the baseline. The horizontal
// advance per character is GlyphWidth*ScaleX + LetterSpacing. A '\n'
// resets the pen X and moves the baseline down by lineHeight*ScaleY + 1,
// where lineHeight is Ascent+Descent (GlyphHeight when both are zero).
//
// Characters the font cannot map or that fall outside its glyph range are
// skipped but still advance the pen. Each "on" glyph bit is expanded into
// a ScaleX x ScaleY filled rect, so scaled text stays solid.
func (s *Surface) DrawText(baseline Point, text string, style TextStyle) {
	f := style.Font
	if text == "" || f == nil || !f.Valid() {
		return
	}

	sx, sy := style.scales()
	advance := int32(f.GlyphWidth)*sx + int32(style.LetterSpacing)
	lineAdvance := lineHeight(f)*sy + 1
	rowStride := f.RowStride()

	penX := int32(baseline.X)
	penY := int32(baseline.Y)
	for _, r := range text {
		if r == '\n' {
			penX = int32(baseline.X)
			penY += lineAdvance
			continue
		}

		if ch, ok := f.MapRune(r); ok {
			if glyph := f.Glyph(ch); glyph != nil {
				top := penY - int32(f.Ascent)*sy
				for gy := 0; gy < int(f.GlyphHeight); gy++ {
					for gx := 0; gx < int(f.GlyphWidth); gx++ {
						if glyph[gy*rowStride+gx/8]&(0x80>>uint(gx&7)) == 0 {
							continue
						}
						s.FillRect(Rect{
							X: int16(penX + int32(gx)*sx),
							Y: int16(top + int32(gy)*sy),
							W: uint16(sx),
							H: uint16(sy),
						}, style.Color, style.Op)
					}
				}
			}
		}
		penX += advance
	}
}

// DrawTextTopLeft draws text with the glyph cell anchored at top instead
// of the baseline: it computes baselineY = top.Y + Ascent*ScaleY and
// delegates to DrawText.
func (s *Surface) DrawTextTopLeft(top Point, text string, style TextStyle) {
	f := style.Font
	if f == nil || !f.Valid() {
		return
	}
	_, sy := style.scales()
	baseline := Point{
		X: top.X,
		Y: int16(int32(top.Y) + int32(f.Ascent)*sy),
	}
	s.DrawText(baseline, text, style)
}

// MeasureText returns the layout extent of text under the given style:
// the widest line's pen advance and the total line-block height. It
// performs no drawing and ignores the clip rect.
func MeasureText(text string, style TextStyle) Size {
	f := style.Font
	if text == "" || f == nil || !f.Valid() {
		return Size{}
	}

	sx, sy := style.scales()
	advance := int32(f.GlyphWidth)*sx + int32(style.LetterSpacing)
	lineAdvance := lineHeight(f)*sy + 1

	var widest, lineWidth int32
	lines := int32(1)
	for _, r := range text {
		if r == '\n' {
			lines++
			lineWidth = 0
			continue
		}
		lineWidth += advance
		widest = max(widest, lineWidth)
	}

	height := (lines-1)*lineAdvance + lineHeight(f)*sy
	if widest < 0 {
		widest = 0
	}
	return Size{W: uint16(widest), H: uint16(height)}
}
