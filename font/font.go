// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package font

import "golang.org/x/text/encoding/charmap"

// Font is an immutable fixed-cell bitmap font table.
//
// Glyphs holds (LastChar-FirstChar+1) cells of GlyphStride bytes each,
// packed row-major and MSB-first within each row. The table is read-only
// input to the rasterizer; Font never copies or mutates it.
type Font struct {
	// GlyphWidth and GlyphHeight are the cell dimensions in pixels.
	GlyphWidth  uint8
	GlyphHeight uint8

	// FirstChar and LastChar delimit the inclusive byte range covered
	// by the table.
	FirstChar byte
	LastChar  byte

	// Ascent and Descent are the pixel extents above and below the
	// baseline. When both are zero, text layout falls back to
	// GlyphHeight for line spacing and baseline placement.
	Ascent  uint8
	Descent uint8

	// Glyphs is the packed glyph table.
	Glyphs []byte

	// Charmap optionally maps runes onto the table's byte range, for
	// tables indexed by a legacy encoding such as CP437. When nil,
	// runes up to 0xFF map to their own value.
	Charmap *charmap.Charmap
}

// Valid reports whether the font can be used for layout: nonzero cell
// dimensions, an ordered char range, and a table large enough to cover it.
func (f *Font) Valid() bool {
	if f == nil || f.Glyphs == nil {
		return false
	}
	if f.GlyphWidth == 0 || f.GlyphHeight == 0 || f.LastChar < f.FirstChar {
		return false
	}
	count := int(f.LastChar) - int(f.FirstChar) + 1
	return len(f.Glyphs) >= count*f.GlyphStride()
}

// RowStride returns the packed bytes per glyph row, ceil(GlyphWidth/8).
func (f *Font) RowStride() int {
	return (int(f.GlyphWidth) + 7) / 8
}

// GlyphStride returns the bytes per glyph cell.
func (f *Font) GlyphStride() int {
	return f.RowStride() * int(f.GlyphHeight)
}

// Glyph returns the packed rows for the given table byte, or nil when the
// byte falls outside [FirstChar, LastChar].
func (f *Font) Glyph(ch byte) []byte {
	if ch < f.FirstChar || ch > f.LastChar {
		return nil
	}
	off := (int(ch) - int(f.FirstChar)) * f.GlyphStride()
	return f.Glyphs[off : off+f.GlyphStride()]
}

// MapRune resolves a rune to a table byte. With a Charmap attached the
// rune is encoded through it; otherwise runes up to 0xFF map to their own
// value. The second result is false when the rune has no byte mapping at
// all; range checking against the glyph table is Glyph's job.
func (f *Font) MapRune(r rune) (byte, bool) {
	if f.Charmap != nil {
		return f.Charmap.EncodeRune(r)
	}
	if r >= 0 && r <= 0xFF {
		return byte(r), true
	}
	return 0, false
}
