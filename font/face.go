// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package font

import (
	"errors"
	"fmt"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FromFace converts a fixed-advance golang.org/x/image font.Face into a
// packed Font covering the byte range [first, last]. Glyph coverage is
// thresholded at 50% to 1bpp.
//
// The face must be monospaced with a whole-pixel advance; proportional
// faces are rejected. Characters the face cannot render are left as blank
// cells rather than failing the conversion.
func FromFace(face xfont.Face, first, last byte) (*Font, error) {
	if face == nil {
		return nil, errors.New("font: nil face")
	}
	if first > last {
		return nil, fmt.Errorf("font: char range [%d, %d] is inverted", first, last)
	}

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	cellH := ascent + descent
	if cellH <= 0 || cellH > 255 {
		return nil, fmt.Errorf("font: cell height %d outside [1, 255]", cellH)
	}

	cellW, err := fixedAdvance(face, first, last)
	if err != nil {
		return nil, err
	}

	rowStride := (cellW + 7) / 8
	glyphStride := rowStride * cellH
	glyphs := make([]byte, glyphStride*(int(last)-int(first)+1))

	dot := fixed.P(0, ascent)
	for ch := int(first); ch <= int(last); ch++ {
		dr, mask, maskp, _, ok := face.Glyph(dot, rune(ch))
		if !ok {
			continue // blank cell
		}
		cell := glyphs[(ch-int(first))*glyphStride:]
		for y := dr.Min.Y; y < dr.Max.Y; y++ {
			if y < 0 || y >= cellH {
				continue
			}
			for x := dr.Min.X; x < dr.Max.X; x++ {
				if x < 0 || x >= cellW {
					continue
				}
				_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
				if a >= 0x8000 {
					cell[y*rowStride+x/8] |= 0x80 >> uint(x&7)
				}
			}
		}
	}

	return &Font{
		GlyphWidth:  uint8(cellW),
		GlyphHeight: uint8(cellH),
		FirstChar:   first,
		LastChar:    last,
		Ascent:      uint8(ascent),
		Descent:     uint8(descent),
		Glyphs:      glyphs,
	}, nil
}

// fixedAdvance returns the face's whole-pixel advance, verifying every
// renderable character in the range shares it.
func fixedAdvance(face xfont.Face, first, last byte) (int, error) {
	width := 0
	for ch := int(first); ch <= int(last); ch++ {
		adv, ok := face.GlyphAdvance(rune(ch))
		if !ok {
			continue
		}
		if adv&0x3F != 0 {
			return 0, fmt.Errorf("font: advance of %q is not a whole pixel", rune(ch))
		}
		w := adv.Ceil()
		if width == 0 {
			width = w
			continue
		}
		if w != width {
			return 0, fmt.Errorf("font: face is proportional (%q advances %d, want %d)", rune(ch), w, width)
		}
	}
	if width <= 0 || width > 255 {
		return 0, fmt.Errorf("font: cell width %d outside [1, 255]", width)
	}
	return width, nil
}

// face7x13 caches the basicfont conversion. The conversion cannot fail:
// Face7x13 is monospaced with a 7px advance and covers printable ASCII.
var face7x13 = sync.OnceValue(func() *Font {
	f, err := FromFace(basicfont.Face7x13, ' ', '~')
	if err != nil {
		panic("font: converting basicfont.Face7x13: " + err.Error())
	}
	return f
})

// Face7x13 returns a packed conversion of basicfont.Face7x13 covering
// printable ASCII (0x20..0x7E). The result is shared; treat it as
// read-only.
func Face7x13() *Font {
	return face7x13()
}
