// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package font defines the packed 1bpp glyph tables consumed by the mono
// rasterizer's text layout.
//
// A Font is a fixed-cell bitmap font: every glyph occupies the same
// GlyphWidth x GlyphHeight cell, packed row-major and MSB-first, indexed
// by a contiguous byte range [FirstChar, LastChar]. This matches the table
// format shipped with monochrome OLED/LCD driver libraries.
//
// Tables can be authored by hand, generated offline, or converted at
// runtime from any fixed-advance golang.org/x/image/font.Face via
// FromFace. Face7x13 returns a ready-to-use conversion of the classic
// basicfont 7x13 face.
//
// Fonts whose byte range is not ASCII (CP437-style tables are common on
// embedded panels) can attach a golang.org/x/text/encoding/charmap.Charmap
// so text layout maps runes onto the table's byte indices.
package font
