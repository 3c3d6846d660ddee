// Package mono provides a 1-bit-per-pixel display stack for monochrome
// panels (OLED, LCD, e-paper) and their desktop mocks.
//
// # Overview
//
// mono is a pure Go rasterizer and presentation layer for bit-packed
// monochrome framebuffers. The rasterizer (Surface) draws primitives into
// an externally supplied buffer; the presentation layer (present.Present)
// manages double buffering, dirty-region tracking, and synchronous or
// asynchronous submission to a display backend.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/mono"
//		"github.com/gogpu/mono/backend/memdisplay"
//		"github.com/gogpu/mono/present"
//	)
//
//	d := memdisplay.New()
//	p := present.New(d, present.Config{Width: 128, Height: 64, DirtyTracking: true})
//
//	s := p.Surface()
//	s.Clear(mono.Black)
//	s.DrawCircle(mono.Pt(64, 32), 20, mono.White, mono.OpCopy)
//	p.PresentFrame(present.ModeAuto)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Point, Size, Rect, Color, RasterOp, Surface, TextStyle
//   - font: packed 1bpp glyph tables, conversion from golang.org/x/image faces
//   - present: double-buffer submission state machine and the Backend contract
//   - backend: pluggable display-backend registry
//   - backend/memdisplay: in-memory backend for tests, demos and previews
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Rects are
// half-open: [X, X+W) x [Y, Y+H). Pixels are packed MSB-first, row-major,
// with a configurable stride in bytes per row.
//
// # Buffer Ownership
//
// Surface borrows its pixel buffer and never allocates or frees it. The
// caller (typically present.Present) owns the storage.
package mono

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
