// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package present

import "github.com/gogpu/mono"

// Rotation is the panel orientation, in 90-degree steps clockwise.
type Rotation uint8

const (
	R0 Rotation = iota
	R90
	R180
	R270
)

// BufferMode selects how the backend addresses the framebuffer.
type BufferMode uint8

const (
	// FullBuffer transfers whole rows at a time.
	FullBuffer BufferMode = iota

	// PageBuffer groups rows into pages of PageRows rows each, the
	// native addressing of SSD1306-class controllers.
	PageBuffer
)

// Mode is the submission intent passed to PresentFrame and forwarded to
// the backend after capability resolution.
type Mode uint8

const (
	// ModeAuto presents the accumulated dirty region when dirty
	// tracking is enabled, the full frame otherwise.
	ModeAuto Mode = iota

	// ModeFull presents the whole frame.
	ModeFull

	// ModeDirty presents only the accumulated dirty region.
	ModeDirty
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeFull:
		return "full"
	case ModeDirty:
		return "dirty"
	default:
		return "unknown"
	}
}

// Config describes the panel and the presentation policy. It is fixed at
// construction except for Rotation, which SetRotation may update.
type Config struct {
	// Width and Height are the panel dimensions in pixels. Both must
	// be nonzero.
	Width, Height uint16

	// Rotation is the initial panel orientation.
	Rotation Rotation

	// BufferMode selects full-row or paged addressing.
	BufferMode BufferMode

	// PageRows is the rows per page and must be nonzero in PageBuffer
	// mode. Ignored in FullBuffer mode.
	PageRows uint8

	// DirtyTracking enables dirty-region submissions for ModeAuto.
	// When false, ModeAuto always presents the full frame.
	DirtyTracking bool
}

// strideBytes returns the packed framebuffer stride, ceil(width/8).
func (c Config) strideBytes() uint16 {
	return (c.Width + 7) / 8
}

// framebufferBytes returns the bytes one framebuffer requires.
func (c Config) framebufferBytes() int {
	return int(c.strideBytes()) * int(c.Height)
}

// fullRect returns the whole frame as a rect.
func (c Config) fullRect() mono.Rect {
	return mono.Rect{W: c.Width, H: c.Height}
}

// FrameView is the immutable handoff passed to Backend.Present. It
// describes one complete framebuffer plus the region the backend must
// transfer. The backend must not retain Bits past the transfer: on the
// asynchronous path the buffer is recycled as the draw target after the
// completion signal.
type FrameView struct {
	// Bits is the full 1bpp framebuffer, row-major, MSB-first.
	Bits []byte

	// Width and Height are the frame dimensions in pixels.
	Width, Height uint16

	// Stride is the bytes per row.
	Stride uint16

	// Region is the sub-rect to transfer, already clipped to the frame.
	Region mono.Rect
}
