// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package memdisplay provides an in-memory present.Backend.
//
// It plays the role the desktop mock window plays for the embedded
// original: a stand-in panel for tests, demos and development machines.
// Presented frames are expanded into an 8-bit grayscale image that can be
// snapshotted directly or scaled up into an RGBA preview, the way the
// mock window magnified its tiny panel.
package memdisplay

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/mono"
	"github.com/gogpu/mono/backend"
	"github.com/gogpu/mono/present"
)

// init registers the in-memory display on package import.
func init() {
	backend.Register(backend.BackendMemDisplay, func() present.Backend {
		return New()
	})
}

// Display is an in-memory monochrome panel. The zero value is not ready;
// use New. Capabilities are fixed at creation through options, defaulting
// to partial update, power save and contrast with synchronous presents.
//
// Display records the power-save and contrast state plus submission
// counters so tests and demos can observe backend traffic.
type Display struct {
	caps present.Caps
	cfg  present.Config
	img  *image.Gray

	inited     bool
	powerSave  bool
	contrast   uint8
	presents   int
	lastRegion mono.Rect
	lastMode   present.Mode
}

// Option configures a Display during creation.
type Option func(*Display)

// WithCaps replaces the default capability set.
func WithCaps(c present.Caps) Option {
	return func(d *Display) {
		d.caps = c
	}
}

// WithAsyncPresent marks presents as asynchronous. The display completes
// transfers instantly, but the completion signal stays the caller's job:
// forward it with present.Present.OnTransferDone, as a driver's interrupt
// handler would.
func WithAsyncPresent() Option {
	return func(d *Display) {
		d.caps.AsyncPresent = true
	}
}

// New creates an uninitialized display; present.New drives Init.
func New(opts ...Option) *Display {
	d := &Display{
		caps: present.Caps{
			PartialUpdate: true,
			PowerSave:     true,
			Contrast:      true,
		},
		contrast: 0x7F,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Init allocates the backing image for the configured panel size.
func (d *Display) Init(cfg present.Config) present.Status {
	if cfg.Width == 0 || cfg.Height == 0 {
		return present.InitErr
	}
	d.cfg = cfg
	d.img = image.NewGray(image.Rect(0, 0, int(cfg.Width), int(cfg.Height)))
	d.inited = true
	return present.OK
}

// Caps reports the capability set fixed at creation.
func (d *Display) Caps() present.Caps {
	return d.caps
}

// Present expands the frame's 1bpp region into the backing image. Pixels
// outside frame.Region are left untouched, which is what makes partial
// updates observable in tests.
func (d *Display) Present(frame present.FrameView, mode present.Mode) present.Status {
	if !d.inited {
		return present.InitErr
	}
	if frame.Bits == nil || frame.Stride == 0 {
		return present.ArgErr
	}
	if frame.Width != d.cfg.Width || frame.Height != d.cfg.Height {
		return present.SizeErr
	}

	region := frame.Region.Intersect(mono.Rect{W: frame.Width, H: frame.Height})
	for y := int(region.Y); y < int(region.Y)+int(region.H); y++ {
		row := frame.Bits[y*int(frame.Stride):]
		for x := int(region.X); x < int(region.X)+int(region.W); x++ {
			v := uint8(0x00)
			if row[x/8]&(0x80>>uint(x&7)) != 0 {
				v = 0xFF
			}
			d.img.SetGray(x, y, color.Gray{Y: v})
		}
	}

	d.presents++
	d.lastRegion = region
	d.lastMode = mode
	mono.Logger().Debug("memdisplay: frame presented")
	return present.OK
}

// SetPowerSave records the power-save state.
func (d *Display) SetPowerSave(enable bool) present.Status {
	if !d.caps.PowerSave {
		return present.NotSupported
	}
	if !d.inited {
		return present.InitErr
	}
	d.powerSave = enable
	return present.OK
}

// SetContrast records the contrast value.
func (d *Display) SetContrast(value uint8) present.Status {
	if !d.caps.Contrast {
		return present.NotSupported
	}
	if !d.inited {
		return present.InitErr
	}
	d.contrast = value
	return present.OK
}

// Snapshot returns a copy of the panel contents.
func (d *Display) Snapshot() *image.Gray {
	if d.img == nil {
		return image.NewGray(image.Rect(0, 0, 0, 0))
	}
	out := image.NewGray(d.img.Bounds())
	copy(out.Pix, d.img.Pix)
	return out
}

// Preview returns the panel contents magnified by scale using
// nearest-neighbor interpolation, suitable for saving or displaying on a
// desktop. Scale values below 1 are treated as 1.
func (d *Display) Preview(scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	src := d.Snapshot()
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// PresentCount returns the number of successful Present calls.
func (d *Display) PresentCount() int {
	return d.presents
}

// LastRegion returns the region of the most recent Present.
func (d *Display) LastRegion() mono.Rect {
	return d.lastRegion
}

// LastMode returns the mode of the most recent Present.
func (d *Display) LastMode() present.Mode {
	return d.lastMode
}

// PowerSave returns the recorded power-save state.
func (d *Display) PowerSave() bool {
	return d.powerSave
}

// Contrast returns the recorded contrast value.
func (d *Display) Contrast() uint8 {
	return d.contrast
}
