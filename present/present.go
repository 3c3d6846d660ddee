// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package present

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/mono"
)

// Present owns two framebuffers and runs the submission protocol against
// a Backend. Drawing happens through the bound Surface; PresentFrame and
// PresentRect hand the current buffer to the backend and, on the
// asynchronous path, swap the draw target.
//
// All methods except OnTransferDone must be called from the single owning
// goroutine. OnTransferDone is the completion signal and may run
// concurrently with it.
type Present struct {
	cfg     Config
	caps    Caps
	backend Backend

	// buffers are the two fixed framebuffers; drawIndex selects the
	// one the Surface is bound to. The other may be in flight.
	buffers    [2][]byte
	frameBytes int
	drawIndex  int

	surface mono.Surface

	// inFlight is the only state shared with the completion context.
	inFlight atomic.Bool

	initialized bool
	inFrame     bool
}

// New constructs a Present around backend and cfg.
//
// Construction validates the config (nonzero dimensions, nonzero PageRows
// in PageBuffer mode), checks the required framebuffer bytes against the
// configured capacity, and initializes the backend. Any failure leaves
// the returned Present permanently uninitialized: every call on it
// returns InitErr. On success the backend capabilities are cached, the
// Surface is bound to buffer 0, and the whole frame is marked dirty so
// the first ModeAuto submission pushes a complete frame.
func New(backend Backend, cfg Config, opts ...Option) *Present {
	p := &Present{cfg: cfg, backend: backend}
	log := mono.Logger()

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if backend == nil {
		log.Warn("present: nil backend")
		return p
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		log.Warn("present: zero panel dimension",
			slog.Int("width", int(cfg.Width)), slog.Int("height", int(cfg.Height)))
		return p
	}
	if cfg.BufferMode == PageBuffer && cfg.PageRows == 0 {
		log.Warn("present: page mode with zero page rows")
		return p
	}

	required := cfg.framebufferBytes()
	capacity := o.capacity
	if capacity == 0 {
		capacity = required
	}
	if required > capacity {
		log.Warn("present: framebuffer exceeds capacity",
			slog.Int("required", required), slog.Int("capacity", capacity))
		return p
	}

	if st := backend.Init(cfg); st != OK {
		log.Warn("present: backend init failed", slog.String("status", st.String()))
		return p
	}

	p.caps = backend.Caps()
	p.frameBytes = required
	for i := range p.buffers {
		p.buffers[i] = make([]byte, capacity)
	}
	p.bindDrawSurface()
	p.surface.AddDirtyRect(cfg.fullRect())
	p.initialized = true

	log.Info("present: display initialized",
		slog.Int("width", int(cfg.Width)), slog.Int("height", int(cfg.Height)),
		slog.Bool("partial_update", p.caps.PartialUpdate),
		slog.Bool("async_present", p.caps.AsyncPresent))
	return p
}

// Surface returns the rasterizer bound to the active draw buffer. The
// pointer stays valid across buffer swaps; the surface is rebound under
// the hood.
func (p *Present) Surface() *mono.Surface {
	return &p.surface
}

// Backend returns the owned backend.
func (p *Present) Backend() Backend {
	return p.backend
}

// Capabilities returns the caps cached at construction.
func (p *Present) Capabilities() Caps {
	return p.caps
}

// Config returns the current configuration.
func (p *Present) Config() Config {
	return p.cfg
}

// Initialized reports whether construction succeeded.
func (p *Present) Initialized() bool {
	return p.initialized
}

// IsTransferInProgress reports whether an asynchronous transfer is in
// flight. True only strictly between a successful asynchronous submission
// and its completion signal.
func (p *Present) IsTransferInProgress() bool {
	return p.inFlight.Load()
}

// OnTransferDone is the backend completion signal. Call it from the
// transfer-complete interrupt (or the integration's equivalent) when the
// backend reported AsyncPresent.
//
// Duplicate or spurious signals return StateErr: the flag is cleared with
// a compare-and-exchange, so a losing race is a safe no-op.
func (p *Present) OnTransferDone() Status {
	if !p.initialized {
		return InitErr
	}
	if !p.caps.AsyncPresent {
		return NotSupported
	}
	if !p.inFlight.CompareAndSwap(true, false) {
		return StateErr
	}
	return OK
}

// BeginFrame marks the start of a frame. It is an optional reentrancy
// guard only: drawing is not gated by the BeginFrame/EndFrame pair.
// Returns Busy when a frame is already begun.
func (p *Present) BeginFrame() Status {
	if !p.initialized {
		return InitErr
	}
	if p.inFrame {
		return Busy
	}
	p.inFrame = true
	return OK
}

// EndFrame marks the end of a frame begun with BeginFrame. Returns ArgErr
// when no frame is open.
func (p *Present) EndFrame() Status {
	if !p.initialized {
		return InitErr
	}
	if !p.inFrame {
		return ArgErr
	}
	p.inFrame = false
	return OK
}

// PresentFrame submits the current frame with the given intent.
//
// Without the PartialUpdate capability, ModeAuto and ModeDirty are
// downgraded to ModeFull. ModeAuto honors Config.DirtyTracking: disabled
// tracking means a full-frame submission. A dirty-region submission with
// an empty accumulated region is a no-op returning OK.
func (p *Present) PresentFrame(mode Mode) Status {
	if !p.initialized {
		return InitErr
	}

	resolved := mode
	if !p.caps.PartialUpdate && (resolved == ModeAuto || resolved == ModeDirty) {
		resolved = ModeFull
	}

	var region mono.Rect
	if resolved == ModeFull || (resolved == ModeAuto && !p.cfg.DirtyTracking) {
		resolved = ModeFull
		region = p.cfg.fullRect()
	} else {
		region = p.surface.DirtyRect().Intersect(p.cfg.fullRect())
		if region.Empty() {
			return OK
		}
		resolved = ModeDirty
	}

	return p.submit(region, resolved)
}

// PresentRect submits an explicit region, clipped to the frame bounds.
// An empty region after clipping is a no-op returning OK. Without the
// PartialUpdate capability the submission covers the full frame.
func (p *Present) PresentRect(r mono.Rect) Status {
	if !p.initialized {
		return InitErr
	}

	region := r.Intersect(p.cfg.fullRect())
	if region.Empty() {
		return OK
	}

	mode := ModeDirty
	if !p.caps.PartialUpdate {
		mode = ModeFull
		region = p.cfg.fullRect()
	}
	return p.submit(region, mode)
}

// SetRotation records the panel orientation in the config and forces a
// full-frame dirty mark so the next submission repaints everything.
func (p *Present) SetRotation(r Rotation) Status {
	if !p.initialized {
		return InitErr
	}
	p.cfg.Rotation = r
	p.surface.AddDirtyRect(p.cfg.fullRect())
	return OK
}

// SetPowerSave forwards the power-save toggle to the backend. Returns
// NotSupported when the backend lacks the capability.
func (p *Present) SetPowerSave(enable bool) Status {
	if !p.initialized {
		return InitErr
	}
	if !p.caps.PowerSave {
		return NotSupported
	}
	return p.backend.SetPowerSave(enable)
}

// SetContrast forwards a contrast value to the backend. Returns
// NotSupported when the backend lacks the capability.
func (p *Present) SetContrast(value uint8) Status {
	if !p.initialized {
		return InitErr
	}
	if !p.caps.Contrast {
		return NotSupported
	}
	return p.backend.SetContrast(value)
}

// submit hands the current draw buffer to the backend and runs the
// synchronous or asynchronous completion protocol.
func (p *Present) submit(region mono.Rect, mode Mode) Status {
	frame := FrameView{
		Bits:   p.buffers[p.drawIndex][:p.frameBytes],
		Width:  p.cfg.Width,
		Height: p.cfg.Height,
		Stride: p.cfg.strideBytes(),
		Region: region,
	}

	if !p.caps.AsyncPresent {
		st := p.backend.Present(frame, mode)
		if st == OK {
			p.surface.ClearDirtyRect()
		}
		return st
	}

	// The acquire load below is the sole mutual-exclusion gate between
	// the owning goroutine and the completion signal.
	if p.inFlight.Load() {
		return Busy
	}

	st := p.backend.Present(frame, mode)
	if st != OK {
		return st
	}

	p.inFlight.Store(true)
	p.swapToNextDrawBuffer(region)
	mono.Logger().Debug("present: async frame submitted",
		slog.Int("x", int(region.X)), slog.Int("y", int(region.Y)),
		slog.Int("w", int(region.W)), slog.Int("h", int(region.H)),
		slog.Int("draw_buffer", p.drawIndex))
	return OK
}

// swapToNextDrawBuffer copies the just-submitted region into the other
// buffer (keeping it content-consistent outside the in-flight region),
// flips the draw index, rebinds the surface and clears the dirty rect.
func (p *Present) swapToNextDrawBuffer(syncRegion mono.Rect) {
	submitted := p.drawIndex
	next := submitted ^ 1
	p.copyRegionBetweenBuffers(submitted, next, syncRegion)
	p.drawIndex = next
	p.bindDrawSurface()
	p.surface.ClearDirtyRect()
}

// copyRegionBetweenBuffers copies a pixel region between the two
// framebuffers at byte granularity: each row copy covers the whole bytes
// spanning the region's column range, so the copied boundary may extend
// up to 7 bits beyond the pixel rect on either side. Documented rounding,
// not a defect: both buffers hold identical content there afterwards.
func (p *Present) copyRegionBetweenBuffers(src, dst int, region mono.Rect) {
	clipped := region.Intersect(p.cfg.fullRect())
	if clipped.Empty() {
		return
	}

	stride := int(p.cfg.strideBytes())
	xByteStart := int(clipped.X) / 8
	xByteEnd := (int(clipped.X) + int(clipped.W) + 7) / 8
	n := xByteEnd - xByteStart
	if n == 0 {
		return
	}

	for y := int(clipped.Y); y < int(clipped.Y)+int(clipped.H); y++ {
		off := y*stride + xByteStart
		copy(p.buffers[dst][off:off+n], p.buffers[src][off:off+n])
	}
}

// bindDrawSurface points the surface at the active framebuffer.
func (p *Present) bindDrawSurface() {
	p.surface.Bind(p.buffers[p.drawIndex][:p.frameBytes],
		mono.Size{W: p.cfg.Width, H: p.cfg.Height}, p.cfg.strideBytes())
}
