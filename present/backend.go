// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package present

// Caps is the backend's capability report. It is queried exactly once,
// after a successful Init, and treated as fixed from then on.
type Caps struct {
	// PartialUpdate indicates the backend can transfer a sub-rect of
	// the frame. Without it, dirty-region submissions are downgraded
	// to full-frame ones.
	PartialUpdate bool

	// PowerSave indicates SetPowerSave is available.
	PowerSave bool

	// Contrast indicates SetContrast is available.
	Contrast bool

	// AsyncPresent indicates Present hands the transfer off (DMA, a
	// render thread) and completion arrives later via the caller's
	// OnTransferDone. Enables double buffering.
	AsyncPresent bool
}

// Backend is the display driver contract consumed by Present.
//
// Implementations range from hardware SPI/I2C drivers to in-memory mocks
// (backend/memdisplay). A Backend is driven from the owning goroutine
// only; it never calls back into Present.
type Backend interface {
	// Init prepares the panel for the given configuration. Present
	// calls it exactly once, during construction; a non-OK result
	// leaves the Present permanently uninitialized.
	Init(cfg Config) Status

	// Caps reports the backend's capabilities. Stable after Init.
	Caps() Caps

	// Present transfers frame.Region to the panel. With AsyncPresent
	// the call starts the transfer and returns immediately; the
	// hardware completion signal is then forwarded to
	// Present.OnTransferDone by the integration.
	Present(frame FrameView, mode Mode) Status

	// SetPowerSave enters or leaves the panel's low-power state.
	// Returns NotSupported when Caps().PowerSave is false.
	SetPowerSave(enable bool) Status

	// SetContrast adjusts the panel contrast/brightness.
	// Returns NotSupported when Caps().Contrast is false.
	SetContrast(value uint8) Status
}
