// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package present implements the double-buffer submission state machine
// between the mono rasterizer and a display backend.
//
// A Present owns two framebuffers sized by a once-validated capacity,
// keeps a mono.Surface bound to the active draw buffer, and negotiates
// backend capabilities once at construction. Submissions resolve an
// update region from the surface's dirty rect (or an explicit rect) and
// hand a FrameView to the backend. When the backend presents
// asynchronously, the draw buffer is swapped so the caller keeps drawing
// while hardware reads the old one.
//
// # Concurrency
//
// A single owning goroutine draws and submits. Exactly one external
// completion signal (a DMA/SPI transfer-complete interrupt, or the
// backend's equivalent) may call OnTransferDone concurrently with it. The
// in-flight flag is the only state shared between the two contexts and is
// an atomic; nothing else in Present or Surface is touched from the
// completion context. Nothing blocks: backpressure is expressed solely
// through the Busy status.
//
// # Errors
//
// Every operation is total and returns a Status. A construction failure
// (bad config, insufficient capacity, backend init error) leaves the
// Present permanently uninitialized and every subsequent call returns
// InitErr. Missing capabilities yield NotSupported, never silent
// ignoring.
package present
