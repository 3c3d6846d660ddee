// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package present

// Option configures a Present during creation.
type Option func(*options)

// options holds optional configuration for Present creation.
type options struct {
	// capacity is the per-framebuffer allocation in bytes. Zero means
	// exactly the bytes the config requires.
	capacity int
}

// WithBufferCapacity fixes the per-framebuffer allocation to n bytes.
//
// The embedded original of this stack sizes its two framebuffers with a
// compile-time capacity; this option is the hosted equivalent. The
// capacity check stays a hard construction-time failure: when the config
// requires more bytes than n, New leaves the Present permanently
// uninitialized.
//
// Example:
//
//	// A 128x64 panel needs 1024 bytes; reserve room for a 128x128 one.
//	p := present.New(d, cfg, present.WithBufferCapacity(2048))
func WithBufferCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}
