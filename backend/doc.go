// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package backend provides a pluggable display backend registry.
//
// Display drivers register a factory via init() and are selected at
// runtime by name, so applications can pick a panel driver without
// compiling against it directly:
//
//	import _ "github.com/gogpu/mono/backend/memdisplay"
//
//	b := backend.Get(backend.BackendMemDisplay)
//	p := present.New(b, cfg)
//
// Default() walks a priority list and returns the best available
// driver; on a development machine that is the in-memory display.
package backend
