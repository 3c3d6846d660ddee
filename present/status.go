// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package present

// Status is the result code shared by the submission protocol and the
// Backend contract. All operations are total: protocol violations are
// reported through Status values, never panics or internal retries.
type Status uint8

const (
	// OK indicates success. Region-less submissions (an empty dirty
	// rect) also return OK: nothing to transfer is not an error.
	OK Status = iota

	// InitErr indicates the Present (or backend) never initialized, or
	// failed to. Once construction fails, every call returns InitErr.
	InitErr

	// ArgErr indicates a protocol argument violation, such as EndFrame
	// without a matching BeginFrame.
	ArgErr

	// SizeErr indicates a dimension mismatch, such as a FrameView that
	// does not match the backend's configured panel size.
	SizeErr

	// StateErr indicates a spurious or duplicate protocol signal, such
	// as OnTransferDone with no transfer in flight.
	StateErr

	// Busy indicates an asynchronous transfer is still in flight, or a
	// frame is already begun. The caller decides whether to retry.
	Busy

	// NotSupported indicates the backend lacks the required capability.
	NotSupported
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case InitErr:
		return "init error"
	case ArgErr:
		return "argument error"
	case SizeErr:
		return "size error"
	case StateErr:
		return "state error"
	case Busy:
		return "busy"
	case NotSupported:
		return "not supported"
	default:
		return "unknown"
	}
}
