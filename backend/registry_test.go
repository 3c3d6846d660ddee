// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"testing"

	"github.com/gogpu/mono/present"
)

type stubBackend struct{}

func (stubBackend) Init(present.Config) present.Status                   { return present.OK }
func (stubBackend) Caps() present.Caps                                   { return present.Caps{} }
func (stubBackend) Present(present.FrameView, present.Mode) present.Status { return present.OK }
func (stubBackend) SetPowerSave(bool) present.Status                     { return present.NotSupported }
func (stubBackend) SetContrast(uint8) present.Status                     { return present.NotSupported }

func TestRegisterAndGet(t *testing.T) {
	const name = "stub"
	Register(name, func() present.Backend { return stubBackend{} })
	defer Unregister(name)

	if !IsRegistered(name) {
		t.Fatal("stub backend not registered")
	}
	if b := Get(name); b == nil {
		t.Fatal("Get returned nil for a registered backend")
	}
	found := false
	for _, n := range Available() {
		if n == name {
			found = true
		}
	}
	if !found {
		t.Errorf("Available() = %v, missing %q", Available(), name)
	}
}

func TestGetUnknownBackend(t *testing.T) {
	if b := Get("no-such-backend"); b != nil {
		t.Errorf("Get of unknown backend = %v, want nil", b)
	}
	if IsRegistered("no-such-backend") {
		t.Error("unknown backend reported as registered")
	}
}

func TestUnregister(t *testing.T) {
	const name = "ephemeral"
	Register(name, func() present.Backend { return stubBackend{} })
	Unregister(name)
	if IsRegistered(name) {
		t.Error("backend still registered after Unregister")
	}
}

func TestDefaultFallsBackToAnyRegistered(t *testing.T) {
	// Not on the priority list, but the only one registered.
	const name = "offlist"
	Register(name, func() present.Backend { return stubBackend{} })
	defer Unregister(name)

	if b := Default(); b == nil {
		t.Error("Default() = nil with a registered backend")
	}
}
