// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package device

import (
	"fmt"
	"strings"
	"sync/atomic"

	"cogentcore.org/core/base/errors"
)

var (
	// ErrWrongContext is returned when a resource is used while a
	// different Context (or none) is current.
	ErrWrongContext = errors.New("device: resource used outside of the context it was created on")

	// ErrDevice is returned when the device reports an error code
	// after an operation.
	ErrDevice = errors.New("device: graphics error")
)

// current is the Context that was most recently made current.
// OpenGL tracks this per thread; rendering in this module is expected
// to happen on one locked thread, so one process-wide value suffices.
var current atomic.Pointer[Context]

// Context is a graphics context: a [Device] together with the
// per-context bookkeeping that buffers and render states rely on.
// Resources created on one Context may only be used while it is current.
type Context struct {
	// Name is used in log and error messages.
	Name string

	// Device provides the GL entry points for this context.
	Device Device

	// BindCache optionally skips redundant buffer binds. It is disabled
	// by default; see [BindCache] for when it is safe to enable.
	BindCache BindCache
}

// NewContext returns a new Context on the given device.
// It is not made current.
func NewContext(name string, dev Device) *Context {
	return &Context{Name: name, Device: dev}
}

// MakeCurrent records this context as the current one. Call it right
// after making the native context current (e.g., glfw MakeContextCurrent).
func (cx *Context) MakeCurrent() {
	current.Store(cx)
}

// Current returns the current Context, or nil.
func Current() *Context {
	return current.Load()
}

// ClearCurrent records that no context is current.
func ClearCurrent() {
	current.Store(nil)
}

// IsCurrent returns whether this is the current context.
func (cx *Context) IsCurrent() bool {
	return cx != nil && current.Load() == cx
}

// CheckCurrent returns [ErrWrongContext] if this context is not current.
func (cx *Context) CheckCurrent() error {
	if cx.IsCurrent() {
		return nil
	}
	name := "<nil>"
	if cx != nil {
		name = cx.Name
	}
	return fmt.Errorf("%w: %s", ErrWrongContext, name)
}

// ErrCheck drains the device error queue, returning an [ErrDevice]
// error listing every code if any were pending. op names the
// operation that was just performed, for the message.
func (cx *Context) ErrCheck(op string) error {
	var codes []string
	for range 16 {
		code := cx.Device.GetError()
		if code == NoError {
			break
		}
		codes = append(codes, ErrorName(code))
	}
	if len(codes) == 0 {
		return nil
	}
	return fmt.Errorf("%s: %w: %s", op, ErrDevice, strings.Join(codes, ", "))
}

// BindCache remembers the last buffer bound to each non-indexed target,
// so repeated binds of the same buffer can be skipped.
// The cache assumes that nothing else binds buffers behind its back,
// so it is unsound if other code calls BindBuffer directly on the
// same context; it is therefore disabled by default.
type BindCache struct {
	// Enabled turns on skipping of redundant binds.
	Enabled bool

	last map[Target]uint32
}

// Bind binds id to target on dev, unless the cache is enabled and
// id is already known to be bound there. It returns whether a device
// call was made.
func (bc *BindCache) Bind(dev Device, target Target, id uint32) bool {
	if bc.Enabled {
		if last, ok := bc.last[target]; ok && last == id {
			return false
		}
	}
	dev.BindBuffer(target, id)
	if bc.last == nil {
		bc.last = make(map[Target]uint32)
	}
	bc.last[target] = id
	return true
}

// Forget removes id from the cache, for when the buffer is deleted
// (a new buffer may later reuse the same name).
func (bc *BindCache) Forget(id uint32) {
	for t, last := range bc.last {
		if last == id {
			delete(bc.last, t)
		}
	}
}

// Reset clears all cached binds.
func (bc *BindCache) Reset() {
	bc.last = nil
}
