// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package buffer provides [Buffer], a GPU buffer that is filled and read
// using the std140 / std430 layout rules of the layout package.
//
// There are two ways to get data into a Buffer:
//
//   - The bulk path ([Fill], [FillRange], [AllocateFill] and the special
//     Fill methods) uploads a whole slice in one call. Arrays are tightly
//     packed after aligning their start, whatever the layout standard.
//   - The streaming path maps a range of the buffer with [Buffer.StartWrite]
//     or [Buffer.StartRead], then [Write] / [WriteArray] / [Read] / [ReadArray]
//     values one at a time, and finishes with [Buffer.StopReadWrite].
//     Under std140, streamed arrays have one element per 16 byte slot.
//
// Both paths return the byte offset of what they wrote, so callers can record
// field offsets as they go. All methods must be called while the Context the
// buffer was created on is current; violations of this and the other usage
// rules are returned as errors and never silently ignored.
package buffer

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gl/device"
	"cogentcore.org/gl/layout"
)

// MapModes is the kind of map session active on a buffer.
type MapModes int32

const (
	MapNone MapModes = iota
	MapWrite
	MapRead
)

func (mm MapModes) String() string {
	switch mm {
	case MapNone:
		return "None"
	case MapWrite:
		return "Write"
	case MapRead:
		return "Read"
	}
	return fmt.Sprintf("MapModes(%d)", int32(mm))
}

// InvalidID is the ID of a buffer that has been disposed.
const InvalidID = ^uint32(0)

var (
	// ErrMapped is returned when a map session is started while one is
	// active, or when an operation needs the buffer to be unmapped.
	ErrMapped = errors.New("buffer: map session already active")

	// ErrNotMapped is returned when writing or reading without a matching
	// map session, or stopping when no session is active.
	ErrNotMapped = errors.New("buffer: no matching map session active")

	// ErrEmpty is returned when the buffer has no storage allocated.
	ErrEmpty = errors.New("buffer: no storage allocated")

	// ErrDisposed is returned when using a disposed buffer.
	ErrDisposed = errors.New("buffer: buffer has been disposed")

	// ErrRange is returned for offsets, lengths or counts outside of the
	// buffer or source data.
	ErrRange = errors.New("buffer: range out of bounds")
)

// Buffer is a linear block of GPU memory with a layout cursor.
// It is not safe for concurrent use: all calls must come from the
// thread that owns its graphics context.
type Buffer struct {
	// Cursor is the layout position. Its Length is the limit for the cursor:
	// the allocated size, or the end of the mapped range during a map session.
	layout.Cursor

	// ID is the device buffer name, or [InvalidID] once disposed.
	ID uint32

	// MapMode is the active map session, if any.
	MapMode MapModes

	// Usage is the usage hint used for allocation.
	Usage device.Usage

	cx *device.Context

	// size is the allocated size in bytes.
	size int

	// mapped is the CPU visible memory of the mapped range,
	// which starts at mapOffset in the buffer.
	mapped    []byte
	mapOffset int
}

// New returns a new empty buffer on the given context, which must be current.
func New(cx *device.Context, std layout.Standards) (*Buffer, error) {
	if err := cx.CheckCurrent(); err != nil {
		return nil, errors.Log(err)
	}
	b := &Buffer{cx: cx, Usage: device.DynamicDraw}
	b.Standard = std
	b.ID = cx.Device.CreateBuffer()
	return b, nil
}

// NewSize returns a new buffer with size bytes of uninitialized storage.
func NewSize(cx *device.Context, size int, std layout.Standards, usage device.Usage) (*Buffer, error) {
	b, err := New(cx, std)
	if err != nil {
		return nil, err
	}
	if err := b.AllocateBytes(size, usage); err != nil {
		b.Dispose()
		return nil, err
	}
	return b, nil
}

// Context returns the context the buffer was created on.
func (b *Buffer) Context() *device.Context {
	return b.cx
}

// Size returns the allocated size in bytes.
func (b *Buffer) Size() int {
	return b.size
}

func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer %d (%s, %d bytes)", b.ID, b.Standard, b.size)
}

// checkUsable returns an error if the buffer cannot be used at all.
func (b *Buffer) checkUsable() error {
	if b.ID == InvalidID {
		return ErrDisposed
	}
	return b.cx.CheckCurrent()
}

// checkIdle returns an error if the buffer cannot be used,
// or has a map session active.
func (b *Buffer) checkIdle() error {
	if err := b.checkUsable(); err != nil {
		return err
	}
	if b.MapMode != MapNone {
		return fmt.Errorf("%w: %s mode on %s", ErrMapped, b.MapMode, b)
	}
	return nil
}

// AllocateBytes replaces the buffer storage with size bytes of
// uninitialized memory, and resets the cursor. It may be called any number
// of times; previous contents are discarded each time.
func (b *Buffer) AllocateBytes(size int, usage device.Usage) error {
	if err := b.checkIdle(); err != nil {
		return errors.Log(err)
	}
	if size < 0 {
		return errors.Log(fmt.Errorf("%w: AllocateBytes size %d", ErrRange, size))
	}
	b.Usage = usage
	b.cx.Device.NamedBufferData(b.ID, size, usage)
	if err := b.cx.ErrCheck("buffer AllocateBytes"); err != nil {
		return errors.Log(err)
	}
	b.size = size
	b.Reset(size)
	return nil
}

// Resize changes the size of the buffer, keeping the contents
// that fit in the new size. A new device buffer is created, the overlap is
// copied on the device, and the old buffer is deleted, so ID changes.
// The cursor is kept, clamped to the new size, and Positions past
// the new size are dropped.
func (b *Buffer) Resize(size int) error {
	if err := b.checkIdle(); err != nil {
		return errors.Log(err)
	}
	if size == b.size {
		return nil
	}
	if b.size == 0 {
		return b.AllocateBytes(size, b.Usage)
	}
	dev := b.cx.Device
	nid := dev.CreateBuffer()
	dev.NamedBufferData(nid, size, b.Usage)
	if keep := min(b.size, size); keep > 0 {
		dev.CopyNamedBufferSubData(b.ID, nid, 0, 0, keep)
	}
	dev.DeleteBuffer(b.ID)
	b.cx.BindCache.Forget(b.ID)
	slog.Debug("buffer: resized", "old", b.ID, "new", nid, "from", b.size, "to", size)
	b.ID = nid
	b.size = size
	b.Length = size
	b.CurrentPos = min(b.CurrentPos, size)
	b.Positions = slices.DeleteFunc(b.Positions, func(pos int) bool { return pos >= size })
	return errors.Log(b.cx.ErrCheck("buffer Resize"))
}

// Dispose deletes the device buffer. Disposing an already disposed buffer
// does nothing except log a warning, so double releases can be tracked down.
func (b *Buffer) Dispose() {
	if b.ID == InvalidID {
		slog.Warn("buffer: Dispose called on an already disposed buffer", "standard", b.Standard, "size", b.size)
		return
	}
	if err := b.cx.CheckCurrent(); err != nil {
		errors.Log(fmt.Errorf("buffer Dispose %d: %w", b.ID, err))
		return
	}
	b.cx.Device.DeleteBuffer(b.ID)
	b.cx.BindCache.Forget(b.ID)
	b.ID = InvalidID
	b.MapMode = MapNone
	b.mapped = nil
	b.size = 0
	b.Reset(0)
}
