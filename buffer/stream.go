// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/gl/device"
)

// StartWrite maps length bytes from offset for writing, invalidating the
// previous contents of that range. A length of 0 maps the rest of the buffer.
// The cursor is moved to offset.
func (b *Buffer) StartWrite(offset, length int) error {
	return b.StartWriteRange(offset, length, true)
}

// StartWriteRange is [Buffer.StartWrite] with control over invalidation:
// if invalidate is false, the bytes not written keep their previous values.
func (b *Buffer) StartWriteRange(offset, length int, invalidate bool) error {
	access := device.MapWrite
	if invalidate {
		access |= device.MapInvalidateRange
	}
	return b.startMap(MapWrite, offset, length, access)
}

// StartRead maps length bytes from offset for reading.
// A length of 0 maps the rest of the buffer. The cursor is moved to offset.
func (b *Buffer) StartRead(offset, length int) error {
	return b.startMap(MapRead, offset, length, device.MapRead)
}

func (b *Buffer) startMap(mode MapModes, offset, length int, access device.MapAccess) error {
	if err := b.checkIdle(); err != nil {
		return errors.Log(fmt.Errorf("buffer Start%s: %w", mode, err))
	}
	if b.size == 0 {
		return errors.Log(fmt.Errorf("buffer Start%s: %w", mode, ErrEmpty))
	}
	if length == 0 {
		length = b.size - offset
	}
	if offset < 0 || length <= 0 || offset+length > b.size {
		return errors.Log(fmt.Errorf("%w: Start%s %d+%d on %s", ErrRange, mode, offset, length, b))
	}
	m := b.cx.Device.MapNamedBufferRange(b.ID, offset, length, access)
	if err := b.cx.ErrCheck("buffer Start" + mode.String()); err != nil {
		return errors.Log(err)
	}
	if len(m) != length {
		return errors.Log(fmt.Errorf("buffer Start%s: %w: map returned %d bytes, want %d", mode, device.ErrDevice, len(m), length))
	}
	b.mapped = m
	b.mapOffset = offset
	b.MapMode = mode
	b.CurrentPos = offset
	b.Length = offset + length
	return nil
}

// StopReadWrite ends the active map session.
func (b *Buffer) StopReadWrite() error {
	if err := b.checkUsable(); err != nil {
		return errors.Log(fmt.Errorf("buffer StopReadWrite: %w", err))
	}
	if b.MapMode == MapNone {
		return errors.Log(fmt.Errorf("buffer StopReadWrite: %w", ErrNotMapped))
	}
	ok := b.cx.Device.UnmapNamedBuffer(b.ID)
	b.MapMode = MapNone
	b.mapped = nil
	b.Length = b.size
	if err := b.cx.ErrCheck("buffer StopReadWrite"); err != nil {
		return errors.Log(err)
	}
	if !ok {
		return errors.Log(fmt.Errorf("buffer StopReadWrite %d: %w: contents lost while mapped", b.ID, device.ErrDevice))
	}
	return nil
}

// checkMode returns an error unless mode is the active session.
func (b *Buffer) checkMode(op string, mode MapModes) error {
	if err := b.checkUsable(); err != nil {
		return errors.Log(fmt.Errorf("buffer %s: %w", op, err))
	}
	if b.MapMode != mode {
		return errors.Log(fmt.Errorf("buffer %s: %w: in %s mode, need %s", op, ErrNotMapped, b.MapMode, mode))
	}
	return nil
}

// window returns the mapped memory for n bytes at buffer offset pos.
func (b *Buffer) window(pos, n int) []byte {
	start := pos - b.mapOffset
	return b.mapped[start : start+n]
}

// Write writes one value at the next position aligned for its type,
// returning the offset it was written at.
func Write[E Element](b *Buffer, v E) (int, error) {
	if err := b.checkMode("Write", MapWrite); err != nil {
		return 0, err
	}
	sh := elemShape[E]()
	pos, err := b.AlignScalarTo(sh.align, sh.size)
	if err != nil {
		return 0, fmt.Errorf("buffer Write on %s: %w", b, err)
	}
	copyStrided(b.window(pos, sh.size), valueBytes(&v), sh, sh.size, 1)
	return pos, nil
}

// WriteArray writes the values as an array, returning the array offset.
// Under std140 each element gets its own 16 byte slot (or a multiple of 16
// for matrices), and the padding bytes of the slots are not touched.
// Matrix3 columns are always spread to 16 byte slots.
// An empty slice does nothing.
func WriteArray[E Element](b *Buffer, data []E) (int, error) {
	if err := b.checkMode("WriteArray", MapWrite); err != nil {
		return 0, err
	}
	if len(data) == 0 {
		return b.CurrentPos, nil
	}
	sh := elemShape[E]()
	pos, stride, err := b.AlignArrayPtr(sh.size, len(data))
	if err != nil {
		return 0, fmt.Errorf("buffer WriteArray on %s: %w", b, err)
	}
	copyStrided(b.window(pos, stride*len(data)), sliceBytes(data), sh, stride, len(data))
	return pos, nil
}

// WriteColor writes the color as a Vector4 (see [ColorVector]).
func (b *Buffer) WriteColor(c color.Color) (int, error) {
	return Write(b, ColorVector(c))
}

// WriteColors writes the colors as an array of Vector4.
func (b *Buffer) WriteColors(colors []color.Color) (int, error) {
	vs := make([]math32.Vector4, len(colors))
	for i, c := range colors {
		vs[i] = ColorVector(c)
	}
	return WriteArray(b, vs)
}

// Read reads one value from the next position aligned for its type.
func Read[E Element](b *Buffer) (E, error) {
	var v E
	if err := b.checkMode("Read", MapRead); err != nil {
		return v, err
	}
	sh := elemShape[E]()
	pos, err := b.AlignScalarTo(sh.align, sh.size)
	if err != nil {
		return v, fmt.Errorf("buffer Read on %s: %w", b, err)
	}
	gatherStrided(valueBytes(&v), b.window(pos, sh.size), sh, sh.size, 1)
	return v, nil
}

// ReadArray reads n values laid out as by [WriteArray].
func ReadArray[E Element](b *Buffer, n int) ([]E, error) {
	if err := b.checkMode("ReadArray", MapRead); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errors.Log(fmt.Errorf("%w: ReadArray of %d", ErrRange, n))
	}
	data := make([]E, n)
	if n == 0 {
		return data, nil
	}
	sh := elemShape[E]()
	pos, stride, err := b.AlignArrayPtr(sh.size, n)
	if err != nil {
		return nil, fmt.Errorf("buffer ReadArray on %s: %w", b, err)
	}
	gatherStrided(sliceBytes(data), b.window(pos, stride*n), sh, stride, n)
	return data, nil
}

// Skip advances the cursor by n bytes without writing or reading.
// It works in either map mode; n must not be negative.
func (b *Buffer) Skip(n int) error {
	if err := b.checkUsable(); err != nil {
		return errors.Log(fmt.Errorf("buffer Skip: %w", err))
	}
	if b.MapMode == MapNone {
		return errors.Log(fmt.Errorf("buffer Skip: %w", ErrNotMapped))
	}
	if n < 0 {
		return errors.Log(fmt.Errorf("%w: Skip of %d on %s", ErrRange, n, b))
	}
	if _, err := b.AlignScalarTo(1, n); err != nil {
		return fmt.Errorf("buffer Skip on %s: %w", b, err)
	}
	return nil
}
