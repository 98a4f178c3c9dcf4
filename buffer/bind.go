// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gl/device"
)

// checkBind returns an error if the buffer cannot be bound:
// it must be usable, unmapped and have storage.
func (b *Buffer) checkBind(op string) error {
	if err := b.checkIdle(); err != nil {
		return errors.Log(fmt.Errorf("buffer %s: %w", op, err))
	}
	if b.size == 0 {
		return errors.Log(fmt.Errorf("buffer %s: %w", op, ErrEmpty))
	}
	return nil
}

// BindVertex attaches the buffer to binding point bindingIndex of the
// vertex array vao, with given byte offset, element stride and
// instance divisor (0 for per vertex data).
func (b *Buffer) BindVertex(vao, bindingIndex uint32, offset, stride int, divisor uint32) error {
	if err := b.checkBind("BindVertex"); err != nil {
		return err
	}
	dev := b.cx.Device
	dev.VertexArrayVertexBuffer(vao, bindingIndex, b.ID, offset, stride)
	dev.VertexArrayBindingDivisor(vao, bindingIndex, divisor)
	return nil
}

// BindElementTo makes the buffer the element (index) buffer of vao.
func (b *Buffer) BindElementTo(vao uint32) error {
	if err := b.checkBind("BindElementTo"); err != nil {
		return err
	}
	b.cx.Device.VertexArrayElementBuffer(vao, b.ID)
	return nil
}

// bindCached binds to a non-indexed target through the context BindCache.
func (b *Buffer) bindCached(op string, target device.Target) error {
	if err := b.checkBind(op); err != nil {
		return err
	}
	b.cx.BindCache.Bind(b.cx.Device, target, b.ID)
	return nil
}

// BindElement binds the buffer as the element buffer of the currently
// bound vertex array.
func (b *Buffer) BindElement() error {
	return b.bindCached("BindElement", device.ElementArrayBuffer)
}

// BindIndirect binds the buffer as the source of indirect draw commands.
func (b *Buffer) BindIndirect() error {
	return b.bindCached("BindIndirect", device.DrawIndirectBuffer)
}

// BindQuery binds the buffer as the destination of query results.
func (b *Buffer) BindQuery() error {
	return b.bindCached("BindQuery", device.QueryBuffer)
}

// BindParameter binds the buffer as the source of the draw count
// for multi draw indirect count calls.
func (b *Buffer) BindParameter() error {
	return b.bindCached("BindParameter", device.ParameterBuffer)
}

// BindTransformFeedback binds the buffer to transform feedback
// binding index. A size of 0 binds the whole buffer.
func (b *Buffer) BindTransformFeedback(index uint32, offset, size int) error {
	if size == 0 && offset == 0 {
		return b.BindBase(device.TransformFeedbackBuffer, index)
	}
	return b.BindRange(device.TransformFeedbackBuffer, index, offset, size)
}

// BindBase binds the whole buffer to the indexed binding point of target
// (uniform, shader storage, atomic counter or transform feedback).
func (b *Buffer) BindBase(target device.Target, index uint32) error {
	if err := b.checkBind("BindBase " + target.String()); err != nil {
		return err
	}
	b.cx.Device.BindBufferBase(target, index, b.ID)
	return nil
}

// BindRange binds size bytes from offset to the indexed binding point of target.
// A size of 0 binds from offset to the end of the buffer.
func (b *Buffer) BindRange(target device.Target, index uint32, offset, size int) error {
	if err := b.checkBind("BindRange " + target.String()); err != nil {
		return err
	}
	if size == 0 {
		size = b.size - offset
	}
	if offset < 0 || size <= 0 || offset+size > b.size {
		return errors.Log(fmt.Errorf("%w: BindRange %d+%d on %s", ErrRange, offset, size, b))
	}
	b.cx.Device.BindBufferRange(target, index, b.ID, offset, size)
	return nil
}
