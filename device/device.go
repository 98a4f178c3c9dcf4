// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package device defines the boundary between the buffer and render state
// code and the underlying OpenGL 4.5+ implementation.
//
// The [Device] interface uses the direct state access (DSA) style entry points,
// so buffers never need to be bound to a target just to be written.
// All methods operate on the context that is current for the calling thread.
package device

// Device is the subset of OpenGL entry points used by this module.
// See gldevice for the go-gl implementation and devicetest for
// a recording implementation used in tests.
type Device interface {
	// CreateBuffer returns a new buffer name with no storage.
	CreateBuffer() uint32

	// NamedBufferData (re)allocates size bytes of storage for the buffer,
	// discarding any existing contents.
	NamedBufferData(id uint32, size int, usage Usage)

	// NamedBufferSubData copies data into the buffer at given byte offset.
	NamedBufferSubData(id uint32, offset int, data []byte)

	// MapNamedBufferRange maps length bytes starting at offset into CPU
	// visible memory. The returned slice is only valid until UnmapNamedBuffer.
	MapNamedBufferRange(id uint32, offset, length int, access MapAccess) []byte

	// UnmapNamedBuffer releases a mapping, returning false if the
	// contents became corrupt while mapped.
	UnmapNamedBuffer(id uint32) bool

	// CopyNamedBufferSubData copies size bytes between buffers on the device.
	CopyNamedBufferSubData(src, dst uint32, srcOffset, dstOffset, size int)

	// DeleteBuffer releases the buffer name and its storage.
	DeleteBuffer(id uint32)

	BindBuffer(target Target, id uint32)
	BindBufferBase(target Target, index uint32, id uint32)
	BindBufferRange(target Target, index uint32, id uint32, offset, size int)

	// VertexArrayVertexBuffer attaches a buffer to a vertex array binding point.
	VertexArrayVertexBuffer(vao, bindingIndex, id uint32, offset, stride int)
	VertexArrayBindingDivisor(vao, bindingIndex, divisor uint32)
	VertexArrayElementBuffer(vao, id uint32)

	Enable(cap Capability)
	Disable(cap Capability)
	PrimitiveRestartIndex(index uint32)
	DepthFunc(fn DepthFuncs)
	DepthMask(write bool)
	BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA BlendFactors)
	BlendEquationSeparate(rgb, alpha BlendEquations)
	ColorMask(r, g, b, a bool)
	PatchVertices(n int)
	PointSize(size float32)
	LineWidth(width float32)
	PolygonMode(mode PolygonModes)
	FrontFace(face FrontFaces)

	// GetError returns and clears the oldest recorded error code,
	// or 0 if there is none.
	GetError() uint32
}
