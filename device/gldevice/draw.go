// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldevice

import (
	"image"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// Primitives are the primitive types for drawing.
type Primitives uint32

const (
	Points        Primitives = gl.POINTS
	Lines         Primitives = gl.LINES
	LineStrip     Primitives = gl.LINE_STRIP
	Triangles     Primitives = gl.TRIANGLES
	TriangleStrip Primitives = gl.TRIANGLE_STRIP
	TriangleFan   Primitives = gl.TRIANGLE_FAN
	Patches       Primitives = gl.PATCHES
)

// IndexTypes are the element types of an index buffer.
type IndexTypes uint32

const (
	IndexUint8  IndexTypes = gl.UNSIGNED_BYTE
	IndexUint16 IndexTypes = gl.UNSIGNED_SHORT
	IndexUint32 IndexTypes = gl.UNSIGNED_INT
)

// CreateVertexArray returns a new vertex array object.
func (dv *Device) CreateVertexArray() uint32 {
	var vao uint32
	gl.CreateVertexArrays(1, &vao)
	return vao
}

// DeleteVertexArray deletes the vertex array object.
func (dv *Device) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

// BindVertexArray makes vao the active vertex array.
func (dv *Device) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

// VertexAttribFloat enables attribute attrib of vao, reading comps
// float32 components at relOffset within the given buffer binding index.
func (dv *Device) VertexAttribFloat(vao, attrib, bindingIndex uint32, comps int, relOffset int) {
	gl.EnableVertexArrayAttrib(vao, attrib)
	gl.VertexArrayAttribFormat(vao, attrib, int32(comps), gl.FLOAT, false, uint32(relOffset))
	gl.VertexArrayAttribBinding(vao, attrib, bindingIndex)
}

// VertexAttribUint enables integer attribute attrib of vao, reading comps
// uint32 components at relOffset within the given buffer binding index.
func (dv *Device) VertexAttribUint(vao, attrib, bindingIndex uint32, comps int, relOffset int) {
	gl.EnableVertexArrayAttrib(vao, attrib)
	gl.VertexArrayAttribIFormat(vao, attrib, int32(comps), gl.UNSIGNED_INT, uint32(relOffset))
	gl.VertexArrayAttribBinding(vao, attrib, bindingIndex)
}

// Clear clears the color and / or depth buffers of the current framebuffer.
func (dv *Device) Clear(color, depth bool) {
	bits := uint32(0)
	if color {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

// ClearColor sets the color used by Clear.
func (dv *Device) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// Viewport sets the rendering viewport to given rectangle.
func (dv *Device) Viewport(rect image.Rectangle) {
	gl.Viewport(int32(rect.Min.X), int32(rect.Min.Y), int32(rect.Dx()), int32(rect.Dy()))
}

// DrawArrays draws count vertices starting at first.
func (dv *Device) DrawArrays(prim Primitives, first, count int) {
	gl.DrawArrays(uint32(prim), int32(first), int32(count))
}

// DrawElements draws count indexes from the bound element buffer,
// starting at byte offset.
func (dv *Device) DrawElements(prim Primitives, count int, typ IndexTypes, offset int) {
	gl.DrawElements(uint32(prim), int32(count), uint32(typ), gl.PtrOffset(offset))
}
