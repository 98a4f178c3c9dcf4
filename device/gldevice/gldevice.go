// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gldevice implements [device.Device] on OpenGL 4.6 core
// via github.com/go-gl/gl. A GL context must be current on the calling
// thread (see glfw MakeContextCurrent) before [Init] and any other call.
package gldevice

import (
	"fmt"
	"log/slog"
	"unsafe"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gl/device"
	"github.com/go-gl/gl/v4.6-core/gl"
)

// Device is the OpenGL implementation of [device.Device].
// It has no state of its own: everything lives in the current GL context.
type Device struct{}

var _ device.Device = (*Device)(nil)

// Init loads the GL function pointers for the current context,
// and returns a new Device.
func Init() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.Log(fmt.Errorf("gldevice.Init: %w", err))
	}
	slog.Info("gldevice: OpenGL initialized", "version", gl.GoStr(gl.GetString(gl.VERSION)), "renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return &Device{}, nil
}

// ptr returns a pointer to the first byte of data, or nil if empty.
func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}

func (dv *Device) CreateBuffer() uint32 {
	var id uint32
	gl.CreateBuffers(1, &id)
	return id
}

func (dv *Device) NamedBufferData(id uint32, size int, usage device.Usage) {
	gl.NamedBufferData(id, size, nil, uint32(usage))
}

func (dv *Device) NamedBufferSubData(id uint32, offset int, data []byte) {
	gl.NamedBufferSubData(id, offset, len(data), ptr(data))
}

func (dv *Device) MapNamedBufferRange(id uint32, offset, length int, access device.MapAccess) []byte {
	p := gl.MapNamedBufferRange(id, offset, length, uint32(access))
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), length)
}

func (dv *Device) UnmapNamedBuffer(id uint32) bool {
	return gl.UnmapNamedBuffer(id)
}

func (dv *Device) CopyNamedBufferSubData(src, dst uint32, srcOffset, dstOffset, size int) {
	gl.CopyNamedBufferSubData(src, dst, srcOffset, dstOffset, size)
}

func (dv *Device) DeleteBuffer(id uint32) {
	gl.DeleteBuffers(1, &id)
}

func (dv *Device) BindBuffer(target device.Target, id uint32) {
	gl.BindBuffer(uint32(target), id)
}

func (dv *Device) BindBufferBase(target device.Target, index uint32, id uint32) {
	gl.BindBufferBase(uint32(target), index, id)
}

func (dv *Device) BindBufferRange(target device.Target, index uint32, id uint32, offset, size int) {
	gl.BindBufferRange(uint32(target), index, id, offset, size)
}

func (dv *Device) VertexArrayVertexBuffer(vao, bindingIndex, id uint32, offset, stride int) {
	gl.VertexArrayVertexBuffer(vao, bindingIndex, id, offset, int32(stride))
}

func (dv *Device) VertexArrayBindingDivisor(vao, bindingIndex, divisor uint32) {
	gl.VertexArrayBindingDivisor(vao, bindingIndex, divisor)
}

func (dv *Device) VertexArrayElementBuffer(vao, id uint32) {
	gl.VertexArrayElementBuffer(vao, id)
}

// coreRemoved reports whether the capability was removed from the core
// profile. Point sprites are always on there, and points are never smoothed,
// so these are skipped rather than raising INVALID_ENUM.
func coreRemoved(cap device.Capability) bool {
	return cap == device.PointSprite || cap == device.PointSmooth
}

func (dv *Device) Enable(cap device.Capability) {
	if coreRemoved(cap) {
		return
	}
	gl.Enable(uint32(cap))
}

func (dv *Device) Disable(cap device.Capability) {
	if coreRemoved(cap) {
		return
	}
	gl.Disable(uint32(cap))
}

func (dv *Device) PrimitiveRestartIndex(index uint32) {
	gl.PrimitiveRestartIndex(index)
}

func (dv *Device) DepthFunc(fn device.DepthFuncs) {
	gl.DepthFunc(uint32(fn))
}

func (dv *Device) DepthMask(write bool) {
	gl.DepthMask(write)
}

func (dv *Device) BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA device.BlendFactors) {
	gl.BlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcA), uint32(dstA))
}

func (dv *Device) BlendEquationSeparate(rgb, alpha device.BlendEquations) {
	gl.BlendEquationSeparate(uint32(rgb), uint32(alpha))
}

func (dv *Device) ColorMask(r, g, b, a bool) {
	gl.ColorMask(r, g, b, a)
}

func (dv *Device) PatchVertices(n int) {
	gl.PatchParameteri(gl.PATCH_VERTICES, int32(n))
}

func (dv *Device) PointSize(size float32) {
	gl.PointSize(size)
}

func (dv *Device) LineWidth(width float32) {
	gl.LineWidth(width)
}

func (dv *Device) PolygonMode(mode device.PolygonModes) {
	gl.PolygonMode(gl.FRONT_AND_BACK, uint32(mode))
}

func (dv *Device) FrontFace(face device.FrontFaces) {
	gl.FrontFace(uint32(face))
}

func (dv *Device) GetError() uint32 {
	return gl.GetError()
}
