// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package devicetest provides an in-memory [device.Device] that records
// every call, for testing code that drives a graphics device without one.
package devicetest

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/gl/device"
)

// Recorder is a [device.Device] that keeps buffer storage in
// CPU memory and logs each call as a formatted string in Calls.
// Buffer data calls are logged too, so tests typically use
// [Recorder.Reset] and [Recorder.CallsWithPrefix] to focus on what they check.
type Recorder struct {
	// Calls is the ordered log of calls, e.g. "Enable(DepthTest)".
	Calls []string

	// Buffers holds the storage of each live buffer.
	Buffers map[uint32][]byte

	// Mapped holds the active map range of each mapped buffer.
	Mapped map[uint32][2]int

	nextID uint32
	errors []uint32
}

var _ device.Device = (*Recorder)(nil)

// New returns a new empty Recorder.
func New() *Recorder {
	return &Recorder{
		Buffers: make(map[uint32][]byte),
		Mapped:  make(map[uint32][2]int),
	}
}

// NewContext returns a Recorder and a current context that uses it.
func NewContext(name string) (*Recorder, *device.Context) {
	rec := New()
	cx := device.NewContext(name, rec)
	cx.MakeCurrent()
	return rec, cx
}

// Reset clears the call log.
func (rc *Recorder) Reset() {
	rc.Calls = nil
}

// FailNext queues an error code to be returned by the next GetError.
func (rc *Recorder) FailNext(code uint32) {
	rc.errors = append(rc.errors, code)
}

// CallsWithPrefix returns the logged calls starting with any of the given prefixes.
func (rc *Recorder) CallsWithPrefix(prefixes ...string) []string {
	var res []string
	for _, c := range rc.Calls {
		for _, p := range prefixes {
			if strings.HasPrefix(c, p) {
				res = append(res, c)
				break
			}
		}
	}
	return res
}

func (rc *Recorder) log(format string, args ...any) {
	rc.Calls = append(rc.Calls, fmt.Sprintf(format, args...))
}

func (rc *Recorder) invalid() {
	rc.errors = append(rc.errors, device.InvalidOperation)
}

func (rc *Recorder) CreateBuffer() uint32 {
	rc.nextID++
	rc.Buffers[rc.nextID] = nil
	rc.log("CreateBuffer() = %d", rc.nextID)
	return rc.nextID
}

func (rc *Recorder) NamedBufferData(id uint32, size int, usage device.Usage) {
	rc.log("NamedBufferData(%d, %d)", id, size)
	if _, ok := rc.Buffers[id]; !ok {
		rc.invalid()
		return
	}
	rc.Buffers[id] = make([]byte, size)
}

func (rc *Recorder) NamedBufferSubData(id uint32, offset int, data []byte) {
	rc.log("NamedBufferSubData(%d, %d, %d)", id, offset, len(data))
	buf, ok := rc.Buffers[id]
	if !ok || offset < 0 || offset+len(data) > len(buf) {
		rc.invalid()
		return
	}
	copy(buf[offset:], data)
}

func (rc *Recorder) MapNamedBufferRange(id uint32, offset, length int, access device.MapAccess) []byte {
	rc.log("MapNamedBufferRange(%d, %d, %d, %#x)", id, offset, length, uint32(access))
	buf, ok := rc.Buffers[id]
	if _, mapped := rc.Mapped[id]; !ok || mapped || offset < 0 || offset+length > len(buf) {
		rc.invalid()
		return nil
	}
	rc.Mapped[id] = [2]int{offset, length}
	return buf[offset : offset+length : offset+length]
}

func (rc *Recorder) UnmapNamedBuffer(id uint32) bool {
	rc.log("UnmapNamedBuffer(%d)", id)
	if _, ok := rc.Mapped[id]; !ok {
		rc.invalid()
		return false
	}
	delete(rc.Mapped, id)
	return true
}

func (rc *Recorder) CopyNamedBufferSubData(src, dst uint32, srcOffset, dstOffset, size int) {
	rc.log("CopyNamedBufferSubData(%d, %d, %d, %d, %d)", src, dst, srcOffset, dstOffset, size)
	sb, sok := rc.Buffers[src]
	db, dok := rc.Buffers[dst]
	if !sok || !dok || srcOffset+size > len(sb) || dstOffset+size > len(db) {
		rc.invalid()
		return
	}
	copy(db[dstOffset:dstOffset+size], sb[srcOffset:srcOffset+size])
}

func (rc *Recorder) DeleteBuffer(id uint32) {
	rc.log("DeleteBuffer(%d)", id)
	if _, ok := rc.Buffers[id]; !ok {
		rc.invalid()
		return
	}
	delete(rc.Buffers, id)
	delete(rc.Mapped, id)
}

// BufferIDs returns the sorted names of all live buffers.
func (rc *Recorder) BufferIDs() []uint32 {
	ids := make([]uint32, 0, len(rc.Buffers))
	for id := range rc.Buffers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (rc *Recorder) BindBuffer(target device.Target, id uint32) {
	rc.log("BindBuffer(%s, %d)", target, id)
}

func (rc *Recorder) BindBufferBase(target device.Target, index uint32, id uint32) {
	rc.log("BindBufferBase(%s, %d, %d)", target, index, id)
}

func (rc *Recorder) BindBufferRange(target device.Target, index uint32, id uint32, offset, size int) {
	rc.log("BindBufferRange(%s, %d, %d, %d, %d)", target, index, id, offset, size)
}

func (rc *Recorder) VertexArrayVertexBuffer(vao, bindingIndex, id uint32, offset, stride int) {
	rc.log("VertexArrayVertexBuffer(%d, %d, %d, %d, %d)", vao, bindingIndex, id, offset, stride)
}

func (rc *Recorder) VertexArrayBindingDivisor(vao, bindingIndex, divisor uint32) {
	rc.log("VertexArrayBindingDivisor(%d, %d, %d)", vao, bindingIndex, divisor)
}

func (rc *Recorder) VertexArrayElementBuffer(vao, id uint32) {
	rc.log("VertexArrayElementBuffer(%d, %d)", vao, id)
}

func (rc *Recorder) Enable(cap device.Capability) {
	rc.log("Enable(%s)", cap)
}

func (rc *Recorder) Disable(cap device.Capability) {
	rc.log("Disable(%s)", cap)
}

func (rc *Recorder) PrimitiveRestartIndex(index uint32) {
	rc.log("PrimitiveRestartIndex(%d)", index)
}

func (rc *Recorder) DepthFunc(fn device.DepthFuncs) {
	rc.log("DepthFunc(%s)", fn)
}

func (rc *Recorder) DepthMask(write bool) {
	rc.log("DepthMask(%t)", write)
}

func (rc *Recorder) BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA device.BlendFactors) {
	rc.log("BlendFuncSeparate(%s, %s, %s, %s)", srcRGB, dstRGB, srcA, dstA)
}

func (rc *Recorder) BlendEquationSeparate(rgb, alpha device.BlendEquations) {
	rc.log("BlendEquationSeparate(%s, %s)", rgb, alpha)
}

func (rc *Recorder) ColorMask(r, g, b, a bool) {
	rc.log("ColorMask(%t, %t, %t, %t)", r, g, b, a)
}

func (rc *Recorder) PatchVertices(n int) {
	rc.log("PatchVertices(%d)", n)
}

func (rc *Recorder) PointSize(size float32) {
	rc.log("PointSize(%g)", size)
}

func (rc *Recorder) LineWidth(width float32) {
	rc.log("LineWidth(%g)", width)
}

func (rc *Recorder) PolygonMode(mode device.PolygonModes) {
	rc.log("PolygonMode(%s)", mode)
}

func (rc *Recorder) FrontFace(face device.FrontFaces) {
	rc.log("FrontFace(%s)", face)
}

// GetError is not logged, so error checks do not clutter the call log.
func (rc *Recorder) GetError() uint32 {
	if len(rc.errors) == 0 {
		return device.NoError
	}
	code := rc.errors[0]
	rc.errors = rc.errors[1:]
	return code
}
