// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"image/color"
	"unsafe"

	"cogentcore.org/core/math32"
	"cogentcore.org/gl/layout"
)

// Element is the set of value types that can be stored in a Buffer.
// Vector3 and Vector3i are 12 bytes aligned on 16, and Matrix4 is
// 64 bytes aligned on 16, as GLSL vec3 / mat4 in a uniform block.
// Matrix3 is stored by the streaming path as three vec3 columns,
// each in its own 16 byte slot (48 bytes), and tightly packed
// (36 bytes) by the bulk path.
type Element interface {
	~float32 | ~float64 |
		~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 |
		math32.Vector2 | math32.Vector3 | math32.Vector4 |
		math32.Vector2i | math32.Vector3i |
		math32.Matrix3 | math32.Matrix4
}

// shape is the layout of one value of an Element type in a block.
type shape struct {
	// align is the base alignment.
	align int

	// size is the size in the block, including column padding.
	size int

	// host is the size in Go memory: the tightly packed size.
	host int

	// cols is the number of columns, each of which starts
	// on a size/cols boundary within the value.
	cols int
}

// elemShape returns the block layout of a single value of E.
func elemShape[E Element]() shape {
	var e E
	host := int(unsafe.Sizeof(e))
	switch any(e).(type) {
	case math32.Vector3, math32.Vector3i, math32.Matrix4:
		return shape{align: layout.Vec4Size, size: host, host: host, cols: 1}
	case math32.Matrix3:
		return shape{align: layout.Vec4Size, size: 3 * layout.Vec4Size, host: host, cols: 3}
	}
	return shape{align: host, size: host, host: host, cols: 1}
}

// sliceBytes returns the memory of s as bytes, without copying.
func sliceBytes[E Element](s []E) []byte {
	if len(s) == 0 {
		return nil
	}
	var e E
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(e)))
}

// valueBytes returns the memory of *v as bytes, without copying.
func valueBytes[E Element](v *E) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// copyStrided copies n values of shape sh from the packed src to dst,
// placing value i at i*stride, and spreading its columns to their slots.
// Bytes between values and columns in dst are left as they were.
// It serves both the packed (stride == host size) and the spread cases.
func copyStrided(dst, src []byte, sh shape, stride, n int) {
	if stride == sh.host && sh.size == sh.host {
		copy(dst, src[:n*sh.host])
		return
	}
	ch, cs := sh.host/sh.cols, sh.size/sh.cols
	for i := range n {
		for c := range sh.cols {
			d := i*stride + c*cs
			h := i*sh.host + c*ch
			copy(dst[d:d+ch], src[h:h+ch])
		}
	}
}

// gatherStrided is the inverse of copyStrided: it packs n values
// of shape sh found at stride in src into dst.
func gatherStrided(dst, src []byte, sh shape, stride, n int) {
	if stride == sh.host && sh.size == sh.host {
		copy(dst[:n*sh.host], src)
		return
	}
	ch, cs := sh.host/sh.cols, sh.size/sh.cols
	for i := range n {
		for c := range sh.cols {
			d := i*stride + c*cs
			h := i*sh.host + c*ch
			copy(dst[h:h+ch], src[d:d+ch])
		}
	}
}

// ColorVector returns the color as non-premultiplied RGBA components in 0-1,
// which is how colors are stored in buffers.
func ColorVector(c color.Color) math32.Vector4 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return math32.Vec4(float32(n.R)/255, float32(n.G)/255, float32(n.B)/255, float32(n.A)/255)
}
