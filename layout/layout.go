// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout computes byte offsets for data written into a linear GPU
// buffer, following the std140 or std430 block layout rules.
//
// See: https://registry.khronos.org/OpenGL/specs/gl/glspec46.core.pdf#page=168
//
// A [Cursor] tracks the next write position within a buffer of known length.
// There are two array paths, and they lay out the same data differently:
//
//   - [Cursor.AlignArray] is the bulk path: the caller supplies the total
//     byte size, and the array is stored tightly packed after aligning its start.
//   - [Cursor.AlignArrayPtr] is the streaming path: each element occupies one
//     stride, which under std140 is a full 16 byte slot even for a float.
//
// Writing the same GLSL array declaration through both paths therefore gives
// different strides under std140. A std140 float[] in GLSL must be written
// with the streaming path; the bulk path suits vertex data and std430 blocks.
package layout

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

// Standards are the supported block layout standards.
type Standards int32

const (
	// Std140 aligns and strides every array element on 16 bytes (vec4).
	// It is required for uniform blocks.
	Std140 Standards = iota

	// Std430 aligns and strides array elements on their own size.
	// It is available for shader storage blocks.
	Std430
)

func (st Standards) String() string {
	switch st {
	case Std140:
		return "std140"
	case Std430:
		return "std430"
	}
	return fmt.Sprintf("Standards(%d)", int32(st))
}

// Vec4Size is the size of a vec4 in bytes: the std140 array stride.
const Vec4Size = 16

// ErrCapacity is returned when an advance would go past the end of
// the buffer. The cursor is left unchanged.
var ErrCapacity = errors.New("layout: write past end of buffer")

// ErrNegative is returned for a negative size or count, which would
// move the cursor backwards. The cursor is left unchanged.
var ErrNegative = errors.New("layout: negative size")

// Cursor is the current read / write position within a buffer.
type Cursor struct {
	// CurrentPos is the next byte offset to write or read.
	CurrentPos int

	// Length is the total capacity of the buffer in bytes.
	// Zero means unallocated.
	Length int

	// Standard is the layout standard for arrays.
	Standard Standards

	// Positions has the offset of every aligned array, in call order.
	// The Fill and Write methods of buffer also return these offsets
	// directly, which is preferable to indexing this list.
	Positions []int
}

// Reset sets the cursor back to the start with the given length,
// and clears the positions.
func (cr *Cursor) Reset(length int) {
	cr.CurrentPos = 0
	cr.Length = length
	cr.Positions = cr.Positions[:0]
}

// Align returns pos rounded up to a multiple of align.
// An align of 1 or less returns pos.
func Align(pos, align int) int {
	if align <= 1 {
		return pos
	}
	if align&(align-1) == 0 {
		return (pos + align - 1) &^ (align - 1)
	}
	return ((pos + align - 1) / align) * align
}

// advance moves the cursor to start+size if that is within Length.
// The cursor never moves backwards.
func (cr *Cursor) advance(start, size int) error {
	if size < 0 {
		return fmt.Errorf("%w: %d at %d", ErrNegative, size, start)
	}
	end := start + size
	if end > cr.Length {
		return fmt.Errorf("%w: %d + %d > length %d", ErrCapacity, start, size, cr.Length)
	}
	cr.CurrentPos = end
	return nil
}

// AlignScalar aligns the cursor to size and advances past one value
// of that size, returning the aligned offset of the value.
func (cr *Cursor) AlignScalar(size int) (int, error) {
	return cr.AlignScalarTo(size, size)
}

// AlignScalarTo aligns the cursor to align and advances past size bytes,
// returning the aligned offset. This is needed for values whose alignment
// differs from their size, such as vec3 (align 16, size 12) and
// mat4 (align 16, size 64).
func (cr *Cursor) AlignScalarTo(align, size int) (int, error) {
	pos := Align(cr.CurrentPos, align)
	if err := cr.advance(pos, size); err != nil {
		return 0, errors.Log(err)
	}
	return pos, nil
}

// ArrayAlign returns the alignment of an array with the given element size:
// the element size for std430, and 16 for std140.
func (cr *Cursor) ArrayAlign(elementSize int) int {
	if cr.Standard == Std430 {
		return elementSize
	}
	return Vec4Size
}

// Stride returns the per-element stride used by the streaming path.
// Under std430 this is the element size. Under std140 it is 16, or for
// elements bigger than a vec4 (matrices), the element size rounded up to 16.
func (cr *Cursor) Stride(elementSize int) int {
	if cr.Standard == Std430 {
		return elementSize
	}
	return max(Vec4Size, Align(elementSize, Vec4Size))
}

// AlignArray is the bulk array path: it aligns the start of an array of
// elementSize elements, records the offset in Positions, and advances by
// totalBytes, which the caller has computed for its own packing.
func (cr *Cursor) AlignArray(elementSize, totalBytes int) (int, error) {
	pos := Align(cr.CurrentPos, cr.ArrayAlign(elementSize))
	if err := cr.advance(pos, totalBytes); err != nil {
		return 0, errors.Log(err)
	}
	cr.Positions = append(cr.Positions, pos)
	return pos, nil
}

// AlignArrayPtr is the streaming array path: it aligns the start of an
// array of count elements, records the offset in Positions, and advances by
// stride * count. It returns the offset and the stride used per element;
// if the stride is not elementSize, each element must be written at
// its own stride slot (see [Cursor.Stride]).
func (cr *Cursor) AlignArrayPtr(elementSize, count int) (offset, stride int, err error) {
	if elementSize < 0 || count < 0 {
		return 0, 0, errors.Log(fmt.Errorf("%w: %d elements of %d bytes", ErrNegative, count, elementSize))
	}
	stride = cr.Stride(elementSize)
	pos := Align(cr.CurrentPos, cr.ArrayAlign(elementSize))
	if err = cr.advance(pos, stride*count); err != nil {
		return 0, 0, errors.Log(err)
	}
	cr.Positions = append(cr.Positions, pos)
	return pos, stride, nil
}

// Remaining returns the number of bytes between the cursor and Length.
func (cr *Cursor) Remaining() int {
	return cr.Length - cr.CurrentPos
}
