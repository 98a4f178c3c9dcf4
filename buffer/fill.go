// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"encoding/binary"
	"fmt"
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	fmath "github.com/chewxy/math32"
)

// fillBytes is the common bulk path: it aligns an array of elements of
// elemSize, and uploads data there in a single call.
func (b *Buffer) fillBytes(op string, elemSize int, data []byte) (int, error) {
	if err := b.checkIdle(); err != nil {
		return 0, errors.Log(fmt.Errorf("buffer %s: %w", op, err))
	}
	if len(data) == 0 {
		return b.CurrentPos, nil
	}
	pos, err := b.AlignArray(elemSize, len(data))
	if err != nil {
		return 0, fmt.Errorf("buffer %s on %s: %w", op, b, err)
	}
	b.cx.Device.NamedBufferSubData(b.ID, pos, data)
	if err := b.cx.ErrCheck("buffer " + op); err != nil {
		return 0, errors.Log(err)
	}
	return pos, nil
}

// Fill uploads all of data at the next array position, tightly packed,
// returning its byte offset. An empty slice does nothing.
func Fill[E Element](b *Buffer, data []E) (int, error) {
	return FillRange(b, data, 0, len(data))
}

// FillRange uploads count elements of data starting at element offset.
func FillRange[E Element](b *Buffer, data []E, offset, count int) (int, error) {
	if offset < 0 || count < 0 || offset+count > len(data) {
		return 0, errors.Log(fmt.Errorf("%w: FillRange %d+%d of %d elements", ErrRange, offset, count, len(data)))
	}
	sh := elemShape[E]()
	return b.fillBytes("Fill", sh.host, sliceBytes(data[offset:offset+count]))
}

// AllocateFill allocates exactly enough storage for data, discarding any
// previous contents, and fills it.
func AllocateFill[E Element](b *Buffer, data []E) (int, error) {
	sh := elemShape[E]()
	if err := b.AllocateBytes(sh.host*len(data), b.Usage); err != nil {
		return 0, err
	}
	return Fill(b, data)
}

// FillColors fills n colors as RGBA Vector4 values (see [ColorVector]).
// If n is more than len(colors), the colors are repeated in order to
// fill n values. A negative n uses len(colors).
func (b *Buffer) FillColors(colors []color.Color, n int) (int, error) {
	if n < 0 {
		n = len(colors)
	}
	if n > 0 && len(colors) == 0 {
		return 0, errors.Log(fmt.Errorf("%w: FillColors of %d from no colors", ErrRange, n))
	}
	vs := make([]math32.Vector4, n)
	for i := range vs {
		vs[i] = ColorVector(colors[i%len(colors)])
	}
	return Fill(b, vs)
}

// AllocateFillColors allocates exactly enough storage for n colors and fills them.
func (b *Buffer) AllocateFillColors(colors []color.Color, n int) (int, error) {
	if n < 0 {
		n = len(colors)
	}
	if err := b.AllocateBytes(n*16, b.Usage); err != nil {
		return 0, err
	}
	return b.FillColors(colors, n)
}

// Packed2vecSize is the size in bytes of one packed vector.
const Packed2vecSize = 8

// Pack2vec packs a vector into two 32 bit words. Each component has
// offset added and is multiplied by mult, then floored to an integer.
// X and Y take the low 21 bits of the first and second word, and Z is split
// in two 11 bit halves held in the top bits: low half in word 0, high in word 1.
// Values are not clamped: callers must keep (v+offset)*mult in range.
func Pack2vec(v, offset math32.Vector3, mult float32) [2]uint32 {
	x := uint32(int32(fmath.Floor((v.X + offset.X) * mult)))
	y := uint32(int32(fmath.Floor((v.Y + offset.Y) * mult)))
	z := uint32(int32(fmath.Floor((v.Z + offset.Z) * mult)))
	return [2]uint32{
		x | ((z & 0x7FF) << 21),
		y | (((z >> 11) & 0x7FF) << 21),
	}
}

// Unpack2vec reverses [Pack2vec], to within 1/mult.
func Unpack2vec(w [2]uint32, offset math32.Vector3, mult float32) math32.Vector3 {
	x := w[0] & 0x1FFFFF
	y := w[1] & 0x1FFFFF
	z := (w[0] >> 21) | ((w[1] >> 21) << 11)
	return math32.Vec3(float32(x)/mult-offset.X, float32(y)/mult-offset.Y, float32(z)/mult-offset.Z)
}

// FillPacked2vec packs each vector with [Pack2vec] and fills the words,
// as a uvec2 per vector.
func (b *Buffer) FillPacked2vec(vecs []math32.Vector3, offset math32.Vector3, mult float32) (int, error) {
	data := make([]byte, len(vecs)*Packed2vecSize)
	for i, v := range vecs {
		w := Pack2vec(v, offset, mult)
		binary.LittleEndian.PutUint32(data[i*8:], w[0])
		binary.LittleEndian.PutUint32(data[i*8+4:], w[1])
	}
	return b.fillBytes("FillPacked2vec", Packed2vecSize, data)
}

// rectangleIndexes returns the indexes for n rectangles of 4 vertices
// each, as a triangle strip per rectangle separated by restart.
func rectangleIndexes(n int, restart uint32) []uint32 {
	idxs := make([]uint32, 0, n*5)
	for r := range n {
		v := uint32(r * 4)
		idxs = append(idxs, v, v+1, v+2, v+3, restart)
	}
	return idxs
}

// FillRectangularIndicesBytes fills byte indexes for n rectangles: for
// rectangle r, 4r, 4r+1, 4r+2, 4r+3 and then the restart index.
// All vertex indexes must be below restart.
func (b *Buffer) FillRectangularIndicesBytes(n int, restart uint8) (int, error) {
	if n > 0 && 4*n-1 >= int(restart) {
		return 0, errors.Log(fmt.Errorf("%w: %d rectangles need indexes up to %d, restart is %d", ErrRange, n, 4*n-1, restart))
	}
	idxs := rectangleIndexes(n, uint32(restart))
	data := make([]uint8, len(idxs))
	for i, ix := range idxs {
		data[i] = uint8(ix)
	}
	return Fill(b, data)
}

// FillRectangularIndicesShorts is [Buffer.FillRectangularIndicesBytes]
// with 16 bit indexes.
func (b *Buffer) FillRectangularIndicesShorts(n int, restart uint16) (int, error) {
	if n > 0 && 4*n-1 >= int(restart) {
		return 0, errors.Log(fmt.Errorf("%w: %d rectangles need indexes up to %d, restart is %d", ErrRange, n, 4*n-1, restart))
	}
	idxs := rectangleIndexes(n, uint32(restart))
	data := make([]uint16, len(idxs))
	for i, ix := range idxs {
		data[i] = uint16(ix)
	}
	return Fill(b, data)
}
