// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"encoding/binary"
	"image/color"
	"math/rand/v2"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/gl/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorVector(t *testing.T) {
	assert.Equal(t, math32.Vec4(1, 0, 0, 1), ColorVector(color.RGBA{255, 0, 0, 255}))
	v := ColorVector(color.NRGBA{0, 255, 51, 128})
	assert.Equal(t, float32(0), v.X)
	assert.Equal(t, float32(1), v.Y)
	assert.InDelta(t, 0.2, v.Z, 1e-6)
	assert.InDelta(t, 128.0/255, v.W, 1e-6)
}

func TestFillColors(t *testing.T) {
	rec, b := newTestBuffer(t, layout.Std430, 256)
	red := color.RGBA{255, 0, 0, 255}
	green := color.RGBA{0, 255, 0, 255}

	off, err := b.FillColors([]color.Color{red, green}, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, off)
	assert.Equal(t, 80, b.CurrentPos)
	data := rec.Buffers[b.ID]
	for i := range 5 {
		r, g := float32At(data, i*16), float32At(data, i*16+4)
		if i%2 == 0 {
			assert.Equal(t, []float32{1, 0}, []float32{r, g}, "color %d", i)
		} else {
			assert.Equal(t, []float32{0, 1}, []float32{r, g}, "color %d", i)
		}
		assert.Equal(t, float32(1), float32At(data, i*16+12))
	}

	off, err = b.FillColors([]color.Color{green}, -1)
	require.NoError(t, err)
	assert.Equal(t, 80, off)
	assert.Equal(t, 96, b.CurrentPos)

	_, err = b.FillColors(nil, 2)
	assert.ErrorIs(t, err, ErrRange)

	_, err = b.AllocateFillColors([]color.Color{red}, 3)
	require.NoError(t, err)
	assert.Equal(t, 48, b.Size())
	assert.Equal(t, float32(1), float32At(rec.Buffers[b.ID], 32))
}

func TestStreamColors(t *testing.T) {
	_, b := newTestBuffer(t, layout.Std140, 64)
	require.NoError(t, b.StartWrite(0, 0))
	_, err := b.WriteColor(color.White)
	require.NoError(t, err)
	off, err := b.WriteColors([]color.Color{color.Black, color.Transparent})
	require.NoError(t, err)
	assert.Equal(t, 16, off)
	require.NoError(t, b.StopReadWrite())

	require.NoError(t, b.StartRead(0, 0))
	vs, err := ReadArray[math32.Vector4](b, 3)
	require.NoError(t, err)
	assert.Equal(t, []math32.Vector4{math32.Vec4(1, 1, 1, 1), math32.Vec4(0, 0, 0, 1), {}}, vs)
	require.NoError(t, b.StopReadWrite())
}

func TestPack2vec(t *testing.T) {
	offset := math32.Vec3(0.5, 0.5, 0.5)
	w := Pack2vec(math32.Vec3(1, 2, 3), offset, 10)
	assert.Equal(t, [2]uint32{15 | 35<<21, 25}, w)

	// z high half goes to the top of word 1
	w = Pack2vec(math32.Vec3(0, 0, 5000), math32.Vector3{}, 1)
	assert.Equal(t, [2]uint32{(5000 & 0x7FF) << 21, (5000 >> 11) << 21}, w)

	rnd := rand.New(rand.NewPCG(1, 2))
	offset = math32.Vec3(128, 128, 128)
	const mult = 1000
	for range 1000 {
		v := math32.Vec3(rnd.Float32()*200-100, rnd.Float32()*200-100, rnd.Float32()*200-100)
		w := Pack2vec(v, offset, mult)
		assert.Equal(t, w, Pack2vec(v, offset, mult), "packing is deterministic")
		u := Unpack2vec(w, offset, mult)
		assert.InDelta(t, v.X, u.X, 1.0/mult+1e-4)
		assert.InDelta(t, v.Y, u.Y, 1.0/mult+1e-4)
		assert.InDelta(t, v.Z, u.Z, 1.0/mult+1e-4)
	}
}

func TestFillPacked2vec(t *testing.T) {
	rec, b := newTestBuffer(t, layout.Std140, 64)
	_, err := Fill(b, []float32{9})
	require.NoError(t, err)

	vecs := []math32.Vector3{math32.Vec3(1, 2, 3), math32.Vec3(4, 5, 6)}
	off, err := b.FillPacked2vec(vecs, math32.Vector3{}, 2)
	require.NoError(t, err)
	assert.Equal(t, 16, off)
	assert.Equal(t, 16+2*Packed2vecSize, b.CurrentPos)

	data := rec.Buffers[b.ID]
	for i, v := range vecs {
		w := Pack2vec(v, math32.Vector3{}, 2)
		assert.Equal(t, w[0], binary.LittleEndian.Uint32(data[off+i*8:]))
		assert.Equal(t, w[1], binary.LittleEndian.Uint32(data[off+i*8+4:]))
	}
}

func TestRectangularIndices(t *testing.T) {
	rec, b := newTestBuffer(t, layout.Std430, 512)
	off, err := b.FillRectangularIndicesBytes(2, 255)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2, 3, 255, 4, 5, 6, 7, 255}, rec.Buffers[b.ID][off:off+10])

	_, err = b.FillRectangularIndicesBytes(64, 255)
	assert.ErrorIs(t, err, ErrRange)
	_, err = b.FillRectangularIndicesBytes(63, 255)
	assert.NoError(t, err)

	require.NoError(t, b.AllocateBytes(30, b.Usage))
	off, err = b.FillRectangularIndicesShorts(3, 0xFFFF)
	require.NoError(t, err)
	data := rec.Buffers[b.ID]
	want := []uint16{0, 1, 2, 3, 0xFFFF, 4, 5, 6, 7, 0xFFFF, 8, 9, 10, 11, 0xFFFF}
	for i, ix := range want {
		assert.Equal(t, ix, binary.LittleEndian.Uint16(data[off+2*i:]), "index %d", i)
	}

	_, err = b.FillRectangularIndicesShorts(3, 11)
	assert.ErrorIs(t, err, ErrRange)
}
