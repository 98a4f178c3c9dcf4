// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlign(t *testing.T) {
	tests := []struct {
		pos, align, want int
	}{
		{0, 4, 0},
		{1, 4, 4},
		{4, 4, 4},
		{5, 16, 16},
		{17, 16, 32},
		{7, 1, 7},
		{7, 0, 7},
		{13, 12, 24},
		{12, 12, 12},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Align(tt.pos, tt.align), "Align(%d, %d)", tt.pos, tt.align)
	}
}

func TestAlignScalarSequence(t *testing.T) {
	for _, std := range []Standards{Std140, Std430} {
		rnd := rand.New(rand.NewPCG(1, uint64(std)))
		cr := Cursor{Length: 1 << 16, Standard: std}
		sizes := []int{1, 2, 4, 8}
		for range 500 {
			size := sizes[rnd.IntN(len(sizes))]
			off, err := cr.AlignScalar(size)
			require.NoError(t, err)
			assert.Zero(t, off%size, "offset %d not a multiple of %d", off, size)
			assert.Equal(t, off+size, cr.CurrentPos)
		}
	}
}

func TestAlignSizeOneIsSequential(t *testing.T) {
	cr := Cursor{Length: 10}
	for i := range 10 {
		off, err := cr.AlignScalar(1)
		require.NoError(t, err)
		assert.Equal(t, i, off)
	}
}

func TestAlignScalarTo(t *testing.T) {
	cr := Cursor{Length: 256}
	off, err := cr.AlignScalar(4)
	require.NoError(t, err)
	assert.Equal(t, 0, off)

	off, err = cr.AlignScalarTo(16, 12) // vec3
	require.NoError(t, err)
	assert.Equal(t, 16, off)
	assert.Equal(t, 28, cr.CurrentPos)

	off, err = cr.AlignScalarTo(16, 64) // mat4
	require.NoError(t, err)
	assert.Equal(t, 32, off)
	assert.Equal(t, 96, cr.CurrentPos)
}

func TestArrayPtrStride(t *testing.T) {
	for n := 1; n <= 8; n++ {
		cr := Cursor{Length: 1024, Standard: Std430}
		off, stride, err := cr.AlignArrayPtr(4, n)
		require.NoError(t, err)
		assert.Equal(t, 0, off)
		assert.Equal(t, 4, stride)
		assert.Equal(t, 4*n, cr.CurrentPos)

		cr = Cursor{Length: 1024, Standard: Std140}
		off, stride, err = cr.AlignArrayPtr(4, n)
		require.NoError(t, err)
		assert.Equal(t, 0, off)
		assert.Equal(t, 16, stride)
		assert.Equal(t, 16*n, cr.CurrentPos)
	}

	cr := Cursor{Length: 1024, Standard: Std140}
	_, stride, err := cr.AlignArrayPtr(64, 2)
	require.NoError(t, err)
	assert.Equal(t, 64, stride)
}

func TestAlignArrayBulkIsPacked(t *testing.T) {
	cr := Cursor{Length: 1024, Standard: Std140}
	_, err := cr.AlignScalar(4)
	require.NoError(t, err)

	off, err := cr.AlignArray(4, 4*10)
	require.NoError(t, err)
	assert.Equal(t, 16, off)
	assert.Equal(t, 56, cr.CurrentPos)

	cr.Standard = Std430
	off, err = cr.AlignArray(8, 8*2)
	require.NoError(t, err)
	assert.Equal(t, 56, off)
	assert.Equal(t, []int{16, 56}, cr.Positions)
}

func TestCapacity(t *testing.T) {
	cr := Cursor{Length: 32, Standard: Std140}
	_, err := cr.AlignScalar(16)
	require.NoError(t, err)
	off, err := cr.AlignScalar(16)
	require.NoError(t, err, "advance ending exactly at Length must succeed")
	assert.Equal(t, 16, off)
	assert.Equal(t, 32, cr.CurrentPos)

	_, err = cr.AlignScalar(1)
	assert.ErrorIs(t, err, ErrCapacity)
	assert.Equal(t, 32, cr.CurrentPos, "failed advance must not move the cursor")

	cr.Reset(32)
	_, _, err = cr.AlignArrayPtr(4, 3)
	assert.ErrorIs(t, err, ErrCapacity)
	assert.Equal(t, 0, cr.CurrentPos)
	assert.Empty(t, cr.Positions)

	_, err = cr.AlignArray(4, 33)
	assert.ErrorIs(t, err, ErrCapacity)
}

func TestNegativeSize(t *testing.T) {
	for _, std := range []Standards{Std140, Std430} {
		cr := Cursor{Length: 64, CurrentPos: 32, Standard: std}
		_, err := cr.AlignArray(4, -16)
		assert.ErrorIs(t, err, ErrNegative)
		_, err = cr.AlignScalarTo(4, -8)
		assert.ErrorIs(t, err, ErrNegative)
		_, _, err = cr.AlignArrayPtr(4, -2)
		assert.ErrorIs(t, err, ErrNegative)
		_, _, err = cr.AlignArrayPtr(-4, 2)
		assert.ErrorIs(t, err, ErrNegative)
		assert.Equal(t, 32, cr.CurrentPos, std.String())
		assert.Empty(t, cr.Positions, std.String())
	}
}

func TestStandardsString(t *testing.T) {
	assert.Equal(t, "std140", Std140.String())
	assert.Equal(t, "std430", Std430.String())
}
