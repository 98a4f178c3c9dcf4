// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"fmt"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/gl/device"
	"cogentcore.org/gl/device/devicetest"
	"cogentcore.org/gl/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindRequiresStorage(t *testing.T) {
	rec, cx := devicetest.NewContext(t.Name())
	t.Cleanup(device.ClearCurrent)
	b, err := New(cx, layout.Std430)
	require.NoError(t, err)
	rec.Reset()

	assert.ErrorIs(t, b.BindBase(device.ShaderStorageBuffer, 0), ErrEmpty)
	assert.ErrorIs(t, b.BindVertex(1, 0, 0, 12, 0), ErrEmpty)
	assert.ErrorIs(t, b.BindElement(), ErrEmpty)
	assert.ErrorIs(t, b.BindElementTo(1), ErrEmpty)
	assert.Empty(t, rec.Calls)

	b.Dispose()
	assert.ErrorIs(t, b.BindIndirect(), ErrDisposed)
}

func TestBindVertex(t *testing.T) {
	rec, b := newTestBuffer(t, layout.Std430, 64)
	rec.Reset()
	require.NoError(t, b.BindVertex(3, 1, 16, 12, 1))
	require.NoError(t, b.BindElementTo(3))
	assert.Equal(t, []string{
		fmt.Sprintf("VertexArrayVertexBuffer(3, 1, %d, 16, 12)", b.ID),
		"VertexArrayBindingDivisor(3, 1, 1)",
		fmt.Sprintf("VertexArrayElementBuffer(3, %d)", b.ID),
	}, rec.Calls)
}

func TestBindRange(t *testing.T) {
	rec, b := newTestBuffer(t, layout.Std140, 64)
	rec.Reset()
	require.NoError(t, b.BindRange(device.UniformBuffer, 2, 16, 0))
	require.NoError(t, b.BindTransformFeedback(1, 0, 0))
	require.NoError(t, b.BindTransformFeedback(1, 32, 16))
	assert.Equal(t, []string{
		fmt.Sprintf("BindBufferRange(%s, 2, %d, 16, 48)", device.UniformBuffer, b.ID),
		fmt.Sprintf("BindBufferBase(%s, 1, %d)", device.TransformFeedbackBuffer, b.ID),
		fmt.Sprintf("BindBufferRange(%s, 1, %d, 32, 16)", device.TransformFeedbackBuffer, b.ID),
	}, rec.Calls)

	assert.ErrorIs(t, b.BindRange(device.UniformBuffer, 0, 48, 32), ErrRange)
	assert.ErrorIs(t, b.BindRange(device.UniformBuffer, 0, 64, 0), ErrRange)
}

func TestBindCache(t *testing.T) {
	rec, b := newTestBuffer(t, layout.Std430, 64)
	cx := b.Context()
	other, err := NewSize(cx, 16, layout.Std430, device.StaticDraw)
	require.NoError(t, err)

	assert.False(t, cx.BindCache.Enabled)
	rec.Reset()
	require.NoError(t, b.BindIndirect())
	require.NoError(t, b.BindIndirect())
	assert.Len(t, rec.CallsWithPrefix("BindBuffer("), 2, "cache is off by default")

	cx.BindCache.Enabled = true
	rec.Reset()
	require.NoError(t, b.BindIndirect())
	require.NoError(t, b.BindIndirect())
	require.NoError(t, b.BindQuery())
	require.NoError(t, other.BindIndirect())
	require.NoError(t, b.BindIndirect())
	require.NoError(t, b.BindParameter())
	assert.Equal(t, []string{
		fmt.Sprintf("BindBuffer(%s, %d)", device.QueryBuffer, b.ID),
		fmt.Sprintf("BindBuffer(%s, %d)", device.DrawIndirectBuffer, other.ID),
		fmt.Sprintf("BindBuffer(%s, %d)", device.DrawIndirectBuffer, b.ID),
		fmt.Sprintf("BindBuffer(%s, %d)", device.ParameterBuffer, b.ID),
	}, rec.Calls)

	rec.Reset()
	id := b.ID
	require.NoError(t, b.Resize(128))
	require.NotEqual(t, id, b.ID)
	require.NoError(t, b.BindQuery())
	assert.Equal(t, []string{fmt.Sprintf("BindBuffer(%s, %d)", device.QueryBuffer, b.ID)}, rec.CallsWithPrefix("BindBuffer("))
}

func TestBlocks(t *testing.T) {
	rec, cx := devicetest.NewContext(t.Name())
	t.Cleanup(device.ClearCurrent)

	ub, err := NewUniformBlock(cx, 2, 128)
	require.NoError(t, err)
	assert.Equal(t, layout.Std140, ub.Standard)
	assert.Equal(t, 128, ub.Size())

	require.NoError(t, ub.StartWrite(0, 0))
	_, err = Write(&ub.Buffer, math32.Vec3(1, 2, 3))
	require.NoError(t, err)
	off, err := Write(&ub.Buffer, *math32.Identity4())
	require.NoError(t, err)
	assert.Equal(t, 16, off)
	require.NoError(t, ub.StopReadWrite())

	rec.Reset()
	require.NoError(t, ub.Bind())
	assert.Equal(t, []string{fmt.Sprintf("BindBufferBase(%s, 2, %d)", device.UniformBuffer, ub.ID)}, rec.Calls)

	sb, err := NewStorageBlock(cx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, layout.Std430, sb.Standard)
	assert.ErrorIs(t, sb.Bind(), ErrEmpty)
	_, err = AllocateFill(&sb.Buffer, []uint32{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, sb.Bind())

	ab, err := NewAtomicBlock(cx, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, device.AtomicCounterBuffer, ab.Target)
	ab.Dispose()
	ab.Dispose()
	assert.Len(t, rec.CallsWithPrefix("DeleteBuffer"), 1)
}
