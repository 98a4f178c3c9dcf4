// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package device_test

import (
	"testing"

	"cogentcore.org/gl/device"
	"cogentcore.org/gl/device/devicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	t.Cleanup(device.ClearCurrent)
	_, a := devicetest.NewContext("a")
	assert.True(t, a.IsCurrent())
	assert.Same(t, a, device.Current())
	assert.NoError(t, a.CheckCurrent())

	b := device.NewContext("b", devicetest.New())
	assert.False(t, b.IsCurrent(), "NewContext does not make the context current")
	err := b.CheckCurrent()
	assert.ErrorIs(t, err, device.ErrWrongContext)
	assert.ErrorContains(t, err, "b")

	b.MakeCurrent()
	assert.False(t, a.IsCurrent())
	assert.ErrorIs(t, a.CheckCurrent(), device.ErrWrongContext)

	device.ClearCurrent()
	assert.Nil(t, device.Current())
	var none *device.Context
	assert.False(t, none.IsCurrent())
	assert.ErrorIs(t, none.CheckCurrent(), device.ErrWrongContext)
}

func TestErrCheck(t *testing.T) {
	t.Cleanup(device.ClearCurrent)
	rec, cx := devicetest.NewContext(t.Name())
	assert.NoError(t, cx.ErrCheck("nothing"))

	rec.FailNext(device.InvalidEnum)
	rec.FailNext(device.OutOfMemory)
	err := cx.ErrCheck("upload")
	require.ErrorIs(t, err, device.ErrDevice)
	assert.Equal(t, "upload: device: graphics error: INVALID_ENUM, OUT_OF_MEMORY", err.Error())
	assert.NoError(t, cx.ErrCheck("drained"))

	rec.DeleteBuffer(42)
	assert.ErrorContains(t, cx.ErrCheck("delete"), "INVALID_OPERATION")
}

func TestBindCache(t *testing.T) {
	rec := devicetest.New()
	var bc device.BindCache

	assert.True(t, bc.Bind(rec, device.ArrayBuffer, 1))
	assert.True(t, bc.Bind(rec, device.ArrayBuffer, 1))

	bc.Enabled = true
	assert.False(t, bc.Bind(rec, device.ArrayBuffer, 1))
	assert.True(t, bc.Bind(rec, device.ElementArrayBuffer, 1))
	assert.True(t, bc.Bind(rec, device.ArrayBuffer, 2))
	assert.False(t, bc.Bind(rec, device.ArrayBuffer, 2))

	bc.Forget(2)
	assert.True(t, bc.Bind(rec, device.ArrayBuffer, 2))
	assert.False(t, bc.Bind(rec, device.ElementArrayBuffer, 1))
	bc.Reset()
	assert.True(t, bc.Bind(rec, device.ElementArrayBuffer, 1))
	assert.Len(t, rec.Calls, 6)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "DepthTest", device.DepthTest.String())
	assert.Equal(t, "ClipDistance0", device.ClipDistance(0).String())
	assert.Equal(t, "ClipDistance7", device.ClipDistance(7).String())
	assert.Equal(t, "12296", device.ClipDistance(8).String(), "unnamed values print as numbers")
	assert.Equal(t, "UniformBuffer", device.UniformBuffer.String())
	assert.Equal(t, "Fill", device.PolygonFill.String())
	assert.Equal(t, "INVALID_VALUE", device.ErrorName(device.InvalidValue))

	var bf device.BlendFactors
	require.NoError(t, bf.UnmarshalText([]byte("one-minus-src-alpha")))
	assert.Equal(t, device.OneMinusSrcAlpha, bf)
	require.NoError(t, bf.UnmarshalText([]byte("SRC_ALPHA")))
	assert.Equal(t, device.SrcAlpha, bf)
	assert.Error(t, bf.UnmarshalText([]byte("half")))
	assert.Equal(t, device.SrcAlpha, bf, "failed parse keeps the value")

	var df device.DepthFuncs
	require.NoError(t, df.UnmarshalText([]byte("lequal")))
	assert.Equal(t, device.LEqual, df)
	text, err := df.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "LEqual", string(text))

	assert.Len(t, df.Values(), 8)
	assert.Equal(t, int64(0x0201), device.Less.Int64())
	assert.Equal(t, "CCW", device.FrontFacesValues()[1].String())
	require.NoError(t, df.SetString("GEQUAL"))
	assert.Equal(t, device.GEqual, df)

	var pm device.PolygonModes
	require.NoError(t, pm.UnmarshalText([]byte("line")))
	assert.Equal(t, device.PolygonLine, pm)

	assert.True(t, (device.MapWrite | device.MapInvalidateRange).Has(device.MapWrite))
	assert.False(t, device.MapWrite.Has(device.MapWrite|device.MapRead))
}
