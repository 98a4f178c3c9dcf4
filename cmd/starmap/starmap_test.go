// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"image"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/gl/buffer"
	"cogentcore.org/gl/device"
	"cogentcore.org/gl/device/devicetest"
	"cogentcore.org/gl/layout"
	"cogentcore.org/gl/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinPresets(t *testing.T) {
	presets, err := loadPresets("")
	require.NoError(t, err)
	st := presets["stars"]
	assert.Equal(t, device.One, st.BlendDestRGB)
	size, ok := st.PointSize.Get()
	assert.True(t, ok)
	assert.Zero(t, size, "stars are sized by the shader")
	restart, ok := presets["markers"].PrimitiveRestart.Get()
	assert.True(t, ok)
	assert.Equal(t, uint32(restartIndex), restart)
}

func TestPresetsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(file, []byte("[stars]\nDepthTest = true\n"), 0o644))
	_, err := loadPresets(file)
	assert.ErrorContains(t, err, "markers")

	require.NoError(t, os.WriteFile(file, []byte("[stars]\n[markers]\nColorMask = \"RGB\"\n"), 0o644))
	presets, err := loadPresets(file)
	require.NoError(t, err)
	assert.Len(t, presets, 2)
}

func TestStarPositions(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	pos := randomPositions(rnd, 500)
	require.Len(t, pos, 500)
	off := math32.Vec3(starRadius, starRadius, starRadius)
	for _, p := range pos {
		assert.LessOrEqual(t, p.Length(), float32(starRadius)+1e-3)
		u := buffer.Unpack2vec(buffer.Pack2vec(p, off, packMult), off, packMult)
		assert.InDelta(t, p.X, u.X, 1e-3)
		assert.InDelta(t, p.Y, u.Y, 1e-3)
		assert.InDelta(t, p.Z, u.Z, 1e-3)
	}

	cs := markerCorners(pos[:2])
	require.Len(t, cs, 8)
	assert.Equal(t, pos[1].Add(math32.Vec3(markerSize, markerSize, 0)), cs[7])
}

func TestShaderSources(t *testing.T) {
	for _, name := range []string{"stars.vert", "stars.frag", "marker.vert", "marker.frag"} {
		src, err := shader.ReadFS(content, "shaders/"+name, map[string]any{"MULT": "2.0", "OFFSET": "1.0"})
		require.NoError(t, err, name)
		assert.NotContains(t, src, "\n#include", name)
	}
	src, err := shader.ReadFS(content, "shaders/stars.vert", map[string]any{"MULT": "2.0", "OFFSET": "1.0"})
	require.NoError(t, err)
	assert.Contains(t, src, "const float MULT = 2.0;")
	assert.Contains(t, src, "uniform Camera")
}

func TestUpdateCamera(t *testing.T) {
	rec, cx := devicetest.NewContext(t.Name())
	t.Cleanup(device.ClearCurrent)
	cam, err := buffer.NewUniformBlock(cx, 0, cameraSize)
	require.NoError(t, err)
	sc := &scene{cx: cx, camera: cam, view: *math32.Identity4()}

	require.NoError(t, sc.updateCamera(image.Pt(640, 480), 2))
	data := rec.Buffers[cam.ID]
	assert.Equal(t, float32(2), math.Float32frombits(binary.LittleEndian.Uint32(data[3*64:])))
	assert.Len(t, rec.CallsWithPrefix("BindBufferBase"), 1)

	small, err := buffer.NewUniformBlock(cx, 0, 128)
	require.NoError(t, err)
	sc.camera = small
	err = sc.updateCamera(image.Pt(640, 480), 2)
	assert.ErrorIs(t, err, layout.ErrCapacity)
	assert.Equal(t, buffer.MapNone, small.MapMode, "a failed write still ends the map session")
	assert.Len(t, rec.CallsWithPrefix("BindBufferBase"), 1)
}
