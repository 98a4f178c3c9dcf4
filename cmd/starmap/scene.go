// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/gl/buffer"
	"cogentcore.org/gl/device"
	"cogentcore.org/gl/device/gldevice"
	"cogentcore.org/gl/layout"
	"cogentcore.org/gl/shader"
	"cogentcore.org/gl/state"
)

const (
	// starRadius is the radius of the sphere the stars are in.
	starRadius = 100

	// packMult is the packed position resolution, per unit.
	// (2 * starRadius * packMult) must fit in 21 bits.
	packMult = 10000

	// markerSize is the half width of a marker square.
	markerSize = 1.5

	// cameraSize is the size of the std140 Camera block in the shaders:
	// three mat4 and a float, rounded up to a vec4.
	cameraSize = 3*64 + 16

	restartIndex = 0xFFFF
)

// palette has the star colors, by spectral class.
var palette = []color.Color{
	color.RGBA{155, 176, 255, 255}, // O
	color.RGBA{170, 191, 255, 255}, // B
	color.RGBA{202, 215, 255, 255}, // A
	color.RGBA{248, 247, 255, 255}, // F
	color.RGBA{255, 244, 234, 255}, // G
	color.RGBA{255, 210, 161, 255}, // K
	color.RGBA{255, 204, 111, 255}, // M
}

// scene has the GPU resources for drawing the stars and markers.
type scene struct {
	cx  *device.Context
	dev *gldevice.Device

	starProg, markerProg *gldevice.Program
	starVAO, markerVAO   uint32

	stars   *buffer.Buffer
	colors  *buffer.Buffer
	corners *buffer.Buffer
	indexes *buffer.Buffer
	camera  *buffer.Block

	nstars, nmarkers int

	view math32.Matrix4
}

// randomPositions returns n positions uniformly within the star sphere.
func randomPositions(rnd *rand.Rand, n int) []math32.Vector3 {
	ps := make([]math32.Vector3, 0, n)
	for len(ps) < n {
		v := math32.Vec3(rnd.Float32()*2-1, rnd.Float32()*2-1, rnd.Float32()*2-1)
		if v.Length() > 1 {
			continue
		}
		ps = append(ps, v.MulScalar(starRadius))
	}
	return ps
}

// markerCorners returns 4 corners around each position,
// in triangle strip order.
func markerCorners(ps []math32.Vector3) []math32.Vector3 {
	cs := make([]math32.Vector3, 0, 4*len(ps))
	for _, p := range ps {
		cs = append(cs,
			p.Add(math32.Vec3(-markerSize, -markerSize, 0)),
			p.Add(math32.Vec3(markerSize, -markerSize, 0)),
			p.Add(math32.Vec3(-markerSize, markerSize, 0)),
			p.Add(math32.Vec3(markerSize, markerSize, 0)))
	}
	return cs
}

func newScene(cx *device.Context, dev *gldevice.Device, c *Config) (*scene, error) {
	if c.Stars <= 0 {
		return nil, errors.Log(fmt.Errorf("starmap: need at least one star, have %d", c.Stars))
	}
	sc := &scene{cx: cx, dev: dev, nstars: c.Stars, nmarkers: max(0, min(c.Markers, c.Stars, (restartIndex-1)/4))}
	rnd := rand.New(rand.NewPCG(c.Seed, c.Seed^0x9e3779b97f4a7c15))
	pos := randomPositions(rnd, c.Stars)
	if err := sc.makeBuffers(pos); err != nil {
		sc.dispose()
		return nil, err
	}
	if err := sc.makePrograms(); err != nil {
		sc.dispose()
		return nil, err
	}
	if err := sc.makeVertexArrays(); err != nil {
		sc.dispose()
		return nil, err
	}
	sc.view = *cameraView(math32.Vec3(0, 30, 2.5*starRadius), math32.Vec3(0, 0, 0), math32.Vec3(0, 1, 0))
	return sc, nil
}

func (sc *scene) makeBuffers(pos []math32.Vector3) error {
	var err error
	off := math32.Vec3(starRadius, starRadius, starRadius)
	if sc.stars, err = buffer.NewSize(sc.cx, len(pos)*buffer.Packed2vecSize, layout.Std430, device.StaticDraw); err != nil {
		return err
	}
	if _, err = sc.stars.FillPacked2vec(pos, off, packMult); err != nil {
		return err
	}

	if sc.colors, err = buffer.New(sc.cx, layout.Std430); err != nil {
		return err
	}
	sc.colors.Usage = device.StaticDraw
	if _, err = sc.colors.AllocateFillColors(palette, len(pos)); err != nil {
		return err
	}

	if sc.corners, err = buffer.New(sc.cx, layout.Std430); err != nil {
		return err
	}
	if _, err = buffer.AllocateFill(sc.corners, markerCorners(pos[:sc.nmarkers])); err != nil {
		return err
	}

	if sc.indexes, err = buffer.NewSize(sc.cx, sc.nmarkers*5*2, layout.Std430, device.StaticDraw); err != nil {
		return err
	}
	if _, err = sc.indexes.FillRectangularIndicesShorts(sc.nmarkers, restartIndex); err != nil {
		return err
	}

	sc.camera, err = buffer.NewUniformBlock(sc.cx, 0, cameraSize)
	return err
}

func (sc *scene) makePrograms() error {
	consts := map[string]any{
		"MULT":   fmt.Sprintf("%.1f", float32(packMult)),
		"OFFSET": fmt.Sprintf("%.1f", float32(starRadius)),
	}
	var srcs [4]string
	for i, name := range []string{"stars.vert", "stars.frag", "marker.vert", "marker.frag"} {
		src, err := shader.ReadFS(content, "shaders/"+name, consts)
		if err != nil {
			return errors.Log(err)
		}
		srcs[i] = src
	}
	var err error
	sc.starProg, err = sc.dev.CompileProgram("stars",
		gldevice.Shader{Type: gldevice.VertexShader, Source: srcs[0]},
		gldevice.Shader{Type: gldevice.FragmentShader, Source: srcs[1]})
	if err != nil {
		return err
	}
	sc.markerProg, err = sc.dev.CompileProgram("markers",
		gldevice.Shader{Type: gldevice.VertexShader, Source: srcs[2]},
		gldevice.Shader{Type: gldevice.FragmentShader, Source: srcs[3]})
	return err
}

func (sc *scene) makeVertexArrays() error {
	sc.starVAO = sc.dev.CreateVertexArray()
	if err := sc.stars.BindVertex(sc.starVAO, 0, 0, buffer.Packed2vecSize, 0); err != nil {
		return err
	}
	sc.dev.VertexAttribUint(sc.starVAO, 0, 0, 2, 0)
	if err := sc.colors.BindVertex(sc.starVAO, 1, 0, 16, 0); err != nil {
		return err
	}
	sc.dev.VertexAttribFloat(sc.starVAO, 1, 1, 4, 0)

	if sc.nmarkers == 0 {
		return sc.cx.ErrCheck("starmap vertex arrays")
	}
	sc.markerVAO = sc.dev.CreateVertexArray()
	if err := sc.corners.BindVertex(sc.markerVAO, 0, 0, 12, 0); err != nil {
		return err
	}
	sc.dev.VertexAttribFloat(sc.markerVAO, 0, 0, 3, 0)
	if err := sc.indexes.BindElementTo(sc.markerVAO); err != nil {
		return err
	}
	return sc.cx.ErrCheck("starmap vertex arrays")
}

// updateCamera writes the camera block for the given frame size and time.
func (sc *scene) updateCamera(size image.Point, t float32) error {
	var model, proj math32.Matrix4
	model.SetRotationY(0.05 * t)
	proj.SetPerspective(45, float32(size.X)/float32(size.Y), 0.1, 10*starRadius)

	cb := &sc.camera.Buffer
	if err := cb.StartWrite(0, 0); err != nil {
		return err
	}
	if err := writeCamera(cb, model, sc.view, proj, t); err != nil {
		return errors.Join(err, cb.StopReadWrite())
	}
	if err := cb.StopReadWrite(); err != nil {
		return err
	}
	return sc.camera.Bind()
}

// writeCamera writes the Camera block fields at the cursor of the
// mapped buffer cb.
func writeCamera(cb *buffer.Buffer, model, view, proj math32.Matrix4, t float32) error {
	for _, m := range []math32.Matrix4{model, view, proj} {
		if _, err := buffer.Write(cb, m); err != nil {
			return err
		}
	}
	_, err := buffer.Write(cb, t)
	return err
}

// render draws one frame, moving the current render state cur
// through the stars and markers presets.
func (sc *scene) render(cur *state.State, presets map[string]*state.State, size image.Point, t float32) error {
	if err := sc.updateCamera(size, t); err != nil {
		return err
	}

	base := state.NewFrom(cur)
	base.WriteDepthBuffer = true
	base.ColorMask = state.AllColor
	cur.ApplyState(sc.dev, base)
	sc.dev.Viewport(image.Rectangle{Max: size})
	sc.dev.ClearColor(0.01, 0.01, 0.03, 1)
	sc.dev.Clear(true, true)

	cur.ApplyState(sc.dev, presets["stars"])
	sc.starProg.Use()
	sc.dev.BindVertexArray(sc.starVAO)
	sc.dev.DrawArrays(gldevice.Points, 0, sc.nstars)

	if sc.nmarkers > 0 {
		cur.ApplyState(sc.dev, presets["markers"])
		sc.markerProg.Use()
		sc.dev.BindVertexArray(sc.markerVAO)
		sc.dev.DrawElements(gldevice.TriangleStrip, sc.nmarkers*5, gldevice.IndexUint16, 0)
	}
	return sc.cx.ErrCheck("starmap render")
}

func (sc *scene) dispose() {
	for _, b := range []*buffer.Buffer{sc.stars, sc.colors, sc.corners, sc.indexes} {
		if b != nil {
			b.Dispose()
		}
	}
	if sc.camera != nil {
		sc.camera.Dispose()
	}
	for _, pr := range []*gldevice.Program{sc.starProg, sc.markerProg} {
		if pr != nil {
			pr.Delete()
		}
	}
	for _, vao := range []uint32{sc.starVAO, sc.markerVAO} {
		if vao != 0 {
			sc.dev.DeleteVertexArray(vao)
		}
	}
}
