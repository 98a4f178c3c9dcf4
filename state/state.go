// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package state describes the fixed function render state of the
// graphics pipeline as a value, and moves the device from one State
// to another with the minimal set of calls ([State.ApplyState]).
//
// A State has two kinds of fields. The always-applied fields (depth,
// blending, color mask, clip distances, primitive restart, discard) are
// global settings that every State specifies. The optional fields (point,
// line, polygon, face culling and patch settings) are typically only
// relevant to one kind of primitive, and are left untouched on the
// device unless set.
//
// The usual pattern keeps one current State per context:
//
//	cur := state.Start(dev)
//	...
//	cur.ApplyState(dev, state.Points(cur, 0))
//	// draw points
//	cur.ApplyState(dev, state.Triangles(cur))
//	// draw triangles
package state

import (
	"fmt"
	"strings"

	"cogentcore.org/gl/device"
)

// ColorMasks are bit flags for the color channels written by draws.
type ColorMasks uint8

const (
	Red ColorMasks = 1 << iota
	Green
	Blue
	Alpha

	NoColor  ColorMasks = 0
	AllColor            = Red | Green | Blue | Alpha
)

// Has returns whether all of the given channels are set.
func (cm ColorMasks) Has(flags ColorMasks) bool {
	return cm&flags == flags
}

// String returns the set channels as letters, e.g. "RGB", or "None".
func (cm ColorMasks) String() string {
	if cm == NoColor {
		return "None"
	}
	var sb strings.Builder
	for i, c := range "RGBA" {
		if cm&(1<<i) != 0 {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

func (cm ColorMasks) MarshalText() ([]byte, error) {
	return []byte(cm.String()), nil
}

// UnmarshalText parses channel letters as written by String.
func (cm *ColorMasks) UnmarshalText(text []byte) error {
	s := strings.ToUpper(string(text))
	if s == "NONE" || s == "" {
		*cm = NoColor
		return nil
	}
	var v ColorMasks
	for _, c := range s {
		i := strings.IndexRune("RGBA", c)
		if i < 0 {
			return fmt.Errorf("state: invalid color mask %q", text)
		}
		v |= 1 << i
	}
	*cm = v
	return nil
}

// State is a complete description of the fixed function render state.
// It is a plain value: copying a State copies all of it.
type State struct {
	// PrimitiveRestart is the restart index for indexed draws,
	// or unset to disable primitive restart.
	PrimitiveRestart Opt[uint32]

	// ClipDistanceEnable is the number of clip distances enabled,
	// from index 0 up. It is at most [device.MaxClipDistances].
	ClipDistanceEnable int

	DepthTest        bool
	DepthFunc        device.DepthFuncs
	WriteDepthBuffer bool
	DepthClamp       bool

	// BlendEnable turns on blending. The blend function and equation
	// are only compared and applied when BlendEnable is on.
	BlendEnable      bool
	BlendSourceRGB   device.BlendFactors
	BlendDestRGB     device.BlendFactors
	BlendSourceA     device.BlendFactors
	BlendDestA       device.BlendFactors
	BlendEquationRGB device.BlendEquations
	BlendEquationA   device.BlendEquations

	// ColorMask has the color channels written by draws.
	ColorMask ColorMasks

	// Discard discards all primitives before rasterization,
	// for transform feedback only passes.
	Discard bool

	// PatchSize is the number of vertices per patch for tessellation.
	PatchSize Opt[int]

	// PointSize is the fixed size of points in pixels,
	// or 0 for a size set by the vertex shader (gl_PointSize).
	PointSize Opt[float32]

	PointSprite   Opt[bool]
	PointSmooth   Opt[bool]
	LineWidth     Opt[float32]
	LineSmooth    Opt[bool]
	PolygonMode   Opt[device.PolygonModes]
	PolygonSmooth Opt[bool]
	CullFace      Opt[bool]
	FrontFace     Opt[device.FrontFaces]
}

// New returns the default State: depth tested, alpha blended and
// writing all channels, with every optional field set.
func New() *State {
	st := &State{}
	st.setDefaults()
	st.PatchSize = Some(3)
	st.PointSize = Some[float32](1)
	st.PointSprite = Some(false)
	st.PointSmooth = Some(true)
	st.LineWidth = Some[float32](1)
	st.LineSmooth = Some(true)
	st.PolygonMode = Some(device.PolygonFill)
	st.PolygonSmooth = Some(false)
	st.CullFace = Some(true)
	st.FrontFace = Some(device.CCW)
	return st
}

// setDefaults sets the always-applied fields to their defaults.
func (st *State) setDefaults() {
	st.PrimitiveRestart = None[uint32]()
	st.ClipDistanceEnable = 0
	st.DepthTest = true
	st.DepthFunc = device.Less
	st.WriteDepthBuffer = true
	st.DepthClamp = false
	st.BlendEnable = true
	st.BlendSourceRGB = device.SrcAlpha
	st.BlendDestRGB = device.OneMinusSrcAlpha
	st.BlendSourceA = device.SrcAlpha
	st.BlendDestA = device.OneMinusSrcAlpha
	st.BlendEquationRGB = device.FuncAdd
	st.BlendEquationA = device.FuncAdd
	st.ColorMask = AllColor
	st.Discard = false
}

// NewFrom returns a State with the always-applied fields of prev,
// and all optional fields unset.
func NewFrom(prev *State) *State {
	return &State{
		PrimitiveRestart:   prev.PrimitiveRestart,
		ClipDistanceEnable: prev.ClipDistanceEnable,
		DepthTest:          prev.DepthTest,
		DepthFunc:          prev.DepthFunc,
		WriteDepthBuffer:   prev.WriteDepthBuffer,
		DepthClamp:         prev.DepthClamp,
		BlendEnable:        prev.BlendEnable,
		BlendSourceRGB:     prev.BlendSourceRGB,
		BlendDestRGB:       prev.BlendDestRGB,
		BlendSourceA:       prev.BlendSourceA,
		BlendDestA:         prev.BlendDestA,
		BlendEquationRGB:   prev.BlendEquationRGB,
		BlendEquationA:     prev.BlendEquationA,
		ColorMask:          prev.ColorMask,
		Discard:            prev.Discard,
	}
}

// Clone returns a copy of the State.
func (st *State) Clone() *State {
	cp := *st
	return &cp
}

// SetBlend sets blending on with the same source and destination
// factors for color and alpha, and additive blending.
func (st *State) SetBlend(src, dst device.BlendFactors) *State {
	st.BlendEnable = true
	st.BlendSourceRGB, st.BlendSourceA = src, src
	st.BlendDestRGB, st.BlendDestA = dst, dst
	st.BlendEquationRGB, st.BlendEquationA = device.FuncAdd, device.FuncAdd
	return st
}

// Triangles returns a State from prev for drawing filled triangles
// with back faces culled.
func Triangles(prev *State) *State {
	st := NewFrom(prev)
	st.PolygonMode = Some(device.PolygonFill)
	st.CullFace = Some(true)
	st.FrontFace = Some(device.CCW)
	return st
}

// Points returns a State from prev for drawing points of the given
// size, or sized by the vertex shader if size is 0.
func Points(prev *State, size float32) *State {
	st := NewFrom(prev)
	st.PointSize = Some(size)
	st.PointSprite = Some(true)
	st.CullFace = Some(false)
	return st
}

// Lines returns a State from prev for drawing smoothed lines.
func Lines(prev *State, width float32) *State {
	st := NewFrom(prev)
	st.LineWidth = Some(width)
	st.LineSmooth = Some(true)
	st.CullFace = Some(false)
	return st
}

// Patches returns a State from prev for drawing tessellation patches
// of n vertices.
func Patches(prev *State, n int) *State {
	st := NewFrom(prev)
	st.PatchSize = Some(n)
	return st
}
