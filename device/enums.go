// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package device

// See: https://registry.khronos.org/OpenGL/api/GL/glcorearb.h
// All enum values are the raw GL values, so implementations
// can pass them straight through.

// Target is a buffer binding target.
type Target uint32

const (
	ArrayBuffer             Target = 0x8892
	ElementArrayBuffer      Target = 0x8893
	UniformBuffer           Target = 0x8A11
	ShaderStorageBuffer     Target = 0x90D2
	AtomicCounterBuffer     Target = 0x92C0
	DrawIndirectBuffer      Target = 0x8F3F
	QueryBuffer             Target = 0x9192
	ParameterBuffer         Target = 0x80EE
	TransformFeedbackBuffer Target = 0x8C8E
)

// Usage is the buffer data usage hint.
type Usage uint32

const (
	StreamDraw  Usage = 0x88E0
	StaticDraw  Usage = 0x88E4
	StaticRead  Usage = 0x88E5
	DynamicDraw Usage = 0x88E8
	DynamicCopy Usage = 0x88EA
)

// MapAccess are the access bit flags for MapNamedBufferRange.
type MapAccess uint32

const (
	MapRead             MapAccess = 0x0001
	MapWrite            MapAccess = 0x0002
	MapInvalidateRange  MapAccess = 0x0004
	MapInvalidateBuffer MapAccess = 0x0008
	MapFlushExplicit    MapAccess = 0x0010
	MapUnsynchronized   MapAccess = 0x0020
)

// Has returns whether all of the given flags are set.
func (ma MapAccess) Has(flags MapAccess) bool {
	return ma&flags == flags
}

// Capability is an Enable / Disable server-side capability.
type Capability uint32

const (
	Blend             Capability = 0x0BE2
	DepthTest         Capability = 0x0B71
	CullFace          Capability = 0x0B44
	DepthClamp        Capability = 0x864F
	PrimitiveRestart  Capability = 0x8F9D
	RasterizerDiscard Capability = 0x8C89
	ProgramPointSize  Capability = 0x8642
	PointSmooth       Capability = 0x0B10
	LineSmooth        Capability = 0x0B20
	PolygonSmooth     Capability = 0x0B41

	// PointSprite is a compatibility profile capability; core profile
	// drivers accept and ignore it.
	PointSprite Capability = 0x8861

	// ClipDistance0 is the first of the MaxClipDistances clip plane
	// capabilities; use [ClipDistance] to index them.
	ClipDistance0 Capability = 0x3000
)

// MaxClipDistances is the minimum number of clip distances
// every implementation must support.
const MaxClipDistances = 8

// ClipDistance returns the capability for clip distance i.
func ClipDistance(i int) Capability {
	return ClipDistance0 + Capability(i)
}

// DepthFuncs is the depth comparison function.
type DepthFuncs uint32

const (
	Never    DepthFuncs = 0x0200
	Less     DepthFuncs = 0x0201
	Equal    DepthFuncs = 0x0202
	LEqual   DepthFuncs = 0x0203
	Greater  DepthFuncs = 0x0204
	NotEqual DepthFuncs = 0x0205
	GEqual   DepthFuncs = 0x0206
	Always   DepthFuncs = 0x0207
)

// BlendFactors are the source and destination blend factors.
type BlendFactors uint32

const (
	Zero                  BlendFactors = 0
	One                   BlendFactors = 1
	SrcColor              BlendFactors = 0x0300
	OneMinusSrcColor      BlendFactors = 0x0301
	SrcAlpha              BlendFactors = 0x0302
	OneMinusSrcAlpha      BlendFactors = 0x0303
	DstAlpha              BlendFactors = 0x0304
	OneMinusDstAlpha      BlendFactors = 0x0305
	DstColor              BlendFactors = 0x0306
	OneMinusDstColor      BlendFactors = 0x0307
	SrcAlphaSaturate      BlendFactors = 0x0308
	ConstantColor         BlendFactors = 0x8001
	OneMinusConstantColor BlendFactors = 0x8002
	ConstantAlpha         BlendFactors = 0x8003
	OneMinusConstantAlpha BlendFactors = 0x8004
)

// BlendEquations are the blend combination equations.
type BlendEquations uint32

const (
	FuncAdd             BlendEquations = 0x8006
	Min                 BlendEquations = 0x8007
	Max                 BlendEquations = 0x8008
	FuncSubtract        BlendEquations = 0x800A
	FuncReverseSubtract BlendEquations = 0x800B
)

// PolygonModes is the rasterization mode for polygons,
// always applied to both front and back faces.
type PolygonModes uint32

const (
	PolygonPoint PolygonModes = 0x1B00
	PolygonLine  PolygonModes = 0x1B01
	PolygonFill  PolygonModes = 0x1B02
)

// FrontFaces is the winding order of front facing polygons.
type FrontFaces uint32

const (
	CW  FrontFaces = 0x0900
	CCW FrontFaces = 0x0901
)

// GL error codes returned by GetError.
const (
	NoError                     uint32 = 0
	InvalidEnum                 uint32 = 0x0500
	InvalidValue                uint32 = 0x0501
	InvalidOperation            uint32 = 0x0502
	OutOfMemory                 uint32 = 0x0505
	InvalidFramebufferOperation uint32 = 0x0506
)
