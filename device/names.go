// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package device

import (
	"fmt"
	"strings"

	"cogentcore.org/core/enums"
)

// These methods follow the shape of the enumgen output, written out
// by hand since the values are raw GL constants, not iota sequences.
// Names are parsed ignoring case and any '-' or '_' separators,
// so "src-alpha" and "SRC_ALPHA" both match SrcAlpha.

// enumKey folds a name for lookup in a value map.
func enumKey(s string) string {
	return strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(s))
}

// valueMap returns the name to value map for the given value to name
// map, with a folded key (see [enumKey]) for every name.
func valueMap[T comparable](names map[T]string) map[string]T {
	m := make(map[string]T, 2*len(names))
	for v, n := range names {
		m[n] = v
		m[enumKey(n)] = v
	}
	return m
}

var _TargetValues = []Target{ArrayBuffer, ElementArrayBuffer, UniformBuffer, ShaderStorageBuffer, AtomicCounterBuffer, DrawIndirectBuffer, QueryBuffer, ParameterBuffer, TransformFeedbackBuffer}

var _TargetMap = map[Target]string{
	ArrayBuffer: `ArrayBuffer`,
	ElementArrayBuffer: `ElementArrayBuffer`,
	UniformBuffer: `UniformBuffer`,
	ShaderStorageBuffer: `ShaderStorageBuffer`,
	AtomicCounterBuffer: `AtomicCounterBuffer`,
	DrawIndirectBuffer: `DrawIndirectBuffer`,
	QueryBuffer: `QueryBuffer`,
	ParameterBuffer: `ParameterBuffer`,
	TransformFeedbackBuffer: `TransformFeedbackBuffer`,
}

var _TargetValueMap = valueMap(_TargetMap)

// String returns the string representation of this Target value.
func (i Target) String() string { return enums.String(i, _TargetMap) }

// SetString sets the Target value from its string representation,
// and returns an error if the string is invalid.
func (i *Target) SetString(s string) error {
	return enums.SetStringLower(i, enumKey(s), _TargetValueMap, "Target")
}

// Int64 returns the Target value as an int64.
func (i Target) Int64() int64 { return int64(i) }

// SetInt64 sets the Target value from an int64.
func (i *Target) SetInt64(in int64) { *i = Target(in) }

// Desc returns the description of the Target value.
func (i Target) Desc() string { return i.String() }

// TargetValues returns all named values for the type Target.
func TargetValues() []Target { return _TargetValues }

// Values returns all named values for the type Target.
func (i Target) Values() []enums.Enum { return enums.Values(_TargetValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Target) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Unlike most enums, an invalid name is returned as an error, so that
// a bad render state preset is rejected.
func (i *Target) UnmarshalText(text []byte) error {
	if err := i.SetString(string(text)); err != nil {
		return fmt.Errorf("device: %w", err)
	}
	return nil
}

var _CapabilityValues = []Capability{Blend, DepthTest, CullFace, DepthClamp, PrimitiveRestart, RasterizerDiscard, ProgramPointSize, PointSmooth, LineSmooth, PolygonSmooth, PointSprite}

var _CapabilityMap = map[Capability]string{
	Blend: `Blend`,
	DepthTest: `DepthTest`,
	CullFace: `CullFace`,
	DepthClamp: `DepthClamp`,
	PrimitiveRestart: `PrimitiveRestart`,
	RasterizerDiscard: `RasterizerDiscard`,
	ProgramPointSize: `ProgramPointSize`,
	PointSmooth: `PointSmooth`,
	LineSmooth: `LineSmooth`,
	PolygonSmooth: `PolygonSmooth`,
	PointSprite: `PointSprite`,
}

var _CapabilityValueMap = valueMap(_CapabilityMap)

// String returns the string representation of this Capability value.
func (i Capability) String() string {
	if i >= ClipDistance0 && i < ClipDistance0+MaxClipDistances {
		return fmt.Sprintf("ClipDistance%d", i-ClipDistance0)
	}
	return enums.String(i, _CapabilityMap)
}

// SetString sets the Capability value from its string representation,
// and returns an error if the string is invalid.
func (i *Capability) SetString(s string) error {
	return enums.SetStringLower(i, enumKey(s), _CapabilityValueMap, "Capability")
}

// Int64 returns the Capability value as an int64.
func (i Capability) Int64() int64 { return int64(i) }

// SetInt64 sets the Capability value from an int64.
func (i *Capability) SetInt64(in int64) { *i = Capability(in) }

// Desc returns the description of the Capability value.
func (i Capability) Desc() string { return i.String() }

// CapabilityValues returns all named values for the type Capability.
func CapabilityValues() []Capability { return _CapabilityValues }

// Values returns all named values for the type Capability.
func (i Capability) Values() []enums.Enum { return enums.Values(_CapabilityValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Capability) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Unlike most enums, an invalid name is returned as an error, so that
// a bad render state preset is rejected.
func (i *Capability) UnmarshalText(text []byte) error {
	if err := i.SetString(string(text)); err != nil {
		return fmt.Errorf("device: %w", err)
	}
	return nil
}

var _DepthFuncsValues = []DepthFuncs{Never, Less, Equal, LEqual, Greater, NotEqual, GEqual, Always}

var _DepthFuncsMap = map[DepthFuncs]string{
	Never: `Never`,
	Less: `Less`,
	Equal: `Equal`,
	LEqual: `LEqual`,
	Greater: `Greater`,
	NotEqual: `NotEqual`,
	GEqual: `GEqual`,
	Always: `Always`,
}

var _DepthFuncsValueMap = valueMap(_DepthFuncsMap)

// String returns the string representation of this DepthFuncs value.
func (i DepthFuncs) String() string { return enums.String(i, _DepthFuncsMap) }

// SetString sets the DepthFuncs value from its string representation,
// and returns an error if the string is invalid.
func (i *DepthFuncs) SetString(s string) error {
	return enums.SetStringLower(i, enumKey(s), _DepthFuncsValueMap, "DepthFuncs")
}

// Int64 returns the DepthFuncs value as an int64.
func (i DepthFuncs) Int64() int64 { return int64(i) }

// SetInt64 sets the DepthFuncs value from an int64.
func (i *DepthFuncs) SetInt64(in int64) { *i = DepthFuncs(in) }

// Desc returns the description of the DepthFuncs value.
func (i DepthFuncs) Desc() string { return i.String() }

// DepthFuncsValues returns all named values for the type DepthFuncs.
func DepthFuncsValues() []DepthFuncs { return _DepthFuncsValues }

// Values returns all named values for the type DepthFuncs.
func (i DepthFuncs) Values() []enums.Enum { return enums.Values(_DepthFuncsValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i DepthFuncs) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Unlike most enums, an invalid name is returned as an error, so that
// a bad render state preset is rejected.
func (i *DepthFuncs) UnmarshalText(text []byte) error {
	if err := i.SetString(string(text)); err != nil {
		return fmt.Errorf("device: %w", err)
	}
	return nil
}

var _BlendFactorsValues = []BlendFactors{Zero, One, SrcColor, OneMinusSrcColor, SrcAlpha, OneMinusSrcAlpha, DstAlpha, OneMinusDstAlpha, DstColor, OneMinusDstColor, SrcAlphaSaturate, ConstantColor, OneMinusConstantColor, ConstantAlpha, OneMinusConstantAlpha}

var _BlendFactorsMap = map[BlendFactors]string{
	Zero: `Zero`,
	One: `One`,
	SrcColor: `SrcColor`,
	OneMinusSrcColor: `OneMinusSrcColor`,
	SrcAlpha: `SrcAlpha`,
	OneMinusSrcAlpha: `OneMinusSrcAlpha`,
	DstAlpha: `DstAlpha`,
	OneMinusDstAlpha: `OneMinusDstAlpha`,
	DstColor: `DstColor`,
	OneMinusDstColor: `OneMinusDstColor`,
	SrcAlphaSaturate: `SrcAlphaSaturate`,
	ConstantColor: `ConstantColor`,
	OneMinusConstantColor: `OneMinusConstantColor`,
	ConstantAlpha: `ConstantAlpha`,
	OneMinusConstantAlpha: `OneMinusConstantAlpha`,
}

var _BlendFactorsValueMap = valueMap(_BlendFactorsMap)

// String returns the string representation of this BlendFactors value.
func (i BlendFactors) String() string { return enums.String(i, _BlendFactorsMap) }

// SetString sets the BlendFactors value from its string representation,
// and returns an error if the string is invalid.
func (i *BlendFactors) SetString(s string) error {
	return enums.SetStringLower(i, enumKey(s), _BlendFactorsValueMap, "BlendFactors")
}

// Int64 returns the BlendFactors value as an int64.
func (i BlendFactors) Int64() int64 { return int64(i) }

// SetInt64 sets the BlendFactors value from an int64.
func (i *BlendFactors) SetInt64(in int64) { *i = BlendFactors(in) }

// Desc returns the description of the BlendFactors value.
func (i BlendFactors) Desc() string { return i.String() }

// BlendFactorsValues returns all named values for the type BlendFactors.
func BlendFactorsValues() []BlendFactors { return _BlendFactorsValues }

// Values returns all named values for the type BlendFactors.
func (i BlendFactors) Values() []enums.Enum { return enums.Values(_BlendFactorsValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i BlendFactors) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Unlike most enums, an invalid name is returned as an error, so that
// a bad render state preset is rejected.
func (i *BlendFactors) UnmarshalText(text []byte) error {
	if err := i.SetString(string(text)); err != nil {
		return fmt.Errorf("device: %w", err)
	}
	return nil
}

var _BlendEquationsValues = []BlendEquations{FuncAdd, Min, Max, FuncSubtract, FuncReverseSubtract}

var _BlendEquationsMap = map[BlendEquations]string{
	FuncAdd: `FuncAdd`,
	Min: `Min`,
	Max: `Max`,
	FuncSubtract: `FuncSubtract`,
	FuncReverseSubtract: `FuncReverseSubtract`,
}

var _BlendEquationsValueMap = valueMap(_BlendEquationsMap)

// String returns the string representation of this BlendEquations value.
func (i BlendEquations) String() string { return enums.String(i, _BlendEquationsMap) }

// SetString sets the BlendEquations value from its string representation,
// and returns an error if the string is invalid.
func (i *BlendEquations) SetString(s string) error {
	return enums.SetStringLower(i, enumKey(s), _BlendEquationsValueMap, "BlendEquations")
}

// Int64 returns the BlendEquations value as an int64.
func (i BlendEquations) Int64() int64 { return int64(i) }

// SetInt64 sets the BlendEquations value from an int64.
func (i *BlendEquations) SetInt64(in int64) { *i = BlendEquations(in) }

// Desc returns the description of the BlendEquations value.
func (i BlendEquations) Desc() string { return i.String() }

// BlendEquationsValues returns all named values for the type BlendEquations.
func BlendEquationsValues() []BlendEquations { return _BlendEquationsValues }

// Values returns all named values for the type BlendEquations.
func (i BlendEquations) Values() []enums.Enum { return enums.Values(_BlendEquationsValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i BlendEquations) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Unlike most enums, an invalid name is returned as an error, so that
// a bad render state preset is rejected.
func (i *BlendEquations) UnmarshalText(text []byte) error {
	if err := i.SetString(string(text)); err != nil {
		return fmt.Errorf("device: %w", err)
	}
	return nil
}

var _PolygonModesValues = []PolygonModes{PolygonPoint, PolygonLine, PolygonFill}

var _PolygonModesMap = map[PolygonModes]string{
	PolygonPoint: `Point`,
	PolygonLine: `Line`,
	PolygonFill: `Fill`,
}

var _PolygonModesValueMap = valueMap(_PolygonModesMap)

// String returns the string representation of this PolygonModes value.
func (i PolygonModes) String() string { return enums.String(i, _PolygonModesMap) }

// SetString sets the PolygonModes value from its string representation,
// and returns an error if the string is invalid.
func (i *PolygonModes) SetString(s string) error {
	return enums.SetStringLower(i, enumKey(s), _PolygonModesValueMap, "PolygonModes")
}

// Int64 returns the PolygonModes value as an int64.
func (i PolygonModes) Int64() int64 { return int64(i) }

// SetInt64 sets the PolygonModes value from an int64.
func (i *PolygonModes) SetInt64(in int64) { *i = PolygonModes(in) }

// Desc returns the description of the PolygonModes value.
func (i PolygonModes) Desc() string { return i.String() }

// PolygonModesValues returns all named values for the type PolygonModes.
func PolygonModesValues() []PolygonModes { return _PolygonModesValues }

// Values returns all named values for the type PolygonModes.
func (i PolygonModes) Values() []enums.Enum { return enums.Values(_PolygonModesValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i PolygonModes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Unlike most enums, an invalid name is returned as an error, so that
// a bad render state preset is rejected.
func (i *PolygonModes) UnmarshalText(text []byte) error {
	if err := i.SetString(string(text)); err != nil {
		return fmt.Errorf("device: %w", err)
	}
	return nil
}

var _FrontFacesValues = []FrontFaces{CW, CCW}

var _FrontFacesMap = map[FrontFaces]string{
	CW: `CW`,
	CCW: `CCW`,
}

var _FrontFacesValueMap = valueMap(_FrontFacesMap)

// String returns the string representation of this FrontFaces value.
func (i FrontFaces) String() string { return enums.String(i, _FrontFacesMap) }

// SetString sets the FrontFaces value from its string representation,
// and returns an error if the string is invalid.
func (i *FrontFaces) SetString(s string) error {
	return enums.SetStringLower(i, enumKey(s), _FrontFacesValueMap, "FrontFaces")
}

// Int64 returns the FrontFaces value as an int64.
func (i FrontFaces) Int64() int64 { return int64(i) }

// SetInt64 sets the FrontFaces value from an int64.
func (i *FrontFaces) SetInt64(in int64) { *i = FrontFaces(in) }

// Desc returns the description of the FrontFaces value.
func (i FrontFaces) Desc() string { return i.String() }

// FrontFacesValues returns all named values for the type FrontFaces.
func FrontFacesValues() []FrontFaces { return _FrontFacesValues }

// Values returns all named values for the type FrontFaces.
func (i FrontFaces) Values() []enums.Enum { return enums.Values(_FrontFacesValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i FrontFaces) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Unlike most enums, an invalid name is returned as an error, so that
// a bad render state preset is rejected.
func (i *FrontFaces) UnmarshalText(text []byte) error {
	if err := i.SetString(string(text)); err != nil {
		return fmt.Errorf("device: %w", err)
	}
	return nil
}

// ErrorName returns the GL name of an error code from GetError.
func ErrorName(code uint32) string {
	switch code {
	case NoError:
		return "NO_ERROR"
	case InvalidEnum:
		return "INVALID_ENUM"
	case InvalidValue:
		return "INVALID_VALUE"
	case InvalidOperation:
		return "INVALID_OPERATION"
	case OutOfMemory:
		return "OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "INVALID_FRAMEBUFFER_OPERATION"
	}
	return fmt.Sprintf("%#x", code)
}
