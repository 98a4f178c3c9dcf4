// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"fmt"
	"io"
	"io/fs"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gl/device"
	"github.com/pelletier/go-toml/v2"
)

// preset is the TOML form of a State. Every field is a pointer so that
// only the fields listed in the file override the defaults.
type preset struct {
	// PrimitiveRestart is the restart index, or negative to disable.
	PrimitiveRestart   *int64
	ClipDistanceEnable *int

	DepthTest        *bool
	DepthFunc        *device.DepthFuncs
	WriteDepthBuffer *bool
	DepthClamp       *bool

	BlendEnable      *bool
	BlendSourceRGB   *device.BlendFactors
	BlendDestRGB     *device.BlendFactors
	BlendSourceA     *device.BlendFactors
	BlendDestA       *device.BlendFactors
	BlendEquationRGB *device.BlendEquations
	BlendEquationA   *device.BlendEquations

	ColorMask *ColorMasks
	Discard   *bool

	PatchSize     *int
	PointSize     *float32
	PointSprite   *bool
	PointSmooth   *bool
	LineWidth     *float32
	LineSmooth    *bool
	PolygonMode   *device.PolygonModes
	PolygonSmooth *bool
	CullFace      *bool
	FrontFace     *device.FrontFaces
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setOptIf[T comparable](dst *Opt[T], src *T) {
	if src != nil {
		dst.Set(*src)
	}
}

// state returns the default State with the preset fields applied.
func (ps *preset) state(name string) (*State, error) {
	st := New()
	if ps.PrimitiveRestart != nil {
		switch idx := *ps.PrimitiveRestart; {
		case idx < 0:
			st.PrimitiveRestart.Clear()
		case idx > int64(^uint32(0)):
			return nil, fmt.Errorf("state: preset %q: PrimitiveRestart %d out of range", name, idx)
		default:
			st.PrimitiveRestart.Set(uint32(idx))
		}
	}
	setIf(&st.ClipDistanceEnable, ps.ClipDistanceEnable)
	if st.ClipDistanceEnable < 0 || st.ClipDistanceEnable > device.MaxClipDistances {
		return nil, fmt.Errorf("state: preset %q: ClipDistanceEnable %d must be in [0, %d]", name, st.ClipDistanceEnable, device.MaxClipDistances)
	}
	setIf(&st.DepthTest, ps.DepthTest)
	setIf(&st.DepthFunc, ps.DepthFunc)
	setIf(&st.WriteDepthBuffer, ps.WriteDepthBuffer)
	setIf(&st.DepthClamp, ps.DepthClamp)
	setIf(&st.BlendEnable, ps.BlendEnable)
	setIf(&st.BlendSourceRGB, ps.BlendSourceRGB)
	setIf(&st.BlendDestRGB, ps.BlendDestRGB)
	setIf(&st.BlendSourceA, ps.BlendSourceA)
	setIf(&st.BlendDestA, ps.BlendDestA)
	setIf(&st.BlendEquationRGB, ps.BlendEquationRGB)
	setIf(&st.BlendEquationA, ps.BlendEquationA)
	setIf(&st.ColorMask, ps.ColorMask)
	setIf(&st.Discard, ps.Discard)
	setOptIf(&st.PatchSize, ps.PatchSize)
	setOptIf(&st.PointSize, ps.PointSize)
	setOptIf(&st.PointSprite, ps.PointSprite)
	setOptIf(&st.PointSmooth, ps.PointSmooth)
	setOptIf(&st.LineWidth, ps.LineWidth)
	setOptIf(&st.LineSmooth, ps.LineSmooth)
	setOptIf(&st.PolygonMode, ps.PolygonMode)
	setOptIf(&st.PolygonSmooth, ps.PolygonSmooth)
	setOptIf(&st.CullFace, ps.CullFace)
	setOptIf(&st.FrontFace, ps.FrontFace)
	return st, nil
}

// LoadPresets reads named render states from TOML, one table per
// state. Each starts from [New], with the fields given in its table
// overriding the defaults; enum values use their Go names, e.g.:
//
//	[additive]
//	DepthTest = false
//	BlendDestRGB = "One"
//	ColorMask = "RGB"
//	PointSize = 0.0
//
// Unknown fields are an error.
func LoadPresets(r io.Reader) (map[string]*State, error) {
	var specs map[string]*preset
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&specs); err != nil {
		return nil, errors.Log(fmt.Errorf("state: loading presets: %w", err))
	}
	states := make(map[string]*State, len(specs))
	var errs []error
	for name, ps := range specs {
		if ps == nil {
			ps = &preset{}
		}
		st, err := ps.state(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		states[name] = st
	}
	if len(errs) > 0 {
		return nil, errors.Log(errors.Join(errs...))
	}
	return states, nil
}

// OpenPresets reads presets from the named file in fsys (see [LoadPresets]).
func OpenPresets(fsys fs.FS, name string) (map[string]*State, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer f.Close()
	return LoadPresets(f)
}
