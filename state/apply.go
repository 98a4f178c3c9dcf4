// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"log/slog"

	"cogentcore.org/gl/device"
)

// setCap enables or disables a capability.
func setCap(dev device.Device, c device.Capability, on bool) {
	if on {
		dev.Enable(c)
	} else {
		dev.Disable(c)
	}
}

// applyBool updates a bool capability field if it differs.
func applyBool(dev device.Device, c device.Capability, cur *bool, want bool) {
	if *cur == want {
		return
	}
	setCap(dev, c, want)
	*cur = want
}

// applyOpt updates an optional field if want is set and differs,
// calling set with the new value.
func applyOpt[T comparable](cur *Opt[T], want Opt[T], set func(v T)) {
	v, ok := want.Get()
	if !ok || *cur == want {
		return
	}
	set(v)
	*cur = want
}

// clampClip clamps a clip distance count to [0, MaxClipDistances].
func clampClip(n int) int {
	if n < 0 || n > device.MaxClipDistances {
		slog.Warn("state: clip distance count out of range, clamping", "count", n, "max", device.MaxClipDistances)
		return min(max(n, 0), device.MaxClipDistances)
	}
	return n
}

// ApplyState makes the device state match desired, calling dev only for
// the fields that differ from st, and updates st to match. After it
// returns, st is the current state of the device. Unset optional fields
// of desired are skipped, leaving the matching fields of st unchanged.
// The blend function and equation are only compared when desired has
// blending on, so they stay as they were while blending is off.
func (st *State) ApplyState(dev device.Device, desired *State) {
	if desired.PrimitiveRestart != st.PrimitiveRestart {
		if idx, ok := desired.PrimitiveRestart.Get(); ok {
			if !st.PrimitiveRestart.Valid() {
				dev.Enable(device.PrimitiveRestart)
			}
			dev.PrimitiveRestartIndex(idx)
		} else {
			dev.Disable(device.PrimitiveRestart)
		}
		st.PrimitiveRestart = desired.PrimitiveRestart
	}

	if desired.ClipDistanceEnable != st.ClipDistanceEnable {
		n := clampClip(desired.ClipDistanceEnable)
		cur := clampClip(st.ClipDistanceEnable)
		for i := cur; i < n; i++ {
			dev.Enable(device.ClipDistance(i))
		}
		for i := cur - 1; i >= n; i-- {
			dev.Disable(device.ClipDistance(i))
		}
		st.ClipDistanceEnable = n
	}

	applyBool(dev, device.DepthTest, &st.DepthTest, desired.DepthTest)
	if desired.DepthFunc != st.DepthFunc {
		dev.DepthFunc(desired.DepthFunc)
		st.DepthFunc = desired.DepthFunc
	}
	if desired.WriteDepthBuffer != st.WriteDepthBuffer {
		dev.DepthMask(desired.WriteDepthBuffer)
		st.WriteDepthBuffer = desired.WriteDepthBuffer
	}
	applyBool(dev, device.DepthClamp, &st.DepthClamp, desired.DepthClamp)

	applyBool(dev, device.Blend, &st.BlendEnable, desired.BlendEnable)
	if desired.BlendEnable {
		if desired.BlendSourceRGB != st.BlendSourceRGB || desired.BlendDestRGB != st.BlendDestRGB ||
			desired.BlendSourceA != st.BlendSourceA || desired.BlendDestA != st.BlendDestA {
			dev.BlendFuncSeparate(desired.BlendSourceRGB, desired.BlendDestRGB, desired.BlendSourceA, desired.BlendDestA)
			st.BlendSourceRGB = desired.BlendSourceRGB
			st.BlendDestRGB = desired.BlendDestRGB
			st.BlendSourceA = desired.BlendSourceA
			st.BlendDestA = desired.BlendDestA
		}
		if desired.BlendEquationRGB != st.BlendEquationRGB || desired.BlendEquationA != st.BlendEquationA {
			dev.BlendEquationSeparate(desired.BlendEquationRGB, desired.BlendEquationA)
			st.BlendEquationRGB = desired.BlendEquationRGB
			st.BlendEquationA = desired.BlendEquationA
		}
	}

	if cm := desired.ColorMask; cm != st.ColorMask {
		dev.ColorMask(cm.Has(Red), cm.Has(Green), cm.Has(Blue), cm.Has(Alpha))
		st.ColorMask = cm
	}
	applyBool(dev, device.RasterizerDiscard, &st.Discard, desired.Discard)

	applyOpt(&st.PatchSize, desired.PatchSize, dev.PatchVertices)
	applyOpt(&st.PointSize, desired.PointSize, func(size float32) {
		if size > 0 {
			dev.Disable(device.ProgramPointSize)
			dev.PointSize(size)
		} else {
			dev.Enable(device.ProgramPointSize)
		}
	})
	applyOpt(&st.PointSprite, desired.PointSprite, func(on bool) { setCap(dev, device.PointSprite, on) })
	applyOpt(&st.PointSmooth, desired.PointSmooth, func(on bool) { setCap(dev, device.PointSmooth, on) })
	applyOpt(&st.LineWidth, desired.LineWidth, dev.LineWidth)
	applyOpt(&st.LineSmooth, desired.LineSmooth, func(on bool) { setCap(dev, device.LineSmooth, on) })
	applyOpt(&st.PolygonMode, desired.PolygonMode, dev.PolygonMode)
	applyOpt(&st.PolygonSmooth, desired.PolygonSmooth, func(on bool) { setCap(dev, device.PolygonSmooth, on) })
	applyOpt(&st.CullFace, desired.CullFace, func(on bool) { setCap(dev, device.CullFace, on) })
	applyOpt(&st.FrontFace, desired.FrontFace, dev.FrontFace)
}

// inverse returns a State that differs from st in every field,
// with every optional field set.
func inverse(st *State) *State {
	inv := &State{
		ClipDistanceEnable: device.MaxClipDistances,
		DepthTest:          !st.DepthTest,
		DepthFunc:          device.Always,
		WriteDepthBuffer:   !st.WriteDepthBuffer,
		DepthClamp:         !st.DepthClamp,
		BlendEnable:        !st.BlendEnable,
		BlendSourceRGB:     device.Zero,
		BlendDestRGB:       device.Zero,
		BlendSourceA:       device.Zero,
		BlendDestA:         device.Zero,
		BlendEquationRGB:   device.Max,
		BlendEquationA:     device.Max,
		ColorMask:          ^st.ColorMask & AllColor,
		Discard:            !st.Discard,
	}
	if st.DepthFunc == device.Always {
		inv.DepthFunc = device.Never
	}
	if st.ClipDistanceEnable == device.MaxClipDistances {
		inv.ClipDistanceEnable = 0
	}
	if st.PrimitiveRestart.Valid() {
		inv.PrimitiveRestart = None[uint32]()
	} else {
		inv.PrimitiveRestart = Some(^uint32(0) - 1)
	}
	if st.BlendEquationRGB == device.Max || st.BlendEquationA == device.Max {
		inv.BlendEquationRGB, inv.BlendEquationA = device.Min, device.Min
	}
	inv.PatchSize = Some(st.PatchSize.Or(1) + 1)
	if st.PointSize.Or(1) > 0 {
		inv.PointSize = Some[float32](0)
	} else {
		inv.PointSize = Some[float32](1)
	}
	inv.PointSprite = Some(!st.PointSprite.Or(false))
	inv.PointSmooth = Some(!st.PointSmooth.Or(false))
	inv.LineWidth = Some(st.LineWidth.Or(1) + 1)
	inv.LineSmooth = Some(!st.LineSmooth.Or(false))
	inv.PolygonMode = Some(device.PolygonLine)
	if st.PolygonMode.Or(device.PolygonFill) == device.PolygonLine {
		inv.PolygonMode = Some(device.PolygonFill)
	}
	inv.PolygonSmooth = Some(!st.PolygonSmooth.Or(false))
	inv.CullFace = Some(!st.CullFace.Or(false))
	inv.FrontFace = Some(device.CW)
	if st.FrontFace.Or(device.CCW) == device.CW {
		inv.FrontFace = Some(device.CCW)
	}
	return inv
}

// Start returns the default State ([New]) after applying it to the
// device from a State that differs in every field, so that every
// field is explicitly set on the device rather than assumed from its
// initial values. Call it once after creating a context.
func Start(dev device.Device) *State {
	def := New()
	cur := inverse(def)
	cur.ApplyState(dev, def)
	slog.Debug("state: applied baseline render state")
	return cur
}
