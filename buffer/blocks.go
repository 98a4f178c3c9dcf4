// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"cogentcore.org/gl/device"
	"cogentcore.org/gl/layout"
)

// Block is a Buffer bound to an indexed binding point of a target,
// which shaders refer to with layout(binding = N).
type Block struct {
	Buffer

	// Target is the indexed binding target of the block.
	Target device.Target

	// BindingIndex is the binding point index.
	BindingIndex uint32
}

func newBlock(cx *device.Context, target device.Target, std layout.Standards, index uint32, size int) (*Block, error) {
	b, err := New(cx, std)
	if err != nil {
		return nil, err
	}
	bl := &Block{Buffer: *b, Target: target, BindingIndex: index}
	if size > 0 {
		if err := bl.AllocateBytes(size, device.DynamicDraw); err != nil {
			bl.Dispose()
			return nil, err
		}
	}
	return bl, nil
}

// Bind binds the block to its binding point.
func (bl *Block) Bind() error {
	return bl.BindBase(bl.Target, bl.BindingIndex)
}

// NewUniformBlock returns a std140 uniform block with size bytes
// (0 for none yet) at the given binding index.
func NewUniformBlock(cx *device.Context, index uint32, size int) (*Block, error) {
	return newBlock(cx, device.UniformBuffer, layout.Std140, index, size)
}

// NewStorageBlock returns a std430 shader storage block with size bytes
// (0 for none yet) at the given binding index.
func NewStorageBlock(cx *device.Context, index uint32, size int) (*Block, error) {
	return newBlock(cx, device.ShaderStorageBuffer, layout.Std430, index, size)
}

// NewAtomicBlock returns an atomic counter block with size bytes
// (0 for none yet) at the given binding index. Atomic counters are
// 4 byte uints, so the layout standard does not matter.
func NewAtomicBlock(cx *device.Context, index uint32, size int) (*Block, error) {
	return newBlock(cx, device.AtomicCounterBuffer, layout.Std430, index, size)
}
