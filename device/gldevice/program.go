// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldevice

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/gl/v4.6-core/gl"
)

// ShaderTypes are the shader stages of a [Program].
type ShaderTypes int32

const (
	VertexShader ShaderTypes = iota
	FragmentShader
	GeometryShader
	TessControlShader
	TessEvalShader
	ComputeShader
)

var glShaders = map[ShaderTypes]uint32{
	VertexShader:      gl.VERTEX_SHADER,
	FragmentShader:    gl.FRAGMENT_SHADER,
	GeometryShader:    gl.GEOMETRY_SHADER,
	TessControlShader: gl.TESS_CONTROL_SHADER,
	TessEvalShader:    gl.TESS_EVALUATION_SHADER,
	ComputeShader:     gl.COMPUTE_SHADER,
}

// Program is a linked GLSL shader program.
type Program struct {
	Name   string
	Handle uint32
}

// Shader is the source for one stage of a program.
// Source is expected to already be preprocessed (see the shader package).
type Shader struct {
	Type   ShaderTypes
	Source string
}

// CompileProgram compiles and links the given shader stages.
func (dv *Device) CompileProgram(name string, shaders ...Shader) (*Program, error) {
	handle := gl.CreateProgram()
	var compiled []uint32
	defer func() {
		for _, sh := range compiled {
			gl.DetachShader(handle, sh)
			gl.DeleteShader(sh)
		}
	}()
	for _, sh := range shaders {
		h, err := compileShader(sh)
		if err != nil {
			gl.DeleteProgram(handle)
			return nil, errors.Log(fmt.Errorf("gldevice Program %s: %w", name, err))
		}
		gl.AttachShader(handle, h)
		compiled = append(compiled, h)
	}
	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var lgLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &lgLength)
		lg := strings.Repeat("\x00", int(lgLength+1))
		gl.GetProgramInfoLog(handle, lgLength, nil, gl.Str(lg))
		gl.DeleteProgram(handle)
		return nil, errors.Log(fmt.Errorf("gldevice Program %s: failed to link program: %v", name, strings.TrimRight(lg, "\x00")))
	}
	return &Program{Name: name, Handle: handle}, nil
}

func compileShader(sh Shader) (uint32, error) {
	handle := gl.CreateShader(glShaders[sh.Type])
	src := sh.Source
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	csources, free := gl.Strs(src)
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(msg))
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("failed to compile:\n%v\nerror: %v", sh.Source, strings.TrimRight(msg, "\x00"))
	}
	return handle, nil
}

// Use makes this the active program.
func (pr *Program) Use() {
	gl.UseProgram(pr.Handle)
}

// Delete deletes the program.
func (pr *Program) Delete() {
	if pr.Handle == 0 {
		return
	}
	gl.DeleteProgram(pr.Handle)
	pr.Handle = 0
}
