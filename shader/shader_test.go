// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFS = fstest.MapFS{
	"common.glsl":   {Data: []byte("float sq(float x) { return x*x; }")},
	"lib/util.glsl": {Data: []byte("#include \"common.glsl\"\nvec2 f();")},
	"loop.glsl":     {Data: []byte("#include \"loop.glsl\"")},
	"lib/main.vert": {Data: []byte("#version 450\n#include \"util.glsl\"\nconst int N = 1;\nvoid main() {}")},
}

func TestIncludeFS(t *testing.T) {
	code := "#version 450\n#include \"util.glsl\"\nvoid main() {}"
	got := IncludeFS(testFS, "lib", code)
	assert.Equal(t, strings.Join([]string{
		"#version 450",
		"// #include \"util.glsl\"",
		"// #include \"common.glsl\"",
		"float sq(float x) { return x*x; }",
		"vec2 f();",
		"void main() {}",
	}, "\n"), got)

	code = "#include \"missing.glsl\"\n#include \"bad.glsl\nvoid main() {}"
	assert.Equal(t, code, IncludeFS(testFS, "", code))

	got = IncludeFS(testFS, "", "#include \"loop.glsl\"")
	assert.Equal(t, maxIncludeDepth, strings.Count(got, "// #include"), "include cycles stop")
}

func TestSetConstants(t *testing.T) {
	code := "#version 450\nconst int N = 4;\n  const float S = 1.0;\nconst vec3 C = vec3(0);\nvoid main() {}"
	got := SetConstants(code, map[string]any{"N": 8, "S": 2.5, "M": "vec3(1)", "A": true})
	assert.Equal(t, strings.Join([]string{
		"#version 450",
		"#define A true",
		"#define M vec3(1)",
		"const int N = 8;",
		"  const float S = 2.5;",
		"const vec3 C = vec3(0);",
		"void main() {}",
	}, "\n"), got)

	assert.Equal(t, "#define N 2\nvoid main() {}", SetConstants("void main() {}", map[string]any{"N": 2}))
	assert.Equal(t, code, SetConstants(code, nil))
}

func TestReadFS(t *testing.T) {
	got, err := ReadFS(testFS, "lib/main.vert", map[string]any{"N": 32})
	require.NoError(t, err)
	assert.Contains(t, got, "float sq(float x)")
	assert.Contains(t, got, "const int N = 32;")
	assert.True(t, strings.HasPrefix(got, "#version 450\n"))

	_, err = ReadFS(testFS, "nope.vert", nil)
	assert.Error(t, err)
}
