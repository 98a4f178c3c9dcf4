// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shader does the text preprocessing of GLSL sources that
// the GL compiler does not: #include of other files, and setting
// compile time constants from Go.
package shader

import (
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"path"
	"slices"
	"strings"

	"cogentcore.org/core/base/stringsx"
)

// maxIncludeDepth limits nested includes, so include cycles terminate.
const maxIncludeDepth = 16

// IncludeFS processes #include "file" statements in
// the given code string, using the given file system
// and default path to locate the included files.
// Included files may include others. Each #include line is kept,
// commented out, above the included text. Files that cannot be
// found are logged and their #include lines left as is.
func IncludeFS(fsys fs.FS, dir, code string) string {
	return strings.Join(includeLines(fsys, dir, stringsx.SplitLines(code), 0), "\n")
}

func includeLines(fsys fs.FS, dir string, fl []string, depth int) []string {
	for li := len(fl) - 1; li >= 0; li-- {
		ln := strings.TrimSpace(fl[li])
		if !strings.HasPrefix(ln, `#include "`) {
			continue
		}
		fn := ln[10:]
		qi := strings.Index(fn, `"`)
		if qi < 0 {
			slog.Error("IncludeFS: malformed #include: no final quote", "line", ln)
			continue
		}
		if depth >= maxIncludeDepth {
			slog.Error("IncludeFS: includes nested too deeply", "file", fn[:qi], "depth", depth)
			continue
		}
		fname := fn[:qi]
		b, err := fs.ReadFile(fsys, fname)
		if err != nil {
			b, err = fs.ReadFile(fsys, path.Join(dir, fname))
			if err != nil {
				slog.Error("IncludeFS: could not find include", "file", fname, "path", dir)
				continue
			}
		}
		ol := includeLines(fsys, dir, stringsx.SplitLines(string(b)), depth+1)
		fl[li] = "// " + ln
		fl = slices.Insert(fl, li+1, ol...)
	}
	return fl
}

// SetConstants sets the values of compile time constants in code.
// A line declaring one of the names, "const <type> <name> = <value>;",
// gets the new value. Names that are not declared in the code are
// added as "#define <name> <value>" after the #version line.
// Values are formatted with fmt.Sprint.
func SetConstants(code string, consts map[string]any) string {
	if len(consts) == 0 {
		return code
	}
	fl := stringsx.SplitLines(code)
	found := make(map[string]bool, len(consts))
	version := -1
	for li, ln := range fl {
		tl := strings.TrimSpace(ln)
		if strings.HasPrefix(tl, "#version") && version < 0 {
			version = li
			continue
		}
		if !strings.HasPrefix(tl, "const ") {
			continue
		}
		lhs, _, ok := strings.Cut(tl, "=")
		if !ok {
			continue
		}
		words := strings.Fields(lhs)
		if len(words) != 3 {
			continue
		}
		name := words[2]
		v, has := consts[name]
		if !has {
			continue
		}
		indent := ln[:len(ln)-len(strings.TrimLeft(ln, " \t"))]
		fl[li] = fmt.Sprintf("%sconst %s %s = %v;", indent, words[1], name, v)
		found[name] = true
	}
	var defs []string
	for _, name := range slices.Sorted(maps.Keys(consts)) {
		if !found[name] {
			defs = append(defs, fmt.Sprintf("#define %s %v", name, consts[name]))
		}
	}
	fl = slices.Insert(fl, version+1, defs...)
	return strings.Join(fl, "\n")
}

// Preprocess runs [IncludeFS] and then [SetConstants] on code.
func Preprocess(fsys fs.FS, dir, code string, consts map[string]any) string {
	return SetConstants(IncludeFS(fsys, dir, code), consts)
}

// ReadFS reads the named shader file from fsys and preprocesses it,
// resolving includes relative to the directory of the file.
func ReadFS(fsys fs.FS, name string, consts map[string]any) (string, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", err
	}
	return Preprocess(fsys, path.Dir(name), string(b), consts), nil
}
