// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command starmap draws a rotating field of stars, as a demonstration
// of buffers, uniform blocks and render states on OpenGL.
package main

import (
	"embed"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/math32"
	"cogentcore.org/gl/device"
	"cogentcore.org/gl/device/gldevice"
	"cogentcore.org/gl/state"
	"github.com/go-gl/glfw/v3.3/glfw"
)

//go:embed shaders/*.vert shaders/*.frag shaders/*.glsl presets.toml
var content embed.FS

func init() {
	// GL calls must all come from the main thread.
	runtime.LockOSThread()
}

// Config is the configuration for starmap.
type Config struct {

	// Width is the initial window width.
	Width int `default:"1024"`

	// Height is the initial window height.
	Height int `default:"768"`

	// Stars is the number of stars.
	Stars int `default:"20000"`

	// Markers is the number of stars that are marked with a square.
	Markers int `default:"64"`

	// Seed seeds the random star positions and colors.
	Seed uint64 `default:"1"`

	// Presets is a TOML file of render states with "stars" and
	// "markers" tables, replacing the built in ones.
	Presets string

	// Frames stops after this many frames, if > 0.
	Frames int
}

func main() { //types:skip
	opts := cli.DefaultOptions("starmap", "Starmap draws a rotating field of stars with OpenGL.")
	cli.Run(opts, &Config{}, Run)
}

// Run opens the window and draws until it is closed.
func Run(c *Config) error { //cli:cmd -root
	if err := glfw.Init(); err != nil {
		return errors.Log(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 5)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	win, err := glfw.CreateWindow(c.Width, c.Height, "Starmap", nil, nil)
	if err != nil {
		return errors.Log(err)
	}
	defer win.Destroy()
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	dev, err := gldevice.Init()
	if err != nil {
		return err
	}
	cx := device.NewContext("starmap", dev)
	cx.MakeCurrent()
	defer device.ClearCurrent()

	cur := state.Start(dev)
	if err := cx.ErrCheck("state.Start"); err != nil {
		return errors.Log(err)
	}
	presets, err := loadPresets(c.Presets)
	if err != nil {
		return err
	}

	sc, err := newScene(cx, dev, c)
	if err != nil {
		return err
	}
	defer sc.dispose()

	size := image.Point{c.Width, c.Height}
	win.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		size = image.Point{width, height}
	})
	fbw, fbh := win.GetFramebufferSize()
	size = image.Point{fbw, fbh}

	start := time.Now()
	frames := 0
	for !win.ShouldClose() {
		if size.X > 0 && size.Y > 0 {
			if err := sc.render(cur, presets, size, float32(time.Since(start).Seconds())); err != nil {
				return err
			}
		}
		win.SwapBuffers()
		glfw.PollEvents()
		frames++
		if c.Frames > 0 && frames >= c.Frames {
			break
		}
	}
	dur := time.Since(start).Seconds()
	slog.Info("starmap: done", "frames", frames, "fps", fmt.Sprintf("%.1f", float64(frames)/dur))
	return nil
}

// loadPresets loads the render states from the named file,
// or the built in presets if name is empty.
func loadPresets(name string) (map[string]*state.State, error) {
	var fsys fs.FS = content
	file := "presets.toml"
	if name != "" {
		fsys = os.DirFS(filepath.Dir(name))
		file = filepath.Base(name)
	}
	presets, err := state.OpenPresets(fsys, file)
	if err != nil {
		return nil, err
	}
	for _, nm := range []string{"stars", "markers"} {
		if presets[nm] == nil {
			return nil, errors.Log(fmt.Errorf("starmap: presets %s has no %q table", file, nm))
		}
	}
	return presets, nil
}

// cameraView returns the view matrix for a camera at pos looking at target.
func cameraView(pos, target, up math32.Vector3) *math32.Matrix4 {
	var lookq math32.Quat
	lookq.SetFromRotationMatrix(math32.NewLookAt(pos, target, up))
	var cview math32.Matrix4
	cview.SetTransform(pos, lookq, math32.Vec3(1, 1, 1))
	view, _ := cview.Inverse()
	return view
}
