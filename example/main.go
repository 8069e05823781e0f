// Example shows a resizable table in a GLFW window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Drag the bar at a header's right edge to resize it. Escape cancels a
// drag, R resets all widths.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-theft-auto/table"
	"github.com/go-theft-auto/table/backend/opengl"
	"github.com/go-theft-auto/table/internal/config"
	"github.com/go-theft-auto/table/internal/demo"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "example",
		Short:         "Resizable table in an OpenGL window",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Init(v, cfgFile); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file")
	if err := config.BindFlags(cmd, v); err != nil {
		panic(err)
	}
	return cmd
}

func run(cfg *config.Config) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return fmt.Errorf("table renderer: %w", err)
	}
	defer renderer.Delete()

	logger := cfg.Logger(os.Stderr)
	opts := append(cfg.Options(logger), demo.Plugins())
	inst, err := table.New(demo.Columns(), demo.Rows(20), opts...)
	if err != nil {
		return fmt.Errorf("new table: %w", err)
	}

	canvas := table.NewCanvas(renderer, table.WithTheme(cfg.Theme()), table.WithOrigin(16, 16))
	events := opengl.NewGLFWEventSource(window, inst)

	resizeCursor := glfw.CreateStandardCursor(glfw.HResizeCursor)
	arrowCursor := glfw.CreateStandardCursor(glfw.ArrowCursor)
	defer resizeCursor.Destroy()
	defer arrowCursor.Destroy()

	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		canvas.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		geom, err := canvas.Draw(inst)
		if err != nil {
			return fmt.Errorf("table render: %w", err)
		}
		events.SetGeometry(geom)
		events.UpdateCursor(resizeCursor, arrowCursor)

		window.SwapBuffers()
	}

	return nil
}
