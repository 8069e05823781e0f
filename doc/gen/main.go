// Command gen renders the demo table in a few resize states, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/table"
	"github.com/go-theft-auto/table/backend/opengl"
	"github.com/go-theft-auto/table/internal/demo"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single table screenshot to capture.
type screenshot struct {
	name   string      // filename without extension
	width  int         // viewport width
	height int         // viewport height
	theme  table.Theme // canvas theme

	// setup drives the instance into the state to capture.
	setup func(*table.Canvas, *table.Instance)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("table renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only update the renderer projection. The hidden window stays at
	// 800x600, larger than every screenshot.
	renderer.Resize(s.width, s.height)

	// Fresh instance per screenshot so widths don't leak between captures.
	inst, err := table.New(demo.Columns(), demo.Rows(8), demo.Plugins())
	if err != nil {
		return err
	}
	canvas := table.NewCanvas(renderer, table.WithTheme(s.theme), table.WithOrigin(12, 12))
	if s.setup != nil {
		s.setup(canvas, inst)
	}

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if _, err := canvas.Draw(inst); err != nil {
		return err
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// drag presses the resizer of id and moves the pointer by dx. With
// release set the drag is finished.
func drag(c *table.Canvas, inst *table.Instance, id string, dx float64, release bool) {
	g := c.Measure(inst)
	for _, box := range g.Headers {
		if box.Header.ID != id || box.Resizer.W == 0 {
			continue
		}
		x := box.Rect.Right()
		y := box.Rect.Y + box.Rect.H/2
		g.Press(&table.Event{Type: table.EventMouseDown, ClientX: x, ClientY: y})

		doc := inst.Document()
		doc.Dispatch(&table.Event{Type: table.EventMouseMove, ClientX: x + dx, ClientY: y})
		if release {
			doc.Dispatch(&table.Event{Type: table.EventMouseUp, ClientX: x + dx, ClientY: y})
		}
		return
	}
}

func buildScreenshots() []screenshot {
	return []screenshot{
		{name: "table", width: 620, height: 260, theme: table.DefaultTheme()},
		{name: "table_gta", width: 620, height: 260, theme: table.GTATheme()},
		{
			name: "resizing", width: 620, height: 260, theme: table.GTATheme(),
			setup: func(c *table.Canvas, inst *table.Instance) {
				drag(c, inst, "model", 60, false)
			},
		},
		{
			name: "resized_group", width: 720, height: 260, theme: table.GTATheme(),
			setup: func(c *table.Canvas, inst *table.Instance) {
				drag(c, inst, "vehicle", 100, true)
			},
		},
		{
			name: "max_width", width: 720, height: 260, theme: table.DefaultTheme(),
			setup: func(c *table.Canvas, inst *table.Instance) {
				drag(c, inst, "speed", 200, true)
			},
		},
	}
}
