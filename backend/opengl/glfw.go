package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/table"
)

// GLFWEventSource turns GLFW window callbacks into table document events.
// Left button presses are hit-tested against the geometry of the last
// paint so they reach the resizer under the cursor.
type GLFWEventSource struct {
	window *glfw.Window
	inst   *table.Instance
	geom   table.Geometry

	cursorX, cursorY float64
}

// NewGLFWEventSource installs callbacks on window that drive inst.
func NewGLFWEventSource(window *glfw.Window, inst *table.Instance) *GLFWEventSource {
	s := &GLFWEventSource{
		window: window,
		inst:   inst,
	}

	window.SetKeyCallback(s.keyCallback)
	window.SetMouseButtonCallback(s.mouseButtonCallback)
	window.SetCursorPosCallback(s.cursorPosCallback)
	window.SetCursorEnterCallback(s.cursorEnterCallback)

	return s
}

// SetGeometry records where the table was last painted.
// Call it after every Canvas.Draw.
func (s *GLFWEventSource) SetGeometry(g table.Geometry) {
	s.geom = g
}

// UpdateCursor picks the cursor shape for the current position.
// Call it once per frame.
func (s *GLFWEventSource) UpdateCursor(resize, arrow *glfw.Cursor) {
	if s.inst.ActiveDrag() != nil || s.geom.ResizerAt(s.cursorX, s.cursorY) != nil {
		s.window.SetCursor(resize)
		return
	}
	s.window.SetCursor(arrow)
}

func (s *GLFWEventSource) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		s.inst.CancelDrag()
	case glfw.KeyR:
		s.inst.ResetResizing()
	}
}

func (s *GLFWEventSource) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}

	switch action {
	case glfw.Press:
		s.geom.Press(s.event(table.EventMouseDown))
	case glfw.Release:
		s.inst.Document().Dispatch(s.event(table.EventMouseUp))
	}
}

func (s *GLFWEventSource) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	s.cursorX, s.cursorY = xpos, ypos
	s.inst.Document().Dispatch(s.event(table.EventMouseMove))
}

func (s *GLFWEventSource) cursorEnterCallback(w *glfw.Window, entered bool) {
	if !entered {
		s.inst.Document().Dispatch(s.event(table.EventMouseLeave))
	}
}

func (s *GLFWEventSource) event(t table.EventType) *table.Event {
	return &table.Event{
		Type:       t,
		ClientX:    s.cursorX,
		ClientY:    s.cursorY,
		Cancelable: true,
	}
}
