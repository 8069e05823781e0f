package table_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/table"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
	lastVtx     int
	err         error
	width       int
	height      int
}

func (m *mockRenderer) Render(dl *table.DrawList) error {
	m.renderCalls++
	m.lastVtx = len(dl.VtxBuffer)
	return m.err
}

func (m *mockRenderer) Resize(width, height int) {
	m.width, m.height = width, height
}

func newCanvasTable(t *testing.T) *table.Instance {
	t.Helper()
	inst, err := table.New(
		[]table.Column{
			{ID: "name", Header: "Name", Width: 150},
			{ID: "address", Header: "Address", Columns: []table.Column{
				{ID: "street", Header: "Street", Width: 100},
				{ID: "city", Header: "City", Width: 200},
			}},
			{ID: "price", Header: "Price", Width: 80, DisableResizing: true},
		},
		[]map[string]any{{"name": "Carl"}, {"name": "Sweet"}},
		table.WithPlugins(table.FlexLayout(), table.ResizeColumns()),
	)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	return inst
}

func TestMeasure(t *testing.T) {
	inst := newCanvasTable(t)
	g := table.Measure(inst, 0, 0, table.DefaultTheme())

	if len(g.Headers) != 5 {
		t.Fatalf("Expected 5 header boxes, got %d", len(g.Headers))
	}
	if len(g.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(g.Rows))
	}

	name := g.Headers[0]
	if name.Rect != (table.Rect{X: 0, Y: 0, W: 150, H: 24}) {
		t.Errorf("Unexpected name rect %+v", name.Rect)
	}
	if name.Resizer != (table.Rect{X: 145, Y: 0, W: 10, H: 24}) {
		t.Errorf("Expected resizer centered on the right edge, got %+v", name.Resizer)
	}

	for _, b := range g.Headers {
		if b.Header.ID == "price" && b.Resizer.W != 0 {
			t.Errorf("Expected no resizer for price, got %+v", b.Resizer)
		}
	}

	if g.Rows[0].Y != 48 || g.Rows[1].Y != 68 {
		t.Errorf("Expected rows below two header rows, got %v and %v", g.Rows[0].Y, g.Rows[1].Y)
	}
	if g.Bounds.W != 530 || g.Bounds.H != 88 {
		t.Errorf("Expected bounds 530x88, got %vx%v", g.Bounds.W, g.Bounds.H)
	}
}

func TestResizerAt(t *testing.T) {
	inst := newCanvasTable(t)
	g := table.Measure(inst, 0, 0, table.DefaultTheme())

	tests := []struct {
		x, y float64
		want string
	}{
		{150, 5, "name"},
		{145, 5, "name"},
		{154.9, 5, "name"},
		{155, 5, ""},
		{250, 30, "street"},
		{450, 30, "city"},
		{450, 5, "address"},
		{530, 5, ""}, // price is fixed
		{75, 5, ""},
	}
	for _, tt := range tests {
		box := g.ResizerAt(tt.x, tt.y)
		got := ""
		if box != nil {
			got = box.Header.ID
		}
		if got != tt.want {
			t.Errorf("ResizerAt(%v, %v): expected %q, got %q", tt.x, tt.y, tt.want, got)
		}
	}
}

func TestPressStartsDrag(t *testing.T) {
	inst := newCanvasTable(t)
	g := table.Measure(inst, 0, 0, table.DefaultTheme())

	ev := &table.Event{Type: table.EventMouseDown, ClientX: 150, ClientY: 5}
	if !g.Press(ev) {
		t.Fatal("Expected press on a resizer to be handled")
	}
	if got := inst.State().ColumnResizing.IsResizingColumn; got != "name" {
		t.Errorf("Expected name resizing, got %q", got)
	}
	if ev.Target != g.Headers[0].Resizer {
		t.Errorf("Expected event target set to the resizer, got %+v", ev.Target)
	}

	inst.Document().Dispatch(&table.Event{Type: table.EventMouseUp, ClientX: 170})
	if got := inst.Header("name").TotalWidth; got != 170 {
		t.Errorf("Expected width 170, got %v", got)
	}

	miss := &table.Event{Type: table.EventMouseDown, ClientX: 75, ClientY: 5}
	if g.Press(miss) {
		t.Error("Expected press away from resizers to be ignored")
	}
}

func TestPressTouch(t *testing.T) {
	inst := newCanvasTable(t)
	g := table.Measure(inst, 0, 0, table.DefaultTheme())

	ev := &table.Event{Type: table.EventTouchStart, Touches: []table.Touch{{ClientX: 250, ClientY: 30}}}
	if !g.Press(ev) {
		t.Fatal("Expected touch on a resizer to be handled")
	}
	if got := inst.State().ColumnResizing.IsResizingColumn; got != "street" {
		t.Errorf("Expected street resizing, got %q", got)
	}

	if g.Press(&table.Event{Type: table.EventTouchStart}) {
		t.Error("Expected touch without points to be ignored")
	}
}

func TestCanvasDraw(t *testing.T) {
	inst := newCanvasTable(t)
	renderer := &mockRenderer{}
	canvas := table.NewCanvas(renderer, table.WithTheme(table.GTATheme()), table.WithOrigin(10, 20))

	g, err := canvas.Draw(inst)
	if err != nil {
		t.Fatalf("Draw() returned error: %v", err)
	}
	if renderer.renderCalls != 1 {
		t.Errorf("Expected 1 render call, got %d", renderer.renderCalls)
	}
	if renderer.lastVtx == 0 {
		t.Error("Expected vertices in the draw list")
	}
	if g.Bounds.X != 10 || g.Bounds.Y != 20 {
		t.Errorf("Expected origin 10,20, got %v,%v", g.Bounds.X, g.Bounds.Y)
	}

	canvas.Resize(800, 600)
	if renderer.width != 800 || renderer.height != 600 {
		t.Errorf("Expected resize forwarded, got %dx%d", renderer.width, renderer.height)
	}
}

func TestCanvasDrawPreview(t *testing.T) {
	inst := newCanvasTable(t)
	renderer := &mockRenderer{}
	canvas := table.NewCanvas(renderer)

	g, _ := canvas.Draw(inst)
	idle := renderer.lastVtx

	g.Press(&table.Event{Type: table.EventMouseDown, ClientX: 150, ClientY: 5})
	if _, err := canvas.Draw(inst); err != nil {
		t.Fatalf("Draw() returned error: %v", err)
	}
	if renderer.lastVtx != idle+4 {
		t.Errorf("Expected one extra quad for the preview bar, got %d vertices (idle %d)", renderer.lastVtx, idle)
	}
}

func TestCanvasDrawError(t *testing.T) {
	inst := newCanvasTable(t)
	want := errors.New("lost context")
	canvas := table.NewCanvas(&mockRenderer{err: want})

	if _, err := canvas.Draw(inst); !errors.Is(err, want) {
		t.Errorf("Expected renderer error, got %v", err)
	}
}
