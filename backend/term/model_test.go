package term

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-theft-auto/table"
)

func newModel(t *testing.T) Model {
	t.Helper()
	inst, err := table.New(
		[]table.Column{
			{ID: "name", Header: "Name", Width: 150},
			{ID: "city", Header: "City", Width: 100},
		},
		[]map[string]any{{"name": "Carl", "city": "Los Santos"}},
		table.WithPlugins(table.FlexLayout(), table.ResizeColumns()),
	)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	return New(inst, 10)
}

func key(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func mouse(x, y int, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func apply(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModel_DragResizes(t *testing.T) {
	m := newModel(t)

	// column 14 maps to pixel 145, inside the name handle
	m = apply(t, m, mouse(14, 0, tea.MouseActionPress))
	if got := m.inst.State().ColumnResizing.IsResizingColumn; got != "name" {
		t.Fatalf("Expected name resizing, got %q", got)
	}
	if !strings.Contains(m.View(), "resizing Name") {
		t.Error("Expected status to show the drag")
	}

	m = apply(t, m,
		mouse(17, 0, tea.MouseActionMotion),
		mouse(17, 0, tea.MouseActionRelease),
	)
	if got := m.inst.Header("name").TotalWidth; got != 180 {
		t.Errorf("Expected width 180, got %v", got)
	}
	if m.inst.ActiveDrag() != nil {
		t.Error("Expected drag to be over")
	}

	// handle follows the new edge
	if box := m.Geometry().ResizerAt(175, 0); box == nil || box.Header.ID != "name" {
		t.Error("Expected geometry to be re-measured after the drag")
	}
}

func TestModel_PressOffHandle(t *testing.T) {
	m := newModel(t)
	m = apply(t, m, mouse(3, 0, tea.MouseActionPress))
	if m.inst.State().ColumnResizing.Resizing() {
		t.Error("Expected press away from a handle to be ignored")
	}
}

func TestModel_Keys(t *testing.T) {
	m := newModel(t)
	m = apply(t, m,
		mouse(14, 0, tea.MouseActionPress),
		mouse(19, 0, tea.MouseActionMotion),
		tea.KeyMsg{Type: tea.KeyEsc},
	)
	if m.inst.ActiveDrag() != nil {
		t.Error("Expected esc to cancel the drag")
	}
	if got := m.inst.Header("name").TotalWidth; got != 200 {
		t.Errorf("Expected width from the last move kept, got %v", got)
	}

	m = apply(t, m, key("r"))
	if got := m.inst.Header("name").TotalWidth; got != 150 {
		t.Errorf("Expected reset to 150, got %v", got)
	}

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Error("Expected quit command")
	}
}

func TestModel_View(t *testing.T) {
	m := newModel(t)
	view := m.View()

	for _, want := range []string{"Name", "City", "Carl", handleGlyph} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}
}
