package table

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestNew_PluginOrder(t *testing.T) {
	_, err := New(nil, nil, WithPlugins(ResizeColumns(), FlexLayout()))
	if !errors.Is(err, ErrPluginOrder) {
		t.Fatalf("Expected ErrPluginOrder, got %v", err)
	}

	_, err = New(nil, nil, WithPlugins(ResizeColumns()))
	if !errors.Is(err, ErrPluginOrder) {
		t.Fatalf("Expected ErrPluginOrder for missing dependency, got %v", err)
	}
	if !strings.Contains(err.Error(), "useFlexLayout") {
		t.Errorf("Expected error to name the dependency, got %q", err)
	}

	if _, err := New(nil, nil, WithPlugins(FlexLayout(), ResizeColumns())); err != nil {
		t.Errorf("Expected valid order to succeed, got %v", err)
	}
}

func TestNew_ColumnErrors(t *testing.T) {
	_, err := New([]Column{{ID: "a"}, {ID: "a"}}, nil)
	if !errors.Is(err, ErrDuplicateColumn) {
		t.Errorf("Expected ErrDuplicateColumn, got %v", err)
	}

	_, err = New([]Column{{Header: "No ID"}}, nil)
	if !errors.Is(err, ErrEmptyColumnID) {
		t.Errorf("Expected ErrEmptyColumnID, got %v", err)
	}
}

func TestNew_DefaultColumn(t *testing.T) {
	inst, err := New([]Column{{ID: "a"}, {ID: "b", Width: 80}}, nil,
		WithDefaultColumn(Column{Width: 120}))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	if got := inst.Header("a").TotalWidth; got != 120 {
		t.Errorf("Expected default width 120, got %v", got)
	}
	if got := inst.Header("b").TotalWidth; got != 80 {
		t.Errorf("Expected explicit width 80, got %v", got)
	}
	if got := inst.Header("a").MaxWidth; got == 0 {
		t.Error("Expected MaxWidth to fall back to the built-in default")
	}
}

func TestHeaderTotals_Clamped(t *testing.T) {
	inst, err := New([]Column{
		{ID: "small", Width: 10, MinWidth: 40},
		{ID: "big", Width: 500, MaxWidth: 200},
	}, nil)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	if got := inst.Header("small").TotalWidth; got != 40 {
		t.Errorf("Expected width clamped up to 40, got %v", got)
	}
	if got := inst.Header("big").TotalWidth; got != 200 {
		t.Errorf("Expected width clamped down to 200, got %v", got)
	}
	if got := inst.Header("big").TotalLeft; got != 40 {
		t.Errorf("Expected big to start at 40, got %v", got)
	}
	if got := inst.TotalColumnsWidth(); got != 240 {
		t.Errorf("Expected total 240, got %v", got)
	}
}

func TestHeaderGroups(t *testing.T) {
	inst := newResizableTable(t)

	groups := inst.HeaderGroups()
	if len(groups) != 2 {
		t.Fatalf("Expected 2 header groups, got %d", len(groups))
	}
	if len(groups[0]) != 2 || len(groups[1]) != 2 {
		t.Errorf("Expected 2 headers per group, got %d and %d", len(groups[0]), len(groups[1]))
	}
	if len(inst.LeafHeaders()) != 3 {
		t.Errorf("Expected 3 leaves, got %d", len(inst.LeafHeaders()))
	}
	if inst.Header("street").Parent != inst.Header("address") {
		t.Error("Expected street to be under address")
	}
}

func TestResizerProps(t *testing.T) {
	inst := newResizableTable(t)
	props := inst.Header("name").GetResizerProps()

	if props["role"] != "separator" {
		t.Errorf("Expected role separator, got %v", props["role"])
	}
	if props["draggable"] != false {
		t.Errorf("Expected draggable false, got %v", props["draggable"])
	}
	if props.Style()["cursor"] != "col-resize" {
		t.Errorf("Expected col-resize cursor, got %v", props.Style()["cursor"])
	}
	el, ok := props["children"].(*PreviewElement)
	if !ok || el.ID != "name_resizer_preview" {
		t.Errorf("Expected preview child name_resizer_preview, got %v", props["children"])
	}

	if s := inst.GetHeaderProps(inst.Header("name")).Style(); s["position"] != "relative" {
		t.Errorf("Expected header position relative, got %v", s["position"])
	}
}

func TestResizerAbsentWhenDisabled(t *testing.T) {
	inst, err := New([]Column{
		{ID: "fixed", Width: 100, DisableResizing: true},
		{ID: "free", Width: 100},
	}, nil, WithPlugins(FlexLayout(), ResizeColumns()))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	fixed := inst.Header("fixed")
	if fixed.CanResize || fixed.GetResizerProps != nil {
		t.Error("Expected fixed column to have no resizer")
	}
	if fixed.TotalFlexWidth != 0 {
		t.Errorf("Expected no flex width for fixed column, got %v", fixed.TotalFlexWidth)
	}
	if free := inst.Header("free"); !free.CanResize || free.GetResizerProps == nil {
		t.Error("Expected free column to be resizable")
	}

	all := newResizableTable(t, DisableResizing(true))
	for _, h := range all.FlatHeaders() {
		if h.GetResizerProps != nil {
			t.Errorf("Expected no resizer on %s with table-wide disable", h.ID)
		}
	}
}

func TestTableUserSelectWhileResizing(t *testing.T) {
	inst := newResizableTable(t)

	if _, ok := inst.GetTableProps().Style()["userSelect"]; ok {
		t.Error("Expected no userSelect while idle")
	}

	StartDrag(mouse(EventMouseDown, 100), inst.Header("name"), inst)
	s := inst.GetTableProps().Style()
	for _, k := range []string{"userSelect", "MozUserSelect", "WebkitUserSelect", "msUserSelect"} {
		if s[k] != "none" {
			t.Errorf("Expected %s none while resizing, got %v", k, s[k])
		}
	}

	inst.CancelDrag()
	if _, ok := inst.GetTableProps().Style()["userSelect"]; ok {
		t.Error("Expected userSelect gone after drag")
	}
}

func resizeName(inst *Instance, to float64) {
	StartDrag(mouse(EventMouseDown, 100), inst.Header("name"), inst)
	inst.Document().Dispatch(mouse(EventMouseUp, to))
}

func TestAutoReset_OnColumnChange(t *testing.T) {
	inst := newResizableTable(t)
	resizeName(inst, 130)

	// the first render records the column set without resetting
	if len(inst.State().ColumnResizing.ColumnWidths) == 0 {
		t.Fatal("Expected widths before column change")
	}

	if err := inst.SetColumns(inst.Columns()); err != nil {
		t.Fatalf("SetColumns() returned error: %v", err)
	}
	if n := len(inst.State().ColumnResizing.ColumnWidths); n != 0 {
		t.Errorf("Expected widths cleared, got %d", n)
	}
	if got := inst.Header("name").TotalWidth; got != 150 {
		t.Errorf("Expected original width 150 after reset, got %v", got)
	}
}

func TestAutoReset_Disabled(t *testing.T) {
	inst := newResizableTable(t, AutoResetResize(false))
	resizeName(inst, 130)

	if err := inst.SetColumns(inst.Columns()); err != nil {
		t.Fatalf("SetColumns() returned error: %v", err)
	}
	if got := inst.State().ColumnResizing.ColumnWidths["name"]; got != 180 {
		t.Errorf("Expected width kept at 180, got %v", got)
	}
}

func TestAutoReset_NotOnDataChange(t *testing.T) {
	inst := newResizableTable(t)
	resizeName(inst, 130)

	inst.SetData([]map[string]any{{"name": "Sweet"}, {"name": "Ryder"}})
	if got := inst.State().ColumnResizing.ColumnWidths["name"]; got != 180 {
		t.Errorf("Expected width kept on data change, got %v", got)
	}
	if len(inst.Rows()) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(inst.Rows()))
	}
}

func TestResetResizing(t *testing.T) {
	inst := newResizableTable(t)
	resizeName(inst, 130)

	inst.ResetResizing()
	if n := len(inst.State().ColumnResizing.ColumnWidths); n != 0 {
		t.Errorf("Expected widths cleared, got %d", n)
	}

	// without the plugin it does nothing
	plain, err := New([]Column{{ID: "a"}}, nil)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	plain.ResetResizing()
}

func TestStatePreservedAcrossUnrelatedActions(t *testing.T) {
	inst := newResizableTable(t)
	resizeName(inst, 130)

	inst.Dispatch(Action{Type: "toggleSortBy"})
	if got := inst.State().ColumnResizing.ColumnWidths["name"]; got != 180 {
		t.Errorf("Expected width 180 after unrelated action, got %v", got)
	}
}

func TestDispatchLogs(t *testing.T) {
	var buf bytes.Buffer
	inst := newResizableTable(t, WithLogger(NewLogger(&buf, LevelDebug)))
	resizeName(inst, 130)

	out := buf.String()
	for _, want := range []string{`"action":"columnStartResizing"`, `"column_id":"name"`, `"session_id":`, `"msg":"drag ended"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected log to contain %s", want)
		}
	}
}

func TestGetOpt(t *testing.T) {
	inst := newResizableTable(t, AutoResetResize(false))

	if GetOpt(inst, OptAutoResetResize) {
		t.Error("Expected autoResetResize false")
	}
	if !HasOpt(inst, OptAutoResetResize) {
		t.Error("Expected autoResetResize to be set")
	}
	if HasOpt(inst, OptDisableResizing) {
		t.Error("Expected disableResizing unset")
	}
	if GetOpt(inst, OptDisableResizing) {
		t.Error("Expected disableResizing default false")
	}

	custom := NewOptKey("stickyHeader", 3)
	if GetOpt(inst, custom) != 3 {
		t.Error("Expected custom key default")
	}
}

func TestCustomPreview(t *testing.T) {
	inst := newResizableTable(t, WithPreview(func(id string, base Style) Style {
		base["borderLeft"] = "2px dashed red"
		return base
	}))

	el := inst.Header("name").GetResizerProps()["children"].(*PreviewElement)
	if el.Style["borderLeft"] != "2px dashed red" {
		t.Errorf("Expected custom border, got %v", el.Style["borderLeft"])
	}
	if el.Style["height"] != "100vh" {
		t.Errorf("Expected default height kept, got %v", el.Style["height"])
	}
}
