package table

import "testing"

func TestFlexLayout_TableProps(t *testing.T) {
	inst := newResizableTable(t)

	s := inst.GetTableProps().Style()
	want := Style{
		"display":       "flex",
		"flexDirection": "column",
		"boxSizing":     "border-box",
		"minWidth":      "450px",
	}
	for k, v := range want {
		if s[k] != v {
			t.Errorf("Expected table %s %v, got %v", k, v, s[k])
		}
	}
}

func TestFlexLayout_RowAndGroupProps(t *testing.T) {
	inst, err := New(
		[]Column{
			{ID: "a", Width: 100, MinWidth: 40},
			{ID: "b", Width: 50, MinWidth: 25},
		},
		[]map[string]any{{"a": 1, "b": 2}},
		WithPlugins(FlexLayout()),
	)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	for name, props := range map[string]Props{
		"row":         inst.GetRowProps(inst.Rows()[0]),
		"headerGroup": inst.GetHeaderGroupProps(0),
		"footerGroup": inst.GetFooterGroupProps(0),
	} {
		s := props.Style()
		if s["display"] != "flex" || s["flex"] != "1 0 auto" || s["boxSizing"] != "border-box" {
			t.Errorf("%s: expected flex row styles, got %v", name, s)
		}
		if s["minWidth"] != "65px" {
			t.Errorf("%s: expected minWidth 65px, got %v", name, s["minWidth"])
		}
	}

	if s := inst.GetTableBodyProps().Style(); s["boxSizing"] != "border-box" {
		t.Errorf("Expected body boxSizing border-box, got %v", s)
	}
}

func TestFlexLayout_HeaderAndCellWidths(t *testing.T) {
	inst := newResizableTable(t)

	h := inst.Header("city")
	s := inst.GetHeaderProps(h).Style()
	if s["display"] != "inline-flex" || s["width"] != "200px" {
		t.Errorf("Expected inline-flex 200px header, got %v", s)
	}

	cell := inst.Rows()[0].Cells[2]
	if cell.Column.ID != "city" {
		t.Fatalf("Expected third cell to be city, got %s", cell.Column.ID)
	}
	if cs := inst.GetCellProps(cell).Style(); cs["width"] != "200px" || cs["boxSizing"] != "border-box" {
		t.Errorf("Expected cell width 200px, got %v", cs)
	}
}

func TestFlexLayout_FooterFlex(t *testing.T) {
	inst := newResizableTable(t, WithOpt(OptDisableResizing, false))

	s := inst.GetFooterProps(inst.Header("name")).Style()
	if s["flex"] != "150 0 auto" {
		t.Errorf("Expected flex 150 0 auto, got %v", s["flex"])
	}
	if s["width"] != "150px" || s["minWidth"] != "0px" {
		t.Errorf("Expected width 150px minWidth 0px, got %v / %v", s["width"], s["minWidth"])
	}

	group := inst.GetFooterProps(inst.Header("address")).Style()
	if group["flex"] != "300 0 auto" {
		t.Errorf("Expected group flex 300 0 auto, got %v", group["flex"])
	}
}

func TestFlexLayout_FooterNoFlexWhenFixed(t *testing.T) {
	inst := newResizableTable(t, DisableResizing(true))

	s := inst.GetFooterProps(inst.Header("name")).Style()
	v, ok := s["flex"]
	if !ok {
		t.Fatal("Expected flex key present")
	}
	if v != nil {
		t.Errorf("Expected flex unset, got %v", v)
	}
}

func TestFlexLayout_StylesTrackResize(t *testing.T) {
	inst := newResizableTable(t)
	doc := inst.Document()

	StartDrag(mouse(EventMouseDown, 100), inst.Header("name"), inst)
	doc.Dispatch(mouse(EventMouseUp, 130))

	if s := inst.GetHeaderProps(inst.Header("name")).Style(); s["width"] != "180px" {
		t.Errorf("Expected header width 180px, got %v", s["width"])
	}
	if s := inst.GetTableProps().Style(); s["minWidth"] != "480px" {
		t.Errorf("Expected table minWidth 480px, got %v", s["minWidth"])
	}
}
