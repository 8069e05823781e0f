package table

// State is the table state owned by the reducer chain.
// It is replaced, never mutated, on every Dispatch.
type State struct {
	ColumnResizing ColumnResizeState
}

// HeaderIDWidth records a header's total width at the moment a drag began.
type HeaderIDWidth struct {
	ID    string
	Width float64
}

// ColumnResizeState is the column-resizing subtree of State.
type ColumnResizeState struct {
	// ColumnWidths holds user-resized widths keyed by column ID.
	ColumnWidths map[string]float64

	// IsResizingColumn is the ID of the header being dragged, "" when idle.
	IsResizingColumn string

	// StartX is the pointer X at drag start; nil when idle.
	StartX *float64

	// ColumnWidth is the dragged header's total width at drag start.
	ColumnWidth *float64

	// HeaderIDWidths is the snapshot taken at drag start for every header
	// under the dragged one. It is only replaced by the next drag start.
	HeaderIDWidths []HeaderIDWidth
}

// Resizing returns true while a drag is in progress.
func (s ColumnResizeState) Resizing() bool {
	return s.IsResizingColumn != ""
}

// Width returns the resized width for id, if any.
func (s ColumnResizeState) Width(id string) (float64, bool) {
	w, ok := s.ColumnWidths[id]
	return w, ok
}

// newColumnResizeState returns the idle state with no resized columns.
func newColumnResizeState() ColumnResizeState {
	return ColumnResizeState{ColumnWidths: make(map[string]float64)}
}

func float64Ptr(v float64) *float64 {
	return &v
}
