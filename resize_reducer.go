package table

import "maps"

// ResizeReducer handles the column-resize actions. Everything else passes
// through untouched.
func ResizeReducer(state State, action Action, _ *Instance) State {
	rs := state.ColumnResizing

	switch action.Type {
	case ActionInit:
		// Existing state wins; only fill in what is missing.
		if rs.ColumnWidths == nil {
			rs.ColumnWidths = make(map[string]float64)
		}

	case ActionResetResize:
		rs = newColumnResizeState()

	case ActionColumnStartResizing:
		rs.StartX = float64Ptr(action.ClientX)
		rs.ColumnWidth = float64Ptr(action.ColumnWidth)
		rs.HeaderIDWidths = append([]HeaderIDWidth(nil), action.HeaderIDWidths...)
		rs.IsResizingColumn = action.ColumnID

	case ActionColumnResizing:
		if widths, ok := resizedWidths(rs, action.ClientX); ok {
			rs.ColumnWidths = widths
		}

	case ActionColumnDoneResizing:
		rs.StartX = nil
		rs.IsResizingColumn = ""

	case ActionColumnEndResizing:
		if widths, ok := resizedWidths(rs, action.ClientX); ok {
			rs.ColumnWidths = widths
		}
		rs.StartX = nil
		rs.IsResizingColumn = ""

	default:
		return state
	}

	state.ColumnResizing = rs
	return state
}

// resizedWidths applies the pointer delta, as a fraction of the dragged
// header's starting width, to every header in the drag snapshot.
// Results are clamped at 0 and merged over the existing widths.
// ok is false when no drag is active or the reference width is zero.
func resizedWidths(rs ColumnResizeState, clientX float64) (map[string]float64, bool) {
	if rs.StartX == nil || rs.ColumnWidth == nil || *rs.ColumnWidth == 0 {
		return nil, false
	}

	deltaX := clientX - *rs.StartX
	percentageDeltaX := deltaX / *rs.ColumnWidth

	widths := make(map[string]float64, len(rs.ColumnWidths)+len(rs.HeaderIDWidths))
	maps.Copy(widths, rs.ColumnWidths)
	for _, hw := range rs.HeaderIDWidths {
		widths[hw.ID] = max(hw.Width+hw.Width*percentageDeltaX, 0)
	}
	return widths, true
}
