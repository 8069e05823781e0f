package table

import (
	"fmt"
	"math"
)

// Column defines one column, or a group of columns when Columns is set.
// Zero sizing fields fall back to the instance's default column.
type Column struct {
	ID       string
	Header   string  // label
	Width    float64 // requested width in px
	MinWidth float64
	MaxWidth float64

	// DisableResizing turns off resizing for this column only.
	DisableResizing bool

	// Columns nests child columns under a group header.
	Columns []Column
}

// defaultColumn is the per-instance fallback for unset column fields.
func defaultColumn() Column {
	return Column{
		Width:    150,
		MinWidth: 0,
		MaxWidth: math.MaxInt32,
	}
}

// Header is the render-pass view of a column. Derived fields are
// recomputed on every Render and are not part of State.
type Header struct {
	ID      string
	Label   string
	Columns []*Header
	Parent  *Header
	Depth   int

	// OriginalWidth is the width from the column definition.
	OriginalWidth float64

	// Width is the effective width; plugins may override it. The resize
	// plugin treats a resized width of 0 as unset, so a column clamped
	// down to 0 renders at OriginalWidth while state keeps the 0.
	Width    float64
	MinWidth float64
	MaxWidth float64

	DisableResizing bool

	// Aggregates, filled after UseInstanceBeforeDimensions.
	TotalLeft      float64
	TotalWidth     float64
	TotalMinWidth  float64
	TotalMaxWidth  float64
	TotalFlexWidth float64

	// Set by the resize plugin.
	CanResize  bool
	IsResizing bool

	// GetResizerProps is nil unless the header can be resized.
	GetResizerProps PropGetter
}

// IsLeaf returns true if the header has no child columns.
func (h *Header) IsLeaf() bool {
	return len(h.Columns) == 0
}

// subtree returns h and every header below it, children before parents.
func (h *Header) subtree() []*Header {
	var out []*Header
	var walk func(*Header)
	walk = func(n *Header) {
		for _, c := range n.Columns {
			walk(c)
		}
		out = append(out, n)
	}
	walk(h)
	return out
}

// Row is one data row.
type Row struct {
	Index  int
	Values map[string]any
	Cells  []*Cell
}

// Cell is the intersection of a row and a leaf column.
type Cell struct {
	Column *Header
	Row    *Row
	Value  any
}

// buildHeaders turns column definitions into a header tree. It returns the
// roots, the flat list (pre-order) and the leaves.
func buildHeaders(columns []Column, def Column) (roots, flat, leaves []*Header, err error) {
	seen := make(map[string]bool)

	var build func(c Column, parent *Header, depth int) (*Header, error)
	build = func(c Column, parent *Header, depth int) (*Header, error) {
		if c.ID == "" {
			return nil, fmt.Errorf("column %q: %w", c.Header, ErrEmptyColumnID)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("column %q: %w", c.ID, ErrDuplicateColumn)
		}
		seen[c.ID] = true

		h := &Header{
			ID:              c.ID,
			Label:           c.Header,
			Parent:          parent,
			Depth:           depth,
			Width:           firstNonZero(c.Width, def.Width),
			MinWidth:        firstNonZero(c.MinWidth, def.MinWidth),
			MaxWidth:        firstNonZero(c.MaxWidth, def.MaxWidth),
			DisableResizing: c.DisableResizing || def.DisableResizing,
		}
		h.OriginalWidth = h.Width
		flat = append(flat, h)

		for _, child := range c.Columns {
			ch, err := build(child, h, depth+1)
			if err != nil {
				return nil, err
			}
			h.Columns = append(h.Columns, ch)
		}
		if h.IsLeaf() {
			leaves = append(leaves, h)
		}
		return h, nil
	}

	for _, c := range columns {
		h, err := build(c, nil, 0)
		if err != nil {
			return nil, nil, nil, err
		}
		roots = append(roots, h)
	}
	return roots, flat, leaves, nil
}

// headerGroups buckets headers by depth, left to right.
func headerGroups(flat []*Header) [][]*Header {
	var groups [][]*Header
	for _, h := range flat {
		for len(groups) <= h.Depth {
			groups = append(groups, nil)
		}
		groups[h.Depth] = append(groups[h.Depth], h)
	}
	return groups
}

// calculateHeaderWidths aggregates leaf sizes up the tree and assigns
// left offsets. Returns the summed width and min width of roots.
func calculateHeaderWidths(headers []*Header, left float64) (totalWidth, totalMinWidth float64) {
	for _, h := range headers {
		h.TotalLeft = left + totalWidth

		if !h.IsLeaf() {
			w, mw := calculateHeaderWidths(h.Columns, h.TotalLeft)
			h.TotalWidth = w
			h.TotalMinWidth = mw
			h.TotalMaxWidth = 0
			h.TotalFlexWidth = 0
			for _, c := range h.Columns {
				h.TotalMaxWidth += c.TotalMaxWidth
				h.TotalFlexWidth += c.TotalFlexWidth
			}
		} else {
			h.TotalMinWidth = h.MinWidth
			h.TotalWidth = min(max(h.MinWidth, h.Width), h.MaxWidth)
			h.TotalMaxWidth = h.MaxWidth
			h.TotalFlexWidth = 0
			if h.CanResize {
				h.TotalFlexWidth = h.TotalWidth
			}
		}

		totalWidth += h.TotalWidth
		totalMinWidth += h.TotalMinWidth
	}
	return totalWidth, totalMinWidth
}

func firstNonZero(vals ...float64) float64 {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}
