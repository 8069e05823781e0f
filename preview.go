package table

// PreviewElement is the floating indicator shown while a column is dragged.
// It lives in a portal so it can escape the table's clipping.
type PreviewElement struct {
	ID string

	// Style is the visual from the PreviewComponent. Display, Top and Left
	// are layered on top of it by Props.
	Style Style

	Display string // "none" or "block"
	Top     float64
	Left    float64
}

// Show makes the element visible at the given position.
func (p *PreviewElement) Show(top, left float64) {
	p.Display = "block"
	p.Top = top
	p.Left = left
}

// MoveTo updates the horizontal position.
func (p *PreviewElement) MoveTo(left float64) {
	p.Left = left
}

// Hide hides the element. Position is kept.
func (p *PreviewElement) Hide() {
	p.Display = "none"
}

// Visible returns true between Show and Hide.
func (p *PreviewElement) Visible() bool {
	return p.Display == "block"
}

// Props returns renderable props: id plus the composed style.
func (p *PreviewElement) Props() Props {
	style := p.Style.Clone()
	if style == nil {
		style = Style{}
	}
	style["display"] = p.Display
	if p.Visible() {
		style["top"] = Px(p.Top)
		style["left"] = Px(p.Left)
	}
	return Props{"id": p.ID, StyleKey: style}
}

// PreviewComponent produces the style of the drag indicator for a header.
// base is the default bar style; returning it unchanged keeps the default.
type PreviewComponent func(headerID string, base Style) Style

// DefaultPreviewStyle is the 2px vertical bar used when no PreviewComponent
// is configured.
func DefaultPreviewStyle() Style {
	return Style{
		"position":   "absolute",
		"display":    "none",
		"height":     "100vh",
		"width":      "2px",
		"boxSizing":  "border-box",
		"borderLeft": "1px solid black",
	}
}

// Portal mounts elements outside the table, typically into the body.
type Portal interface {
	Mount(el *PreviewElement)
	Unmount(id string)
}

// previewID is the element id for a header's drag indicator.
func previewID(headerID string) string {
	return headerID + "_resizer_preview"
}

// newPreviewElement builds the hidden indicator for headerID.
func newPreviewElement(headerID string, component PreviewComponent) *PreviewElement {
	style := DefaultPreviewStyle()
	if component != nil {
		if s := component(headerID, style.Clone()); s != nil {
			style = s
		}
	}
	return &PreviewElement{
		ID:      previewID(headerID),
		Style:   style,
		Display: "none",
	}
}
