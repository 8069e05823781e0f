package table

// Renderer draws a finished DrawList. backend/opengl provides one.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
}

// HeaderBox is where a header landed on the canvas.
type HeaderBox struct {
	Header  *Header
	Rect    Rect
	Resizer Rect // zero when the header cannot be resized
}

// Geometry is the measured layout of one paint.
type Geometry struct {
	Headers []HeaderBox
	Rows    []Rect
	Bounds  Rect
}

// Measure places every header and row starting at (x, y).
// Header rows are theme.HeaderHeight tall, one per depth; the resizer
// hit area is centered on each header's right edge.
func Measure(inst *Instance, x, y float64, theme Theme) Geometry {
	var g Geometry
	groups := inst.HeaderGroups()
	for depth, group := range groups {
		top := y + float64(depth)*theme.HeaderHeight
		for _, h := range group {
			box := HeaderBox{
				Header: h,
				Rect:   Rect{X: x + h.TotalLeft, Y: top, W: h.TotalWidth, H: theme.HeaderHeight},
			}
			if h.CanResize {
				box.Resizer = Rect{
					X: box.Rect.Right() - theme.HandleWidth/2,
					Y: top,
					W: theme.HandleWidth,
					H: theme.HeaderHeight,
				}
			}
			g.Headers = append(g.Headers, box)
		}
	}

	rowTop := y + float64(len(groups))*theme.HeaderHeight
	for i := range inst.Rows() {
		g.Rows = append(g.Rows, Rect{
			X: x,
			Y: rowTop + float64(i)*theme.RowHeight,
			W: inst.TotalColumnsWidth(),
			H: theme.RowHeight,
		})
	}

	g.Bounds = Rect{
		X: x,
		Y: y,
		W: inst.TotalColumnsWidth(),
		H: rowTop - y + float64(len(g.Rows))*theme.RowHeight,
	}
	return g
}

// ResizerAt returns the header whose resizer contains (x, y), or nil.
// Later headers win where hit areas overlap.
func (g Geometry) ResizerAt(x, y float64) *HeaderBox {
	for i := len(g.Headers) - 1; i >= 0; i-- {
		b := &g.Headers[i]
		if b.Resizer.W > 0 && b.Resizer.Contains(x, y) {
			return b
		}
	}
	return nil
}

// Press routes a mousedown or touchstart to the resizer under it.
// It returns true when a resizer handled the event.
func (g Geometry) Press(ev *Event) bool {
	x, y := ev.ClientX, ev.ClientY
	key := "onMouseDown"
	if ev.Type.IsTouch() {
		if len(ev.Touches) == 0 {
			return false
		}
		x, y = ev.Touches[0].ClientX, ev.Touches[0].ClientY
		key = "onTouchStart"
	}

	box := g.ResizerAt(x, y)
	if box == nil || box.Header.GetResizerProps == nil {
		return false
	}
	handler, ok := box.Header.GetResizerProps()[key].(EventHandler)
	if !ok {
		return false
	}
	ev.Target = box.Resizer
	handler(ev)
	return true
}

// Paint draws headers, rows, resizer handles and any visible drag
// indicator into dl.
func Paint(dl *DrawList, g Geometry, inst *Instance, theme Theme) {
	b := g.Bounds
	dl.PushClipRect(float32(b.X), float32(b.Y), float32(b.Right()), float32(b.Y+b.H))
	defer dl.PopClipRect()

	for i, r := range g.Rows {
		color := theme.RowBgColor
		if i%2 == 1 {
			color = theme.RowBgAltColor
		}
		dl.AddRect(float32(r.X), float32(r.Y), float32(r.W), float32(r.H), color)
	}

	for _, box := range g.Headers {
		r := box.Rect
		bg := theme.HeaderBgColor
		if box.Header.IsResizing {
			bg = theme.HeaderResizingColor
		}
		dl.AddRect(float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg)
		dl.AddRectOutline(float32(r.X), float32(r.Y), float32(r.W), float32(r.H), theme.BorderColor, theme.BorderSize)

		handle := theme.HandleColor
		switch {
		case box.Resizer.W == 0:
			handle = theme.HandleDisabledColor
		case box.Header.IsResizing:
			handle = theme.HandleActiveColor
		}
		edge := float32(r.Right())
		dl.AddLine(edge, float32(r.Y)+2, edge, float32(r.Y+r.H)-2, handle, 2)
	}

	for _, el := range inst.Document().Elements() {
		if !el.Visible() {
			continue
		}
		dl.AddRect(float32(el.Left), float32(el.Top), theme.PreviewWidth, float32(b.Y+b.H-el.Top), theme.PreviewColor)
	}
}

// Canvas paints an instance through a Renderer.
type Canvas struct {
	renderer Renderer
	theme    Theme
	x, y     float64
}

// CanvasOption configures a Canvas.
type CanvasOption func(*Canvas)

// WithTheme sets the canvas theme.
func WithTheme(t Theme) CanvasOption {
	return func(c *Canvas) { c.theme = t }
}

// WithOrigin sets where the table's top-left corner is drawn.
func WithOrigin(x, y float64) CanvasOption {
	return func(c *Canvas) { c.x, c.y = x, y }
}

// NewCanvas creates a canvas drawing through r.
func NewCanvas(r Renderer, opts ...CanvasOption) *Canvas {
	c := &Canvas{
		renderer: r,
		theme:    DefaultTheme(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Theme returns the canvas theme.
func (c *Canvas) Theme() Theme {
	return c.theme
}

// Measure lays inst out at the canvas origin.
func (c *Canvas) Measure(inst *Instance) Geometry {
	return Measure(inst, c.x, c.y, c.theme)
}

// Draw measures and paints inst, then hands the draw list to the renderer.
// The returned geometry is what input should be hit-tested against.
func (c *Canvas) Draw(inst *Instance) (Geometry, error) {
	g := c.Measure(inst)

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	Paint(dl, g, inst, c.theme)
	dl.Finalize()

	if err := c.renderer.Render(dl); err != nil {
		return g, err
	}
	return g, nil
}

// Resize forwards a framebuffer size change to the renderer.
func (c *Canvas) Resize(width, height int) {
	c.renderer.Resize(width, height)
}
