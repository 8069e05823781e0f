// Package term renders a table in the terminal with bubbletea and lipgloss.
// Terminal mouse events are mapped to pixel coordinates so the table's
// resize plugin works unchanged.
package term

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/go-theft-auto/table"
)

// Styles used by the view.
var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("237"))
	resizingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	handleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	activeHandle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	cellStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	altCellStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("235"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

const handleGlyph = "│"

// Model is a bubbletea model showing one table instance.
// Each terminal column stands for CellWidth pixels; each line is one
// header or data row.
type Model struct {
	inst      *table.Instance
	cellWidth float64
	theme     table.Theme
	geom      table.Geometry

	width, height int
}

// New creates a model. cellWidth must be positive.
func New(inst *table.Instance, cellWidth float64) Model {
	theme := table.DefaultTheme()
	theme.HeaderHeight = 1
	theme.RowHeight = 1
	theme.HandleWidth = cellWidth

	m := Model{
		inst:      inst,
		cellWidth: cellWidth,
		theme:     theme,
	}
	m.geom = table.Measure(inst, 0, 0, theme)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.inst.CancelDrag()
			return m, tea.Quit
		case "esc":
			m.inst.CancelDrag()
		case "r":
			m.inst.ResetResizing()
		}

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	m.geom = table.Measure(m.inst, 0, 0, m.theme)
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	ev := &table.Event{
		ClientX:    m.toPixels(msg.X),
		ClientY:    float64(msg.Y),
		Cancelable: true,
	}
	doc := m.inst.Document()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		ev.Type = table.EventMouseDown
		m.geom.Press(ev)
	case tea.MouseActionMotion:
		ev.Type = table.EventMouseMove
		doc.Dispatch(ev)
	case tea.MouseActionRelease:
		ev.Type = table.EventMouseUp
		doc.Dispatch(ev)
	}
}

// toPixels maps a terminal column to the pixel at its center.
func (m Model) toPixels(col int) float64 {
	return float64(col)*m.cellWidth + m.cellWidth/2
}

// cells converts a pixel offset to a terminal column.
func (m Model) cells(px float64) int {
	return int(math.Round(px / m.cellWidth))
}

// View implements tea.Model.
func (m Model) View() string {
	var lines []string

	for _, group := range m.inst.HeaderGroups() {
		var parts []string
		cursor := 0
		for _, h := range group {
			start, end := m.cells(h.TotalLeft), m.cells(h.TotalLeft+h.TotalWidth)
			if start > cursor {
				parts = append(parts, strings.Repeat(" ", start-cursor))
			}
			parts = append(parts, m.renderHeader(h, end-start))
			cursor = end
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}

	for i, row := range m.inst.Rows() {
		style := cellStyle
		if i%2 == 1 {
			style = altCellStyle
		}
		var parts []string
		for _, cell := range row.Cells {
			w := m.cells(cell.Column.TotalLeft+cell.Column.TotalWidth) - m.cells(cell.Column.TotalLeft)
			parts = append(parts, renderCell(style, fmt.Sprint(cell.Value), w))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}

	lines = append(lines, "", statusStyle.Render(m.status()))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderHeader(h *table.Header, w int) string {
	if w <= 0 {
		return ""
	}
	style := headerStyle
	if h.IsResizing {
		style = resizingStyle
	}
	if !h.CanResize {
		return renderCell(style, h.Label, w)
	}
	handle := handleStyle.Render(handleGlyph)
	if h.IsResizing {
		handle = activeHandle.Render(handleGlyph)
	}
	return renderCell(style, h.Label, w-1) + handle
}

func renderCell(style lipgloss.Style, text string, w int) string {
	if w <= 0 {
		return ""
	}
	text = ansi.Truncate(text, w, "…")
	return style.Width(w).MaxWidth(w).Render(text)
}

func (m Model) status() string {
	rs := m.inst.State().ColumnResizing
	if rs.Resizing() {
		h := m.inst.Header(rs.IsResizingColumn)
		if h != nil {
			return fmt.Sprintf("resizing %s: %s  (esc cancel)", h.Label, table.Px(h.TotalWidth))
		}
	}
	return "drag a │ to resize · r reset · q quit"
}

// Geometry returns the layout used for hit-testing, in pixels by lines.
func (m Model) Geometry() table.Geometry {
	return m.geom
}
