package table

import (
	"fmt"
	"log/slog"
)

// maxRenderPasses bounds how many times effects may re-trigger a render.
const maxRenderPasses = 4

// Instance is a table: its column model, data, plugin hooks and state.
//
// Instance is not safe for concurrent use. Backends call it from the
// goroutine that owns the UI.
type Instance struct {
	opts    options
	plugins []Plugin
	hooks   *Hooks
	state   State

	document *Document
	logger   *slog.Logger
	preview  PreviewComponent

	disableResizing bool
	autoResetResize bool
	defaultColumn   Column

	columns        []Column
	columnsVersion uint64
	data           []map[string]any

	roots        []*Header
	flat         []*Header
	leaves       []*Header
	headerGroups [][]*Header
	rows         []*Row

	totalColumnsWidth    float64
	totalColumnsMinWidth float64

	effectDeps map[string]uint64
	effects    []func()
	rendering  bool
	dirty      bool

	previews      map[string]*PreviewElement
	drag          *DragSession
	resetResizing func()
}

// New builds an instance and runs the first render.
// Plugins come from WithPlugins and are registered in that order.
func New(columns []Column, data []map[string]any, opts ...Option) (*Instance, error) {
	o := applyOptions(opts)

	inst := &Instance{
		opts:            o,
		plugins:         getOpt(o, OptPlugins),
		hooks:           NewHooks(),
		document:        getOpt(o, OptDocument),
		logger:          getOpt(o, OptLogger),
		preview:         getOpt(o, OptPreview),
		disableResizing: getOpt(o, OptDisableResizing),
		autoResetResize: getOpt(o, OptAutoResetResize),
		defaultColumn:   mergeDefaultColumn(getOpt(o, OptDefaultColumn)),
		data:            data,
		effectDeps:      make(map[string]uint64),
		previews:        make(map[string]*PreviewElement),
	}
	if inst.document == nil {
		inst.document = NewDocument()
	}
	if inst.logger == nil {
		inst.logger = NopLogger()
	}

	for _, p := range inst.plugins {
		if p.Register != nil {
			p.Register(inst.hooks)
		}
	}
	names := pluginNames(inst.plugins)
	for _, p := range inst.plugins {
		if len(p.Requires) == 0 {
			continue
		}
		if err := EnsurePluginOrder(names, p.Requires, p.Name); err != nil {
			return nil, fmt.Errorf("register plugins: %w", err)
		}
	}

	if err := inst.setColumns(columns); err != nil {
		return nil, err
	}

	// Init triggers the first render.
	inst.Dispatch(Action{Type: ActionInit})
	return inst, nil
}

// mergeDefaultColumn fills zero fields of def from the built-in defaults.
func mergeDefaultColumn(def Column) Column {
	base := defaultColumn()
	def.Width = firstNonZero(def.Width, base.Width)
	def.MinWidth = firstNonZero(def.MinWidth, base.MinWidth)
	def.MaxWidth = firstNonZero(def.MaxWidth, base.MaxWidth)
	return def
}

// Dispatch folds action through the state reducers and re-renders.
// Actions dispatched while rendering are applied at once and rendered
// by the pass already in progress.
func (inst *Instance) Dispatch(action Action) {
	inst.state = reduce(inst.hooks.StateReducers, inst.state, action, inst)

	attrs := []any{slog.String("action", action.String())}
	if action.ColumnID != "" {
		attrs = append(attrs, slog.String("column_id", action.ColumnID))
	}
	inst.logger.Debug("dispatch", attrs...)

	if inst.drag != nil && !inst.state.ColumnResizing.Resizing() {
		inst.drag.release(action)
	}

	if inst.rendering {
		inst.dirty = true
		return
	}
	inst.Render()
}

// Render recomputes header widths, rows and plugin-derived fields from
// the current state, then runs any effects the pass queued.
func (inst *Instance) Render() {
	inst.rendering = true
	defer func() { inst.rendering = false }()

	for range maxRenderPasses {
		inst.dirty = false
		inst.renderPass()

		effects := inst.effects
		inst.effects = nil
		for _, fn := range effects {
			fn()
		}
		if !inst.dirty {
			return
		}
	}
	inst.logger.Warn("render did not settle", slog.Int("passes", maxRenderPasses))
}

func (inst *Instance) renderPass() {
	for _, h := range inst.flat {
		h.Width = h.OriginalWidth
	}
	for _, hook := range inst.hooks.UseInstanceBeforeDimensions {
		hook(inst)
	}
	inst.totalColumnsWidth, inst.totalColumnsMinWidth = calculateHeaderWidths(inst.roots, 0)
	inst.rows = inst.buildRows()
	for _, hook := range inst.hooks.UseInstance {
		hook(inst)
	}
}

func (inst *Instance) buildRows() []*Row {
	rows := make([]*Row, len(inst.data))
	for i, values := range inst.data {
		r := &Row{Index: i, Values: values}
		for _, col := range inst.leaves {
			r.Cells = append(r.Cells, &Cell{Column: col, Row: r, Value: values[col.ID]})
		}
		rows[i] = r
	}
	return rows
}

// useMountedEffect queues fn when dep differs from the value recorded for
// key on the previous render. The first render only records dep.
func (inst *Instance) useMountedEffect(key string, dep uint64, fn func()) {
	prev, mounted := inst.effectDeps[key]
	inst.effectDeps[key] = dep
	if mounted && prev != dep {
		inst.effects = append(inst.effects, fn)
	}
}

// SetColumns replaces the column definitions and re-renders. With
// auto-reset on, resized widths are cleared.
func (inst *Instance) SetColumns(columns []Column) error {
	if err := inst.setColumns(columns); err != nil {
		return err
	}
	inst.Render()
	return nil
}

func (inst *Instance) setColumns(columns []Column) error {
	roots, flat, leaves, err := buildHeaders(columns, inst.defaultColumn)
	if err != nil {
		return fmt.Errorf("build headers: %w", err)
	}
	inst.columns = columns
	inst.columnsVersion++
	inst.roots, inst.flat, inst.leaves = roots, flat, leaves
	inst.headerGroups = headerGroups(flat)
	return nil
}

// SetData replaces the row data and re-renders.
func (inst *Instance) SetData(data []map[string]any) {
	inst.data = data
	inst.Render()
}

// ResetResizing clears all resized widths. It is a no-op unless the
// resize plugin is registered.
func (inst *Instance) ResetResizing() {
	if inst.resetResizing != nil {
		inst.resetResizing()
	}
}

// ActiveDrag returns the drag in progress, or nil.
func (inst *Instance) ActiveDrag() *DragSession {
	return inst.drag
}

// CancelDrag aborts the drag in progress, if any.
func (inst *Instance) CancelDrag() {
	if inst.drag != nil {
		inst.drag.Cancel()
	}
}

// previewElement returns the drag indicator for headerID, creating and
// mounting it on first use.
func (inst *Instance) previewElement(headerID string) *PreviewElement {
	if el, ok := inst.previews[headerID]; ok {
		return el
	}
	el := newPreviewElement(headerID, inst.preview)
	inst.previews[headerID] = el
	inst.document.Mount(el)
	return el
}

func (inst *Instance) State() State { return inst.state }
func (inst *Instance) Hooks() *Hooks { return inst.hooks }
func (inst *Instance) Document() *Document { return inst.document }
func (inst *Instance) Logger() *slog.Logger { return inst.logger }
func (inst *Instance) Columns() []Column { return inst.columns }
func (inst *Instance) Plugins() []string { return pluginNames(inst.plugins) }
func (inst *Instance) HeaderGroups() [][]*Header { return inst.headerGroups }
func (inst *Instance) FlatHeaders() []*Header { return inst.flat }
func (inst *Instance) LeafHeaders() []*Header { return inst.leaves }
func (inst *Instance) Rows() []*Row { return inst.rows }

// TotalColumnsWidth is the summed width of the top-level headers.
func (inst *Instance) TotalColumnsWidth() float64 { return inst.totalColumnsWidth }

// TotalColumnsMinWidth is the summed min width of the top-level headers.
func (inst *Instance) TotalColumnsMinWidth() float64 { return inst.totalColumnsMinWidth }

// Header returns the header with id, or nil.
func (inst *Instance) Header(id string) *Header {
	for _, h := range inst.flat {
		if h.ID == id {
			return h
		}
	}
	return nil
}

// =============================================================================
// Prop getters
// =============================================================================

func (inst *Instance) GetTableProps(userProps ...Props) Props {
	return MakePropGetter(inst.hooks, HookTableProps, Meta{Instance: inst})(userProps...)
}

func (inst *Instance) GetTableBodyProps(userProps ...Props) Props {
	return MakePropGetter(inst.hooks, HookTableBodyProps, Meta{Instance: inst})(userProps...)
}

func (inst *Instance) GetHeaderGroupProps(depth int, userProps ...Props) Props {
	return MakePropGetter(inst.hooks, HookHeaderGroupProps, Meta{Instance: inst, Depth: depth})(userProps...)
}

func (inst *Instance) GetFooterGroupProps(depth int, userProps ...Props) Props {
	return MakePropGetter(inst.hooks, HookFooterGroupProps, Meta{Instance: inst, Depth: depth})(userProps...)
}

func (inst *Instance) GetHeaderProps(h *Header, userProps ...Props) Props {
	return MakePropGetter(inst.hooks, HookHeaderProps, Meta{Instance: inst, Column: h, Header: h})(userProps...)
}

func (inst *Instance) GetFooterProps(h *Header, userProps ...Props) Props {
	return MakePropGetter(inst.hooks, HookFooterProps, Meta{Instance: inst, Column: h, Header: h})(userProps...)
}

func (inst *Instance) GetRowProps(r *Row, userProps ...Props) Props {
	return MakePropGetter(inst.hooks, HookRowProps, Meta{Instance: inst, Row: r})(userProps...)
}

func (inst *Instance) GetCellProps(c *Cell, userProps ...Props) Props {
	return MakePropGetter(inst.hooks, HookCellProps, Meta{
		Instance: inst,
		Column:   c.Column,
		Header:   c.Column,
		Row:      c.Row,
		Cell:     c,
	})(userProps...)
}
