package table

// ResizeColumnsName is the registration name of the column resize plugin.
const ResizeColumnsName = "useResizeColumns"

// ResizeColumns lets users drag a handle on each header to resize it.
// It must be registered after FlexLayout.
func ResizeColumns() Plugin {
	return Plugin{
		Name:     ResizeColumnsName,
		Requires: []string{FlexLayoutName},
		Register: func(h *Hooks) {
			h.Replace(HookResizerProps, PropGetterFunc(defaultResizerProps))
			h.Register(HookTableProps, PropGetterFunc(resizeTableProps))
			h.Register(HookHeaderProps, StaticProps{
				StyleKey: Style{"position": "relative"},
			})
			h.StateReducers = append(h.StateReducers, ResizeReducer)
			h.UseInstanceBeforeDimensions = append(h.UseInstanceBeforeDimensions, resizeBeforeDimensions)
			h.UseInstance = append(h.UseInstance, resizeUseInstance)
		},
	}
}

func defaultResizerProps(props Props, meta Meta) (Props, Props) {
	inst, header := meta.Instance, meta.Header
	start := func(ev *Event) {
		StartDrag(ev, header, inst)
	}
	return props, Props{
		"onMouseDown":  EventHandler(start),
		"onTouchStart": EventHandler(start),
		StyleKey:       Style{"cursor": "col-resize"},
		"draggable":    false,
		"role":         "separator",
		"children":     inst.previewElement(header.ID),
	}
}

// resizeTableProps stops text selection while a column is being dragged.
func resizeTableProps(props Props, meta Meta) (Props, Props) {
	if !meta.Instance.State().ColumnResizing.Resizing() {
		return props, nil
	}
	return props, Props{StyleKey: Style{
		"userSelect":       "none",
		"MozUserSelect":    "none",
		"WebkitUserSelect": "none",
		"msUserSelect":     "none",
	}}
}

func resizeBeforeDimensions(inst *Instance) {
	rs := inst.State().ColumnResizing
	for _, h := range inst.FlatHeaders() {
		h.CanResize = !h.DisableResizing && !inst.disableResizing

		if w, ok := rs.Width(h.ID); ok && w != 0 {
			h.Width = w
		} else if h.OriginalWidth != 0 {
			h.Width = h.OriginalWidth
		}
		h.IsResizing = rs.IsResizingColumn == h.ID

		h.GetResizerProps = nil
		if h.CanResize {
			inst.previewElement(h.ID)
			h.GetResizerProps = MakePropGetter(inst.hooks, HookResizerProps, Meta{
				Instance: inst,
				Column:   h,
				Header:   h,
			})
		}
	}
}

func resizeUseInstance(inst *Instance) {
	inst.resetResizing = func() {
		inst.Dispatch(Action{Type: ActionResetResize})
	}
	inst.useMountedEffect("resize/autoReset", inst.columnsVersion, func() {
		if inst.autoResetResize {
			inst.logger.Debug("column set changed, resetting widths")
			inst.Dispatch(Action{Type: ActionResetResize})
		}
	})
}
