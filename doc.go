/*
Package table is a headless table model with a flexbox layout plugin and
column resizing.

# Overview

An Instance owns the column definitions, the row data and the table state.
Plugins extend it through a Hooks registry: prop-getter contributions that
decide the props of each element kind (table, row, header, cell, resizer),
state reducers, and hooks that run during each render pass. Rendering is
left to the host; the backends under backend/ show three ways to do it.

# Quick Start

	inst, err := table.New(columns, rows,
	    table.WithPlugins(table.FlexLayout(), table.ResizeColumns()),
	)
	if err != nil {
	    return err
	}

	tableProps := inst.GetTableProps()
	for _, h := range inst.FlatHeaders() {
	    headerProps := inst.GetHeaderProps(h)
	    if h.GetResizerProps != nil {
	        resizer := h.GetResizerProps()
	        // attach resizer["onMouseDown"] to the handle
	    }
	}

# Resizing

A mousedown or touchstart on a resizer starts a DragSession. The session
listens on the instance's Document for the matching move and end events,
dispatching columnStartResizing, columnResizing and columnEndResizing as
the pointer moves. Every header under the dragged one scales by the same
fraction of the dragged header's starting width. The listeners are
removed when the drag ends, whichever way it ends.

Plugin order matters: ResizeColumns must be registered after FlexLayout,
and New returns an error wrapping ErrPluginOrder otherwise.

# Backends

	backend/opengl  GLFW input and an OpenGL renderer for Canvas
	backend/term    bubbletea model rendering headers with lipgloss
	backend/html    templ components rendering computed props
*/
package table
