package table

// FlexLayoutName is the registration name of the flex layout plugin.
const FlexLayoutName = "useFlexLayout"

// FlexLayout lays the table out with flexbox. Rows stretch to fill the
// table and grow from their minimum width; headers and cells get their
// aggregated pixel widths.
func FlexLayout() Plugin {
	return Plugin{
		Name: FlexLayoutName,
		Register: func(h *Hooks) {
			h.Register(HookTableProps, PropGetterFunc(flexTableProps))
			h.Register(HookTableBodyProps, StaticProps{
				StyleKey: Style{"boxSizing": "border-box"},
			})
			h.Register(HookRowProps, PropGetterFunc(flexRowStyles))
			h.Register(HookHeaderGroupProps, PropGetterFunc(flexRowStyles))
			h.Register(HookFooterGroupProps, PropGetterFunc(flexRowStyles))
			h.Register(HookHeaderProps, PropGetterFunc(flexHeaderProps))
			h.Register(HookCellProps, PropGetterFunc(flexCellProps))
			h.Register(HookFooterProps, PropGetterFunc(flexFooterProps))
		},
	}
}

func flexTableProps(props Props, meta Meta) (Props, Props) {
	return props, Props{StyleKey: Style{
		"display":       "flex",
		"flexDirection": "column",
		"boxSizing":     "border-box",
		"minWidth":      Px(meta.Instance.TotalColumnsWidth()),
	}}
}

func flexRowStyles(props Props, meta Meta) (Props, Props) {
	return props, Props{StyleKey: Style{
		"boxSizing": "border-box",
		"display":   "flex",
		"flex":      "1 0 auto",
		"minWidth":  Px(meta.Instance.TotalColumnsMinWidth()),
	}}
}

func flexHeaderProps(props Props, meta Meta) (Props, Props) {
	return props, Props{StyleKey: Style{
		"display":   "inline-flex",
		"boxSizing": "border-box",
		"width":     Px(meta.Column.TotalWidth),
	}}
}

func flexCellProps(props Props, meta Meta) (Props, Props) {
	return props, Props{StyleKey: Style{
		"display":   "inline-flex",
		"boxSizing": "border-box",
		"width":     Px(meta.Cell.Column.TotalWidth),
	}}
}

func flexFooterProps(props Props, meta Meta) (Props, Props) {
	col := meta.Column
	var flex any
	if col.TotalFlexWidth != 0 {
		flex = formatNumber(col.TotalFlexWidth) + " 0 auto"
	}
	return props, Props{StyleKey: Style{
		"boxSizing": "border-box",
		"flex":      flex,
		"minWidth":  Px(col.TotalMinWidth),
		"width":     Px(col.TotalWidth),
	}}
}
