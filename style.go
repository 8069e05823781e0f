package table

// Theme controls how Paint draws a table on a pixel canvas.
type Theme struct {
	// Header colors
	HeaderBgColor       uint32
	HeaderResizingColor uint32 // header currently being dragged
	BorderColor         uint32

	// Row colors
	RowBgColor    uint32
	RowBgAltColor uint32

	// Resizer handle
	HandleColor         uint32
	HandleActiveColor   uint32
	HandleDisabledColor uint32 // 0 = not drawn

	// Drag indicator bar
	PreviewColor uint32

	// Sizing, in client pixels
	HeaderHeight float64
	RowHeight    float64
	HandleWidth  float64 // hit area at each header's right edge
	BorderSize   float32
	PreviewWidth float32
}

// DefaultTheme returns a neutral dark theme.
func DefaultTheme() Theme {
	return Theme{
		HeaderBgColor:       RGBA(40, 40, 40, 255),
		HeaderResizingColor: RGBA(55, 55, 65, 255),
		BorderColor:         RGBA(80, 80, 80, 255),

		RowBgColor:    RGBA(25, 25, 25, 255),
		RowBgAltColor: RGBA(35, 35, 35, 255),

		HandleColor:       RGBA(100, 100, 100, 255),
		HandleActiveColor: RGBA(50, 100, 150, 255),

		PreviewColor: ColorWhite,

		HeaderHeight: 24,
		RowHeight:    20,
		HandleWidth:  10,
		BorderSize:   1,
		PreviewWidth: 2,
	}
}

// GTATheme returns a GTA San Andreas-inspired theme.
// Cyan tinted headers with yellow accents.
func GTATheme() Theme {
	t := DefaultTheme()
	t.HeaderBgColor = RGBA(0, 60, 90, 255)
	t.HeaderResizingColor = RGBA(0, 90, 130, 255)
	t.BorderColor = RGBA(100, 100, 100, 255)
	t.RowBgColor = RGBA(0, 0, 0, 220)
	t.RowBgAltColor = RGBA(20, 20, 20, 220)
	t.HandleColor = RGBA(255, 200, 0, 255) // GTA yellow
	t.HandleActiveColor = RGBA(0, 150, 200, 255)
	t.PreviewColor = RGBA(255, 200, 0, 255)
	return t
}
