package table

// Rect is an axis-aligned rectangle in client pixels.
type Rect struct {
	X, Y float64 // top-left
	W, H float64
}

// Contains returns true if (x, y) is inside r. The right and bottom edges
// are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Vertex is one vertex of the painted geometry.
// Memory layout matches the OpenGL attribute setup in backend/opengl.
type Vertex struct {
	Pos   [2]float32
	Color uint32 // RGBA packed
}

// DrawCmd is a run of indices sharing one clip rectangle.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     [4]float32 // x1, y1, x2, y2
	VertexOffset uint32
	IndexOffset  uint32
}

// Colors, packed as 0xAABBGGRR for OpenGL.
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorGray        uint32 = 0xFF808080
	ColorDarkGray    uint32 = 0xFF404040
	ColorLightGray   uint32 = 0xFFC0C0C0
	ColorTransparent uint32 = 0x00000000
)

// RGBA packs 0-255 components.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA splits a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}
