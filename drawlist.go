package table

import (
	"math"
	"sync"
)

var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 256),
			IdxBuffer: make([]uint16, 0, 512),
			CmdBuffer: make([]DrawCmd, 0, 4),
			clipStack: make([][4]float32, 0, 4),
		}
	},
}

// AcquireDrawList takes a cleared DrawList from the pool.
// Hand it back with ReleaseDrawList.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns dl to the pool.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList collects the triangles for one paint of the table.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack    [][4]float32
	currentClip  [4]float32
	cmdOffset    uint32 // first vertex of the open command
	idxCmdOffset uint32 // first index of the open command
}

// Clear empties dl, keeping capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect clips subsequent primitives to the given rectangle.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{x1, y1, x2, y2}
	dl.splitDraw()
}

// PopClipRect restores the previous clip rectangle.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	dl.currentClip = dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	dl.splitDraw()
}

func (dl *DrawList) splitDraw() {
	dl.closeCommand()
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

func (dl *DrawList) closeCommand() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
}

// addQuad appends four vertices and the two triangles covering them.
func (dl *DrawList) addQuad(a, b, c, d [2]float32, color uint32) {
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
	idx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer,
		Vertex{Pos: a, Color: color},
		Vertex{Pos: b, Color: color},
		Vertex{Pos: c, Color: color},
		Vertex{Pos: d, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle. Fully transparent colors draw nothing.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 || w <= 0 || h <= 0 {
		return
	}
	dl.addQuad(
		[2]float32{x, y},
		[2]float32{x + w, y},
		[2]float32{x + w, y + h},
		[2]float32{x, y + h},
		color,
	)
}

// AddRectOutline draws the four edges of a rectangle inside its bounds.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddLine draws a line of the given thickness as a quad.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dx, dy := x2-x1, y2-y1
	inv := float32(1)
	if dx != 0 || dy != 0 {
		inv = float32(1 / math.Sqrt(float64(dx*dx+dy*dy)))
	}
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5
	dl.addQuad(
		[2]float32{x1 + nx, y1 + ny},
		[2]float32{x2 + nx, y2 + ny},
		[2]float32{x2 - nx, y2 - ny},
		[2]float32{x1 - nx, y1 - ny},
		color,
	)
}

// Finalize closes the open command and drops empty ones.
// Call it once all primitives are added.
func (dl *DrawList) Finalize() {
	dl.closeCommand()
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
