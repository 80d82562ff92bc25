package tilemap

import (
	"fmt"

	"github.com/eak1mov/go-tilemap/tile"
)

// Diff is an offset between two slots of the same map.
type Diff int32

// TileSize is the number of sub-cell units along one side of a cell.
const TileSize = 16

// Tile returns the slot of (x, y).
func (m *Map) Tile(x, y uint32) tile.Index {
	if x >= m.sizeX || y >= m.sizeY {
		panic(fmt.Sprintf("tilemap: position (%d, %d) outside %dx%d map", x, y, m.sizeX, m.sizeY))
	}
	return tile.Index(y<<m.logX | x)
}

func (m *Map) X(t tile.Index) uint32 {
	return uint32(t) & (m.sizeX - 1)
}

func (m *Map) Y(t tile.Index) uint32 {
	return uint32(t) >> m.logX
}

// VirtXY returns the cell containing the sub-cell position (x, y).
func (m *Map) VirtXY(x, y uint32) tile.Index {
	return m.Tile(x/TileSize, y/TileSize)
}

// DiffXY returns the slot offset of moving dx cells along X and dy cells along Y.
func (m *Map) DiffXY(dx, dy int) Diff {
	return Diff(dy<<m.logX + dx)
}

func (m *Map) ToDiff(d tile.DiffC) Diff {
	return m.DiffXY(int(d.X), int(d.Y))
}

// Add offsets t by d without any range checks. The caller guarantees the
// result stays on the map.
func (m *Map) Add(t tile.Index, d Diff) tile.Index {
	return tile.Index(int64(t) + int64(d))
}

// AddXY offsets t by (dx, dy). Leaving the map panics.
func (m *Map) AddXY(t tile.Index, dx, dy int) tile.Index {
	x, y := int(m.X(t))+dx, int(m.Y(t))+dy
	if x < 0 || y < 0 || x >= int(m.sizeX) || y >= int(m.sizeY) {
		panic(fmt.Sprintf("tilemap: (%d, %d) + (%d, %d) leaves the map", m.X(t), m.Y(t), dx, dy))
	}
	return tile.Index(uint32(y)<<m.logX | uint32(x))
}

// AddWrap offsets t by (dx, dy) and returns tile.Invalid when the result would
// leave the map. With freeform edges the northern row and column are off-map too.
func (m *Map) AddWrap(t tile.Index, dx, dy int) tile.Index {
	x, y := int(m.X(t))+dx, int(m.Y(t))+dy
	if m.freeformEdges && (x == 0 || y == 0) {
		return tile.Invalid
	}
	if x < 0 || y < 0 || x >= int(m.sizeX) || y >= int(m.sizeY) {
		return tile.Invalid
	}
	return tile.Index(uint32(y)<<m.logX | uint32(x))
}

// AddDiffCWrap offsets t by d and returns tile.Invalid when the result would leave the map.
func (m *Map) AddDiffCWrap(t tile.Index, d tile.DiffC) tile.Index {
	x, y := int(m.X(t))+int(d.X), int(m.Y(t))+int(d.Y)
	if x < 0 || y < 0 || x >= int(m.sizeX) || y >= int(m.sizeY) {
		return tile.Invalid
	}
	return tile.Index(uint32(y)<<m.logX | uint32(x))
}

// DiffCBetween returns the coordinate offset from b to a.
func (m *Map) DiffCBetween(a, b tile.Index) tile.DiffC {
	return tile.DiffC{
		X: int16(int(m.X(a)) - int(m.X(b))),
		Y: int16(int(m.Y(a)) - int(m.Y(b))),
	}
}

func (m *Map) AddByDir(t tile.Index, d tile.Direction) tile.Index {
	return m.Add(t, m.ToDiff(d.DiffC()))
}

func (m *Map) AddByDiagDir(t tile.Index, d tile.DiagDirection) tile.Index {
	return m.Add(t, m.ToDiff(d.DiffC()))
}

// DiagDirBetween returns the direction from one cell to another on the same row
// or column. It reports false for equal cells and cells off a common axis.
func (m *Map) DiagDirBetween(from, to tile.Index) (tile.DiagDirection, bool) {
	dx := int(m.X(to)) - int(m.X(from))
	dy := int(m.Y(to)) - int(m.Y(from))
	switch {
	case dx == 0 && dy == 0, dx != 0 && dy != 0:
		return 0, false
	case dx == 0 && dy < 0:
		return tile.DiagDirNW, true
	case dx == 0:
		return tile.DiagDirSE, true
	case dx < 0:
		return tile.DiagDirNE, true
	default:
		return tile.DiagDirSW, true
	}
}

// RandomTile maps a random seed onto the map. Any seed gives a valid slot.
func (m *Map) RandomTile(seed uint32) tile.Index {
	return tile.Index(seed & (m.Size() - 1))
}

// ScaleByMapSize scales n, given for a 256x256 map, by the map area.
func (m *Map) ScaleByMapSize(n uint32) uint32 {
	return ceilDiv(n<<(m.logX+m.logY-12), 1<<4)
}

// ScaleByMapSize1D scales n, given for a 256x256 map, by the map circumference.
func (m *Map) ScaleByMapSize1D(n uint32) uint32 {
	return ceilDiv(n<<m.logX+n<<m.logY, 1<<9)
}

func ceilDiv(a, b uint32) uint32 {
	return (a + b - 1) / b
}
