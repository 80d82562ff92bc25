package tilemap

import "github.com/eak1mov/go-tilemap/tile"

// Slope is the set of corners raised above the lowest corner of a cell.
type Slope uint8

const (
	SlopeFlat  Slope = 0
	SlopeW     Slope = 1 << 0
	SlopeS     Slope = 1 << 1
	SlopeE     Slope = 1 << 2
	SlopeN     Slope = 1 << 3
	SlopeSteep Slope = 1 << 4
)

// TileHeightUnit is the height of one height level in pixels.
const TileHeightUnit = 8

func (s Slope) IsSteep() bool {
	return s&SlopeSteep != 0
}

// HeightFunc returns the height level of a corner that may lie outside the map.
type HeightFunc func(x, y int) int

// SlopeFromCorners returns the slope of a cell with the given corner heights
// together with its lowest corner height. Corners are assumed to differ by at
// most two levels.
func SlopeFromCorners(n, w, e, s int) (Slope, int) {
	lo := min(n, w, e, s)
	hi := max(n, w, e, s)

	var slope Slope
	if n != lo {
		slope |= SlopeN
	}
	if w != lo {
		slope |= SlopeW
	}
	if e != lo {
		slope |= SlopeE
	}
	if s != lo {
		slope |= SlopeS
	}
	if hi-lo == 2 {
		slope |= SlopeSteep
	}
	return slope, lo
}

// CornerHeights returns the heights of the north, west, east and south corners of t.
// The north corner is stored in t itself, the others in the neighbours along X, Y
// and both. Neighbours beyond the last row or column fold back onto it.
func (m *Map) CornerHeights(t tile.Index) (n, w, e, s int) {
	x1, y1 := m.X(t), m.Y(t)
	x2, y2 := min(x1+1, m.MaxX()), min(y1+1, m.MaxY())
	n = m.Height(t)
	w = m.Height(m.Tile(x2, y1))
	e = m.Height(m.Tile(x1, y2))
	s = m.Height(m.Tile(x2, y2))
	return n, w, e, s
}

// TileSlope returns the slope of t and its lowest corner height.
func (m *Map) TileSlope(t tile.Index) (Slope, int) {
	return SlopeFromCorners(m.CornerHeights(t))
}

// IsFlat reports whether all four corners of t have the same height and returns it.
func (m *Map) IsFlat(t tile.Index) (bool, int) {
	n, w, e, s := m.CornerHeights(t)
	if w != n || e != n || s != n {
		return false, 0
	}
	return true, n
}

func (m *Map) MinHeight(t tile.Index) int {
	n, w, e, s := m.CornerHeights(t)
	return min(n, w, e, s)
}

func (m *Map) MaxHeight(t tile.Index) int {
	n, w, e, s := m.CornerHeights(t)
	return max(n, w, e, s)
}

// HeightOutsideMap returns the height of any position, clamping it onto the map.
func (m *Map) HeightOutsideMap(x, y int) int {
	x = min(max(x, 0), int(m.MaxX()))
	y = min(max(y, 0), int(m.MaxY()))
	return m.Height(m.Tile(uint32(x), uint32(y)))
}

// SlopeOutsideMap returns the slope of the cell at (x, y), which may lie outside
// the map, together with its lowest corner in pixels. Corner heights come from
// height, or from HeightOutsideMap when height is nil.
func (m *Map) SlopeOutsideMap(x, y int, height HeightFunc) (Slope, int) {
	if height == nil {
		height = m.HeightOutsideMap
	}
	slope, z := SlopeFromCorners(height(x, y), height(x+1, y), height(x, y+1), height(x+1, y+1))
	return slope, z * TileHeightUnit
}
