package tilemap

import (
	"fmt"

	"github.com/eak1mov/go-tilemap/tile"
)

// CircularTileSearch tests the cells of a size by size square around t, moving
// outwards ring by ring, and returns the first cell accepted by test. Cells off
// the map are skipped. Each ring is walked NE, SE, SW, NW starting at its
// western corner, so the order is fixed for a given start.
func (m *Map) CircularTileSearch(t tile.Index, size uint32, test func(tile.Index) bool) (tile.Index, bool) {
	if size == 0 {
		panic("tilemap: circular search of size 0")
	}
	x, y := int(m.X(t)), int(m.Y(t))
	if size%2 == 1 {
		if test(t) {
			return t, true
		}
		// An odd square goes around the centre; start one cell north of it.
		return m.searchRings(x-1, y-1, size/2, 1, 1, test)
	}
	return m.searchRings(x, y, size/2, 0, 0, test)
}

// CircularTileSearchRect searches radius rings around a w by h rectangle. The
// first ring has t as its northern corner, so the rectangle starts one cell
// south of t on both axes and is not tested itself.
func (m *Map) CircularTileSearchRect(t tile.Index, radius, w, h uint32, test func(tile.Index) bool) (tile.Index, bool) {
	if radius == 0 {
		panic(fmt.Sprintf("tilemap: circular search of radius %d", radius))
	}
	return m.searchRings(int(m.X(t)), int(m.Y(t)), radius, w, h, test)
}

func (m *Map) searchRings(ox, oy int, radius, w, h uint32, test func(tile.Index) bool) (tile.Index, bool) {
	x, y := ox+int(w)+1, oy
	extent := [4]uint32{w, h, w, h}
	west := tile.DirW.DiffC()

	for n := range radius {
		for _, d := range tile.DiagDirections() {
			step := d.DiffC()
			for j := extent[d] + n*2 + 1; j != 0; j-- {
				if x >= 0 && y >= 0 && x < int(m.sizeX) && y < int(m.sizeY) {
					t := tile.Index(uint32(y)<<m.logX | uint32(x))
					if test(t) {
						return t, true
					}
				}
				x += int(step.X)
				y += int(step.Y)
			}
		}
		x += int(west.X)
		y += int(west.Y)
	}
	return tile.Invalid, false
}

// ClosestWaterDistance returns the Manhattan distance from t to the closest cell
// whose water ground matches water, or 0 when t itself matches. Searching for
// water gives up at 0x7F, searching for land at 0x200. A search for land on a map
// with land beyond that range returns 0x1FF.
func (m *Map) ClosestWaterDistance(t tile.Index, water bool) uint32 {
	if m.HasWaterGround(t) == water {
		return 0
	}

	maxDist := uint32(0x200)
	if water {
		maxDist = 0x7F
	}
	minXY := 0
	if m.freeformEdges {
		minXY = 1
	}
	maxX, maxY := int(m.MaxX()), int(m.MaxY())
	ddx := [4]int{-1, 1, 1, -1}
	ddy := [4]int{1, 1, -1, -1}

	x, y := int(m.X(t)), int(m.Y(t))
	for dist := uint32(1); dist < maxDist; dist++ {
		y--
		for dir := range 4 {
			for range dist {
				if x >= minXY && x < maxX && y >= minXY && y < maxY {
					c := tile.Index(uint32(y)<<m.logX | uint32(x))
					if m.HasWaterGround(c) == water {
						return dist
					}
				}
				x += ddx[dir]
				y += ddy[dir]
			}
		}
	}

	if !water {
		for _, r := range m.records {
			if k := r.Kind(); k != tile.KindVoid && k != tile.KindWater {
				return 0x1FF
			}
		}
	}
	return maxDist
}
