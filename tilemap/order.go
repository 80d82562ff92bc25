package tilemap

import (
	"iter"

	"github.com/eak1mov/go-tilemap/tile"
	"github.com/google/hilbert"
)

// HilbertTiles returns an iterator over all slots along a Hilbert curve covering
// the map. Neighbouring slots in the sequence are neighbouring cells, which keeps
// runs of similar records together.
func (m *Map) HilbertTiles() iter.Seq[tile.Index] {
	return HilbertOrder(m.sizeX, m.sizeY)
}

// RowMajorTiles returns an iterator over all slots in storage order.
func (m *Map) RowMajorTiles() iter.Seq[tile.Index] {
	return RowMajorOrder(m.sizeX, m.sizeY)
}

// HilbertOrder is HilbertTiles for a map of the given size. Sizes are powers of
// two, so a non-square map splits into squares of the shorter side laid out along
// the longer one, each walked on its own curve.
func HilbertOrder(sizeX, sizeY uint32) iter.Seq[tile.Index] {
	return func(yield func(tile.Index) bool) {
		side := min(sizeX, sizeY)
		h, err := hilbert.NewHilbert(int(side))
		if err != nil {
			panic(err)
		}
		for square := range max(sizeX, sizeY) / side {
			offsetX, offsetY := square*side, uint32(0)
			if sizeY > sizeX {
				offsetX, offsetY = 0, square*side
			}
			for code := range int(side) * int(side) {
				x, y, err := h.Map(code)
				if err != nil {
					panic(err)
				}
				t := (offsetY+uint32(y))*sizeX + offsetX + uint32(x)
				if !yield(tile.Index(t)) {
					return
				}
			}
		}
	}
}

// RowMajorOrder is RowMajorTiles for a map of the given size.
func RowMajorOrder(sizeX, sizeY uint32) iter.Seq[tile.Index] {
	return func(yield func(tile.Index) bool) {
		for t := range tile.Index(sizeX * sizeY) {
			if !yield(t) {
				return
			}
		}
	}
}
