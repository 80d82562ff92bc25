// Package terrain fills tile maps with deterministic pseudo-random landscapes.
package terrain

import (
	"log/slog"
	"math/rand/v2"

	"github.com/eak1mov/go-tilemap/tile"
	"github.com/eak1mov/go-tilemap/tilemap"
)

const numTreeTypes = 8

type Params struct {
	Seed uint64
	// Peaks is the number of hills. Zero picks a count scaled by map size.
	Peaks int
	// MaxHeight bounds the height of every corner.
	MaxHeight uint8
	// TreeChance is the probability of a land cell getting trees.
	TreeChance float64
	Logger     *slog.Logger
}

func DefaultParams() Params {
	return Params{
		Seed:       1,
		MaxHeight:  15,
		TreeChance: 0.25,
	}
}

// Generate overwrites every record of m. Corner heights of neighbouring cells,
// diagonal ones included, differ by at most one, and the map border is at height
// zero. Cells with all corners at zero become sea, cells touching zero become
// shore, the rest is grass or trees. Border cells that are not part of the
// playable area become void.
func Generate(m *tilemap.Map, p Params) {
	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	rng := rand.New(rand.NewPCG(p.Seed, p.Seed^0x5DEECE66D))

	peaks := p.Peaks
	if peaks == 0 {
		peaks = int(m.ScaleByMapSize(64))
	}
	logger.Debug("terrain: heights", "peaks", peaks, "maxHeight", p.MaxHeight)

	heights := make([]int, m.Size())
	for range peaks {
		t := m.RandomTile(rng.Uint32())
		heights[t] = max(heights[t], 1+rng.IntN(max(int(p.MaxHeight), 1)))
	}
	spread(m, heights)

	for t := range tile.Index(m.Size()) {
		x, y := m.X(t), m.Y(t)
		edge := min(x, y, m.MaxX()-x, m.MaxY()-y)
		h := min(heights[t], int(edge), int(p.MaxHeight))
		m.Record(t).SetHeight(uint8(h))
	}

	logger.Debug("terrain: ground")
	for t := range tile.Index(m.Size()) {
		r := m.Record(t)
		switch {
		case isBorder(m, t):
			tile.MakeVoid(r)
		case m.MaxHeight(t) == 0:
			tile.MakeSea(r)
		case m.MinHeight(t) == 0:
			tile.MakeShore(r)
		case rng.Float64() < p.TreeChance:
			tile.MakeTrees(r, tile.TreeType(rng.IntN(numTreeTypes)), uint8(1+rng.IntN(4)),
				tile.MaxTreeGrowth, tile.TreeGroundGrass, 3)
		default:
			tile.MakeClear(r, tile.GroundGrass, uint8(rng.IntN(4)))
		}
	}
	logger.Debug("terrain: done")
}

// spread lowers the peaks by one per step in every direction, diagonals included,
// keeping the highest value at each cell. A forward and a backward pass over the
// grid are enough for the chessboard metric.
func spread(m *tilemap.Map, heights []int) {
	sx, sy := int(m.SizeX()), int(m.SizeY())
	at := func(x, y int) int {
		if x < 0 || y < 0 || x >= sx || y >= sy {
			return 0
		}
		return heights[y*sx+x]
	}
	for y := range sy {
		for x := range sx {
			h := max(at(x-1, y), at(x-1, y-1), at(x, y-1), at(x+1, y-1)) - 1
			heights[y*sx+x] = max(heights[y*sx+x], h)
		}
	}
	for y := sy - 1; y >= 0; y-- {
		for x := sx - 1; x >= 0; x-- {
			h := max(at(x+1, y), at(x+1, y+1), at(x, y+1), at(x-1, y+1)) - 1
			heights[y*sx+x] = max(heights[y*sx+x], h)
		}
	}
}

// isBorder reports whether t lies outside the playable area: the last row and
// column, and with freeform edges also the first ones.
func isBorder(m *tilemap.Map, t tile.Index) bool {
	x, y := m.X(t), m.Y(t)
	if x == m.MaxX() || y == m.MaxY() {
		return true
	}
	return m.FreeformEdges() && (x == 0 || y == 0)
}
