package tilemap_test

import (
	"slices"
	"testing"

	"github.com/eak1mov/go-tilemap/tile"
	"github.com/eak1mov/go-tilemap/tilemap"
	"github.com/stretchr/testify/require"
)

func TestHilbertTiles(t *testing.T) {
	for _, size := range [][2]uint32{{64, 64}, {128, 64}, {64, 256}} {
		m := tilemap.New(size[0], size[1])
		tiles := slices.Collect(m.HilbertTiles())
		require.Len(t, tiles, int(m.Size()))

		sorted := slices.Clone(tiles)
		slices.Sort(sorted)
		require.Equal(t, slices.Collect(m.RowMajorTiles()), sorted)

		require.Equal(t, m.Tile(0, 0), tiles[0])
		if size[0] == size[1] {
			for i := 1; i < len(tiles); i++ {
				require.Equal(t, uint32(1), m.DistanceManhattan(tiles[i-1], tiles[i]))
			}
		}
	}
}

func TestHilbertOrderSquares(t *testing.T) {
	for _, size := range [][2]uint32{{4096, 64}, {64, 1024}} {
		sizeX, sizeY := size[0], size[1]
		side := min(sizeX, sizeY)
		tiles := slices.Collect(tilemap.HilbertOrder(sizeX, sizeY))
		require.Len(t, tiles, int(sizeX*sizeY))

		seen := make([]bool, sizeX*sizeY)
		for i, ti := range tiles {
			require.False(t, seen[ti], "slot %d visited twice", ti)
			seen[ti] = true

			// Every square of side*side slots is finished before the next begins.
			square := uint32(i) / (side * side)
			x, y := uint32(ti)%sizeX, uint32(ti)/sizeX
			if sizeX > sizeY {
				require.Equal(t, square, x/side)
			} else {
				require.Equal(t, square, y/side)
			}
			if i%int(side*side) != 0 {
				px, py := uint32(tiles[i-1])%sizeX, uint32(tiles[i-1])/sizeX
				require.Equal(t, uint32(1), max(x, px)-min(x, px)+max(y, py)-min(y, py))
			}
		}
	}
}

func TestRowMajorTilesStop(t *testing.T) {
	m := tilemap.New(64, 64)
	var got []tile.Index
	for ti := range m.RowMajorTiles() {
		if ti == 3 {
			break
		}
		got = append(got, ti)
	}
	require.Equal(t, []tile.Index{0, 1, 2}, got)
}
