package tilemap

import "github.com/eak1mov/go-tilemap/tile"

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

// DistanceManhattan returns |dx| + |dy|.
func (m *Map) DistanceManhattan(a, b tile.Index) uint32 {
	return absDiff(m.X(a), m.X(b)) + absDiff(m.Y(a), m.Y(b))
}

// DistanceSquare returns the squared Euclidean distance.
func (m *Map) DistanceSquare(a, b tile.Index) uint32 {
	dx, dy := absDiff(m.X(a), m.X(b)), absDiff(m.Y(a), m.Y(b))
	return dx*dx + dy*dy
}

// DistanceMax returns max(|dx|, |dy|).
func (m *Map) DistanceMax(a, b tile.Index) uint32 {
	return max(absDiff(m.X(a), m.X(b)), absDiff(m.Y(a), m.Y(b)))
}

// DistanceMaxPlusManhattan returns the Manhattan distance with the larger axis counted twice.
func (m *Map) DistanceMaxPlusManhattan(a, b tile.Index) uint32 {
	dx, dy := absDiff(m.X(a), m.X(b)), absDiff(m.Y(a), m.Y(b))
	if dx > dy {
		return 2*dx + dy
	}
	return 2*dy + dx
}

// DistanceFromEdge returns the distance to the closest map edge.
func (m *Map) DistanceFromEdge(t tile.Index) uint32 {
	xl, yl := m.X(t), m.Y(t)
	xh, yh := m.sizeX-1-xl, m.sizeY-1-yl
	return min(xl, yl, xh, yh)
}

// DistanceFromEdgeDir returns the distance to the playable map edge in direction d.
// The southern edges always carry a void border, the northern ones only without
// freeform edges. Cells on the border give -1.
func (m *Map) DistanceFromEdgeDir(t tile.Index, d tile.DiagDirection) int {
	freeform := 0
	if m.freeformEdges {
		freeform = 1
	}
	switch d {
	case tile.DiagDirNE:
		return int(m.X(t)) - freeform
	case tile.DiagDirNW:
		return int(m.Y(t)) - freeform
	case tile.DiagDirSW:
		return int(m.MaxX()) - int(m.X(t)) - 1
	case tile.DiagDirSE:
		return int(m.MaxY()) - int(m.Y(t)) - 1
	}
	panic("tilemap: invalid diagonal direction")
}
