package tilemap

import (
	"fmt"

	"github.com/eak1mov/go-tilemap/tile"
)

// Builder stages constructions spanning several cells and writes them on Commit.
// Staging works on copies of the records, so a construction whose preconditions
// fail panics before the map is touched.
type Builder struct {
	m       *Map
	slots   []tile.Index
	records []tile.Record
	staged  map[tile.Index]int
}

func (m *Map) NewBuilder() *Builder {
	return &Builder{m: m, staged: make(map[tile.Index]int)}
}

// record returns the staged copy of t, staging it on first use.
func (b *Builder) record(t tile.Index) *tile.Record {
	if i, ok := b.staged[t]; ok {
		return &b.records[i]
	}
	r := *b.m.Record(t)
	b.staged[t] = len(b.records)
	b.slots = append(b.slots, t)
	b.records = append(b.records, r)
	return &b.records[len(b.records)-1]
}

// peek returns the staged copy of t or the map record when it is not staged.
func (b *Builder) peek(t tile.Index) *tile.Record {
	if i, ok := b.staged[t]; ok {
		return &b.records[i]
	}
	return b.m.Record(t)
}

func (b *Builder) neighbour(t tile.Index, d tile.DiagDirection, what string) tile.Index {
	n := b.m.AddDiffCWrap(t, d.DiffC())
	if n == tile.Invalid {
		panic(fmt.Sprintf("tilemap: %s at (%d, %d) leaves the map", what, b.m.X(t), b.m.Y(t)))
	}
	return n
}

// Len returns the number of staged cells.
func (b *Builder) Len() int {
	return len(b.slots)
}

// Commit writes all staged cells to the map and resets the builder.
func (b *Builder) Commit() {
	b.m.logger.Debug("tilemap: commit", "cells", len(b.slots))
	for i, t := range b.slots {
		*b.m.Record(t) = b.records[i]
	}
	b.Discard()
}

// Discard drops all staged cells.
func (b *Builder) Discard() {
	b.slots = b.slots[:0]
	b.records = b.records[:0]
	clear(b.staged)
}

// stage runs fn on a scratch copy of the staged records so that a panic in fn
// leaves earlier stagings intact.
func (b *Builder) stage(fn func(s *Builder)) *Builder {
	s := &Builder{
		m:       b.m,
		slots:   append([]tile.Index(nil), b.slots...),
		records: append([]tile.Record(nil), b.records...),
		staged:  make(map[tile.Index]int, len(b.staged)),
	}
	for t, i := range b.staged {
		s.staged[t] = i
	}
	fn(s)
	b.slots, b.records, b.staged = s.slots, s.records, s.staged
	return b
}

// MakeLock builds a three cell lock centred on t, going uphill in direction d.
// Lower and upper cells that already are plain water keep their owner.
func (b *Builder) MakeLock(t tile.Index, o tile.Owner, d tile.DiagDirection, wcLower, wcUpper, wcMiddle tile.WaterClass) *Builder {
	return b.stage(func(s *Builder) {
		lower := s.neighbour(t, d.Reverse(), "lock")
		upper := s.neighbour(t, d, "lock")

		ownerOf := func(c tile.Index) tile.Owner {
			r := s.peek(c)
			if r.Kind() == tile.KindWater && r.Water().IsPlain() {
				return r.Owner()
			}
			return o
		}
		lowerOwner, upperOwner := ownerOf(lower), ownerOf(upper)

		tile.MakeLockPart(s.record(t), o, tile.LockMiddle, d, wcMiddle)
		tile.MakeLockPart(s.record(lower), lowerOwner, tile.LockLower, d, wcLower)
		tile.MakeLockPart(s.record(upper), upperOwner, tile.LockUpper, d, wcUpper)
	})
}

// MakeShipDepot builds a two cell ship depot whose northern half is t.
func (b *Builder) MakeShipDepot(t tile.Index, o tile.Owner, depot uint16, a tile.Axis, wcNorth, wcSouth tile.WaterClass) *Builder {
	return b.stage(func(s *Builder) {
		south := s.neighbour(t, tile.AxisToDiagDir(a), "ship depot")
		tile.MakeShipDepot(s.record(t), o, depot, tile.DepotNorth, a, wcNorth)
		tile.MakeShipDepot(s.record(south), o, depot, tile.DepotSouth, a, wcSouth)
	})
}

// Bridge describes the ramps of a bridge.
type Bridge struct {
	Owner     tile.Owner
	Type      uint8
	Transport tile.TransportType
	RailType  tile.RailType
	RoadType  tile.RoadType
	TramType  tile.RoadType
	RoadOwner tile.Owner
	TramOwner tile.Owner
}

func (br Bridge) makeRamp(r *tile.Record, d tile.DiagDirection) {
	switch br.Transport {
	case tile.TransportRail:
		tile.MakeRailBridgeRamp(r, br.Owner, br.Type, d, br.RailType)
	case tile.TransportRoad:
		tile.MakeRoadBridgeRamp(r, br.Owner, br.RoadOwner, br.TramOwner, br.Type, d, br.RoadType, br.TramType)
	case tile.TransportWater:
		tile.MakeAqueductRamp(r, br.Owner, d)
	default:
		panic(fmt.Sprintf("tilemap: invalid transport type %d", br.Transport))
	}
}

// MakeBridge builds ramps at both ends and marks the cells in between as lying
// under the bridge. The ends must share a row or column and the cells in
// between must not be under another bridge.
func (b *Builder) MakeBridge(start, end tile.Index, br Bridge) *Builder {
	return b.stage(func(s *Builder) {
		d, ok := s.m.DiagDirBetween(start, end)
		if !ok {
			panic(fmt.Sprintf("tilemap: bridge ends (%d, %d) and (%d, %d) are not aligned",
				s.m.X(start), s.m.Y(start), s.m.X(end), s.m.Y(end)))
		}
		delta := s.m.ToDiff(d.DiffC())
		for c := s.m.Add(start, delta); c != end; c = s.m.Add(c, delta) {
			if s.peek(c).IsBridgeAbove() {
				panic(fmt.Sprintf("tilemap: bridge already above (%d, %d)", s.m.X(c), s.m.Y(c)))
			}
		}

		br.makeRamp(s.record(start), d)
		br.makeRamp(s.record(end), d.Reverse())
		for c := s.m.Add(start, delta); c != end; c = s.m.Add(c, delta) {
			s.record(c).SetBridgeMiddle(d.Axis())
		}
	})
}

// Tunnel describes the portals of a tunnel.
type Tunnel struct {
	Owner     tile.Owner
	Transport tile.TransportType
	RailType  tile.RailType
	RoadType  tile.RoadType
	TramType  tile.RoadType
}

// MakeTunnel builds portals at both ends. The ends must share a row or column
// and lie at the same height.
func (b *Builder) MakeTunnel(start, end tile.Index, tn Tunnel) *Builder {
	return b.stage(func(s *Builder) {
		d, ok := s.m.DiagDirBetween(start, end)
		if !ok {
			panic(fmt.Sprintf("tilemap: tunnel ends (%d, %d) and (%d, %d) are not aligned",
				s.m.X(start), s.m.Y(start), s.m.X(end), s.m.Y(end)))
		}
		if zs, ze := s.m.MinHeight(start), s.m.MinHeight(end); zs != ze {
			panic(fmt.Sprintf("tilemap: tunnel ends at heights %d and %d", zs, ze))
		}
		for _, p := range [2]struct {
			t tile.Index
			d tile.DiagDirection
		}{{start, d}, {end, d.Reverse()}} {
			switch tn.Transport {
			case tile.TransportRail:
				tile.MakeRailTunnel(s.record(p.t), tn.Owner, p.d, tn.RailType)
			case tile.TransportRoad:
				tile.MakeRoadTunnel(s.record(p.t), tn.Owner, p.d, tn.RoadType, tn.TramType)
			default:
				panic(fmt.Sprintf("tilemap: invalid tunnel transport type %d", tn.Transport))
			}
		}
	})
}

// OtherShipDepotTile returns the other half of the ship depot at t.
func (m *Map) OtherShipDepotTile(t tile.Index) tile.Index {
	d := m.Record(t).ShipDepot()
	delta := m.DiffXY(1, 0)
	if d.Axis() != tile.AxisX {
		delta = m.DiffXY(0, 1)
	}
	if d.Part() != tile.DepotNorth {
		delta = -delta
	}
	return m.Add(t, delta)
}

// ShipDepotNorthTile returns the northern half of the ship depot at t.
func (m *Map) ShipDepotNorthTile(t tile.Index) tile.Index {
	return min(t, m.OtherShipDepotTile(t))
}

// bridgeEnd walks from t in direction d to the ramp facing back.
func (m *Map) bridgeEnd(t tile.Index, d tile.DiagDirection) tile.Index {
	back := d.Reverse()
	for {
		t = m.AddDiffCWrap(t, d.DiffC())
		if t == tile.Invalid {
			panic("tilemap: bridge without an end")
		}
		if m.IsBridgeTile(t) && m.Record(t).TunnelBridge().Direction() == back {
			return t
		}
	}
}

// OtherBridgeEnd returns the opposite ramp of the bridge ramp at t.
func (m *Map) OtherBridgeEnd(t tile.Index) tile.Index {
	tb := m.Record(t).TunnelBridge()
	if !tb.IsBridge() {
		panic("tilemap: tunnel is not a bridge")
	}
	return m.bridgeEnd(t, tb.Direction())
}

// NorthernBridgeEnd returns the northern ramp of the bridge passing over t.
func (m *Map) NorthernBridgeEnd(t tile.Index) tile.Index {
	return m.bridgeEnd(t, tile.AxisToDiagDir(m.Record(t).BridgeAxis()).Reverse())
}

// SouthernBridgeEnd returns the southern ramp of the bridge passing over t.
func (m *Map) SouthernBridgeEnd(t tile.Index) tile.Index {
	return m.bridgeEnd(t, tile.AxisToDiagDir(m.Record(t).BridgeAxis()))
}

// OtherTunnelEnd returns the opposite portal of the tunnel at t.
func (m *Map) OtherTunnelEnd(t tile.Index) tile.Index {
	tb := m.Record(t).TunnelBridge()
	if !tb.IsTunnel() {
		panic("tilemap: bridge is not a tunnel")
	}
	d := tb.Direction()
	back := d.Reverse()
	z := m.MinHeight(t)
	for {
		t = m.AddDiffCWrap(t, d.DiffC())
		if t == tile.Invalid {
			panic("tilemap: tunnel without an end")
		}
		if m.IsTunnelTile(t) && m.Record(t).TunnelBridge().Direction() == back && m.MinHeight(t) == z {
			return t
		}
	}
}
