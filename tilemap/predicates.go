package tilemap

import "github.com/eak1mov/go-tilemap/tile"

// IsWaterTile reports whether t is plain water: sea, canal or river without coast, lock or depot.
func (m *Map) IsWaterTile(t tile.Index) bool {
	r := m.Record(t)
	return r.Kind() == tile.KindWater && r.Water().IsPlain()
}

// IsCoastTile reports whether t is a coast cell or trees standing on the shore.
func (m *Map) IsCoastTile(t tile.Index) bool {
	r := m.Record(t)
	switch r.Kind() {
	case tile.KindWater:
		return r.Water().IsCoast()
	case tile.KindTrees:
		return r.WaterClass() != tile.WaterClassInvalid
	}
	return false
}

func (m *Map) IsShipDepotTile(t tile.Index) bool {
	r := m.Record(t)
	return r.Kind() == tile.KindWater && r.Water().IsShipDepot()
}

func (m *Map) IsLockTile(t tile.Index) bool {
	r := m.Record(t)
	return r.Kind() == tile.KindWater && r.Water().IsLock()
}

// HasWaterGround reports whether the ground of t is water, excluding coasts.
func (m *Map) HasWaterGround(t tile.Index) bool {
	r := m.Record(t)
	return r.HasWaterClass() && r.IsOnWater() && !m.IsCoastTile(t)
}

func (m *Map) IsDockingTile(t tile.Index) bool {
	return m.Record(t).IsDocking()
}

func (m *Map) IsBridgeTile(t tile.Index) bool {
	r := m.Record(t)
	return r.Kind() == tile.KindTunnelBridge && r.TunnelBridge().IsBridge()
}

func (m *Map) IsTunnelTile(t tile.Index) bool {
	r := m.Record(t)
	return r.Kind() == tile.KindTunnelBridge && r.TunnelBridge().IsTunnel()
}

func (m *Map) IsRoadDepotTile(t tile.Index) bool {
	r := m.Record(t)
	return r.Kind() == tile.KindRoad && r.RoadTileType() == tile.RoadTileDepot
}

func (m *Map) IsRailDepotTile(t tile.Index) bool {
	r := m.Record(t)
	return r.Kind() == tile.KindRailway && r.RailTileType() == tile.RailTileDepot
}

// TileOwner returns the owner of t and false for kinds without one.
func (m *Map) TileOwner(t tile.Index) (tile.Owner, bool) {
	r := m.Record(t)
	if !r.HasOwner() {
		return 0, false
	}
	return r.Owner(), true
}
