package tilemap_test

import (
	"testing"

	"github.com/eak1mov/go-tilemap/internal"
	"github.com/eak1mov/go-tilemap/tile"
	"github.com/eak1mov/go-tilemap/tilemap"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func requireSameMap(t *testing.T, want, got *tilemap.Map) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmp.Comparer(equalMaps)); diff != "" {
		t.Fatalf("map mismatch (-want +got):\n%s", diff)
	}
}

func TestMakeLock(t *testing.T) {
	m := internal.ClearMap(t, 64, 64, 0)
	upper := m.Tile(10, 11)
	tile.MakeCanal(m.Record(upper), 3, 0)

	m.NewBuilder().
		MakeLock(m.Tile(10, 10), 1, tile.DiagDirSE, tile.WaterClassSea, tile.WaterClassCanal, tile.WaterClassRiver).
		Commit()

	for _, tc := range []struct {
		x, y  uint32
		part  tile.LockPart
		owner tile.Owner
		wc    tile.WaterClass
	}{
		{10, 9, tile.LockLower, 1, tile.WaterClassSea},
		{10, 10, tile.LockMiddle, 1, tile.WaterClassRiver},
		{10, 11, tile.LockUpper, 3, tile.WaterClassCanal},
	} {
		r := m.Record(m.Tile(tc.x, tc.y))
		require.Equal(t, tc.part, r.Lock().Part())
		require.Equal(t, tile.DiagDirSE, r.Lock().Direction())
		require.Equal(t, tc.owner, r.Owner())
		require.Equal(t, tc.wc, r.WaterClass())
		require.True(t, m.IsLockTile(m.Tile(tc.x, tc.y)))
	}
}

func TestMakeLockAtEdge(t *testing.T) {
	m := internal.ClearMap(t, 64, 64, 0)
	before := m.Clone()
	b := m.NewBuilder()
	require.PanicsWithValue(t, "tilemap: lock at (10, 0) leaves the map", func() {
		b.MakeLock(m.Tile(10, 0), 1, tile.DiagDirSE, tile.WaterClassSea, tile.WaterClassSea, tile.WaterClassSea)
	})
	require.Zero(t, b.Len())
	b.Commit()
	requireSameMap(t, before, m)
}

func TestBuilderKeepsEarlierStaging(t *testing.T) {
	m := internal.ClearMap(t, 64, 64, 0)
	b := m.NewBuilder()
	b.MakeShipDepot(m.Tile(5, 5), 2, 7, tile.AxisX, tile.WaterClassSea, tile.WaterClassSea)
	require.Panics(t, func() {
		b.MakeLock(m.Tile(0, 20), 1, tile.DiagDirSW, tile.WaterClassSea, tile.WaterClassSea, tile.WaterClassSea)
	})
	require.Equal(t, 2, b.Len())
	require.False(t, m.IsShipDepotTile(m.Tile(5, 5)))

	b.Commit()
	require.True(t, m.IsShipDepotTile(m.Tile(5, 5)))
	require.True(t, m.IsShipDepotTile(m.Tile(6, 5)))
	require.Equal(t, tile.KindClear, m.Record(m.Tile(1, 20)).Kind())

	b.MakeShipDepot(m.Tile(20, 20), 2, 8, tile.AxisX, tile.WaterClassSea, tile.WaterClassSea)
	b.Discard()
	b.Commit()
	require.False(t, m.IsShipDepotTile(m.Tile(20, 20)))
}

func TestMakeShipDepot(t *testing.T) {
	m := internal.ClearMap(t, 64, 64, 0)
	north, south := m.Tile(5, 5), m.Tile(5, 6)
	m.NewBuilder().MakeShipDepot(north, 2, 7, tile.AxisY, tile.WaterClassSea, tile.WaterClassCanal).Commit()

	require.Equal(t, tile.DepotNorth, m.Record(north).ShipDepot().Part())
	require.Equal(t, tile.DepotSouth, m.Record(south).ShipDepot().Part())
	require.Equal(t, tile.WaterClassCanal, m.Record(south).WaterClass())
	require.Equal(t, uint16(7), m.Record(south).DepotIndex())

	require.Equal(t, south, m.OtherShipDepotTile(north))
	require.Equal(t, north, m.OtherShipDepotTile(south))
	require.Equal(t, north, m.ShipDepotNorthTile(south))
	require.Equal(t, north, m.ShipDepotNorthTile(north))
	require.True(t, m.HasWaterGround(north))
}

func TestMakeBridge(t *testing.T) {
	m := internal.ClearMap(t, 64, 64, 0)
	start, end := m.Tile(10, 20), m.Tile(14, 20)
	m.NewBuilder().MakeBridge(start, end, tilemap.Bridge{
		Owner:     1,
		Type:      3,
		Transport: tile.TransportRail,
		RailType:  2,
	}).Commit()

	require.True(t, m.IsBridgeTile(start))
	require.True(t, m.IsBridgeTile(end))
	require.Equal(t, tile.DiagDirSW, m.Record(start).TunnelBridge().Direction())
	require.Equal(t, tile.DiagDirNE, m.Record(end).TunnelBridge().Direction())
	require.Equal(t, tile.RailType(2), m.Record(end).RailType())
	require.Equal(t, uint8(3), m.Record(end).TunnelBridge().BridgeType())

	for x := uint32(11); x <= 13; x++ {
		r := m.Record(m.Tile(x, 20))
		require.Equal(t, tile.KindClear, r.Kind())
		require.Equal(t, tile.AxisX, r.BridgeAxis())
	}
	require.False(t, m.Record(start).IsBridgeAbove())

	require.Equal(t, end, m.OtherBridgeEnd(start))
	require.Equal(t, start, m.OtherBridgeEnd(end))
	require.Equal(t, start, m.NorthernBridgeEnd(m.Tile(12, 20)))
	require.Equal(t, end, m.SouthernBridgeEnd(m.Tile(12, 20)))
}

func TestMakeBridgeRejected(t *testing.T) {
	m := internal.ClearMap(t, 64, 64, 0)
	m.NewBuilder().MakeBridge(m.Tile(10, 20), m.Tile(14, 20), tilemap.Bridge{
		Owner:     1,
		Transport: tile.TransportRoad,
		RoadType:  0,
		TramType:  tile.InvalidRoadType,
		RoadOwner: 1,
		TramOwner: tile.OwnerNone,
	}).Commit()
	before := m.Clone()

	b := m.NewBuilder()
	require.PanicsWithValue(t, "tilemap: bridge already above (12, 20)", func() {
		b.MakeBridge(m.Tile(12, 18), m.Tile(12, 22), tilemap.Bridge{Owner: 2, Transport: tile.TransportWater})
	})
	require.PanicsWithValue(t, "tilemap: bridge ends (1, 1) and (2, 2) are not aligned", func() {
		b.MakeBridge(m.Tile(1, 1), m.Tile(2, 2), tilemap.Bridge{Owner: 2, Transport: tile.TransportWater})
	})
	b.Commit()
	requireSameMap(t, before, m)
}

func TestMakeTunnel(t *testing.T) {
	m := internal.ClearMap(t, 64, 64, 0)
	start, end := m.Tile(30, 5), m.Tile(30, 12)
	m.NewBuilder().MakeTunnel(start, end, tilemap.Tunnel{
		Owner:     2,
		Transport: tile.TransportRoad,
		RoadType:  0,
		TramType:  tile.InvalidRoadType,
	}).Commit()

	require.True(t, m.IsTunnelTile(start))
	require.True(t, m.IsTunnelTile(end))
	require.Equal(t, tile.DiagDirSE, m.Record(start).TunnelBridge().Direction())
	require.Equal(t, tile.DiagDirNW, m.Record(end).TunnelBridge().Direction())
	require.Equal(t, end, m.OtherTunnelEnd(start))
	require.Equal(t, start, m.OtherTunnelEnd(end))
	require.Equal(t, tile.Owner(2), m.Record(end).RoadOwner())

	internal.SetHeights(m, 40, 5, [][]uint8{{2, 2}, {2, 2}})
	before := m.Clone()
	require.PanicsWithValue(t, "tilemap: tunnel ends at heights 2 and 0", func() {
		m.NewBuilder().MakeTunnel(m.Tile(40, 5), m.Tile(40, 20), tilemap.Tunnel{Owner: 2, Transport: tile.TransportRail})
	})
	requireSameMap(t, before, m)
}
