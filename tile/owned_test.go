package tile_test

import (
	"testing"

	"github.com/eak1mov/go-tilemap/tile"
	"github.com/stretchr/testify/require"
)

func TestOwnerCrossView(t *testing.T) {
	for _, tc := range []struct {
		name  string
		make  func(r *tile.Record)
		owner func(r *tile.Record) tile.Owner
	}{
		{
			name:  "water",
			make:  func(r *tile.Record) { tile.MakeCanal(r, 0, 0) },
			owner: func(r *tile.Record) tile.Owner { return r.Water().Owner() },
		},
		{
			name:  "railway",
			make:  func(r *tile.Record) { tile.MakeRailNormal(r, 0, tile.TrackBitY, 1) },
			owner: func(r *tile.Record) tile.Owner { return r.Rail().Owner() },
		},
		{
			name:  "station",
			make:  func(r *tile.Record) { tile.MakeStation(r, 0, 1, tile.StationBus, 0, tile.WaterClassInvalid) },
			owner: func(r *tile.Record) tile.Owner { return r.Station().Owner() },
		},
		{
			name:  "tunnelbridge",
			make:  func(r *tile.Record) { tile.MakeRailTunnel(r, 0, tile.DiagDirSE, 2) },
			owner: func(r *tile.Record) tile.Owner { return r.TunnelBridge().Owner() },
		},
		{
			name:  "object",
			make:  func(r *tile.Record) { tile.MakeObject(r, 0, 7, tile.WaterClassInvalid, 0) },
			owner: func(r *tile.Record) tile.Owner { return r.Object().Owner() },
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			for _, o := range []tile.Owner{0, 5, 14, tile.OwnerTown, tile.OwnerNone, tile.OwnerDeity} {
				var r tile.Record
				tc.make(&r)
				r.SetOwner(o)
				require.Equal(t, o, tc.owner(&r))
				require.Equal(t, o, r.Owner())
				require.True(t, r.IsOwner(o))
			}
		})
	}
}

func TestOwnerlessKinds(t *testing.T) {
	var house, industry tile.Record
	tile.MakeHouse(&house, 1, 0, tile.HouseCompleted, 10, 0, 0)
	tile.MakeIndustry(&industry, 1, 10, 0, tile.WaterClassInvalid)

	for _, r := range []*tile.Record{&house, &industry} {
		require.False(t, r.HasOwner())
		require.Panics(t, func() { r.Owner() })
		require.Panics(t, func() { r.SetOwner(1) })
	}
}

func TestWaterClassKinds(t *testing.T) {
	withWaterClass := map[tile.Kind]bool{
		tile.KindWater:    true,
		tile.KindStation:  true,
		tile.KindIndustry: true,
		tile.KindObject:   true,
		tile.KindTrees:    true,
	}
	for _, k := range tile.Kinds() {
		var r tile.Record
		r.ChangeKind(k)
		require.Equal(t, withWaterClass[k], r.HasWaterClass(), k.String())
		if withWaterClass[k] {
			r.SetWaterClass(tile.WaterClassRiver)
			require.Equal(t, tile.WaterClassRiver, r.WaterClass())
			require.True(t, r.IsOnWater())
		} else {
			require.Panics(t, func() { r.SetWaterClass(tile.WaterClassSea) })
		}
	}
}

func TestDocking(t *testing.T) {
	canDock := map[tile.Kind]bool{
		tile.KindWater:        true,
		tile.KindRailway:      true,
		tile.KindStation:      true,
		tile.KindTunnelBridge: true,
	}
	for _, k := range tile.Kinds() {
		var r tile.Record
		r.ChangeKind(k)
		require.Equal(t, canDock[k], r.CanDock(), k.String())
		if canDock[k] {
			r.SetDocking(true)
			require.True(t, r.IsDocking())
			r.SetDocking(false)
			require.False(t, r.IsDocking())
		} else {
			require.Panics(t, func() { r.SetDocking(true) })
			require.False(t, r.IsDocking())
		}
	}
}

func TestAnimationFrame(t *testing.T) {
	var r tile.Record
	tile.MakeObject(&r, 1, 1, tile.WaterClassInvalid, 0)
	r.SetAnimationFrame(42)
	require.Equal(t, uint8(42), r.AnimationFrame())

	tile.MakeSea(&r)
	require.Panics(t, func() { r.AnimationFrame() })
}

func TestTownIndex(t *testing.T) {
	var r tile.Record
	tile.MakeRoadNormal(&r, tile.RoadX, 0, tile.InvalidRoadType, 77, tile.OwnerTown, tile.OwnerNone)
	require.Equal(t, uint16(77), r.TownIndex())

	tile.MakeRoadDepot(&r, 1, 5, tile.DiagDirNE, 0, tile.InvalidRoadType)
	require.Panics(t, func() { r.TownIndex() })
	require.Equal(t, uint16(5), r.DepotIndex())
}
