package tile_test

import (
	"testing"

	"github.com/eak1mov/go-tilemap/tile"
	"github.com/stretchr/testify/require"
)

func TestWaterTiles(t *testing.T) {
	var r tile.Record

	tile.MakeRiver(&r, 0x3C)
	w := r.Water()
	require.True(t, w.IsRiver())
	require.False(t, w.IsSea())
	require.True(t, r.IsOnWater())
	require.Equal(t, tile.OwnerWater, r.Owner())
	require.Equal(t, uint8(0x3C), w.RandomBits())

	tile.MakeShore(&r)
	require.True(t, r.Water().IsCoast())
	require.False(t, r.Water().IsPlain())

	tile.MakeCanal(&r, 4, 0)
	require.True(t, r.Water().IsCanal())
	require.PanicsWithValue(t, "tile: canal owned by water", func() { tile.MakeCanal(&r, tile.OwnerWater, 0) })

	tile.MakeLockPart(&r, 2, tile.LockUpper, tile.DiagDirSW, tile.WaterClassRiver)
	require.True(t, r.Water().IsLock())
	require.Equal(t, tile.LockUpper, r.Lock().Part())
	require.Equal(t, tile.DiagDirSW, r.Lock().Direction())
	require.Panics(t, func() { r.ShipDepot() })

	tile.MakeShipDepot(&r, 2, 9, tile.DepotSouth, tile.AxisY, tile.WaterClassCanal)
	d := r.ShipDepot()
	require.Equal(t, tile.AxisY, d.Axis())
	require.Equal(t, tile.DepotSouth, d.Part())
	require.Equal(t, tile.DiagDirSE, d.Direction())
	require.Equal(t, uint16(9), d.Index())
	require.Equal(t, uint16(9), r.DepotIndex())
	require.Equal(t, tile.WaterClassCanal, r.WaterClass())
}

func TestClearTiles(t *testing.T) {
	var r tile.Record
	tile.MakeClear(&r, tile.GroundRough, 2)
	c := r.Clear()
	require.Equal(t, tile.GroundRough, c.Ground())
	require.Equal(t, uint8(2), c.Density())
	require.Equal(t, tile.OwnerNone, r.Owner())

	c.AddDensity(3)
	require.Equal(t, uint8(1), c.Density())
	c.SetCounter(7)
	c.AddCounter(1)
	require.Equal(t, uint8(0), c.Counter())
	require.Panics(t, func() { r.Field() })
}

func TestFieldsAndSnow(t *testing.T) {
	var r tile.Record
	tile.MakeField(&r, 5, 300)
	f := r.Field()
	require.Equal(t, uint8(5), f.Type())
	require.Equal(t, uint16(300), f.Industry())
	require.False(t, f.HasFences())

	for i, d := range tile.DiagDirections() {
		f.SetFence(d, uint8(i+1))
	}
	for i, d := range tile.DiagDirections() {
		require.Equal(t, uint8(i+1), f.Fence(d))
	}
	require.Equal(t, uint8(5), f.Type())

	tile.MakeSnow(&r, 1)
	c := r.Clear()
	require.True(t, c.IsSnow())
	require.Equal(t, tile.GroundSnow, c.Ground())
	require.Equal(t, tile.GroundGrass, c.RawGround())
	require.Equal(t, uint8(1), c.Density())
	require.Panics(t, func() { tile.MakeSnow(&r, 1) })

	tile.ClearSnow(&r)
	require.Equal(t, tile.GroundGrass, c.Ground())
	require.Equal(t, uint8(3), c.Density())
	require.Panics(t, func() { tile.ClearSnow(&r) })
}

func TestTrees(t *testing.T) {
	var r tile.Record
	tile.MakeTrees(&r, 12, 3, 2, tile.TreeGroundShore, 1)
	tr := r.Trees()
	require.Equal(t, tile.TreeType(12), tr.Type())
	require.Equal(t, uint8(3), tr.Count())
	require.Equal(t, uint8(2), tr.Growth())
	require.Equal(t, tile.TreeGroundShore, tr.Ground())
	require.Equal(t, uint8(1), tr.Density())
	require.Equal(t, tile.WaterClassSea, r.WaterClass())

	tr.AddCount(1)
	require.Equal(t, uint8(4), tr.Count())
	require.Panics(t, func() { tr.AddCount(1) })

	tr.AddGrowth(6)
	require.Equal(t, uint8(0), tr.Growth())
	tr.SetCounter(15)
	tr.AddCounter(2)
	require.Equal(t, uint8(1), tr.Counter())

	tile.MakeTrees(&r, 1, 1, 0, tile.TreeGroundRoughSnow, 3)
	require.Equal(t, tile.WaterClassInvalid, r.WaterClass())
	require.False(t, r.IsOnWater())
	require.Panics(t, func() { tile.MakeTrees(&r, 1, 5, 0, tile.TreeGroundGrass, 0) })
}

func TestHouseConstruction(t *testing.T) {
	var r tile.Record
	tile.MakeHouse(&r, 4, 0, 0, 300, 0x99, 17)
	h := r.House()
	require.Equal(t, uint16(300), h.Type())
	require.Equal(t, uint16(4), r.TownIndex())
	require.Equal(t, uint8(0x99), h.RandomBits())
	require.Equal(t, uint8(17), h.ProcessingTime())
	require.Equal(t, uint8(0), r.AnimationFrame())
	require.False(t, h.IsCompleted())

	for range 23 {
		h.IncConstructionTick()
	}
	require.False(t, h.IsCompleted())
	require.Equal(t, uint8(2), h.BuildingStage())
	require.Equal(t, uint8(7), h.ConstructionTick())
	require.Equal(t, uint8(0), h.Age())

	h.IncConstructionTick()
	require.True(t, h.IsCompleted())
	require.Equal(t, uint8(tile.HouseCompleted), h.BuildingStage())
	require.Equal(t, uint8(0), h.Age())

	h.IncrementAge()
	require.Equal(t, uint8(1), h.Age())
	h.ResetAge()
	require.Equal(t, uint8(0), h.Age())

	require.PanicsWithValue(t, "tile: kind is house, want clear", func() {
		tile.MakeHouse(&r, 4, 0, 0, 1, 0, 0)
	})
}

func TestHouseLift(t *testing.T) {
	var r tile.Record
	tile.MakeHouse(&r, 1, 0, tile.HouseCompleted, 511, 0, 0)
	h := r.House()
	require.Equal(t, uint16(511), h.Type())

	h.SetLiftDestination(5)
	require.True(t, h.LiftHasDestination())
	require.Equal(t, uint8(5), h.LiftDestination())
	h.SetLiftPosition(40)
	require.Equal(t, uint8(40), h.LiftPosition())

	h.HaltLift()
	require.False(t, h.LiftHasDestination())
	require.Equal(t, uint8(0), h.LiftDestination())

	h.SetTriggers(0x1F)
	require.Equal(t, uint8(0x1F), h.Triggers())
	require.True(t, h.IsCompleted())
	require.Equal(t, uint16(511), h.Type())

	h.SetProcessingTime(0)
	h.DecProcessingTime()
	require.Equal(t, uint8(63), h.ProcessingTime())
}

func TestIndustry(t *testing.T) {
	var r tile.Record
	tile.MakeIndustry(&r, 17, 0x1A5, 0x3E, tile.WaterClassSea)
	i := r.Industry()
	require.Equal(t, uint16(17), i.Index())
	require.Equal(t, uint16(0x1A5), i.Gfx())
	require.Equal(t, uint8(0x3E), i.RandomBits())
	require.Equal(t, tile.WaterClassSea, r.WaterClass())
	require.False(t, i.IsCompleted())

	i.SetConstructionStage(2)
	i.SetConstructionCounter(3)
	require.Equal(t, uint8(2), i.ConstructionStage())
	require.Equal(t, uint8(3), i.ConstructionCounter())

	i.SetCompleted()
	require.Equal(t, uint8(tile.IndustryCompleted), i.ConstructionStage())
	require.Equal(t, uint8(0x3E), i.RandomBits())
	require.Equal(t, tile.WaterClassSea, r.WaterClass())

	i.ResetConstruction()
	require.False(t, i.IsCompleted())
	require.Equal(t, uint8(0), i.ConstructionStage())
	require.Equal(t, tile.WaterClassSea, r.WaterClass())

	i.SetTriggers(5)
	require.Equal(t, uint8(5), i.Triggers())
	require.Equal(t, uint16(0x1A5), i.Gfx())
	require.Panics(t, func() { i.SetGfx(512) })
}

func TestRoads(t *testing.T) {
	var r tile.Record
	tile.MakeRoadNormal(&r, tile.RoadY, 1, 2, 8, 3, tile.OwnerNone)
	rd := r.Road()
	require.Equal(t, tile.RoadY, rd.Bits(tile.RoadTramRoad))
	require.Equal(t, tile.RoadY, rd.Bits(tile.RoadTramTram))
	require.Equal(t, tile.RoadType(1), r.RoadType())
	require.Equal(t, tile.RoadType(2), r.TramType())
	require.Equal(t, tile.Owner(3), r.RoadOwner())
	require.Equal(t, tile.OwnerNone, r.TramOwner())
	require.Equal(t, uint16(8), r.TownIndex())
	require.Panics(t, func() { r.RailType() })

	rd.SetRoadside(tile.RoadsideGrass)
	rd.StartRoadWorks()
	require.True(t, rd.HasRoadWorks())
	for range 14 {
		require.False(t, rd.IncRoadWorksCounter())
	}
	require.True(t, rd.IncRoadWorksCounter())
	rd.TerminateRoadWorks()
	require.Equal(t, tile.RoadsideGrass, rd.Roadside())

	rd.ToggleSnow()
	require.True(t, rd.IsOnSnow())
	require.Equal(t, tile.Owner(3), r.RoadOwner())

	tile.MakeRoadNormal(&r, tile.RoadX, 1, tile.InvalidRoadType, 8, 3, tile.OwnerNone)
	require.Equal(t, tile.RoadNone, r.Road().Bits(tile.RoadTramTram))
	require.False(t, r.HasRoadTypeOf(tile.RoadTramTram))
}

func TestRoadCrossing(t *testing.T) {
	var r tile.Record
	tile.MakeRoadCrossing(&r, 1, 2, 3, tile.AxisX, 5, 6, tile.InvalidRoadType, 11)
	c := r.Crossing()
	require.Equal(t, tile.AxisX, c.RoadAxis())
	require.Equal(t, tile.AxisY, c.RailAxis())
	require.Equal(t, tile.RoadX, c.RoadBits())
	require.Equal(t, tile.Owner(3), c.RailOwner())
	require.Equal(t, tile.Owner(3), r.Owner())
	require.Equal(t, tile.Owner(1), r.RoadOwner())
	require.Equal(t, tile.Owner(2), r.TramOwner())
	require.Equal(t, tile.RailType(5), r.RailType())
	require.Equal(t, tile.RoadType(6), r.RoadType())
	require.Equal(t, uint16(11), r.TownIndex())

	c.SetBarred(true)
	c.SetReserved(true)
	require.True(t, c.IsBarred())
	require.True(t, c.IsReserved())
	require.Equal(t, tile.AxisX, c.RoadAxis())
	require.Panics(t, func() { r.Road() })
}

func TestRoadDepot(t *testing.T) {
	var r tile.Record
	tile.MakeRoadDepot(&r, 4, 21, tile.DiagDirSW, 0, tile.InvalidRoadType)
	d := r.RoadDepot()
	require.Equal(t, tile.DiagDirSW, d.Direction())
	require.Equal(t, uint16(21), d.Index())
	require.Equal(t, tile.Owner(4), r.RoadOwner())
	require.Equal(t, tile.Owner(4), r.Owner())
	require.True(t, r.IsDepot())
}

func TestRail(t *testing.T) {
	var r tile.Record
	tile.MakeRailNormal(&r, 2, tile.TrackBitHorz, 7)
	rl := r.Rail()
	require.Equal(t, tile.TrackBitHorz, rl.TrackBits())
	require.True(t, rl.HasTrack(tile.TrackLower))
	require.False(t, rl.HasTrack(tile.TrackX))
	require.Equal(t, tile.RailType(7), r.RailType())
	require.False(t, rl.HasSignals())

	rl.SetHasSignals(true)
	rl.SetSignalType(tile.TrackUpper, tile.SignalPBS)
	rl.SetSignalType(tile.TrackLower, tile.SignalExit)
	rl.SetSignalVariant(tile.TrackLower, tile.SignalSemaphore)
	rl.SetPresentSignals(0xC)
	rl.SetSignalStates(0x4)
	require.True(t, rl.HasSignals())
	require.Equal(t, tile.SignalPBS, rl.SignalType(tile.TrackUpper))
	require.Equal(t, tile.SignalExit, rl.SignalType(tile.TrackLower))
	require.Equal(t, tile.SignalElectric, rl.SignalVariant(tile.TrackUpper))
	require.Equal(t, tile.SignalSemaphore, rl.SignalVariant(tile.TrackLower))
	require.Equal(t, tile.TrackBitHorz, rl.TrackBits())

	rl.SetReservedTrackBits(tile.TrackBitHorz)
	require.Equal(t, tile.TrackBitHorz, rl.ReservedTrackBits())
	rl.SetReservedTrackBits(tile.TrackBitLower)
	require.Equal(t, tile.TrackBitLower, rl.ReservedTrackBits())
	require.Panics(t, func() { rl.SetReservedTrackBits(tile.TrackBitCross) })
	rl.SetReservedTrackBits(tile.TrackBitNone)
	require.Equal(t, tile.TrackBitNone, rl.ReservedTrackBits())
	require.Equal(t, tile.SignalExit, rl.SignalType(tile.TrackLower))

	rl.SetHasSignals(false)
	require.Equal(t, uint8(0), rl.PresentSignals())
	require.Equal(t, uint8(0), rl.SignalStates())

	tile.MakeRailDepot(&r, 2, 13, tile.DiagDirNW, 7)
	require.Panics(t, func() { r.Rail() })
	d := r.RailDepot()
	require.Equal(t, tile.DiagDirNW, d.Direction())
	require.Equal(t, uint16(13), r.DepotIndex())
	d.SetReserved(true)
	require.True(t, d.IsReserved())
	require.Equal(t, tile.DiagDirNW, d.Direction())
}

func TestStation(t *testing.T) {
	var r tile.Record
	tile.MakeStation(&r, 6, 1000, tile.StationWaypoint, 4, tile.WaterClassInvalid)
	s := r.Station()
	require.Equal(t, uint16(1000), s.Index())
	require.Equal(t, tile.StationWaypoint, s.Type())
	require.True(t, s.IsRailStation())
	require.Equal(t, uint8(4), s.Gfx())
	require.Equal(t, uint8(0), s.SpecIndex())
	require.False(t, r.IsDocking())

	s.SetReserved(true)
	s.SetRandomBits(0xA)
	require.True(t, s.IsReserved())
	require.Equal(t, uint8(0xA), s.RandomBits())
	require.Equal(t, tile.StationWaypoint, s.Type())

	tile.MakeStation(&r, 6, 1, tile.StationBuoy, 0, tile.WaterClassSea)
	require.True(t, r.Station().IsBuoy())
	require.Panics(t, func() { r.Station().SetReserved(true) })
}

func TestTunnelBridge(t *testing.T) {
	var r tile.Record
	tile.MakeRailBridgeRamp(&r, 1, 9, tile.DiagDirSE, 4)
	tb := r.TunnelBridge()
	require.True(t, tb.IsBridge())
	require.Equal(t, tile.DiagDirSE, tb.Direction())
	require.Equal(t, tile.TransportRail, tb.TransportType())
	require.Equal(t, uint8(9), tb.BridgeType())
	require.Equal(t, tile.RailType(4), r.RailType())
	require.Equal(t, tile.InvalidRoadType, r.RoadType())
	require.Equal(t, tile.InvalidRoadType, r.TramType())

	tb.SetSnow(true)
	tb.SetReserved(true)
	require.True(t, tb.IsOnSnow())
	require.True(t, tb.IsReserved())

	tile.MakeRoadBridgeRamp(&r, 1, 2, tile.OwnerNone, 3, tile.DiagDirNE, 0, tile.InvalidRoadType)
	require.Equal(t, tile.InvalidRailType, r.RailType())
	require.Equal(t, tile.Owner(2), r.RoadOwner())
	require.Equal(t, tile.OwnerNone, r.TramOwner())
	require.False(t, r.TunnelBridge().IsOnSnow())

	tile.MakeRoadBridgeRamp(&r, 1, 3, tile.OwnerTown, 3, tile.DiagDirNE, 0, tile.InvalidRoadType)
	data, err := r.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, byte(0), data[5]&0xF0, "tram owner bits of m3")
	require.Equal(t, tile.Owner(0), r.TramOwner())

	tile.MakeRoadTunnel(&r, 5, tile.DiagDirNW, 1, 2)
	tb = r.TunnelBridge()
	require.True(t, tb.IsTunnel())
	require.Equal(t, tile.TransportRoad, tb.TransportType())
	require.Equal(t, tile.Owner(5), r.RoadOwner())
	require.Equal(t, tile.Owner(5), r.TramOwner())
	require.Panics(t, func() { tb.BridgeType() })
	require.Panics(t, func() { tb.SetReserved(true) })

	tile.MakeAqueductRamp(&r, 5, tile.DiagDirSW)
	require.Equal(t, tile.TransportWater, r.TunnelBridge().TransportType())
}

func TestObject(t *testing.T) {
	var r tile.Record
	tile.MakeObject(&r, tile.OwnerTown, 0xABCDEF, tile.WaterClassCanal, 0x12)
	o := r.Object()
	require.Equal(t, uint32(0xABCDEF), o.Index())
	require.Equal(t, uint8(0x12), o.RandomBits())
	require.Equal(t, tile.OwnerTown, o.Owner())
	require.Equal(t, tile.WaterClassCanal, r.WaterClass())
	require.Panics(t, func() { tile.MakeObject(&r, 0, 1<<24, tile.WaterClassInvalid, 0) })
}

func TestDirections(t *testing.T) {
	require.Equal(t, tile.DiagDirSW, tile.DiagDirNE.Reverse())
	require.Equal(t, tile.AxisY, tile.DiagDirNW.Axis())
	require.Equal(t, tile.DiagDirSW, tile.AxisToDiagDir(tile.AxisX))
	require.Equal(t, tile.DiagDirSE, tile.AxisToDiagDir(tile.AxisY))
	require.Equal(t, tile.DiagDirNE, tile.XYNSToDiagDir(tile.AxisX, 0))
	require.Equal(t, tile.DiagDirSW, tile.XYNSToDiagDir(tile.AxisX, 1))
	require.Equal(t, tile.DiagDirNW, tile.XYNSToDiagDir(tile.AxisY, 0))
	require.Equal(t, tile.DiagDirSE, tile.XYNSToDiagDir(tile.AxisY, 1))
	require.Equal(t, tile.DirSE, tile.DiagDirSE.Direction())

	for _, d := range tile.DiagDirections() {
		fwd, back := d.DiffC(), d.Reverse().DiffC()
		require.Equal(t, tile.DiffC{}, tile.DiffC{X: fwd.X + back.X, Y: fwd.Y + back.Y})
		require.Equal(t, fwd, d.Direction().DiffC())
	}
	require.Equal(t, tile.DiffC{X: -1, Y: -1}, tile.DirN.DiffC())
	require.Equal(t, tile.DiffC{X: 1, Y: 1}, tile.DirS.DiffC())
}
