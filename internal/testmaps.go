// Package internal provides map fixtures shared by package tests.
package internal

import (
	"math/rand/v2"
	"testing"

	"github.com/eak1mov/go-tilemap/tile"
	"github.com/eak1mov/go-tilemap/tilemap"
)

// ClearMap returns a map of bare grass at the given height.
func ClearMap(t testing.TB, sizeX, sizeY uint32, height uint8) *tilemap.Map {
	t.Helper()
	m := tilemap.New(sizeX, sizeY)
	for i := range tile.Index(m.Size()) {
		r := m.Record(i)
		tile.MakeClear(r, tile.GroundGrass, 3)
		r.SetHeight(height)
	}
	return m
}

// SetHeights assigns heights row by row, starting at (x0, y0).
func SetHeights(m *tilemap.Map, x0, y0 uint32, rows [][]uint8) {
	for dy, row := range rows {
		for dx, h := range row {
			m.Record(m.Tile(x0+uint32(dx), y0+uint32(dy))).SetHeight(h)
		}
	}
}

// RandomMap returns a map filled with a deterministic mix of every constructible
// kind, laid out in runs so that identical neighbours are common.
func RandomMap(t testing.TB, sizeX, sizeY uint32, seed uint64) *tilemap.Map {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	m := tilemap.New(sizeX, sizeY)

	var proto tile.Record
	for i := range tile.Index(m.Size()) {
		if i%8 == 0 {
			proto = randomRecord(rng)
		}
		*m.Record(i) = proto
	}
	return m
}

func randomRecord(rng *rand.Rand) tile.Record {
	var r tile.Record
	owner := tile.Owner(rng.IntN(tile.MaxCompanies))
	switch rng.IntN(14) {
	case 0:
		tile.MakeVoid(&r)
	case 1:
		tile.MakeClear(&r, tile.ClearGround(rng.IntN(3)), uint8(rng.IntN(4)))
	case 2:
		tile.MakeField(&r, uint8(rng.IntN(16)), uint16(rng.IntN(1000)))
	case 3:
		tile.MakeSea(&r)
	case 4:
		tile.MakeRiver(&r, uint8(rng.Uint32()))
	case 5:
		tile.MakeTrees(&r, tile.TreeType(rng.IntN(40)), uint8(1+rng.IntN(4)), uint8(rng.IntN(8)), tile.TreeGround(rng.IntN(5)), uint8(rng.IntN(4)))
	case 6:
		tile.MakeHouse(&r, uint16(rng.IntN(64)), 0, tile.HouseCompleted, uint16(rng.IntN(tile.MaxHouseType)), uint8(rng.Uint32()), uint8(rng.IntN(64)))
	case 7:
		tile.MakeIndustry(&r, uint16(rng.IntN(500)), uint16(rng.IntN(tile.MaxIndustryGfx)), uint8(rng.Uint32()), tile.WaterClassInvalid)
	case 8:
		tile.MakeRoadNormal(&r, tile.RoadBits(rng.IntN(16)), 0, tile.InvalidRoadType, uint16(rng.IntN(64)), tile.OwnerTown, tile.OwnerNone)
	case 9:
		tile.MakeRailNormal(&r, owner, tile.TrackBits(rng.IntN(64)), tile.RailType(rng.IntN(4)))
	case 10:
		tile.MakeStation(&r, owner, uint16(rng.IntN(1000)), tile.StationType(rng.IntN(8)), uint8(rng.Uint32()), tile.WaterClassInvalid)
	case 11:
		tile.MakeRailBridgeRamp(&r, owner, uint8(rng.IntN(13)), tile.DiagDirection(rng.IntN(4)), tile.RailType(rng.IntN(4)))
	case 12:
		tile.MakeObject(&r, owner, uint32(rng.IntN(tile.MaxObjectIndex)), tile.WaterClassInvalid, uint8(rng.Uint32()))
	default:
		tile.MakeRoadCrossing(&r, tile.OwnerTown, tile.OwnerNone, owner, tile.Axis(rng.IntN(2)), 0, 0, tile.InvalidRoadType, uint16(rng.IntN(64)))
	}
	r.SetHeight(uint8(rng.IntN(16)))
	r.SetZone(tile.TropicZone(rng.IntN(3)))
	return r
}
