package tile

import "fmt"

// Owner returns the owner stored in the shared ownership sub-layout.
// Void, house and industry cells have no owner.
func (r *Record) Owner() Owner {
	r.assertKinds(ownedKinds, "owner")
	return Owner(gb8(r.m1, 0, 5))
}

func (r *Record) SetOwner(o Owner) {
	r.assertKinds(ownedKinds, "owner")
	sb8(&r.m1, 0, 5, uint8(o))
}

func (r *Record) IsOwner(o Owner) bool {
	return r.Owner() == o
}

// HasOwner reports whether the kind carries the ownership sub-layout.
func (r *Record) HasOwner() bool {
	return ownedKinds.has(r.Kind())
}

func (r *Record) HasWaterClass() bool {
	return waterClassKinds.has(r.Kind())
}

func (r *Record) WaterClass() WaterClass {
	r.assertKinds(waterClassKinds, "water class")
	return WaterClass(gb8(r.m1, 5, 2))
}

func (r *Record) SetWaterClass(wc WaterClass) {
	r.assertKinds(waterClassKinds, "water class")
	sb8(&r.m1, 5, 2, uint8(wc))
}

// IsOnWater reports whether the ground below the cell is water.
func (r *Record) IsOnWater() bool {
	return r.WaterClass() != WaterClassInvalid
}

func (r *Record) CanDock() bool {
	return dockingKinds.has(r.Kind())
}

// IsDocking reports whether ships may dock at the cell. Kinds that cannot dock report false.
func (r *Record) IsDocking() bool {
	return r.CanDock() && hasBit8(r.m1, 7)
}

func (r *Record) SetDocking(b bool) {
	r.assertKinds(dockingKinds, "docking flag")
	setBit8(&r.m1, 7, b)
}

func (r *Record) hasTownIndex() bool {
	switch r.Kind() {
	case KindHouse:
		return true
	case KindRoad:
		return r.RoadTileType() != RoadTileDepot
	}
	return false
}

// TownIndex returns the town a house or a non-depot road belongs to.
func (r *Record) TownIndex() uint16 {
	if !r.hasTownIndex() {
		panic(fmt.Sprintf("tile: %v tile has no town index", r.Kind()))
	}
	return r.m2
}

func (r *Record) SetTownIndex(town uint16) {
	if !r.hasTownIndex() {
		panic(fmt.Sprintf("tile: %v tile has no town index", r.Kind()))
	}
	r.m2 = town
}

// IsDepot reports whether the cell is a road, rail or ship depot.
func (r *Record) IsDepot() bool {
	switch r.Kind() {
	case KindRoad:
		return r.RoadTileType() == RoadTileDepot
	case KindRailway:
		return r.RailTileType() == RailTileDepot
	case KindWater:
		return r.Water().TileType() == WaterTileDepot
	}
	return false
}

// DepotIndex returns the depot pool index of a road, rail or ship depot.
func (r *Record) DepotIndex() uint16 {
	if !r.IsDepot() {
		panic(fmt.Sprintf("tile: %v tile is not a depot", r.Kind()))
	}
	return r.m2
}

func (r *Record) AnimationFrame() uint8 {
	r.assertKinds(animatedKinds, "animation frame")
	return r.m7
}

func (r *Record) SetAnimationFrame(frame uint8) {
	r.assertKinds(animatedKinds, "animation frame")
	r.m7 = frame
}
