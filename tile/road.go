package tile

import "fmt"

type RoadTileType uint8

const (
	RoadTileNormal RoadTileType = iota
	RoadTileCrossing
	RoadTileDepot
)

// RoadBits is a set of road pieces, one per cell edge.
type RoadBits uint8

const (
	RoadNW RoadBits = 1 << iota
	RoadSW
	RoadSE
	RoadNE

	RoadNone RoadBits = 0
	RoadX             = RoadSW | RoadNE
	RoadY             = RoadNW | RoadSE
	RoadAll           = RoadX | RoadY
)

// AxisToRoadBits returns the straight road along a.
func AxisToRoadBits(a Axis) RoadBits {
	if a.check() == AxisX {
		return RoadX
	}
	return RoadY
}

// RoadTramType selects the road or the tram sub-layer of a road cell.
type RoadTramType uint8

const (
	RoadTramRoad RoadTramType = iota
	RoadTramTram
)

type Roadside uint8

const (
	RoadsideBarren         Roadside = 0
	RoadsideGrass          Roadside = 1
	RoadsidePaved          Roadside = 2
	RoadsideStreetLights   Roadside = 3
	RoadsideTrees          Roadside = 5
	RoadsideGrassRoadWorks Roadside = 6
	RoadsidePavedRoadWorks Roadside = 7
)

// DisallowedRoadDirections restricts one-way roads.
type DisallowedRoadDirections uint8

const (
	DisallowedNone DisallowedRoadDirections = iota
	DisallowedSouthbound
	DisallowedNorthbound
	DisallowedBoth
)

// RoadTileType returns the sub-kind of a road cell.
func (r *Record) RoadTileType() RoadTileType {
	r.assertKind(KindRoad)
	t := RoadTileType(gb8(r.m5, 6, 2))
	if t > RoadTileDepot {
		panic(fmt.Sprintf("tile: invalid road tile type %d", t))
	}
	return t
}

func (r *Record) isRoadTileType(t RoadTileType) bool {
	return r.Kind() == KindRoad && r.RoadTileType() == t
}

func (r *Record) RoadType() RoadType {
	r.assertKinds(roadTypeKinds, "road type")
	return RoadType(gb8(r.m4, 0, 6))
}

func (r *Record) TramType() RoadType {
	r.assertKinds(roadTypeKinds, "tram type")
	return RoadType(gb16(r.m8, 6, 6))
}

// RoadTypeOf returns the road or tram type depending on rtt.
func (r *Record) RoadTypeOf(rtt RoadTramType) RoadType {
	if rtt == RoadTramTram {
		return r.TramType()
	}
	return r.RoadType()
}

func (r *Record) HasRoadTypeOf(rtt RoadTramType) bool {
	return r.RoadTypeOf(rtt) != InvalidRoadType
}

func (r *Record) SetRoadTypes(road, tram RoadType) {
	r.assertKinds(roadTypeKinds, "road type")
	sb8(&r.m4, 0, 6, uint8(road))
	sb16(&r.m8, 6, 6, uint16(tram))
}

// RoadOwner returns the owner of the road layer. On normal roads it is the cell
// owner, on every other kind it lives in m7.
func (r *Record) RoadOwner() Owner {
	r.assertKinds(roadTypeKinds, "road owner")
	if r.isRoadTileType(RoadTileNormal) {
		return r.Owner()
	}
	return Owner(gb8(r.m7, 0, 5))
}

func (r *Record) SetRoadOwner(o Owner) {
	r.assertKinds(roadTypeKinds, "road owner")
	if r.isRoadTileType(RoadTileNormal) {
		r.SetOwner(o)
		return
	}
	sb8(&r.m7, 0, 5, uint8(o))
}

// TramOwner returns the owner of the tram layer. The four bit field cannot hold
// OwnerNone, so it is stored as OwnerTown.
func (r *Record) TramOwner() Owner {
	r.assertKinds(roadTypeKinds, "tram owner")
	o := Owner(gb8(r.m3, 4, 4))
	if o == OwnerTown {
		return OwnerNone
	}
	return o
}

func (r *Record) SetTramOwner(o Owner) {
	r.assertKinds(roadTypeKinds, "tram owner")
	if o == OwnerNone {
		o = OwnerTown
	}
	sb8(&r.m3, 4, 4, uint8(o))
}

func (r *Record) RoadOwnerOf(rtt RoadTramType) Owner {
	if rtt == RoadTramTram {
		return r.TramOwner()
	}
	return r.RoadOwner()
}

// Road is the overlay of a plain road cell.
type Road struct{ r *Record }

func (r *Record) Road() Road {
	if t := r.RoadTileType(); t != RoadTileNormal {
		panic(fmt.Sprintf("tile: road tile type is %d, want normal", t))
	}
	return Road{r}
}

func (rd Road) Bits(rtt RoadTramType) RoadBits {
	if rtt == RoadTramTram {
		return RoadBits(gb8(rd.r.m3, 0, 4))
	}
	return RoadBits(gb8(rd.r.m5, 0, 4))
}

func (rd Road) SetBits(rtt RoadTramType, bits RoadBits) {
	if rtt == RoadTramTram {
		sb8(&rd.r.m3, 0, 4, uint8(bits))
		return
	}
	sb8(&rd.r.m5, 0, 4, uint8(bits))
}

// AllBits returns the union of road and tram pieces.
func (rd Road) AllBits() RoadBits {
	return rd.Bits(RoadTramRoad) | rd.Bits(RoadTramTram)
}

func (rd Road) DisallowedDirections() DisallowedRoadDirections {
	return DisallowedRoadDirections(gb8(rd.r.m5, 4, 2))
}

func (rd Road) SetDisallowedDirections(d DisallowedRoadDirections) {
	sb8(&rd.r.m5, 4, 2, uint8(d))
}

func (rd Road) Roadside() Roadside {
	return Roadside(gb8(rd.r.m6, 3, 3))
}

func (rd Road) SetRoadside(s Roadside) {
	sb8(&rd.r.m6, 3, 3, uint8(s))
}

func (rd Road) HasRoadWorks() bool {
	return rd.Roadside() >= RoadsideGrassRoadWorks
}

// IncRoadWorksCounter advances the road works counter and reports whether the works are done.
func (rd Road) IncRoadWorksCounter() bool {
	v := (gb8(rd.r.m7, 0, 4) + 1) & 0x0F
	sb8(&rd.r.m7, 0, 4, v)
	return v == 15
}

func (rd Road) StartRoadWorks() {
	if rd.HasRoadWorks() {
		panic("tile: road works already in progress")
	}
	switch rd.Roadside() {
	case RoadsideBarren, RoadsideGrass:
		rd.SetRoadside(RoadsideGrassRoadWorks)
	default:
		rd.SetRoadside(RoadsidePavedRoadWorks)
	}
}

func (rd Road) TerminateRoadWorks() {
	if !rd.HasRoadWorks() {
		panic("tile: no road works in progress")
	}
	if rd.Roadside() == RoadsideGrassRoadWorks {
		rd.SetRoadside(RoadsideGrass)
	} else {
		rd.SetRoadside(RoadsidePaved)
	}
	sb8(&rd.r.m7, 0, 4, 0)
}

func (rd Road) IsOnSnow() bool {
	return hasBit8(rd.r.m7, 5)
}

func (rd Road) ToggleSnow() {
	rd.r.m7 ^= 1 << 5
}

// Crossing is the overlay of a level crossing of a road and a railway.
type Crossing struct{ r *Record }

func (r *Record) Crossing() Crossing {
	if t := r.RoadTileType(); t != RoadTileCrossing {
		panic(fmt.Sprintf("tile: road tile type is %d, want crossing", t))
	}
	return Crossing{r}
}

func (c Crossing) RoadAxis() Axis {
	return Axis(gb8(c.r.m5, 0, 1))
}

func (c Crossing) RailAxis() Axis {
	return c.RoadAxis().Other()
}

func (c Crossing) RoadBits() RoadBits {
	return AxisToRoadBits(c.RoadAxis())
}

// RailOwner returns the owner of the railway, which is the cell owner.
func (c Crossing) RailOwner() Owner {
	return Owner(gb8(c.r.m1, 0, 5))
}

func (c Crossing) IsReserved() bool {
	return hasBit8(c.r.m5, 4)
}

func (c Crossing) SetReserved(b bool) {
	setBit8(&c.r.m5, 4, b)
}

func (c Crossing) IsBarred() bool {
	return hasBit8(c.r.m5, 5)
}

func (c Crossing) SetBarred(b bool) {
	setBit8(&c.r.m5, 5, b)
}

func (c Crossing) IsOnSnow() bool {
	return hasBit8(c.r.m7, 5)
}

func (c Crossing) ToggleSnow() {
	c.r.m7 ^= 1 << 5
}

// RoadDepot is the overlay of a road vehicle depot.
type RoadDepot struct{ r *Record }

func (r *Record) RoadDepot() RoadDepot {
	if t := r.RoadTileType(); t != RoadTileDepot {
		panic(fmt.Sprintf("tile: road tile type is %d, want depot", t))
	}
	return RoadDepot{r}
}

func (d RoadDepot) Direction() DiagDirection {
	return DiagDirection(gb8(d.r.m5, 0, 2))
}

func (d RoadDepot) Index() uint16 {
	return d.r.m2
}

// MakeRoadNormal builds a plain road. Bits are applied to each layer whose type is valid.
func MakeRoadNormal(r *Record, bits RoadBits, roadRT, tramRT RoadType, town uint16, roadOwner, tramOwner Owner) {
	r.ChangeKindOwned(KindRoad, roadOwner)
	r.m2 = town
	rd := r.Road()
	if roadRT != InvalidRoadType {
		rd.SetBits(RoadTramRoad, bits)
	}
	if tramRT != InvalidRoadType {
		rd.SetBits(RoadTramTram, bits)
	}
	r.SetRoadTypes(roadRT, tramRT)
	r.SetTramOwner(tramOwner)
}

// MakeRoadCrossing builds a level crossing. The cell owner is the rail owner.
func MakeRoadCrossing(r *Record, roadOwner, tramOwner, railOwner Owner, roadAxis Axis, rail RailType, roadRT, tramRT RoadType, town uint16) {
	r.ChangeKindOwned(KindRoad, railOwner)
	r.m2 = town
	r.m5 = uint8(RoadTileCrossing)<<6 | uint8(roadAxis.check())
	r.SetRoadOwner(roadOwner)
	r.SetRailType(rail)
	r.SetRoadTypes(roadRT, tramRT)
	r.SetTramOwner(tramOwner)
}

func MakeRoadDepot(r *Record, o Owner, depot uint16, d DiagDirection, roadRT, tramRT RoadType) {
	r.ChangeKindOwned(KindRoad, o)
	r.m2 = depot
	r.m5 = uint8(RoadTileDepot)<<6 | uint8(d.check())
	r.SetRoadOwner(o)
	r.SetRoadTypes(roadRT, tramRT)
	r.SetTramOwner(o)
}
