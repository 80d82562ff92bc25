package tile

import "fmt"

// WaterTileType is the decoded sub-kind of a water cell.
type WaterTileType uint8

const (
	WaterTileClear WaterTileType = iota
	WaterTileCoast
	WaterTileLock
	WaterTileDepot
)

const (
	waterKindNormal = 0
	waterKindLock   = 1
	waterKindDepot  = 8
)

type LockPart uint8

const (
	LockMiddle LockPart = iota
	LockLower
	LockUpper
)

// DepotPart selects the half of a two-cell ship depot.
type DepotPart uint8

const (
	DepotNorth DepotPart = iota
	DepotSouth
)

// Water is the overlay of sea, canal, river, coast, lock and ship depot cells.
type Water struct{ r *Record }

func (r *Record) Water() Water {
	r.assertKind(KindWater)
	return Water{r}
}

func (w Water) TileType() WaterTileType {
	switch k := gb8(w.r.m5, 4, 4); k {
	case waterKindNormal:
		if hasBit8(w.r.m5, 0) {
			return WaterTileCoast
		}
		return WaterTileClear
	case waterKindLock:
		return WaterTileLock
	case waterKindDepot:
		return WaterTileDepot
	default:
		panic(fmt.Sprintf("tile: invalid water sub-kind %d", k))
	}
}

func (w Water) Owner() Owner {
	return Owner(gb8(w.r.m1, 0, 5))
}

// IsPlain reports whether the cell is open water without a coast, lock or depot.
func (w Water) IsPlain() bool {
	return w.TileType() == WaterTileClear
}

func (w Water) IsSea() bool {
	return w.IsPlain() && w.r.WaterClass() == WaterClassSea
}

func (w Water) IsCanal() bool {
	return w.IsPlain() && w.r.WaterClass() == WaterClassCanal
}

func (w Water) IsRiver() bool {
	return w.IsPlain() && w.r.WaterClass() == WaterClassRiver
}

func (w Water) IsCoast() bool {
	return w.TileType() == WaterTileCoast
}

func (w Water) IsLock() bool {
	return w.TileType() == WaterTileLock
}

func (w Water) IsShipDepot() bool {
	return w.TileType() == WaterTileDepot
}

// RandomBits returns the canal/river animation seed.
func (w Water) RandomBits() uint8 {
	return w.r.m4
}

func (w Water) SetRandomBits(bits uint8) {
	w.r.m4 = bits
}

// Lock is the overlay of one of the three cells of a lock.
type Lock struct{ r *Record }

func (r *Record) Lock() Lock {
	if !r.Water().IsLock() {
		panic("tile: water tile is not a lock")
	}
	return Lock{r}
}

// Direction returns the direction of the lock, pointing uphill.
func (l Lock) Direction() DiagDirection {
	return DiagDirection(gb8(l.r.m5, 0, 2))
}

func (l Lock) Part() LockPart {
	return LockPart(gb8(l.r.m5, 2, 2))
}

// ShipDepot is the overlay of one half of a ship depot.
type ShipDepot struct{ r *Record }

func (r *Record) ShipDepot() ShipDepot {
	if !r.Water().IsShipDepot() {
		panic("tile: water tile is not a ship depot")
	}
	return ShipDepot{r}
}

func (d ShipDepot) Axis() Axis {
	return Axis(gb8(d.r.m5, 1, 1))
}

func (d ShipDepot) Part() DepotPart {
	return DepotPart(gb8(d.r.m5, 0, 1))
}

// Direction returns the direction the depot entrance of this half faces.
func (d ShipDepot) Direction() DiagDirection {
	return XYNSToDiagDir(d.Axis(), uint8(d.Part()))
}

func (d ShipDepot) Index() uint16 {
	return d.r.m2
}

// MakeShore turns the cell into a coast cell.
func MakeShore(r *Record) {
	r.ChangeKindOwned(KindWater, OwnerWater)
	r.SetWaterClass(WaterClassSea)
	r.m5 = waterKindNormal<<4 | 1
}

func MakeWater(r *Record, o Owner, wc WaterClass, randomBits uint8) {
	r.ChangeKindOwned(KindWater, o)
	r.SetWaterClass(wc)
	r.m4 = randomBits
	r.m5 = waterKindNormal << 4
}

func MakeSea(r *Record) {
	MakeWater(r, OwnerWater, WaterClassSea, 0)
}

func MakeRiver(r *Record, randomBits uint8) {
	MakeWater(r, OwnerWater, WaterClassRiver, randomBits)
}

// MakeCanal builds a canal. Canals are always owned by a company or nobody, never by water.
func MakeCanal(r *Record, o Owner, randomBits uint8) {
	if o == OwnerWater {
		panic("tile: canal owned by water")
	}
	MakeWater(r, o, WaterClassCanal, randomBits)
}

// MakeShipDepot builds one half of a ship depot. The other half is built separately.
func MakeShipDepot(r *Record, o Owner, depot uint16, part DepotPart, a Axis, wc WaterClass) {
	if part > DepotSouth {
		panic(fmt.Sprintf("tile: invalid depot part %d", part))
	}
	r.ChangeKindOwned(KindWater, o)
	r.SetWaterClass(wc)
	r.m2 = depot
	r.m5 = waterKindDepot<<4 | uint8(a.check())<<1 | uint8(part)
}

// MakeLockPart builds one cell of a lock.
func MakeLockPart(r *Record, o Owner, part LockPart, d DiagDirection, wc WaterClass) {
	if part > LockUpper {
		panic(fmt.Sprintf("tile: invalid lock part %d", part))
	}
	r.ChangeKindOwned(KindWater, o)
	r.SetWaterClass(wc)
	r.m5 = waterKindLock<<4 | uint8(part)<<2 | uint8(d.check())
}
