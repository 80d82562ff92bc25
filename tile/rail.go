package tile

import (
	"fmt"
	"math/bits"
)

type RailTileType uint8

const (
	RailTileNormal  RailTileType = 0
	RailTileSignals RailTileType = 1
	RailTileDepot   RailTileType = 3
)

// Track is one of the six track pieces a rail cell can carry.
type Track uint8

const (
	TrackX Track = iota
	TrackY
	TrackUpper
	TrackLower
	TrackLeft
	TrackRight

	trackEnd
)

func (t Track) IsValid() bool {
	return t < trackEnd
}

func (t Track) Bits() TrackBits {
	if !t.IsValid() {
		panic(fmt.Sprintf("tile: invalid track %d", uint8(t)))
	}
	return 1 << t
}

// Opposite returns the parallel track on the other side of the cell. Only the
// diagonal halves have one.
func (t Track) Opposite() Track {
	if t < TrackUpper || !t.IsValid() {
		panic(fmt.Sprintf("tile: track %d has no opposite", uint8(t)))
	}
	return t ^ 1
}

// signalShift is the bit position of the signals of t in the signal masks.
func (t Track) signalShift() uint {
	if t == TrackLower || t == TrackRight {
		return 4
	}
	return 0
}

type TrackBits uint8

const (
	TrackBitNone  TrackBits = 0
	TrackBitX               = TrackBits(1 << TrackX)
	TrackBitY               = TrackBits(1 << TrackY)
	TrackBitUpper           = TrackBits(1 << TrackUpper)
	TrackBitLower           = TrackBits(1 << TrackLower)
	TrackBitLeft            = TrackBits(1 << TrackLeft)
	TrackBitRight           = TrackBits(1 << TrackRight)
	TrackBitCross           = TrackBitX | TrackBitY
	TrackBitHorz            = TrackBitUpper | TrackBitLower
	TrackBitVert            = TrackBitLeft | TrackBitRight
	TrackBitAll             = TrackBits(1<<trackEnd - 1)
)

func AxisToTrack(a Axis) Track {
	return Track(a.check())
}

// First returns the lowest track of the set.
func (b TrackBits) First() (Track, bool) {
	if b == TrackBitNone {
		return 0, false
	}
	return Track(bits.TrailingZeros8(uint8(b))), true
}

type SignalType uint8

const (
	SignalBlock SignalType = iota
	SignalEntry
	SignalExit
	SignalCombo
	SignalPBS
	SignalPBSOneway
)

type SignalVariant uint8

const (
	SignalElectric SignalVariant = iota
	SignalSemaphore
)

// RailTileType returns the sub-kind of a railway cell.
func (r *Record) RailTileType() RailTileType {
	r.assertKind(KindRailway)
	t := RailTileType(gb8(r.m5, 6, 2))
	if t == 2 {
		panic("tile: invalid rail tile type 2")
	}
	return t
}

// RailType is shared by railways, level crossings, rail stations and rail tunnels or bridges.
func (r *Record) RailType() RailType {
	r.assertRailType()
	return RailType(gb16(r.m8, 0, 6))
}

func (r *Record) SetRailType(rt RailType) {
	r.assertRailType()
	sb16(&r.m8, 0, 6, uint16(rt))
}

func (r *Record) assertRailType() {
	r.assertKinds(railTypeKinds, "rail type")
	if r.Kind() == KindRoad && r.RoadTileType() != RoadTileCrossing {
		panic("tile: road tile without crossing has no rail type")
	}
}

// Rail is the overlay of a railway cell with plain track or signals.
type Rail struct{ r *Record }

func (r *Record) Rail() Rail {
	if r.RailTileType() == RailTileDepot {
		panic("tile: rail tile is a depot")
	}
	return Rail{r}
}

func (rl Rail) Owner() Owner {
	return Owner(gb8(rl.r.m1, 0, 5))
}

func (rl Rail) TrackBits() TrackBits {
	return TrackBits(gb8(rl.r.m5, 0, 6))
}

func (rl Rail) SetTrackBits(b TrackBits) {
	sb8(&rl.r.m5, 0, 6, uint8(b))
}

func (rl Rail) HasTrack(t Track) bool {
	return rl.TrackBits()&t.Bits() != 0
}

func (rl Rail) HasSignals() bool {
	return RailTileType(gb8(rl.r.m5, 6, 2)) == RailTileSignals
}

// SetHasSignals switches between plain track and track with signals. Clearing
// removes the signal masks too.
func (rl Rail) SetHasSignals(b bool) {
	if b {
		sb8(&rl.r.m5, 6, 2, uint8(RailTileSignals))
		return
	}
	sb8(&rl.r.m5, 6, 2, uint8(RailTileNormal))
	sb8(&rl.r.m3, 4, 4, 0)
	sb8(&rl.r.m4, 4, 4, 0)
}

func (rl Rail) SignalType(t Track) SignalType {
	return SignalType(gb16(rl.r.m2, t.signalShift(), 3))
}

func (rl Rail) SetSignalType(t Track, st SignalType) {
	if st > SignalPBSOneway {
		panic(fmt.Sprintf("tile: invalid signal type %d", st))
	}
	sb16(&rl.r.m2, t.signalShift(), 3, uint16(st))
}

func (rl Rail) SignalVariant(t Track) SignalVariant {
	return SignalVariant(gb16(rl.r.m2, t.signalShift()+3, 1))
}

func (rl Rail) SetSignalVariant(t Track, v SignalVariant) {
	sb16(&rl.r.m2, t.signalShift()+3, 1, uint16(v))
}

// PresentSignals returns the four bit mask of signals present on the cell.
func (rl Rail) PresentSignals() uint8 {
	return gb8(rl.r.m3, 4, 4)
}

func (rl Rail) SetPresentSignals(mask uint8) {
	sb8(&rl.r.m3, 4, 4, mask)
}

// SignalStates returns the four bit mask of green signals.
func (rl Rail) SignalStates() uint8 {
	return gb8(rl.r.m4, 4, 4)
}

func (rl Rail) SetSignalStates(mask uint8) {
	sb8(&rl.r.m4, 4, 4, mask)
}

func (rl Rail) Ground() uint8 {
	return gb8(rl.r.m4, 0, 4)
}

func (rl Rail) SetGround(g uint8) {
	sb8(&rl.r.m4, 0, 4, g)
}

// ReservedTrackBits returns the tracks reserved by path signals. At most two
// parallel tracks can be reserved at once.
func (rl Rail) ReservedTrackBits() TrackBits {
	tb := gb16(rl.r.m2, 8, 3)
	if tb == 0 {
		return TrackBitNone
	}
	t := Track(tb - 1)
	res := t.Bits()
	if hasBit16(rl.r.m2, 11) {
		res |= t.Opposite().Bits()
	}
	return res
}

func (rl Rail) SetReservedTrackBits(b TrackBits) {
	t, ok := b.First()
	if !ok {
		sb16(&rl.r.m2, 8, 4, 0)
		return
	}
	if b != t.Bits() && b != TrackBitHorz && b != TrackBitVert {
		panic(fmt.Sprintf("tile: invalid track reservation %#x", uint8(b)))
	}
	sb16(&rl.r.m2, 8, 3, uint16(t)+1)
	setBit16(&rl.r.m2, 11, b == TrackBitHorz || b == TrackBitVert)
}

// RailDepot is the overlay of a train depot.
type RailDepot struct{ r *Record }

func (r *Record) RailDepot() RailDepot {
	if r.RailTileType() != RailTileDepot {
		panic("tile: rail tile is not a depot")
	}
	return RailDepot{r}
}

func (d RailDepot) Direction() DiagDirection {
	return DiagDirection(gb8(d.r.m5, 0, 2))
}

func (d RailDepot) Index() uint16 {
	return d.r.m2
}

func (d RailDepot) IsReserved() bool {
	return hasBit8(d.r.m5, 4)
}

func (d RailDepot) SetReserved(b bool) {
	setBit8(&d.r.m5, 4, b)
}

func MakeRailNormal(r *Record, o Owner, tracks TrackBits, rt RailType) {
	r.ChangeKindOwned(KindRailway, o)
	r.SetDocking(false)
	r.Rail().SetTrackBits(tracks)
	r.SetRailType(rt)
}

func MakeRailDepot(r *Record, o Owner, depot uint16, d DiagDirection, rt RailType) {
	r.ChangeKindOwned(KindRailway, o)
	r.SetDocking(false)
	r.m2 = depot
	r.m5 = uint8(RailTileDepot)<<6 | uint8(d.check())
	r.SetRailType(rt)
}
