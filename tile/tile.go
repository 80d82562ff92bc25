// Package tile provides the fixed-size map tile record and its typed accessors.
//
// Every map cell is stored in one 16-byte Record. The first two bytes are common to all
// kinds (tropic zone, bridge-above bits, kind discriminant and the height of the northern
// corner), the rest is an overlay that is interpreted according to the kind. Overlay
// fields are only reachable through kind-gated views (Record.Water, Record.Rail, ...),
// which panic when the discriminant does not match.
package tile

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Index is the linear storage slot of a map cell.
type Index uint32

// Invalid is returned by bounds-checked coordinate arithmetic when the result leaves the map.
const Invalid Index = ^Index(0)

func (t Index) IsValid() bool {
	return t != Invalid
}

// Kind is the discriminant selecting the active overlay of a record.
type Kind uint8

const (
	KindClear Kind = iota
	KindRailway
	KindRoad
	KindHouse
	KindTrees
	KindStation
	KindWater
	KindVoid
	KindIndustry
	KindTunnelBridge
	KindObject

	kindEnd
)

var kindNames = [...]string{
	KindClear:        "clear",
	KindRailway:      "railway",
	KindRoad:         "road",
	KindHouse:        "house",
	KindTrees:        "trees",
	KindStation:      "station",
	KindWater:        "water",
	KindVoid:         "void",
	KindIndustry:     "industry",
	KindTunnelBridge: "tunnelbridge",
	KindObject:       "object",
}

func (k Kind) IsValid() bool {
	return k < kindEnd
}

func (k Kind) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Kinds returns all valid kinds in discriminant order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindEnd)
	for k := range kindEnd {
		kinds = append(kinds, k)
	}
	return kinds
}

// Record is the packed storage of one map cell.
//
// Layout (little endian, RecordLength bytes):
//
//	0     zone (bits 0..1), bridge above X/Y (bits 2..3), kind (bits 4..7)
//	1     height of the northern corner
//	2..3  m2
//	4     m1
//	5..7  m3, m4, m5
//	8..9  m6, m7
//	10..11 m8
//	12..15 reserved, always zero
//
// The bit positions of the overlay fields are part of the snapshot format.
type Record struct {
	typ    uint8
	height uint8
	m2     uint16
	m1     uint8
	m3     uint8
	m4     uint8
	m5     uint8
	m6     uint8
	m7     uint8
	m8     uint16
	_      [4]byte
}

const RecordLength = 16

var ErrInvalidRecord = errors.New("tile: invalid record")

// Kind returns the discriminant. It is always valid.
func (r *Record) Kind() Kind {
	return Kind(gb8(r.typ, 4, 4))
}

func (r *Record) IsKind(k Kind) bool {
	return r.Kind() == k
}

// ChangeKind sets the discriminant and zeroes the whole overlay. The zone, bridge-above
// bits and height are kept. Callers must populate the overlay right away.
func (r *Record) ChangeKind(k Kind) {
	if !k.IsValid() {
		panic(fmt.Sprintf("tile: invalid kind %d", uint8(k)))
	}
	sb8(&r.typ, 4, 4, uint8(k))
	r.m1, r.m2, r.m3, r.m4, r.m5 = 0, 0, 0, 0, 0
	r.m6, r.m7, r.m8 = 0, 0, 0
}

// ChangeKindOwned is ChangeKind followed by installing the owner of the shared
// ownership sub-layout.
func (r *Record) ChangeKindOwned(k Kind, o Owner) {
	r.ChangeKind(k)
	r.SetOwner(o)
}

// MakeVoid turns the cell into off-map void.
func MakeVoid(r *Record) {
	r.ChangeKind(KindVoid)
}

func (r *Record) Height() uint8 {
	return r.height
}

func (r *Record) SetHeight(h uint8) {
	r.height = h
}

func (r *Record) Zone() TropicZone {
	return TropicZone(gb8(r.typ, 0, 2))
}

func (r *Record) SetZone(z TropicZone) {
	sb8(&r.typ, 0, 2, uint8(z))
}

// IsBridgeAbove reports whether a bridge passes over the cell along any axis.
func (r *Record) IsBridgeAbove() bool {
	return gb8(r.typ, 2, 2) != 0
}

// BridgeAxis returns the axis of the bridge passing over the cell (not of a ramp).
func (r *Record) BridgeAxis() Axis {
	above := gb8(r.typ, 2, 2)
	if above != 1 && above != 2 {
		panic(fmt.Sprintf("tile: bridge above bits %d do not name a single axis", above))
	}
	return Axis(above - 1)
}

func (r *Record) SetBridgeMiddle(a Axis) {
	setBit8(&r.typ, 2+uint(a.check()), true)
}

func (r *Record) ClearBridgeMiddle() {
	sb8(&r.typ, 2, 2, 0)
}

func (r *Record) assertKind(k Kind) {
	if got := r.Kind(); got != k {
		panic(fmt.Sprintf("tile: kind is %v, want %v", got, k))
	}
}

func (r *Record) assertKinds(s kindSet, what string) {
	if k := r.Kind(); !s.has(k) {
		panic(fmt.Sprintf("tile: %v tile has no %s", k, what))
	}
}

func (r Record) AppendBinary(b []byte) ([]byte, error) {
	b = append(b, r.typ, r.height)
	b = binary.LittleEndian.AppendUint16(b, r.m2)
	b = append(b, r.m1, r.m3, r.m4, r.m5, r.m6, r.m7)
	b = binary.LittleEndian.AppendUint16(b, r.m8)
	b = append(b, 0, 0, 0, 0)
	return b, nil
}

func (r Record) MarshalBinary() ([]byte, error) {
	return r.AppendBinary(make([]byte, 0, RecordLength))
}

func (r *Record) UnmarshalBinary(data []byte) error {
	if len(data) != RecordLength {
		return fmt.Errorf("%w: length %d", ErrInvalidRecord, len(data))
	}
	if k := Kind(data[0] >> 4); !k.IsValid() {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, k)
	}
	rec := Record{
		typ:    data[0],
		height: data[1],
		m2:     binary.LittleEndian.Uint16(data[2:]),
		m1:     data[4],
		m3:     data[5],
		m4:     data[6],
		m5:     data[7],
		m6:     data[8],
		m7:     data[9],
		m8:     binary.LittleEndian.Uint16(data[10:]),
	}
	if err := rec.checkSubKind(); err != nil {
		return err
	}
	*r = rec
	return nil
}

// checkSubKind rejects overlays whose sub-kind discriminant has no meaning.
func (r *Record) checkSubKind() error {
	switch r.Kind() {
	case KindWater:
		if k := gb8(r.m5, 4, 4); k != waterKindNormal && k != waterKindLock && k != waterKindDepot {
			return fmt.Errorf("%w: water sub-kind %d", ErrInvalidRecord, k)
		}
	case KindRailway:
		if t := gb8(r.m5, 6, 2); t == 2 {
			return fmt.Errorf("%w: rail tile type %d", ErrInvalidRecord, t)
		}
	case KindRoad:
		if t := RoadTileType(gb8(r.m5, 6, 2)); t > RoadTileDepot {
			return fmt.Errorf("%w: road tile type %d", ErrInvalidRecord, t)
		}
	}
	return nil
}
