package tile

import "fmt"

// HouseCompleted is the construction stage of a finished house.
const HouseCompleted = 3

// MaxHouseType is the number of house types addressable by the nine bit house id.
const MaxHouseType = 512

// House is the overlay of a town building cell.
type House struct{ r *Record }

func (r *Record) House() House {
	r.assertKind(KindHouse)
	return House{r}
}

// Type returns the house id; bit 8 lives in m3.
func (h House) Type() uint16 {
	return uint16(h.r.m4) | uint16(gb8(h.r.m3, 6, 1))<<8
}

func (h House) SetType(id uint16) {
	if id >= MaxHouseType {
		panic(fmt.Sprintf("tile: house type %d out of range", id))
	}
	h.r.m4 = uint8(id)
	sb8(&h.r.m3, 6, 1, uint8(id>>8))
}

func (h House) IsCompleted() bool {
	return hasBit8(h.r.m3, 7)
}

func (h House) SetCompleted(b bool) {
	setBit8(&h.r.m3, 7, b)
}

func (h House) BuildingStage() uint8 {
	if h.IsCompleted() {
		return HouseCompleted
	}
	return gb8(h.r.m5, 3, 2)
}

func (h House) ConstructionTick() uint8 {
	if h.IsCompleted() {
		return 0
	}
	return gb8(h.r.m5, 0, 3)
}

// IncConstructionTick advances construction by one tick. When the stage reaches
// HouseCompleted the house is marked complete and its age starts at zero.
func (h House) IncConstructionTick() {
	if h.IsCompleted() {
		return
	}
	v := (gb8(h.r.m5, 0, 5) + 1) & 0x1F
	sb8(&h.r.m5, 0, 5, v)
	if gb8(h.r.m5, 3, 2) == HouseCompleted {
		h.SetCompleted(true)
		h.r.m5 = 0
	}
}

func (h House) ResetAge() {
	if !h.IsCompleted() {
		panic("tile: age of an unfinished house")
	}
	h.r.m5 = 0
}

// IncrementAge ages a completed house by one year, saturating at 255.
func (h House) IncrementAge() {
	if h.IsCompleted() && h.r.m5 < 0xFF {
		h.r.m5++
	}
}

func (h House) Age() uint8 {
	if !h.IsCompleted() {
		return 0
	}
	return h.r.m5
}

func (h House) RandomBits() uint8 {
	return h.r.m1
}

func (h House) SetRandomBits(bits uint8) {
	h.r.m1 = bits
}

func (h House) Triggers() uint8 {
	return gb8(h.r.m3, 0, 5)
}

func (h House) SetTriggers(triggers uint8) {
	sb8(&h.r.m3, 0, 5, triggers)
}

func (h House) ProcessingTime() uint8 {
	return gb8(h.r.m6, 2, 6)
}

func (h House) SetProcessingTime(t uint8) {
	sb8(&h.r.m6, 2, 6, t)
}

func (h House) DecProcessingTime() {
	sb8(&h.r.m6, 2, 6, (h.ProcessingTime()-1)&0x3F)
}

// Lift houses reuse the animation frame for the lift destination and
// the processing time bits for the lift position.

func (h House) LiftHasDestination() bool {
	return hasBit8(h.r.m7, 0)
}

func (h House) SetLiftDestination(dest uint8) {
	setBit8(&h.r.m7, 0, true)
	sb8(&h.r.m7, 1, 3, dest)
}

func (h House) LiftDestination() uint8 {
	return gb8(h.r.m7, 1, 3)
}

func (h House) HaltLift() {
	sb8(&h.r.m7, 0, 4, 0)
}

func (h House) LiftPosition() uint8 {
	return gb8(h.r.m6, 2, 6)
}

func (h House) SetLiftPosition(pos uint8) {
	sb8(&h.r.m6, 2, 6, pos)
}

// MakeHouse turns a clear cell into a house of the given town. A stage of
// HouseCompleted builds a finished house, lower stages start construction.
// The processing time is the number of ticks until the first cargo production.
func MakeHouse(r *Record, town uint16, counter, stage uint8, typ uint16, randomBits, processingTime uint8) {
	r.assertKind(KindClear)
	if stage > HouseCompleted {
		panic(fmt.Sprintf("tile: house stage %d out of range", stage))
	}
	r.ChangeKind(KindHouse)
	r.m2 = town
	h := r.House()
	h.SetType(typ)
	h.SetRandomBits(randomBits)
	h.SetProcessingTime(processingTime)
	r.SetAnimationFrame(0)
	if stage == HouseCompleted {
		h.SetCompleted(true)
	} else {
		sb8(&r.m5, 0, 3, counter)
		sb8(&r.m5, 3, 2, stage)
	}
}
