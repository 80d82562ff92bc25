package tile

import "fmt"

// IndustryCompleted is the construction stage of a finished industry cell.
const IndustryCompleted = 3

// MaxIndustryGfx is the number of graphics ids addressable by the nine bit gfx field.
const MaxIndustryGfx = 512

// Industry is the overlay of one cell of an industry.
type Industry struct{ r *Record }

func (r *Record) Industry() Industry {
	r.assertKind(KindIndustry)
	return Industry{r}
}

func (i Industry) Index() uint16 {
	return i.r.m2
}

func (i Industry) IsCompleted() bool {
	return hasBit8(i.r.m1, 7)
}

func (i Industry) SetCompleted() {
	setBit8(&i.r.m1, 7, true)
}

func (i Industry) ConstructionStage() uint8 {
	if i.IsCompleted() {
		return IndustryCompleted
	}
	return gb8(i.r.m1, 0, 2)
}

func (i Industry) SetConstructionStage(stage uint8) {
	sb8(&i.r.m1, 0, 2, stage)
}

func (i Industry) ConstructionCounter() uint8 {
	return gb8(i.r.m1, 2, 2)
}

func (i Industry) SetConstructionCounter(c uint8) {
	sb8(&i.r.m1, 2, 2, c)
}

// ResetConstruction clears stage, counter and the completed flag.
func (i Industry) ResetConstruction() {
	sb8(&i.r.m1, 0, 4, 0)
	setBit8(&i.r.m1, 7, false)
}

// Gfx returns the graphics id; bit 8 lives in m6.
func (i Industry) Gfx() uint16 {
	return uint16(i.r.m5) | uint16(gb8(i.r.m6, 2, 1))<<8
}

func (i Industry) SetGfx(gfx uint16) {
	if gfx >= MaxIndustryGfx {
		panic(fmt.Sprintf("tile: industry gfx %d out of range", gfx))
	}
	i.r.m5 = uint8(gfx)
	sb8(&i.r.m6, 2, 1, uint8(gfx>>8))
}

func (i Industry) AnimationLoop() uint8 {
	return i.r.m4
}

func (i Industry) SetAnimationLoop(count uint8) {
	i.r.m4 = count
}

// RandomBits returns the random bits stored by SetRandomBits.
func (i Industry) RandomBits() uint8 {
	return i.r.m3
}

func (i Industry) SetRandomBits(bits uint8) {
	i.r.m3 = bits
}

func (i Industry) Triggers() uint8 {
	return gb8(i.r.m6, 3, 3)
}

func (i Industry) SetTriggers(triggers uint8) {
	sb8(&i.r.m6, 3, 3, triggers)
}

func MakeIndustry(r *Record, index uint16, gfx uint16, randomBits uint8, wc WaterClass) {
	r.ChangeKind(KindIndustry)
	r.m2 = index
	i := r.Industry()
	i.SetGfx(gfx)
	i.SetRandomBits(randomBits)
	r.SetWaterClass(wc)
}
