package tile

import "fmt"

type ClearGround uint8

const (
	GroundGrass ClearGround = iota
	GroundRough
	GroundRocks
	GroundFields
	GroundSnow
	GroundDesert
)

// Clear is the overlay of open ground: grass, rough land, rocks, farm fields, snow or desert.
type Clear struct{ r *Record }

func (r *Record) Clear() Clear {
	r.assertKind(KindClear)
	return Clear{r}
}

func (c Clear) IsSnow() bool {
	return hasBit8(c.r.m3, 4)
}

// RawGround returns the stored ground, ignoring the snow flag.
func (c Clear) RawGround() ClearGround {
	return ClearGround(gb8(c.r.m5, 2, 3))
}

// Ground returns GroundSnow for snow covered cells and the stored ground otherwise.
func (c Clear) Ground() ClearGround {
	if c.IsSnow() {
		return GroundSnow
	}
	return c.RawGround()
}

func (c Clear) IsGround(g ClearGround) bool {
	return c.Ground() == g
}

func (c Clear) Density() uint8 {
	return gb8(c.r.m5, 0, 2)
}

func (c Clear) SetDensity(d uint8) {
	sb8(&c.r.m5, 0, 2, d)
}

// AddDensity changes the density by d, wrapping within the two bit field.
func (c Clear) AddDensity(d int) {
	c.SetDensity(uint8(int(c.Density())+d) & 3)
}

func (c Clear) Counter() uint8 {
	return gb8(c.r.m5, 5, 3)
}

func (c Clear) SetCounter(v uint8) {
	sb8(&c.r.m5, 5, 3, v)
}

func (c Clear) AddCounter(d int) {
	c.SetCounter(uint8(int(c.Counter())+d) & 7)
}

// SetGroundDensity sets ground and density and resets the update counter.
func (c Clear) SetGroundDensity(g ClearGround, d uint8) {
	if g > GroundDesert {
		panic(fmt.Sprintf("tile: invalid clear ground %d", g))
	}
	sb8(&c.r.m5, 0, 2, d)
	sb8(&c.r.m5, 2, 3, uint8(g))
	sb8(&c.r.m5, 5, 3, 0)
}

// Field is the overlay of a clear cell with farm field ground.
type Field struct{ r *Record }

func (r *Record) Field() Field {
	if g := r.Clear().RawGround(); g != GroundFields {
		panic(fmt.Sprintf("tile: clear ground is %d, want fields", g))
	}
	return Field{r}
}

func (f Field) Type() uint8 {
	return gb8(f.r.m3, 0, 4)
}

func (f Field) SetType(t uint8) {
	sb8(&f.r.m3, 0, 4, t)
}

// Industry returns the industry that owns the field.
func (f Field) Industry() uint16 {
	return f.r.m2
}

func (f Field) SetIndustry(i uint16) {
	f.r.m2 = i
}

// Fence returns the fence type on the given side of the field. Zero means no fence.
func (f Field) Fence(side DiagDirection) uint8 {
	switch side.check() {
	case DiagDirNE:
		return gb8(f.r.m3, 5, 3)
	case DiagDirSE:
		return gb8(f.r.m4, 2, 3)
	case DiagDirSW:
		return gb8(f.r.m4, 5, 3)
	default:
		return gb8(f.r.m6, 2, 3)
	}
}

func (f Field) SetFence(side DiagDirection, fence uint8) {
	switch side.check() {
	case DiagDirNE:
		sb8(&f.r.m3, 5, 3, fence)
	case DiagDirSE:
		sb8(&f.r.m4, 2, 3, fence)
	case DiagDirSW:
		sb8(&f.r.m4, 5, 3, fence)
	default:
		sb8(&f.r.m6, 2, 3, fence)
	}
}

func (f Field) HasFences() bool {
	for _, d := range DiagDirections() {
		if f.Fence(d) != 0 {
			return true
		}
	}
	return false
}

func MakeClear(r *Record, g ClearGround, density uint8) {
	r.ChangeKindOwned(KindClear, OwnerNone)
	r.Clear().SetGroundDensity(g, density)
}

func MakeField(r *Record, fieldType uint8, industry uint16) {
	r.ChangeKindOwned(KindClear, OwnerNone)
	r.Clear().SetGroundDensity(GroundFields, 3)
	f := r.Field()
	f.SetIndustry(industry)
	f.SetType(fieldType)
}

// MakeSnow covers a clear cell with snow of the given density. Fields turn into grass.
func MakeSnow(r *Record, density uint8) {
	c := r.Clear()
	if c.IsSnow() {
		panic("tile: clear tile is already snow covered")
	}
	setBit8(&r.m3, 4, true)
	if c.RawGround() == GroundFields {
		c.SetGroundDensity(GroundGrass, density)
	} else {
		c.SetDensity(density)
	}
}

// ClearSnow removes the snow cover, leaving the underlying ground at full density.
func ClearSnow(r *Record) {
	c := r.Clear()
	if !c.IsSnow() {
		panic("tile: clear tile is not snow covered")
	}
	setBit8(&r.m3, 4, false)
	c.SetDensity(3)
}
