package tile

import "fmt"

type TreeGround uint8

const (
	TreeGroundGrass TreeGround = iota
	TreeGroundRough
	TreeGroundSnowDesert
	TreeGroundShore
	TreeGroundRoughSnow
)

type TreeType uint8

// MaxTreeGrowth is the growth stage of a fully grown tree.
const MaxTreeGrowth = 3

// Trees is the overlay of a cell with one to four trees.
type Trees struct{ r *Record }

func (r *Record) Trees() Trees {
	r.assertKind(KindTrees)
	return Trees{r}
}

func (t Trees) Type() TreeType {
	return TreeType(t.r.m3)
}

func (t Trees) Ground() TreeGround {
	return TreeGround(gb16(t.r.m2, 6, 3))
}

func (t Trees) Density() uint8 {
	return uint8(gb16(t.r.m2, 4, 2))
}

// SetGroundDensity changes the ground below the trees. Shore ground stands in the sea.
func (t Trees) SetGroundDensity(g TreeGround, density uint8) {
	if g > TreeGroundRoughSnow {
		panic(fmt.Sprintf("tile: invalid tree ground %d", g))
	}
	sb16(&t.r.m2, 4, 2, uint16(density))
	sb16(&t.r.m2, 6, 3, uint16(g))
	if g == TreeGroundShore {
		t.r.SetWaterClass(WaterClassSea)
	} else {
		t.r.SetWaterClass(WaterClassInvalid)
	}
}

func (t Trees) Counter() uint8 {
	return uint8(gb16(t.r.m2, 0, 4))
}

func (t Trees) SetCounter(c uint8) {
	sb16(&t.r.m2, 0, 4, uint16(c))
}

// AddCounter changes the update counter by a, wrapping within four bits.
func (t Trees) AddCounter(a int) {
	t.SetCounter(uint8(int(t.Counter())+a) & 0x0F)
}

// Count returns the number of trees on the cell, 1 to 4.
func (t Trees) Count() uint8 {
	return gb8(t.r.m5, 6, 2) + 1
}

func (t Trees) AddCount(c int) {
	n := int(t.Count()) + c
	if n < 1 || n > 4 {
		panic(fmt.Sprintf("tile: tree count %d out of range", n))
	}
	sb8(&t.r.m5, 6, 2, uint8(n-1))
}

func (t Trees) Growth() uint8 {
	return gb8(t.r.m5, 0, 3)
}

func (t Trees) SetGrowth(g uint8) {
	sb8(&t.r.m5, 0, 3, g)
}

func (t Trees) AddGrowth(a int) {
	t.SetGrowth(uint8(int(t.Growth())+a) & 7)
}

// MakeTrees plants count trees (1 to 4) of the given type. Trees on shore stand in the sea.
func MakeTrees(r *Record, typ TreeType, count, growth uint8, g TreeGround, density uint8) {
	if count < 1 || count > 4 {
		panic(fmt.Sprintf("tile: tree count %d out of range", count))
	}
	r.ChangeKindOwned(KindTrees, OwnerNone)
	t := r.Trees()
	t.SetGroundDensity(g, density)
	r.m3 = uint8(typ)
	sb8(&r.m5, 6, 2, count-1)
	t.SetGrowth(growth)
}
