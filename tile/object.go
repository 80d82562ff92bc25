package tile

import "fmt"

// MaxObjectIndex bounds the 24 bit object pool index.
const MaxObjectIndex = 1 << 24

// Object is the overlay of a cell of a map object such as a transmitter or a lighthouse.
type Object struct{ r *Record }

func (r *Record) Object() Object {
	r.assertKind(KindObject)
	return Object{r}
}

func (o Object) Index() uint32 {
	return uint32(o.r.m2) | uint32(o.r.m5)<<16
}

func (o Object) Owner() Owner {
	return Owner(gb8(o.r.m1, 0, 5))
}

func (o Object) RandomBits() uint8 {
	return o.r.m3
}

func MakeObject(r *Record, o Owner, index uint32, wc WaterClass, randomBits uint8) {
	if index >= MaxObjectIndex {
		panic(fmt.Sprintf("tile: object index %d out of range", index))
	}
	r.ChangeKindOwned(KindObject, o)
	r.SetWaterClass(wc)
	r.m2 = uint16(index)
	r.m5 = uint8(index >> 16)
	r.m3 = randomBits
}
