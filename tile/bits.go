package tile

import "fmt"

func gb8(x uint8, s, n uint) uint8 {
	return (x >> s) & (1<<n - 1)
}

// sb8 stores v into n bits of x starting at bit s. Values wider than the field panic.
func sb8(x *uint8, s, n uint, v uint8) {
	mask := uint8(1<<n - 1)
	if v&^mask != 0 {
		panic(fmt.Sprintf("tile: value %d does not fit in %d bits", v, n))
	}
	*x = *x&^(mask<<s) | v<<s
}

func gb16(x uint16, s, n uint) uint16 {
	return (x >> s) & (1<<n - 1)
}

func sb16(x *uint16, s, n uint, v uint16) {
	mask := uint16(1<<n - 1)
	if v&^mask != 0 {
		panic(fmt.Sprintf("tile: value %d does not fit in %d bits", v, n))
	}
	*x = *x&^(mask<<s) | v<<s
}

func hasBit8(x uint8, s uint) bool {
	return x&(1<<s) != 0
}

func setBit8(x *uint8, s uint, b bool) {
	if b {
		*x |= 1 << s
	} else {
		*x &^= 1 << s
	}
}

func hasBit16(x uint16, s uint) bool {
	return x&(1<<s) != 0
}

func setBit16(x *uint16, s uint, b bool) {
	if b {
		*x |= 1 << s
	} else {
		*x &^= 1 << s
	}
}

func b2u8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// kindSet is a bitmask of kinds sharing a sub-layout.
type kindSet uint16

func (s kindSet) has(k Kind) bool {
	return s&(1<<k) != 0
}

const (
	allKinds kindSet = 1<<kindEnd - 1

	ownedKinds      kindSet = allKinds &^ (1<<KindVoid | 1<<KindHouse | 1<<KindIndustry)
	waterClassKinds kindSet = 1<<KindWater | 1<<KindStation | 1<<KindIndustry | 1<<KindObject | 1<<KindTrees
	dockingKinds    kindSet = 1<<KindWater | 1<<KindRailway | 1<<KindStation | 1<<KindTunnelBridge
	animatedKinds   kindSet = 1<<KindHouse | 1<<KindObject | 1<<KindIndustry | 1<<KindStation
	roadTypeKinds   kindSet = 1<<KindRoad | 1<<KindStation | 1<<KindTunnelBridge
	railTypeKinds   kindSet = 1<<KindRailway | 1<<KindRoad | 1<<KindStation | 1<<KindTunnelBridge
)
