package tile

import "fmt"

type StationType uint8

const (
	StationRail StationType = iota
	StationAirport
	StationTruck
	StationBus
	StationOilrig
	StationDock
	StationBuoy
	StationWaypoint
)

// Station is the overlay of one cell of a station, waypoint or buoy.
type Station struct{ r *Record }

func (r *Record) Station() Station {
	r.assertKind(KindStation)
	return Station{r}
}

func (s Station) Index() uint16 {
	return s.r.m2
}

func (s Station) Owner() Owner {
	return Owner(gb8(s.r.m1, 0, 5))
}

func (s Station) Type() StationType {
	return StationType(gb8(s.r.m6, 3, 3))
}

func (s Station) IsRailStation() bool {
	return s.Type() == StationRail || s.Type() == StationWaypoint
}

func (s Station) IsRoadStop() bool {
	return s.Type() == StationTruck || s.Type() == StationBus
}

func (s Station) IsAirport() bool {
	return s.Type() == StationAirport
}

func (s Station) IsDock() bool {
	return s.Type() == StationDock
}

func (s Station) IsBuoy() bool {
	return s.Type() == StationBuoy
}

func (s Station) IsOilrig() bool {
	return s.Type() == StationOilrig
}

// Gfx returns the graphics section of the cell.
func (s Station) Gfx() uint8 {
	return s.r.m5
}

func (s Station) SetGfx(gfx uint8) {
	s.r.m5 = gfx
}

func (s Station) RandomBits() uint8 {
	return gb8(s.r.m3, 4, 4)
}

func (s Station) SetRandomBits(bits uint8) {
	sb8(&s.r.m3, 4, 4, bits)
}

// SpecIndex returns the index of the custom station specification, zero for default graphics.
func (s Station) SpecIndex() uint8 {
	return s.r.m4
}

func (s Station) SetSpecIndex(i uint8) {
	s.r.m4 = i
}

func (s Station) IsReserved() bool {
	return hasBit8(s.r.m6, 2)
}

func (s Station) SetReserved(b bool) {
	if !s.IsRailStation() {
		panic("tile: reservation on a non-rail station")
	}
	setBit8(&s.r.m6, 2, b)
}

// MakeStation builds one station cell with the given graphics section.
func MakeStation(r *Record, o Owner, station uint16, st StationType, section uint8, wc WaterClass) {
	if st > StationWaypoint {
		panic(fmt.Sprintf("tile: invalid station type %d", st))
	}
	r.ChangeKindOwned(KindStation, o)
	r.SetWaterClass(wc)
	r.SetDocking(false)
	r.m2 = station
	r.m5 = section
	sb8(&r.m6, 3, 3, uint8(st))
}
