package tile

import "fmt"

// Owner identifies the owner of a cell. Values below MaxCompanies are companies.
type Owner uint8

const (
	MaxCompanies = 15

	OwnerTown  Owner = 0x0F
	OwnerNone  Owner = 0x10
	OwnerWater Owner = 0x11
	OwnerDeity Owner = 0x12
)

func (o Owner) IsCompany() bool {
	return o < MaxCompanies
}

func (o Owner) String() string {
	switch o {
	case OwnerTown:
		return "town"
	case OwnerNone:
		return "none"
	case OwnerWater:
		return "water"
	case OwnerDeity:
		return "deity"
	}
	return fmt.Sprintf("company %d", uint8(o))
}

type WaterClass uint8

const (
	WaterClassSea WaterClass = iota
	WaterClassCanal
	WaterClassRiver
	WaterClassInvalid
)

func (wc WaterClass) IsValid() bool {
	return wc < WaterClassInvalid
}

type TropicZone uint8

const (
	ZoneNormal TropicZone = iota
	ZoneDesert
	ZoneRainforest
)

type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) Other() Axis {
	return a.check() ^ 1
}

func (a Axis) check() Axis {
	if a > AxisY {
		panic(fmt.Sprintf("tile: invalid axis %d", uint8(a)))
	}
	return a
}

// DiffC is a coordinate offset in cells.
type DiffC struct {
	X, Y int16
}

// DiagDirection is one of the four edge-adjacent directions.
type DiagDirection uint8

const (
	DiagDirNE DiagDirection = iota
	DiagDirSE
	DiagDirSW
	DiagDirNW
)

var diagDirDiffs = [...]DiffC{
	DiagDirNE: {-1, 0},
	DiagDirSE: {0, 1},
	DiagDirSW: {1, 0},
	DiagDirNW: {0, -1},
}

func DiagDirections() [4]DiagDirection {
	return [4]DiagDirection{DiagDirNE, DiagDirSE, DiagDirSW, DiagDirNW}
}

func (d DiagDirection) IsValid() bool {
	return d <= DiagDirNW
}

func (d DiagDirection) check() DiagDirection {
	if !d.IsValid() {
		panic(fmt.Sprintf("tile: invalid diagonal direction %d", uint8(d)))
	}
	return d
}

func (d DiagDirection) Reverse() DiagDirection {
	return d.check() ^ 2
}

func (d DiagDirection) Axis() Axis {
	return Axis(d.check() & 1)
}

func (d DiagDirection) DiffC() DiffC {
	return diagDirDiffs[d.check()]
}

func (d DiagDirection) Direction() Direction {
	return Direction(2*d.check() + 1)
}

// AxisToDiagDir returns the direction along a pointing away from the origin side
// (south-west for X, south-east for Y).
func AxisToDiagDir(a Axis) DiagDirection {
	return DiagDirection(2 - a.check())
}

// XYNSToDiagDir converts an axis and a north/south flag into a direction.
func XYNSToDiagDir(a Axis, ns uint8) DiagDirection {
	return DiagDirection(uint8(a.check())*3 ^ ns*2)
}

// Direction is one of the eight neighbour directions.
type Direction uint8

const (
	DirN Direction = iota
	DirNE
	DirE
	DirSE
	DirS
	DirSW
	DirW
	DirNW
)

var dirDiffs = [...]DiffC{
	DirN:  {-1, -1},
	DirNE: {-1, 0},
	DirE:  {-1, 1},
	DirSE: {0, 1},
	DirS:  {1, 1},
	DirSW: {1, 0},
	DirW:  {1, -1},
	DirNW: {0, -1},
}

func (d Direction) IsValid() bool {
	return d <= DirNW
}

func (d Direction) DiffC() DiffC {
	if !d.IsValid() {
		panic(fmt.Sprintf("tile: invalid direction %d", uint8(d)))
	}
	return dirDiffs[d]
}

func (d Direction) Reverse() Direction {
	return (d + 4) & 7
}

func (d Direction) IsDiagonal() bool {
	return d&1 != 0
}

type TransportType uint8

const (
	TransportRail TransportType = iota
	TransportRoad
	TransportWater
)

// RailType and RoadType are indices into external type tables.
type (
	RailType uint8
	RoadType uint8
)

const (
	InvalidRailType RailType = 0x3F
	InvalidRoadType RoadType = 0x3F
)
