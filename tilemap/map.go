// Package tilemap provides the map-wide tile store: coordinate arithmetic over
// power-of-two sized axes, bounds-checked record access, slope and height
// queries, and multi-cell constructions.
//
// A Map is not safe for concurrent use. It is owned by a single writer; readers
// on other goroutines work on a Clone.
package tilemap

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math/bits"

	"github.com/eak1mov/go-tilemap/tile"
)

const (
	MinSizeBits = 6
	MaxSizeBits = 12
	MinSize     = 1 << MinSizeBits
	MaxSize     = 1 << MaxSizeBits
)

var (
	ErrInvalidSize = errors.New("tilemap: invalid map size")
	ErrRecordCount = errors.New("tilemap: record count mismatch")
)

type config struct {
	logger        *slog.Logger
	freeformEdges bool
}

type Option func(*config)

func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithFreeformEdges makes the northern row and column part of the playable map.
// Wrapping arithmetic then treats x == 0 and y == 0 as off-map.
func WithFreeformEdges(enabled bool) Option {
	return func(c *config) { c.freeformEdges = enabled }
}

// Map is a dense store of one tile.Record per cell.
type Map struct {
	logger        *slog.Logger
	freeformEdges bool

	logX, logY   uint
	sizeX, sizeY uint32
	records      []tile.Record
}

// CheckSize reports whether a map of sizeX by sizeY cells can be allocated.
func CheckSize(sizeX, sizeY uint32) error {
	for _, s := range [2]uint32{sizeX, sizeY} {
		if s < MinSize || s > MaxSize || s&(s-1) != 0 {
			return fmt.Errorf("%w: %dx%d", ErrInvalidSize, sizeX, sizeY)
		}
	}
	return nil
}

func newMap(opts []Option) *Map {
	c := config{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return &Map{logger: c.logger, freeformEdges: c.freeformEdges}
}

// New allocates a map with every cell set to void. Invalid sizes panic.
func New(sizeX, sizeY uint32, opts ...Option) *Map {
	m := newMap(opts)
	m.Allocate(sizeX, sizeY)
	return m
}

// Load builds a map over records, which must hold sizeX*sizeY records in slot order.
// The map takes ownership of the slice.
func Load(sizeX, sizeY uint32, records []tile.Record, opts ...Option) (*Map, error) {
	if err := CheckSize(sizeX, sizeY); err != nil {
		return nil, err
	}
	if want := int(sizeX) * int(sizeY); len(records) != want {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrRecordCount, len(records), want)
	}
	m := newMap(opts)
	m.setSize(sizeX, sizeY)
	m.records = records
	m.logger.Debug("tilemap: load", "sizeX", sizeX, "sizeY", sizeY)
	return m, nil
}

// Allocate replaces the store with a new one of the given size. Every cell
// becomes void and slots from the previous allocation must be discarded.
func (m *Map) Allocate(sizeX, sizeY uint32) {
	if err := CheckSize(sizeX, sizeY); err != nil {
		panic(err)
	}
	m.logger.Debug("tilemap: allocate", "sizeX", sizeX, "sizeY", sizeY)

	m.setSize(sizeX, sizeY)
	m.records = make([]tile.Record, int(sizeX)*int(sizeY))
	for i := range m.records {
		tile.MakeVoid(&m.records[i])
	}
}

func (m *Map) setSize(sizeX, sizeY uint32) {
	m.sizeX, m.sizeY = sizeX, sizeY
	m.logX = uint(bits.TrailingZeros32(sizeX))
	m.logY = uint(bits.TrailingZeros32(sizeY))
}

// Record returns the record stored at t. Out-of-range slots panic.
func (m *Map) Record(t tile.Index) *tile.Record {
	if uint64(t) >= uint64(len(m.records)) {
		panic(fmt.Sprintf("tilemap: slot %d out of range [0, %d)", t, len(m.records)))
	}
	return &m.records[t]
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	c := *m
	c.records = make([]tile.Record, len(m.records))
	copy(c.records, m.records)
	return &c
}

// Records returns an iterator over all records in slot order.
func (m *Map) Records() iter.Seq2[tile.Index, tile.Record] {
	return func(yield func(tile.Index, tile.Record) bool) {
		for i, r := range m.records {
			if !yield(tile.Index(i), r) {
				return
			}
		}
	}
}

func (m *Map) FreeformEdges() bool {
	return m.freeformEdges
}

func (m *Map) SizeX() uint32 { return m.sizeX }
func (m *Map) SizeY() uint32 { return m.sizeY }
func (m *Map) LogX() uint    { return m.logX }
func (m *Map) LogY() uint    { return m.logY }
func (m *Map) MaxX() uint32  { return m.sizeX - 1 }
func (m *Map) MaxY() uint32  { return m.sizeY - 1 }

// Size returns the number of cells.
func (m *Map) Size() uint32 {
	return m.sizeX * m.sizeY
}

// IsKind reports whether the cell at t has kind k.
func (m *Map) IsKind(t tile.Index, k tile.Kind) bool {
	return m.Record(t).Kind() == k
}

func (m *Map) Height(t tile.Index) int {
	return int(m.Record(t).Height())
}
