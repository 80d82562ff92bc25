// Package snapshot provides API for writing and reading whole tile maps in a
// compact single-file format.
//
// A snapshot starts with a fixed-size header followed by the body: the map
// records in row-major or Hilbert order, with consecutive identical records
// collapsed into runs, optionally gzip-compressed.
package snapshot

import (
	"errors"
	"iter"

	"github.com/eak1mov/go-tilemap/snapshot/spec"
	"github.com/eak1mov/go-tilemap/tile"
	"github.com/eak1mov/go-tilemap/tilemap"
)

var (
	ErrInvalidHeader  = spec.ErrInvalidHeader
	ErrInvalidVersion = spec.ErrInvalidVersion
	ErrCorrupt        = spec.ErrCorrupt
)

// Visitor calls visit for each record of a snapshot and stops at the first error.
type Visitor func(visit func(tile.Index, tile.Record) error) error

var errVisitCancelled = errors.New("cancelled")

// IterRecords adapts a Visitor to an iterator.
//
// The iterator panics on any error returned by the visitor.
func IterRecords(visitor Visitor) iter.Seq2[tile.Index, tile.Record] {
	return func(yield func(tile.Index, tile.Record) bool) {
		err := visitor(func(t tile.Index, r tile.Record) error {
			if !yield(t, r) {
				return errVisitCancelled
			}
			return nil
		})
		if err != nil && err != errVisitCancelled {
			panic(err)
		}
	}
}

// slots returns the traversal of a sizeX by sizeY map in the given order.
func slots(sizeX, sizeY uint32, order spec.Order) iter.Seq[tile.Index] {
	if order == spec.OrderHilbert {
		return tilemap.HilbertOrder(sizeX, sizeY)
	}
	return tilemap.RowMajorOrder(sizeX, sizeY)
}
