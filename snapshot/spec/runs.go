package spec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/eak1mov/go-tilemap/tile"
)

var ErrCorrupt = errors.New("corrupt snapshot body")

// Run is a record repeated Length times in traversal order.
type Run struct {
	Length uint64
	Record tile.Record
}

// CompactRuns collapses consecutive identical records into runs.
func CompactRuns(records iter.Seq[tile.Record]) []Run {
	runs := make([]Run, 0)
	for r := range records {
		if n := len(runs); n > 0 && runs[n-1].Record == r {
			runs[n-1].Length++
			continue
		}
		runs = append(runs, Run{Length: 1, Record: r})
	}
	return runs
}

// AppendRuns encodes each run as uvarint(length) followed by the record bytes.
func AppendRuns(buffer []byte, runs []Run) []byte {
	for _, run := range runs {
		buffer = binary.AppendUvarint(buffer, run.Length)
		buffer, _ = run.Record.AppendBinary(buffer)
	}
	return buffer
}

// MaxRunsLength bounds the serialized size of runCount runs.
func MaxRunsLength(runCount uint64) uint64 {
	return runCount * (binary.MaxVarintLen64 + tile.RecordLength)
}

func SerializeRuns(runs []Run) []byte {
	return AppendRuns(make([]byte, 0, len(runs)*(tile.RecordLength+1)), runs)
}

func DeserializeRuns(data []byte) ([]Run, error) {
	byteReader := bytes.NewReader(data)
	runs := make([]Run, 0)
	recordData := make([]byte, tile.RecordLength)

	for byteReader.Len() > 0 {
		length, err := binary.ReadUvarint(byteReader)
		if err != nil {
			return nil, fmt.Errorf("%w: run %d: %w", ErrCorrupt, len(runs), err)
		}
		if length == 0 {
			return nil, fmt.Errorf("%w: run %d is empty", ErrCorrupt, len(runs))
		}
		if _, err := io.ReadFull(byteReader, recordData); err != nil {
			return nil, fmt.Errorf("%w: run %d: %w", ErrCorrupt, len(runs), err)
		}
		run := Run{Length: length}
		if err := run.Record.UnmarshalBinary(recordData); err != nil {
			return nil, fmt.Errorf("%w: run %d: %w", ErrCorrupt, len(runs), err)
		}
		runs = append(runs, run)
	}

	return runs, nil
}

// ExpandRuns returns the records of runs in order.
func ExpandRuns(runs []Run) iter.Seq[tile.Record] {
	return func(yield func(tile.Record) bool) {
		for _, run := range runs {
			for range run.Length {
				if !yield(run.Record) {
					return
				}
			}
		}
	}
}
