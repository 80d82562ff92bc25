package snapshot

import (
	"fmt"
	"io"
	"iter"
	"math"
	"os"

	"github.com/eak1mov/go-tilemap/snapshot/spec"
	"github.com/eak1mov/go-tilemap/tile"
	"github.com/eak1mov/go-tilemap/tilemap"
)

type Reader interface {
	io.Closer

	Header() spec.Header
	SizeX() uint32
	SizeY() uint32

	// ReadMap decodes the whole snapshot into a new map.
	ReadMap(opts ...tilemap.Option) (*tilemap.Map, error)

	Records() iter.Seq2[tile.Index, tile.Record]
	VisitRecords(visit func(tile.Index, tile.Record) error) error
}

type FileAccessFunc = func(offset, length uint64) ([]byte, error)

type reader struct {
	fileAccess FileAccessFunc
	fileCloser func() error
	header     *spec.Header
}

func NewFileReader(filePath string) (Reader, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	fileAccess := func(offset uint64, length uint64) ([]byte, error) {
		buffer := make([]byte, length)
		if _, err := file.ReadAt(buffer, int64(offset)); err != nil {
			return nil, err
		}
		return buffer, nil
	}
	r, err := newReader(fileAccess, uint64(stat.Size()), file.Close)
	if err != nil {
		file.Close()
		return nil, err
	}
	return r, nil
}

// NewReader reads a snapshot of unknown total size through fileAccess.
func NewReader(fileAccess FileAccessFunc) (Reader, error) {
	return newReader(fileAccess, math.MaxUint64, func() error { return nil })
}

// Decode reads a snapshot produced by Encode.
func Decode(data []byte, opts ...tilemap.Option) (*tilemap.Map, error) {
	size := uint64(len(data))
	r, err := newReader(func(offset, length uint64) ([]byte, error) {
		if offset > size || length > size-offset {
			return nil, fmt.Errorf("%w: %d bytes at %d past end %d", ErrCorrupt, length, offset, size)
		}
		return data[offset : offset+length], nil
	}, size, func() error { return nil })
	if err != nil {
		return nil, err
	}
	return r.ReadMap(opts...)
}

func newReader(fileAccess FileAccessFunc, size uint64, fileCloser func() error) (*reader, error) {
	headerData, err := fileAccess(0, spec.HeaderLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}
	header, err := spec.DeserializeHeader(headerData)
	if err != nil {
		return nil, err
	}
	r := &reader{
		fileAccess: fileAccess,
		fileCloser: fileCloser,
		header:     header,
	}
	if err := tilemap.CheckSize(r.SizeX(), r.SizeY()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}
	if header.RecordCount != uint64(r.SizeX())*uint64(r.SizeY()) {
		return nil, fmt.Errorf("%w: %d records for %dx%d map", ErrInvalidHeader, header.RecordCount, r.SizeX(), r.SizeY())
	}
	if header.Order != spec.OrderRowMajor && header.Order != spec.OrderHilbert {
		return nil, fmt.Errorf("%w: order not supported (%v)", ErrInvalidHeader, header.Order)
	}
	if header.RunCount > header.RecordCount {
		return nil, fmt.Errorf("%w: %d runs for %d records", ErrCorrupt, header.RunCount, header.RecordCount)
	}
	maxBody := spec.MaxCompressedLength(spec.MaxRunsLength(header.RunCount), header.Compression)
	if size >= spec.BodyOffset {
		maxBody = min(maxBody, size-spec.BodyOffset)
	}
	if header.BodyLength > maxBody {
		return nil, fmt.Errorf("%w: body length %d exceeds %d", ErrCorrupt, header.BodyLength, maxBody)
	}
	return r, nil
}

func (r *reader) Close() error {
	return r.fileCloser()
}

func (r *reader) Header() spec.Header {
	return *r.header
}

func (r *reader) SizeX() uint32 { return 1 << r.header.LogX }
func (r *reader) SizeY() uint32 { return 1 << r.header.LogY }

func (r *reader) readRuns() ([]spec.Run, error) {
	body, err := r.fileAccess(spec.BodyOffset, r.header.BodyLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	data, err := spec.Decompress(body, r.header.Compression, spec.MaxRunsLength(r.header.RunCount))
	if err != nil {
		return nil, err
	}
	runs, err := spec.DeserializeRuns(data)
	if err != nil {
		return nil, err
	}
	if uint64(len(runs)) != r.header.RunCount {
		return nil, fmt.Errorf("%w: got %d runs, want %d", ErrCorrupt, len(runs), r.header.RunCount)
	}
	total := uint64(0)
	for _, run := range runs {
		if run.Length > r.header.RecordCount-total {
			return nil, fmt.Errorf("%w: more than %d records", ErrCorrupt, r.header.RecordCount)
		}
		total += run.Length
	}
	if total != r.header.RecordCount {
		return nil, fmt.Errorf("%w: got %d records, want %d", ErrCorrupt, total, r.header.RecordCount)
	}
	return runs, nil
}

// VisitRecords calls visit for every slot in the order the snapshot was written.
// The body is validated before the first call.
func (r *reader) VisitRecords(visit func(tile.Index, tile.Record) error) error {
	runs, err := r.readRuns()
	if err != nil {
		return err
	}
	next, stop := iter.Pull(spec.ExpandRuns(runs))
	defer stop()
	for t := range slots(r.SizeX(), r.SizeY(), r.header.Order) {
		record, _ := next()
		if err := visit(t, record); err != nil {
			return err
		}
	}
	return nil
}

func (r *reader) Records() iter.Seq2[tile.Index, tile.Record] {
	return IterRecords(r.VisitRecords)
}

func (r *reader) ReadMap(opts ...tilemap.Option) (*tilemap.Map, error) {
	records := make([]tile.Record, r.header.RecordCount)
	err := r.VisitRecords(func(t tile.Index, record tile.Record) error {
		records[t] = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	opts = append([]tilemap.Option{tilemap.WithFreeformEdges(r.header.Freeform)}, opts...)
	return tilemap.Load(r.SizeX(), r.SizeY(), records, opts...)
}
