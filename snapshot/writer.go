package snapshot

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/eak1mov/go-tilemap/snapshot/spec"
	"github.com/eak1mov/go-tilemap/tile"
	"github.com/eak1mov/go-tilemap/tilemap"
)

type Writer interface {
	io.Closer

	// WriteMap writes the complete snapshot of m. It may be called only once.
	WriteMap(m *tilemap.Map) error
}

type writerConfig struct {
	Compression spec.Compression
	Order       spec.Order
	Logger      *slog.Logger
}

type WriterOption func(*writerConfig)

func WithCompression(compression spec.Compression) WriterOption {
	return func(c *writerConfig) { c.Compression = compression }
}

func WithOrder(order spec.Order) WriterOption {
	return func(c *writerConfig) { c.Order = order }
}

func WithLogger(logger *slog.Logger) WriterOption {
	return func(c *writerConfig) { c.Logger = logger }
}

type writer struct {
	config writerConfig
	output io.WriteCloser
}

// NewFileWriter creates the snapshot file at filePath. The default is Hilbert
// order with gzip compression.
func NewFileWriter(filePath string, opts ...WriterOption) (Writer, error) {
	file, err := os.Create(filePath)
	if err != nil {
		return nil, err
	}
	return NewWriter(file, opts...), nil
}

// NewWriter creates a Writer over output, which is closed by Close.
func NewWriter(output io.WriteCloser, opts ...WriterOption) Writer {
	return &writer{config: newWriterConfig(opts), output: output}
}

func newWriterConfig(opts []WriterOption) writerConfig {
	config := writerConfig{
		Compression: spec.CompressionGzip,
		Order:       spec.OrderHilbert,
		Logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&config)
	}
	return config
}

func (w *writer) WriteMap(m *tilemap.Map) error {
	if w.output == nil {
		panic("snapshot: map already written")
	}
	data, err := encode(m, w.config)
	if err != nil {
		return err
	}

	w.config.Logger.Debug("snapshot: write", "bytes", len(data))
	if _, err := w.output.Write(data); err != nil {
		return err
	}

	w.config.Logger.Debug("snapshot: flush")
	err = w.output.Close()
	w.output = nil
	return err
}

func (w *writer) Close() error {
	if w.output == nil {
		return nil
	}
	return w.output.Close()
}

// Encode returns the complete snapshot of m: header followed by the body.
func Encode(m *tilemap.Map, opts ...WriterOption) ([]byte, error) {
	return encode(m, newWriterConfig(opts))
}

func encode(m *tilemap.Map, config writerConfig) ([]byte, error) {
	order, compression, logger := config.Order, config.Compression, config.Logger
	if order != spec.OrderRowMajor && order != spec.OrderHilbert {
		return nil, fmt.Errorf("order not supported (%v)", order)
	}

	logger.Debug("snapshot: compact", "order", order)
	runs := spec.CompactRuns(func(yield func(tile.Record) bool) {
		for t := range slots(m.SizeX(), m.SizeY(), order) {
			if !yield(*m.Record(t)) {
				return
			}
		}
	})

	logger.Debug("snapshot: compress", "runs", len(runs), "compression", compression)
	body, err := spec.Compress(spec.SerializeRuns(runs), compression)
	if err != nil {
		return nil, err
	}

	header := spec.Header{
		HeaderMagic:  spec.HeaderMagicV1,
		LogX:         uint8(m.LogX()),
		LogY:         uint8(m.LogY()),
		Order:        order,
		Compression:  compression,
		Freeform:     m.FreeformEdges(),
		RecordLength: tile.RecordLength,
		RecordCount:  uint64(m.Size()),
		RunCount:     uint64(len(runs)),
		BodyLength:   uint64(len(body)),
	}
	return append(spec.SerializeHeader(&header), body...), nil
}
