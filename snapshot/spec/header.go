package spec

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/eak1mov/go-tilemap/tile"
)

type Compression uint8

const (
	CompressionUnknown Compression = iota
	CompressionNone
	CompressionGzip
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	}
	return fmt.Sprintf("compression(%d)", uint8(c))
}

func ParseCompression(s string) (Compression, error) {
	for _, c := range []Compression{CompressionNone, CompressionGzip} {
		if c.String() == s {
			return c, nil
		}
	}
	return CompressionUnknown, fmt.Errorf("compression not supported (%s)", s)
}

// Order is the traversal order of map slots in the body.
type Order uint8

const (
	OrderUnknown Order = iota
	OrderRowMajor
	OrderHilbert
)

func (o Order) String() string {
	switch o {
	case OrderRowMajor:
		return "rowmajor"
	case OrderHilbert:
		return "hilbert"
	}
	return fmt.Sprintf("order(%d)", uint8(o))
}

func ParseOrder(s string) (Order, error) {
	for _, o := range []Order{OrderRowMajor, OrderHilbert} {
		if o.String() == s {
			return o, nil
		}
	}
	return OrderUnknown, fmt.Errorf("order not supported (%s)", s)
}

type Header struct {
	HeaderMagic  uint64
	LogX         uint8
	LogY         uint8
	Order        Order
	Compression  Compression
	Freeform     bool
	RecordLength uint16
	RecordCount  uint64
	RunCount     uint64
	BodyLength   uint64
}

const (
	headerMagic     uint64 = 0x50414D454C4954 // "TILEMAP"
	headerMagicMask uint64 = 1<<56 - 1
	HeaderMagicV1   uint64 = headerMagic | (0x01 << 56)

	HeaderLength = 39
	BodyOffset   = HeaderLength
)

var ErrInvalidHeader = errors.New("invalid snapshot header")
var ErrInvalidVersion = errors.New("invalid snapshot version")

func SerializeHeader(header *Header) []byte {
	var buffer bytes.Buffer
	writer := bufio.NewWriter(&buffer)
	binary.Write(writer, binary.LittleEndian, header)
	writer.Flush()
	return buffer.Bytes()
}

func DeserializeHeader(buffer []byte) (*Header, error) {
	header := Header{}
	reader := bytes.NewReader(buffer)
	err := binary.Read(reader, binary.LittleEndian, &header)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}
	if header.HeaderMagic&headerMagicMask != headerMagic {
		return nil, ErrInvalidHeader
	}
	if header.HeaderMagic != HeaderMagicV1 {
		return nil, ErrInvalidVersion
	}
	if header.RecordLength != tile.RecordLength {
		return nil, fmt.Errorf("%w: record length %d", ErrInvalidHeader, header.RecordLength)
	}
	if header.LogX >= 32 || header.LogY >= 32 {
		return nil, fmt.Errorf("%w: size 2^%d x 2^%d", ErrInvalidHeader, header.LogX, header.LogY)
	}
	return &header, nil
}
