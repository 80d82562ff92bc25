package spec_test

import (
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/eak1mov/go-tilemap/snapshot/spec"
	"github.com/stretchr/testify/require"
)

func TestHeaderLength(t *testing.T) {
	require.Equal(t, binary.Size(spec.Header{}), spec.HeaderLength)
}

func TestHeaderSerializer(t *testing.T) {
	header1 := spec.Header{
		HeaderMagic:  spec.HeaderMagicV1,
		LogX:         6,
		LogY:         8,
		Order:        spec.OrderHilbert,
		Compression:  spec.CompressionGzip,
		Freeform:     true,
		RecordLength: 16,
		RecordCount:  1 << 14,
		RunCount:     42,
		BodyLength:   1000,
	}
	headerData := spec.SerializeHeader(&header1)
	require.Len(t, headerData, spec.HeaderLength)
	require.Equal(t, "TILEMAP\x01", string(headerData[:8]))

	header2, err := spec.DeserializeHeader(headerData)
	require.Nil(t, err)
	require.Equal(t, header1, *header2)
}

func TestHeaderErrors(t *testing.T) {
	_, err := spec.DeserializeHeader([]byte("foobar"))
	require.Truef(t, errors.Is(err, spec.ErrInvalidHeader), "%v", err)
	require.Truef(t, errors.Is(err, io.ErrUnexpectedEOF), "%v", err)

	valid := spec.Header{HeaderMagic: spec.HeaderMagicV1, RecordLength: 16}

	badMagic := spec.SerializeHeader(&valid)
	copy(badMagic, "PMTiles")
	_, err = spec.DeserializeHeader(badMagic)
	require.ErrorIs(t, err, spec.ErrInvalidHeader)

	badVersion := spec.SerializeHeader(&valid)
	badVersion[7] = 2
	_, err = spec.DeserializeHeader(badVersion)
	require.ErrorIs(t, err, spec.ErrInvalidVersion)

	badLength := valid
	badLength.RecordLength = 8
	_, err = spec.DeserializeHeader(spec.SerializeHeader(&badLength))
	require.ErrorIs(t, err, spec.ErrInvalidHeader)
}

func TestParseNames(t *testing.T) {
	for _, o := range []spec.Order{spec.OrderRowMajor, spec.OrderHilbert} {
		parsed, err := spec.ParseOrder(o.String())
		require.NoError(t, err)
		require.Equal(t, o, parsed)
	}
	for _, c := range []spec.Compression{spec.CompressionNone, spec.CompressionGzip} {
		parsed, err := spec.ParseCompression(c.String())
		require.NoError(t, err)
		require.Equal(t, c, parsed)
	}

	_, err := spec.ParseOrder("zorder")
	require.ErrorContains(t, err, "order not supported (zorder)")
	_, err = spec.ParseCompression("brotli")
	require.ErrorContains(t, err, "compression not supported (brotli)")
}
