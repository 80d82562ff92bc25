package spec

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
)

// Compress encodes a serialized run body for storage.
func Compress(body []byte, compression Compression) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return body, nil
	case CompressionGzip:
		var buffer bytes.Buffer
		buffer.Grow(len(body) / 4)
		zw, _ := gzip.NewWriterLevel(&buffer, gzip.BestSpeed)
		if _, err := zw.Write(body); err != nil {
			return nil, fmt.Errorf("failed to compress body: %w", err)
		}
		if err := zw.Close(); err != nil {
			return nil, fmt.Errorf("failed to compress body: %w", err)
		}
		return buffer.Bytes(), nil
	}
	return nil, fmt.Errorf("compression not supported (%v)", compression)
}

// Decompress restores a run body stored with the given compression. Bodies that
// expand to more than maxLength bytes are corrupt.
func Decompress(data []byte, compression Compression, maxLength uint64) ([]byte, error) {
	switch compression {
	case CompressionNone:
		if uint64(len(data)) > maxLength {
			return nil, fmt.Errorf("%w: body of %d bytes exceeds %d", ErrCorrupt, len(data), maxLength)
		}
		return data, nil
	case CompressionGzip:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		defer zr.Close()
		body, err := io.ReadAll(io.LimitReader(zr, int64(min(maxLength, 1<<62))+1))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if uint64(len(body)) > maxLength {
			return nil, fmt.Errorf("%w: body expands past %d bytes", ErrCorrupt, maxLength)
		}
		return body, nil
	}
	return nil, fmt.Errorf("compression not supported (%v)", compression)
}

// MaxCompressedLength bounds the stored size of a body of rawLength bytes.
// Deflate falls back to stored blocks, so gzip output grows by a small fraction at most.
func MaxCompressedLength(rawLength uint64, compression Compression) uint64 {
	if compression == CompressionGzip {
		return rawLength + rawLength/8 + 1024
	}
	return rawLength
}
