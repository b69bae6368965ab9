package fragments

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/klauspost/compress/zlib"
	"go.uber.org/zap"

	"github.com/Faultbox/fragments-go/internal/logger"
)

// DefaultChunkSize is the inflate window used when none is configured.
const DefaultChunkSize = 1 << 20

// zlibMagic is the first byte of every zlib stream with a 32K window.
const zlibMagic = 0x78

// IsCompressed reports whether data starts with a zlib header: the magic
// byte followed by a flag byte that makes CMF<<8|FLG a multiple of 31.
func IsCompressed(data []byte) bool {
	if len(data) < 2 || data[0] != zlibMagic {
		return false
	}
	return (uint16(data[0])<<8|uint16(data[1]))%31 == 0
}

// Decompress inflates data if it is zlib compressed and returns it unchanged
// otherwise.
func Decompress(data []byte) ([]byte, error) {
	return DecompressChunked(data, DefaultChunkSize)
}

// DecompressChunked is Decompress with an explicit read chunk size. The
// output grows by at most chunkSize bytes per step and is truncated to the
// produced length.
func DecompressChunked(data []byte, chunkSize int) ([]byte, error) {
	if !IsCompressed(data) {
		return data, nil
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	defer reader.Close()

	out := make([]byte, 0, chunkSize)
	for chunk := 0; ; chunk++ {
		out = slices.Grow(out, chunkSize)
		start := len(out)
		n, err := fill(reader, out[start:start+chunkSize])
		out = out[:start+n]

		logger.Debug("inflated chunk",
			zap.Int("chunk", chunk),
			zap.Int("bytes", n),
			zap.Int("total", len(out)))

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: after %d bytes: %v", ErrCorrupt, len(out), err)
		}
	}
	return slices.Clip(out), nil
}

// fill reads until buf is full or the reader fails. A clean end of stream
// is reported as io.EOF.
func fill(r io.Reader, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
