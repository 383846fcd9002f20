//go:build nobuild

package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/valyala/gozstd"
)

// Compress encodes text with the cgo libzstd binding at level 3.
func (c ZstdCompressor) Compress(text []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, text, 3), nil
}

// Decompress decodes data with the cgo libzstd binding.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}

// DecompressLimit streams data through libzstd and stops one byte past
// limit.
func (c ZstdCompressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if limit <= 0 {
		return c.Decompress(data)
	}
	if len(data) == 0 {
		return nil, nil
	}

	zr := gozstd.NewReader(bytes.NewReader(data))
	defer zr.Release()

	text, err := io.ReadAll(io.LimitReader(zr, int64(limit)+1))
	if err != nil {
		return nil, fmt.Errorf("zstd stream: %w", err)
	}
	if len(text) > limit {
		return nil, fmt.Errorf("%w: zstd stream exceeds %d bytes", ErrLimitExceeded, limit)
	}

	return text, nil
}
