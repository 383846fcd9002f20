package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor handles S2 blocks, a faster Snappy-compatible format.
//
// A block starts with its decoded length, so the size limit is enforced
// before any output is allocated.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes text as a single S2 block.
func (c S2Compressor) Compress(text []byte) ([]byte, error) {
	if len(text) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, text), nil
}

// Decompress decodes a single S2 (or Snappy) block.
func (c S2Compressor) Decompress(block []byte) ([]byte, error) {
	return c.DecompressLimit(block, 0)
}

// DecompressLimit decodes block after checking its declared length against
// limit.
func (c S2Compressor) DecompressLimit(block []byte, limit int) ([]byte, error) {
	if len(block) == 0 {
		return nil, nil
	}

	size, err := s2.DecodedLen(block)
	if err != nil {
		return nil, fmt.Errorf("s2 block header: %w", err)
	}
	if limit > 0 && size > limit {
		return nil, fmt.Errorf("%w: s2 block declares %d bytes, limit %d", ErrLimitExceeded, size, limit)
	}

	text, err := s2.Decode(make([]byte, size), block)
	if err != nil {
		return nil, fmt.Errorf("s2 block: %w", err)
	}

	return text, nil
}
