package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// maxLZ4Output caps the decompression buffer when no tighter limit is given.
const maxLZ4Output = 128 * 1024 * 1024

// lz4Compressors pools lz4.Compressor values; each carries a hash table
// worth reusing.
var lz4Compressors = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor handles raw LZ4 blocks.
//
// Raw blocks carry no length header, so decoding guesses an output size
// and doubles it until the block fits or the limit is reached.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress encodes text as one raw LZ4 block. Returns nil for empty input.
func (c LZ4Compressor) Compress(text []byte) ([]byte, error) {
	if len(text) == 0 {
		return nil, nil
	}

	lc, _ := lz4Compressors.Get().(*lz4.Compressor)
	defer lz4Compressors.Put(lc)

	block := make([]byte, lz4.CompressBlockBound(len(text)))
	n, err := lc.CompressBlock(text, block)
	if err != nil {
		return nil, fmt.Errorf("lz4 block: %w", err)
	}

	return block[:n], nil
}

// Decompress decodes a raw LZ4 block of up to 128 MiB of output.
func (c LZ4Compressor) Decompress(block []byte) ([]byte, error) {
	return c.DecompressLimit(block, 0)
}

// DecompressLimit decodes a raw LZ4 block into at most limit bytes.
//
// The first attempt uses a buffer four times the block size; text often
// compresses better than that, so the buffer doubles on
// lz4.ErrInvalidSourceShortBuffer. A block that still does not fit in a
// buffer of exactly limit bytes is reported as ErrLimitExceeded.
func (c LZ4Compressor) DecompressLimit(block []byte, limit int) ([]byte, error) {
	if len(block) == 0 {
		return nil, nil
	}
	if limit <= 0 || limit > maxLZ4Output {
		limit = maxLZ4Output
	}

	size := min(len(block)*4, limit)
	for {
		text := make([]byte, size)
		n, err := lz4.UncompressBlock(block, text)
		if err == nil {
			return text[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, fmt.Errorf("lz4 block: %w", err)
		}
		if size == limit {
			return nil, fmt.Errorf("%w: lz4 block does not fit in %d bytes", ErrLimitExceeded, limit)
		}
		size = min(size*2, limit)
	}
}
