//go:build !nobuild

package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoders holds decoders used for whole-buffer DecodeAll calls.
var zstdDecoders = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			panic(fmt.Sprintf("zstd decoder: %v", err))
		}
		return dec
	},
}

var zstdEncoders = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(true),
		)
		if err != nil {
			panic(fmt.Sprintf("zstd encoder: %v", err))
		}
		return enc
	},
}

// Compress encodes text as a single Zstandard frame. The frame header
// records the content size, which DecompressLimit checks up front.
func (c ZstdCompressor) Compress(text []byte) ([]byte, error) {
	enc, _ := zstdEncoders.Get().(*zstd.Encoder)
	defer zstdEncoders.Put(enc)

	return enc.EncodeAll(text, nil), nil
}

// Decompress decodes every Zstandard frame in data.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressLimit(data, 0)
}

// DecompressLimit decodes data into at most limit bytes.
//
// A first frame whose header declares a larger content size is rejected
// without decoding. Otherwise frames are decoded as a stream and reading
// stops one byte past the limit.
func (c ZstdCompressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if limit <= 0 {
		dec, _ := zstdDecoders.Get().(*zstd.Decoder)
		defer zstdDecoders.Put(dec)

		text, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd frame: %w", err)
		}

		return text, nil
	}

	var header zstd.Header
	if err := header.Decode(data); err != nil {
		return nil, fmt.Errorf("zstd frame header: %w", err)
	}
	if header.HasFCS && header.FrameContentSize > uint64(limit) {
		return nil, fmt.Errorf("%w: zstd frame declares %d bytes, limit %d",
			ErrLimitExceeded, header.FrameContentSize, limit)
	}

	dec, err := zstd.NewReader(bytes.NewReader(data), zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("zstd stream: %w", err)
	}
	defer dec.Close()

	return readLimited(dec, limit)
}

// readLimited reads r to EOF, failing with ErrLimitExceeded once more than
// limit bytes have been produced.
func readLimited(r io.Reader, limit int) ([]byte, error) {
	text, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return nil, fmt.Errorf("zstd stream: %w", err)
	}
	if len(text) > limit {
		return nil, fmt.Errorf("%w: zstd stream exceeds %d bytes", ErrLimitExceeded, limit)
	}

	return text, nil
}
