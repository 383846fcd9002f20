package compress

import "fmt"

// NoOpCompressor passes payloads through untouched. It backs
// format.CompressionNone.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data itself. The result shares memory with the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself. The result shares memory with the input,
// which lets the scanner build views directly over its read buffer.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressLimit returns data itself when it fits within limit.
func (c NoOpCompressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if limit > 0 && len(data) > limit {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrLimitExceeded, len(data), limit)
	}

	return data, nil
}
