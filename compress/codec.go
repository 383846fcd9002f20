package compress

import (
	"errors"
	"fmt"

	"github.com/negvorsa/strview/format"
)

// ErrLimitExceeded is returned by DecompressLimit when the payload would
// unpack to more than the allowed number of bytes.
var ErrLimitExceeded = errors.New("compress: decompressed size exceeds limit")

// Compressor compresses a payload.
type Compressor interface {
	// Compress returns the compressed form of data.
	//
	// The input slice is not modified. The returned slice is owned by the
	// caller unless the codec documents otherwise.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// Example:
//
//	codec, _ := compress.GetCodec(format.CompressionZstd)
//	text, err := codec.Decompress(payload)
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
type Decompressor interface {
	// Decompress returns the original bytes of data.
	//
	// Error conditions:
	//   - Returns error if input data is corrupted or truncated
	//   - Returns error if data was compressed with an incompatible algorithm
	Decompress(data []byte) ([]byte, error)

	// DecompressLimit is Decompress that refuses to produce more than limit
	// bytes. A limit of zero or less means no limit.
	//
	// Codecs stop as soon as the limit is known to be exceeded, so a small
	// input that expands enormously costs at most about limit bytes of
	// output memory. The error then wraps ErrLimitExceeded.
	DecompressLimit(data []byte, limit int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns a new Codec for the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
