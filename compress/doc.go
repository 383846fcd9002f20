// Package compress provides the codecs the scanner uses to unpack compressed
// text payloads before decoding them.
//
// # Overview
//
// Text dumps and log segments often arrive compressed. The scanner accepts a
// format.CompressionType and picks the matching codec from this package:
//   - None: the payload is scanned as-is
//   - Zstd: Zstandard frames (klauspost/compress/zstd)
//   - S2: S2 / Snappy-compatible blocks (klauspost/compress/s2)
//   - LZ4: raw LZ4 blocks (pierrec/lz4/v4)
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	    DecompressLimit(data []byte, limit int) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Compress is provided so test fixtures and the scan_demo example can produce
// payloads; the scanner itself only decompresses.
//
// # Size Limits
//
// DecompressLimit bounds the output of every codec. S2 blocks and zstd frames
// written by Compress declare their decoded size, which is checked before
// decoding. Zstd frames without a declared size are streamed and cut off one
// byte past the limit; LZ4 output buffers never grow past the limit. An
// over-limit payload yields an error wrapping ErrLimitExceeded.
//
// # Memory Management
//
// Zstd encoders/decoders and LZ4 compressors are pooled with sync.Pool and
// reused across calls. Every returned slice is newly allocated and owned by
// the caller, except for the NoOp codec which returns its input.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use.
//
// # cgo Zstd
//
// zstd_cgo.go holds a valyala/gozstd implementation behind the "nobuild" tag.
// It is kept for benchmarking against the pure Go codec and is excluded from
// normal builds.
package compress
