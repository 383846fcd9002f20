// Package strview provides non-owning byte views and a UTF-8 decoder that
// separates strict validation from trusted fast-path decoding.
//
// # Core Features
//
//   - Zero-copy byte views with search, trim and substring operations
//   - Table-driven UTF-8 decoding with overlong and range rejection
//   - Resynchronization lengths that let callers skip damaged sequences
//   - Trusted decoding of the pre-standard 5 and 6 byte forms
//   - Whole-payload scanning of compressed input with text, JSON, CBOR and
//     MessagePack reports
//
// # Basic Usage
//
// Decoding one code point:
//
//	import "github.com/negvorsa/strview"
//
//	r := strview.Decode([]byte("€uro"))
//	if r.Ok() {
//	    fmt.Printf("U+%04X in %d bytes\n", r.Codepoint, r.Size)
//	}
//
// Checking and repairing a buffer:
//
//	if !strview.IsValid(data) {
//	    prefix := strview.ValidPrefix(data)
//	    clean := strview.Sanitize(data)
//	}
//
// Scanning a compressed file:
//
//	scanner, _ := strview.NewScanner(scan.WithCompression(format.CompressionZstd))
//	report, err := scanner.Scan(file)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the bytesview,
// utf8view and scan packages. For the full API, use those packages directly:
//
//   - bytesview: the View type and its byte-level operations
//   - utf8view: DecodeValidated, DecodeUnchecked, counting, UTF8View
//   - scan: Scanner and Report
//   - compress: the codecs behind scan.WithCompression
//   - format: compression and report format enumerations
package strview

import (
	"github.com/negvorsa/strview/bytesview"
	"github.com/negvorsa/strview/scan"
	"github.com/negvorsa/strview/utf8view"
)

// FromCString returns a view of b up to, not including, its first NUL byte.
// Without a NUL the whole slice is viewed.
func FromCString(b []byte) bytesview.View {
	return bytesview.FromCString(b)
}

// Decode decodes the first code point of b with utf8view.DecodeValidated.
//
// Parameters:
//   - b: Arbitrary bytes; only the first sequence is examined
//
// Returns:
//   - utf8view.Result: The code point and its size, or a failure status with
//     the number of bytes to skip
//
// Example:
//
//	for len(b) > 0 {
//	    r := strview.Decode(b)
//	    if !r.Ok() {
//	        b = b[max(r.Size, 1):]
//	        continue
//	    }
//	    use(r.Rune())
//	    b = b[r.Size:]
//	}
func Decode(b []byte) utf8view.Result {
	return utf8view.DecodeValidated(bytesview.New(b))
}

// IsValid reports whether b is canonical UTF-8 in its entirety. Encoded
// surrogates are accepted.
func IsValid(b []byte) bool {
	return utf8view.Valid(bytesview.New(b))
}

// CountRunes counts the code points of arbitrary input. Bytes that cannot be
// decoded are reported separately in Count.InvalidBytes.
func CountRunes(b []byte) utf8view.Count {
	return utf8view.CountValidated(bytesview.New(b))
}

// ValidPrefix returns the longest prefix of b that is valid UTF-8. The result
// shares memory with b.
func ValidPrefix(b []byte) []byte {
	return utf8view.LongestValidPrefix(bytesview.New(b)).Bytes()
}

// Sanitize returns a copy of b with every invalid sequence replaced by
// U+FFFD.
func Sanitize(b []byte) []byte {
	return utf8view.AppendSanitized(make([]byte, 0, len(b)), bytesview.New(b))
}

// NewScanner creates a scan.Scanner with custom options.
//
// Parameters:
//   - opts: Optional configuration functions (see scan.Option)
//
// Returns:
//   - *scan.Scanner: The created scanner.
//   - error: An error if the configuration is invalid.
//
// Available options:
//   - scan.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - scan.WithMaxInputSize(n)
//   - scan.WithTrustedInput(true|false)
//   - scan.WithLogger(logger)
func NewScanner(opts ...scan.Option) (*scan.Scanner, error) {
	return scan.NewScanner(opts...)
}
