package utf8view

import "github.com/negvorsa/strview/bytesview"

// replacement is ReplacementChar in its canonical three byte form.
var replacement = [3]byte{0xEF, 0xBF, 0xBD}

// AppendSanitized appends v to dst with every failed decode step replaced by
// a single U+FFFD. Valid sequences are copied unchanged.
//
// Failures are skipped by their resynchronization length, so a sequence
// broken by a bad continuation byte costs one replacement and decoding
// restarts at the bad byte.
//
// Parameters:
//   - dst: Destination slice to append to (may be nil)
//   - v: Arbitrary bytes
//
// Returns:
//   - []byte: The extended slice
func AppendSanitized(dst []byte, v bytesview.View) []byte {
	b := v.Bytes()
	for off, r := range All(v) {
		if r.Ok() {
			dst = append(dst, b[off:off+r.Size]...)
			continue
		}
		dst = append(dst, replacement[:]...)
	}

	return dst
}
