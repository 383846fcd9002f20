package utf8view

import (
	"iter"

	"github.com/negvorsa/strview/bytesview"
)

// All iterates over every DecodeValidated step of v, yielding the byte offset
// of each step and its Result.
//
// After a failure the iteration resumes Result.Size bytes later, so garbage is
// skipped in the units the decoder reports rather than byte by byte.
//
// Example:
//
//	for off, r := range utf8view.All(v) {
//	    if !r.Ok() {
//	        log.Printf("bad UTF-8 at %d: %s", off, r.Status)
//	    }
//	}
func All(v bytesview.View) iter.Seq2[int, Result] {
	return func(yield func(int, Result) bool) {
		b := v.Bytes()
		off := 0
		for off < len(b) {
			r := DecodeValidated(bytesview.New(b[off:]))
			if !yield(off, r) {
				return
			}
			off += r.Size
		}
	}
}
