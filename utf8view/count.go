package utf8view

import "github.com/negvorsa/strview/bytesview"

// Count is the tally produced by CountValidated.
type Count struct {
	Runes        int // code points that decoded cleanly
	InvalidBytes int // bytes skipped one at a time after failures
}

// Total returns code points plus invalid bytes, i.e. the number of units a
// byte-tolerant display would render.
func (c Count) Total() int {
	return c.Runes + c.InvalidBytes
}

// CountUnchecked counts the code points of trusted input by stepping with
// DecodeUnchecked. The result is meaningless for input that is not valid
// UTF-8; a truncated tail counts as one code point.
func CountUnchecked(v bytesview.View) int {
	count := 0
	for !v.IsEmpty() {
		r := DecodeUnchecked(v)
		v = v.Skip(r.Size)
		count++
	}

	return count
}

// CountValidated counts the code points of arbitrary input.
//
// After a failed decode the scan advances by a single byte, not by
// Result.Size, and that byte is tallied in InvalidBytes. This finds every
// valid sequence that starts inside a damaged region.
func CountValidated(v bytesview.View) Count {
	var c Count
	for !v.IsEmpty() {
		r := DecodeValidated(v)
		if r.Ok() {
			c.Runes++
			v = v.Skip(r.Size)

			continue
		}

		c.InvalidBytes++
		v = v.Skip(1)
	}

	return c
}
