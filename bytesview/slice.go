package bytesview

import "github.com/negvorsa/strview/internal/byteset"

// Skip drops the first count bytes. count is clamped to [0, Len()].
func (v View) Skip(count int) View {
	switch {
	case count <= 0:
		return v
	case count >= len(v.b):
		return View{b: v.b[len(v.b):]}
	default:
		return View{b: v.b[count:]}
	}
}

// SkipIf drops leading bytes for which pred returns true.
func (v View) SkipIf(pred func(c byte) bool) View {
	i := 0
	for i < len(v.b) && pred(v.b[i]) {
		i++
	}

	return View{b: v.b[i:]}
}

// RSkipIf drops trailing bytes for which pred returns true.
func (v View) RSkipIf(pred func(c byte) bool) View {
	n := len(v.b)
	for n > 0 && pred(v.b[n-1]) {
		n--
	}

	return View{b: v.b[:n]}
}

// Trim drops leading and trailing ASCII whitespace
// (space, \t, \n, \v, \f, \r).
func (v View) Trim() View {
	return v.SkipIf(byteset.IsSpace).RSkipIf(byteset.IsSpace)
}

// Substr returns the view of size bytes starting at pos.
//
// A negative pos counts back from the end. A negative size, or one that
// runs past the end, selects the rest of the view. When pos falls outside
// [0, Len()] after adjustment the result is empty.
//
// Example:
//
//	v := bytesview.FromString("FooBar")
//	v.Substr(3, 10)  // "Bar"
//	v.Substr(-3, -1) // "Bar"
//	v.Substr(-10, 3) // ""
func (v View) Substr(pos, size int) View {
	if pos < 0 {
		pos += len(v.b)
	}
	if pos < 0 || pos > len(v.b) {
		return View{}
	}

	maxSize := len(v.b) - pos
	if size < 0 || size > maxSize {
		size = maxSize
	}

	return View{b: v.b[pos : pos+size]}
}
