package utf8view

// byteRange is an inclusive range of raw byte values.
type byteRange struct {
	lo, hi uint8
}

// canonicalForm is one row of the validation table: the code points encoded
// with size bytes and the raw byte range allowed at each position.
type canonicalForm struct {
	size  int
	cpMin int32
	cpMax int32
	bytes [4]byteRange
}

// canonicalForms lists every canonical UTF-8 shape. Lengths 3 and 4 are split
// so that the narrow second-byte ranges after E0, F0 and F4 reject overlong
// and out-of-range sequences. There are no rows for lengths 5 and 6.
var canonicalForms = [...]canonicalForm{
	{1, 0x000000, 0x00007F, [4]byteRange{{0x00, 0x7F}}},
	{2, 0x000080, 0x0007FF, [4]byteRange{{0xC2, 0xDF}, {0x80, 0xBF}}},
	{3, 0x000800, 0x000FFF, [4]byteRange{{0xE0, 0xE0}, {0xA0, 0xBF}, {0x80, 0xBF}}},
	{3, 0x001000, 0x00FFFF, [4]byteRange{{0xE1, 0xEF}, {0x80, 0xBF}, {0x80, 0xBF}}},
	{4, 0x010000, 0x03FFFF, [4]byteRange{{0xF0, 0xF0}, {0x90, 0xBF}, {0x80, 0xBF}, {0x80, 0xBF}}},
	{4, 0x040000, 0x0FFFFF, [4]byteRange{{0xF1, 0xF3}, {0x80, 0xBF}, {0x80, 0xBF}, {0x80, 0xBF}}},
	{4, 0x100000, 0x10FFFF, [4]byteRange{{0xF4, 0xF4}, {0x80, 0x8F}, {0x80, 0xBF}, {0x80, 0xBF}}},
}

// isCanonical reports whether seq, already assembled into cp, is the
// canonical encoding of cp.
//
// Only the first row whose length and code point window match is consulted;
// its byte ranges must then all hold.
func isCanonical(seq []byte, cp int32) bool {
	for i := range canonicalForms {
		f := &canonicalForms[i]
		if f.size != len(seq) || cp < f.cpMin || cp > f.cpMax {
			continue
		}

		for pos, b := range seq {
			r := f.bytes[pos]
			if b < r.lo || b > r.hi {
				return false
			}
		}

		return true
	}

	return false
}
