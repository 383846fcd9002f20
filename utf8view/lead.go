package utf8view

// lead describes what a first byte announces.
type lead struct {
	mask uint8 // bits of the first byte that belong to the code point
	size uint8 // total sequence length in bytes
	ok   bool  // false for bytes that cannot start a sequence
}

// leadPattern is one row of the lead byte dispatch: a byte b matches when
// b&match == want.
type leadPattern struct {
	match uint8
	want  uint8
	lead  lead
}

// leadPatterns is ordered most-specific mask first.
var leadPatterns = [...]leadPattern{
	{0x80, 0x00, lead{mask: 0x7F, size: 1, ok: true}}, // 0xxxxxxx
	{0xE0, 0xC0, lead{mask: 0x1F, size: 2, ok: true}}, // 110xxxxx
	{0xF0, 0xE0, lead{mask: 0x0F, size: 3, ok: true}}, // 1110xxxx
	{0xF8, 0xF0, lead{mask: 0x07, size: 4, ok: true}}, // 11110xxx
	{0xFC, 0xF8, lead{mask: 0x03, size: 5, ok: true}}, // 111110xx
	{0xFE, 0xFC, lead{mask: 0x01, size: 6, ok: true}}, // 1111110x
}

// invalidLead covers 10xxxxxx and 1111111x: a single byte carried through
// as its raw value.
var invalidLead = lead{mask: 0xFF, size: 1, ok: false}

// leads maps every byte value to its classification.
var leads = buildLeadTable()

func buildLeadTable() [256]lead {
	var t [256]lead
	for i := range t {
		t[i] = classify(uint8(i))
	}

	return t
}

func classify(b uint8) lead {
	for _, p := range leadPatterns {
		if b&p.match == p.want {
			return p.lead
		}
	}

	return invalidLead
}

// classifyLead returns the provisional code point bits and the sequence
// length announced by b. ok is false when b cannot start a sequence; the
// partial value is then the raw byte.
func classifyLead(b byte) (partial int32, size int, ok bool) {
	l := leads[b]
	return int32(b & l.mask), int(l.size), l.ok
}

// isContinuation reports whether b has the shape 10xxxxxx.
func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}
