// Package byteset provides a 256-entry byte presence table used by the
// character-class scans of bytesview.
package byteset

// Set records which of the 256 byte values are members.
//
// The zero value is the empty set. Set is a value type; copying it is cheap
// enough for the scans that build one per call.
type Set [256]bool

// Of returns the set containing every byte of members.
func Of(members []byte) Set {
	var s Set
	for _, c := range members {
		s[c] = true
	}

	return s
}

// Contains reports whether c is a member of s.
func (s *Set) Contains(c byte) bool {
	return s[c]
}

// space holds the bytes that C's isspace accepts in the "C" locale.
var space = Of([]byte{' ', '\t', '\n', '\v', '\f', '\r'})

// IsSpace reports whether c is ASCII whitespace: space, tab, newline,
// vertical tab, form feed or carriage return.
func IsSpace(c byte) bool {
	return space[c]
}
