package bytesview

import "bytes"

// Compare orders two views lexicographically by byte value.
// The result is 0 if v == other, -1 if v < other, and +1 if v > other.
// A view that is a proper prefix of the other sorts first.
func (v View) Compare(other View) int {
	return bytes.Compare(v.b, other.b)
}

// Equal reports whether both views hold the same bytes.
func (v View) Equal(other View) bool {
	return bytes.Equal(v.b, other.b)
}

// HasPrefix reports whether the view begins with prefix.
func (v View) HasPrefix(prefix View) bool {
	return bytes.HasPrefix(v.b, prefix.b)
}

// HasSuffix reports whether the view ends with suffix.
func (v View) HasSuffix(suffix View) bool {
	return bytes.HasSuffix(v.b, suffix.b)
}

// Contains reports whether match occurs anywhere in the view.
// Every view contains the empty view.
func (v View) Contains(match View) bool {
	return v.Find(match) >= 0
}
