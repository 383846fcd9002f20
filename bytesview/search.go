package bytesview

import (
	"bytes"

	"github.com/negvorsa/strview/internal/byteset"
)

// Find returns the offset of the first occurrence of match, or -1.
func (v View) Find(match View) int {
	return bytes.Index(v.b, match.b)
}

// RFind returns the offset of the last occurrence of match, or -1.
// An empty match is found at Len().
func (v View) RFind(match View) int {
	return bytes.LastIndex(v.b, match.b)
}

// IndexByte returns the offset of the first c in the view, or -1.
func (v View) IndexByte(c byte) int {
	return bytes.IndexByte(v.b, c)
}

// FindFirstOf returns the offset of the first byte that also appears in
// accept, or -1. An empty accept set never matches.
func (v View) FindFirstOf(accept View) int {
	set := byteset.Of(accept.b)
	for i, c := range v.b {
		if set.Contains(c) {
			return i
		}
	}

	return -1
}

// FindFirstNotOf returns the offset of the first byte that does not appear in
// reject, or -1 when every byte is rejected.
func (v View) FindFirstNotOf(reject View) int {
	set := byteset.Of(reject.b)
	for i, c := range v.b {
		if !set.Contains(c) {
			return i
		}
	}

	return -1
}

// FindLastOf returns the offset of the last byte that also appears in
// accept, or -1.
func (v View) FindLastOf(accept View) int {
	set := byteset.Of(accept.b)
	for i := len(v.b) - 1; i >= 0; i-- {
		if set.Contains(v.b[i]) {
			return i
		}
	}

	return -1
}

// FindLastNotOf returns the offset of the last byte that does not appear in
// reject, or -1.
func (v View) FindLastNotOf(reject View) int {
	set := byteset.Of(reject.b)
	for i := len(v.b) - 1; i >= 0; i-- {
		if !set.Contains(v.b[i]) {
			return i
		}
	}

	return -1
}
