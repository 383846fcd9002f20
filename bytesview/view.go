package bytesview

import (
	"bytes"
	"unsafe"

	"github.com/negvorsa/strview/internal/hash"
)

// View is an immutable, non-owning view over a byte buffer.
//
// The zero value is an empty view.
type View struct {
	b []byte
}

// New returns a view over b. The bytes are not copied.
func New(b []byte) View {
	return View{b: b}
}

// FromString returns a view over the bytes of s without copying them.
//
// Strings are immutable, so the view is valid for as long as s is reachable.
func FromString(s string) View {
	if s == "" {
		return View{}
	}

	return View{b: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// FromCString returns a view over b up to, but not including, the first zero
// byte. If b has no zero byte the whole slice is used.
//
// Example:
//
//	v := bytesview.FromCString([]byte("foo\x00bar")) // "foo"
func FromCString(b []byte) View {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return View{b: b[:i]}
	}

	return View{b: b}
}

// FromCStr is FromCString for a string argument. The bytes are not copied.
func FromCStr(s string) View {
	return FromCString(FromString(s).b)
}

// Len returns the number of bytes in the view.
func (v View) Len() int {
	return len(v.b)
}

// IsEmpty reports whether the view has no bytes.
func (v View) IsEmpty() bool {
	return len(v.b) == 0
}

// At returns the byte at offset i. It panics if i is out of range.
func (v View) At(i int) byte {
	return v.b[i]
}

// Bytes returns the viewed bytes without copying them.
//
// The returned slice shares memory with the caller's buffer and must be
// treated as read-only.
func (v View) Bytes() []byte {
	return v.b
}

// Clone returns a copy of the viewed bytes that the caller owns.
func (v View) Clone() []byte {
	if v.b == nil {
		return nil
	}
	c := make([]byte, len(v.b))
	copy(c, v.b)

	return c
}

// String returns a copy of the viewed bytes as a string.
func (v View) String() string {
	return string(v.b)
}

// UnsafeString returns a string sharing memory with the view.
//
// It must only be used while the underlying buffer stays immutable for the
// lifetime of the returned string.
func (v View) UnsafeString() string {
	if len(v.b) == 0 {
		return ""
	}

	return unsafe.String(&v.b[0], len(v.b))
}

// Hash returns the xxHash64 of the viewed bytes. Equal views hash equally.
func (v View) Hash() uint64 {
	return hash.Sum(v.b)
}
