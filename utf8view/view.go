package utf8view

import (
	"iter"

	"github.com/negvorsa/strview/bytesview"
)

// UTF8View is a view over bytes known to hold valid UTF-8.
//
// It is produced by LongestValidPrefix, which also records whether the source
// was consumed in full, or by AssumeValid for input the caller vouches for.
type UTF8View struct {
	b        []byte
	complete bool
}

// LongestValidPrefix returns the longest prefix of v that DecodeValidated
// accepts step by step.
//
// Complete reports whether that prefix is the whole of v; when it is false,
// decoding stopped at the byte offset Len() of v. Applying LongestValidPrefix
// to the View of its own result returns the same bytes, marked complete.
func LongestValidPrefix(v bytesview.View) UTF8View {
	b := v.Bytes()
	n := 0
	for n < len(b) {
		r := DecodeValidated(bytesview.New(b[n:]))
		if !r.Ok() {
			break
		}
		n += r.Size
	}

	return UTF8View{b: b[:n], complete: n == len(b)}
}

// AssumeValid wraps v as a UTF8View without validating it.
//
// The caller guarantees v holds valid UTF-8; methods that decode the result
// rely on that guarantee.
func AssumeValid(v bytesview.View) UTF8View {
	return UTF8View{b: v.Bytes(), complete: true}
}

// Valid reports whether v is valid UTF-8 in its entirety.
func Valid(v bytesview.View) bool {
	return LongestValidPrefix(v).Complete()
}

// Validate returns nil if v is valid UTF-8, or a *DecodeError describing the
// first failing sequence.
func Validate(v bytesview.View) error {
	for off, r := range All(v) {
		if !r.Ok() {
			return &DecodeError{Offset: off, Status: r.Status, Size: r.Size}
		}
	}

	return nil
}

// Len returns the number of bytes in the view.
func (s UTF8View) Len() int {
	return len(s.b)
}

// IsEmpty reports whether the view has no bytes.
func (s UTF8View) IsEmpty() bool {
	return len(s.b) == 0
}

// Complete reports whether the view covers all of the bytes it was derived
// from. An incomplete view is only a valid prefix of its source.
func (s UTF8View) Complete() bool {
	return s.complete
}

// View converts s back to a plain byte view over the same memory.
func (s UTF8View) View() bytesview.View {
	return bytesview.New(s.b)
}

// Bytes returns the viewed bytes without copying them.
func (s UTF8View) Bytes() []byte {
	return s.b
}

// String returns a copy of the viewed bytes as a string.
func (s UTF8View) String() string {
	return string(s.b)
}

// First decodes the first code point with DecodeUnchecked.
func (s UTF8View) First() Result {
	return DecodeUnchecked(s.View())
}

// Count returns the number of code points, using CountUnchecked.
func (s UTF8View) Count() int {
	return CountUnchecked(s.View())
}

// Runes iterates over the code points of s using DecodeUnchecked.
func (s UTF8View) Runes() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		v := s.View()
		for !v.IsEmpty() {
			r := DecodeUnchecked(v)
			if !yield(r.Codepoint) {
				return
			}
			v = v.Skip(r.Size)
		}
	}
}
