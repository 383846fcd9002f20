// Package bytesview provides View, an immutable, non-owning view over a byte
// buffer, together with byte-oriented comparison and search helpers.
//
// A View never allocates, copies or frees the bytes it refers to. The caller
// owns the buffer and must keep it alive and unmodified for as long as any view
// derived from it is in use. Every operation that "changes" a view returns a
// new View over the same memory.
//
// # Basic Usage
//
//	v := bytesview.FromString("  FooBar  ")
//	v = v.Trim()                                  // "FooBar"
//	bar := v.Substr(-3, -1)                       // "Bar"
//	pos := v.FindFirstOf(bytesview.FromString("rao")) // 1
//
// # Search Results
//
// All search methods return a byte offset into the view, or -1 when nothing
// matches. Searching for an empty needle matches at offset 0 (Find) or at
// Len() (RFind), the same as bytes.Index and bytes.LastIndex.
//
// # Substrings
//
// Substr(pos, size) follows slice-with-offset semantics:
//   - A negative pos counts from the end of the view.
//   - A negative size, or one larger than what remains, means "rest of view".
//   - A pos outside [0, Len()] after adjustment yields an empty view.
//
// # UTF-8
//
// A View makes no claim about encoding. Use package utf8view to decode or
// validate its contents.
//
// # Thread Safety
//
// View is an immutable value and is safe for concurrent use, provided the
// underlying buffer is not mutated.
package bytesview
