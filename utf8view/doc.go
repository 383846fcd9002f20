// Package utf8view decodes and validates UTF-8 held in a bytesview.View, one
// code point at a time.
//
// # Two Decoders
//
// The package deliberately offers two decode entry points with different
// guarantees. They are not interchangeable.
//
// DecodeValidated is the strict decoder for untrusted input. It checks, in
// order:
//  1. that the lead byte announces a sequence length,
//  2. that the view holds that many bytes,
//  3. that every following byte is a continuation byte (10xxxxxx),
//  4. that the assembled code point and each raw byte fall inside the
//     canonical window for that length (rejecting overlong forms, values past
//     U+10FFFF, and all 5 and 6 byte sequences).
//
// DecodeUnchecked is the fast decoder for input already known to be valid.
// It only classifies the lead byte and assembles the continuation bits. It
// accepts the pre-standard 5 and 6 byte forms, so it decodes values up to
// 0x7FFFFFFF:
//
//	F8 88 80 80 80     -> 0x00200000 (5 bytes)
//	FD BF BF BF BF BF  -> 0x7FFFFFFF (6 bytes)
//
// DecodeValidated rejects both of these.
//
// # Results and Resynchronization
//
// Both decoders return a Result. On success Status is StatusOK and Size is the
// encoded length. On failure Codepoint is Invalid and Size is the number of
// bytes a scanner should skip before trying again:
//
//	Status               Size
//	StatusTruncated      bytes available (the whole tail)
//	StatusMalformed      offset of the first bad continuation byte
//	StatusNonCanonical   full sequence length
//	StatusInvalidLead    1
//
// Size is at least 1 whenever the input is non-empty, so a loop that advances
// by Size always terminates.
//
// # Sequence Operations
//
//   - CountUnchecked: count code points in trusted input.
//   - CountValidated: count code points and invalid bytes in arbitrary input,
//     skipping one byte per failure.
//   - LongestValidPrefix: the longest prefix that decodes cleanly, as a
//     UTF8View that records whether the whole input was consumed.
//   - Valid / Validate: whole-buffer checks.
//   - All: iterate over every decode step, resynchronizing by Result.Size.
//   - AppendSanitized: copy input, replacing each invalid span with U+FFFD.
//
// # Surrogates
//
// The canonical table does not carve out U+D800..U+DFFF; ED A0 80 decodes to
// U+D800. This matches the behavior downstream callers depend on.
//
// # Thread Safety
//
// All functions are pure. The lead and validation tables are read-only after
// package initialization and safe for concurrent use.
package utf8view
