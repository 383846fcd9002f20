package utf8view

import "github.com/negvorsa/strview/bytesview"

const (
	// Invalid is the Codepoint of every failed Result.
	Invalid int32 = -1

	// ReplacementChar is the code point AppendSanitized writes in place of
	// invalid input.
	ReplacementChar rune = 0xFFFD

	// MaxCanonical is the largest code point DecodeValidated accepts.
	MaxCanonical int32 = 0x10FFFF

	// MaxExtended is the largest value DecodeUnchecked can assemble.
	MaxExtended int32 = 0x7FFFFFFF

	// MaxSize is the longest sequence the lead byte classifier recognizes.
	MaxSize = 6
)

// Result is the outcome of one decode step.
type Result struct {
	// Codepoint is the decoded value, or Invalid when Status is not StatusOK.
	Codepoint int32
	// Size is the encoded length on success, or the resynchronization
	// length on failure. It never exceeds the input length.
	Size int
	// Status tags success or the kind of failure.
	Status Status
}

// Ok reports whether the step decoded a code point.
func (r Result) Ok() bool {
	return r.Status == StatusOK
}

// Rune returns the code point as a rune, or ReplacementChar on failure.
func (r Result) Rune() rune {
	if r.Status != StatusOK {
		return ReplacementChar
	}

	return r.Codepoint
}

// Err returns nil on success or the sentinel error for the failure.
func (r Result) Err() error {
	return r.Status.Err()
}

func failed(status Status, size int) Result {
	return Result{Codepoint: Invalid, Size: size, Status: status}
}

// DecodeValidated decodes the first code point of v, rejecting anything that
// is not canonical UTF-8 of at most four bytes.
//
// Checks run in this order, each stopping at the first failure:
//  1. empty input: StatusTruncated, Size 0
//  2. lead byte that cannot start a sequence: StatusInvalidLead, Size 1
//  3. fewer bytes than announced: StatusTruncated, Size = v.Len()
//  4. a non-continuation byte at offset i: StatusMalformed, Size = i
//  5. overlong or out-of-range value: StatusNonCanonical, Size = full length
//
// Parameters:
//   - v: Bytes to decode; only the first sequence is examined
//
// Returns:
//   - Result: The code point and its length, or a failure with the number of
//     bytes to skip before retrying
func DecodeValidated(v bytesview.View) Result {
	b := v.Bytes()
	if len(b) == 0 {
		return failed(StatusTruncated, 0)
	}

	cp, size, ok := classifyLead(b[0])
	if !ok {
		return failed(StatusInvalidLead, 1)
	}
	if size > len(b) {
		return failed(StatusTruncated, len(b))
	}

	for i := 1; i < size; i++ {
		if !isContinuation(b[i]) {
			return failed(StatusMalformed, i)
		}
	}

	for i := 1; i < size; i++ {
		cp = cp<<6 | int32(b[i]&0x3F)
	}

	if !isCanonical(b[:size], cp) {
		return failed(StatusNonCanonical, size)
	}

	return Result{Codepoint: cp, Size: size, Status: StatusOK}
}

// DecodeUnchecked decodes the first code point of v without validating it.
//
// The caller must already know v holds valid UTF-8. Only the lead byte is
// classified and the low six bits of each following byte are assembled, so
// the pre-standard 5 and 6 byte forms decode to values up to MaxExtended and
// a byte that cannot start a sequence decodes to its own value.
//
// The only failures are empty input (StatusTruncated, Size 0) and a lead byte
// announcing more bytes than v holds (StatusTruncated, Size = v.Len()).
//
// Parameters:
//   - v: Trusted UTF-8 bytes
//
// Returns:
//   - Result: The assembled value and the sequence length
func DecodeUnchecked(v bytesview.View) Result {
	b := v.Bytes()
	if len(b) == 0 {
		return failed(StatusTruncated, 0)
	}

	cp, size, _ := classifyLead(b[0])
	if size > len(b) {
		return failed(StatusTruncated, len(b))
	}

	for i := 1; i < size; i++ {
		cp = cp<<6 | int32(b[i]&0x3F)
	}

	return Result{Codepoint: cp, Size: size, Status: StatusOK}
}
