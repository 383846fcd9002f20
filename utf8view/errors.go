package utf8view

import (
	"errors"
	"strconv"
)

var (
	// ErrTruncated is returned when the input ends before the sequence the
	// lead byte announced.
	ErrTruncated = errors.New("utf8view: truncated sequence")

	// ErrMalformed is returned when a byte inside a sequence is not a
	// continuation byte.
	ErrMalformed = errors.New("utf8view: malformed continuation byte")

	// ErrNonCanonical is returned for overlong encodings and code points
	// outside the canonical window for their length.
	ErrNonCanonical = errors.New("utf8view: non-canonical encoding")

	// ErrInvalidLead is returned for a byte that cannot start a sequence.
	ErrInvalidLead = errors.New("utf8view: invalid lead byte")
)

// Status tags the outcome of a single decode step.
type Status uint8

const (
	StatusOK           Status = iota // StatusOK means a code point was decoded.
	StatusTruncated                  // StatusTruncated means fewer bytes remain than the lead byte requires.
	StatusMalformed                  // StatusMalformed means a continuation byte has the wrong shape.
	StatusNonCanonical               // StatusNonCanonical means the sequence is overlong or out of range.
	StatusInvalidLead                // StatusInvalidLead means the first byte cannot start a sequence.
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusTruncated:
		return "Truncated"
	case StatusMalformed:
		return "Malformed"
	case StatusNonCanonical:
		return "NonCanonical"
	case StatusInvalidLead:
		return "InvalidLead"
	default:
		return "Unknown"
	}
}

// Err returns the sentinel error for s, or nil for StatusOK.
func (s Status) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusTruncated:
		return ErrTruncated
	case StatusMalformed:
		return ErrMalformed
	case StatusNonCanonical:
		return ErrNonCanonical
	default:
		return ErrInvalidLead
	}
}

// DecodeError reports where validation of a buffer first failed.
type DecodeError struct {
	Offset int    // byte offset of the failing sequence
	Status Status // why decoding failed
	Size   int    // resynchronization length reported by the decoder
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	err := e.Status.Err()
	if err == nil {
		return "utf8view: " + e.Status.String() + " at offset " + strconv.Itoa(e.Offset)
	}

	return err.Error() + " at offset " + strconv.Itoa(e.Offset)
}

// Unwrap returns the sentinel error matching Status.
func (e *DecodeError) Unwrap() error {
	return e.Status.Err()
}
