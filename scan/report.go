package scan

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"github.com/tinylib/msgp/msgp"

	"github.com/negvorsa/strview/format"
	"github.com/negvorsa/strview/utf8view"
)

// ErrUnknownFormat is returned by Report.Encode for an unsupported format.
var ErrUnknownFormat = errors.New("scan: unknown report format")

// Failure locates the first sequence that failed validation.
type Failure struct {
	Offset int             // byte offset of the failing sequence
	Status utf8view.Status // why it failed
	Size   int             // resynchronization length reported by the decoder
}

// Err converts f to a *utf8view.DecodeError.
func (f Failure) Err() error {
	return &utf8view.DecodeError{Offset: f.Offset, Status: f.Status, Size: f.Size}
}

// Report summarizes one scanned payload.
type Report struct {
	// Name identifies the payload, e.g. a file path. Scanner leaves it empty.
	Name string
	// Bytes is the unpacked payload length.
	Bytes int
	// Runes is the number of code points that decoded cleanly.
	Runes int
	// InvalidBytes is the number of bytes skipped one at a time as invalid.
	InvalidBytes int
	// ValidPrefix is the length in bytes of the longest valid prefix.
	ValidPrefix int
	// Complete is true when the valid prefix is the whole payload.
	Complete bool
	// Trusted is true when the payload was counted without validation.
	Trusted bool
	// FirstError is set when Complete is false.
	FirstError *Failure
	// Hash is the xxhash64 digest of the unpacked payload.
	Hash uint64
}

// Valid reports whether the payload is valid UTF-8 as far as the scan could
// tell. Trusted scans are always valid.
func (r Report) Valid() bool {
	return r.FirstError == nil
}

// Err returns the first failure as a *utf8view.DecodeError, or nil.
func (r Report) Err() error {
	if r.FirstError == nil {
		return nil
	}

	return r.FirstError.Err()
}

// Encode renders r in the requested format.
//
// Parameters:
//   - f: Output format (text, JSON, CBOR or MessagePack)
//
// Returns:
//   - []byte: Encoded report
//   - error: ErrUnknownFormat for an unsupported format, or an encoder error
func (r Report) Encode(f format.ReportFormat) ([]byte, error) {
	switch f {
	case format.ReportText:
		return r.AppendText(nil), nil
	case format.ReportJSON:
		return json.Marshal(r.wire())
	case format.ReportCBOR:
		return r.MarshalCBOR()
	case format.ReportMsgpack:
		return r.AppendMsgpack(nil), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// AppendText appends a human readable, one field per line rendering of r.
func (r Report) AppendText(dst []byte) []byte {
	if r.Name != "" {
		dst = append(dst, "name: "...)
		dst = append(dst, r.Name...)
		dst = append(dst, '\n')
	}
	dst = appendTextInt(dst, "bytes", r.Bytes)
	dst = appendTextInt(dst, "runes", r.Runes)
	dst = appendTextInt(dst, "invalid_bytes", r.InvalidBytes)
	dst = appendTextInt(dst, "valid_prefix", r.ValidPrefix)
	dst = append(dst, "complete: "...)
	dst = strconv.AppendBool(dst, r.Complete)
	dst = append(dst, '\n')
	if r.Trusted {
		dst = append(dst, "trusted: true\n"...)
	}
	if r.FirstError != nil {
		dst = append(dst, "first_error: "...)
		dst = append(dst, r.FirstError.Err().Error()...)
		dst = append(dst, " (size "...)
		dst = strconv.AppendInt(dst, int64(r.FirstError.Size), 10)
		dst = append(dst, ")\n"...)
	}
	dst = append(dst, "hash: 0x"...)
	dst = strconv.AppendUint(dst, r.Hash, 16)
	dst = append(dst, '\n')

	return dst
}

func appendTextInt(dst []byte, key string, v int) []byte {
	dst = append(dst, key...)
	dst = append(dst, ": "...)
	dst = strconv.AppendInt(dst, int64(v), 10)

	return append(dst, '\n')
}

// failureWire is the serialized form of Failure; Status travels as its name.
type failureWire struct {
	Offset int    `json:"offset" cbor:"offset"`
	Status string `json:"status" cbor:"status"`
	Size   int    `json:"size" cbor:"size"`
}

// reportWire is the serialized form of Report shared by JSON and CBOR.
type reportWire struct {
	Name         string       `json:"name,omitempty" cbor:"name,omitempty"`
	Bytes        int          `json:"bytes" cbor:"bytes"`
	Runes        int          `json:"runes" cbor:"runes"`
	InvalidBytes int          `json:"invalid_bytes" cbor:"invalid_bytes"`
	ValidPrefix  int          `json:"valid_prefix" cbor:"valid_prefix"`
	Complete     bool         `json:"complete" cbor:"complete"`
	Trusted      bool         `json:"trusted,omitempty" cbor:"trusted,omitempty"`
	FirstError   *failureWire `json:"first_error,omitempty" cbor:"first_error,omitempty"`
	Hash         uint64       `json:"hash" cbor:"hash"`
}

func (r Report) wire() reportWire {
	w := reportWire{
		Name:         r.Name,
		Bytes:        r.Bytes,
		Runes:        r.Runes,
		InvalidBytes: r.InvalidBytes,
		ValidPrefix:  r.ValidPrefix,
		Complete:     r.Complete,
		Trusted:      r.Trusted,
		Hash:         r.Hash,
	}
	if r.FirstError != nil {
		w.FirstError = &failureWire{
			Offset: r.FirstError.Offset,
			Status: r.FirstError.Status.String(),
			Size:   r.FirstError.Size,
		}
	}

	return w
}

var cborEncMode = sync.OnceValues(func() (cbor.EncMode, error) {
	return cbor.CanonicalEncOptions().EncMode()
})

// MarshalCBOR encodes r as a canonical CBOR map keyed by field name.
func (r Report) MarshalCBOR() ([]byte, error) {
	em, err := cborEncMode()
	if err != nil {
		return nil, fmt.Errorf("cbor encoder: %w", err)
	}

	return em.Marshal(r.wire())
}

// AppendMsgpack appends r to dst as a MessagePack map using the same keys as
// the JSON and CBOR encodings.
func (r Report) AppendMsgpack(dst []byte) []byte {
	fields := uint32(6)
	if r.Name != "" {
		fields++
	}
	if r.Trusted {
		fields++
	}
	if r.FirstError != nil {
		fields++
	}

	dst = msgp.AppendMapHeader(dst, fields)
	if r.Name != "" {
		dst = msgp.AppendString(dst, "name")
		dst = msgp.AppendString(dst, r.Name)
	}
	dst = msgp.AppendString(dst, "bytes")
	dst = msgp.AppendInt(dst, r.Bytes)
	dst = msgp.AppendString(dst, "runes")
	dst = msgp.AppendInt(dst, r.Runes)
	dst = msgp.AppendString(dst, "invalid_bytes")
	dst = msgp.AppendInt(dst, r.InvalidBytes)
	dst = msgp.AppendString(dst, "valid_prefix")
	dst = msgp.AppendInt(dst, r.ValidPrefix)
	dst = msgp.AppendString(dst, "complete")
	dst = msgp.AppendBool(dst, r.Complete)
	if r.Trusted {
		dst = msgp.AppendString(dst, "trusted")
		dst = msgp.AppendBool(dst, true)
	}
	if r.FirstError != nil {
		dst = msgp.AppendString(dst, "first_error")
		dst = msgp.AppendMapHeader(dst, 3)
		dst = msgp.AppendString(dst, "offset")
		dst = msgp.AppendInt(dst, r.FirstError.Offset)
		dst = msgp.AppendString(dst, "status")
		dst = msgp.AppendString(dst, r.FirstError.Status.String())
		dst = msgp.AppendString(dst, "size")
		dst = msgp.AppendInt(dst, r.FirstError.Size)
	}
	dst = msgp.AppendString(dst, "hash")
	dst = msgp.AppendUint64(dst, r.Hash)

	return dst
}
