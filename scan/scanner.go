package scan

import (
	"errors"
	"fmt"
	"io"

	"github.com/negvorsa/strview/bytesview"
	"github.com/negvorsa/strview/compress"
	"github.com/negvorsa/strview/internal/options"
	"github.com/negvorsa/strview/internal/pool"
	"github.com/negvorsa/strview/utf8view"
)

// ErrInputTooLarge is returned when the raw or unpacked payload exceeds the
// limit set with WithMaxInputSize.
var ErrInputTooLarge = errors.New("scan: input exceeds maximum size")

// Scanner validates and summarizes UTF-8 payloads.
type Scanner struct {
	*ScannerConfig
}

// NewScanner creates a Scanner.
//
// Parameters:
//   - opts: Optional configuration (compression, size limit, trusted mode, logger)
//
// Returns:
//   - *Scanner: Scanner ready for use
//   - error: Configuration error if an option is invalid
func NewScanner(opts ...Option) (*Scanner, error) {
	config := newScannerConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Scanner{ScannerConfig: config}, nil
}

// Scan reads r to EOF and reports on its contents.
//
// The input is read into a pooled buffer and unpacked with the configured
// codec before decoding. The returned Report holds no reference to the
// payload.
func (s *Scanner) Scan(r io.Reader) (Report, error) {
	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	if err := s.read(buf, r); err != nil {
		return Report{}, err
	}

	return s.ScanBytes(buf.Bytes())
}

// ScanBytes reports on data, which is unpacked with the configured codec
// first. data is not modified or retained.
func (s *Scanner) ScanBytes(data []byte) (Report, error) {
	payload, err := s.unpack(data)
	if err != nil {
		return Report{}, err
	}

	return s.report(bytesview.New(payload)), nil
}

// Sanitize reads r to EOF and writes the unpacked payload to w with every
// invalid sequence replaced by U+FFFD. In trusted mode the payload is written
// unchanged.
//
// The returned Report describes the payload as read, before replacement.
func (s *Scanner) Sanitize(r io.Reader, w io.Writer) (Report, error) {
	in := pool.GetTextBuffer()
	defer pool.PutTextBuffer(in)

	if err := s.read(in, r); err != nil {
		return Report{}, err
	}

	payload, err := s.unpack(in.Bytes())
	if err != nil {
		return Report{}, err
	}

	v := bytesview.New(payload)
	rep := s.report(v)

	if s.trusted || rep.Valid() {
		if _, err := w.Write(payload); err != nil {
			return rep, fmt.Errorf("write payload: %w", err)
		}

		return rep, nil
	}

	out := pool.GetTextBuffer()
	defer pool.PutTextBuffer(out)

	out.B = utf8view.AppendSanitized(out.B, v)
	if _, err := out.WriteTo(w); err != nil {
		return rep, fmt.Errorf("write sanitized payload: %w", err)
	}

	s.logger.Debug("sanitized payload",
		"bytes_in", len(payload),
		"bytes_out", out.Len(),
		"invalid_bytes", rep.InvalidBytes,
	)

	return rep, nil
}

func (s *Scanner) read(buf *pool.ByteBuffer, r io.Reader) error {
	if s.maxSize == 0 {
		if _, err := buf.ReadFrom(r); err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		return nil
	}

	if _, err := buf.ReadLimited(r, s.maxSize); err != nil {
		if errors.Is(err, pool.ErrTooLarge) {
			return fmt.Errorf("%w: limit %d bytes", ErrInputTooLarge, s.maxSize)
		}

		return fmt.Errorf("read input: %w", err)
	}

	return nil
}

func (s *Scanner) unpack(data []byte) ([]byte, error) {
	payload, err := s.codec.DecompressLimit(data, s.maxSize)
	if errors.Is(err, compress.ErrLimitExceeded) {
		return nil, fmt.Errorf("%w: unpacked payload over %d bytes: %w", ErrInputTooLarge, s.maxSize, err)
	}
	if err != nil {
		return nil, fmt.Errorf("decompress %s input: %w", s.compression, err)
	}

	return payload, nil
}

func (s *Scanner) report(v bytesview.View) Report {
	rep := Report{
		Bytes:   v.Len(),
		Hash:    v.Hash(),
		Trusted: s.trusted,
	}

	if s.trusted {
		rep.Runes = utf8view.CountUnchecked(v)
		rep.ValidPrefix = v.Len()
		rep.Complete = true
		s.logger.Debug("counted trusted payload", "bytes", rep.Bytes, "runes", rep.Runes)

		return rep
	}

	count := utf8view.CountValidated(v)
	prefix := utf8view.LongestValidPrefix(v)

	rep.Runes = count.Runes
	rep.InvalidBytes = count.InvalidBytes
	rep.ValidPrefix = prefix.Len()
	rep.Complete = prefix.Complete()

	if !rep.Complete {
		r := utf8view.DecodeValidated(v.Skip(prefix.Len()))
		rep.FirstError = &Failure{Offset: prefix.Len(), Status: r.Status, Size: r.Size}
	}

	s.logger.Debug("scanned payload",
		"compression", s.compression.String(),
		"bytes", rep.Bytes,
		"runes", rep.Runes,
		"invalid_bytes", rep.InvalidBytes,
		"complete", rep.Complete,
	)

	return rep
}
