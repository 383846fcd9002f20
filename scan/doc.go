// Package scan checks whole payloads for UTF-8 validity and summarizes them in
// a Report.
//
// A Scanner reads a payload from an io.Reader into a pooled buffer, unpacks it
// with the configured compression codec, and walks it with the utf8view
// decoders:
//
//	scanner, err := scan.NewScanner(
//	    scan.WithCompression(format.CompressionZstd),
//	    scan.WithMaxInputSize(64<<20),
//	)
//	if err != nil {
//	    return err
//	}
//
//	report, err := scanner.Scan(file)
//	if err != nil {
//	    return err
//	}
//	if !report.Valid() {
//	    log.Printf("invalid UTF-8: %v", report.Err())
//	}
//
// # Validation Modes
//
// By default every byte is checked with utf8view.DecodeValidated. The report
// then carries the code point count, the number of bytes skipped as invalid,
// the length of the longest valid prefix and the first failure.
//
// WithTrustedInput(true) switches to utf8view.CountUnchecked. Nothing is
// validated: the payload is reported as complete and the rune count is only
// meaningful when the input really is valid UTF-8.
//
// # Sanitizing
//
// Sanitize writes the payload back out with every invalid sequence replaced by
// U+FFFD, using the same resynchronization rules as utf8view.All.
//
// # Report Formats
//
// Report.Encode renders a report as text, JSON, CBOR or MessagePack, chosen by
// format.ReportFormat.
//
// # Thread Safety
//
// A Scanner holds only configuration and may be shared between goroutines.
package scan
