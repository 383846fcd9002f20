package scan

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/negvorsa/strview/compress"
	"github.com/negvorsa/strview/format"
	"github.com/negvorsa/strview/internal/options"
)

// ErrInvalidMaxSize is returned by NewScanner for a negative size limit.
var ErrInvalidMaxSize = errors.New("scan: max input size must not be negative")

// ScannerConfig holds the settings a Scanner is built from.
type ScannerConfig struct {
	compression format.CompressionType
	codec       compress.Codec
	logger      *slog.Logger
	maxSize     int
	trusted     bool
}

func newScannerConfig() *ScannerConfig {
	return &ScannerConfig{
		compression: format.CompressionNone,
		codec:       compress.NewNoOpCompressor(),
		logger:      slog.New(slog.DiscardHandler),
	}
}

func (c *ScannerConfig) setCompression(comp format.CompressionType) error {
	codec, err := compress.CreateCodec(comp, "input")
	if err != nil {
		return err
	}
	c.compression = comp
	c.codec = codec

	return nil
}

func (c *ScannerConfig) setMaxSize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxSize, n)
	}
	c.maxSize = n

	return nil
}

// Option is a functional option for configuring a Scanner.
type Option = options.Option[*ScannerConfig]

// WithCompression sets the codec used to unpack input before scanning.
// Valid values are format.CompressionNone, format.CompressionZstd,
// format.CompressionS2 and format.CompressionLZ4.
// Default is format.CompressionNone.
func WithCompression(comp format.CompressionType) Option {
	return options.New(func(c *ScannerConfig) error {
		return c.setCompression(comp)
	})
}

// WithLogger sets the logger for debug output. A nil logger is ignored.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *ScannerConfig) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithMaxInputSize limits both the raw input and the unpacked payload to n
// bytes. Zero means unlimited, which is the default.
func WithMaxInputSize(n int) Option {
	return options.New(func(c *ScannerConfig) error {
		return c.setMaxSize(n)
	})
}

// WithTrustedInput skips validation and counts code points with
// utf8view.CountUnchecked. Default is false.
func WithTrustedInput(trusted bool) Option {
	return options.NoError(func(c *ScannerConfig) {
		c.trusted = trusted
	})
}

// Trusted is a preset for pre-validated, uncompressed input of any size.
func Trusted() Option {
	return options.Chain[*ScannerConfig](
		WithCompression(format.CompressionNone),
		WithTrustedInput(true),
		WithMaxInputSize(0),
	)
}
