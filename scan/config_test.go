package scan

import (
	"log/slog"
	"testing"

	"github.com/lmittmann/tint"
	"github.com/stretchr/testify/require"

	"github.com/negvorsa/strview/compress"
	"github.com/negvorsa/strview/format"
)

func testLogger(t *testing.T) *slog.Logger {
	return slog.New(tint.NewHandler(t.Output(), &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "15:04:05",
	}))
}

func TestNewScanner_Defaults(t *testing.T) {
	s, err := NewScanner()
	require.NoError(t, err)
	require.Equal(t, format.CompressionNone, s.compression)
	require.IsType(t, compress.NoOpCompressor{}, s.codec)
	require.NotNil(t, s.logger)
	require.Zero(t, s.maxSize)
	require.False(t, s.trusted)
}

func TestNewScanner_Options(t *testing.T) {
	logger := testLogger(t)
	s, err := NewScanner(
		WithCompression(format.CompressionLZ4),
		WithMaxInputSize(1024),
		WithTrustedInput(true),
		WithLogger(logger),
	)
	require.NoError(t, err)
	require.Equal(t, format.CompressionLZ4, s.compression)
	require.IsType(t, compress.LZ4Compressor{}, s.codec)
	require.Equal(t, 1024, s.maxSize)
	require.True(t, s.trusted)
	require.Same(t, logger, s.logger)
}

func TestNewScanner_InvalidOptions(t *testing.T) {
	t.Run("unknown compression", func(t *testing.T) {
		s, err := NewScanner(WithCompression(format.CompressionType(0x42)))
		require.Error(t, err)
		require.Nil(t, s)
		require.Contains(t, err.Error(), "invalid input compression")
	})

	t.Run("negative size", func(t *testing.T) {
		s, err := NewScanner(WithMaxInputSize(-1))
		require.ErrorIs(t, err, ErrInvalidMaxSize)
		require.Nil(t, s)
	})
}

func TestWithLogger_NilIgnored(t *testing.T) {
	s, err := NewScanner(WithLogger(nil))
	require.NoError(t, err)
	require.NotNil(t, s.logger)
}

func TestTrustedPreset(t *testing.T) {
	s, err := NewScanner(WithCompression(format.CompressionZstd), WithMaxInputSize(10), Trusted())
	require.NoError(t, err)
	require.Equal(t, format.CompressionNone, s.compression)
	require.True(t, s.trusted)
	require.Zero(t, s.maxSize)
}
