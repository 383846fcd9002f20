package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lmittmann/tint"
	"github.com/stretchr/testify/require"

	"github.com/negvorsa/strview/compress"
)

func testLogger(t *testing.T) *slog.Logger {
	return slog.New(tint.NewHandler(t.Output(), &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "15:04:05",
	}))
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func defaultCLI() *CLI {
	return &CLI{Compression: "none", Format: "text"}
}

func TestRun_StdinValid(t *testing.T) {
	var out bytes.Buffer
	err := run(defaultCLI(), strings.NewReader("héllo"), &out, testLogger(t))
	require.NoError(t, err)
	require.Contains(t, out.String(), "name: <stdin>\n")
	require.Contains(t, out.String(), "runes: 5\n")
	require.Contains(t, out.String(), "complete: true\n")
}

func TestRun_InvalidFile(t *testing.T) {
	path := writeFile(t, "bad.txt", []byte("ok\xC0\x80"))

	cli := defaultCLI()
	cli.Files = []string{path}

	var out bytes.Buffer
	err := run(cli, nil, &out, testLogger(t))
	require.ErrorIs(t, err, errInvalidInput)
	require.Contains(t, out.String(), "first_error: utf8view: non-canonical encoding at offset 2 (size 2)")
}

func TestRun_TrustedNeverFails(t *testing.T) {
	path := writeFile(t, "bad.txt", []byte("ok\xC0\x80"))

	cli := defaultCLI()
	cli.Files = []string{path}
	cli.Trusted = true

	var out bytes.Buffer
	require.NoError(t, run(cli, nil, &out, testLogger(t)))
	require.Contains(t, out.String(), "trusted: true\n")
}

func TestRun_JSONLines(t *testing.T) {
	good := writeFile(t, "good.txt", []byte("abc"))
	bad := writeFile(t, "bad.txt", []byte("\xFF"))

	cli := defaultCLI()
	cli.Format = "json"
	cli.Files = []string{good, bad}

	var out bytes.Buffer
	err := run(cli, nil, &out, testLogger(t))
	require.ErrorIs(t, err, errInvalidInput)
	require.Contains(t, err.Error(), "1 of 2 inputs")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	require.Equal(t, good, first["name"])
	require.Equal(t, true, first["complete"])
	require.Equal(t, bad, second["name"])
	require.Equal(t, false, second["complete"])
}

func TestRun_CompressedSanitize(t *testing.T) {
	packed, err := compress.NewLZ4Compressor().Compress([]byte(strings.Repeat("naïve \xE0\x80\x80 ", 50)))
	require.NoError(t, err)
	path := writeFile(t, "dump.lz4", packed)

	cli := defaultCLI()
	cli.Compression = "lz4"
	cli.Sanitize = true
	cli.Files = []string{path}

	var out bytes.Buffer
	err = run(cli, nil, &out, testLogger(t))
	require.ErrorIs(t, err, errInvalidInput)
	require.Equal(t, strings.Repeat("naïve � ", 50), out.String())
}

func TestRun_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cli := defaultCLI()
		cli.Files = []string{filepath.Join(t.TempDir(), "absent")}
		err := run(cli, nil, &bytes.Buffer{}, testLogger(t))
		require.Error(t, err)
		require.NotErrorIs(t, err, errInvalidInput)
	})

	t.Run("bad compression name", func(t *testing.T) {
		cli := defaultCLI()
		cli.Compression = "gzip"
		err := run(cli, strings.NewReader(""), &bytes.Buffer{}, testLogger(t))
		require.ErrorContains(t, err, "unknown compression")
	})

	t.Run("negative max size", func(t *testing.T) {
		cli := defaultCLI()
		cli.MaxSize = -1
		err := run(cli, strings.NewReader(""), &bytes.Buffer{}, testLogger(t))
		require.ErrorContains(t, err, "configure scanner")
	})

	t.Run("input over limit", func(t *testing.T) {
		cli := defaultCLI()
		cli.MaxSize = 2
		err := run(cli, strings.NewReader("abc"), &bytes.Buffer{}, testLogger(t))
		require.ErrorContains(t, err, "<stdin>: scan: input exceeds maximum size")
	})
}
