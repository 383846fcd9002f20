// Command u8scan checks files for UTF-8 validity.
//
// Each input (stdin when no files are given) is unpacked with the selected
// codec and scanned. By default a report is printed per input; with
// --sanitize the payload is written to stdout with invalid sequences replaced
// by U+FFFD instead. The exit status is 1 when any input is not valid UTF-8,
// unless --trusted is set.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"

	"github.com/negvorsa/strview/format"
	"github.com/negvorsa/strview/scan"
)

// errInvalidInput marks a run that completed but found invalid UTF-8.
var errInvalidInput = errors.New("input is not valid UTF-8")

// CLI defines the u8scan command-line interface.
type CLI struct {
	Files       []string `arg:"" optional:"" help:"Files to scan; stdin when omitted"`
	Compression string   `short:"c" enum:"none,zstd,s2,lz4" default:"none" help:"Input compression (none, zstd, s2, lz4)"`
	Format      string   `short:"f" enum:"text,json,cbor,msgpack" default:"text" help:"Report format (text, json, cbor, msgpack)"`
	Sanitize    bool     `short:"s" help:"Write sanitized input to stdout instead of a report"`
	Trusted     bool     `short:"t" help:"Skip validation and only count code points"`
	MaxSize     int      `name:"max-size" default:"0" help:"Reject inputs larger than this many bytes (0 = unlimited)"`
	Verbose     bool     `short:"v" help:"Enable debug logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("u8scan"),
		kong.Description("Validate, count and sanitize UTF-8 input."),
		kong.UsageOnError(),
	)

	logger := newLogger(os.Stderr, cli.Verbose)

	err := run(&cli, os.Stdin, os.Stdout, logger)
	if errors.Is(err, errInvalidInput) {
		os.Exit(1)
	}
	ctx.FatalIfErrorf(err)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

func run(cli *CLI, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	comp, err := format.ParseCompressionType(cli.Compression)
	if err != nil {
		return err
	}
	reportFormat, err := format.ParseReportFormat(cli.Format)
	if err != nil {
		return err
	}

	scanner, err := scan.NewScanner(
		scan.WithCompression(comp),
		scan.WithMaxInputSize(cli.MaxSize),
		scan.WithTrustedInput(cli.Trusted),
		scan.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("configure scanner: %w", err)
	}

	inputs := cli.Files
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	invalid := 0
	for i, name := range inputs {
		rep, err := scanInput(cli, scanner, name, stdin, stdout)
		if err != nil {
			return fmt.Errorf("%s: %w", displayName(name), err)
		}

		if !rep.Valid() {
			invalid++
			logger.Warn("invalid UTF-8",
				"input", displayName(name),
				"offset", rep.FirstError.Offset,
				"status", rep.FirstError.Status.String(),
				"invalid_bytes", rep.InvalidBytes,
			)
		}

		if cli.Sanitize {
			continue
		}

		if reportFormat == format.ReportText && i > 0 {
			if _, err := io.WriteString(stdout, "\n"); err != nil {
				return err
			}
		}
		if err := writeReport(stdout, rep, reportFormat); err != nil {
			return err
		}
	}

	if invalid > 0 {
		logger.Debug("scan finished", "inputs", len(inputs), "invalid", invalid)
		return fmt.Errorf("%d of %d inputs: %w", invalid, len(inputs), errInvalidInput)
	}

	return nil
}

func scanInput(cli *CLI, scanner *scan.Scanner, name string, stdin io.Reader, stdout io.Writer) (scan.Report, error) {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return scan.Report{}, err
		}
		defer f.Close()
		r = f
	}

	var (
		rep scan.Report
		err error
	)
	if cli.Sanitize {
		rep, err = scanner.Sanitize(r, stdout)
	} else {
		rep, err = scanner.Scan(r)
	}
	if err != nil {
		return rep, err
	}
	rep.Name = displayName(name)

	return rep, nil
}

func writeReport(w io.Writer, rep scan.Report, f format.ReportFormat) error {
	out, err := rep.Encode(f)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if f == format.ReportJSON {
		out = append(out, '\n')
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

func displayName(name string) string {
	if name == "-" {
		return "<stdin>"
	}

	return name
}
