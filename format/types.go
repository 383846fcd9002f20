// Package format defines the enumerations shared by the scanner, the codecs
// and the command line: payload compression and report encoding.
package format

import (
	"fmt"
	"strings"
)

type (
	CompressionType uint8
	ReportFormat    uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.

	ReportText    ReportFormat = 0x1 // ReportText is a human readable key: value listing.
	ReportJSON    ReportFormat = 0x2 // ReportJSON is a JSON object.
	ReportCBOR    ReportFormat = 0x3 // ReportCBOR is a CBOR map.
	ReportMsgpack ReportFormat = 0x4 // ReportMsgpack is a MessagePack map.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a case-insensitive name ("none", "zstd", "s2",
// "lz4") to its CompressionType. The empty string means CompressionNone.
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}

func (f ReportFormat) String() string {
	switch f {
	case ReportText:
		return "Text"
	case ReportJSON:
		return "JSON"
	case ReportCBOR:
		return "CBOR"
	case ReportMsgpack:
		return "Msgpack"
	default:
		return "Unknown"
	}
}

// ParseReportFormat maps a case-insensitive name ("text", "json", "cbor",
// "msgpack") to its ReportFormat. The empty string means ReportText.
func ParseReportFormat(name string) (ReportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return ReportText, nil
	case "json":
		return ReportJSON, nil
	case "cbor":
		return ReportCBOR, nil
	case "msgpack", "msgp":
		return ReportMsgpack, nil
	default:
		return 0, fmt.Errorf("unknown report format %q", name)
	}
}
