package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/textcodec/errs"
)

type (
	Encoding        uint8
	CompressionType uint8
)

const (
	EncodingUTF8    Encoding = 0x1 // EncodingUTF8 represents standard UTF-8.
	EncodingWTF8    Encoding = 0x2 // EncodingWTF8 represents WTF-8 (UTF-8 plus lone surrogates).
	EncodingASCII   Encoding = 0x3 // EncodingASCII represents 7-bit ASCII with high-bit masking.
	EncodingUTF16LE Encoding = 0x4 // EncodingUTF16LE represents UTF-16, little-endian.
	EncodingUTF16BE Encoding = 0x5 // EncodingUTF16BE represents UTF-16, big-endian.
	EncodingUTF32LE Encoding = 0x6 // EncodingUTF32LE represents UTF-32, little-endian.
	EncodingUTF32BE Encoding = 0x7 // EncodingUTF32BE represents UTF-32, big-endian.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "utf-8"
	case EncodingWTF8:
		return "wtf-8"
	case EncodingASCII:
		return "ascii"
	case EncodingUTF16LE:
		return "utf-16-le"
	case EncodingUTF16BE:
		return "utf-16-be"
	case EncodingUTF32LE:
		return "utf-32-le"
	case EncodingUTF32BE:
		return "utf-32-be"
	default:
		return "unknown"
	}
}

// IsValid reports whether e is a member of the supported encoding set.
func (e Encoding) IsValid() bool {
	return e >= EncodingUTF8 && e <= EncodingUTF32BE
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// encodingNames maps every accepted encoding identifier, including aliases,
// to its Encoding value. The set is fixed at design time; unknown names are
// an error, never a silent fallback.
var encodingNames = map[string]Encoding{
	"utf-8":     EncodingUTF8,
	"wtf-8":     EncodingWTF8,
	"ascii":     EncodingASCII,
	"utf-16-le": EncodingUTF16LE,
	"utf-16-be": EncodingUTF16BE,
	"utf-16":    EncodingUTF16LE, // alias
	"utf-32-le": EncodingUTF32LE,
	"utf-32-be": EncodingUTF32BE,
	"utf-32":    EncodingUTF32LE, // alias
}

// ParseEncoding resolves an encoding identifier to its Encoding value.
//
// Matching is case-insensitive. Aliases "utf-16" and "utf-32" resolve to the
// little-endian variants.
//
// Returns an error wrapping errs.ErrUnsupportedEncoding for identifiers
// outside the supported set. The check is unconditional, so callers can probe
// encoding support by parsing a name before doing any work.
func ParseEncoding(name string) (Encoding, error) {
	if enc, ok := encodingNames[strings.ToLower(name)]; ok {
		return enc, nil
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedEncoding, name)
}

// ParseCompression resolves a compression identifier to its CompressionType.
//
// Returns an error wrapping errs.ErrUnsupportedCompression for identifiers
// outside the supported set.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedCompression, name)
	}
}
