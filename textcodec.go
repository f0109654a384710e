// Package textcodec converts between 16-bit code-unit text and byte sequences
// in a fixed set of encodings.
//
// The supported encodings are utf-8, wtf-8, ascii, utf-16-be, utf-16-le
// (alias utf-16), utf-32-be and utf-32-le (alias utf-32). All of them are
// bidirectional; encoding identifiers outside this set fail with
// errs.ErrUnsupportedEncoding, even for empty inputs, so support can be
// probed with a zero-length call.
//
// # Core Features
//
//   - Lossless round-tripping of arbitrary code-unit sequences, including
//     unpaired surrogates, via WTF-8
//   - Transparent fixed-width serialization for UTF-16 and UTF-32 in both
//     byte orders, with truncation-tolerant decoding
//   - Deliberately lossy 7-bit ASCII projection
//   - A byte-buffer container with offset/length-clamped text operations
//     (textbuf package)
//   - Compressed, checksummed packing of buffers (Zstd, S2, LZ4)
//   - BOM-based encoding detection (codec.Detect)
//
// # Basic Usage
//
// Encoding and decoding through string-keyed encoding identifiers:
//
//	units := textcodec.UnitsFromString("héllo")
//	data, _ := textcodec.Encode(units, "utf-16-le")
//	back, _ := textcodec.Decode(data, "utf-16-le")
//	fmt.Println(textcodec.StringFromUnits(back)) // héllo
//
// Transcoding bytes between encodings:
//
//	utf32, _ := textcodec.Transcode(utf8Bytes, "utf-8", "utf-32-be")
//
// # Package Structure
//
// This package provides convenient top-level wrappers keyed by encoding name.
// For typed encodings, buffer operations, and packing, use the format,
// codec, and textbuf packages directly.
package textcodec

import (
	"github.com/arloliu/textcodec/codec"
	"github.com/arloliu/textcodec/format"
	"github.com/arloliu/textcodec/textbuf"
)

// DefaultEncoding is the encoding assumed when an identifier is empty.
const DefaultEncoding = "utf-8"

func resolve(encoding string) (format.Encoding, error) {
	if encoding == "" {
		encoding = DefaultEncoding
	}

	return format.ParseEncoding(encoding)
}

// Encode serializes code units into bytes using the named encoding.
//
// An empty encoding name means utf-8. Lone surrogates are substituted with
// U+FFFD under utf-8 and preserved under wtf-8; see the codec package for the
// full per-encoding rules.
//
// Returns an error wrapping errs.ErrUnsupportedEncoding for unknown encoding
// identifiers, even when units is empty.
func Encode(units []uint16, encoding string) ([]byte, error) {
	enc, err := resolve(encoding)
	if err != nil {
		return nil, err
	}

	c, err := codec.Get(enc)
	if err != nil {
		return nil, err
	}

	return c.Encode(make([]byte, 0, c.MaxEncodedLen(len(units))), units), nil
}

// Decode deserializes bytes into code units using the named encoding.
//
// An empty encoding name means utf-8. Decoding is total over arbitrary byte
// content: malformed sequences are substituted or masked and trailing
// fragments are dropped, per the rules of the named encoding.
//
// Returns an error wrapping errs.ErrUnsupportedEncoding for unknown encoding
// identifiers, even when data is empty.
func Decode(data []byte, encoding string) ([]uint16, error) {
	enc, err := resolve(encoding)
	if err != nil {
		return nil, err
	}

	c, err := codec.Get(enc)
	if err != nil {
		return nil, err
	}

	return c.Decode(make([]uint16, 0, len(data)), data), nil
}

// Transcode converts bytes from the source encoding to the target encoding.
//
// It is exactly equivalent to Decode followed by Encode through the code-unit
// intermediate form. Both encoding identifiers are validated independently
// before any work; a failure on either fails the whole call with no partial
// output.
func Transcode(data []byte, srcEncoding, dstEncoding string) ([]byte, error) {
	src, err := resolve(srcEncoding)
	if err != nil {
		return nil, err
	}
	dst, err := resolve(dstEncoding)
	if err != nil {
		return nil, err
	}

	out, err := textbuf.FromBytes(data).Transcode(src, dst)
	if err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// NewBuffer creates a textbuf.Buffer holding the encoded form of units.
//
// This is the construct-from-text operation with a string-keyed encoding;
// an empty encoding name means utf-8.
func NewBuffer(units []uint16, encoding string) (*textbuf.Buffer, error) {
	enc, err := resolve(encoding)
	if err != nil {
		return nil, err
	}

	return textbuf.FromText(units, enc)
}

// UnitsFromString converts a Go string to its 16-bit code-unit form.
//
// The string is read as WTF-8, so surrogate byte sequences produced by
// StringFromUnits survive a round trip; invalid UTF-8 bytes become U+FFFD.
func UnitsFromString(s string) []uint16 {
	c := codec.NewWTF8Codec()

	return c.Decode(make([]uint16, 0, len(s)), []byte(s))
}

// StringFromUnits converts 16-bit code units to a Go string.
//
// The result is the WTF-8 form of the sequence: valid text converts to
// ordinary UTF-8, and unpaired surrogates are preserved in their 3-byte
// surrogate form rather than lost.
func StringFromUnits(units []uint16) string {
	c := codec.NewWTF8Codec()

	return string(c.Encode(make([]byte, 0, c.MaxEncodedLen(len(units))), units))
}
