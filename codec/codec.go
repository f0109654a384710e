// Package codec implements the per-encoding converters between 16-bit code
// units and byte sequences.
//
// Seven encodings are supported: UTF-8, WTF-8, ASCII, and UTF-16/UTF-32 in
// both byte orders. Every codec is stateless and pure: Encode and Decode read
// their inputs, append to the supplied destination slice, and retain nothing
// across calls, so a single codec instance is safe for concurrent use.
//
// Decode is a total function over arbitrary byte content. Malformed or
// truncated input never fails; it is handled by the per-encoding fallback
// rules (replacement character for UTF-8/WTF-8, bit masking for ASCII, silent
// truncation of trailing fragments for the fixed-width encodings). The only
// error surface in this package is requesting a codec for an encoding outside
// the supported set.
package codec

import (
	"fmt"

	"github.com/arloliu/textcodec/endian"
	"github.com/arloliu/textcodec/errs"
	"github.com/arloliu/textcodec/format"
)

// replacementUnit is the Unicode replacement character U+FFFD as a code unit.
const replacementUnit = 0xFFFD

// Encoder serializes a sequence of 16-bit code units into bytes.
type Encoder interface {
	// Encode appends the byte serialization of units to dst and returns the
	// extended slice.
	//
	// Memory management:
	//   - The input slice is never modified.
	//   - Passing dst as nil allocates a fresh output slice.
	Encode(dst []byte, units []uint16) []byte

	// MaxEncodedLen returns an upper bound on the number of bytes Encode will
	// append for unitCount code units. Used for buffer pre-allocation.
	MaxEncodedLen(unitCount int) int
}

// Decoder deserializes bytes into a sequence of 16-bit code units.
type Decoder interface {
	// Decode appends the code units decoded from data to dst and returns the
	// extended slice.
	//
	// Decode never fails: malformed input is substituted or masked and a
	// trailing fragment that cannot form a complete code unit or code point
	// is dropped, per the rules of the concrete encoding. The input window
	// does not need to align with a code-point or code-unit boundary.
	Decode(dst []uint16, data []byte) []uint16
}

// Codec combines both directions of one encoding.
type Codec interface {
	Encoder
	Decoder
}

var builtinCodecs = map[format.Encoding]Codec{
	format.EncodingUTF8:    NewUTF8Codec(),
	format.EncodingWTF8:    NewWTF8Codec(),
	format.EncodingASCII:   NewASCIICodec(),
	format.EncodingUTF16LE: NewUTF16Codec(endian.GetLittleEndianEngine()),
	format.EncodingUTF16BE: NewUTF16Codec(endian.GetBigEndianEngine()),
	format.EncodingUTF32LE: NewUTF32Codec(endian.GetLittleEndianEngine()),
	format.EncodingUTF32BE: NewUTF32Codec(endian.GetBigEndianEngine()),
}

// Get retrieves the built-in Codec for the specified encoding.
//
// Returns an error wrapping errs.ErrUnsupportedEncoding if the encoding is
// not a member of the supported set. The check does not depend on any input
// data, so callers can use it as a feature-detection probe.
func Get(enc format.Encoding) (Codec, error) {
	if c, ok := builtinCodecs[enc]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedEncoding, enc)
}

// GetNamed retrieves the built-in Codec for the specified encoding identifier,
// resolving aliases (utf-16, utf-32) per format.ParseEncoding.
func GetNamed(name string) (Codec, error) {
	enc, err := format.ParseEncoding(name)
	if err != nil {
		return nil, err
	}

	return Get(enc)
}
