package codec

import (
	"unicode/utf16"

	"github.com/arloliu/textcodec/endian"
)

// codePointMask keeps the low 21 bits of a decoded UTF-32 group.
const codePointMask = 0x1FFFFF

// UTF32Codec converts between code units and UTF-32 bytes in a fixed byte
// order.
//
// Encoding combines valid surrogate pairs into supplementary code points;
// lone surrogates pass through as code points below 0x10000. Every code point
// is zero-extended to 32 bits and emitted as four bytes in the configured
// order, so round-tripping is an identity for every code-unit sequence.
//
// Decoding reads 4-byte groups, masks each to its low 21 bits, and converts
// the resulting code point back to one or two code units. Masked values above
// 0x10FFFF have no code-unit form and are substituted with U+FFFD.
type UTF32Codec struct {
	engine endian.EndianEngine
}

var _ Codec = UTF32Codec{}

// NewUTF32Codec creates a new UTF-32 codec using the specified endian engine.
func NewUTF32Codec(engine endian.EndianEngine) UTF32Codec {
	return UTF32Codec{engine: engine}
}

// Encode appends four bytes per code point to dst in the configured byte order.
func (c UTF32Codec) Encode(dst []byte, units []uint16) []byte {
	for i := 0; i < len(units); i++ {
		u := units[i]
		cp := rune(u)
		if isHighSurrogate(u) && i+1 < len(units) && isLowSurrogate(units[i+1]) {
			cp = utf16.DecodeRune(rune(u), rune(units[i+1]))
			i++
		}
		dst = c.engine.AppendUint32(dst, uint32(cp))
	}

	return dst
}

// Decode appends one or two code units per 4-byte group to dst.
//
// A trailing incomplete group (fewer than four bytes) is dropped, not
// reported as an error.
func (c UTF32Codec) Decode(dst []uint16, data []byte) []uint16 {
	count := len(data) / 4
	for i := 0; i < count; i++ {
		cp := rune(c.engine.Uint32(data[i*4:]) & codePointMask)
		dst = appendCodePoint(dst, cp)
	}

	return dst
}

// MaxEncodedLen returns the worst-case encoded size: four bytes per code unit
// (a surrogate pair of two units encodes to four bytes, under the 8-byte bound).
func (UTF32Codec) MaxEncodedLen(unitCount int) int {
	return unitCount * 4
}
