package codec

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Surrogate range boundaries, shared by the UTF-8/WTF-8 and UTF-32 codecs.
const (
	surr1    = 0xD800  // high surrogates start
	surr2    = 0xDC00  // low surrogates start
	surr3    = 0xE000  // one past the surrogate range
	surrSelf = 0x10000 // first code point needing a surrogate pair
)

// UTF8Codec converts between code units and standard UTF-8 bytes.
//
// Encoding combines valid surrogate pairs into supplementary code points and
// emits each code point in the standard 1-4 byte form. Lone surrogates have
// no well-formed UTF-8 representation; this codec substitutes the replacement
// character U+FFFD for them, keeping Encode total. Use WTF8Codec when lone
// surrogates must survive a round trip.
//
// Decoding substitutes U+FFFD for malformed leading bytes and resynchronizes
// on the next byte.
type UTF8Codec struct{}

var _ Codec = UTF8Codec{}

// NewUTF8Codec creates a new UTF-8 codec.
func NewUTF8Codec() UTF8Codec {
	return UTF8Codec{}
}

// Encode appends the UTF-8 serialization of units to dst.
func (UTF8Codec) Encode(dst []byte, units []uint16) []byte {
	return encodeUTF8(dst, units, false)
}

// Decode appends the code units decoded from UTF-8 data to dst.
func (UTF8Codec) Decode(dst []uint16, data []byte) []uint16 {
	return decodeUTF8(dst, data, false)
}

// MaxEncodedLen returns the worst-case encoded size: 3 bytes per code unit
// (a surrogate pair of two units encodes to 4 bytes, under the 6-byte bound).
func (UTF8Codec) MaxEncodedLen(unitCount int) int {
	return unitCount * 3
}

// WTF8Codec converts between code units and WTF-8 bytes.
//
// WTF-8 is identical to UTF-8 except that lone surrogates are encoded in
// their 3-byte surrogate-range form instead of being substituted. This makes
// encode-then-decode an identity for every code-unit sequence, including
// ill-formed ones.
type WTF8Codec struct{}

var _ Codec = WTF8Codec{}

// NewWTF8Codec creates a new WTF-8 codec.
func NewWTF8Codec() WTF8Codec {
	return WTF8Codec{}
}

// Encode appends the WTF-8 serialization of units to dst.
func (WTF8Codec) Encode(dst []byte, units []uint16) []byte {
	return encodeUTF8(dst, units, true)
}

// Decode appends the code units decoded from WTF-8 data to dst.
//
// In addition to well-formed UTF-8, the 3-byte surrogate-range forms produced
// by Encode are accepted and decoded back to the original lone surrogate.
// Other malformed input is substituted with U+FFFD, as in plain UTF-8.
func (WTF8Codec) Decode(dst []uint16, data []byte) []uint16 {
	return decodeUTF8(dst, data, true)
}

// MaxEncodedLen returns the worst-case encoded size: 3 bytes per code unit.
func (WTF8Codec) MaxEncodedLen(unitCount int) int {
	return unitCount * 3
}

func isHighSurrogate(u uint16) bool {
	return u >= surr1 && u < surr2
}

func isLowSurrogate(u uint16) bool {
	return u >= surr2 && u < surr3
}

// encodeUTF8 is the shared encode loop for UTF-8 and WTF-8.
func encodeUTF8(dst []byte, units []uint16, wtf bool) []byte {
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u < surr1 || u >= surr3:
			// BMP code point, one code unit.
			dst = utf8.AppendRune(dst, rune(u))
		case isHighSurrogate(u) && i+1 < len(units) && isLowSurrogate(units[i+1]):
			// Valid surrogate pair.
			dst = utf8.AppendRune(dst, utf16.DecodeRune(rune(u), rune(units[i+1])))
			i++
		case wtf:
			// Lone surrogate, WTF-8 3-byte form.
			dst = appendSurrogate(dst, rune(u))
		default:
			dst = utf8.AppendRune(dst, utf8.RuneError)
		}
	}

	return dst
}

// appendSurrogate emits the 3-byte encoding of a code point in the surrogate
// range [0xD800, 0xDFFF], which utf8.AppendRune would reject.
func appendSurrogate(dst []byte, r rune) []byte {
	return append(dst,
		0xE0|byte(r>>12),
		0x80|byte(r>>6)&0x3F,
		0x80|byte(r)&0x3F,
	)
}

// decodeUTF8 is the shared decode loop for UTF-8 and WTF-8.
func decodeUTF8(dst []uint16, data []byte, wtf bool) []uint16 {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			// Malformed or truncated sequence. In WTF-8 mode, check for the
			// surrogate-range 3-byte form before substituting.
			if wtf {
				if s, ok := decodeSurrogate(data[i:]); ok {
					dst = append(dst, s)
					i += 3

					continue
				}
			}
			dst = append(dst, replacementUnit)
			i++

			continue
		}

		dst = appendCodePoint(dst, r)
		i += size
	}

	return dst
}

// decodeSurrogate recognizes the WTF-8 3-byte form of a surrogate code point:
// 0xED 0xA0..0xBF 0x80..0xBF.
func decodeSurrogate(data []byte) (uint16, bool) {
	if len(data) < 3 {
		return 0, false
	}
	if data[0] != 0xED || data[1] < 0xA0 || data[1] > 0xBF || data[2] < 0x80 || data[2] > 0xBF {
		return 0, false
	}

	s := 0xD000 | uint16(data[1]&0x3F)<<6 | uint16(data[2]&0x3F)

	return s, true
}

// appendCodePoint appends the code-unit form of a code point: one unit for
// BMP values (surrogate values pass through unchanged), a surrogate pair for
// supplementary planes, and U+FFFD for values outside [0, 0x10FFFF].
//
// utf16.AppendRune is not usable here: it substitutes U+FFFD for surrogate
// code points, which must pass through for the WTF-8 and UTF-32 decode paths.
func appendCodePoint(dst []uint16, cp rune) []uint16 {
	switch {
	case cp >= 0 && cp < surrSelf:
		return append(dst, uint16(cp))
	case cp <= 0x10FFFF:
		hi, lo := utf16.EncodeRune(cp)

		return append(dst, uint16(hi), uint16(lo))
	default:
		return append(dst, replacementUnit)
	}
}
