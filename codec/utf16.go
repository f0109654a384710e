package codec

import (
	"unsafe"

	"github.com/arloliu/textcodec/endian"
)

// UTF16Codec converts between code units and UTF-16 bytes in a fixed byte
// order.
//
// UTF-16 is a transparent serialization of the code-unit sequence: each unit
// becomes exactly two bytes in the configured order, with no surrogate
// validation in either direction. Round-tripping is therefore an identity for
// every code-unit sequence, well-formed or not.
//
// When the configured byte order matches the host order, both directions use
// a byte-for-byte copy of the code-unit payload instead of per-unit
// serialization. Output is identical to the portable path.
type UTF16Codec struct {
	engine endian.EndianEngine
	native bool
}

var _ Codec = UTF16Codec{}

// NewUTF16Codec creates a new UTF-16 codec using the specified endian engine.
func NewUTF16Codec(engine endian.EndianEngine) UTF16Codec {
	return UTF16Codec{
		engine: engine,
		native: endian.CompareNativeEndian(engine),
	}
}

// Encode appends two bytes per code unit to dst in the configured byte order.
func (c UTF16Codec) Encode(dst []byte, units []uint16) []byte {
	if len(units) == 0 {
		return dst
	}

	if c.native {
		raw := unsafe.Slice((*byte)(unsafe.Pointer(&units[0])), len(units)*2)

		return append(dst, raw...)
	}

	for _, u := range units {
		dst = c.engine.AppendUint16(dst, u)
	}

	return dst
}

// Decode appends one code unit per 2-byte group to dst.
//
// A trailing incomplete group (a single odd byte) is dropped, not reported
// as an error.
func (c UTF16Codec) Decode(dst []uint16, data []byte) []uint16 {
	count := len(data) / 2
	if count == 0 {
		return dst
	}

	if c.native {
		start := len(dst)
		dst = append(dst, make([]uint16, count)...)
		raw := unsafe.Slice((*byte)(unsafe.Pointer(&dst[start])), count*2)
		copy(raw, data)

		return dst
	}

	for i := 0; i < count; i++ {
		dst = append(dst, c.engine.Uint16(data[i*2:]))
	}

	return dst
}

// MaxEncodedLen returns the exact encoded size: two bytes per code unit.
func (UTF16Codec) MaxEncodedLen(unitCount int) int {
	return unitCount * 2
}
