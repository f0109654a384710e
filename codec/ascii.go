package codec

// ASCIICodec converts between code units and 7-bit ASCII bytes.
//
// Encoding masks each code unit to its low 7 bits and emits one byte; the
// high 9 bits are discarded. The loss is deliberate and unrecoverable, so
// ASCII is the only supported encoding without round-trip identity.
//
// Decoding is the exact inverse of that projection: each byte is masked to
// its low 7 bits and zero-extended to one code unit. It is total and
// error-free over all byte values.
type ASCIICodec struct{}

var _ Codec = ASCIICodec{}

// NewASCIICodec creates a new ASCII codec.
func NewASCIICodec() ASCIICodec {
	return ASCIICodec{}
}

// Encode appends one masked byte per code unit to dst.
func (ASCIICodec) Encode(dst []byte, units []uint16) []byte {
	for _, u := range units {
		dst = append(dst, byte(u&0x7F))
	}

	return dst
}

// Decode appends one zero-extended code unit per masked byte to dst.
func (ASCIICodec) Decode(dst []uint16, data []byte) []uint16 {
	for _, b := range data {
		dst = append(dst, uint16(b&0x7F))
	}

	return dst
}

// MaxEncodedLen returns the exact encoded size: one byte per code unit.
func (ASCIICodec) MaxEncodedLen(unitCount int) int {
	return unitCount
}
