package codec

import (
	"bytes"

	"github.com/arloliu/textcodec/format"
)

// Byte order marks, longest first so UTF-32 LE is not mistaken for UTF-16 LE.
var bomTable = []struct {
	bom []byte
	enc format.Encoding
}{
	{[]byte{0x00, 0x00, 0xFE, 0xFF}, format.EncodingUTF32BE},
	{[]byte{0xFF, 0xFE, 0x00, 0x00}, format.EncodingUTF32LE},
	{[]byte{0xEF, 0xBB, 0xBF}, format.EncodingUTF8},
	{[]byte{0xFE, 0xFF}, format.EncodingUTF16BE},
	{[]byte{0xFF, 0xFE}, format.EncodingUTF16LE},
}

// Detect sniffs a byte order mark at the start of data and reports the
// encoding it indicates.
//
// This is a decode-only convenience on top of the required encoding set: the
// detected encoding can be passed to Get to decode the data (including the
// BOM itself, which decodes to U+FEFF). Detection never fails; data without
// a recognizable BOM reports ok == false.
func Detect(data []byte) (enc format.Encoding, ok bool) {
	for _, entry := range bomTable {
		if bytes.HasPrefix(data, entry.bom) {
			return entry.enc, true
		}
	}

	return 0, false
}
