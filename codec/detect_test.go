package codec

import (
	"testing"

	"github.com/arloliu/textcodec/format"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		enc  format.Encoding
		ok   bool
	}{
		{"UTF8BOM", []byte{0xEF, 0xBB, 0xBF, 0x41}, format.EncodingUTF8, true},
		{"UTF16LEBOM", []byte{0xFF, 0xFE, 0x41, 0x00}, format.EncodingUTF16LE, true},
		{"UTF16BEBOM", []byte{0xFE, 0xFF, 0x00, 0x41}, format.EncodingUTF16BE, true},
		{"UTF32LEBOM", []byte{0xFF, 0xFE, 0x00, 0x00}, format.EncodingUTF32LE, true},
		{"UTF32BEBOM", []byte{0x00, 0x00, 0xFE, 0xFF}, format.EncodingUTF32BE, true},
		{"NoBOM", []byte{0x41, 0x42}, 0, false},
		{"Empty", nil, 0, false},
		{"PartialBOM", []byte{0xEF, 0xBB}, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			enc, ok := Detect(tc.data)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.enc, enc)
		})
	}
}

func TestDetect_UTF32TakesPrecedence(t *testing.T) {
	// FF FE 00 00 is both a UTF-16 LE BOM followed by a NUL and a UTF-32 LE
	// BOM; the longer match wins.
	enc, ok := Detect([]byte{0xFF, 0xFE, 0x00, 0x00, 0x41, 0x00, 0x00, 0x00})
	require.True(t, ok)
	require.Equal(t, format.EncodingUTF32LE, enc)
}

func TestDetect_DecodesWithDetectedEncoding(t *testing.T) {
	data := []byte{0xFF, 0xFE, 0x41, 0x00} // UTF-16 LE BOM + "A"

	enc, ok := Detect(data)
	require.True(t, ok)

	c, err := Get(enc)
	require.NoError(t, err)

	// The BOM itself decodes to U+FEFF
	require.Equal(t, []uint16{0xFEFF, 0x0041}, c.Decode(nil, data))
}
