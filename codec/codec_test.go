package codec

import (
	"testing"

	"github.com/arloliu/textcodec/errs"
	"github.com/arloliu/textcodec/format"
	"github.com/stretchr/testify/require"
)

func TestGet_AllSupportedEncodings(t *testing.T) {
	encodings := []format.Encoding{
		format.EncodingUTF8,
		format.EncodingWTF8,
		format.EncodingASCII,
		format.EncodingUTF16LE,
		format.EncodingUTF16BE,
		format.EncodingUTF32LE,
		format.EncodingUTF32BE,
	}

	for _, enc := range encodings {
		c, err := Get(enc)
		require.NoError(t, err, "encoding %s", enc)
		require.NotNil(t, c)
	}
}

func TestGet_UnsupportedEncoding(t *testing.T) {
	t.Run("ZeroValue", func(t *testing.T) {
		c, err := Get(0)
		require.Error(t, err)
		require.Nil(t, c)
		require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		c, err := Get(format.Encoding(0x99))
		require.Error(t, err)
		require.Nil(t, c)
		require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)
	})
}

func TestGetNamed(t *testing.T) {
	// Aliases resolve to the little-endian variants
	c, err := GetNamed("utf-16")
	require.NoError(t, err)
	require.Equal(t, []byte{0x41, 0x00}, c.Encode(nil, []uint16{0x0041}))

	c, err = GetNamed("UTF-8")
	require.NoError(t, err)
	require.NotNil(t, c)

	c, err = GetNamed("bogus")
	require.Error(t, err)
	require.Nil(t, c)
	require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)
}

func TestCodecs_ConcurrentUse(t *testing.T) {
	// Codecs are stateless; concurrent calls over independent inputs must
	// not interfere.
	c, err := Get(format.EncodingWTF8)
	require.NoError(t, err)

	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func(seed uint16) {
			defer func() { done <- struct{}{} }()
			units := []uint16{seed, 0xD800, seed + 1}
			for j := 0; j < 1000; j++ {
				decoded := c.Decode(nil, c.Encode(nil, units))
				if len(decoded) != len(units) {
					t.Errorf("round trip length mismatch: %v != %v", decoded, units)
					return
				}
			}
		}(uint16(i) * 100)
	}
	for i := 0; i < 4; i++ {
		<-done
	}
}
