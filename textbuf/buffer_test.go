package textbuf

import (
	"testing"

	"github.com/arloliu/textcodec/errs"
	"github.com/arloliu/textcodec/format"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	buf, err := New(8)
	require.NoError(t, err)
	require.Equal(t, 8, buf.Len())
	require.Equal(t, make([]byte, 8), buf.Bytes()) // zero-filled

	buf, err = New(0)
	require.NoError(t, err)
	require.Equal(t, 0, buf.Len())

	buf, err = New(-1)
	require.Error(t, err)
	require.Nil(t, buf)
}

func TestNew_WithCapacity(t *testing.T) {
	buf, err := New(4, WithCapacity(64))
	require.NoError(t, err)
	require.Equal(t, 4, buf.Len())
	require.GreaterOrEqual(t, cap(buf.Bytes()), 68)

	buf, err = New(4, WithCapacity(-1))
	require.Error(t, err)
	require.Nil(t, buf)
}

func TestFromText(t *testing.T) {
	buf, err := FromText([]uint16{0x0048, 0x0069}, format.EncodingUTF8)
	require.NoError(t, err)
	require.Equal(t, []byte("Hi"), buf.Bytes())

	buf, err = FromText([]uint16{0x0048, 0x0069}, format.EncodingUTF16BE)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x48, 0x00, 0x69}, buf.Bytes())
}

func TestFromText_UnsupportedEncoding(t *testing.T) {
	// The encoding check fires even for empty input: this is the
	// feature-detection hook.
	buf, err := FromText(nil, format.Encoding(0x99))
	require.Error(t, err)
	require.Nil(t, buf)
	require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)
}

func TestBuffer_ReadText(t *testing.T) {
	buf := FromBytes([]byte("Hello"))

	t.Run("FullBuffer", func(t *testing.T) {
		units, err := buf.ReadText(0, -1, format.EncodingUTF8)
		require.NoError(t, err)
		require.Equal(t, []uint16{'H', 'e', 'l', 'l', 'o'}, units)
	})

	t.Run("Window", func(t *testing.T) {
		units, err := buf.ReadText(1, 3, format.EncodingUTF8)
		require.NoError(t, err)
		require.Equal(t, []uint16{'e', 'l', 'l'}, units)
	})

	t.Run("LengthClamped", func(t *testing.T) {
		units, err := buf.ReadText(3, 100, format.EncodingUTF8)
		require.NoError(t, err)
		require.Equal(t, []uint16{'l', 'o'}, units)
	})

	t.Run("OffsetClamped", func(t *testing.T) {
		units, err := buf.ReadText(100, -1, format.EncodingUTF8)
		require.NoError(t, err)
		require.Empty(t, units)
	})

	t.Run("NegativeOffsetClamped", func(t *testing.T) {
		units, err := buf.ReadText(-5, 2, format.EncodingUTF8)
		require.NoError(t, err)
		require.Equal(t, []uint16{'H', 'e'}, units)
	})

	t.Run("UnsupportedEncoding", func(t *testing.T) {
		units, err := buf.ReadText(0, 0, format.Encoding(0x99))
		require.Error(t, err)
		require.Nil(t, units)
		require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)
	})
}

func TestBuffer_ReadText_WindowCutsCodePoint(t *testing.T) {
	// "é" is 0xC3 0xA9 in UTF-8; a window ending between the two bytes
	// truncates mid-sequence, which substitutes rather than fails.
	buf := FromBytes([]byte{0x41, 0xC3, 0xA9})

	units, err := buf.ReadText(0, 2, format.EncodingUTF8)
	require.NoError(t, err)
	require.Equal(t, []uint16{0x0041, 0xFFFD}, units)

	// A window cutting a UTF-16 unit drops the odd byte
	buf16 := FromBytes([]byte{0x41, 0x00, 0x42, 0x00})
	units, err = buf16.ReadText(0, 3, format.EncodingUTF16LE)
	require.NoError(t, err)
	require.Equal(t, []uint16{0x0041}, units)
}

func TestBuffer_WriteText(t *testing.T) {
	t.Run("InPlace", func(t *testing.T) {
		buf, err := New(5)
		require.NoError(t, err)

		n, err := buf.WriteText(0, []uint16{'H', 'i'}, -1, format.EncodingUTF8)
		require.NoError(t, err)
		require.Equal(t, 2, n)
		require.Equal(t, []byte{'H', 'i', 0, 0, 0}, buf.Bytes())
	})

	t.Run("AtOffset", func(t *testing.T) {
		buf, err := New(5)
		require.NoError(t, err)

		n, err := buf.WriteText(2, []uint16{'H', 'i'}, -1, format.EncodingUTF8)
		require.NoError(t, err)
		require.Equal(t, 2, n)
		require.Equal(t, []byte{0, 0, 'H', 'i', 0}, buf.Bytes())
	})

	t.Run("StopsAtBufferEnd", func(t *testing.T) {
		buf, err := New(3)
		require.NoError(t, err)

		n, err := buf.WriteText(0, []uint16{'H', 'e', 'l', 'l', 'o'}, -1, format.EncodingUTF8)
		require.NoError(t, err)
		require.Equal(t, 3, n)
		require.Equal(t, []byte("Hel"), buf.Bytes())
	})

	t.Run("ByteLenLimits", func(t *testing.T) {
		buf, err := New(5)
		require.NoError(t, err)

		n, err := buf.WriteText(0, []uint16{'H', 'e', 'l', 'l', 'o'}, 2, format.EncodingUTF8)
		require.NoError(t, err)
		require.Equal(t, 2, n)
		require.Equal(t, []byte{'H', 'e', 0, 0, 0}, buf.Bytes())
	})

	t.Run("UnsupportedEncodingLeavesBufferUntouched", func(t *testing.T) {
		buf, err := New(4)
		require.NoError(t, err)

		n, err := buf.WriteText(0, []uint16{'H'}, -1, format.Encoding(0x99))
		require.Error(t, err)
		require.Equal(t, 0, n)
		require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)
		require.Equal(t, make([]byte, 4), buf.Bytes())
	})
}

func TestBuffer_Transcode(t *testing.T) {
	// "A" in UTF-8 quadruples into UTF-32
	buf := FromBytes([]byte{0x41})

	out, err := buf.Transcode(format.EncodingUTF8, format.EncodingUTF32LE)
	require.NoError(t, err)
	require.Equal(t, []byte{0x41, 0x00, 0x00, 0x00}, out.Bytes())

	// The receiver is untouched
	require.Equal(t, []byte{0x41}, buf.Bytes())
}

func TestBuffer_Transcode_ComposesDecodeThenEncode(t *testing.T) {
	// transcode(b, e1, e2) must equal encode(decode(b, e1), e2) exactly,
	// for every pair of supported encodings.
	encodings := []format.Encoding{
		format.EncodingUTF8,
		format.EncodingWTF8,
		format.EncodingASCII,
		format.EncodingUTF16LE,
		format.EncodingUTF16BE,
		format.EncodingUTF32LE,
		format.EncodingUTF32BE,
	}

	// UTF-8 "Aé中" plus a stray continuation byte to exercise substitution
	data := []byte{0x41, 0xC3, 0xA9, 0xE4, 0xB8, 0xAD, 0x80}
	buf := FromBytes(data)

	for _, src := range encodings {
		for _, dst := range encodings {
			out, err := buf.Transcode(src, dst)
			require.NoError(t, err, "src=%s dst=%s", src, dst)

			units, err := buf.ReadText(0, -1, src)
			require.NoError(t, err)

			manual, err := FromText(units, dst)
			require.NoError(t, err)

			require.Equal(t, manual.Bytes(), out.Bytes(), "src=%s dst=%s", src, dst)
		}
	}
}

func TestBuffer_Transcode_ValidatesBothEncodings(t *testing.T) {
	buf := FromBytes([]byte{0x41})

	out, err := buf.Transcode(format.Encoding(0x99), format.EncodingUTF8)
	require.Error(t, err)
	require.Nil(t, out)
	require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)

	out, err = buf.Transcode(format.EncodingUTF8, format.Encoding(0x99))
	require.Error(t, err)
	require.Nil(t, out)
	require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)
}

func TestBuffer_ReadWriteBytes(t *testing.T) {
	buf := FromBytes([]byte{1, 2, 3, 4, 5})

	require.Equal(t, []byte{2, 3}, buf.ReadBytes(1, 2))
	require.Equal(t, []byte{4, 5}, buf.ReadBytes(3, -1))
	require.Empty(t, buf.ReadBytes(10, 2))

	n := buf.WriteBytes(3, []byte{9, 9, 9})
	require.Equal(t, 2, n) // clamped at the buffer end
	require.Equal(t, []byte{1, 2, 3, 9, 9}, buf.Bytes())

	// ReadBytes returns a copy, not a view
	out := buf.ReadBytes(0, 2)
	out[0] = 0xFF
	require.Equal(t, byte(1), buf.Bytes()[0])
}

func TestBuffer_Fingerprint(t *testing.T) {
	a := FromBytes([]byte("same content"))
	b := FromBytes([]byte("same content"))
	c := FromBytes([]byte("other content"))

	require.Equal(t, a.Fingerprint(), b.Fingerprint())
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestBuffer_WTF8RoundTripThroughBuffer(t *testing.T) {
	// Arbitrary code units, including a lone surrogate, survive
	// FromText -> ReadText under WTF-8.
	units := []uint16{0x0041, 0xD800, 0xDC00, 0xDC00, 0x0042}

	buf, err := FromText(units, format.EncodingWTF8)
	require.NoError(t, err)

	back, err := buf.ReadText(0, -1, format.EncodingWTF8)
	require.NoError(t, err)
	require.Equal(t, units, back)
}
