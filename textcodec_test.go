package textcodec

import (
	"testing"

	"github.com/arloliu/textcodec/errs"
	"github.com/stretchr/testify/require"
)

func TestEncode_DefaultEncoding(t *testing.T) {
	units := UnitsFromString("hi")

	data, err := Encode(units, "")
	require.NoError(t, err)
	require.Equal(t, []byte("hi"), data)
}

func TestEncodeDecode_NamedEncodings(t *testing.T) {
	units := UnitsFromString("héllo")

	for _, name := range []string{
		"utf-8", "wtf-8", "utf-16-le", "utf-16-be", "utf-16",
		"utf-32-le", "utf-32-be", "utf-32",
	} {
		data, err := Encode(units, name)
		require.NoError(t, err, "encoding %q", name)

		back, err := Decode(data, name)
		require.NoError(t, err, "encoding %q", name)
		require.Equal(t, units, back, "encoding %q", name)
	}
}

func TestUnsupportedEncoding_EmptyInputProbe(t *testing.T) {
	// Unknown identifiers fail even for zero-length input: callers probe
	// encoding support this way.
	_, err := Encode(nil, "bogus")
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)

	_, err = Decode(nil, "bogus")
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)
}

func TestTranscode(t *testing.T) {
	// ASCII to UTF-32 quadruples the length
	data, err := Transcode([]byte("abc"), "ascii", "utf-32-le")
	require.NoError(t, err)
	require.Len(t, data, 12)
	require.Equal(t, []byte{'a', 0, 0, 0, 'b', 0, 0, 0, 'c', 0, 0, 0}, data)

	// Non-ASCII UTF-8 to ASCII strips bits: é (U+00E9) becomes 0x69
	data, err = Transcode([]byte{0xC3, 0xA9}, "utf-8", "ascii")
	require.NoError(t, err)
	require.Equal(t, []byte{0x69}, data)
}

func TestTranscode_ValidatesBothArguments(t *testing.T) {
	_, err := Transcode([]byte("x"), "bogus", "utf-8")
	require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)

	_, err = Transcode([]byte("x"), "utf-8", "bogus")
	require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)
}

func TestStringConversion_RoundTrip(t *testing.T) {
	s := "héllo, wörld 中文"
	require.Equal(t, s, StringFromUnits(UnitsFromString(s)))
}

func TestStringConversion_PreservesLoneSurrogates(t *testing.T) {
	units := []uint16{0x0041, 0xD800, 0x0042}

	s := StringFromUnits(units)
	require.Equal(t, units, UnitsFromString(s))
}

func TestNewBuffer(t *testing.T) {
	buf, err := NewBuffer(UnitsFromString("Hi"), "utf-16-be")
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 'H', 0x00, 'i'}, buf.Bytes())

	_, err = NewBuffer(nil, "bogus")
	require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)
}
