package textbuf

import (
	"fmt"
	"hash/crc32"
	"math"

	"github.com/arloliu/textcodec/compress"
	"github.com/arloliu/textcodec/endian"
	"github.com/arloliu/textcodec/errs"
	"github.com/arloliu/textcodec/format"
)

// Packed container layout. Header fields are always little-endian; the
// payload is the compressed buffer contents.
//
//	[0:4]   magic number 0x54585042 ("TXPB")
//	[4]     compression type
//	[5:9]   uncompressed payload length
//	[9:13]  CRC32 (IEEE) of the uncompressed payload
//	[13:]   compressed payload
const (
	packMagic      uint32 = 0x54585042
	packHeaderSize        = 13
)

// Pack serializes the buffer into a self-describing compressed container.
//
// The container records the compression algorithm, the original length, and
// a CRC32 checksum of the uncompressed contents, so Unpack can validate
// integrity without any out-of-band information.
//
// Returns an error wrapping errs.ErrUnsupportedCompression for compression
// types outside the supported set.
func (b *Buffer) Pack(compression format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	if len(b.b) > math.MaxUint32 {
		return nil, fmt.Errorf("buffer length %d exceeds pack limit", len(b.b))
	}

	payload, err := codec.Compress(b.b)
	if err != nil {
		return nil, fmt.Errorf("pack compression failed: %w", err)
	}

	engine := endian.GetLittleEndianEngine()

	out := make([]byte, 0, packHeaderSize+len(payload))
	out = engine.AppendUint32(out, packMagic)
	out = append(out, byte(compression))
	out = engine.AppendUint32(out, uint32(len(b.b)))
	out = engine.AppendUint32(out, crc32.ChecksumIEEE(b.b))
	out = append(out, payload...)

	return out, nil
}

// Unpack deserializes a container produced by Pack into a new Buffer.
//
// The header is validated (size, magic number, compression type), the
// payload is decompressed, and the recorded length and CRC32 checksum are
// verified against the result.
func Unpack(data []byte) (*Buffer, error) {
	if len(data) < packHeaderSize {
		return nil, fmt.Errorf("%w: need %d bytes, have %d",
			errs.ErrInvalidPackHeader, packHeaderSize, len(data))
	}

	engine := endian.GetLittleEndianEngine()

	if magic := engine.Uint32(data[0:4]); magic != packMagic {
		return nil, fmt.Errorf("%w: 0x%08X", errs.ErrInvalidPackMagic, magic)
	}

	compression := format.CompressionType(data[4])
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	origLen := engine.Uint32(data[5:9])
	checksum := engine.Uint32(data[9:13])

	payload, err := codec.Decompress(data[packHeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("pack decompression failed: %w", err)
	}

	if uint32(len(payload)) != origLen { //nolint:gosec
		return nil, fmt.Errorf("%w: header says %d bytes, payload is %d",
			errs.ErrInvalidPackLength, origLen, len(payload))
	}

	if crc32.ChecksumIEEE(payload) != checksum {
		return nil, errs.ErrChecksumMismatch
	}

	if compression == format.CompressionNone {
		// The no-op codec returns the input slice; copy so the Buffer owns
		// its memory.
		owned := make([]byte, len(payload))
		copy(owned, payload)
		payload = owned
	}

	return &Buffer{b: payload}, nil
}
