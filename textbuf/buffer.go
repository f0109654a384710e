// Package textbuf provides the byte-buffer container for transcoding
// operations.
//
// A Buffer owns a slice of raw bytes and exposes the text-facing operations
// on top of it: constructing a buffer from code units, reading code units out
// of a byte window, writing encoded text in place, and transcoding the whole
// buffer between encodings. Offsets and lengths are always clamped to the
// available bytes, never rejected, and a window that cuts a code point or
// code unit decodes under the per-encoding truncation rules.
//
// Buffers can additionally be serialized into a compressed, checksummed
// container form; see Pack and Unpack.
package textbuf

import (
	"fmt"

	"github.com/arloliu/textcodec/codec"
	"github.com/arloliu/textcodec/format"
	"github.com/arloliu/textcodec/internal/hash"
	"github.com/arloliu/textcodec/internal/options"
	"github.com/arloliu/textcodec/internal/pool"
)

// Buffer is a fixed-length byte container for encoded text.
//
// The zero value is an empty buffer. Buffer is not safe for concurrent
// mutation; concurrent calls are safe as long as no caller mutates the
// buffer during them, the same contract as any pure function over a
// snapshot of its arguments.
type Buffer struct {
	b []byte
}

// Option configures a Buffer created by New.
type Option = options.Option[*Buffer]

// WithCapacity reserves at least capacity bytes in the new buffer, beyond its
// initial length. Returns an error for negative values.
func WithCapacity(capacity int) Option {
	return options.New(func(b *Buffer) error {
		if capacity < 0 {
			return fmt.Errorf("invalid buffer capacity %d", capacity)
		}
		if cap(b.b)-len(b.b) < capacity {
			grown := make([]byte, len(b.b), len(b.b)+capacity)
			copy(grown, b.b)
			b.b = grown
		}

		return nil
	})
}

// New creates a zero-filled Buffer of the given byte length.
func New(size int, opts ...Option) (*Buffer, error) {
	if size < 0 {
		return nil, fmt.Errorf("invalid buffer size %d", size)
	}

	buf := &Buffer{b: make([]byte, size)}
	if err := options.Apply(buf, opts...); err != nil {
		return nil, err
	}

	return buf, nil
}

// FromBytes creates a Buffer that takes ownership of data.
// The caller must not modify data afterwards.
func FromBytes(data []byte) *Buffer {
	return &Buffer{b: data}
}

// FromText creates a Buffer holding the encoded form of units.
//
// This is the construct-from-text operation: the code units are encoded with
// the given encoding and the resulting bytes become the buffer contents.
//
// Returns an error wrapping errs.ErrUnsupportedEncoding for encodings outside
// the supported set, even when units is empty.
func FromText(units []uint16, enc format.Encoding) (*Buffer, error) {
	c, err := codec.Get(enc)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, 0, c.MaxEncodedLen(len(units)))

	return &Buffer{b: c.Encode(dst, units)}, nil
}

// Bytes returns the underlying byte slice.
// The returned slice shares memory with the buffer; do not modify it while
// other operations are in flight.
func (b *Buffer) Bytes() []byte {
	return b.b
}

// Len returns the buffer length in bytes.
func (b *Buffer) Len() int {
	return len(b.b)
}

// Fingerprint computes the xxHash64 of the buffer contents.
//
// Fingerprints give transcoded buffers a cheap content identity for caching
// and deduplication. Equal contents always produce equal fingerprints.
func (b *Buffer) Fingerprint() uint64 {
	return hash.Fingerprint(b.b)
}

// clampWindow resolves an offset/length pair against the buffer, clamping
// both to the available bytes. A negative length means "the remainder".
func (b *Buffer) clampWindow(offset, length int) []byte {
	if offset < 0 {
		offset = 0
	}
	if offset > len(b.b) {
		offset = len(b.b)
	}

	remainder := len(b.b) - offset
	if length < 0 || length > remainder {
		length = remainder
	}

	return b.b[offset : offset+length]
}

// ReadBytes returns a copy of the byte window at offset.
// The window is clamped to the available bytes; length < 0 means "the
// remainder".
func (b *Buffer) ReadBytes(offset, length int) []byte {
	window := b.clampWindow(offset, length)
	out := make([]byte, len(window))
	copy(out, window)

	return out
}

// WriteBytes copies data into the buffer at offset, stopping at the buffer
// end. Returns the number of bytes written.
func (b *Buffer) WriteBytes(offset int, data []byte) int {
	window := b.clampWindow(offset, len(data))

	return copy(window, data)
}

// ReadText decodes the byte window at offset into code units.
//
// This is the read-text-from-bytes operation. The window is clamped to the
// available bytes (length < 0 means "the remainder") and does not need to
// align with a code-point or code-unit boundary; truncation at the end of the
// window follows the per-encoding rules instead of failing.
//
// Returns an error wrapping errs.ErrUnsupportedEncoding for encodings outside
// the supported set, even for an empty window.
func (b *Buffer) ReadText(offset, length int, enc format.Encoding) ([]uint16, error) {
	c, err := codec.Get(enc)
	if err != nil {
		return nil, err
	}

	window := b.clampWindow(offset, length)

	return c.Decode(make([]uint16, 0, len(window)), window), nil
}

// WriteText encodes units and writes the encoded bytes into the buffer at
// offset, in place.
//
// This is the write-text-into-bytes operation. Writing stops at the buffer
// end or at input exhaustion, whichever comes first; byteLen < 0 means "all
// encoded bytes". Returns the number of bytes written.
//
// Returns an error wrapping errs.ErrUnsupportedEncoding for encodings outside
// the supported set; in that case the buffer is untouched.
func (b *Buffer) WriteText(offset int, units []uint16, byteLen int, enc format.Encoding) (int, error) {
	c, err := codec.Get(enc)
	if err != nil {
		return 0, err
	}

	bb := pool.GetCodecBuffer()
	defer pool.PutCodecBuffer(bb)

	bb.Grow(c.MaxEncodedLen(len(units)))
	bb.B = c.Encode(bb.B, units)

	encoded := bb.B
	if byteLen >= 0 && byteLen < len(encoded) {
		encoded = encoded[:byteLen]
	}

	window := b.clampWindow(offset, len(encoded))

	return copy(window, encoded), nil
}

// Transcode decodes the whole buffer from src and re-encodes it into dst,
// producing a new Buffer. The receiver is not modified.
//
// The result is exactly the composition of the decode and encode operations
// through the code-unit intermediate form; the output length is independent
// of the input length in general.
//
// Both encodings are validated before any work: a failure on either returns
// an error wrapping errs.ErrUnsupportedEncoding and produces no output.
func (b *Buffer) Transcode(src, dst format.Encoding) (*Buffer, error) {
	srcCodec, err := codec.Get(src)
	if err != nil {
		return nil, err
	}
	dstCodec, err := codec.Get(dst)
	if err != nil {
		return nil, err
	}

	ub := pool.GetUnitBuffer()
	defer pool.PutUnitBuffer(ub)

	ub.U = srcCodec.Decode(ub.U, b.b)
	out := make([]byte, 0, dstCodec.MaxEncodedLen(len(ub.U)))

	return &Buffer{b: dstCodec.Encode(out, ub.U)}, nil
}
