package pool

import (
	"sync"
)

const (
	// CodecBufferDefaultSize is the default capacity of pooled byte buffers.
	// Sized for typical text payloads a transcoding call works on.
	CodecBufferDefaultSize  = 1024 * 4  // 4KiB
	CodecBufferMaxThreshold = 1024 * 64 // 64KiB
	UnitBufferDefaultSize   = 1024 * 2  // 2Ki code units (4KiB)
	UnitBufferMaxThreshold  = 1024 * 32 // 32Ki code units
)

// ByteBuffer is a reusable byte slice wrapper handed out by ByteBufferPool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes without
// reallocating. If the buffer has sufficient capacity, Grow does nothing.
//
// The growth strategy:
//   - For small buffers, grow by CodecBufferDefaultSize to minimize reallocations.
//   - For larger buffers, grow by 25% of current capacity to balance memory
//     usage and reallocation cost.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return // Sufficient capacity
	}

	growBy := CodecBufferDefaultSize
	if cap(bb.B) > 4*CodecBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally to manage the buffers. The pool can be
// configured with a maximum capacity threshold to avoid retaining overly
// large buffers that could lead to memory bloat.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default capacity.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		// Discard overly large buffers to prevent memory bloat
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

// UnitBuffer is a reusable code-unit slice wrapper handed out by UnitBufferPool.
// It holds the 16-bit code-unit intermediate of a transcode call.
type UnitBuffer struct {
	// U is the underlying code-unit slice.
	U []uint16
}

// NewUnitBuffer creates a new UnitBuffer with the specified default capacity.
func NewUnitBuffer(defaultSize int) *UnitBuffer {
	return &UnitBuffer{
		U: make([]uint16, 0, defaultSize),
	}
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (ub *UnitBuffer) Reset() {
	ub.U = ub.U[:0]
}

// UnitBufferPool is a pool of UnitBuffers to minimize allocations.
type UnitBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewUnitBufferPool creates a new UnitBufferPool with buffers of the specified default capacity.
func NewUnitBufferPool(defaultSize int, maxThreshold int) *UnitBufferPool {
	return &UnitBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewUnitBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a UnitBuffer from the pool.
func (ubp *UnitBufferPool) Get() *UnitBuffer {
	ub, _ := ubp.pool.Get().(*UnitBuffer)
	return ub
}

// Put returns a UnitBuffer to the pool for reuse.
func (ubp *UnitBufferPool) Put(ub *UnitBuffer) {
	if ub == nil {
		return
	}

	if ubp.maxThreshold > 0 && cap(ub.U) > ubp.maxThreshold {
		return
	}

	ub.Reset()
	ubp.pool.Put(ub)
}

var (
	codecDefaultPool = NewByteBufferPool(CodecBufferDefaultSize, CodecBufferMaxThreshold)
	unitDefaultPool  = NewUnitBufferPool(UnitBufferDefaultSize, UnitBufferMaxThreshold)
)

// GetCodecBuffer retrieves a ByteBuffer from the default codec pool.
func GetCodecBuffer() *ByteBuffer {
	return codecDefaultPool.Get()
}

// PutCodecBuffer returns a ByteBuffer to the default codec pool.
func PutCodecBuffer(bb *ByteBuffer) {
	codecDefaultPool.Put(bb)
}

// GetUnitBuffer retrieves a UnitBuffer from the default unit pool.
func GetUnitBuffer() *UnitBuffer {
	return unitDefaultPool.Get()
}

// PutUnitBuffer returns a UnitBuffer to the default unit pool.
func PutUnitBuffer(ub *UnitBuffer) {
	unitDefaultPool.Put(ub)
}
