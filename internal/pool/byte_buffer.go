// Package pool provides pooled byte buffers for reading and rewriting text
// payloads without per-call allocations.
package pool

import (
	"errors"
	"io"
	"sync"
)

const (
	TextBufferDefaultSize  = 1024 * 16  // 16KiB
	TextBufferMaxThreshold = 1024 * 256 // 256KiB

	// minRead is the smallest free space ReadFrom asks the reader to fill.
	minRead = 512
)

// ErrTooLarge is returned by ReadLimited when the reader yields more bytes
// than the caller allowed.
var ErrTooLarge = errors.New("pool: input exceeds size limit")

// ByteBuffer is a growable byte slice that can be returned to a ByteBufferPool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps the allocated memory.
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

// MustWrite appends data, growing the buffer if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow ensures the buffer can hold requiredBytes more bytes without reallocating.
//
// The growth strategy is as follows:
//   - For small buffers (<64KB), grow by TextBufferDefaultSize to minimize reallocations.
//   - For larger buffers, grow by 25% of current capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := TextBufferDefaultSize
	if cap(bb.B) > 4*TextBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ReadFrom appends everything r yields until io.EOF.
//
// Returns:
//   - int64: Number of bytes appended
//   - error: The first non-EOF error returned by r
func (bb *ByteBuffer) ReadFrom(r io.Reader) (int64, error) {
	return bb.ReadLimited(r, 0)
}

// ReadLimited is ReadFrom with an upper bound on the bytes appended.
//
// A limit of zero or less disables the bound. When r yields more than limit
// bytes, ReadLimited stops and returns ErrTooLarge; the buffer then holds
// exactly limit bytes of input.
func (bb *ByteBuffer) ReadLimited(r io.Reader, limit int) (int64, error) {
	var total int64
	for {
		bb.Grow(minRead)

		free := bb.B[len(bb.B):cap(bb.B)]
		if limit > 0 {
			remaining := limit - int(total)
			if remaining < 0 {
				remaining = 0
			}
			// Read one byte past the limit so overflow is detectable.
			if len(free) > remaining+1 {
				free = free[:remaining+1]
			}
		}

		n, err := r.Read(free)
		if limit > 0 && int(total)+n > limit {
			keep := limit - int(total)
			bb.B = bb.B[:len(bb.B)+keep]
			total += int64(keep)

			return total, ErrTooLarge
		}

		bb.B = bb.B[:len(bb.B)+n]
		total += int64(n)

		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally. Buffers that grew past maxThreshold are
// dropped on Put instead of being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
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
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var textDefaultPool = NewByteBufferPool(TextBufferDefaultSize, TextBufferMaxThreshold)

// GetTextBuffer retrieves a ByteBuffer from the default text pool.
func GetTextBuffer() *ByteBuffer {
	return textDefaultPool.Get()
}

// PutTextBuffer returns a ByteBuffer to the default text pool.
func PutTextBuffer(bb *ByteBuffer) {
	textDefaultPool.Put(bb)
}
