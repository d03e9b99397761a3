package fast

import (
	"github.com/rony4d/go-cluster-shared/utils/codec"
)

// buffer.go provides sequential framing helpers for building and parsing
// binary messages.
//
// - Writer appends to a slice; fixed-width integers go out big-endian.
// - Reader advances an index over a slice and hands out sub-slices that share
//   memory with the source (no copies).
// - Reader performs NO bounds checking: reading past the end panics. It is
//   meant for frames whose length was validated by the caller.

type Reader struct {
	// buf is the underlying data source.
	buf []byte
	// offset tracks the current reading position (cursor).
	offset int
}

type Writer struct {
	// buf is the accumulating byte slice.
	buf []byte
}

// NewReader creates a Reader to consume the provided byte slice.
func NewReader(bb []byte) *Reader {
	return &Reader{
		buf:    bb,
		offset: 0,
	}
}

// NewWriter creates a Writer that appends to the provided initial slice.
// Often called with `make([]byte, 0, capacity)` to pre-allocate memory.
func NewWriter(bb []byte) *Writer {
	return &Writer{
		buf: bb,
	}
}

// WriteByte appends a single byte to the buffer.
func (b *Writer) WriteByte(v byte) {
	b.buf = append(b.buf, v)
}

// Write appends a slice of bytes (bulk write) to the buffer.
func (b *Writer) Write(v []byte) {
	b.buf = append(b.buf, v...)
}

// I32 appends v in the 4-byte wire form.
func (b *Writer) I32(v int32) {
	var tmp [codec.Int32Size]byte
	codec.PutInt32(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
}

// I64 appends v in the 8-byte wire form.
func (b *Writer) I64(v int64) {
	var tmp [codec.Int64Size]byte
	codec.PutInt64(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
}

// Read consumes and returns the next 'n' bytes from the buffer.
//
// It panics if fewer than 'n' bytes remain.
// The returned slice shares memory with the source buffer.
func (b *Reader) Read(n int) []byte {
	res := b.buf[b.offset : b.offset+n]
	b.offset += n
	return res
}

// ReadByte consumes and returns a single byte.
func (b *Reader) ReadByte() byte {
	res := b.buf[b.offset]
	b.offset++
	return res
}

// I32 consumes a 4-byte wire integer.
func (b *Reader) I32() int32 {
	return codec.Int32(b.Read(codec.Int32Size))
}

// I64 consumes an 8-byte wire integer.
func (b *Reader) I64() int64 {
	return codec.Int64(b.Read(codec.Int64Size))
}

// Position returns the current cursor index of the Reader.
func (b *Reader) Position() int {
	return b.offset
}

// Bytes returns the entire underlying buffer of the Reader.
func (b *Reader) Bytes() []byte {
	return b.buf
}

// Remaining returns how many unread bytes are left.
func (b *Reader) Remaining() int {
	return len(b.buf) - b.offset
}

// Bytes returns the accumulated content of the Writer.
func (b *Writer) Bytes() []byte {
	return b.buf
}

// Len returns the number of bytes written so far.
func (b *Writer) Len() int {
	return len(b.buf)
}

// Empty checks if the Reader has reached the end of the buffer.
func (b *Reader) Empty() bool {
	return len(b.buf) == b.offset
}
