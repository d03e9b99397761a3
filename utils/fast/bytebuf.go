package fast

import (
	"fmt"

	"github.com/rony4d/go-cluster-shared/utils/errs"
)

// DefaultMaxAlloc is the initial value of MaxAlloc.
const DefaultMaxAlloc = 1 << 30

// MaxAlloc caps a single Buffer allocation. A request above it fails with
// errs.ErrOutOfMemory instead of letting the runtime abort the process.
var MaxAlloc = DefaultMaxAlloc

// Buffer is an owned byte buffer that tracks capacity separately from the
// length of its content.
//
// Invariants:
//   - Len() <= Cap()
//   - the storage is nil iff Cap() == 0
//   - Cap() never decreases; only Reset releases storage.
//
// Content is replaced by the Assign methods, not appended. A Buffer is not
// safe for concurrent use.
type Buffer struct {
	data   []byte // len(data) is the capacity
	length int
}

// Len returns the number of meaningful bytes.
func (b *Buffer) Len() int {
	return b.length
}

// Cap returns the number of bytes allocated.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Bytes returns the content. The slice aliases the buffer storage and is
// valid until the next call that grows or resets the buffer.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.length:b.length]
}

// String returns a copy of the content as a string.
func (b *Buffer) String() string {
	return string(b.data[:b.length])
}

// Reset releases the storage. Afterwards Len() == Cap() == 0.
func (b *Buffer) Reset() {
	b.data = nil
	b.length = 0
}

// AssignString replaces the content with s and stores a zero terminator right
// after it, so Cap() > Len() afterwards. Storage is replaced only when the
// current capacity cannot hold s and its terminator.
func (b *Buffer) AssignString(s string) error {
	if err := b.ensure(len(s)+1, false); err != nil {
		return err
	}
	b.length = copy(b.data, s)
	b.data[b.length] = 0
	return nil
}

// AssignBytes replaces the content with p. No terminator is written.
// Storage is replaced only when the current capacity is below len(p).
func (b *Buffer) AssignBytes(p []byte) error {
	if err := b.ensure(len(p), false); err != nil {
		return err
	}
	b.length = copy(b.data, p)
	return nil
}

// Reserve makes sure at least n bytes are allocated, keeping the content.
func (b *Buffer) Reserve(n int) error {
	return b.ensure(n, true)
}

// Resize sets the length to n and returns the writable window data[:n].
// A zero terminator is kept at index n, so n+1 bytes are reserved. Existing
// content below n survives growth.
func (b *Buffer) Resize(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("resize to %d: %w", n, errs.ErrInvalidArgument)
	}
	if n >= MaxAlloc {
		b.Reset()
		return nil, fmt.Errorf("resize to %d (limit %d): %w", n, MaxAlloc, errs.ErrOutOfMemory)
	}
	if err := b.ensure(n+1, true); err != nil {
		return nil, err
	}
	b.length = n
	b.data[n] = 0
	return b.data[:n:n], nil
}

// ensure grows the storage to exactly n bytes when it is smaller. With keep
// set the current content is copied over, otherwise the old storage is simply
// dropped. A failed allocation leaves the buffer empty with no storage.
func (b *Buffer) ensure(n int, keep bool) error {
	if n <= len(b.data) {
		return nil
	}
	if n > MaxAlloc {
		b.Reset()
		return fmt.Errorf("allocate %d bytes (limit %d): %w", n, MaxAlloc, errs.ErrOutOfMemory)
	}

	grown := make([]byte, n)
	if keep {
		copy(grown, b.data[:b.length])
	} else {
		b.length = 0
	}
	b.data = grown
	return nil
}
