package codec

import (
	"encoding/binary"

	"github.com/Fantom-foundation/lachesis-base/common/bigendian"
)

// Fixed-width integers travel in network byte order (most significant byte
// first), two's complement for signed values. Values are never range-checked:
// conversions wrap exactly like the underlying integer casts.

const (
	// Int32Size is the encoded size of a 32-bit integer.
	Int32Size = 4
	// Int64Size is the encoded size of a 64-bit integer.
	Int64Size = 8
)

// PutInt32 writes n into the first 4 bytes of b.
// It panics if b is shorter than Int32Size.
func PutInt32(b []byte, n int32) {
	binary.BigEndian.PutUint32(b, uint32(n))
}

// Int32 reads a 32-bit integer from the first 4 bytes of b.
func Int32(b []byte) int32 {
	return int32(binary.BigEndian.Uint32(b))
}

// PutInt64 writes n into the first 8 bytes of b.
// It panics if b is shorter than Int64Size.
func PutInt64(b []byte, n int64) {
	binary.BigEndian.PutUint64(b, uint64(n))
}

// Int64 reads a 64-bit integer from the first 8 bytes of b.
func Int64(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b))
}

// Int32ToBytes returns a freshly allocated 4-byte encoding of n.
func Int32ToBytes(n int32) []byte {
	return bigendian.Uint32ToBytes(uint32(n))
}

// BytesToInt32 decodes a 4-byte encoding.
func BytesToInt32(b []byte) int32 {
	return int32(bigendian.BytesToUint32(b))
}

// Int64ToBytes returns a freshly allocated 8-byte encoding of n.
func Int64ToBytes(n int64) []byte {
	return bigendian.Uint64ToBytes(uint64(n))
}

// BytesToInt64 decodes an 8-byte encoding.
func BytesToInt64(b []byte) int64 {
	return int64(bigendian.BytesToUint64(b))
}
