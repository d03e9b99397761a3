package codec

import (
	"github.com/ethereum/go-ethereum/common"
)

// HexEncode returns two lowercase hex digits per input byte, with no prefix
// and no separators.
func HexEncode(b []byte) string {
	return common.Bytes2Hex(b)
}

// HexDecode is the lenient inverse of HexEncode.
//
// The result holds len(s)/2 bytes: a trailing odd digit is dropped. Input is
// not validated. Each pair decodes the run of hex digits it starts with, so
// "1g" yields 0x01 and "g1" yields 0x00.
func HexDecode(s string) []byte {
	out := make([]byte, len(s)/2)
	for i := range out {
		out[i] = hexPair(s[2*i], s[2*i+1])
	}
	return out
}

func hexPair(hi, lo byte) byte {
	h, ok := unhex(hi)
	if !ok {
		return 0
	}
	l, ok := unhex(lo)
	if !ok {
		return h
	}
	return h<<4 | l
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
