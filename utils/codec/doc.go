// Package codec holds the byte-level encodings shared by cluster nodes.
//
// # Fixed-width integers
//
// 32- and 64-bit signed integers are written big-endian (network order),
// two's complement:
//
//	PutInt32(b, -2)   // b[:4] == ff ff ff fe
//	Int64(b)          // reads b[:8]
//
// The Put/get forms work on caller buffers and panic if the buffer is too
// short. The *ToBytes forms allocate.
//
// # Hex
//
// HexEncode writes lowercase pairs with no prefix. HexDecode is lenient: odd
// input drops the last digit and non-hex input is not rejected.
//
// # URL encoding
//
// URLEncode keeps [A-Za-z0-9_.-], maps space to '+', and escapes the rest as
// %XX with uppercase digits. URLDecode accepts either case and copies
// malformed escapes through unchanged:
//
//	URLDecode([]byte("100%+off")) // "100% off"
//
// Downstream callers rely on the lenient decoders; do not harden them into
// validating ones.
package codec
