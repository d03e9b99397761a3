package strutil

import (
	"bytes"
)

// The helpers below work in place on ASCII bytes. They make no attempt at
// multi-byte or locale aware processing.

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t'
}

// TrimLeft drops leading spaces, tabs, CRs and LFs by shifting the rest of
// b down to index 0. It returns b shortened accordingly.
func TrimLeft(b []byte) []byte {
	i := 0
	for i < len(b) && isSpace(b[i]) {
		i++
	}
	if i == 0 {
		return b
	}
	n := copy(b, b[i:])
	return b[:n]
}

// TrimRight drops trailing spaces, tabs, CRs and LFs.
func TrimRight(b []byte) []byte {
	j := len(b)
	for j > 0 && isSpace(b[j-1]) {
		j--
	}
	return b[:j]
}

// Trim is TrimRight followed by TrimLeft.
func Trim(b []byte) []byte {
	return TrimLeft(TrimRight(b))
}

// ReplaceCRLF turns every CR and LF into a space.
func ReplaceCRLF(b []byte) []byte {
	for i, c := range b {
		if c == '\r' || c == '\n' {
			b[i] = ' '
		}
	}
	return b
}

// ToLower maps A-Z to a-z.
func ToLower(b []byte) []byte {
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return b
}

// ToUpper maps a-z to A-Z.
func ToUpper(b []byte) []byte {
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return b
}

// OccurCount returns how many times sep appears in src.
func OccurCount(src []byte, sep byte) int {
	return bytes.Count(src, []byte{sep})
}
