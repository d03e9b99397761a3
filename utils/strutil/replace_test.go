package strutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplace(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		old     string
		repl    string
		dstSize int
		want    string
	}{
		{"all occurrences", "foobarfoo", "foo", "X", 64, "XbarX"},
		{"truncated in the gap", "foobarfoo", "foo", "X", 3, "Xb"},
		{"truncated in the replacement", "ab", "a", "XYZ", 3, "XY"},
		{"grows", "a-b-c", "-", "--", 64, "a--b--c"},
		{"shrinks", "aXXbXXc", "XX", "", 64, "abc"},
		{"no match", "hello", "zz", "y", 64, "hello"},
		{"no match truncated", "hello", "zz", "y", 4, "hel"},
		{"empty pattern copies", "hello", "", "y", 64, "hello"},
		{"empty pattern truncated", "hello", "", "y", 3, "he"},
		{"room for terminator only", "hello", "l", "L", 1, ""},
		{"adjacent matches", "aaaa", "aa", "b", 64, "bb"},
		{"exact fit", "ab", "b", "c", 3, "ac"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dst := make([]byte, tc.dstSize)
			n := Replace(dst, []byte(tc.src), []byte(tc.old), []byte(tc.repl))
			require.Equal(t, len(tc.want), n)
			require.Equal(t, tc.want, string(dst[:n]))
			require.Equal(t, byte(0), dst[n], "terminator after output")
		})
	}
}

// TestReplace_NeverOverflows places dst inside a larger slice and checks the
// bytes past its end are untouched.
func TestReplace_NeverOverflows(t *testing.T) {
	backing := bytes.Repeat([]byte{0xEE}, 16)
	dst := backing[:5:5]

	n := Replace(dst, []byte("foofoofoofoo"), []byte("foo"), []byte("LONGER"))
	require.Equal(t, 4, n)
	require.Equal(t, "LONG", string(dst[:n]))
	require.Equal(t, bytes.Repeat([]byte{0xEE}, 11), backing[5:])
}

func TestReplace_EmptyDestination(t *testing.T) {
	require.Equal(t, 0, Replace(nil, []byte("abc"), []byte("a"), []byte("b")))
	require.Equal(t, 0, Replace([]byte{}, []byte("abc"), nil, nil))
}

func TestReplace_BoundedBySourceLength(t *testing.T) {
	src := []byte("foo|foo")
	dst := make([]byte, 16)
	// Only the first 3 bytes belong to the range.
	n := Replace(dst, src[:3], []byte("foo"), []byte("bar"))
	require.Equal(t, "bar", string(dst[:n]))
}
