package strutil

import (
	"bytes"
)

// Replace copies src into dst, substituting every occurrence of old with
// repl, and returns the number of bytes written.
//
// dst is a fixed-capacity destination: at most len(dst)-1 bytes of output are
// written, followed by a zero terminator. Output that does not fit is cut off;
// nothing is written past len(dst). An empty old degenerates to a bounded
// copy. A zero-length dst receives nothing and 0 is returned.
func Replace(dst, src, old, repl []byte) int {
	if len(dst) == 0 {
		return 0
	}
	limit := len(dst) - 1

	if len(old) == 0 {
		n := copy(dst[:limit], src)
		dst[n] = 0
		return n
	}

	w := 0
	for w < limit {
		i := bytes.Index(src, old)
		if i < 0 {
			break
		}
		w += copy(dst[w:limit], src[:i])
		w += copy(dst[w:limit], repl)
		src = src[i+len(old):]
	}
	w += copy(dst[w:limit], src)
	dst[w] = 0
	return w
}
