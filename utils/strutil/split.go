package strutil

import (
	"bytes"
)

// Span locates one token inside the buffer it was split from.
type Span struct {
	Off int
	Len int
}

// Bytes returns the token as a view into buf. buf must be the slice the span
// was produced from.
func (s Span) Bytes(buf []byte) []byte {
	end := s.Off + s.Len
	return buf[s.Off:end:end]
}

// String returns a copy of the token.
func (s Span) String(buf []byte) string {
	return string(buf[s.Off : s.Off+s.Len])
}

// Split cuts src on sep and returns at most maxCols spans (0 means no limit).
//
// The first count-1 separators are overwritten with zero bytes. The last span
// runs to the end of src, so with a cap it keeps any separators beyond it.
// Adjacent separators produce empty spans. A nil src yields no spans; an
// empty src yields one empty span.
func Split(src []byte, sep byte, maxCols int) []Span {
	if src == nil {
		return nil
	}

	count := bytes.Count(src, []byte{sep}) + 1
	if maxCols > 0 && count > maxCols {
		count = maxCols
	}

	cols := make([]Span, count)
	p := 0
	last := count - 1
	for i := 0; i < last; i++ {
		j := p + bytes.IndexByte(src[p:], sep)
		cols[i] = Span{Off: p, Len: j - p}
		src[j] = 0
		p = j + 1
	}
	cols[last] = Span{Off: p, Len: len(src) - p}
	return cols
}

// SplitEx is Split writing into a caller supplied array: len(cols) is the
// column limit. It returns the number of spans filled, which is smaller than
// len(cols) when src runs out of separators. When the limit is reached the
// last span holds the rest of src unsplit.
func SplitEx(src []byte, sep byte, cols []Span) int {
	if len(cols) == 0 {
		return 0
	}

	p := 0
	count := 0
	for {
		cols[count] = Span{Off: p, Len: len(src) - p}
		count++
		if count >= len(cols) {
			break
		}

		j := bytes.IndexByte(src[p:], sep)
		if j < 0 {
			break
		}
		cols[count-1].Len = j
		src[p+j] = 0
		p += j + 1
	}
	return count
}

// Strtok splits src on any byte of delim, the way whitespace tokenizers do:
// leading delimiters are skipped and runs of delimiters count as one, so no
// empty spans are produced. Delimiter bytes that follow a token are zeroed.
// It fills at most len(cols) spans and returns how many were filled; when the
// limit is hit the last span runs to the end of src, untouched.
func Strtok(src, delim []byte, cols []Span) int {
	if len(cols) == 0 {
		return 0
	}

	var set byteSet
	set.add(delim)

	p := 0
	for p < len(src) && set.has(src[p]) {
		p++
	}
	if p == len(src) {
		return 0
	}

	cols[0] = Span{Off: p, Len: len(src) - p}
	count := 1
	if count >= len(cols) {
		return count
	}

	wordEnd := false
	for ; p < len(src); p++ {
		if set.has(src[p]) {
			if !wordEnd {
				cols[count-1].Len = p - cols[count-1].Off
				wordEnd = true
			}
			src[p] = 0
			continue
		}
		if wordEnd {
			cols[count] = Span{Off: p, Len: len(src) - p}
			count++
			if count >= len(cols) {
				break
			}
			wordEnd = false
		}
	}
	return count
}

// Fields is Strtok with an allocated result of at most maxCols spans.
func Fields(src, delim []byte, maxCols int) []Span {
	if maxCols <= 0 {
		return nil
	}
	cols := make([]Span, maxCols)
	return cols[:Strtok(src, delim, cols)]
}

// byteSet is a 256-bit membership table.
type byteSet [256 / 64]uint64

func (s *byteSet) add(chars []byte) {
	for _, c := range chars {
		s[c>>6] |= 1 << (c & 63)
	}
}

func (s *byteSet) has(c byte) bool {
	return s[c>>6]&(1<<(c&63)) != 0
}
