// Package strutil tokenizes and rewrites byte strings in place.
//
// Tokens are Spans (offset, length) into the caller's buffer rather than
// copies. Splitting is destructive: every separator that ends a token is
// overwritten with a zero byte, so a buffer that has been tokenized no longer
// holds its original content, and any other view of it sees the change. The
// buffer must stay alive for as long as its spans are used, and only one
// goroutine may tokenize or read a given buffer at a time.
//
//	line := []byte("a,b,,c")
//	for _, s := range strutil.Split(line, ',', 0) {
//		fmt.Printf("%q\n", s.Bytes(line)) // "a" "b" "" "c"
//	}
//
// Split and SplitEx keep empty fields (CSV style). Strtok and Fields collapse
// runs of delimiters (whitespace style).
package strutil
