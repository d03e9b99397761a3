package codec

const upperHex = "0123456789ABCDEF"

// isUnreserved reports whether c passes through URLEncode unchanged.
func isUnreserved(c byte) bool {
	return (c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c == '_' || c == '-' || c == '.'
}

// URLEncode percent-encodes src. Unreserved bytes ([A-Za-z0-9_.-]) are copied,
// space becomes '+', everything else becomes %XX with uppercase digits.
func URLEncode(src []byte) []byte {
	n := 0
	for _, c := range src {
		if isUnreserved(c) || c == ' ' {
			n++
		} else {
			n += 3
		}
	}

	dst := make([]byte, 0, n)
	for _, c := range src {
		switch {
		case isUnreserved(c):
			dst = append(dst, c)
		case c == ' ':
			dst = append(dst, '+')
		default:
			dst = append(dst, '%', upperHex[c>>4], upperHex[c&0x0f])
		}
	}
	return dst
}

// URLDecode reverses URLEncode. '+' becomes a space and %XX (either case)
// becomes the byte it names. A '%' that is not followed by two hex digits is
// copied literally; decoding never fails.
func URLDecode(src []byte) []byte {
	dst := make([]byte, 0, len(src))
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '%' && i+2 < len(src):
			hi, okHi := unhex(src[i+1])
			lo, okLo := unhex(src[i+2])
			if okHi && okLo {
				dst = append(dst, hi<<4|lo)
				i += 3
				continue
			}
			dst = append(dst, c)
		case c == '+':
			dst = append(dst, ' ')
		default:
			dst = append(dst, c)
		}
		i++
	}
	return dst
}
