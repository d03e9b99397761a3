package strutil

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rony4d/go-cluster-shared/utils/errs"
)

// ParseBytes reads a size such as "512", "64K", "10m" or "2G".
//
// The leading integer (after optional whitespace and sign) is scaled by the
// first byte that follows it: K, M or G (either case) multiply by 1<<10, 1<<20
// and 1<<30; nothing at all multiplies by defaultUnit; any other suffix leaves
// the number unscaled. Input without digits parses as 0. Negative values, a
// non-positive unit and results that overflow int64 fail with
// errs.ErrInvalidArgument.
func ParseBytes(s string, defaultUnit int64) (int64, error) {
	i := 0
	for i < len(s) && (isSpace(s[i]) || s[i] == '\v' || s[i] == '\f') {
		i++
	}
	j := i
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		j++
	}
	k := j
	for k < len(s) && s[k] >= '0' && s[k] <= '9' {
		k++
	}

	var n int64
	rest := s
	if k > j {
		v, err := strconv.ParseInt(s[i:k], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse bytes %q: %v: %w", s, err, errs.ErrInvalidArgument)
		}
		n, rest = v, s[k:]
	}
	if n < 0 {
		return 0, fmt.Errorf("bytes %d < 0: %w", n, errs.ErrInvalidArgument)
	}

	var unit int64 = 1
	if rest == "" {
		unit = defaultUnit
	} else {
		switch rest[0] {
		case 'G', 'g':
			unit = 1 << 30
		case 'M', 'm':
			unit = 1 << 20
		case 'K', 'k':
			unit = 1 << 10
		}
	}
	if unit <= 0 {
		return 0, fmt.Errorf("unit %d <= 0: %w", unit, errs.ErrInvalidArgument)
	}
	if n > math.MaxInt64/unit {
		return 0, fmt.Errorf("bytes %d * %d overflows: %w", n, unit, errs.ErrInvalidArgument)
	}
	return n * unit, nil
}
