package fileutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/rony4d/go-cluster-shared/utils/errs"
)

// ReadLine reads one line from r into buf and returns its length.
//
// Reading stops after the first '\n' (which is kept), at end of input, or
// when len(buf)-1 bytes have been read. Reads are issued chunk bytes at a
// time (1 when chunk <= 0); bytes read past the newline are given back by
// seeking r backwards, so the next call starts right after the line. A zero
// terminator is stored after the line. End of input is not an error: the
// returned length is simply 0.
func ReadLine(r io.ReadSeeker, buf []byte, chunk int) (int, error) {
	if len(buf) == 0 {
		return 0, errs.New("readline", "", errs.ErrInvalidArgument,
			fmt.Errorf("buffer size %d", len(buf)))
	}
	if chunk <= 0 {
		chunk = 1
	}

	w := 0
	remain := len(buf) - 1
	for remain > 0 {
		if chunk > remain {
			chunk = remain
		}

		n, err := r.Read(buf[w : w+chunk])
		if n > 0 {
			if i := bytes.IndexByte(buf[w:w+n], '\n'); i >= 0 {
				end := w + i + 1
				if rewind := w + n - end; rewind > 0 {
					if _, err := r.Seek(-int64(rewind), io.SeekCurrent); err != nil {
						return 0, errs.New("seek", "", errs.ErrIO, err)
					}
				}
				w = end
				break
			}
			w += n
			remain -= n
		}
		if errors.Is(err, io.EOF) || (n == 0 && err == nil) {
			break
		}
		if err != nil {
			return 0, errs.New("read", "", errs.ErrIO, err)
		}
	}

	buf[w] = 0
	return w, nil
}
