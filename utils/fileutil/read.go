package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/rony4d/go-cluster-shared/utils/errs"
	"github.com/rony4d/go-cluster-shared/utils/fast"
)

// ReadFile returns the whole content of path.
func ReadFile(path string) ([]byte, error) {
	var buf fast.Buffer
	if err := ReadFileInto(path, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadFileInto loads the whole content of path into buf, replacing what buf
// held. The file is sized by seeking to its end, buf is sized to hold the
// content plus a zero terminator, and the content is read back from offset 0.
//
// On any failure buf is reset (no storage, length 0). A file larger than
// fast.MaxAlloc fails with errs.ErrOutOfMemory.
func ReadFileInto(path string, buf *fast.Buffer) (err error) {
	defer func() {
		if err != nil {
			buf.Reset()
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return fail("open", path, nil, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return fail("stat", path, errs.ErrIO, err)
	}
	if !fi.Mode().IsRegular() {
		var cause error = syscall.EINVAL
		if fi.IsDir() {
			cause = syscall.EISDIR
		}
		return fail("read", path, errs.ErrIO, cause)
	}

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return fail("seek", path, errs.ErrIO, err)
	}
	if size < 0 || size >= int64(fast.MaxAlloc) {
		return fail("allocate", path, errs.ErrOutOfMemory,
			fmt.Errorf("file size %d exceeds limit %d", size, fast.MaxAlloc))
	}

	win, err := buf.Resize(int(size))
	if err != nil {
		return fail("allocate", path, nil, err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fail("seek", path, errs.ErrIO, err)
	}
	if _, err := io.ReadFull(f, win); err != nil {
		return fail("read", path, errs.ErrIO, err)
	}
	return nil
}

// ReadAt reads at most len(buf) bytes of path starting at offset and returns
// how many bytes it got. It issues a single read, so a short count is normal
// near the end of the file; reading at or past the end returns 0 and no error.
// An offset <= 0 reads from the start. An empty buf fails with
// errs.ErrInvalidArgument before the file is opened.
func ReadAt(path string, offset int64, buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, fail("read", path, errs.ErrInvalidArgument,
			fmt.Errorf("invalid size: %d", len(buf)))
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fail("open", path, nil, err)
	}
	defer f.Close()

	if offset > 0 {
		if _, err := f.Seek(offset, io.SeekStart); err != nil {
			return 0, fail("seek", path, errs.ErrIO, err)
		}
	}

	n, err := f.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fail("read", path, errs.ErrIO, err)
	}
	return n, nil
}
