package fileutil

import (
	"os"

	"github.com/rony4d/go-cluster-shared/utils/errs"
)

const (
	// FilePerm is the mode of files created by WriteFile.
	FilePerm os.FileMode = 0644
	// TmpSuffix names the sibling file SafeWriteFile writes before renaming.
	TmpSuffix = ".tmp"
)

// WriteFile creates or truncates path, writes all of data, and fsyncs before
// closing. It only returns nil once the content has reached stable storage.
// The descriptor is closed on every path.
func WriteFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FilePerm)
	if err != nil {
		return fail("open", path, nil, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fail("write", path, errs.ErrIO, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fail("fsync", path, errs.ErrIO, err)
	}
	if err := f.Close(); err != nil {
		return fail("close", path, errs.ErrIO, err)
	}
	return nil
}

// SafeWriteFile replaces the content of path atomically: data goes to
// path+TmpSuffix through WriteFile (including fsync), and only then is the
// temp file renamed over path. Readers of path see either the old or the new
// content, never a mix.
//
// If writing the temp file fails, path is untouched. If the rename fails, the
// temp file is left in place and the error is returned; nothing is retried or
// cleaned up. Rename is only atomic when both names are on one filesystem,
// which holds for siblings.
func SafeWriteFile(path string, data []byte) error {
	tmp := path + TmpSuffix
	if err := WriteFile(tmp, data); err != nil {
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		kind := errs.ErrIO
		if errs.Classify(err) == errs.ErrPermission {
			kind = errs.ErrPermission
		}
		return fail("rename", path, kind, err)
	}
	return nil
}
