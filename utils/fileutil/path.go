package fileutil

import (
	"os"
	"strings"
	"time"
)

// IsPathSecure rejects paths that try to climb out of their base directory
// with a literal "../" component: a leading "../" or an embedded "/../".
// Paths shorter than 3 bytes are accepted.
//
// This is a substring check only. It does not resolve symlinks, absolute
// paths or "." components.
func IsPathSecure(path string) bool {
	if len(path) < 3 {
		return true
	}
	if strings.HasPrefix(path, "../") {
		return false
	}
	return !strings.Contains(path, "/../")
}

// Exists reports whether path can be stat'ed.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path is a directory.
func IsDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// IsFile reports whether path is a regular file.
func IsFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// ChopPath drops a single trailing slash.
func ChopPath(path string) string {
	return strings.TrimSuffix(path, "/")
}

// SetFileTimes sets both the access and the modification time of path.
func SetFileTimes(path string, t time.Time) error {
	if err := os.Chtimes(path, t, t); err != nil {
		return fail("utimes", path, nil, err)
	}
	return nil
}
