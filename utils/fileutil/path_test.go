package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-cluster-shared/utils/errs"
)

func TestIsPathSecure(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"../etc/passwd", false},
		{"a/../b", false},
		{"data/../../etc", false},
		{"ab", true},
		{"..", true},
		{"", true},
		{"data/00/01/file", true},
		{"a..b/c", true},
		{"dir/..", true},
		{"/abs/path", true},
		{"./file", true},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, IsPathSecure(tc.path), "IsPathSecure(%q)", tc.path)
	}
}

func TestStatHelpers(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	require.True(t, Exists(dir))
	require.True(t, Exists(file))
	require.False(t, Exists(filepath.Join(dir, "missing")))

	require.True(t, IsDir(dir))
	require.False(t, IsDir(file))
	require.True(t, IsFile(file))
	require.False(t, IsFile(dir))
	require.False(t, IsFile(filepath.Join(dir, "missing")))
}

func TestChopPath(t *testing.T) {
	require.Equal(t, "/data/dir", ChopPath("/data/dir/"))
	require.Equal(t, "/data/dir", ChopPath("/data/dir"))
	require.Equal(t, "/data/dir/", ChopPath("/data/dir//"))
	require.Equal(t, "", ChopPath(""))
}

func TestSetFileTimes(t *testing.T) {
	file := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	when := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, SetFileTimes(file, when))

	fi, err := os.Stat(file)
	require.NoError(t, err)
	require.True(t, fi.ModTime().Equal(when))

	quietLogger(t)
	err = SetFileTimes(file+".missing", when)
	require.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestReadLine(t *testing.T) {
	require := require.New(t)
	r := strings.NewReader("first\nsecond line\nlast")
	buf := make([]byte, 64)

	n, err := ReadLine(r, buf, 8)
	require.NoError(err)
	require.Equal("first\n", string(buf[:n]))
	require.Equal(byte(0), buf[n])

	// The over-read was given back.
	pos, _ := r.Seek(0, 1)
	require.Equal(int64(6), pos)

	n, err = ReadLine(r, buf, 0)
	require.NoError(err)
	require.Equal("second line\n", string(buf[:n]))

	n, err = ReadLine(r, buf, 100)
	require.NoError(err)
	require.Equal("last", string(buf[:n]))

	n, err = ReadLine(r, buf, 4)
	require.NoError(err)
	require.Equal(0, n)
}

func TestReadLine_BufferLimit(t *testing.T) {
	r := strings.NewReader("abcdefgh\n")
	buf := make([]byte, 4)

	n, err := ReadLine(r, buf, 16)
	require.NoError(t, err)
	require.Equal(t, "abc", string(buf[:n]), "room kept for the terminator")

	n, err = ReadLine(r, buf, 16)
	require.NoError(t, err)
	require.Equal(t, "def", string(buf[:n]))
}

func TestReadLine_InvalidBuffer(t *testing.T) {
	_, err := ReadLine(strings.NewReader("x"), nil, 1)
	require.True(t, errors.Is(err, errs.ErrInvalidArgument))
}
