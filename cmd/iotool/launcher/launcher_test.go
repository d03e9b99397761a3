package launcher

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-cluster-shared/utils/errs"
	"github.com/rony4d/go-cluster-shared/utils/fast"
	"github.com/rony4d/go-cluster-shared/utils/fileutil"
)

// run executes the app with the given stdin and returns what it printed.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { fast.MaxAlloc = fast.DefaultMaxAlloc })

	var stdout, stderr bytes.Buffer
	app := newApp(strings.NewReader(stdin), &stdout, &stderr)
	err := app.Run(append([]string{"iotool"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestCommands_Output(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"hex", "", []string{"hex", "hi"}, "6869\n"},
		{"hex from stdin", "hi", []string{"hex"}, "6869\n"},
		{"unhex", "", []string{"unhex", "6869"}, "hi"},
		{"unhex stdin newline", "6869\n", []string{"unhex", "-"}, "hi"},
		{"urlencode", "", []string{"urlencode", "a b&c"}, "a+b%26c\n"},
		{"urldecode", "", []string{"urldecode", "a+b%26c"}, "a b&c"},
		{"int32", "", []string{"int32", "258"}, "00000102\n"},
		{"int32 hex input", "", []string{"int32", "0x7fffffff"}, "7fffffff\n"},
		{"int32 decode", "", []string{"int32", "--decode", "fffffffe"}, "-2\n"},
		{"int64", "", []string{"int64", "1"}, "0000000000000001\n"},
		{"int64 decode", "", []string{"int64", "-d", "0000000000000100"}, "256\n"},
		{"split", "", []string{"split", "--sep", ",", "a,,b"}, "0\ta\n1\t\n2\tb\n"},
		{"split capped", "", []string{"split", "--maxcols", "2", "a,b,c"}, "0\ta\n1\tb,c\n"},
		{"strtok", "", []string{"strtok", "--sep", " ,", "  a, b  "}, "0\ta\n1\tb\n"},
		{"strtok stdin", "x y\n", []string{"strtok", "--sep", " "}, "0\tx\n1\ty\n"},
		{"replace", "", []string{"replace", "ab", "X", "abcab"}, "XcX\n"},
		{"replace bounded", "", []string{"replace", "--outsize", "4", "a", "bb", "aaa"}, "bbb\n"},
		{"trim", "", []string{"trim", "  hi \n"}, "hi\n"},
		{"parsebytes", "", []string{"parsebytes", "10M"}, "10485760\n"},
		{"parsebytes unit", "", []string{"parsebytes", "--unit", "k", "2"}, "2048\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, tc.stdin, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestCommands_InvalidArguments(t *testing.T) {
	tests := [][]string{
		{"int32"},
		{"int32", "99999999999"},
		{"int32", "--decode", "ff"},
		{"int64", "--decode", "00"},
		{"split", "--sep", "ab", "x"},
		{"strtok", "--maxcols", "0", "x"},
		{"replace", "only-old"},
		{"replace", "--outsize", "0", "a", "b", "c"},
		{"parsebytes"},
		{"readat", "--size", "-1", "/dev/null"},
		{"write", "../escape", "data"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, _, err := run(t, "", args...)
			require.Error(t, err)
			require.True(t, errors.Is(err, errs.ErrInvalidArgument) || errors.Is(err, errs.ErrPermission), "got %v", err)
		})
	}
}

func TestCommands_WriteCatReadAt(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "data.txt")

	_, stderr, err := run(t, "", "--log.verbosity", "3", "write", path, "line one\nline two\n")
	require.NoError(err)
	require.Contains(stderr, "File written")
	require.False(fileutil.Exists(path + fileutil.TmpSuffix))

	out, _, err := run(t, "", "cat", path)
	require.NoError(err)
	require.Equal("line one\nline two\n", out)

	out, _, err = run(t, "", "cat", "--lines", "--chunk", "3", path)
	require.NoError(err)
	require.Equal("     1\tline one\n     2\tline two\n", out)

	out, _, err = run(t, "", "readat", "--offset", "5", "--size", "3", path)
	require.NoError(err)
	require.Equal("one", out)

	// stdin, in place
	_, _, err = run(t, "replaced", "write", "--unsafe", path)
	require.NoError(err)
	got, err := os.ReadFile(path)
	require.NoError(err)
	require.Equal("replaced", string(got))
}

func TestCommands_CatMissingFile(t *testing.T) {
	_, stderr, err := run(t, "", "--log.format", "json", "cat", filepath.Join(t.TempDir(), "missing"))
	require.True(t, errors.Is(err, errs.ErrNotFound))
	require.Contains(t, stderr, `"op":"open"`)
	require.Contains(t, stderr, `"errno_name":"ENOENT"`)
}

func TestCommands_CatDirectory(t *testing.T) {
	_, _, err := run(t, "", "cat", t.TempDir())
	require.True(t, errors.Is(err, errs.ErrIO), "got %v", err)
	require.Equal(t, 1, ExitCode(err))
}

func TestCommands_CatLinesWithoutTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, []byte("a\nb"), 0o644))

	out, _, err := run(t, "", "cat", "--lines", path)
	require.NoError(t, err)
	require.Equal(t, "     1\ta\n     2\tb\n", out)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"not found", errs.New("open", "x", errs.ErrNotFound, nil), 2},
		{"permission", errs.New("write", "x", errs.ErrPermission, nil), 3},
		{"invalid argument", fmt.Errorf("bad: %w", errs.ErrInvalidArgument), 4},
		{"out of memory", errs.New("allocate", "x", errs.ErrOutOfMemory, nil), 5},
		{"io", errs.New("fsync", "x", errs.ErrIO, nil), 1},
		{"unclassified", errors.New("flag provided but not defined"), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}

func TestCommands_MaxAllocFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), 64), 0o644))

	_, _, err := run(t, "", "--buffer.maxalloc", "16", "cat", path)
	require.True(t, errors.Is(err, errs.ErrOutOfMemory))
}

func TestCommands_TouchAndCheckPath(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(os.WriteFile(file, nil, 0o644))

	_, _, err := run(t, "", "touch", "--time", "2021-06-01T10:00:00Z", file)
	require.NoError(err)
	fi, err := os.Stat(file)
	require.NoError(err)
	require.True(fi.ModTime().Equal(time.Date(2021, 6, 1, 10, 0, 0, 0, time.UTC)))

	out, _, err := run(t, "", "checkpath", dir+"/", file, "a/../b")
	require.NoError(err)
	require.Equal(dir+"\tsecure=true\tdir\n"+
		file+"\tsecure=true\tfile\n"+
		"a/../b\tsecure=false\tmissing\n", out)
}

func TestSetup_BadSentryDSN(t *testing.T) {
	_, _, err := run(t, "", "--sentry.dsn", "http://sentry.example/1", "hex", "x")
	require.Error(t, err)
}
