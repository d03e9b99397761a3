package errs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"not exist", fs.ErrNotExist, ErrNotFound},
		{"permission", fs.ErrPermission, ErrPermission},
		{"invalid", fs.ErrInvalid, ErrInvalidArgument},
		{"short read", io.ErrUnexpectedEOF, ErrIO},
		{"short write", io.ErrShortWrite, ErrIO},
		{"unknown", errors.New("boom"), ErrIO},
		{"already a kind", fmt.Errorf("wrapped: %w", ErrOutOfMemory), ErrOutOfMemory},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.err))
		})
	}
}

func TestOpError_UnwrapsKindAndCause(t *testing.T) {
	require := require.New(t)

	_, cause := os.Open(filepath.Join(t.TempDir(), "missing"))
	require.Error(cause)

	err := error(Wrap("open", "missing", cause))

	require.True(errors.Is(err, ErrNotFound), "kind must be reachable")
	require.True(errors.Is(err, fs.ErrNotExist), "os cause must be reachable")
	require.False(errors.Is(err, ErrIO))
	require.Equal(ErrNotFound, KindOf(err))

	var op *OpError
	require.True(errors.As(err, &op))
	require.Equal("open", op.Op)
	require.Contains(err.Error(), `open "missing"`)
}

func TestOpError_WithoutCause(t *testing.T) {
	err := New("read", "", ErrInvalidArgument, nil)
	require.Equal(t, "read: invalid argument", err.Error())
	require.True(t, errors.Is(err, ErrInvalidArgument))
	require.Equal(t, 0, Errno(err))
	require.Equal(t, "", ErrnoName(err))
}

func TestErrno(t *testing.T) {
	_, cause := os.Open(filepath.Join(t.TempDir(), "missing"))
	err := Wrap("open", "missing", cause)

	require.NotZero(t, Errno(err))
	require.Nil(t, KindOf(nil))
}
