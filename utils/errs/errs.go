// Package errs defines the error kinds shared by the buffer, tokenizer and
// file helpers.
//
// Every failing call returns an error that matches exactly one kind sentinel
// with errors.Is. File operations wrap the operating system error in an
// *OpError so that callers can still reach the original cause (and its errno)
// when composing a log line.
package errs

import (
	"errors"
	"io/fs"
	"strconv"
)

// Kind sentinels.
var (
	ErrNotFound        = errors.New("not found")
	ErrIO              = errors.New("i/o error")
	ErrOutOfMemory     = errors.New("out of memory")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrPermission      = errors.New("permission denied")
)

// OpError describes a failed operation on a path.
type OpError struct {
	// Op is the step that failed ("open", "seek", "read", "write", "fsync", "rename", ...).
	Op string
	// Path is the file the step operated on. Empty for pure in-memory failures.
	Path string
	// Kind is one of the package sentinels.
	Kind error
	// Err is the underlying cause, usually an *fs.PathError or *os.LinkError.
	Err error
}

// New builds an OpError of an explicit kind.
func New(op, path string, kind, err error) *OpError {
	return &OpError{Op: op, Path: path, Kind: kind, Err: err}
}

// Wrap builds an OpError whose kind is derived from err.
func Wrap(op, path string, err error) *OpError {
	return &OpError{Op: op, Path: path, Kind: Classify(err), Err: err}
}

func (e *OpError) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + strconv.Quote(e.Path)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg + ": " + e.Kind.Error()
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *OpError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Classify maps an error returned by the os package to a kind sentinel.
// Errors that already carry a kind keep it.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return ErrNotFound
	case errors.Is(err, ErrPermission):
		return ErrPermission
	case errors.Is(err, ErrOutOfMemory):
		return ErrOutOfMemory
	case errors.Is(err, ErrInvalidArgument):
		return ErrInvalidArgument
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrPermission
	case errors.Is(err, fs.ErrInvalid):
		return ErrInvalidArgument
	}
	return ErrIO
}

// KindOf returns the kind sentinel err matches, or nil.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	var op *OpError
	if errors.As(err, &op) {
		return op.Kind
	}
	return Classify(err)
}
