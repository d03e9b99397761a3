// Package fileutil reads and writes whole files with crash-safe replacement.
//
// WriteFile always fsyncs before it reports success. SafeWriteFile adds an
// atomic rename on top, so a file written with it is never observed half
// written, even if the process dies between the write and the rename (the
// leftover is then the "<path>.tmp" sibling, not a damaged path).
//
// Every failure is logged through logrus with the failing step, the path and
// the OS errno, and returned as an *errs.OpError whose kind can be tested with
// errors.Is(err, errs.ErrNotFound) and friends.
//
// All calls block on disk I/O and none of them keep state between calls.
package fileutil
