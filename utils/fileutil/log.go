package fileutil

import (
	"github.com/sirupsen/logrus"

	"github.com/rony4d/go-cluster-shared/utils/errs"
)

var log logrus.FieldLogger = logrus.WithField("module", "fileutil")

// SetLogger replaces the logger used to report failures.
func SetLogger(l logrus.FieldLogger) {
	log = l
}

// fail logs the failed step and returns it as an *errs.OpError.
func fail(op, path string, kind, err error) error {
	if kind == nil {
		kind = errs.Classify(err)
	}
	e := errs.New(op, path, kind, err)
	log.WithFields(logrus.Fields{
		"op":         op,
		"path":       path,
		"errno":      errs.Errno(err),
		"errno_name": errs.ErrnoName(err),
	}).WithError(err).Errorf("%s file fail", op)
	return e
}
