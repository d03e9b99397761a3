package launcher

import (
	"io"
	"time"

	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"

	"github.com/rony4d/go-cluster-shared/utils/fileutil"
)

// verbosityLevels maps log.verbosity 0..5 onto logrus levels.
var verbosityLevels = [...]logrus.Level{
	logrus.FatalLevel,
	logrus.ErrorLevel,
	logrus.WarnLevel,
	logrus.InfoLevel,
	logrus.DebugLevel,
	logrus.TraceLevel,
}

// newLogger builds the process logger from cfg. Output goes to out. When a
// Sentry DSN is configured, error and worse entries are also reported there.
func newLogger(cfg LoggingConfig, sentry SentryConfig, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(verbosityLevels[cfg.Verbosity])
	// caller file:line at debug and trace only
	logger.SetReportCaller(cfg.Verbosity >= 4)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   cfg.Color,
			DisableColors: !cfg.Color,
			FullTimestamp: true,
		})
	}

	if sentry.DSN != "" {
		hook, err := logrus_sentry.NewSentryHook(sentry.DSN, sentryLevels)
		if err != nil {
			return nil, err
		}
		hook.Timeout = 2 * time.Second
		hook.StacktraceConfiguration.Enable = true
		logger.AddHook(hook)
	}

	fileutil.SetLogger(logger.WithField("module", "fileutil"))
	return logger, nil
}
