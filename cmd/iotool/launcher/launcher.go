package launcher

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-cluster-shared/flags"
	"github.com/rony4d/go-cluster-shared/utils/errs"
	"github.com/rony4d/go-cluster-shared/utils/fast"
)

// env carries the streams and the resolved config into command actions.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg Config
	log *logrus.Logger
}

// Launch runs the iotool command line with the process streams.
func Launch(args []string) error {
	return newApp(os.Stdin, os.Stdout, os.Stderr).Run(args)
}

// ExitCode maps err to the process exit status: 0 for nil, then one status
// per error kind, 1 for plain I/O and anything unclassified.
func ExitCode(err error) int {
	switch errs.KindOf(err) {
	case nil:
		if err == nil {
			return 0
		}
		return 1
	case errs.ErrNotFound:
		return 2
	case errs.ErrPermission:
		return 3
	case errs.ErrInvalidArgument:
		return 4
	case errs.ErrOutOfMemory:
		return 5
	}
	return 1
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	e := &env{stdin: stdin, stdout: stdout, stderr: stderr}

	app := flags.NewApp("byte buffer, codec, tokenizer and safe file toolbox")
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Before = e.setup
	app.Commands = e.commands()
	return app
}

// setup resolves the config, then installs logging and the allocation limit.
func (e *env) setup(ctx *cli.Context) error {
	cfg, err := MakeAllConfigs(ctx)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Logging, cfg.Sentry, e.stderr)
	if err != nil {
		return err
	}
	fast.MaxAlloc = cfg.Buffer.MaxAlloc

	e.cfg = cfg
	e.log = logger
	logger.WithFields(logrus.Fields{
		"verbosity": cfg.Logging.Verbosity,
		"format":    cfg.Logging.Format,
		"max_alloc": cfg.Buffer.MaxAlloc,
		"sentry":    cfg.Sentry.DSN != "",
	}).Debug("Config resolved")
	return nil
}

func (e *env) commands() []cli.Command {
	return append(append(e.codecCommands(), e.textCommands()...), e.fileCommands()...)
}
