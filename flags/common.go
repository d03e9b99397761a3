package flags

import (
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-cluster-shared/utils/fast"
)

// Names of the global flags, shared with the launcher's override code.
const (
	ConfigFlag       = "config"
	LogVerbosityFlag = "log.verbosity"
	LogFormatFlag    = "log.format"
	LogColorFlag     = "log.color"
	SentryDSNFlag    = "sentry.dsn"
	MaxAllocFlag     = "buffer.maxalloc"
)

// CommonFlags returns the base set of CLI flags shared across commands.
func CommonFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  ConfigFlag,
			Usage: "TOML configuration file",
		},
		cli.StringFlag{
			Name:  LogFormatFlag,
			Usage: "Log output format (text|json)",
			Value: "text",
		},
		cli.IntFlag{
			Name:  LogVerbosityFlag,
			Usage: "Logging verbosity (0=fatal,1=error,2=warn,3=info,4=debug,5=trace)",
			Value: 3,
		},
		cli.BoolFlag{
			Name:  LogColorFlag,
			Usage: "Enable colored log output",
		},
		cli.StringFlag{
			Name:  SentryDSNFlag,
			Usage: "Sentry DSN to report error level log entries to",
		},
		cli.IntFlag{
			Name:  MaxAllocFlag,
			Usage: "Largest single buffer allocation in bytes",
			Value: fast.DefaultMaxAlloc,
		},
	}
}
