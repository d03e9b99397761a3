package launcher

import (
	"github.com/sirupsen/logrus"

	"github.com/rony4d/go-cluster-shared/utils/fast"
)

// LoggingDefaults controls log verbosity/format.
type LoggingDefaults struct {
	Verbosity int    //	Log level numeric (0=fatal, 1=error, 2=warn, 3=info, 4=debug, 5=trace).
	Format    string //	Log output format (text vs json).
	Color     bool   //	Whether to force ANSI colors even when stderr is not a terminal.
}

// BufferDefaults bounds buffer growth.
type BufferDefaults struct {
	MaxAlloc int //	Largest single allocation a fast.Buffer may make; bigger requests fail with an out of memory error.
}

// Defaults bundles the baseline configuration values the launcher uses
// before config files and flags override them.
type Defaults struct {
	Logging LoggingDefaults
	Buffer  BufferDefaults
}

// sentryLevels are the entries forwarded to Sentry when a DSN is set.
var sentryLevels = []logrus.Level{
	logrus.PanicLevel,
	logrus.FatalLevel,
	logrus.ErrorLevel,
}

// DefaultConfig returns a fully populated Defaults instance.
func DefaultConfig() Defaults {
	return Defaults{
		Logging: LoggingDefaults{
			Verbosity: 3,
			Format:    "text",
			Color:     false,
		},
		Buffer: BufferDefaults{
			MaxAlloc: fast.DefaultMaxAlloc,
		},
	}
}
