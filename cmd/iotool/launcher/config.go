package launcher

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-cluster-shared/flags"
	"github.com/rony4d/go-cluster-shared/utils/errs"
	"github.com/rony4d/go-cluster-shared/utils/fileutil"
)

// Config aggregates every setting the launcher needs.
type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Sentry  SentryConfig  `toml:"sentry"`
	Buffer  BufferConfig  `toml:"buffer"`
}

type LoggingConfig struct {
	Verbosity int    `toml:"verbosity"`
	Format    string `toml:"format"`
	Color     bool   `toml:"color"`
}

type SentryConfig struct {
	DSN string `toml:"dsn"`
}

type BufferConfig struct {
	MaxAlloc int `toml:"max_alloc"`
}

func defaultConfig() Config {
	d := DefaultConfig()
	return Config{
		Logging: LoggingConfig{
			Verbosity: d.Logging.Verbosity,
			Format:    d.Logging.Format,
			Color:     d.Logging.Color,
		},
		Buffer: BufferConfig{
			MaxAlloc: d.Buffer.MaxAlloc,
		},
	}
}

// MakeAllConfigs merges defaults, the optional config file, then CLI flag
// overrides, and validates the result.
func MakeAllConfigs(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()

	if file := ctx.GlobalString(flags.ConfigFlag); file != "" {
		if err := loadConfigFile(file, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to load config file %s: %w", file, err)
		}
	}

	applyCLIOverrides(ctx, &cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the logging and buffer setup cannot honour.
func (c *Config) Validate() error {
	if c.Logging.Verbosity < 0 || c.Logging.Verbosity > 5 {
		return fmt.Errorf("log verbosity %d out of range 0..5: %w", c.Logging.Verbosity, errs.ErrInvalidArgument)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q: %w", c.Logging.Format, errs.ErrInvalidArgument)
	}
	if c.Buffer.MaxAlloc <= 0 {
		return fmt.Errorf("buffer max_alloc %d must be positive: %w", c.Buffer.MaxAlloc, errs.ErrInvalidArgument)
	}
	return nil
}

func loadConfigFile(path string, cfg *Config) error {
	if !fileutil.IsFile(path) {
		return errs.New("open", path, errs.ErrNotFound, nil)
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown keys %v: %w", undecoded, errs.ErrInvalidArgument)
	}
	return nil
}

func applyCLIOverrides(ctx *cli.Context, cfg *Config) {
	if ctx.GlobalIsSet(flags.LogFormatFlag) {
		cfg.Logging.Format = ctx.GlobalString(flags.LogFormatFlag)
	}
	if ctx.GlobalIsSet(flags.LogVerbosityFlag) {
		cfg.Logging.Verbosity = ctx.GlobalInt(flags.LogVerbosityFlag)
	}
	if ctx.GlobalIsSet(flags.LogColorFlag) {
		cfg.Logging.Color = ctx.GlobalBool(flags.LogColorFlag)
	}
	if ctx.GlobalIsSet(flags.SentryDSNFlag) {
		cfg.Sentry.DSN = ctx.GlobalString(flags.SentryDSNFlag)
	}
	if ctx.GlobalIsSet(flags.MaxAllocFlag) {
		cfg.Buffer.MaxAlloc = ctx.GlobalInt(flags.MaxAllocFlag)
	}
}
