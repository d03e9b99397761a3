package launcher

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-cluster-shared/flags"
	"github.com/rony4d/go-cluster-shared/utils/errs"
	"github.com/rony4d/go-cluster-shared/utils/strutil"
)

func (e *env) textCommands() []cli.Command {
	return []cli.Command{
		{
			Name:      "split",
			Usage:     "Split on a single separator byte, one token per line",
			ArgsUsage: "[<text>|-]",
			Flags:     flags.TokenFlags(),
			Action:    e.split,
		},
		{
			Name:      "strtok",
			Usage:     "Tokenize on a set of delimiter bytes, skipping runs",
			ArgsUsage: "[<text>|-]",
			Flags:     flags.TokenFlags(),
			Action:    e.strtok,
		},
		{
			Name:      "replace",
			Usage:     "Replace every occurrence of <old> with <new>",
			ArgsUsage: "<old> <new> [<text>|-]",
			Flags:     []cli.Flag{flags.OutSizeFlag},
			Action:    e.replace,
		},
		{
			Name:      "trim",
			Usage:     "Strip leading and trailing ASCII whitespace",
			ArgsUsage: "[<text>|-]",
			Action:    e.trim,
		},
		{
			Name:      "parsebytes",
			Usage:     "Parse a size such as 64K or 10M into bytes",
			ArgsUsage: "<size>",
			Flags:     []cli.Flag{flags.UnitFlag},
			Action:    e.parseBytes,
		},
	}
}

func (e *env) split(ctx *cli.Context) error {
	sep := ctx.String(flags.SeparatorFlag.Name)
	if len(sep) != 1 {
		return fmt.Errorf("separator %q must be a single byte: %w", sep, errs.ErrInvalidArgument)
	}
	in, err := e.input(ctx, 0)
	if err != nil {
		return err
	}
	in = trimNewline(in)

	cols := strutil.Split(in, sep[0], ctx.Int(flags.MaxColsFlag.Name))
	return e.printSpans(in, cols)
}

func (e *env) strtok(ctx *cli.Context) error {
	delim := ctx.String(flags.SeparatorFlag.Name)
	limit := ctx.Int(flags.MaxColsFlag.Name)
	if delim == "" || limit <= 0 {
		return fmt.Errorf("need delimiters and a positive column limit: %w", errs.ErrInvalidArgument)
	}
	in, err := e.input(ctx, 0)
	if err != nil {
		return err
	}
	in = trimNewline(in)

	cols := make([]strutil.Span, limit)
	n := strutil.Strtok(in, []byte(delim), cols)
	return e.printSpans(in, cols[:n])
}

func (e *env) printSpans(buf []byte, cols []strutil.Span) error {
	e.log.WithFields(logrus.Fields{"tokens": len(cols), "bytes": len(buf)}).Debug("Tokenized")
	for i, c := range cols {
		if _, err := fmt.Fprintf(e.stdout, "%d\t%s\n", i, c.Bytes(buf)); err != nil {
			return err
		}
	}
	return nil
}

func (e *env) replace(ctx *cli.Context) error {
	if err := requireArgs(ctx, 2); err != nil {
		return err
	}
	size := ctx.Int(flags.OutSizeFlag.Name)
	if size <= 0 {
		return fmt.Errorf("output size %d: %w", size, errs.ErrInvalidArgument)
	}
	old, repl := []byte(ctx.Args().Get(0)), []byte(ctx.Args().Get(1))
	src, err := e.input(ctx, 2)
	if err != nil {
		return err
	}

	dst := make([]byte, size)
	n := strutil.Replace(dst, trimNewline(src), old, repl)
	if n == size-1 {
		e.log.WithField("size", size).Warn("Replace output reached the buffer limit, result may be truncated")
	}
	_, err = fmt.Fprintf(e.stdout, "%s\n", dst[:n])
	return err
}

func (e *env) trim(ctx *cli.Context) error {
	in, err := e.input(ctx, 0)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(e.stdout, "%s\n", strutil.Trim(in))
	return err
}

func (e *env) parseBytes(ctx *cli.Context) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}
	unit, err := strutil.ParseBytes("1"+ctx.String(flags.UnitFlag.Name), 1)
	if err != nil {
		return err
	}
	n, err := strutil.ParseBytes(ctx.Args().First(), unit)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.stdout, n)
	return err
}
