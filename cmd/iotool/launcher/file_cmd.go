package launcher

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-cluster-shared/flags"
	"github.com/rony4d/go-cluster-shared/utils/errs"
	"github.com/rony4d/go-cluster-shared/utils/fast"
	"github.com/rony4d/go-cluster-shared/utils/fileutil"
)

// lineBufSize bounds one line in cat --lines; longer lines are split.
const lineBufSize = 4096

func (e *env) fileCommands() []cli.Command {
	return []cli.Command{
		{
			Name:      "cat",
			Usage:     "Print a whole file",
			ArgsUsage: "<path>",
			Flags:     []cli.Flag{flags.LinesFlag, flags.ChunkFlag},
			Action:    e.cat,
		},
		{
			Name:      "readat",
			Usage:     "Print up to --size bytes of a file starting at --offset",
			ArgsUsage: "<path>",
			Flags:     flags.FileFlags(),
			Action:    e.readAt,
		},
		{
			Name:      "write",
			Usage:     "Replace a file's content atomically (temp file, fsync, rename)",
			ArgsUsage: "<path> [<data>|-]",
			Flags:     []cli.Flag{flags.UnsafeFlag},
			Action:    e.write,
		},
		{
			Name:      "touch",
			Usage:     "Set a file's access and modification time",
			ArgsUsage: "<path>",
			Flags:     []cli.Flag{flags.TimeFlag},
			Action:    e.touch,
		},
		{
			Name:      "checkpath",
			Usage:     "Report traversal safety and type of each path",
			ArgsUsage: "<path>...",
			Action:    e.checkPath,
		},
	}
}

func (e *env) cat(ctx *cli.Context) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}
	path := ctx.Args().First()
	if ctx.Bool(flags.LinesFlag.Name) {
		return e.catLines(path, ctx.Int(flags.ChunkFlag.Name))
	}

	var buf fast.Buffer
	if err := fileutil.ReadFileInto(path, &buf); err != nil {
		return err
	}
	_, err := e.stdout.Write(buf.Bytes())
	return err
}

func (e *env) catLines(path string, chunk int) error {
	f, err := os.Open(path)
	if err != nil {
		return errs.Wrap("open", path, err)
	}
	defer f.Close()

	buf := make([]byte, lineBufSize)
	for no := 1; ; no++ {
		n, err := fileutil.ReadLine(f, buf, chunk)
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		if _, err := fmt.Fprintf(e.stdout, "%6d\t%s", no, buf[:n]); err != nil {
			return err
		}
		if buf[n-1] != '\n' {
			if _, err := fmt.Fprintln(e.stdout); err != nil {
				return err
			}
		}
	}
}

func (e *env) readAt(ctx *cli.Context) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}
	size := ctx.Int(flags.SizeFlag.Name)
	if size < 0 || size > fast.MaxAlloc {
		return fmt.Errorf("read size %d: %w", size, errs.ErrInvalidArgument)
	}

	buf := make([]byte, size)
	n, err := fileutil.ReadAt(ctx.Args().First(), ctx.Int64(flags.OffsetFlag.Name), buf)
	if err != nil {
		return err
	}
	_, err = e.stdout.Write(buf[:n])
	return err
}

func (e *env) write(ctx *cli.Context) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}
	path := fileutil.ChopPath(ctx.Args().First())
	if !fileutil.IsPathSecure(path) {
		return errs.New("write", path, errs.ErrPermission, errors.New("path leaves its base directory"))
	}
	if fileutil.IsDir(path) {
		return errs.New("write", path, errs.ErrInvalidArgument, errors.New("is a directory"))
	}
	data, err := e.input(ctx, 1)
	if err != nil {
		return err
	}

	safe := !ctx.Bool(flags.UnsafeFlag.Name)
	if safe {
		err = fileutil.SafeWriteFile(path, data)
	} else {
		err = fileutil.WriteFile(path, data)
	}
	if err != nil {
		return err
	}
	e.log.WithFields(logrus.Fields{
		"path":  path,
		"bytes": len(data),
		"safe":  safe,
	}).Info("File written")
	return nil
}

func (e *env) touch(ctx *cli.Context) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}
	t := time.Now()
	if s := ctx.String(flags.TimeFlag.Name); s != "" {
		var err error
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return fmt.Errorf("%v: %w", err, errs.ErrInvalidArgument)
		}
	}
	return fileutil.SetFileTimes(ctx.Args().First(), t)
}

func (e *env) checkPath(ctx *cli.Context) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}
	for _, arg := range ctx.Args() {
		path := fileutil.ChopPath(arg)
		kind := "missing"
		switch {
		case fileutil.IsDir(path):
			kind = "dir"
		case fileutil.IsFile(path):
			kind = "file"
		case fileutil.Exists(path):
			kind = "other"
		}
		if _, err := fmt.Fprintf(e.stdout, "%s\tsecure=%t\t%s\n", path, fileutil.IsPathSecure(path), kind); err != nil {
			return err
		}
	}
	return nil
}
