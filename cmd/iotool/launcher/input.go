package launcher

import (
	"fmt"
	"io"

	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-cluster-shared/utils/errs"
	"github.com/rony4d/go-cluster-shared/utils/fast"
)

// input returns positional argument i, or all of stdin when the argument is
// missing or "-". The result is always a fresh, writable slice.
func (e *env) input(ctx *cli.Context, i int) ([]byte, error) {
	if arg := ctx.Args().Get(i); arg != "" && arg != "-" {
		return []byte(arg), nil
	}
	data, err := io.ReadAll(io.LimitReader(e.stdin, int64(fast.MaxAlloc)+1))
	if err != nil {
		return nil, errs.Wrap("read", "<stdin>", err)
	}
	if len(data) > fast.MaxAlloc {
		return nil, errs.New("read", "<stdin>", errs.ErrOutOfMemory,
			fmt.Errorf("input exceeds %d bytes", fast.MaxAlloc))
	}
	return data, nil
}

// requireArgs fails when fewer than n positional arguments were given.
func requireArgs(ctx *cli.Context, n int) error {
	if ctx.NArg() < n {
		return fmt.Errorf("%s: expected %d argument(s) %s: %w",
			ctx.Command.Name, n, ctx.Command.ArgsUsage, errs.ErrInvalidArgument)
	}
	return nil
}
