package launcher

import (
	"fmt"
	"strconv"

	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-cluster-shared/flags"
	"github.com/rony4d/go-cluster-shared/utils/codec"
	"github.com/rony4d/go-cluster-shared/utils/errs"
	"github.com/rony4d/go-cluster-shared/utils/fast"
)

func (e *env) codecCommands() []cli.Command {
	return []cli.Command{
		{
			Name:      "hex",
			Usage:     "Encode bytes as lowercase hex",
			ArgsUsage: "[<text>|-]",
			Action:    e.hexEncode,
		},
		{
			Name:      "unhex",
			Usage:     "Decode hex pairs into raw bytes",
			ArgsUsage: "[<hex>|-]",
			Action:    e.hexDecode,
		},
		{
			Name:      "urlencode",
			Usage:     "Percent-encode bytes, space becomes '+'",
			ArgsUsage: "[<text>|-]",
			Action:    e.urlEncode,
		},
		{
			Name:      "urldecode",
			Usage:     "Decode '+' and %XX escapes",
			ArgsUsage: "[<text>|-]",
			Action:    e.urlDecode,
		},
		{
			Name:      "int32",
			Usage:     "Show the 4-byte big-endian form of a number",
			ArgsUsage: "<number|hex>",
			Flags:     []cli.Flag{flags.DecodeFlag},
			Action:    e.encodeInt32,
		},
		{
			Name:      "int64",
			Usage:     "Show the 8-byte big-endian form of a number",
			ArgsUsage: "<number|hex>",
			Flags:     []cli.Flag{flags.DecodeFlag},
			Action:    e.encodeInt64,
		},
	}
}

func (e *env) hexEncode(ctx *cli.Context) error {
	in, err := e.input(ctx, 0)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.stdout, codec.HexEncode(in))
	return err
}

func (e *env) hexDecode(ctx *cli.Context) error {
	in, err := e.input(ctx, 0)
	if err != nil {
		return err
	}
	out := codec.HexDecode(string(trimNewline(in)))
	e.log.WithField("bytes", len(out)).Debug("Hex decoded")
	_, err = e.stdout.Write(out)
	return err
}

func (e *env) urlEncode(ctx *cli.Context) error {
	in, err := e.input(ctx, 0)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(e.stdout, "%s\n", codec.URLEncode(in))
	return err
}

func (e *env) urlDecode(ctx *cli.Context) error {
	in, err := e.input(ctx, 0)
	if err != nil {
		return err
	}
	_, err = e.stdout.Write(codec.URLDecode(trimNewline(in)))
	return err
}

func (e *env) encodeInt32(ctx *cli.Context) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}
	arg := ctx.Args().First()

	if ctx.Bool("decode") {
		b := codec.HexDecode(arg)
		if len(b) < codec.Int32Size {
			return fmt.Errorf("need %d bytes, got %d: %w", codec.Int32Size, len(b), errs.ErrInvalidArgument)
		}
		_, err := fmt.Fprintln(e.stdout, fast.NewReader(b).I32())
		return err
	}

	n, err := strconv.ParseInt(arg, 0, 32)
	if err != nil {
		return fmt.Errorf("%v: %w", err, errs.ErrInvalidArgument)
	}
	_, err = fmt.Fprintln(e.stdout, codec.HexEncode(codec.Int32ToBytes(int32(n))))
	return err
}

func (e *env) encodeInt64(ctx *cli.Context) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}
	arg := ctx.Args().First()

	if ctx.Bool("decode") {
		b := codec.HexDecode(arg)
		if len(b) < codec.Int64Size {
			return fmt.Errorf("need %d bytes, got %d: %w", codec.Int64Size, len(b), errs.ErrInvalidArgument)
		}
		_, err := fmt.Fprintln(e.stdout, codec.BytesToInt64(b[:codec.Int64Size]))
		return err
	}

	n, err := strconv.ParseInt(arg, 0, 64)
	if err != nil {
		return fmt.Errorf("%v: %w", err, errs.ErrInvalidArgument)
	}
	w := fast.NewWriter(make([]byte, 0, codec.Int64Size))
	w.I64(n)
	_, err = fmt.Fprintln(e.stdout, codec.HexEncode(w.Bytes()))
	return err
}

// trimNewline drops one trailing "\n" or "\r\n" left by echo or a file.
func trimNewline(b []byte) []byte {
	n := len(b)
	if n > 0 && b[n-1] == '\n' {
		n--
		if n > 0 && b[n-1] == '\r' {
			n--
		}
	}
	return b[:n]
}
