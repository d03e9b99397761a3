package flags

import (
	"gopkg.in/urfave/cli.v1"
)

var (
	SeparatorFlag = cli.StringFlag{
		Name:  "sep",
		Usage: "Separator byte for split, delimiter set for strtok",
		Value: ",",
	}
	MaxColsFlag = cli.IntFlag{
		Name:  "maxcols",
		Usage: "Maximum number of tokens to produce",
		Value: 64,
	}
	UnitFlag = cli.StringFlag{
		Name:  "unit",
		Usage: "Unit applied to a number without a suffix (b|k|m|g)",
		Value: "b",
	}
	OutSizeFlag = cli.IntFlag{
		Name:  "outsize",
		Usage: "Output buffer size for replace, including the terminator",
		Value: 4096,
	}
)

// TokenFlags covers the tokenizer commands.
func TokenFlags() []cli.Flag {
	return []cli.Flag{SeparatorFlag, MaxColsFlag}
}
