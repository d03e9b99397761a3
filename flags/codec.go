package flags

import (
	"gopkg.in/urfave/cli.v1"
)

var DecodeFlag = cli.BoolFlag{
	Name:  "decode, d",
	Usage: "Decode the big-endian hex form back into a number",
}
