package flags

import (
	"gopkg.in/urfave/cli.v1"
)

var (
	OffsetFlag = cli.Int64Flag{
		Name:  "offset",
		Usage: "Byte offset to start reading at",
	}
	SizeFlag = cli.IntFlag{
		Name:  "size",
		Usage: "Number of bytes to read",
		Value: 512,
	}
	UnsafeFlag = cli.BoolFlag{
		Name:  "unsafe",
		Usage: "Write in place instead of through a temp file and rename",
	}
	LinesFlag = cli.BoolFlag{
		Name:  "lines",
		Usage: "Read line by line and number the lines",
	}
	ChunkFlag = cli.IntFlag{
		Name:  "chunk",
		Usage: "Read chunk size used by line mode",
		Value: 64,
	}
)

// FileFlags covers the file commands.
func FileFlags() []cli.Flag {
	return []cli.Flag{OffsetFlag, SizeFlag}
}

var TimeFlag = cli.StringFlag{
	Name:  "time",
	Usage: "RFC 3339 timestamp to set (default: now)",
}
