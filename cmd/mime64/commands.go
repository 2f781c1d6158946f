package main

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ericlagergren/mime64/base64"
	"github.com/ericlagergren/mime64/internal/reader"
)

func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "data to convert",
		},
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "read data from `FILE`",
		},
	}
}

func encodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "encode",
		Usage: "encodes data to base64",
		Description: "Reads --input, --file or stdin and writes the Base64 encoding\n" +
			"followed by a newline.",
		Flags: append(sourceFlags(), &cli.BoolFlag{
			Name:    "wrap",
			Aliases: []string{"w"},
			Usage:   "break lines after 76 characters with CRLF",
			EnvVars: []string{"MIME64_WRAP"},
		}),
		Action: func(c *cli.Context) error {
			data, source, err := reader.Read(c.String("input"), c.String("file"), c.App.Reader)
			if err != nil {
				return err
			}
			wrap := c.Bool("wrap")
			zap.S().Debugw("encoding", "source", source, "size", len(data), "wrap", wrap)

			out, err := base64.Encode(data, wrap)
			if err != nil {
				return codecError("encode", err)
			}
			out = append(out, '\n')
			if _, err := c.App.Writer.Write(out); err != nil {
				return errors.Wrap(err, "write output")
			}
			return nil
		},
	}
}

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "decode",
		Usage: "decodes base64 encoded data",
		Description: "Reads --input, --file or stdin and writes the decoded bytes.\n" +
			"Characters outside the Base64 alphabet are skipped unless --fast\n" +
			"is given, in which case the input must be unmodified output of\n" +
			"encode.",
		Flags: append(sourceFlags(), &cli.BoolFlag{
			Name:    "fast",
			Usage:   "trust the input and skip validation",
			EnvVars: []string{"MIME64_FAST"},
		}),
		Action: func(c *cli.Context) error {
			data, source, err := reader.Read(c.String("input"), c.String("file"), c.App.Reader)
			if err != nil {
				return err
			}
			fast := c.Bool("fast")
			zap.S().Debugw("decoding", "source", source, "size", len(data), "fast", fast)

			decode := base64.Decode
			if fast {
				decode = base64.DecodeFast
			}
			out, err := decode(data)
			if err != nil {
				return codecError("decode", err)
			}
			if _, err := c.App.Writer.Write(out); err != nil {
				return errors.Wrap(err, "write output")
			}
			return nil
		},
	}
}

// exitError is a cli.ExitCoder that keeps the wrapped error
// reachable for errors.Is.
type exitError struct {
	error
	code int
}

func (e exitError) ExitCode() int { return e.code }
func (e exitError) Unwrap() error { return e.error }

// codecError logs err and attaches an exit status derived from
// its base64.Kind.
func codecError(op string, err error) error {
	kind := base64.KindOf(err)
	zap.S().Errorw("conversion failed", "op", op, "kind", kind.String())
	return exitError{
		error: errors.WithMessagef(err, "%s failed (%s)", op, kind),
		code:  exitCode(kind),
	}
}

func exitCode(k base64.Kind) int {
	return int(k) + 1
}
