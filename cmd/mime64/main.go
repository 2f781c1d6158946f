package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	app := newApp(os.Stdin, os.Stdout)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var ec cli.ExitCoder
		if errors.As(err, &ec) {
			os.Exit(ec.ExitCode())
		}
		os.Exit(1)
	}
}

func newApp(r io.Reader, w io.Writer) *cli.App {
	return &cli.App{
		Name:    "mime64",
		Usage:   "Base64 encoding and decoding per RFC 2045",
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Reader:  r,
		Writer:  w,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "log at debug level",
				EnvVars: []string{"MIME64_VERBOSE"},
			},
		},
		Before: setupLogger,
		After: func(*cli.Context) error {
			// Syncing stderr fails on some platforms.
			_ = zap.L().Sync()
			return nil
		},
		// Exit codes are handled by main.
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			encodeCommand(),
			decodeCommand(),
		},
	}
}

func setupLogger(c *cli.Context) error {
	cfg := zap.NewProductionConfig()
	if c.Bool("verbose") {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return errors.Wrap(err, "build logger")
	}
	zap.ReplaceGlobals(logger)
	return nil
}
