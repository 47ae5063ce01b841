// Command fingerprint prints the list, string, counter and tuple fingerprints
// of JSON or text inputs.
//
//	fingerprint list '[1, 2, 3]'
//	fingerprint string --file query.sql
//	echo '{"a": 2, "b": 1}' | fingerprint counter
//
// Input is taken from the positional argument, from --file, or from stdin,
// in that order.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const loggerKey = "logger"

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout io.Writer) *cli.App {
	inputFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "read input from `FILE` instead of the argument or stdin",
		},
	}

	return &cli.App{
		Name:                   "fingerprint",
		Usage:                  "Deterministic fingerprints for lists, strings and counters",
		Reader:                 stdin,
		Writer:                 stdout,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "text-hash",
				Value:   textDJB2,
				Usage:   "strategy for string elements and keys: djb2, wyhash or xxhash",
				EnvVars: []string{"FINGERPRINT_TEXT_HASH"},
			},
			&cli.Uint64Flag{
				Name:    "seed",
				Usage:   "seed for the wyhash text strategy",
				EnvVars: []string{"FINGERPRINT_SEED"},
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print results as JSON objects",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging on stderr",
			},
		},
		Before: func(c *cli.Context) error {
			log := zap.NewNop()
			if c.Bool("verbose") {
				var err error
				if log, err = zap.NewDevelopment(); err != nil {
					return fmt.Errorf("failed to create logger: %w", err)
				}
			}

			c.App.Metadata = map[string]any{loggerKey: log}
			return nil
		},
		After: func(c *cli.Context) error {
			_ = logger(c).Sync()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "fingerprint a JSON array",
				ArgsUsage: "[JSON]",
				Flags:     inputFlags,
				Action:    listAction,
			},
			{
				Name:      "string",
				Usage:     "fingerprint raw text with DJB2",
				ArgsUsage: "[TEXT]",
				Flags: append([]cli.Flag{
					&cli.StringSliceFlag{
						Name:    "mask",
						Aliases: []string{"m"},
						Usage:   "replace matches of `REGEX` with ? before hashing (repeatable, but use either --mask or -m throughout)",
					},
				}, inputFlags...),
				Action: stringAction,
			},
			{
				Name:      "counter",
				Usage:     "fingerprint a JSON object of integer counts",
				ArgsUsage: "[JSON]",
				Flags:     inputFlags,
				Action:    counterAction,
			},
			{
				Name:      "tuple",
				Usage:     "combine the element hashes of a JSON array like a tuple",
				ArgsUsage: "[JSON]",
				Flags:     inputFlags,
				Action:    tupleAction,
			},
		},
	}
}

// logger returns the logger installed by the Before hook, or a no-op logger
// when the hook did not run.
func logger(c *cli.Context) *zap.Logger {
	if log, ok := c.App.Metadata[loggerKey].(*zap.Logger); ok {
		return log
	}

	return zap.NewNop()
}
