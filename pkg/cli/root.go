/*
Copyright © 2025 The rigcheck Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/rigcheck/rigcheck/pkg/config"
	"github.com/rigcheck/rigcheck/pkg/logging"
	"github.com/rigcheck/rigcheck/pkg/serializer"
)

const name = "rigcheck"

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/rigcheck/rigcheck/pkg/cli.version=1.0.0"
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Flag constructors return fresh instances; urfave/cli flags keep parse
// state and must not be shared between commands.
func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("output format (%v)", serializer.SupportedFormats()),
	}
}

func dataFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "data",
		Aliases: []string{"d"},
		Usage:   "path to the store document (default: embedded sample data)",
		Sources: cli.EnvVars(config.EnvPrefix + "DATA"),
	}
}

// NewCommand returns the root rigcheck command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Validate PC builds for completeness, compatibility and optimality",
		Version:               fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML configuration file",
				Sources: cli.EnvVars(config.ConfigPathEnvVar),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log verbosity (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := cmd.String("log-level")
			if level == "" {
				level = os.Getenv(logging.LogLevelEnvVar)
			}
			logging.SetDefaultCLILogger(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			verifyCmd(),
			buildsCmd(),
			serveCmd(),
		},
	}
}

// Execute runs the CLI with the process arguments and exits non-zero on
// failure.
func Execute() {
	if err := NewCommand().Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(exitCode(err))
	}
}
