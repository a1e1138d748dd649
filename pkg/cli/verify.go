/*
Copyright © 2025 The rigcheck Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/rigcheck/rigcheck/pkg/api"
	"github.com/rigcheck/rigcheck/pkg/errors"
	"github.com/rigcheck/rigcheck/pkg/message"
	"github.com/rigcheck/rigcheck/pkg/store"
	"github.com/rigcheck/rigcheck/pkg/verifier"
)

// maxParallelVerify bounds concurrent verifications of a multi-build run.
const maxParallelVerify = 8

func verifyCmd() *cli.Command {
	return &cli.Command{
		Name:                  "verify",
		EnableShellCompletion: true,
		Usage:                 "Verify one or more builds",
		ArgsUsage:             "[BUILD_ID...]",
		Description: `Runs every completeness, compatibility and optimality check on the given
builds and prints one report per build.

Completeness and compatibility violations make a build invalid; optimality
warnings never do. Use --fail-on-violation in scripts to exit with status 3
when any build is invalid.

# Examples

  rigcheck verify gaming-rig
  rigcheck verify -b workstation -b compact-build --format table
  rigcheck verify --data ./catalog.yaml --lang de budget-build`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "build",
				Aliases: []string{"b"},
				Usage:   "build id to verify (can be repeated)",
			},
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   fmt.Sprintf("message language (%v)", message.SupportedLanguages()),
			},
			&cli.StringSliceFlag{
				Name:  "skip",
				Usage: "rule name pattern to skip, e.g. storage-* (can be repeated)",
			},
			&cli.BoolFlag{
				Name:  "fail-on-violation",
				Usage: "exit non-zero when any build has completeness or compatibility violations",
			},
			dataFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ids := append(cmd.StringSlice("build"), cmd.Args().Slice()...)
			if len(ids) == 0 {
				return fmt.Errorf("at least one build id is required")
			}

			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			st, err := store.Open(cfg.Data)
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}

			opts, err := api.VerifierOptions(cfg, version)
			if err != nil {
				return err
			}

			reports, err := verifyAll(ctx, verifier.New(st, opts...), ids)
			if err != nil {
				return err
			}

			var out any = reports
			if len(reports) == 1 {
				out = reports[0]
			}
			if err := write(ctx, cmd, out); err != nil {
				return err
			}

			if cmd.Bool("fail-on-violation") {
				for _, r := range reports {
					if !r.Valid() {
						return errInvalidBuilds
					}
				}
			}
			return nil
		},
	}
}

// verifyAll verifies ids concurrently and returns the reports in input order.
func verifyAll(ctx context.Context, v *verifier.Verifier, ids []string) ([]*verifier.Report, error) {
	reports := make([]*verifier.Report, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelVerify)

	for i, id := range ids {
		g.Go(func() error {
			r, err := v.Verify(ctx, id)
			if err != nil {
				return describe(id, err)
			}
			reports[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("verified builds", "count", len(reports))
	return reports, nil
}

// describe adds the store's suggestion to a not-found error.
func describe(id string, err error) error {
	var se *errors.StructuredError
	if errors.IsNotFound(err) && stderrors.As(err, &se) {
		if s, ok := se.Context["suggestion"]; ok {
			return fmt.Errorf("build %q not found, did you mean %q?", id, s)
		}
		return fmt.Errorf("build %q not found", id)
	}
	return fmt.Errorf("failed to verify build %q: %w", id, err)
}
