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

	"github.com/rigcheck/rigcheck/pkg/config"
	"github.com/rigcheck/rigcheck/pkg/serializer"
)

const (
	exitError    = 1
	exitCanceled = 2
	exitInvalid  = 3
)

// errInvalidBuilds is returned by verify --fail-on-violation when a report
// carries blocking violations.
var errInvalidBuilds = stderrors.New("one or more builds failed verification")

// parseOutputFormat extracts and validates the output format from CLI flags.
// Returns the validated format or an error if the format is unknown.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, valid formats are: %v", outFormat, serializer.SupportedFormats())
	}
	return outFormat, nil
}

// loadConfig reads the layered configuration and applies command flags on
// top of it.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if cmd.IsSet("data") {
		cfg.Data = cmd.String("data")
	}
	if cmd.IsSet("lang") {
		cfg.Language = cmd.String("lang")
	}
	if cmd.IsSet("skip") {
		cfg.Skip = cmd.StringSlice("skip")
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	return cfg, nil
}

// write serializes data to the --output destination in --format.
func write(ctx context.Context, cmd *cli.Command, data any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	if err != nil {
		return err
	}
	defer func() {
		if c, ok := ser.(serializer.Closer); ok {
			if err := c.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	return ser.Serialize(ctx, data)
}

func exitCode(err error) int {
	if stderrors.Is(err, errInvalidBuilds) {
		return exitInvalid
	}
	var ec cli.ExitCoder
	if stderrors.As(err, &ec) {
		return ec.ExitCode()
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return exitCanceled
	}
	return exitError
}
