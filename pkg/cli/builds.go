/*
Copyright © 2025 The rigcheck Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/rigcheck/rigcheck/pkg/api"
	"github.com/rigcheck/rigcheck/pkg/store"
)

func buildsCmd() *cli.Command {
	return &cli.Command{
		Name:    "builds",
		Aliases: []string{"ls"},
		Usage:   "List the build ids in the store",
		Flags: []cli.Flag{
			dataFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			st, err := store.Open(cfg.Data)
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}

			return write(ctx, cmd, api.BuildList{Builds: st.IDs()})
		},
	}
}
