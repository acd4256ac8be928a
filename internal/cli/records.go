// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/unitytechnetwork/Afifi-sub000/models"
)

func (c *cli) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <inspection-id> <system> <file|->",
		Short: "Store a category record read from a JSON file or stdin",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := c.services(cmd)
			if err != nil {
				return err
			}
			raw, err := readInput(cmd, args[2])
			if err != nil {
				return err
			}
			system := models.SystemID(args[1])
			if err = rt.services.SystemRecordService.Save(commandContext(cmd), args[0], system, raw); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s saved\n", args[0], system)
			return err
		},
	}
}

func (c *cli) naCommand() *cobra.Command {
	var unset bool

	cmd := &cobra.Command{
		Use:   "na <inspection-id> <system>",
		Short: "Mark a category as not applicable",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := c.services(cmd)
			if err != nil {
				return err
			}
			ctx := commandContext(cmd)
			records := rt.services.SystemRecordService
			system := models.SystemID(args[1])

			state := "marked N/A"
			if unset {
				err = records.ClearNA(ctx, args[0], system)
				state = "N/A cleared"
			} else {
				err = records.MarkNA(ctx, args[0], system)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", args[0], system, state)
			return err
		},
	}

	cmd.Flags().BoolVar(&unset, "clear", false, "Remove the not-applicable flag")
	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading record file: %w", err)
	}
	return raw, nil
}
