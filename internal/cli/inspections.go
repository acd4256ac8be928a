// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/unitytechnetwork/Afifi-sub000/internal/crypto"
	"github.com/unitytechnetwork/Afifi-sub000/models"
)

func (c *cli) newCommand() *cobra.Command {
	var details models.InspectionDetails

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a draft inspection and print its id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := c.services(cmd)
			if err != nil {
				return err
			}
			rec, err := rt.services.InspectionService.Create(commandContext(cmd), details)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rec.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&details.ClientName, "client", "", "Client or building name")
	cmd.Flags().StringVar(&details.Location, "location", "", "Site location")
	cmd.Flags().StringVar(&details.Date, "date", "", "Inspection date (YYYY-MM-DD), today when empty")
	cmd.Flags().StringVar(&details.TechnicianName, "technician", "", "Technician name")
	cmd.Flags().StringVar(&details.TechnicianID, "technician-id", "", "Technician staff id")
	_ = cmd.MarkFlagRequired("client")
	return cmd
}

func (c *cli) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List inspections, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := c.services(cmd)
			if err != nil {
				return err
			}
			list, err := rt.services.InspectionService.List(commandContext(cmd))
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSTATUS\tDATE\tCLIENT\tLOCATION")
			for _, rec := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", rec.ID, rec.Status, rec.Date, rec.ClientName, orDash(rec.Location))
			}
			return tw.Flush()
		},
	}
}

func (c *cli) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <inspection-id>",
		Short: "Print an inspection header as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := c.services(cmd)
			if err != nil {
				return err
			}
			rec, err := rt.services.InspectionService.Get(commandContext(cmd), args[0])
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err = enc.Encode(rec); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

const statusLong = `Move an inspection through its lifecycle.

"sync" queues a draft for upload, "submitted" hands it to the supervisor
and "draft" reopens it. Approval goes through the certify command.`

func (c *cli) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status <inspection-id> <draft|sync|submitted>",
		Short: "Move an inspection through its lifecycle",
		Long:  statusLong,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := c.services(cmd)
			if err != nil {
				return err
			}
			ctx := commandContext(cmd)
			inspections := rt.services.InspectionService

			var rec models.InspectionRecord
			target := parseStatus(args[1])
			switch {
			case target == "SYNC":
				rec, err = inspections.MarkForSync(ctx, args[0])
			case target.IsValid():
				rec, err = inspections.Transition(ctx, args[0], target)
			default:
				return fmt.Errorf("unknown status %q", args[1])
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", rec.ID, rec.Status)
			return err
		},
	}
}

func (c *cli) certifyCommand() *cobra.Command {
	var supervisor string

	cmd := &cobra.Command{
		Use:   "certify <inspection-id>",
		Short: "Approve a submitted inspection with the supervisor PIN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := c.services(cmd)
			if err != nil {
				return err
			}
			pin, err := promptPIN(cmd.ErrOrStderr(), "Supervisor PIN: ")
			if err != nil {
				return err
			}
			rec, err := rt.services.InspectionService.Certify(commandContext(cmd), args[0], supervisor, pin)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s by %s\n", rec.ID, rec.Status, rec.CertifiedBy)
			return err
		},
	}

	cmd.Flags().StringVar(&supervisor, "supervisor", "", "Name of the certifying supervisor")
	_ = cmd.MarkFlagRequired("supervisor")
	return cmd
}

func (c *cli) pinHashCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pin-hash",
		Short: "Hash a supervisor PIN for APP_SUPERVISOR_PIN_HASH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pin, err := promptPIN(cmd.ErrOrStderr(), "New supervisor PIN: ")
			if err != nil {
				return err
			}
			confirm, err := promptPIN(cmd.ErrOrStderr(), "Repeat PIN: ")
			if err != nil {
				return err
			}
			if pin != confirm {
				return errPINConfirmation
			}

			hash, err := crypto.NewPINService().Hash(pin)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
}

func (c *cli) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", c.buildInfo.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", c.buildInfo.BuildDate())
			_, err := fmt.Fprintf(out, "Build commit: %s\n", c.buildInfo.BuildCommit())
			return err
		},
	}
}

// parseStatus accepts lifecycle names in any case, with dashes or
// underscores.
func parseStatus(s string) models.InspectionStatus {
	s = strings.ToUpper(strings.TrimSpace(s))
	return models.InspectionStatus(strings.ReplaceAll(s, "-", "_"))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
