// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/unitytechnetwork/Afifi-sub000/internal/export"
	"github.com/unitytechnetwork/Afifi-sub000/models"
)

const formatTable = "table"

func (c *cli) summaryCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "summary <inspection-id>",
		Short: "Print the status of every category and the defect list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := c.services(cmd)
			if err != nil {
				return err
			}
			s, err := rt.services.ReportService.BuildSummary(commandContext(cmd), args[0])
			if err != nil {
				return err
			}

			if format == formatTable {
				return writeSummaryTable(cmd.OutOrStdout(), s)
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			return rt.renderer.Render(cmd.OutOrStdout(), f, s)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format: table, json, yaml, text or html")
	return cmd
}

func (c *cli) shareCommand() *cobra.Command {
	var copyText bool

	cmd := &cobra.Command{
		Use:   "share <inspection-id>",
		Short: "Print the share text for messaging apps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := c.services(cmd)
			if err != nil {
				return err
			}
			s, err := rt.services.ReportService.BuildSummary(commandContext(cmd), args[0])
			if err != nil {
				return err
			}
			text, err := rt.renderer.ShareText(s)
			if err != nil {
				return err
			}

			if copyText {
				if err = copyToClipboard(text); err != nil {
					return fmt.Errorf("error copying to clipboard: %w", err)
				}
				_, err = fmt.Fprintln(cmd.ErrOrStderr(), "share text copied to clipboard")
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().BoolVar(&copyText, "copy", false, "Copy to the clipboard instead of printing")
	return cmd
}

func (c *cli) reportCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "report <inspection-id>",
		Short: "Render the printable HTML report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := c.services(cmd)
			if err != nil {
				return err
			}
			s, err := rt.services.ReportService.BuildSummary(commandContext(cmd), args[0])
			if err != nil {
				return err
			}

			buf := bytes.NewBuffer(nil)
			if err = rt.renderer.HTML(buf, s); err != nil {
				return err
			}
			if out == "" {
				_, err = buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err = os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("error writing report: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the report to this file instead of stdout")
	return cmd
}

func (c *cli) overrideCommand() *cobra.Command {
	var (
		severity string
		state    string
		remarks  string
		by       string
		unset    bool
	)

	cmd := &cobra.Command{
		Use:   "override <inspection-id> <defect-id>",
		Short: "Set or clear the technician assessment of a defect",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := c.services(cmd)
			if err != nil {
				return err
			}
			ctx := commandContext(cmd)
			registry := rt.services.DefectRegistryService

			if unset {
				if err = registry.ClearOverride(ctx, args[0], args[1]); err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s override cleared\n", args[1])
				return err
			}

			saved, err := registry.SetOverride(ctx, args[0], args[1], models.DefectOverride{
				Severity:  models.Severity(severity),
				State:     models.DefectState(state),
				Remarks:   remarks,
				UpdatedBy: by,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", args[1], orDash(saved.Severity.String()), orDash(saved.State.String()))
			return err
		},
	}

	cmd.Flags().StringVar(&severity, "severity", "", "critical, major or minor")
	cmd.Flags().StringVar(&state, "state", "", "open, acknowledged, deferred or rectified")
	cmd.Flags().StringVar(&remarks, "remarks", "", "Follow-up remarks")
	cmd.Flags().StringVar(&by, "by", "", "Name of the person making the assessment")
	cmd.Flags().BoolVar(&unset, "clear", false, "Drop the override and restore computed defaults")
	cmd.MarkFlagsMutuallyExclusive("clear", "severity")
	cmd.MarkFlagsMutuallyExclusive("clear", "state")
	cmd.MarkFlagsMutuallyExclusive("clear", "remarks")
	return cmd
}

func writeSummaryTable(w io.Writer, s models.Summary) error {
	if s.Inspection != nil {
		fmt.Fprintf(w, "%s  %s  %s  [%s]\n", s.Inspection.ID, s.Inspection.ClientName, orDash(s.Inspection.Date), s.Inspection.Status)
	} else {
		fmt.Fprintf(w, "%s  (no inspection header)\n", s.InspectionID)
	}
	fmt.Fprintf(w, "Overall: %s\n\n", s.Overall)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SYSTEM\tSTATUS\tDEFECTS")
	for _, row := range s.Systems {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", row.Title, row.Status, row.DefectCount)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(s.Defects) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DEFECT\tSEVERITY\tSTATE\tLOCATION\tFINDING")
	for _, d := range s.Defects {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s: %s\n", d.ID, d.Severity, d.State, orDash(d.Location), d.Label, d.Finding)
	}
	return tw.Flush()
}
