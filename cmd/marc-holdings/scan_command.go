package main

import (
	"fmt"

	ioutils "github.com/handiism/marc-holdings/internal/io"
	"github.com/handiism/marc-holdings/internal/render"
	"github.com/spf13/cobra"
)

func newScanCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:         "scan <file.mrc>",
		Short:       "List the 866 holdings statements of a binary MARC file",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := ioutils.ScanHoldings(args[0])
			if err != nil {
				return fmt.Errorf("scan %s: %w", args[0], err)
			}

			if jsonOutput {
				return writeJSON(cmd, lines)
			}

			out := cmd.OutOrStdout()
			if len(lines) == 0 {
				fmt.Fprintln(out, "No holdings statements found.")
				return nil
			}
			fmt.Fprintln(out, render.HoldingsTable(lines))
			fmt.Fprintf(out, "%d statements\n", len(lines))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
