package main

import (
	"fmt"

	"github.com/handiism/marc-holdings/internal/holdings"
	"github.com/handiism/marc-holdings/internal/render"
	"github.com/spf13/cobra"
)

func newParseCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:         "parse <statement>",
		Short:       "Show the 863/853 fields derived from one holdings statement",
		Example:     `  marc-holdings parse "1998: 1 (Jan), 2 (Feb); 1999: 3 (Mar-Apr)"`,
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			st := holdings.Convert(args[0])

			if jsonOutput {
				return writeJSON(cmd, st)
			}

			out := cmd.OutOrStdout()
			if st.IsEmpty() {
				fmt.Fprintln(out, "No issues recognized.")
				return nil
			}
			fmt.Fprintln(out, render.StatementTable(st))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
