package main

import (
	"fmt"

	"github.com/handiism/marc-holdings/internal/convert"
	"github.com/handiism/marc-holdings/internal/render"
	"github.com/spf13/cobra"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var (
		outputFlag        string
		formatFlag        string
		workersFlag       int
		keepUnmatchedFlag bool
		dryRunFlag        bool
		verboseFlag       bool
	)

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Add 863/853/007 fields to every record with an 866 holdings statement",
		Long: "Reads a MARC file (ISO 2709, MARCXML or line MARC), converts the first 866 $a of\n" +
			"each record and writes the result. Use -o - to write to stdout.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := ctx.ensureSettings()
			if err != nil {
				return err
			}
			settings := *base

			flags := cmd.Flags()
			if flags.Changed("format") {
				settings.OutputFormat = formatFlag
			}
			if flags.Changed("workers") {
				settings.Workers = workersFlag
			}
			if flags.Changed("keep-unmatched") {
				settings.KeepUnmatched = keepUnmatchedFlag
			}
			if outputFlag != "" && outputFlag != "-" {
				settings.OutputPath = outputFlag
			}
			if err := settings.Validate(); err != nil {
				return err
			}

			logger, err := ctx.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			printer := newProgressPrinter(cmd.ErrOrStderr(), verboseFlag)
			manager := convert.NewManager(&settings, logger, printer.print)

			runCtx := cmd.Context()
			if err := manager.Initialize(runCtx, args[0]); err != nil {
				return err
			}
			if err := manager.Convert(runCtx); err != nil {
				return err
			}

			processed, total, converted, skipped := manager.GetProgress()
			summary := fmt.Sprintf("Done: %d/%d records processed, %d converted, %d skipped", processed, total, converted, skipped)

			switch {
			case dryRunFlag:
				printer.print(convert.ProgressEvent{Message: "[Dry run - nothing written] " + summary, Level: convert.LevelInfo})
				return nil
			case outputFlag == "-":
				if err := render.NewRenderer(settings.Format()).Render(runCtx, cmd.OutOrStdout(), manager.Entries()); err != nil {
					return err
				}
			default:
				if _, err := manager.Write(runCtx, ""); err != nil {
					return err
				}
			}

			printer.print(convert.ProgressEvent{Message: summary, Level: convert.LevelInfo})
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file (default: input path with the format's extension, - for stdout)")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text, json, yaml, marc, marcxml, line")
	cmd.Flags().IntVarP(&workersFlag, "workers", "w", 0, "Records converted in parallel (default: number of CPUs)")
	cmd.Flags().BoolVar(&keepUnmatchedFlag, "keep-unmatched", false, "Keep records without an 866 in the output")
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Convert and report without writing output")
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Show per-record progress")
	return cmd
}
