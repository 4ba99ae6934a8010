package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"sortbench/internal/report"
	"sortbench/internal/ui"
)

var startResultsTableFunc = ui.StartResultsTable

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Render a Markdown benchmark report in the terminal",
		Long: `Renders a report written by a previous run (default ` + report.MarkdownFile + `)
with terminal styling.

With --tui, loads the CSV export instead (default ` + report.CSVFile + `) and
opens an interactive results table.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			if tui, _ := cmd.Flags().GetBool("tui"); tui {
				path := report.CSVFile
				if len(args) == 1 {
					path = args[0]
				}
				return browseResults(path, noColor)
			}

			path := report.MarkdownFile
			if len(args) == 1 {
				path = args[0]
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read report: %w", err)
			}

			style := glamour.WithAutoStyle()
			if noColor {
				style = glamour.WithStandardStyle("notty")
			}
			renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
			if err != nil {
				return fmt.Errorf("failed to create renderer: %w", err)
			}

			out, err := renderer.Render(string(data))
			if err != nil {
				// Fallback to plain text
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().Bool("tui", false, "Browse the CSV export in an interactive table")
	return cmd
}

func browseResults(path string, noColor bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read results: %w", err)
	}
	defer f.Close()

	results, err := report.ReadCSV(f)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(results) == 0 {
		return fmt.Errorf("no results in %s", path)
	}

	ui.ConfigureColor(noColor)
	return startResultsTableFunc(results, report.FormatTime)
}
