package main

import (
	"github.com/spf13/cobra"
	"github.com/yacobolo/csscomplete"
	"github.com/yacobolo/csscomplete/internal/report"
)

var hoverCmd = &cobra.Command{
	Use:   "hover WORD",
	Short: "Print the description of a class",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := report.ParseFormat(getStringWithFallback("output-format", "output-format", ""))
		if err != nil {
			return err
		}

		word := args[0]
		desc, ok := csscomplete.DefaultCatalog().Describe(word)

		if getBoolWithFallback("quiet", "quiet", false) {
			return nil
		}
		out := cmd.OutOrStdout()
		if format == report.FormatJSON {
			return report.WriteJSON(out, report.HoverOutput{
				Version:     report.SchemaVersion,
				Word:        word,
				Found:       ok,
				Description: desc,
			})
		}
		report.NewReporter(out, getBoolWithFallback("color", "color", false)).PrintHover(word, desc, ok)
		return nil
	},
}

func init() {
	hoverCmd.Flags().String("output-format", "", "Output format: text|json (default text)")
}
