package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/yacobolo/csscomplete"
	"github.com/yacobolo/csscomplete/internal/report"
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List the classes of the active framework",
	Long: `Fetch the class list of the active framework from its documentation
page and print it. Falls back to the built-in list when the fetch fails.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := buildSettings()
		if err != nil {
			return err
		}
		format, err := report.ParseFormat(getStringWithFallback("output-format", "output-format", ""))
		if err != nil {
			return err
		}

		catalog := csscomplete.DefaultCatalog()
		var classes []string
		var refresher *csscomplete.Refresher
		if offline, _ := cmd.Flags().GetBool("offline"); offline {
			classes = catalog.Static(s.Framework)
		} else {
			refresher = newRefresher(s, catalog)
			classes = refresher.Classes(cmd.Context(), s.Framework)
		}

		if getBoolWithFallback("quiet", "quiet", false) {
			return nil
		}

		// A zero time means the built-in list is being shown.
		var fetchedAt time.Time
		if refresher != nil {
			_, fetchedAt = refresher.Snapshot(s.Framework)
		}

		out := cmd.OutOrStdout()
		if format == report.FormatJSON {
			return report.WriteJSON(out, report.NewClassesOutput(s.Framework, classes, fetchedAt))
		}
		report.NewReporter(out, getBoolWithFallback("color", "color", false)).PrintClasses(s.Framework, classes, fetchedAt)
		return nil
	},
}

func init() {
	classesCmd.Flags().String("output-format", "", "Output format: text|json (default text)")
	classesCmd.Flags().Bool("offline", false, "Print the built-in list without fetching")
	classesCmd.Flags().String("tailwind-url", "", "Documentation page Tailwind classes are fetched from")
	classesCmd.Flags().String("bootstrap-url", "", "Documentation page Bootstrap classes are fetched from")
}
