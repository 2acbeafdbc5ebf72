package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/yacobolo/csscomplete"
	"github.com/yacobolo/csscomplete/internal/report"
)

var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Print the suggestions for a line prefix",
	Long: `Assemble the completion list the language server would return for the
text before the cursor. Useful for checking custom classes and context rules.`,
	Example: `  csscomplete complete --prefix '<button class="'
  csscomplete complete --language typescriptreact --prefix '<a className="' --output-format json`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runComplete,
}

func init() {
	completeCmd.Flags().String("language", "html", "Editor language id: "+strings.Join(csscomplete.SupportedLanguages, "|"))
	completeCmd.Flags().String("prefix", "", "Line text up to the cursor")
	completeCmd.Flags().String("output-format", "", "Output format: text|json (default text)")
	completeCmd.Flags().Bool("offline", false, "Use the built-in class lists instead of fetching")
	_ = completeCmd.MarkFlagRequired("prefix")
}

func runComplete(cmd *cobra.Command, _ []string) error {
	s, err := buildSettings()
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(getStringWithFallback("output-format", "output-format", ""))
	if err != nil {
		return err
	}

	language, _ := cmd.Flags().GetString("language")
	prefix, _ := cmd.Flags().GetString("prefix")
	if !csscomplete.IsSupportedLanguage(language) {
		return fmt.Errorf("unsupported language %q (want one of %s)", language, strings.Join(csscomplete.SupportedLanguages, ", "))
	}

	catalog := csscomplete.DefaultCatalog()
	selector := csscomplete.NewSelector(s.Framework)
	assembler := csscomplete.NewAssembler(catalog, classSource(cmd, s, catalog), selector, configCustomClasses{path: configPathFlag(cmd)})

	triggered := csscomplete.ShouldTrigger(language, prefix)
	var items []csscomplete.Suggestion
	if triggered {
		items = assembler.Assemble(cmd.Context(), prefix)
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}

	out := cmd.OutOrStdout()
	if format == report.FormatJSON {
		return report.WriteJSON(out, report.NewCompletionOutput(language, s.Framework, prefix, triggered, items, time.Now()))
	}
	report.NewReporter(out, getBoolWithFallback("color", "color", false)).PrintCompletion(prefix, s.Framework, items)
	return nil
}

// classSource picks the built-in lists for --offline, the documentation
// refresher otherwise
func classSource(cmd *cobra.Command, s settings, catalog *csscomplete.Catalog) csscomplete.ClassSource {
	if offline, _ := cmd.Flags().GetBool("offline"); offline {
		return catalog
	}
	return newRefresher(s, catalog)
}
