package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "csscomplete",
	Short: "CSS utility class completion for Tailwind and Bootstrap",
	Long: `Completion and hover for CSS utility classes in HTML, JSX and TSX.
Runs as a language server on stdio; class lists are refreshed from the
framework documentation and fall back to a built-in list offline.`,
	// Default behavior: run the language server when no subcommand is given.
	// We must call loadConfig here because PreRunE of serveCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runServe(cmd.Context(), cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().String("config", defaultConfigPath, "Config file path")
	rootCmd.PersistentFlags().String("framework", "", "CSS framework: tailwind|bootstrap (default tailwind)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().String("log-file", "", "Write debug logs to this file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(hoverCmd)
	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
