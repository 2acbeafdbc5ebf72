package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .csscomplete.yaml config file",
	Long:  `Create a .csscomplete.yaml configuration file (or the --config path) with the default settings.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path := configPathFlag(cmd)

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return nil
	},
}

const defaultConfig = `# csscomplete configuration
# Environment variables override this file: CSSCOMPLETE_FRAMEWORK,
# CSSCOMPLETE_REFRESH_INTERVAL, CSSCOMPLETE_CUSTOM_CLASSES="a,b", ...

# Active framework at startup: tailwind | bootstrap
framework: tailwind

# Extra classes offered in every completion list
custom-classes: []

# Stylesheets whose class selectors are added to the list (doublestar globs)
custom-stylesheets: []

# Quiet period before a completion request is answered
debounce: 300ms

# Debug log destination (stdout carries the protocol)
log-file: ""

# Class lists are fetched from the framework documentation
refresh:
  interval: 1h
  timeout: 10s
  tailwind-url: https://tailwindcss.com/docs/utility-first
  bootstrap-url: https://getbootstrap.com/docs/5.1/utilities/background/
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
