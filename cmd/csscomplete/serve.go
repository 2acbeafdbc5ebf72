package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/csscomplete"
	"github.com/yacobolo/csscomplete/internal/log"
	"github.com/yacobolo/csscomplete/internal/lsp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the language server on stdio",
	Long: `Run the CSS class language server over stdin/stdout.

Editors start this command and talk JSON-RPC to it. Debug logs go to
--log-file because stdout carries the protocol.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd.Context(), cmd)
	},
}

func init() {
	// Accepted for editors that always pass it; stdio is the only transport.
	serveCmd.Flags().Bool("stdio", true, "Communicate over stdin/stdout")
	serveCmd.Flags().String("tailwind-url", "", "Documentation page Tailwind classes are fetched from")
	serveCmd.Flags().String("bootstrap-url", "", "Documentation page Bootstrap classes are fetched from")
}

func runServe(ctx context.Context, cmd *cobra.Command) error {
	if stdinIsTerminal() && !getBoolWithFallback("quiet", "quiet", false) {
		fmt.Fprintln(cmd.ErrOrStderr(), "csscomplete: waiting for an LSP client on stdin (Ctrl+C to quit)")
	}
	return serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), configPathFlag(cmd))
}

// serve wires the completion engine to an LSP server and runs it until the
// client exits or ctx is cancelled.
func serve(ctx context.Context, in io.Reader, out io.Writer, configPath string) error {
	s, err := buildSettings()
	if err != nil {
		return err
	}

	if s.LogFile != "" {
		f, err := log.OpenFile(s.LogFile)
		if err != nil {
			return err
		}
		defer func() {
			log.SetOutput(nil)
			_ = f.Close()
		}()
	}
	log.Config("Framework %s, debounce %s, refresh every %s", s.Framework, s.Debounce, s.RefreshInterval)

	catalog := csscomplete.DefaultCatalog()
	selector := csscomplete.NewSelector(s.Framework)
	assembler := csscomplete.NewAssembler(catalog, newRefresher(s, catalog), selector, configCustomClasses{path: configPath})
	provider := csscomplete.NewCompletionProvider(assembler, csscomplete.NewDebouncer(s.Debounce))

	server := lsp.NewServer(in, out, lsp.Options{
		Catalog:  catalog,
		Selector: selector,
		Provider: provider,
		Version:  version,
	})

	watcher, err := watchConfig(configPath, server.NotifyConfigChanged)
	if err != nil {
		// Not fatal: the server works without change notices.
		log.Config("Config watcher disabled: %v", err)
	} else {
		defer watcher.Close()
	}

	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("language server: %w", err)
	}
	return nil
}

// stdinIsTerminal reports whether serve was started by hand rather than by an editor
func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
