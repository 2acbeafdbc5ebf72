// Package report renders completion, hover and class listings for the CLI.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/yacobolo/csscomplete"
)

// Reporter writes human readable command output
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter. forceColor enables colors regardless of
// the environment.
func NewReporter(w io.Writer, forceColor bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: ShouldUseColors(forceColor),
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(forceColor bool) bool {
	// Explicit flag wins
	if forceColor {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintCompletion echoes the line prefix with a caret at the cursor,
// followed by the suggestions.
func (r *Reporter) PrintCompletion(linePrefix string, fw csscomplete.Framework, items []csscomplete.Suggestion) {
	fmt.Fprintf(r.w, "\t%s\n", linePrefix)
	caret := buildCaretIndicator(linePrefix, len(linePrefix)+1)
	fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleCaret, caret, r.useColors))
	fmt.Fprintln(r.w, "")

	if len(items) == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleMuted, "no suggestions", r.useColors))
		return
	}

	fmt.Fprintf(r.w, "%s (%s):\n",
		pluralizeCount(len(items), "suggestion", "suggestions"),
		RenderStyle(StyleFramework, fw.Title(), r.useColors))

	width := 0
	for _, it := range items {
		if len(it.Label) > width {
			width = len(it.Label)
		}
	}
	for _, it := range items {
		label := fmt.Sprintf("%-*s", width, it.Label)
		fmt.Fprintf(r.w, "  %s  %s\n",
			RenderStyle(StyleLabel, label, r.useColors),
			RenderStyle(StyleMuted, it.Documentation, r.useColors))
	}
}

// PrintHover prints the description of a word, or that there is none
func (r *Reporter) PrintHover(word, desc string, ok bool) {
	if !ok {
		fmt.Fprintf(r.w, "%s: %s\n",
			RenderStyle(StyleLabel, word, r.useColors),
			RenderStyle(StyleError, "no description", r.useColors))
		return
	}
	fmt.Fprintf(r.w, "%s: %s\n", RenderStyle(StyleLabel, word, r.useColors), desc)
}

// PrintClasses lists a framework's classes. A zero fetchedAt means the
// built-in list is shown.
func (r *Reporter) PrintClasses(fw csscomplete.Framework, classes []string, fetchedAt time.Time) {
	source := "built-in list"
	if !fetchedAt.IsZero() {
		source = "fetched " + fetchedAt.Format(time.RFC3339)
	}

	fmt.Fprintf(r.w, "%s: %s %s\n",
		RenderStyle(StyleFramework, fw.Title(), r.useColors),
		pluralizeCount(len(classes), "class", "classes"),
		RenderStyle(StyleMuted, "("+source+")", r.useColors))
	for _, cls := range classes {
		fmt.Fprintf(r.w, "  %s\n", cls)
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are kept so the caret lines up under tabbed text.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	// Extract the prefix up to the column (0-based index = column - 1)
	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	prefix := sourceLine[:prefixLen]

	var padding strings.Builder
	for _, ch := range prefix {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
