package csscomplete

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ScanStats tracks stylesheet scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually lexed
	FilesSkipped    int // Files skipped by .gitignore
}

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe).
// A missing .gitignore is fine.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile reports whether a stylesheet is gitignored.
// Only relative paths are checked; absolute paths are outside the project.
func shouldSkipFile(path string) bool {
	if filepath.IsAbs(path) {
		return false
	}
	gi := loadGitIgnore()
	return gi != nil && gi.MatchesPath(path)
}

// ScanStylesheets collects the class selectors defined in every stylesheet
// matching patterns, deduplicated in first-seen order. Unreadable files
// are skipped.
func ScanStylesheets(patterns []string) ([]string, ScanStats, error) {
	files, stats, err := expandGlobPatterns(patterns)
	if err != nil {
		return nil, stats, err
	}

	seen := make(map[string]bool)
	var classes []string
	for _, file := range files {
		// #nosec G304 - paths come from trusted configuration
		content, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		for _, cls := range ParseClassNames(string(content)) {
			if !seen[cls] {
				seen[cls] = true
				classes = append(classes, cls)
			}
		}
	}

	return classes, stats, nil
}

// expandGlobPatterns expands glob patterns to stylesheet paths and tracks statistics
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("expand %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}

// groupingAtRules hold style rules in their block. Other at-rules
// (@font-face, @page, @property) hold declarations.
var groupingAtRules = map[string]bool{
	"@media":          true,
	"@supports":       true,
	"@layer":          true,
	"@container":      true,
	"@scope":          true,
	"@document":       true,
	"@starting-style": true,
}

// ParseClassNames returns every class selector in a stylesheet, in order of
// first appearance. Compound selectors (.a.b), selector lists (.a, .b),
// rules nested in at-rules and classes inside :not(), :is() and :where()
// are all collected. Declaration blocks are skipped, so values such as
// font-family: Foo.Bar never yield a class.
func ParseClassNames(content string) []string {
	lexer := css.NewLexer(parse.NewInputString(content))
	seen := make(map[string]bool)
	var classes []string

	// One entry per open brace: true for a declaration block, false for the
	// rule list of a grouping at-rule.
	var blocks []bool
	groupRule := false
	afterDot := false

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}

		inDeclarations := len(blocks) > 0 && blocks[len(blocks)-1]
		dot := afterDot
		afterDot = false

		switch tt {
		case css.AtKeywordToken:
			groupRule = groupingAtRules[strings.ToLower(string(text))]
		case css.LeftBraceToken:
			blocks = append(blocks, !groupRule)
			groupRule = false
		case css.RightBraceToken:
			if len(blocks) > 0 {
				blocks = blocks[:len(blocks)-1]
			}
			groupRule = false
		case css.SemicolonToken:
			groupRule = false
		case css.DelimToken:
			afterDot = !inDeclarations && len(text) > 0 && text[0] == '.'
		case css.IdentToken:
			if !dot {
				continue
			}
			cls := unescapeIdent(string(text))
			if cls != "" && !seen[cls] {
				seen[cls] = true
				classes = append(classes, cls)
			}
		}
	}

	return classes
}

// unescapeIdent removes CSS escapes: "sm\:flex" -> "sm:flex"
func unescapeIdent(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}
