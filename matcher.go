package csscomplete

import (
	"regexp"
	"strings"
)

// SupportedLanguages lists the editor language ids completion is offered for
var SupportedLanguages = []string{"html", "javascript", "typescript", "javascriptreact", "typescriptreact"}

var (
	// openTagPattern matches "<tag" followed by whitespace or ">"
	openTagPattern = regexp.MustCompile(`<(\w+)[\s>]`)

	// wordPattern matches a class-like token: no whitespace, quotes,
	// angle brackets, equals, backticks or braces
	wordPattern = regexp.MustCompile("[^\\s\"'<>=`{}]+")
)

// IsSupportedLanguage reports whether completion is offered for languageID
func IsSupportedLanguage(languageID string) bool {
	for _, id := range SupportedLanguages {
		if id == languageID {
			return true
		}
	}
	return false
}

// ShouldTrigger decides whether a completion should be offered for the
// text before the cursor.
//
// The match is loose: any class=" on the line triggers, including past the
// attribute's closing quote (`<div class="a">text`).
func ShouldTrigger(languageID, linePrefix string) bool {
	switch languageID {
	case "html":
		return strings.Contains(linePrefix, `class="`)
	case "javascript", "typescript", "javascriptreact", "typescriptreact":
		return strings.Contains(linePrefix, `className="`) || strings.Contains(linePrefix, `class="`)
	default:
		return false
	}
}

// OpenTag returns the name of the open tag nearest to the cursor: the last
// "<tag" on the line followed by whitespace or ">". Returns "" when there
// is none.
func OpenTag(linePrefix string) string {
	matches := openTagPattern.FindAllStringSubmatch(linePrefix, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1][1]
}

// WordAt returns the class-like token covering byte offset col in line
func WordAt(line string, col int) string {
	for _, loc := range wordPattern.FindAllStringIndex(line, -1) {
		if col >= loc[0] && col <= loc[1] {
			return line[loc[0]:loc[1]]
		}
	}
	return ""
}
