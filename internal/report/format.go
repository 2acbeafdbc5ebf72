package report

import (
	"fmt"
	"strings"
)

// Format selects how command results are written
type Format string

const (
	// FormatText is the human readable default
	FormatText Format = "text"
	// FormatJSON is machine readable output
	FormatJSON Format = "json"
)

// ParseFormat resolves an --output-format value. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text or json)", s)
	}
}
