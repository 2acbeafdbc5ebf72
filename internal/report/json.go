package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/yacobolo/csscomplete"
)

// SchemaVersion is bumped when the JSON layout changes
const SchemaVersion = "1.0"

// CompletionOutput is the JSON schema of the complete command
type CompletionOutput struct {
	Version     string                   `json:"version"`
	Timestamp   string                   `json:"timestamp"`
	Language    string                   `json:"language"`
	Framework   string                   `json:"framework"`
	LinePrefix  string                   `json:"line_prefix"`
	Triggered   bool                     `json:"triggered"`
	Count       int                      `json:"count"`
	Suggestions []csscomplete.Suggestion `json:"suggestions"`
}

// ClassesOutput is the JSON schema of the classes command
type ClassesOutput struct {
	Version   string   `json:"version"`
	Framework string   `json:"framework"`
	FetchedAt string   `json:"fetched_at,omitempty"`
	Count     int      `json:"count"`
	Classes   []string `json:"classes"`
}

// HoverOutput is the JSON schema of the hover command
type HoverOutput struct {
	Version     string `json:"version"`
	Word        string `json:"word"`
	Found       bool   `json:"found"`
	Description string `json:"description,omitempty"`
}

// NewCompletionOutput builds the JSON document for one completion
func NewCompletionOutput(language string, fw csscomplete.Framework, linePrefix string, triggered bool, items []csscomplete.Suggestion, now time.Time) CompletionOutput {
	if items == nil {
		items = []csscomplete.Suggestion{}
	}
	return CompletionOutput{
		Version:     SchemaVersion,
		Timestamp:   now.Format(time.RFC3339),
		Language:    language,
		Framework:   string(fw),
		LinePrefix:  linePrefix,
		Triggered:   triggered,
		Count:       len(items),
		Suggestions: items,
	}
}

// NewClassesOutput builds the JSON document for a class listing
func NewClassesOutput(fw csscomplete.Framework, classes []string, fetchedAt time.Time) ClassesOutput {
	if classes == nil {
		classes = []string{}
	}
	out := ClassesOutput{
		Version:   SchemaVersion,
		Framework: string(fw),
		Count:     len(classes),
		Classes:   classes,
	}
	if !fetchedAt.IsZero() {
		out.FetchedAt = fetchedAt.Format(time.RFC3339)
	}
	return out
}

// WriteJSON writes v as indented JSON
func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
