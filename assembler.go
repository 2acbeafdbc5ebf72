package csscomplete

import (
	"context"
)

// Suggestion is one completion entry
type Suggestion struct {
	Label         string `json:"label"`
	InsertText    string `json:"insertText"`
	Detail        string `json:"detail"`
	Documentation string `json:"documentation"`
}

// ClassSource supplies the base class list of a framework
type ClassSource interface {
	Classes(ctx context.Context, fw Framework) []string
}

// CustomClassSource supplies user-configured classes.
// It is consulted on every assembly, so implementations should re-read
// their backing configuration rather than cache it.
type CustomClassSource interface {
	CustomClasses() []string
}

// CustomClassFunc adapts a plain function to CustomClassSource
type CustomClassFunc func() []string

// CustomClasses calls f
func (f CustomClassFunc) CustomClasses() []string {
	return f()
}

// Assembler merges the framework's classes, custom classes and
// tag-specific classes into completion entries
type Assembler struct {
	catalog  *Catalog
	classes  ClassSource
	selector *Selector
	custom   CustomClassSource
}

// NewAssembler wires an assembler. custom may be nil.
func NewAssembler(catalog *Catalog, classes ClassSource, selector *Selector, custom CustomClassSource) *Assembler {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Assembler{
		catalog:  catalog,
		classes:  classes,
		selector: selector,
		custom:   custom,
	}
}

// Assemble builds the suggestions for the text before the cursor.
//
// Order: framework classes, then custom classes, then the classes
// registered for the line's open tag. Duplicates across the three sources
// are kept.
func (a *Assembler) Assemble(ctx context.Context, linePrefix string) []Suggestion {
	fw := a.selector.Active()

	classes := a.classes.Classes(ctx, fw)
	merged := make([]string, 0, len(classes))
	merged = append(merged, classes...)

	if a.custom != nil {
		merged = append(merged, a.custom.CustomClasses()...)
	}

	if tag := OpenTag(linePrefix); tag != "" {
		merged = append(merged, a.catalog.ContextClasses(tag)...)
	}

	detail := fw.Title() + " CSS class"
	suggestions := make([]Suggestion, len(merged))
	for i, cls := range merged {
		suggestions[i] = Suggestion{
			Label:         cls,
			InsertText:    cls,
			Detail:        detail,
			Documentation: a.catalog.Documentation(cls),
		}
	}
	return suggestions
}
