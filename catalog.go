package csscomplete

import "context"

// NoDescription is the documentation shown for classes missing from the
// description table
const NoDescription = "No description available"

var tailwindClasses = []string{
	"text-sm", "text-lg", "font-bold", "text-red-500", "bg-blue-200",
	"p-4", "m-2", "flex", "items-center", "justify-between",
	"w-full", "h-screen", "rounded-lg", "shadow-md", "hover:bg-gray-100",
	"transition", "duration-300", "ease-in-out", "transform", "hover:scale-105",
}

var bootstrapClasses = []string{
	"container", "row", "col", "btn", "btn-primary", "form-control",
	"card", "nav", "navbar", "jumbotron", "alert", "alert-success",
	"table", "table-striped", "badge", "badge-secondary", "text-muted",
}

// contextSuggestions maps an HTML tag to classes commonly used on it
var contextSuggestions = map[string][]string{
	"div":    {"w-full", "h-full", "flex", "items-center", "justify-center"},
	"span":   {"inline-block", "text-sm", "font-bold"},
	"button": {"btn", "px-4", "py-2", "rounded", "bg-blue-500", "text-white"},
	"input":  {"form-control", "border", "rounded", "px-2", "py-1"},
	"a":      {"text-blue-500", "hover:underline"},
}

var classDescriptions = map[string]string{
	// Tailwind
	"text-sm":           "Sets the font size to small",
	"text-lg":           "Sets the font size to large",
	"font-bold":         "Sets the font weight to bold",
	"text-red-500":      "Sets the text color to red (shade 500)",
	"bg-blue-200":       "Sets the background color to blue (shade 200)",
	"p-4":               "Applies padding of 1 rem (16px) on all sides of the element",
	"m-2":               "Adds a margin of 0.5 rem (8px) around the element",
	"flex":              "Sets the display of the element to flex, enabling flexible layout options for its children",
	"items-center":      "Aligns items along the cross-axis (vertically in a row layout) to the center within a flex container",
	"justify-between":   "Spaces items within a flex container so that there is space between them, pushing the first child to the start and the last child to the end",
	"w-full":            "Sets the width of the element to 100% of its parent container",
	"h-screen":          "Sets the height of the element to be 100% of the viewport height.",
	"rounded-lg":        "Applies a large border-radius to the element, giving it rounded corners",
	"shadow-md":         "Adds a medium-sized box shadow to the element for a subtle 3D effect",
	"hover:bg-gray-100": "Changes the background color to light gray (gray-100) on hover",
	"transition":        "Enables smooth transitions for all properties that change (such as background color or transform)",
	"duration-300":      " Sets the duration of transitions to 300ms, making animations and transitions smooth and gradual",
	"ease-in-out":       "Applies an ease-in-out timing function, which accelerates and decelerates the transition smoothly",
	"transform":         "Enables transformations like scaling, rotating, or translating the element",
	"hover:scale-105":   "Increases the scale of the element to 105% on hover, creating a slight zoom effect.",

	// Bootstrap
	"container":       "Responsive fixed-width container that centers page content",
	"row":             "Flex wrapper for grid columns, offsetting column gutters",
	"col":             "Grid column that shares the row width equally with its siblings",
	"btn":             "Base button style: padding, border, font and focus ring",
	"btn-primary":     "Button variant using the theme's primary color",
	"form-control":    "Full-width styling for text inputs, selects and textareas",
	"card":            "Bordered content container with optional header, body and footer",
	"nav":             "Base navigation list with flex layout and no list styling",
	"navbar":          "Responsive navigation header with branding and collapsible content",
	"jumbotron":       "Large showcase box for key marketing messages (removed in Bootstrap 5)",
	"alert":           "Contextual feedback message box",
	"alert-success":   "Alert variant for success messages (green)",
	"table":           "Opt-in table styling with padding and horizontal dividers",
	"table-striped":   "Adds zebra-striping to table body rows",
	"badge":           "Small count or label element",
	"badge-secondary": "Badge variant using the secondary color (Bootstrap 4 naming)",
	"text-muted":      "Sets the text color to the muted gray",
}

// Catalog bundles the static class lists, the description table and the
// tag-specific suggestion table
type Catalog struct {
	static       map[Framework][]string
	descriptions map[string]string
	byTag        map[string][]string
}

// DefaultCatalog returns a fresh copy of the built-in tables
func DefaultCatalog() *Catalog {
	c := &Catalog{
		static: map[Framework][]string{
			Tailwind:  append([]string(nil), tailwindClasses...),
			Bootstrap: append([]string(nil), bootstrapClasses...),
		},
		descriptions: make(map[string]string, len(classDescriptions)),
		byTag:        make(map[string][]string, len(contextSuggestions)),
	}
	for k, v := range classDescriptions {
		c.descriptions[k] = v
	}
	for tag, classes := range contextSuggestions {
		c.byTag[tag] = append([]string(nil), classes...)
	}
	return c
}

// Static returns a copy of the built-in class list for a framework
func (c *Catalog) Static(fw Framework) []string {
	return append([]string(nil), c.static[fw]...)
}

// Classes serves the built-in list, making a Catalog an offline ClassSource
func (c *Catalog) Classes(_ context.Context, fw Framework) []string {
	return c.Static(fw)
}

// Describe looks up the description of a class
func (c *Catalog) Describe(class string) (string, bool) {
	desc, ok := c.descriptions[class]
	return desc, ok
}

// Documentation returns the description of a class or NoDescription
func (c *Catalog) Documentation(class string) string {
	if desc, ok := c.descriptions[class]; ok {
		return desc
	}
	return NoDescription
}

// ContextClasses returns the suggestions registered for an HTML tag
func (c *Catalog) ContextClasses(tag string) []string {
	return append([]string(nil), c.byTag[tag]...)
}
