// Package csscomplete provides class-name completion and hover documentation
// for CSS utility frameworks (Tailwind, Bootstrap) inside markup and
// component source files.
//
// # Completion
//
// A completion request carries the document's language id and the text of
// the current line up to the cursor. The request is debounced, checked
// against the context matcher, and then assembled:
//
//	selector := csscomplete.NewSelector(csscomplete.Tailwind)
//	refresher := csscomplete.NewRefresher(csscomplete.RefreshOptions{})
//	assembler := csscomplete.NewAssembler(csscomplete.DefaultCatalog(), refresher, selector, nil)
//	provider := csscomplete.NewCompletionProvider(assembler, csscomplete.NewDebouncer(300*time.Millisecond))
//
//	provider.Provide(ctx, "html", `<div class="`, func(items []csscomplete.Suggestion) {
//		// items is nil when the line does not open a class attribute
//		// or when a newer request superseded this one.
//	})
//
// # Hover
//
//	desc, ok := csscomplete.DefaultCatalog().Describe("text-sm")
//	// "Sets the font size to small", true
//
// # Editor integration
//
// The csscomplete binary exposes all of this as a language server over
// stdio (csscomplete serve) plus one-shot commands for the terminal.
// See cmd/csscomplete.
package csscomplete
