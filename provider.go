package csscomplete

import (
	"context"

	"github.com/yacobolo/csscomplete/internal/log"
)

// CompletionProvider answers editor completion requests: debounced, gated
// by the context matcher, assembled by an Assembler
type CompletionProvider struct {
	assembler *Assembler
	debouncer *Debouncer
}

// NewCompletionProvider wires a provider
func NewCompletionProvider(assembler *Assembler, debouncer *Debouncer) *CompletionProvider {
	if debouncer == nil {
		debouncer = NewDebouncer(DefaultDebounce)
	}
	return &CompletionProvider{
		assembler: assembler,
		debouncer: debouncer,
	}
}

// Provide schedules a completion for the text before the cursor.
//
// reply is called exactly once: with the suggestions, or with nil when the
// matcher does not trigger or a later request superseded this one.
func (p *CompletionProvider) Provide(ctx context.Context, languageID, linePrefix string, reply func([]Suggestion)) {
	p.debouncer.Submit(
		func() {
			log.Complete("Language: %s, Line prefix: %s", languageID, linePrefix)
			if !ShouldTrigger(languageID, linePrefix) {
				log.Complete("Completion not triggered")
				reply(nil)
				return
			}
			items := p.assembler.Assemble(ctx, linePrefix)
			log.Complete("Returning %d suggestions", len(items))
			reply(items)
		},
		func() {
			reply(nil)
		},
	)
}

// Close drops any pending request
func (p *CompletionProvider) Close() {
	p.debouncer.Stop()
}
