package csscomplete

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticSource returns fixed lists and records which framework was asked for
type staticSource struct {
	lists map[Framework][]string
	asked []Framework
}

func (s *staticSource) Classes(_ context.Context, fw Framework) []string {
	s.asked = append(s.asked, fw)
	return s.lists[fw]
}

func newStaticSource() *staticSource {
	return &staticSource{lists: map[Framework][]string{
		Tailwind:  {"text-sm", "flex"},
		Bootstrap: {"btn", "row"},
	}}
}

func labels(items []Suggestion) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label
	}
	return out
}

func TestAssemble_BaseClasses(t *testing.T) {
	src := newStaticSource()
	a := NewAssembler(DefaultCatalog(), src, NewSelector(Tailwind), nil)

	items := a.Assemble(context.Background(), `<p class="`)

	require.Len(t, items, 2)
	assert.Equal(t, Suggestion{
		Label:         "text-sm",
		InsertText:    "text-sm",
		Detail:        "Tailwind CSS class",
		Documentation: "Sets the font size to small",
	}, items[0])
	assert.Equal(t, NoDescription, DefaultCatalog().Documentation("nope"))
	assert.Equal(t, []Framework{Tailwind}, src.asked)
}

func TestAssemble_ButtonContextSuggestions(t *testing.T) {
	a := NewAssembler(DefaultCatalog(), newStaticSource(), NewSelector(Tailwind), nil)

	got := labels(a.Assemble(context.Background(), `<button class="`))

	want := append([]string{"text-sm", "flex"}, DefaultCatalog().ContextClasses("button")...)
	assert.Equal(t, want, got)
}

func TestAssemble_CustomClassesOrderAndDuplicates(t *testing.T) {
	custom := CustomClassFunc(func() []string { return []string{"brand-btn", "flex"} })
	a := NewAssembler(DefaultCatalog(), newStaticSource(), NewSelector(Tailwind), custom)

	got := labels(a.Assemble(context.Background(), `<div class="`))

	assert.Equal(t, []string{
		"text-sm", "flex", // base
		"brand-btn", "flex", // custom, not context filtered
		"w-full", "h-full", "flex", "items-center", "justify-center", // div
	}, got)
}

func TestAssemble_CustomClassesReadEveryTime(t *testing.T) {
	calls := 0
	custom := CustomClassFunc(func() []string {
		calls++
		return nil
	})
	a := NewAssembler(DefaultCatalog(), newStaticSource(), NewSelector(Tailwind), custom)

	a.Assemble(context.Background(), `<p class="`)
	a.Assemble(context.Background(), `<p class="`)

	assert.Equal(t, 2, calls)
}

func TestAssemble_UnknownTagAddsNothing(t *testing.T) {
	a := NewAssembler(DefaultCatalog(), newStaticSource(), NewSelector(Bootstrap), nil)

	got := labels(a.Assemble(context.Background(), `<section class="`))
	assert.Equal(t, []string{"btn", "row"}, got)
}

func TestAssemble_DetailFollowsFrameworkSwitch(t *testing.T) {
	sel := NewSelector(Tailwind)
	a := NewAssembler(DefaultCatalog(), newStaticSource(), sel, nil)

	before := a.Assemble(context.Background(), `<p class="`)
	require.NotEmpty(t, before)
	assert.Equal(t, "Tailwind CSS class", before[0].Detail)

	_, ok, err := sel.Choose(context.Background(), pickFirst("bootstrap"))
	require.NoError(t, err)
	require.True(t, ok)

	after := a.Assemble(context.Background(), `<p class="`)
	require.NotEmpty(t, after)
	for _, it := range after {
		assert.Equal(t, "Bootstrap CSS class", it.Detail)
	}
	assert.Equal(t, []string{"btn", "row"}, labels(after))
}
