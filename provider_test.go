package csscomplete

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// replies collects provider callbacks
type replies struct {
	mu    sync.Mutex
	got   [][]Suggestion
	count chan struct{}
}

func newReplies() *replies {
	return &replies{count: make(chan struct{}, 16)}
}

func (r *replies) reply(items []Suggestion) {
	r.mu.Lock()
	r.got = append(r.got, items)
	r.mu.Unlock()
	r.count <- struct{}{}
}

func (r *replies) wait(t *testing.T, n int) [][]Suggestion {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-r.count:
		case <-time.After(2 * time.Second):
			t.Fatalf("got %d replies, want %d", i, n)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]Suggestion(nil), r.got...)
}

func newTestProvider() *CompletionProvider {
	a := NewAssembler(DefaultCatalog(), newStaticSource(), NewSelector(Tailwind), nil)
	return NewCompletionProvider(a, NewDebouncer(20*time.Millisecond))
}

func TestProvide_Triggers(t *testing.T) {
	p := newTestProvider()
	r := newReplies()

	p.Provide(context.Background(), "html", `<button class="`, r.reply)

	got := r.wait(t, 1)
	require.Len(t, got, 1)
	assert.Contains(t, labels(got[0]), "bg-blue-500")
}

func TestProvide_NoTriggerRepliesNil(t *testing.T) {
	p := newTestProvider()
	r := newReplies()

	p.Provide(context.Background(), "html", `<div>`, r.reply)

	got := r.wait(t, 1)
	assert.Nil(t, got[0])
}

func TestProvide_BurstAnswersEveryRequestOnce(t *testing.T) {
	p := newTestProvider()
	r := newReplies()

	p.Provide(context.Background(), "html", `<div class="`, r.reply)
	p.Provide(context.Background(), "html", `<div class="f`, r.reply)
	p.Provide(context.Background(), "html", `<div class="fl`, r.reply)

	got := r.wait(t, 3)
	nonNil := 0
	for _, items := range got {
		if items != nil {
			nonNil++
		}
	}
	assert.Equal(t, 1, nonNil, "only the last request of a burst is assembled")
	assert.NotNil(t, got[len(got)-1])
}
