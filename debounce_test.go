package csscomplete

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_OnlyLastRuns(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var mu sync.Mutex
	var ran, dropped []int
	done := make(chan struct{})

	for i := 0; i < 5; i++ {
		i := i
		d.Submit(
			func() {
				mu.Lock()
				ran = append(ran, i)
				mu.Unlock()
				close(done)
			},
			func() {
				mu.Lock()
				dropped = append(dropped, i)
				mu.Unlock()
			},
		)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced call never ran")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{4}, ran)
	assert.Equal(t, []int{0, 1, 2, 3}, dropped)
}

func TestDebouncer_WaitsForQuietPeriod(t *testing.T) {
	delay := 50 * time.Millisecond
	d := NewDebouncer(delay)

	start := time.Now()
	ranAt := make(chan time.Time, 1)
	d.Submit(func() { ranAt <- time.Now() }, nil)

	select {
	case at := <-ranAt:
		assert.GreaterOrEqual(t, at.Sub(start), delay)
	case <-time.After(2 * time.Second):
		t.Fatal("debounced call never ran")
	}
}

func TestDebouncer_SeparateBurstsBothRun(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	var runs atomic.Int32

	first := make(chan struct{})
	d.Submit(func() { runs.Add(1); close(first) }, nil)
	<-first

	second := make(chan struct{})
	d.Submit(func() { runs.Add(1); close(second) }, nil)
	<-second

	assert.Equal(t, int32(2), runs.Load())
}

func TestDebouncer_StopDropsPending(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var ran atomic.Bool
	dropped := make(chan struct{}, 1)

	d.Submit(func() { ran.Store(true) }, func() { dropped <- struct{}{} })
	d.Stop()

	require.Len(t, dropped, 1)
	time.Sleep(60 * time.Millisecond)
	assert.False(t, ran.Load())
}
