package libtrigger

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitClosed(t *testing.T, c CloseChan) {
	t.Helper()

	select {
	case <-c:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop in time")
	}
}

func TestWorkerRunsTasksInOrder(t *testing.T) {
	w := NewWorker(NewWriterLogger(&bytes.Buffer{}))
	w.Start(context.Background())

	var (
		mu    sync.Mutex
		order []int
		wg    sync.WaitGroup
	)

	wg.Add(100)
	for i := 0; i < 100; i++ {
		i := i
		require.NoError(t, w.Schedule(func() {
			defer wg.Done()
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		}))
	}
	wg.Wait()

	w.Close()
	waitClosed(t, w.CloseChan())

	require.Len(t, order, 100)
	for i, v := range order {
		assert.Equal(t, i, v)
	}
}

func TestWorkerKeepsTasksScheduledBeforeStart(t *testing.T) {
	w := NewWorker(nil)
	done := make(chan struct{})

	require.NoError(t, w.Schedule(func() { close(done) }))
	assert.Equal(t, 1, w.Len())

	w.Start(context.Background())
	w.Start(context.Background())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task did not run")
	}
	w.Close()
}

func TestWorkerCloseDrainsPendingTasks(t *testing.T) {
	w := NewWorker(nil)

	var ran int
	for i := 0; i < 5; i++ {
		require.NoError(t, w.Schedule(func() { ran++ }))
	}

	w.Close()
	w.Close()
	assert.ErrorIs(t, w.Schedule(func() {}), ErrSchedulerClosed)

	w.Start(context.Background())
	waitClosed(t, w.CloseChan())

	assert.Equal(t, 5, ran)
}

func TestWorkerStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := NewWorker(nil)
	w.Start(ctx)

	cancel()
	waitClosed(t, w.CloseChan())

	assert.ErrorIs(t, w.Schedule(func() {}), ErrSchedulerClosed)
}

func TestWorkerDeliversDeferredFirings(t *testing.T) {
	w := NewWorker(nil)
	w.Start(context.Background())
	defer w.Close()

	emitter := New(WithScheduler(w))
	received := make(chan any, 1)

	_, err := emitter.On("event", NewListener(func(args ...any) {
		received <- args[0]
	}))
	require.NoError(t, err)

	_, err = emitter.FireAsync("event", "x")
	require.NoError(t, err)

	select {
	case v := <-received:
		assert.Equal(t, "x", v)
	case <-time.After(time.Second):
		t.Fatal("listener was not invoked")
	}
}

func TestWorkerCloseWithoutStartDrains(t *testing.T) {
	w := NewWorker(nil)

	var ran bool
	require.NoError(t, w.Schedule(func() { ran = true }))

	w.Close()
	waitClosed(t, w.CloseChan())

	assert.True(t, ran)
	assert.Equal(t, 0, w.Len())
}

func TestWorkerFireAsyncBookkeepingBeforeSchedule(t *testing.T) {
	w := NewWorker(nil)
	w.Start(context.Background())
	defer w.Close()

	m := &mockMetrics{}
	m.On("Deferred", "event").Once()
	m.On("Fired", "event", 1).Once()
	m.On("ListenerAdded", "event").Once()

	emitter := New(WithScheduler(w), WithMetrics(m))
	done := make(chan struct{})
	_, _ = emitter.On("event", NewListener(func(...any) {
		// Deferred must already be recorded when the listener runs
		m.AssertCalled(t, "Deferred", "event")
		close(done)
	}))

	_, err := emitter.FireAsync("event")
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("listener was not invoked")
	}
}

func TestFireAsyncWithMockScheduler(t *testing.T) {
	var scheduled []func()
	s := &mockScheduler{ScheduleFunc: func(task func()) error {
		scheduled = append(scheduled, task)
		return nil
	}}

	emitter := New(WithScheduler(s))
	var calls int
	_, _ = emitter.On("event", NewListener(func(...any) { calls++ }))

	_, err := emitter.FireAsync("event")
	require.NoError(t, err)
	require.Len(t, scheduled, 1)
	assert.Equal(t, 0, calls)

	scheduled[0]()
	assert.Equal(t, 1, calls)
}
