package libtrigger

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// Worker is a Scheduler backed by a single goroutine draining an unbounded FIFO queue, so
// scheduling never blocks, not even from inside a running task.
type Worker struct {
	logger Logger
	queue  *Queue

	mutex  sync.Mutex
	closed bool

	wake      chan struct{}
	closeC    chan struct{}
	done      CloseChan
	startOnce sync.Once
	closeOnce sync.Once
}

// NewWorker creates a stopped worker. Call Start to begin running tasks.
func NewWorker(logger Logger) *Worker {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Worker{
		logger: logger.WithField("type", "worker"),
		queue:  NewQueue(),
		wake:   make(chan struct{}, 1),
		closeC: make(chan struct{}),
		done:   make(CloseChan),
	}
}

// Start spawns the draining goroutine. It only executes once, subsequent calls have no effect.
// Tasks scheduled before Start are kept and run once it is called.
func (w *Worker) Start(ctx context.Context) {
	w.startOnce.Do(func() {
		go w.run(ctx)
	})
}

// Schedule enqueues task for the worker goroutine. It fails with ErrSchedulerClosed once the
// worker has been closed or its context is done.
func (w *Worker) Schedule(task func()) error {
	w.mutex.Lock()
	if w.closed {
		w.mutex.Unlock()
		return errors.WithStack(ErrSchedulerClosed)
	}
	_ = w.queue.Schedule(task)
	w.mutex.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
	return nil
}

// Close stops accepting tasks. Already scheduled tasks are still executed before the goroutine
// exits; use CloseChan to wait for that. A worker that was never started is started here so its
// pending tasks get drained. It does not block and only executes once.
func (w *Worker) Close() {
	w.closeOnce.Do(func() {
		w.markClosed()
		close(w.closeC)
		w.Start(context.Background())
	})
}

// CloseChan returns a channel that is closed after the goroutine has drained and exited.
func (w *Worker) CloseChan() CloseChan {
	return w.done
}

// Len returns the number of tasks waiting to run.
func (w *Worker) Len() int {
	return w.queue.Len()
}

func (w *Worker) markClosed() {
	w.mutex.Lock()
	w.closed = true
	w.mutex.Unlock()
}

// run drains the queue whenever woken up. Task panics are not recovered.
func (w *Worker) run(ctx context.Context) {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			w.markClosed()
			w.drain()
			w.logger.Debugf("worker stopped: %s", ctx.Err())
			return
		case <-w.closeC:
			w.drain()
			w.logger.Debugln("worker closed")
			return
		case <-w.wake:
			w.drain()
		}
	}
}

func (w *Worker) drain() {
	if n := w.queue.Run(); n > 0 {
		w.logger.Debugf("ran %d deferred tasks", n)
	}
}
