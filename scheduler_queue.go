package libtrigger

import (
	"sync"
)

// Queue is a cooperative scheduler: tasks pile up until the owner calls Run from its own
// goroutine, typically once the current unit of work is done. It never spawns goroutines.
type Queue struct {
	items []func()
	mutex sync.Mutex
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Schedule enqueues task. It never fails.
func (q *Queue) Schedule(task func()) error {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	q.items = append(q.items, task)
	return nil
}

// Run executes queued tasks in FIFO order until the queue is empty, including the ones
// scheduled by tasks run here. It returns how many tasks were executed. A panicking task
// unwinds through Run; tasks queued behind it stay queued.
func (q *Queue) Run() (n int) {
	for {
		task, ok := q.pop()
		if !ok {
			return
		}
		n++
		task()
	}
}

// Len returns the number of pending tasks.
func (q *Queue) Len() int {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	return len(q.items)
}

func (q *Queue) pop() (func(), bool) {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	if len(q.items) == 0 {
		return nil, false
	}

	task := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]

	return task, true
}
