package libtrigger

type (
	// Scheduler runs tasks after the caller has returned, in the order they were scheduled.
	// Once a task is accepted it cannot be withdrawn.
	Scheduler interface {
		Schedule(task func()) error
	}

	// CloseChan is closed when the owner has fully stopped.
	CloseChan chan struct{}
)
