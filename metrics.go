package libtrigger

// Metrics receives registry activity. Implementations must be safe for concurrent use, since
// deferred firings run on the scheduler's goroutine.
type Metrics interface {
	// ListenerAdded is called once per successful registration.
	ListenerAdded(event string)
	// ListenerRemoved is called with the number of listeners dropped by a removal.
	ListenerRemoved(event string, n int)
	// Fired is called before delivering an event to the given number of listeners.
	Fired(event string, listeners int)
	// Deferred is called when a firing is handed to the scheduler.
	Deferred(event string)
}
