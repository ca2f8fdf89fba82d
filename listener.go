package libtrigger

type (
	// ListenerFunc is the body of a listener. It receives the arguments passed to Fire as is.
	ListenerFunc func(args ...any)

	// Listener is a registrable reference to a ListenerFunc. Registries compare listeners by
	// pointer, so the same *Listener must be kept around to be removed later on.
	Listener struct {
		fn ListenerFunc
	}
)

// NewListener wraps fn into a new listener reference. Every call returns a distinct identity,
// even for the same fn.
func NewListener(fn ListenerFunc) *Listener {
	return &Listener{fn: fn}
}

// Call invokes the wrapped function.
func (l *Listener) Call(args ...any) {
	l.fn(args...)
}

func (l *Listener) invocable() bool {
	return l != nil && l.fn != nil
}
