package libtrigger

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Subscription is the handle returned by Subscribe and Once. It saves callers from keeping the
// *Listener around just to unregister it.
type Subscription struct {
	id       uuid.UUID
	event    string
	listener *Listener
	registry *Registry
}

// ID identifies the subscription in logs.
func (s *Subscription) ID() uuid.UUID { return s.id }

// Event returns the event name the listener was registered under.
func (s *Subscription) Event() string { return s.event }

// Listener returns the registered listener reference.
func (s *Subscription) Listener() *Listener { return s.listener }

// Active reports whether the listener is still registered.
func (s *Subscription) Active() bool {
	return s.registry.HasListener(s.event, s.listener)
}

// Cancel unregisters the listener. It reports false when it was already gone.
func (s *Subscription) Cancel() bool {
	// event and listener were validated on subscription
	ok, _ := s.registry.Off(s.event, s.listener)
	return ok
}

// Subscribe registers fn under event through a fresh listener and returns its handle.
func (r *Registry) Subscribe(event string, fn ListenerFunc) (*Subscription, error) {
	return r.subscribe("subscribe", event, fn, NewListener(fn))
}

// Once is like Subscribe, but the listener unregisters itself right before its first
// invocation, so it runs at most once even when the event is fired concurrently.
func (r *Registry) Once(event string, fn ListenerFunc) (*Subscription, error) {
	var (
		fired atomic.Bool
		l     = &Listener{}
	)

	if fn != nil {
		l.fn = func(args ...any) {
			if !fired.CompareAndSwap(false, true) {
				return
			}
			_, _ = r.Off(event, l)
			fn(args...)
		}
	}

	return r.subscribe("once", event, fn, l)
}

func (r *Registry) subscribe(op, event string, fn ListenerFunc, l *Listener) (*Subscription, error) {
	if err := validateEvent(op, event); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, newErrArgument(op, "listener", "must be invocable")
	}

	if _, err := r.On(event, l); err != nil {
		return nil, err
	}

	s := &Subscription{
		id:       uuid.New(),
		event:    event,
		listener: l,
		registry: r,
	}

	r.logger.WithField("event", event).WithField("subscription", s.id.String()).Debugln("subscribed")

	return s, nil
}
