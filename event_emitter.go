// Package libtrigger is an in-process event registry: named events, ordered listeners,
// synchronous and deferred dispatch.
package libtrigger

import (
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Registry maps event names to ordered sets of listeners. Listeners are compared by pointer,
// kept in registration order and never duplicated under the same event. An event name is only
// present while it has at least one listener.
//
// Dispatch always works on a copy of the listener set taken when the firing starts, so
// listeners may register or unregister (themselves included) while being invoked. Listeners
// are called without holding any lock.
type Registry struct {
	id        uuid.UUID
	listeners map[string][]*Listener
	lock      sync.RWMutex

	logger    Logger
	scheduler Scheduler
	metrics   Metrics
}

// New creates an empty registry. The registry is its own owner: Fire and FireAsync return it.
func New(opts ...Option) *Registry {
	o := newOptions(opts)
	id := uuid.New()

	return &Registry{
		id:        id,
		listeners: make(map[string][]*Listener),
		logger:    o.logger.WithField("trigger", id.String()),
		scheduler: o.scheduler,
		metrics:   o.metrics,
	}
}

// ID identifies the registry in logs.
func (r *Registry) ID() uuid.UUID {
	return r.id
}

// On appends l to the listeners of event. It reports false, and changes nothing, when l is
// already registered for event.
func (r *Registry) On(event string, l *Listener) (bool, error) {
	if err := validateEvent("on", event); err != nil {
		return false, err
	}
	if !l.invocable() {
		return false, newErrArgument("on", "listener", "must be invocable")
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	listeners := r.listeners[event]
	if slices.Contains(listeners, l) {
		return false, nil
	}

	r.listeners[event] = append(listeners, l)
	r.metrics.ListenerAdded(event)
	r.logger.WithField("event", event).Debugf("listener registered (%d)", len(listeners)+1)

	return true, nil
}

// Off removes l from the listeners of event. With a nil l every listener of event is removed.
// It reports whether anything was removed.
func (r *Registry) Off(event string, l *Listener) (bool, error) {
	if err := validateEvent("off", event); err != nil {
		return false, err
	}
	if l == nil {
		return r.offAll(event), nil
	}
	if !l.invocable() {
		return false, newErrArgument("off", "listener", "must be invocable")
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	listeners := r.listeners[event]
	idx := slices.Index(listeners, l)
	if idx < 0 {
		return false, nil
	}

	if len(listeners) == 1 {
		delete(r.listeners, event)
	} else {
		// full slice expression forces a new backing array
		r.listeners[event] = append(listeners[:idx:idx], listeners[idx+1:]...)
	}

	r.metrics.ListenerRemoved(event, 1)
	r.logger.WithField("event", event).Debugf("listener unregistered (%d left)", len(listeners)-1)

	return true, nil
}

func (r *Registry) offAll(event string) bool {
	r.lock.Lock()
	defer r.lock.Unlock()

	listeners, found := r.listeners[event]
	if !found {
		return false
	}

	delete(r.listeners, event)
	r.metrics.ListenerRemoved(event, len(listeners))
	r.logger.WithField("event", event).Debugf("%d listeners unregistered", len(listeners))

	return true
}

// Fire invokes every listener registered for event at the time of the call, in registration
// order, passing args through. It returns once all of them have returned. A panicking
// listener aborts the delivery and the panic propagates to the caller.
func (r *Registry) Fire(event string, args ...any) (*Registry, error) {
	if err := validateEvent("fire", event); err != nil {
		return r, err
	}

	r.emit(event, args)

	return r, nil
}

// FireAsync schedules the equivalent of Fire(event, args...) and returns right away. The set
// of listeners is resolved when the scheduled task runs, not now. With the default scheduler
// nothing runs until Flush is called.
func (r *Registry) FireAsync(event string, args ...any) (*Registry, error) {
	return r, r.fireAsync(event, args)
}

func (r *Registry) fireAsync(event string, args []any) error {
	if err := validateEvent("fireAsync", event); err != nil {
		return err
	}

	args = slices.Clone(args)

	r.metrics.Deferred(event)
	r.logger.WithField("event", event).Debugln("firing deferred")

	// a Worker may run the task right away, so scheduling goes last
	return errors.Wrapf(
		r.scheduler.Schedule(func() { r.emit(event, args) }),
		"cannot defer event %q", event,
	)
}

// Flush runs the firings deferred by FireAsync on the calling goroutine, in FIFO order, and
// returns how many ran. Firings deferred while flushing run too. It is a no-op returning 0 when
// the registry was built with a scheduler other than a Queue.
func (r *Registry) Flush() int {
	q, ok := r.scheduler.(*Queue)
	if !ok {
		return 0
	}
	return q.Run()
}

func (r *Registry) emit(event string, args []any) {
	r.lock.RLock()
	listeners := slices.Clone(r.listeners[event])
	r.lock.RUnlock()

	if len(listeners) == 0 {
		return
	}

	r.metrics.Fired(event, len(listeners))
	r.logger.WithField("event", event).Debugf("firing to %d listeners", len(listeners))

	for _, listener := range listeners {
		listener.Call(args...)
	}
}

// ListenerCount returns how many listeners event has. Unknown events have none.
func (r *Registry) ListenerCount(event string) int {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return len(r.listeners[event])
}

// HasListeners reports whether event has at least one listener.
func (r *Registry) HasListeners(event string) bool {
	return r.ListenerCount(event) > 0
}

// HasListener reports whether l is registered for event.
func (r *Registry) HasListener(event string, l *Listener) bool {
	if l == nil {
		return false
	}

	r.lock.RLock()
	defer r.lock.RUnlock()

	return slices.Contains(r.listeners[event], l)
}

// Listeners returns a copy of the listeners of event in registration order.
func (r *Registry) Listeners(event string) []*Listener {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return slices.Clone(r.listeners[event])
}

// ActiveEvents returns the names of the events having at least one listener. The order is
// unspecified.
func (r *Registry) ActiveEvents() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return slices.Collect(maps.Keys(r.listeners))
}
