package libtrigger

import (
	"fmt"
	"reflect"
)

// Trigger binds a Registry to the value that owns it. Hosts usually embed it so the registry
// operations become their own methods:
//
//	type Room struct {
//		*libtrigger.Trigger[*Room]
//		Name string
//	}
//
// Fire and FireAsync return the owner to allow chaining.
type Trigger[T any] struct {
	*Registry
	owner T
}

// Create builds a Trigger owned by target. target must be object-like: a struct, a non-nil
// pointer to a struct or a non-nil map keyed by strings. Anything else fails with
// ErrInvalidArgument.
func Create[T any](target T, opts ...Option) (*Trigger[T], error) {
	if !objectLike(target) {
		return nil, newErrArgument("create", "target", fmt.Sprintf("must be object-like, got %T", target))
	}

	return &Trigger[T]{
		Registry: New(opts...),
		owner:    target,
	}, nil
}

// Owner returns the value the trigger was created for.
func (t *Trigger[T]) Owner() T {
	return t.owner
}

// Fire behaves as Registry.Fire and returns the owner.
func (t *Trigger[T]) Fire(event string, args ...any) (T, error) {
	_, err := t.Registry.Fire(event, args...)
	return t.owner, err
}

// FireAsync behaves as Registry.FireAsync and returns the owner.
func (t *Trigger[T]) FireAsync(event string, args ...any) (T, error) {
	return t.owner, t.Registry.fireAsync(event, args)
}

func objectLike(v any) bool {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Struct:
		return true
	case reflect.Pointer:
		return !rv.IsNil() && rv.Elem().Kind() == reflect.Struct
	case reflect.Map:
		return !rv.IsNil() && rv.Type().Key().Kind() == reflect.String
	default:
		return false
	}
}
