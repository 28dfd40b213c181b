// Package fetch tracks the lifecycle of a single page-level data load.
//
// A State starts Loading and transitions exactly once, to Success with the
// loaded data or to Error with a message fit for display. Load runs the
// fetch on the caller's context, so tearing the view down (the request
// context ending) cancels the upstream call.
package fetch

import (
	"context"
	"fmt"
	"reflect"
)

// Status is the phase of a load.
type Status int

const (
	Loading Status = iota
	Success
	Error
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// State is the outcome of loading one resource. The zero value is Loading.
type State[T any] struct {
	Status   Status
	Resource string
	Data     T
	Message  string
	Err      error

	abandoned bool
}

// Loading reports whether the load has not finished.
func (s State[T]) Loading() bool { return s.Status == Loading }

// Failed reports whether the load ended in error.
func (s State[T]) Failed() bool { return s.Status == Error }

// Canceled reports a load abandoned because the caller's context ended.
// There is nobody left to show it to, so views skip rendering it. An
// upstream timeout with the caller still waiting is an ordinary failure.
func (s State[T]) Canceled() bool {
	return s.Status == Error && s.abandoned
}

// Empty reports a successful load of a collection with no items.
func (s State[T]) Empty() bool {
	return s.Status == Success && Count(s.Data) == 0
}

// Func loads a resource.
type Func[T any] func(ctx context.Context) (T, error)

// Load runs fn once and returns the settled state. The resource name is
// used in the error message, e.g. "Error fetching teams: API error: 500
// Internal Server Error".
func Load[T any](ctx context.Context, resource string, fn Func[T]) State[T] {
	state := State[T]{Status: Loading, Resource: resource}
	if err := ctx.Err(); err != nil {
		state = state.fail(err)
		state.abandoned = true
		return state
	}

	data, err := fn(ctx)
	if err != nil {
		state = state.fail(err)
		state.abandoned = ctx.Err() != nil
		return state
	}
	state.Status = Success
	state.Data = data
	return state
}

func (s State[T]) fail(err error) State[T] {
	var zero T
	s.Status = Error
	s.Data = zero
	s.Err = err
	s.Message = fmt.Sprintf("Error fetching %s: %v", s.Resource, err)
	return s
}

// Lener is implemented by collection wrappers that know their size.
type Lener interface {
	Len() int
}

// Count returns the number of items in a loaded collection. Non-collection
// values count as one item.
func Count(v any) int {
	switch c := v.(type) {
	case nil:
		return 0
	case Lener:
		return c.Len()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len()
	case reflect.Pointer:
		if rv.IsNil() {
			return 0
		}
	}
	return 1
}
