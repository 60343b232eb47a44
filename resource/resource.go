package resource

import (
	"context"
	"fmt"
)

// State tags a Resource value.
type State int

const (
	StateLoading State = iota
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Resource is the tri-state outcome wrapper. Value is the decoded payload on
// success; on error it may carry a partial payload and Message holds a
// human-readable description.
type Resource[T any] struct {
	State   State
	Value   T
	Message string
}

// Loading returns the non-terminal state emitted before the underlying call.
func Loading[T any]() Resource[T] {
	return Resource[T]{State: StateLoading}
}

// Success wraps a decoded payload.
func Success[T any](value T) Resource[T] {
	return Resource[T]{State: StateSuccess, Value: value}
}

// Errorf builds a terminal error state.
func Errorf[T any](format string, args ...any) Resource[T] {
	return Resource[T]{State: StateError, Message: fmt.Sprintf(format, args...)}
}

// Terminal reports whether the value concludes a call.
func (r Resource[T]) Terminal() bool {
	return r.State != StateLoading
}

// Fetch runs fn once and delivers the tri-state sequence on the returned
// channel: Loading is buffered before Fetch returns, the terminal state
// follows the call, then the channel is closed. The buffer guarantees the
// producer never blocks, so a consumer that stops observing simply abandons
// the call; any session side effect of a response that already arrived has
// happened at the transport layer regardless.
func Fetch[T any](ctx context.Context, fn func(context.Context) (T, error)) <-chan Resource[T] {
	out := make(chan Resource[T], 2)
	out <- Loading[T]()
	go func() {
		defer close(out)
		value, err := fn(ctx)
		if err != nil {
			out <- Resource[T]{State: StateError, Value: value, Message: err.Error()}
			return
		}
		out <- Success(value)
	}()
	return out
}
