// Package flight wraps one outbound call at a time with a loading state and
// an explicit Ok/Err result, mirroring the loading/success/error lifecycle
// of a submit button: while a call is in flight a second run on the same
// instance is rejected, and starting a new run clears the previous outcome.
package flight

import (
	"context"
	"errors"
	"sync"
)

// ErrInFlight is returned by Run while a previous call on the same instance
// has not settled yet.
var ErrInFlight = errors.New("request already in flight")

// Status is the lifecycle state of a Call.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// ErrorInfo is a normalized failure: a user-presentable message plus the
// underlying cause for errors.Is matching.
type ErrorInfo struct {
	Message string
	Cause   error
}

// Result is an explicit Ok/Err union. Failures propagate by value; exactly
// one of the data or the error is populated.
type Result[T any] struct {
	ok   bool
	data T
	err  *ErrorInfo
}

// Ok wraps a successful payload.
func Ok[T any](data T) Result[T] {
	return Result[T]{ok: true, data: data}
}

// Err wraps a normalized failure.
func Err[T any](message string, cause error) Result[T] {
	return Result[T]{err: &ErrorInfo{Message: message, Cause: cause}}
}

// IsOk reports whether the result carries data.
func (r Result[T]) IsOk() bool { return r.ok }

// Data returns the success payload; the zero value when IsOk is false.
func (r Result[T]) Data() T { return r.data }

// Err returns the failure, or nil when IsOk is true.
func (r Result[T]) Err() *ErrorInfo { return r.err }

// Call runs at most one effect at a time and remembers the last outcome.
// The zero value is ready to use. Instances are independent: two workflows
// holding separate Calls may be in flight simultaneously.
type Call[T any] struct {
	mu     sync.Mutex
	status Status
	last   Result[T]
}

// Run executes fn, transitioning Idle/Success/Error -> Loading -> terminal.
// The previous result is cleared before the transition to Loading, so a
// refetch never shows stale data. If a call is already loading, Run returns
// ErrInFlight without invoking fn.
//
// The settled result is returned and also retained for Snapshot; a failed fn
// is a normal terminal state, not an error return.
func (c *Call[T]) Run(ctx context.Context, fn func(context.Context) (T, error)) (Result[T], error) {
	c.mu.Lock()
	if c.status == StatusLoading {
		c.mu.Unlock()
		return Result[T]{}, ErrInFlight
	}
	c.status = StatusLoading
	c.last = Result[T]{}
	c.mu.Unlock()

	data, err := fn(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.status = StatusError
		c.last = Err[T](err.Error(), err)
	} else {
		c.status = StatusSuccess
		c.last = Ok(data)
	}
	return c.last, nil
}

// Status returns the current lifecycle state.
func (c *Call[T]) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Snapshot returns the last settled result. While loading it is the cleared
// zero result.
func (c *Call[T]) Snapshot() Result[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}
