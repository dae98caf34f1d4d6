// Package async models the lifecycle of a single asynchronous backend call
// as an explicit tagged union: Idle, Pending, Succeeded or Failed.
package async

// Phase is the lifecycle position of a call.
type Phase int

const (
	// Idle means the call has not been issued.
	Idle Phase = iota
	// Pending means the call was issued and has not resolved.
	Pending
	// Succeeded means the call resolved with a value.
	Succeeded
	// Failed means the call resolved with an error.
	Failed
)

// Call tracks one asynchronous operation and its resolved payload.
// Transitions are pure; the zero value is Idle.
type Call[T any] struct {
	err   error
	value T
	phase Phase
}

// Begin moves the call to Pending, discarding any prior resolution.
func (c *Call[T]) Begin() {
	var zero T
	c.phase = Pending
	c.value = zero
	c.err = nil
}

// Succeed resolves the call with a value.
func (c *Call[T]) Succeed(value T) {
	c.phase = Succeeded
	c.value = value
	c.err = nil
}

// Fail resolves the call with an error.
func (c *Call[T]) Fail(err error) {
	var zero T
	c.phase = Failed
	c.value = zero
	c.err = err
}

// Reset returns the call to Idle.
func (c *Call[T]) Reset() {
	var zero T
	c.phase = Idle
	c.value = zero
	c.err = nil
}

// Phase returns the current lifecycle position.
func (c *Call[T]) Phase() Phase { return c.phase }

// IsIdle reports whether the call has not been issued.
func (c *Call[T]) IsIdle() bool { return c.phase == Idle }

// IsPending reports whether the call is in flight.
func (c *Call[T]) IsPending() bool { return c.phase == Pending }

// IsSuccess reports whether the call resolved with a value.
func (c *Call[T]) IsSuccess() bool { return c.phase == Succeeded }

// IsError reports whether the call resolved with an error.
func (c *Call[T]) IsError() bool { return c.phase == Failed }

// Value returns the resolved payload. Only meaningful when IsSuccess.
func (c *Call[T]) Value() T { return c.value }

// Err returns the resolution error, or nil.
func (c *Call[T]) Err() error { return c.err }
