package ok

import (
	"time"

	"github.com/google/uuid"
)

// Result is a two-track outcome: a value of type T on the success track or
// an error on the failure track. Construct it with Success/Fail and inspect
// it through the accessors; the zero value is neither success nor failure.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom carries a failure across a type boundary, preserving the original
// error, id and creation time.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Unit is the explicit zero-payload marker for outcomes that succeed without
// producing a value.
type Unit struct{}

// OK returns a successful zero-payload outcome.
func OK() Result[Unit] {
	return Success(Unit{})
}

func (r Result[T]) Result() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.err != nil
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Unwrap splits the result back into Go's (value, error) shape.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// MustUnwrap returns the successful value and panics on anything else.
// Calling it on a failure is a programmer error, not a recoverable one.
func (r Result[T]) MustUnwrap() T {
	if !r.isSuccess {
		panic("okflow: MustUnwrap on non-success result: " + r.errString())
	}
	return r.value
}

func (r Result[T]) errString() string {
	if r.err == nil {
		return "<empty>"
	}
	return r.err.Error()
}
