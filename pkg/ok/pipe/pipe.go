package pipe

import (
	"context"

	"github.com/ib-77/okflow/pkg/ok"
)

// Then invokes onSuccess with the successful value and returns whatever it
// produces. A failure passes through untouched and onSuccess is never
// invoked.
func Then[In, Out any](ctx context.Context, input ok.Result[In],
	onSuccess func(ctx context.Context, r In) ok.Result[Out]) ok.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return ok.FailFrom[In, Out](input)
}

// ThenOK is Then for the zero-payload marker: the callback takes no value
// because there is none to pass.
func ThenOK[Out any](ctx context.Context, input ok.Result[ok.Unit],
	onSuccess func(ctx context.Context) ok.Result[Out]) ok.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx)
	}
	return ok.FailFrom[ok.Unit, Out](input)
}

// ThenMatch invokes onMatch only when value equals match exactly; any other
// value passes through unchanged.
func ThenMatch[T comparable](ctx context.Context, value T, match T,
	onMatch func(ctx context.Context, v T) T) T {

	if value == match {
		return onMatch(ctx, value)
	}
	return value
}

// ThenIf invokes onTrue only when condition holds.
func ThenIf[T any](ctx context.Context, value T, condition bool,
	onTrue func(ctx context.Context, v T) T) T {

	if condition {
		return onTrue(ctx, value)
	}
	return value
}

// ThenTry adapts a plain (Out, error) call into the two-track world.
func ThenTry[In, Out any](ctx context.Context, input ok.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) ok.Result[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Result())
		if err != nil {
			return ok.Fail[Out](err)
		}

		return ok.Success(out)
	}

	return ok.FailFrom[In, Out](input)
}

// Map transforms the successful value to a new value.
func Map[In, Out any](ctx context.Context, input ok.Result[In],
	onSuccess func(ctx context.Context, r In) Out) ok.Result[Out] {

	if input.IsSuccess() {
		return ok.Success(onSuccess(ctx, input.Result()))
	}
	return ok.FailFrom[In, Out](input)
}

// Tap runs sideEffect on success and returns the input unchanged either way.
func Tap[T any](ctx context.Context, input ok.Result[T],
	sideEffect func(ctx context.Context, r T)) ok.Result[T] {

	if input.IsSuccess() {
		sideEffect(ctx, input.Result())
	}

	return input
}

// TapOK is Tap for the zero-payload marker.
func TapOK(ctx context.Context, input ok.Result[ok.Unit],
	sideEffect func(ctx context.Context)) ok.Result[ok.Unit] {

	if input.IsSuccess() {
		sideEffect(ctx)
	}

	return input
}

// TapMatch runs sideEffect only when value equals match exactly; the value is
// returned unchanged either way.
func TapMatch[T comparable](ctx context.Context, value T, match T,
	sideEffect func(ctx context.Context, v T)) T {

	if value == match {
		sideEffect(ctx, value)
	}

	return value
}

// Finally reduces a result to a concrete value via success/failure handlers.
func Finally[In, Out any](ctx context.Context, input ok.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onFailure(ctx, input.Err())
}
