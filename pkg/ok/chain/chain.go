package chain

import (
	"context"

	"github.com/ib-77/okflow/pkg/ok"
	"github.com/ib-77/okflow/pkg/ok/pipe"
)

// Chain wraps an ok.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx context.Context
	res ok.Result[T]
}

// Start creates a new chain from an ok.Result
func Start[T any](ctx context.Context, result ok.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx: ctx,
		res: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx: ctx,
		res: ok.Success(value),
	}
}

// Result returns the underlying ok.Result
func (c *Chain[T]) Result() ok.Result[T] {
	return c.res
}

// Then composes a same-type function that already returns ok.Result[T]
func (c *Chain[T]) Then(onSuccess func(ctx context.Context, t T) ok.Result[T]) *Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return &Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Result())}
}

// ThenTry composes a function that returns (T, error)
func (c *Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		res: pipe.ThenTry[T, T](c.ctx, c.res, try),
	}
}

// Map transforms the successful value to a new value of the same type
func (c *Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		res: pipe.Map[T, T](c.ctx, c.res, onSuccess),
	}
}

// Ensure performs a side effect on success without changing the result
func (c *Chain[T]) Ensure(onSuccess func(ctx context.Context, t T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		res: pipe.Tap[T](c.ctx, c.res, onSuccess),
	}
}

// Or returns the first successful chain among the receiver and alternative;
// when both failed, the receiver's failure wins.
func (c *Chain[T]) Or(alternative *Chain[T]) *Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	if alternative.res.IsSuccess() {
		return alternative
	}
	return c
}

// And returns the first failed chain among the receiver and required;
// when both succeeded, required's result wins.
func (c *Chain[T]) And(required *Chain[T]) *Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return required
}

// Switch chains a function that moves the chain to a new result type
func Switch[T, U any](c *Chain[T], onSuccess func(ctx context.Context, t T) ok.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		res: pipe.Then[T, U](c.ctx, c.res, onSuccess),
	}
}

// SwitchTry chains a function that returns (U, error)
func SwitchTry[T, U any](c *Chain[T], tryOnSuccess func(ctx context.Context, t T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		res: pipe.ThenTry[T, U](c.ctx, c.res, tryOnSuccess),
	}
}

// MapTo chains a pure transformation function (T -> U)
func MapTo[T, U any](c *Chain[T], onSuccess func(ctx context.Context, t T) U) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		res: pipe.Map[T, U](c.ctx, c.res, onSuccess),
	}
}

// Finally collapses the chain into a final result using pipe.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(ctx context.Context, t T) U,
	onFailure func(ctx context.Context, err error) U) U {
	return pipe.Finally[T, U](c.ctx, c.res, onSuccess, onFailure)
}
