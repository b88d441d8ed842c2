package flow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Step is one stage of a run. It receives the context accumulated so far;
// a non-nil error terminates the run.
type Step func(ctx context.Context, c *Context) (any, error)

// Flow threads an ordered sequence of named steps over a growing Context,
// short-circuiting at the first failing step. A terminated flow absorbs all
// further Run and Tap calls; Resolve and Finally are the only exits.
type Flow struct {
	ctx       context.Context
	id        uuid.UUID
	createdAt time.Time
	c         *Context
	step      string
	err       error
}

// New starts a run with an empty context.
func New(ctx context.Context) *Flow {
	return &Flow{
		ctx:       ctx,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		c:         NewContext(),
	}
}

// From starts a run with a caller-supplied seed mapping.
func From(ctx context.Context, seed map[string]any) *Flow {
	return &Flow{
		ctx:       ctx,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		c:         SeedContext(seed),
	}
}

// Start runs a single named step against an empty context.
func Start(ctx context.Context, name string, step Step) *Flow {
	return New(ctx).Run(name, step)
}

// StartWith runs a single named step against a seeded context.
func StartWith(ctx context.Context, name string, seed map[string]any, step Step) *Flow {
	return From(ctx, seed).Run(name, step)
}

// Run invokes step with the context so far and binds its result under name.
// On a terminated flow the step is never invoked. An empty name marks a pure
// side-effect step: the context stays unchanged on success, while a failure
// still terminates the run. Reusing a non-empty name within one run is a
// programmer error and panics before the step is invoked.
func (f *Flow) Run(name string, step Step) *Flow {
	if f.err != nil {
		return f
	}

	if name != "" && f.c.Has(name) {
		panic(fmt.Sprintf("okflow: step name %q already bound in this flow", name))
	}

	v, err := step(f.ctx, f.c)
	if err != nil {
		return &Flow{ctx: f.ctx, id: f.id, createdAt: f.createdAt, c: f.c, step: name, err: err}
	}

	if name == "" {
		return f
	}

	return &Flow{ctx: f.ctx, id: f.id, createdAt: f.createdAt, c: f.c.with(name, v)}
}

// Tap invokes step for its side effects only. The flow continues unchanged
// no matter what the step returns; on a terminated flow the step is never
// invoked.
func (f *Flow) Tap(step Step) *Flow {
	if f.err != nil {
		return f
	}

	_, _ = step(f.ctx, f.c)

	return f
}

func (f *Flow) IsSuccess() bool {
	return f.err == nil
}

func (f *Flow) IsFailure() bool {
	return f.err != nil
}

// Context returns the context accumulated so far.
func (f *Flow) Context() *Context {
	return f.c
}

// FailedStep returns the name of the step that terminated the flow, or the
// empty string while the flow is still running.
func (f *Flow) FailedStep() string {
	return f.step
}

// Err returns the terminal failure, or nil while the flow is still running.
func (f *Flow) Err() *Error {
	if f.err == nil {
		return nil
	}
	return &Error{Step: f.step, Context: f.c, Err: f.err}
}

func (f *Flow) Id() uuid.UUID {
	return f.id
}

func (f *Flow) CreatedAt() time.Time {
	return f.createdAt
}

// Result splits the flow back into Go's (value, error) shape. The error, when
// non-nil, is always a *Error.
func (f *Flow) Result() (*Context, error) {
	if f.err != nil {
		return nil, f.Err()
	}
	return f.c, nil
}

// Resolve exits the flow with onSuccess's raw return value. On a terminated
// flow the callback is never invoked and the failure is returned as *Error.
func Resolve[T any](f *Flow, onSuccess func(ctx context.Context, c *Context) T) (T, error) {
	if f.err != nil {
		var zero T
		return zero, f.Err()
	}
	return onSuccess(f.ctx, f.c), nil
}

// Finally collapses the flow into a final value via success/failure handlers.
func Finally[T any](f *Flow,
	onSuccess func(ctx context.Context, c *Context) T,
	onFailure func(ctx context.Context, ferr *Error) T) T {

	if f.err != nil {
		return onFailure(f.ctx, f.Err())
	}
	return onSuccess(f.ctx, f.c)
}
