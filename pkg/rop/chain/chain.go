package chain

import (
	"context"

	"github.com/ib-77/rop3/pkg/rop"
	"github.com/ib-77/rop3/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[V, E any] struct {
	ctx    context.Context
	result rop.Result[V, E]
}

// Start creates a new chain from a rop.Result
func Start[V, E any](ctx context.Context, result rop.Result[V, E]) *Chain[V, E] {
	return &Chain[V, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[V, E any](ctx context.Context, value V) *Chain[V, E] {
	return Start(ctx, rop.Success[V, E](value))
}

// FromError creates a new chain from a failure payload
func FromError[V, E any](ctx context.Context, err E) *Chain[V, E] {
	return Start(ctx, rop.Fail[V](err))
}

// Result returns the underlying rop.Result
func (c *Chain[V, E]) Result() rop.Result[V, E] {
	return c.result
}

// Then chains a function that returns rop.Result[N, E]
func Then[V, E, N any](c *Chain[V, E], onSuccess func(context.Context, V) rop.Result[N, E]) *Chain[N, E] {
	return Start(c.ctx, solo.Chain(c.ctx, c.result, onSuccess))
}

// ThenTry chains a function that returns (N, error)
func ThenTry[V, N any](c *Chain[V, error], tryOnSuccess func(context.Context, V) (N, error)) *Chain[N, error] {
	return Start(c.ctx, solo.Try(c.ctx, c.result, tryOnSuccess))
}

// Map chains a pure transformation function
func Map[V, E, N any](c *Chain[V, E], onSuccess func(context.Context, V) N) *Chain[N, E] {
	return Start(c.ctx, solo.Map(c.ctx, c.result, onSuccess))
}

// MapFailure transforms the failure payload
func MapFailure[V, E, N any](c *Chain[V, E], onFailure func(context.Context, E) N) *Chain[V, N] {
	return Start(c.ctx, solo.MapFailure(c.ctx, c.result, onFailure))
}

// Catch recovers from a failure
func (c *Chain[V, E]) Catch(onFailure func(context.Context, E) rop.Result[V, E]) *Chain[V, E] {
	return Start(c.ctx, solo.Catch(c.ctx, c.result, onFailure))
}

// Ensure performs a side effect without changing the result
func (c *Chain[V, E]) Ensure(onSuccess func(context.Context, V)) *Chain[V, E] {
	return Start(c.ctx, solo.Tee(c.ctx, c.result, onSuccess))
}

// OnFailure performs a side effect on failure without changing the result
func (c *Chain[V, E]) OnFailure(onFailure func(context.Context, E)) *Chain[V, E] {
	return Start(c.ctx, solo.TeeFailure(c.ctx, c.result, onFailure))
}

// Finally collapses the chain into a final value using solo.Fold
func Finally[V, E, Out any](c *Chain[V, E], onSuccess func(context.Context, V) Out,
	onFailure func(context.Context, E) Out) Out {
	return solo.Fold(c.ctx, c.result, onSuccess, onFailure)
}
