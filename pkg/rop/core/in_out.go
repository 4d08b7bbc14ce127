package core

import (
	"context"

	"github.com/ib-77/rop3/pkg/rop"
)

type ToChanHandlers[T any] struct {
	OnStartFail func(ctx context.Context, input []T)
	OnSuccess   func(ctx context.Context, input T)
	OnBreak     func(ctx context.Context, rest []T)
}

func ToChanFromArgs[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for i, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				GetLogger(ctx).Debug("source stopped", "sent", i, "rest", len(values)-i)
				return
			}
		}
	}()

	return in
}

// ToChanFromArgsResults emits every value as a Success, in order.
func ToChanFromArgsResults[V, E any](ctx context.Context, handlers ToChanHandlers[V], values ...V) <-chan rop.Result[V, E] {
	in := make(chan rop.Result[V, E])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- rop.Success[V, E](v):
				if handlers.OnSuccess != nil {
					handlers.OnSuccess(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

// ToChanResults emits the given Results as they are, in order.
func ToChanResults[V, E any](ctx context.Context, results ...rop.Result[V, E]) <-chan rop.Result[V, E] {
	return ToChanFromArgs(ctx, results...)
}

func ToChan[T any](ctx context.Context, value T) <-chan T {
	return ToChanFromArgs[T](ctx, value)
}

func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	return ToChanFromArgs[T](ctx, values...)
}

func ToChanManyResultsWithHandlers[V, E any](ctx context.Context, handlers ToChanHandlers[V], values []V) <-chan rop.Result[V, E] {
	return ToChanFromArgsResults[V, E](ctx, handlers, values...)
}

func ToChanManyResults[V, E any](ctx context.Context, values []V) <-chan rop.Result[V, E] {
	return ToChanFromArgsResults[V, E](ctx, ToChanHandlers[V]{}, values...)
}

// FromChanMany drains out until it is closed or ctx is done.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
