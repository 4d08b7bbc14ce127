package mass

import (
	"context"

	"github.com/ib-77/rop3/pkg/rop"
	"github.com/ib-77/rop3/pkg/rop/solo"
)

// stage runs op on its own goroutine and delivers its outcome on the
// returned channel, unless ctx is done first, in which case onCancel is
// called with the unprocessed input and the channel is closed empty.
func stage[In, E, Out any](ctx context.Context, input rop.Result[In, E],
	op func() Out,
	onCancel func(ctx context.Context, in rop.Result[In, E])) <-chan Out {

	ch := make(chan Out, 1)
	out := make(chan Out)

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- op()
		}
	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				select {
				case out <- pr:
					return
				case <-ctx.Done():
				}
			}
		case <-ctx.Done():
		}

		if onCancel != nil {
			onCancel(ctx, input)
		}
	}()

	return out
}

func Validating[V, E any](ctx context.Context, input rop.Result[V, E],
	condition func(ctx context.Context, in V) bool, err E,
	onCancel func(ctx context.Context, in rop.Result[V, E])) <-chan rop.Result[V, E] {

	return stage(ctx, input, func() rop.Result[V, E] {
		return solo.Chain(ctx, input, func(ctx context.Context, v V) rop.Result[V, E] {
			return solo.FailIf(ctx, v, condition, err)
		})
	}, onCancel)
}

func Mapping[In, E, Out any](ctx context.Context, input rop.Result[In, E],
	mapOnSuccess func(ctx context.Context, r In) Out,
	onCancel func(ctx context.Context, in rop.Result[In, E])) <-chan rop.Result[Out, E] {

	return stage(ctx, input, func() rop.Result[Out, E] {
		return solo.Map(ctx, input, mapOnSuccess)
	}, onCancel)
}

func MappingFailure[V, E, Out any](ctx context.Context, input rop.Result[V, E],
	mapOnFailure func(ctx context.Context, err E) Out,
	onCancel func(ctx context.Context, in rop.Result[V, E])) <-chan rop.Result[V, Out] {

	return stage(ctx, input, func() rop.Result[V, Out] {
		return solo.MapFailure(ctx, input, mapOnFailure)
	}, onCancel)
}

func Chaining[In, E, Out any](ctx context.Context, input rop.Result[In, E],
	chainOnSuccess func(ctx context.Context, r In) rop.Result[Out, E],
	onCancel func(ctx context.Context, in rop.Result[In, E])) <-chan rop.Result[Out, E] {

	return stage(ctx, input, func() rop.Result[Out, E] {
		return solo.Chain(ctx, input, chainOnSuccess)
	}, onCancel)
}

func Catching[V, E any](ctx context.Context, input rop.Result[V, E],
	catchOnFailure func(ctx context.Context, err E) rop.Result[V, E],
	onCancel func(ctx context.Context, in rop.Result[V, E])) <-chan rop.Result[V, E] {

	return stage(ctx, input, func() rop.Result[V, E] {
		return solo.Catch(ctx, input, catchOnFailure)
	}, onCancel)
}

func Teeing[V, E any](ctx context.Context, input rop.Result[V, E],
	sideEffect func(ctx context.Context, r V),
	onCancel func(ctx context.Context, in rop.Result[V, E])) <-chan rop.Result[V, E] {

	return stage(ctx, input, func() rop.Result[V, E] {
		return solo.Tee(ctx, input, sideEffect)
	}, onCancel)
}

func Trying[In, Out any](ctx context.Context, input rop.Result[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error),
	onCancel func(ctx context.Context, in rop.Result[In, error])) <-chan rop.Result[Out, error] {

	return stage(ctx, input, func() rop.Result[Out, error] {
		return solo.Try(ctx, input, onTryExecute)
	}, onCancel)
}
