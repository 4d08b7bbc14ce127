package async

import (
	"context"

	"github.com/ib-77/rop3/pkg/rop"
	"github.com/ib-77/rop3/pkg/rop/promise"
	"github.com/ib-77/rop3/pkg/rop/solo"
)

// Of lifts a plain Result into an already resolved promise.
func Of[V, E any](input rop.Result[V, E]) *promise.Promise[rop.Result[V, E]] {
	return promise.Resolved(input)
}

func Succeed[V, E any](value V) *promise.Promise[rop.Result[V, E]] {
	return Of(rop.Success[V, E](value))
}

func Fail[V, E any](err E) *promise.Promise[rop.Result[V, E]] {
	return Of(rop.Fail[V](err))
}

// Map awaits input and, for a Success, awaits onSuccess on its value.
// A Failure passes through without calling onSuccess.
func Map[V, E, N any](ctx context.Context,
	input *promise.Promise[rop.Result[V, E]],
	onSuccess func(ctx context.Context, r V) *promise.Promise[N]) *promise.Promise[rop.Result[N, E]] {

	return promise.Go(func() (rop.Result[N, E], error) {
		res, err := input.Await(ctx)
		if err != nil {
			return rop.Result[N, E]{}, err
		}

		switch rop.MustKind(res) {
		case rop.KindSuccess:
			v, err := onSuccess(ctx, res.Value()).Await(ctx)
			if err != nil {
				return rop.Result[N, E]{}, err
			}
			return rop.Success[N, E](v), nil
		default:
			return rop.FailFrom[V, N](res), nil
		}
	})
}

func MapFailure[V, E, N any](ctx context.Context,
	input *promise.Promise[rop.Result[V, E]],
	onFailure func(ctx context.Context, err E) *promise.Promise[N]) *promise.Promise[rop.Result[V, N]] {

	return promise.Go(func() (rop.Result[V, N], error) {
		res, err := input.Await(ctx)
		if err != nil {
			return rop.Result[V, N]{}, err
		}

		switch rop.MustKind(res) {
		case rop.KindFailure:
			e, err := onFailure(ctx, res.Err()).Await(ctx)
			if err != nil {
				return rop.Result[V, N]{}, err
			}
			return rop.Fail[V](e), nil
		default:
			return rop.SuccessFrom[V, E, N](res), nil
		}
	})
}

func Chain[V, E, N any](ctx context.Context,
	input *promise.Promise[rop.Result[V, E]],
	onSuccess func(ctx context.Context, r V) *promise.Promise[rop.Result[N, E]]) *promise.Promise[rop.Result[N, E]] {

	return promise.Go(func() (rop.Result[N, E], error) {
		res, err := input.Await(ctx)
		if err != nil {
			return rop.Result[N, E]{}, err
		}

		switch rop.MustKind(res) {
		case rop.KindSuccess:
			return onSuccess(ctx, res.Value()).Await(ctx)
		default:
			return rop.FailFrom[V, N](res), nil
		}
	})
}

func Catch[V, E any](ctx context.Context,
	input *promise.Promise[rop.Result[V, E]],
	onFailure func(ctx context.Context, err E) *promise.Promise[rop.Result[V, E]]) *promise.Promise[rop.Result[V, E]] {

	return promise.Go(func() (rop.Result[V, E], error) {
		res, err := input.Await(ctx)
		if err != nil {
			return rop.Result[V, E]{}, err
		}

		switch rop.MustKind(res) {
		case rop.KindFailure:
			return onFailure(ctx, res.Err()).Await(ctx)
		default:
			return res, nil
		}
	})
}

// Fold awaits input, then awaits exactly one of the handlers and resolves
// with its value.
func Fold[V, E, Out any](ctx context.Context,
	input *promise.Promise[rop.Result[V, E]],
	onSuccess func(ctx context.Context, r V) *promise.Promise[Out],
	onFailure func(ctx context.Context, err E) *promise.Promise[Out]) *promise.Promise[Out] {

	return promise.Go(func() (Out, error) {
		res, err := input.Await(ctx)
		if err != nil {
			return *new(Out), err
		}
		return solo.Fold(ctx, res, onSuccess, onFailure).Await(ctx)
	})
}

// Invert awaits inputs strictly left to right and stops at the first
// Failure, which becomes the outcome. Promises start eagerly, so inputs after
// that Failure may still be running; their outcome is never observed.
func Invert[V, E any](ctx context.Context,
	inputs ...*promise.Promise[rop.Result[V, E]]) *promise.Promise[rop.Result[[]V, E]] {

	return promise.Go(func() (rop.Result[[]V, E], error) {
		acc := rop.Success[[]V, E]([]V{})

		for _, in := range inputs {
			if acc.IsFailure() {
				break
			}

			next, err := in.Await(ctx)
			if err != nil {
				return rop.Result[[]V, E]{}, err
			}

			acc = solo.Chain(ctx, acc, func(ctx context.Context, values []V) rop.Result[[]V, E] {
				return solo.Map(ctx, next, func(_ context.Context, v V) []V {
					// the accumulator is owned by the fold, so it grows in place
					return append(values, v)
				})
			})
		}

		return acc, nil
	})
}

// FromPromise resolves with a Success holding the value of p, or a Failure
// holding its rejection error. The returned promise never rejects; if ctx
// ends first the Failure holds the context error.
func FromPromise[V any](ctx context.Context, p *promise.Promise[V]) *promise.Promise[rop.Result[V, error]] {
	return promise.Go(func() (rop.Result[V, error], error) {
		v, err := p.Await(ctx)
		if err != nil {
			return rop.Fail[V](err), nil
		}
		return rop.Success[V, error](v), nil
	})
}

// ToPromise resolves with the value of a Success or rejects with the error of
// a Failure. A non-error failure payload is wrapped in rop.ReasonError.
func ToPromise[V, E any](ctx context.Context, input rop.Result[V, E]) *promise.Promise[V] {
	return promise.Go(func() (V, error) {
		return solo.Fold(ctx, input,
			func(_ context.Context, v V) *promise.Promise[V] {
				return promise.Resolved(v)
			},
			func(_ context.Context, e E) *promise.Promise[V] {
				return promise.Rejected[V](rop.AsError(e))
			}).Await(ctx)
	})
}

// Await is a shorthand for awaiting a promised Result and rejoining
// (value, error) control flow.
func Await[V, E any](ctx context.Context, input *promise.Promise[rop.Result[V, E]]) (V, error) {
	res, err := input.Await(ctx)
	if err != nil {
		return *new(V), err
	}
	return ToPromise(ctx, res).Await(ctx)
}

// TryCatch wraps f so that a rejection or a panic becomes a Failure. The
// returned promise never rejects.
func TryCatch[V, N any](f func(ctx context.Context, in V) *promise.Promise[N]) func(ctx context.Context,
	input V) *promise.Promise[rop.Result[N, error]] {

	try := solo.TryCatch(func(ctx context.Context, in V) (N, error) {
		return f(ctx, in).Await(ctx)
	})

	return func(ctx context.Context, input V) *promise.Promise[rop.Result[N, error]] {
		return promise.Go(func() (rop.Result[N, error], error) {
			return try(ctx, input), nil
		})
	}
}

// TryCatchOr is TryCatch with every caught rejection or panic replaced by
// substitute.
func TryCatchOr[V, N, E any](f func(ctx context.Context, in V) *promise.Promise[N],
	substitute E) func(ctx context.Context, input V) *promise.Promise[rop.Result[N, E]] {

	try := TryCatch(f)

	return func(ctx context.Context, input V) *promise.Promise[rop.Result[N, E]] {
		return MapFailure(ctx, try(ctx, input), func(context.Context, error) *promise.Promise[E] {
			return promise.Resolved(substitute)
		})
	}
}
