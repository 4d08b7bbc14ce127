package solo

import (
	"context"

	"github.com/ib-77/rop3/pkg/rop"
	"github.com/samber/lo"
)

func Succeed[V, E any](input V) rop.Result[V, E] {
	return rop.Success[V, E](input)
}

func Fail[V, E any](err E) rop.Result[V, E] {
	return rop.Fail[V](err)
}

func IsSuccess[V, E any](input rop.Result[V, E]) bool {
	return input.IsSuccess()
}

func IsFailure[V, E any](input rop.Result[V, E]) bool {
	return input.IsFailure()
}

// FailIf fails with err when condition holds for input and succeeds with
// input otherwise.
func FailIf[V, E any](ctx context.Context, input V,
	condition func(ctx context.Context, in V) bool, err E) rop.Result[V, E] {

	if condition(ctx, input) {
		return rop.Fail[V](err)
	}
	return rop.Success[V, E](input)
}

// FailIfFunc is the partially applied form of FailIf.
func FailIfFunc[V, E any](condition func(ctx context.Context, in V) bool,
	err E) func(ctx context.Context, input V) rop.Result[V, E] {
	return func(ctx context.Context, input V) rop.Result[V, E] {
		return FailIf(ctx, input, condition, err)
	}
}

func FailIfEmpty[T, E any](ctx context.Context, input []T, err E) rop.Result[[]T, E] {
	return FailIf(ctx, input, func(_ context.Context, in []T) bool {
		return len(in) == 0
	}, err)
}

func FailIfNull[V, E any](ctx context.Context, input V, err E) rop.Result[V, E] {
	return FailIf(ctx, input, func(_ context.Context, in V) bool {
		return rop.IsNil(in)
	}, err)
}

func Map[V, E, N any](ctx context.Context,
	input rop.Result[V, E],
	onSuccess func(ctx context.Context, r V) N) rop.Result[N, E] {

	switch rop.MustKind(input) {
	case rop.KindSuccess:
		return rop.Success[N, E](onSuccess(ctx, input.Value()))
	default:
		return rop.FailFrom[V, N](input)
	}
}

func MapFailure[V, E, N any](ctx context.Context,
	input rop.Result[V, E],
	onFailure func(ctx context.Context, err E) N) rop.Result[V, N] {

	switch rop.MustKind(input) {
	case rop.KindFailure:
		return rop.Fail[V](onFailure(ctx, input.Err()))
	default:
		return rop.SuccessFrom[V, E, N](input)
	}
}

// Chain passes the value of a Success to onSuccess and returns its Result.
// A Failure is returned without calling onSuccess.
func Chain[V, E, N any](ctx context.Context,
	input rop.Result[V, E],
	onSuccess func(ctx context.Context, r V) rop.Result[N, E]) rop.Result[N, E] {

	switch rop.MustKind(input) {
	case rop.KindSuccess:
		return onSuccess(ctx, input.Value())
	default:
		return rop.FailFrom[V, N](input)
	}
}

// Catch passes the error of a Failure to onFailure so it can recover.
// A Success is returned without calling onFailure.
func Catch[V, E any](ctx context.Context,
	input rop.Result[V, E],
	onFailure func(ctx context.Context, err E) rop.Result[V, E]) rop.Result[V, E] {

	switch rop.MustKind(input) {
	case rop.KindFailure:
		return onFailure(ctx, input.Err())
	default:
		return input
	}
}

func Fold[V, E, Out any](ctx context.Context, input rop.Result[V, E],
	onSuccess func(ctx context.Context, r V) Out,
	onFailure func(ctx context.Context, err E) Out) Out {

	switch rop.MustKind(input) {
	case rop.KindSuccess:
		return onSuccess(ctx, input.Value())
	default:
		return onFailure(ctx, input.Err())
	}
}

// Invert turns a list of Results into a Result of a list. It folds left to
// right from an empty Success; the first Failure in argument order is
// returned and later inputs are not inspected.
func Invert[V, E any](ctx context.Context, inputs ...rop.Result[V, E]) rop.Result[[]V, E] {
	return lo.Reduce(inputs, func(acc rop.Result[[]V, E], next rop.Result[V, E], _ int) rop.Result[[]V, E] {
		return Chain(ctx, acc, func(ctx context.Context, values []V) rop.Result[[]V, E] {
			return Map(ctx, next, func(_ context.Context, v V) []V {
				// the accumulator is owned by the fold, so it grows in place
				return append(values, v)
			})
		})
	}, rop.Success[[]V, E]([]V{}))
}

func Tee[V, E any](ctx context.Context,
	input rop.Result[V, E],
	onSuccess func(ctx context.Context, r V)) rop.Result[V, E] {

	if rop.MustKind(input) == rop.KindSuccess {
		onSuccess(ctx, input.Value())
	}
	return input
}

func TeeFailure[V, E any](ctx context.Context,
	input rop.Result[V, E],
	onFailure func(ctx context.Context, err E)) rop.Result[V, E] {

	if rop.MustKind(input) == rop.KindFailure {
		onFailure(ctx, input.Err())
	}
	return input
}

// Try runs a (value, error) function on the value of a Success. Both the
// incoming failure and the returned error travel as an error.
func Try[V, N any](ctx context.Context, input rop.Result[V, error],
	onTryExecute func(ctx context.Context, r V) (N, error)) rop.Result[N, error] {

	return Chain(ctx, input, func(ctx context.Context, v V) rop.Result[N, error] {
		out, err := onTryExecute(ctx, v)
		if err != nil {
			return rop.Fail[N](err)
		}
		return rop.Success[N, error](out)
	})
}

// TryCatch wraps f so that a returned error or a panic becomes a Failure.
// Errors are surfaced as they were returned or panicked; other panic values
// are wrapped in rop.PanicError. The wrapper itself never panics.
func TryCatch[V, N any](f func(ctx context.Context, in V) (N, error)) func(ctx context.Context,
	input V) rop.Result[N, error] {
	return func(ctx context.Context, input V) (res rop.Result[N, error]) {
		defer func() {
			if r := recover(); r != nil {
				res = rop.Fail[N](rop.Recovered(r))
			}
		}()

		out, err := f(ctx, input)
		if err != nil {
			return rop.Fail[N](err)
		}
		return rop.Success[N, error](out)
	}
}

// TryCatchOr is TryCatch with every caught error replaced by substitute.
func TryCatchOr[V, N, E any](f func(ctx context.Context, in V) (N, error),
	substitute E) func(ctx context.Context, input V) rop.Result[N, E] {
	try := TryCatch(f)
	return func(ctx context.Context, input V) rop.Result[N, E] {
		return MapFailure(ctx, try(ctx, input), func(context.Context, error) E {
			return substitute
		})
	}
}
