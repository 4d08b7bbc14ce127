package bridge

import (
	"github.com/ib-77/rop3/pkg/rop"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// FromTuple builds a Failure when err is not nil and a Success otherwise.
func FromTuple[V any](v V, err error) rop.Result[V, error] {
	if err != nil {
		return rop.Fail[V](err)
	}
	return rop.Success[V, error](v)
}

// ToTuple is the inverse of FromTuple. A Failure yields the zero value of V.
func ToTuple[V any](r rop.Result[V, error]) (V, error) {
	switch rop.MustKind(r) {
	case rop.KindSuccess:
		return r.Value(), nil
	default:
		var zero V
		return zero, r.Err()
	}
}

func Pair[V any](r rop.Result[V, error]) lo.Tuple2[V, error] {
	return lo.T2(ToTuple(r))
}

func ToMo[V any](r rop.Result[V, error]) mo.Result[V] {
	switch rop.MustKind(r) {
	case rop.KindSuccess:
		return mo.Ok(r.Value())
	default:
		return mo.Err[V](r.Err())
	}
}

func FromMo[V any](m mo.Result[V]) rop.Result[V, error] {
	return FromTuple(m.Get())
}

// ToMoEither puts the failure on the left and the value on the right.
func ToMoEither[V, E any](r rop.Result[V, E]) mo.Either[E, V] {
	switch rop.MustKind(r) {
	case rop.KindSuccess:
		return mo.Right[E, V](r.Value())
	default:
		return mo.Left[E, V](r.Err())
	}
}

func FromMoEither[V, E any](e mo.Either[E, V]) rop.Result[V, E] {
	if e.IsLeft() {
		return rop.Fail[V](e.MustLeft())
	}
	return rop.Success[V, E](e.MustRight())
}

// ToMoOption keeps the value of a Success and drops the error of a Failure.
func ToMoOption[V, E any](r rop.Result[V, E]) mo.Option[V] {
	switch rop.MustKind(r) {
	case rop.KindSuccess:
		return mo.Some(r.Value())
	default:
		return mo.None[V]()
	}
}

// FromOutcome rebuilds a Result from any value that reports its own outcome.
// An outcome that is neither a success nor a failure panics with
// rop.UnsupportedKindError.
func FromOutcome[V, E any](o rop.WithError[V, E]) rop.Result[V, E] {
	switch {
	case o.IsSuccess():
		return rop.Success[V, E](o.Value())
	case o.IsFailure():
		return rop.Fail[V](o.Err())
	default:
		panic(&rop.UnsupportedKindError{})
	}
}
