package lite

import (
	"context"
	"sync"

	"github.com/ib-77/rop3/pkg/rop"
	"github.com/ib-77/rop3/pkg/rop/core"
	"github.com/ib-77/rop3/pkg/rop/mass"
)

// Stage turns one Result into a channel that yields at most one Result.
type Stage[In, Out, E any] func(ctx context.Context, input rop.Result[In, E]) <-chan rop.Result[Out, E]

func Run[V, E any](ctx context.Context, inputCh <-chan rop.Result[V, E],
	engine Stage[V, V, E], lines int) <-chan rop.Result[V, E] {
	return Turnout(ctx, inputCh, engine, lines)
}

// Turnout runs engine over inputCh on the given number of lines, or on the
// worker count carried by ctx when lines < 1. Output order is not preserved
// with more than one line.
func Turnout[In, Out, E any](ctx context.Context, inputCh <-chan rop.Result[In, E],
	engine Stage[In, Out, E], lines int) <-chan rop.Result[Out, E] {
	return TurnoutWithHandlers(ctx, inputCh, engine, core.CancellationHandlers[In, Out, E]{}, lines)
}

func TurnoutWithHandlers[In, Out, E any](ctx context.Context, inputCh <-chan rop.Result[In, E],
	engine Stage[In, Out, E], handlers core.CancellationHandlers[In, Out, E], lines int) <-chan rop.Result[Out, E] {

	out := make(chan rop.Result[Out, E])
	wg := &sync.WaitGroup{}

	workers := lines
	if workers < 1 {
		workers = core.GetWorkerMaxCount(ctx, 1)
	}

	for range workers {
		wg.Add(1)
		go core.Locomotive[In, Out, E](ctx, inputCh, out, engine, handlers, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Validate[V, E any](condition func(ctx context.Context, in V) bool, err E) Stage[V, V, E] {
	return func(ctx context.Context, input rop.Result[V, E]) <-chan rop.Result[V, E] {
		return mass.Validating(ctx, input, condition, err, nil)
	}
}

func Map[In, Out, E any](mapOnSuccess func(ctx context.Context, r In) Out) Stage[In, Out, E] {
	return func(ctx context.Context, input rop.Result[In, E]) <-chan rop.Result[Out, E] {
		return mass.Mapping(ctx, input, mapOnSuccess, nil)
	}
}

func MapFailure[V, E any](mapOnFailure func(ctx context.Context, err E) E) Stage[V, V, E] {
	return func(ctx context.Context, input rop.Result[V, E]) <-chan rop.Result[V, E] {
		return mass.MappingFailure(ctx, input, mapOnFailure, nil)
	}
}

func Chain[In, Out, E any](chainOnSuccess func(ctx context.Context, r In) rop.Result[Out, E]) Stage[In, Out, E] {
	return func(ctx context.Context, input rop.Result[In, E]) <-chan rop.Result[Out, E] {
		return mass.Chaining(ctx, input, chainOnSuccess, nil)
	}
}

func Catch[V, E any](catchOnFailure func(ctx context.Context, err E) rop.Result[V, E]) Stage[V, V, E] {
	return func(ctx context.Context, input rop.Result[V, E]) <-chan rop.Result[V, E] {
		return mass.Catching(ctx, input, catchOnFailure, nil)
	}
}

func Tee[V, E any](sideEffect func(ctx context.Context, r V)) Stage[V, V, E] {
	return func(ctx context.Context, input rop.Result[V, E]) <-chan rop.Result[V, E] {
		return mass.Teeing(ctx, input, sideEffect, nil)
	}
}

func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) Stage[In, Out, error] {
	return func(ctx context.Context, input rop.Result[In, error]) <-chan rop.Result[Out, error] {
		return mass.Trying(ctx, input, onTryExecute, nil)
	}
}

func Fold[V, E, Out any](ctx context.Context, input <-chan rop.Result[V, E],
	handlers mass.FoldHandlers[V, E, Out]) <-chan Out {
	return mass.Folding(ctx, input, handlers, mass.FoldCancelHandlers[V, E, Out]{})
}
