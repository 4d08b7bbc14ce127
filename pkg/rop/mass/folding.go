package mass

import (
	"context"

	"github.com/ib-77/rop3/pkg/rop"
	"github.com/ib-77/rop3/pkg/rop/core"
	"github.com/ib-77/rop3/pkg/rop/solo"
)

type FoldHandlers[V, E, Out any] struct {
	OnSuccess func(ctx context.Context, r V) Out
	OnFailure func(ctx context.Context, err E) Out
}

type FoldCancelHandlers[V, E, Out any] struct {
	// OnBreak turns a Result that could not be folded because the context
	// ended into a final value. When set and processing of remaining inputs
	// is enabled, every input still arriving after cancellation goes through it.
	OnBreak func(ctx context.Context, in rop.Result[V, E]) Out
	// OnFolded is called after a folded value has been delivered.
	OnFolded func(ctx context.Context, out Out)
}

// Folding reduces every Result from inputCh to a final value with handlers.
func Folding[V, E, Out any](ctx context.Context, inputCh <-chan rop.Result[V, E],
	handlers FoldHandlers[V, E, Out],
	cancelHandlers FoldCancelHandlers[V, E, Out]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				breakRemaining(ctx, inputCh, cancelHandlers.OnBreak, out)
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				folded := solo.Fold(ctx, in, handlers.OnSuccess, handlers.OnFailure)

				select {
				case <-ctx.Done():
					if cancelHandlers.OnBreak != nil && core.IsProcessRemainingEnabled(ctx, true) {
						out <- cancelHandlers.OnBreak(ctx, in)
					}
					breakRemaining(ctx, inputCh, cancelHandlers.OnBreak, out)
					return
				case out <- folded:
					if cancelHandlers.OnFolded != nil {
						cancelHandlers.OnFolded(ctx, folded)
					}
				}
			}
		}
	}()

	return out
}

func breakRemaining[V, E, Out any](ctx context.Context, inputCh <-chan rop.Result[V, E],
	onBreak func(ctx context.Context, in rop.Result[V, E]) Out, out chan<- Out) {

	if onBreak == nil || !core.IsProcessRemainingEnabled(ctx, true) {
		return
	}

	broken := 0
	for in := range inputCh {
		out <- onBreak(ctx, in)
		broken++
	}
	core.GetLogger(ctx).Debug("folded remaining inputs after cancellation", "count", broken)
}

// CancelRemaining builds locomotive handlers that, once the context ends,
// turn every unprocessed input into a Failure produced by toFailure, so that
// no input silently disappears from the pipeline.
func CancelRemaining[In, Out, E any](
	toFailure func(ctx context.Context, in rop.Result[In, E]) rop.Result[Out, E]) core.CancellationHandlers[In, Out, E] {

	return core.CancellationHandlers[In, Out, E]{
		OnCancelUnprocessed: func(ctx context.Context, in rop.Result[In, E], outCh chan<- rop.Result[Out, E]) {
			if core.IsProcessRemainingEnabled(ctx, true) {
				outCh <- toFailure(ctx, in)
			}
		},
		OnCancelProcessed: func(ctx context.Context, in rop.Result[In, E], processed rop.Result[Out, E],
			outCh chan<- rop.Result[Out, E]) {
			if core.IsProcessRemainingEnabled(ctx, true) {
				outCh <- processed
			}
		},
		OnCancel: func(ctx context.Context, inputCh <-chan rop.Result[In, E], outCh chan<- rop.Result[Out, E]) {
			if core.IsProcessRemainingEnabled(ctx, true) {
				for in := range inputCh {
					outCh <- toFailure(ctx, in)
				}
			}
		},
	}
}
