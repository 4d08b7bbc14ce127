package core

import (
	"context"
	"sync"

	"github.com/ib-77/rop3/pkg/rop"
)

type CancellationHandlers[In, Out, E any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan rop.Result[In, E], outCh chan<- rop.Result[Out, E])
	OnCancelUnprocessed func(ctx context.Context, unprocessed rop.Result[In, E], outCh chan<- rop.Result[Out, E])
	OnCancelProcessed   func(ctx context.Context, in rop.Result[In, E], processed rop.Result[Out, E], outCh chan<- rop.Result[Out, E])
}

// Locomotive pulls Results from inputCh, runs engine on each one and pushes
// the outcome to outCh until inputCh is closed or ctx is done. When the
// context carries a rate limit the locomotive waits for a token before each
// engine run.
func Locomotive[In, Out, E any](ctx context.Context, inputCh <-chan rop.Result[In, E], outCh chan<- rop.Result[Out, E],
	engine func(ctx context.Context, input rop.Result[In, E]) <-chan rop.Result[Out, E],
	handlers CancellationHandlers[In, Out, E],
	onSuccess func(ctx context.Context, in rop.Result[Out, E]), wg *sync.WaitGroup) {
	defer wg.Done()

	logger := GetLogger(ctx)
	limiter, limited := GetRateLimiter(ctx)

	cancelled := func(in *rop.Result[In, E]) {
		if in != nil && handlers.OnCancelUnprocessed != nil {
			handlers.OnCancelUnprocessed(ctx, *in, outCh)
		}
		if handlers.OnCancel != nil {
			handlers.OnCancel(ctx, inputCh, outCh)
		}
	}

	for {
		select {
		case <-ctx.Done():
			logger.Debug("locomotive stopped", "reason", ctx.Err())
			cancelled(nil)
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			if limited {
				if err := limiter.Wait(ctx); err != nil {
					if rop.IsCancellationError(err) {
						logger.Debug("locomotive stopped while waiting for rate limit", "id", in.Id(), "error", err)
					} else {
						// the next token would arrive after the context deadline
						logger.Warn("rate limit wait failed", "id", in.Id(), "error", err)
					}
					cancelled(&in)
					return
				}
			}

			select {
			case <-ctx.Done():
				logger.Debug("locomotive stopped before processing", "id", in.Id())
				cancelled(&in)
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					// an engine closes empty only when the context has ended
					logger.Debug("engine closed without a result", "id", in.Id())
					cancelled(&in)
					return
				}

				select {
				case <-ctx.Done():
					logger.Debug("locomotive stopped after processing", "id", in.Id())
					if handlers.OnCancelProcessed != nil {
						handlers.OnCancelProcessed(ctx, in, pr, outCh)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputCh, outCh)
					}
					return
				case outCh <- pr:
					if onSuccess != nil {
						onSuccess(ctx, pr)
					}
				}
			}
		}
	}
}
