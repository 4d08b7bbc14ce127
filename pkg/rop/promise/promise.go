package promise

import (
	"context"
	"errors"
	"sync"

	"github.com/abevier/tsk/futures"
	"github.com/ib-77/rop3/pkg/rop"
)

var (
	// ErrNilReject is the reason recorded when Reject is called with a nil error
	ErrNilReject = errors.New("promise rejected with nil error")
)

// Promise is a futures.Future whose settlement can be observed through Done
// and whose Await reports why the context ended. The first settlement wins
// and all later ones are silently ignored.
type Promise[T any] struct {
	future  *futures.Future[T]
	settled chan struct{}
	once    sync.Once
}

// New creates an unsettled Promise. It must be settled by calling Resolve or Reject.
func New[T any]() *Promise[T] {
	return &Promise[T]{
		future:  futures.New[T](),
		settled: make(chan struct{}),
	}
}

// Go runs fn on a new goroutine and settles the returned Promise with its
// outcome. A panic in fn rejects the Promise: an error panic value is used as
// is, any other value is wrapped in rop.PanicError.
func Go[T any](fn func() (T, error)) *Promise[T] {
	p := New[T]()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.Reject(rop.Recovered(r))
			}
		}()

		v, err := fn()
		if err != nil {
			p.Reject(err)
			return
		}
		p.Resolve(v)
	}()

	return p
}

func Resolved[T any](value T) *Promise[T] {
	p := New[T]()
	p.Resolve(value)
	return p
}

func Rejected[T any](err error) *Promise[T] {
	p := New[T]()
	p.Reject(err)
	return p
}

// Resolve settles the Promise with value. Ignored if already settled.
func (p *Promise[T]) Resolve(value T) {
	p.future.Complete(value)
	p.markSettled()
}

// Reject settles the Promise with err. Ignored if already settled.
func (p *Promise[T]) Reject(err error) {
	if err == nil {
		err = ErrNilReject
	}
	p.future.Fail(err)
	p.markSettled()
}

// markSettled runs after the future is completed, so a closed settled
// channel always means Get returns without blocking.
func (p *Promise[T]) markSettled() {
	p.once.Do(func() { close(p.settled) })
}

// Await blocks until the Promise settles or ctx is done, in which case the
// context error is returned and the Promise is left untouched.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	v, err := p.future.Get(ctx)
	if err == nil || ctx.Err() == nil {
		return v, err
	}

	select {
	case <-p.settled:
		// both were ready; the settled outcome wins
		return p.future.Get(context.Background())
	default:
		return v, ctx.Err()
	}
}

// Done is closed once the Promise has settled.
func (p *Promise[T]) Done() <-chan struct{} {
	return p.settled
}

func (p *Promise[T]) IsSettled() bool {
	select {
	case <-p.settled:
		return true
	default:
		return false
	}
}
