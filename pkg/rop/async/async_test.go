package async

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ib-77/rop3/pkg/rop"
	"github.com/ib-77/rop3/pkg/rop/promise"
	"github.com/stretchr/testify/require"
)

func await[T any](t *testing.T, p *promise.Promise[T]) T {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	v, err := p.Await(ctx)
	require.NoError(t, err)
	return v
}

func later[T any](d time.Duration, v T) *promise.Promise[T] {
	return promise.Go(func() (T, error) {
		time.Sleep(d)
		return v, nil
	})
}

func TestMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := await(t, Map(ctx, Succeed[string, error]("hi"), func(_ context.Context, s string) *promise.Promise[string] {
		return later(5*time.Millisecond, strings.ToUpper(s))
	}))
	require.True(t, out.IsSuccess())
	require.Equal(t, "HI", out.Value())
}

func TestMap_ShortCircuit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var calls int32
	in := rop.Fail[string]("boom")
	out := await(t, Map(ctx, Of(in), func(_ context.Context, s string) *promise.Promise[int] {
		atomic.AddInt32(&calls, 1)
		return promise.Resolved(len(s))
	}))
	require.True(t, out.IsFailure())
	require.Equal(t, "boom", out.Err())
	require.Equal(t, in.Id(), out.Id())
	require.Zero(t, atomic.LoadInt32(&calls))
}

func TestMap_CallbackRejects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	boom := errors.New("boom")
	_, err := Map(ctx, Succeed[int, string](1), func(context.Context, int) *promise.Promise[int] {
		return promise.Rejected[int](boom)
	}).Await(ctx)
	require.ErrorIs(t, err, boom)
}

func TestMap_InputRejects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	boom := errors.New("boom")
	_, err := Map(ctx, promise.Rejected[rop.Result[int, string]](boom), func(context.Context, int) *promise.Promise[int] {
		return promise.Resolved(0)
	}).Await(ctx)
	require.ErrorIs(t, err, boom)
}

func TestMapFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := await(t, MapFailure(ctx, Fail[int]("bad"), func(_ context.Context, e string) *promise.Promise[error] {
		return promise.Resolved(fmt.Errorf("mapped: %s", e))
	}))
	require.EqualError(t, out.Err(), "mapped: bad")

	passed := await(t, MapFailure(ctx, Succeed[int, string](3), func(context.Context, string) *promise.Promise[error] {
		panic("must not be called")
	}))
	require.Equal(t, 3, passed.Value())
}

func TestChain(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	half := func(_ context.Context, v int) *promise.Promise[rop.Result[int, string]] {
		if v%2 != 0 {
			return Fail[int]("odd")
		}
		return later(time.Millisecond, rop.Success[int, string](v/2))
	}

	require.Equal(t, 4, await(t, Chain(ctx, Succeed[int, string](8), half)).Value())
	require.Equal(t, "odd", await(t, Chain(ctx, Succeed[int, string](7), half)).Err())
	require.Equal(t, "first", await(t, Chain(ctx, Fail[int]("first"), half)).Err())
}

func TestCatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fallback := func(_ context.Context, e string) *promise.Promise[rop.Result[int, string]] {
		return Succeed[int, string](len(e))
	}

	require.Equal(t, 4, await(t, Catch(ctx, Fail[int]("oops"), fallback)).Value())
	require.Equal(t, 9, await(t, Catch(ctx, Succeed[int, string](9), fallback)).Value())
}

func TestFold(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onSuccess := func(_ context.Context, v string) *promise.Promise[string] { return promise.Resolved("ok:" + v) }
	onFailure := func(_ context.Context, e string) *promise.Promise[string] { return later(time.Millisecond, "err:"+e) }

	require.Equal(t, "ok:hi", await(t, Fold(ctx, Succeed[string, string]("hi"), onSuccess, onFailure)))
	require.Equal(t, "err:bad", await(t, Fold(ctx, Fail[string]("bad"), onSuccess, onFailure)))
}

func TestInvert(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	all := await(t, Invert(ctx,
		later(6*time.Millisecond, rop.Success[string, string]("a")),
		later(2*time.Millisecond, rop.Success[string, string]("b")),
		Succeed[string, string]("c")))
	require.True(t, all.IsSuccess())
	require.Equal(t, []string{"a", "b", "c"}, all.Value())

	first := await(t, Invert(ctx,
		Succeed[string, string]("a"),
		later(5*time.Millisecond, rop.Fail[string]("err")),
		Fail[string]("quicker")))
	require.True(t, first.IsFailure())
	require.Equal(t, "err", first.Err())

	empty := await(t, Invert[int, string](ctx))
	require.Equal(t, []int{}, empty.Value())
}

func TestInvert_StopsAwaitingAfterFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// never settles; Invert must not wait for it
	pending := promise.New[rop.Result[int, string]]()
	out := await(t, Invert(ctx, Fail[int]("stop"), pending))
	require.Equal(t, "stop", out.Err())
}

func TestFromPromise(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := await(t, FromPromise(ctx, promise.Resolved(5)))
	require.True(t, ok.IsSuccess())
	require.Equal(t, 5, ok.Value())

	boom := errors.New("boom")
	failed := await(t, FromPromise(ctx, promise.Rejected[int](boom)))
	require.True(t, failed.IsFailure())
	require.ErrorIs(t, failed.Err(), boom)
}

func TestFromPromise_ContextEnds(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	out := await(t, FromPromise(ctx, promise.New[int]()))
	require.ErrorIs(t, out.Err(), context.DeadlineExceeded)
}

func TestToPromise(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	v, err := ToPromise(ctx, rop.Success[int, string](5)).Await(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, v)

	_, err = ToPromise(ctx, rop.Fail[int]("boom")).Await(ctx)
	var reason *rop.ReasonError
	require.ErrorAs(t, err, &reason)
	require.Equal(t, "boom", reason.Reason)

	boom := errors.New("boom")
	_, err = ToPromise(ctx, rop.Fail[int](boom)).Await(ctx)
	require.Same(t, boom, err)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	boom := errors.New("boom")
	back := await(t, FromPromise(ctx, ToPromise(ctx, rop.Fail[int](boom))))
	require.Same(t, boom, back.Err())

	v, err := Await(ctx, Succeed[int, error](3))
	require.NoError(t, err)
	require.Equal(t, 3, v)

	_, err = Await(ctx, Fail[int](boom))
	require.ErrorIs(t, err, boom)
}

func TestTryCatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	upper := TryCatch(func(_ context.Context, s string) *promise.Promise[string] {
		return later(time.Millisecond, strings.ToUpper(s))
	})
	require.Equal(t, "HELLO", await(t, upper(ctx, "hello")).Value())

	boom := errors.New("x")
	rejecting := TryCatch(func(context.Context, string) *promise.Promise[string] {
		return promise.Rejected[string](boom)
	})
	require.Same(t, boom, await(t, rejecting(ctx, "in")).Err())

	panicking := TryCatch(func(context.Context, string) *promise.Promise[string] {
		panic(boom)
	})
	require.Same(t, boom, await(t, panicking(ctx, "in")).Err())
}

func TestTryCatchOr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	lookup := TryCatchOr(func(_ context.Context, key string) *promise.Promise[int] {
		switch key {
		case "known":
			return later(time.Millisecond, 1)
		case "panics":
			panic("lookup failed")
		default:
			return promise.Rejected[int](errors.New("missing " + key))
		}
	}, "not found")

	found := await(t, lookup(ctx, "known"))
	require.True(t, found.IsSuccess())
	require.Equal(t, 1, found.Value())

	missing := await(t, lookup(ctx, "other"))
	require.True(t, missing.IsFailure())
	require.Equal(t, "not found", missing.Err())

	require.Equal(t, "not found", await(t, lookup(ctx, "panics")).Err())
}

func TestUnsupportedKindRejects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	zero := Of(rop.Result[int, string]{})

	_, err := Map(ctx, zero, func(context.Context, int) *promise.Promise[int] {
		return promise.Resolved(0)
	}).Await(ctx)
	require.ErrorIs(t, err, rop.ErrUnsupportedKind)

	_, err = Fold(ctx, zero,
		func(context.Context, int) *promise.Promise[int] { return promise.Resolved(1) },
		func(context.Context, string) *promise.Promise[int] { return promise.Resolved(2) },
	).Await(ctx)
	require.ErrorIs(t, err, rop.ErrUnsupportedKind)

	_, err = Invert(ctx, zero).Await(ctx)
	require.ErrorIs(t, err, rop.ErrUnsupportedKind)

	_, err = ToPromise(ctx, rop.Result[int, string]{}).Await(ctx)
	require.ErrorIs(t, err, rop.ErrUnsupportedKind)
}
