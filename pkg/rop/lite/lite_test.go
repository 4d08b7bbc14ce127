package lite

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ib-77/rop3/pkg/rop"
	"github.com/ib-77/rop3/pkg/rop/core"
	"github.com/ib-77/rop3/pkg/rop/mass"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errOne = errors.New("value should not be 1")

func foldToInt() mass.FoldHandlers[int, error, int] {
	return mass.FoldHandlers[int, error, int]{
		OnSuccess: func(ctx context.Context, in int) int { return in },
		OnFailure: func(ctx context.Context, err error) int { return -1 },
	}
}

func TestPipeline(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	source := []int{10, 5, 1, 20, 2}

	ch := Fold(ctx,
		Turnout(ctx,
			Run(ctx,
				core.ToChanManyResults[int, error](ctx, source),
				Validate(func(ctx context.Context, in int) bool { return in == 1 }, errOne),
				3),
			Chain(func(ctx context.Context, r int) rop.Result[int, error] {
				return rop.Success[int, error](r + 1000)
			}),
			2),
		foldToInt())

	got := core.FromChanMany(ctx, ch)
	sort.Ints(got)
	assert.Equal(t, []int{-1, 1002, 1005, 1010, 1020}, got)
}

func TestRun_SingleLineKeepsOrder(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out := Run(ctx, core.ToChanManyResults[int, error](ctx, []int{1, 2, 3, 4, 5}),
		Map[int, int, error](func(ctx context.Context, v int) int { return v * 2 }), 1)

	var values []int
	for r := range out {
		require.True(t, r.IsSuccess())
		values = append(values, r.Value())
	}
	assert.Equal(t, []int{2, 4, 6, 8, 10}, values)
}

func TestRun_MultipleLines(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	input := make([]int, 100)
	for i := range input {
		input[i] = i + 1
	}

	slow := Map[int, int, error](func(ctx context.Context, v int) int {
		time.Sleep(10 * time.Millisecond)
		return v * 2
	})

	start := time.Now()
	results := core.FromChanMany(ctx, Run(ctx, core.ToChanManyResults[int, error](ctx, input), slow, 5))

	assert.Len(t, results, len(input))
	assert.Less(t, time.Since(start), time.Second)
}

func TestTurnout_WorkerOptionFromContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ctx = core.WithWorkerOptions(ctx, 4)

	var active, peak int32
	stage := Tee[int, error](func(ctx context.Context, v int) {
		n := atomic.AddInt32(&active, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		atomic.AddInt32(&active, -1)
	})

	out := core.FromChanMany(ctx, Run(ctx, core.ToChanManyResults[int, error](ctx, []int{1, 2, 3, 4, 5, 6, 7, 8}), stage, 0))
	assert.Len(t, out, 8)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(4))
	assert.Greater(t, atomic.LoadInt32(&peak), int32(1))
}

func TestFailuresPassThroughStages(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	boom := errors.New("boom")
	var mapped int32
	in := core.ToChanResults(ctx, rop.Fail[int](boom), rop.Success[int, error](2))

	out := core.FromChanMany(ctx, Turnout(ctx, in,
		Map[int, string, error](func(ctx context.Context, v int) string {
			atomic.AddInt32(&mapped, 1)
			return strconv.Itoa(v)
		}), 1))

	require.Len(t, out, 2)
	assert.ErrorIs(t, out[0].Err(), boom)
	assert.Equal(t, "2", out[1].Value())
	assert.Equal(t, int32(1), atomic.LoadInt32(&mapped))
}

func TestMapFailureAndCatch(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	in := core.ToChanResults(ctx, rop.Fail[int]("a"), rop.Fail[int]("skip"), rop.Success[int, string](3))

	wrapped := Turnout(ctx, in, MapFailure[int](func(ctx context.Context, e string) string { return "wrapped " + e }), 1)
	recovered := Turnout(ctx, wrapped, Catch(func(ctx context.Context, e string) rop.Result[int, string] {
		if e == "wrapped skip" {
			return rop.Fail[int](e)
		}
		return rop.Success[int, string](0)
	}), 1)

	out := core.FromChanMany(ctx, recovered)
	require.Len(t, out, 3)
	assert.Equal(t, 0, out[0].Value())
	assert.Equal(t, "wrapped skip", out[1].Err())
	assert.Equal(t, 3, out[2].Value())
}

func TestTry(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out := core.FromChanMany(ctx, Turnout(ctx,
		core.ToChanManyResults[string, error](ctx, []string{"1", "bad"}),
		Try(func(ctx context.Context, s string) (int, error) { return strconv.Atoi(s) }), 1))

	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].Value())
	assert.True(t, out[1].IsFailure())
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	ctx = core.WithRateLimit(ctx, core.Every(20*time.Millisecond), 1)

	start := time.Now()
	out := core.FromChanMany(ctx, Run(ctx, core.ToChanManyResults[int, error](ctx, []int{1, 2, 3, 4, 5}),
		Map[int, int, error](func(ctx context.Context, v int) int { return v }), 5))

	assert.Len(t, out, 5)
	// the first token is available immediately, the other four are spaced
	assert.GreaterOrEqual(t, time.Since(start), 70*time.Millisecond)
}

func TestCancelRemaining(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancelled := errors.New("cancelled")

	input := make(chan rop.Result[int, error])
	go func() {
		defer close(input)
		for i := range 5 {
			input <- rop.Success[int, error](i)
		}
	}()

	block := make(chan struct{})
	stage := Map[int, int, error](func(ctx context.Context, v int) int {
		<-block
		return v
	})

	out := TurnoutWithHandlers(ctx, input, stage,
		mass.CancelRemaining(func(ctx context.Context, in rop.Result[int, error]) rop.Result[int, error] {
			return rop.Fail[int](cancelled)
		}), 1)

	time.Sleep(20 * time.Millisecond)
	cancel()
	time.Sleep(10 * time.Millisecond)
	close(block)

	var results []rop.Result[int, error]
	for r := range out {
		results = append(results, r)
	}

	require.Len(t, results, 5)
	for _, r := range results {
		assert.ErrorIs(t, r.Err(), cancelled)
	}
}
