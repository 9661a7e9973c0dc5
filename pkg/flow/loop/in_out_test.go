package loop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ctrlflow/pkg/flow"
)

func TestNext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	in := make(chan int, 1)
	in <- 5
	close(in)

	assert.Equal(t, flow.Continue[error](5), Next(ctx, in))
	assert.Equal(t, flow.Break[int](ErrClosed), Next(ctx, in))
}

func TestNext_CancelWinsOverReadyValue(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := make(chan int, 1)
	in <- 5

	next := Next(ctx, in)
	require.True(t, next.IsBreak())
	assert.ErrorIs(t, next.BreakValue().Value(), context.Canceled)
	assert.Len(t, in, 1)
}

func TestReceive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	in := make(chan string, 1)
	in <- "msg"
	close(in)

	assert.Equal(t, flow.Some("msg"), Receive(ctx, in))
	assert.Equal(t, flow.None[string](), Receive(ctx, in))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.True(t, Receive(cancelled, make(chan string)).IsNone())
}

func TestToChan_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	out := ToChanMany(ctx, []int{1, 2, 3})

	assert.Equal(t, 1, <-out)
	cancel()

	// the producer closes the channel after cancellation; at most one more
	// value can slip through a racing select
	count := 0
	for range out {
		count++
	}
	assert.LessOrEqual(t, count, 1)
}

func TestToChan_Single(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	got, err := Collect(ctx, ToChan(ctx, 42))

	require.NoError(t, err)
	assert.Equal(t, []int{42}, got)
}

func TestDrainRemainingTo(t *testing.T) {
	t.Parallel()

	in := make(chan int, 3)
	in <- 1
	in <- 2
	close(in)

	sum := 0
	n := DrainRemainingTo(context.Background(), in, func(_ context.Context, v int) { sum += v })

	assert.Equal(t, 2, n)
	assert.Equal(t, 3, sum)
}

func TestDrainRemaining_Disabled(t *testing.T) {
	t.Parallel()

	in := make(chan int, 1)
	in <- 1
	close(in)

	assert.Zero(t, DrainRemaining(WithProcessOptions(context.Background(), false), in))
	assert.Len(t, in, 1)
}

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, 7, GetMaxIterations(ctx, 7))
	assert.True(t, IsProcessRemainingEnabled(ctx, true))

	ctx = WithLoopOptions(WithProcessOptions(ctx, false), 3)
	assert.Equal(t, 3, GetMaxIterations(ctx, 7))
	assert.False(t, IsProcessRemainingEnabled(ctx, true))
}

func TestDrainRemaining_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	in := make(chan int, 1)
	in <- 1
	done := make(chan int, 1)

	go func() { done <- DrainRemaining(ctx, in) }()

	select {
	case n := <-done:
		assert.LessOrEqual(t, n, 1)
	case <-time.After(time.Second):
		t.Fatal("DrainRemaining still blocked after the context deadline")
	}
}
