package loop

import (
	"context"
	"errors"

	"github.com/ib-77/ctrlflow/pkg/flow"
)

var (
	ErrStopped      = errors.New("loop stopped")
	ErrLimitReached = errors.New("loop iteration limit reached")
)

// Body handles one item. Returning a break stops the loop with that error.
type Body[T any] func(ctx context.Context, item T) flow.ControlFlow[error, struct{}]

// Proceed is the continue value a Body returns to go on with the next item.
func Proceed() flow.ControlFlow[error, struct{}] {
	return flow.Continue[error](struct{}{})
}

// Stop is the break value a Body returns to end the loop. A nil err ends it
// with ErrStopped.
func Stop(err error) flow.ControlFlow[error, struct{}] {
	return flow.Break[struct{}](err)
}

// ForEach runs body for every item received from inputCh until the channel
// is closed, ctx is done, body breaks or the iteration limit is reached.
// A closed channel ends the loop with a nil error. When body breaks or the
// limit is hit, the rest of inputCh is drained if remaining processing is
// enabled. Cancellation returns ctx.Err() without draining.
func ForEach[T any](ctx context.Context, inputCh <-chan T, body Body[T]) error {
	limit := GetMaxIterations(ctx, 0)

	for handled := 0; ; handled++ {
		if limit > 0 && handled >= limit {
			return stop(ctx, inputCh, ErrLimitReached)
		}

		next := Next(ctx, inputCh)
		if next.IsBreak() {
			err := next.BreakValue().Value()
			if errors.Is(err, ErrClosed) {
				return nil
			}
			if flow.IsCancellationError(err) {
				return err
			}
			return stop(ctx, inputCh, err)
		}

		res := body(ctx, next.ContinueValue().Value())
		if res.IsBreak() {
			err := res.BreakValue().Value()
			if err == nil {
				err = ErrStopped
			}
			return stop(ctx, inputCh, err)
		}
	}
}

// Collect gathers every item of inputCh. On cancellation it returns the
// items received so far along with the context error.
func Collect[T any](ctx context.Context, inputCh <-chan T) ([]T, error) {
	res := make([]T, 0)
	err := ForEach(ctx, inputCh, func(_ context.Context, item T) flow.ControlFlow[error, struct{}] {
		res = append(res, item)
		return Proceed()
	})
	return res, err
}

func stop[T any](ctx context.Context, inputCh <-chan T, err error) error {
	DrainRemaining(ctx, inputCh)
	return err
}
