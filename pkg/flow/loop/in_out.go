package loop

import (
	"context"
	"errors"

	"github.com/ib-77/ctrlflow/pkg/flow"
)

var ErrClosed = errors.New("channel closed")

func ToChanFromArgs[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func ToChan[T any](ctx context.Context, value T) <-chan T {
	return ToChanFromArgs(ctx, value)
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	return ToChanFromArgs(ctx, values...)
}

// Receive waits for the next value on ch. The result is absent when ctx is
// done or ch is closed. Cancellation wins over a ready value.
func Receive[T any](ctx context.Context, ch <-chan T) flow.Option[T] {
	if ctx.Err() != nil {
		return flow.None[T]()
	}

	select {
	case <-ctx.Done():
		return flow.None[T]()
	case v, ok := <-ch:
		return flow.FromPair(v, ok)
	}
}

// Next is Receive that keeps the reason for stopping: it breaks with
// ctx.Err() on cancellation and with ErrClosed when ch is closed.
func Next[T any](ctx context.Context, ch <-chan T) flow.ControlFlow[error, T] {
	if err := ctx.Err(); err != nil {
		return flow.Break[T](err)
	}

	select {
	case <-ctx.Done():
		return flow.Break[T](ctx.Err())
	case v, ok := <-ch:
		return flow.BreakOr(flow.FromPair(v, ok), ErrClosed)
	}
}
