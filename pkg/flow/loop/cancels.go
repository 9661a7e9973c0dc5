package loop

import "context"

// DrainRemaining consumes what is left on inputCh so its producer can
// finish. It does nothing when remaining processing is disabled and stops
// as soon as ctx is done.
func DrainRemaining[T any](ctx context.Context, inputCh <-chan T) int {
	return DrainRemainingTo(ctx, inputCh, nil)
}

// DrainRemainingTo is DrainRemaining that hands every drained item to
// onItem. It returns the number of drained items.
func DrainRemainingTo[T any](ctx context.Context, inputCh <-chan T,
	onItem func(ctx context.Context, in T)) int {

	if !IsProcessRemainingEnabled(ctx, true) {
		return 0
	}

	drained := 0
	for ctx.Err() == nil {
		select {
		case <-ctx.Done():
			return drained
		case in, ok := <-inputCh:
			if !ok {
				return drained
			}
			if onItem != nil {
				onItem(ctx, in)
			}
			drained++
		}
	}
	return drained
}
