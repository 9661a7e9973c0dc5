package loop

import "context"

type optionKey string

const (
	processOptionKey optionKey = "process_options"
	loopOptionKey    optionKey = "loop_options"
)

type MaxLimitOption struct {
	Value int
}

type LoopOptions struct {
	MaxIterations MaxLimitOption
}

type ProcessOptions struct {
	ProcessRemaining bool
}

// WithProcessOptions controls whether a loop that stops early drains the
// rest of its input channel.
func WithProcessOptions(ctx context.Context, processRemaining bool) context.Context {
	return context.WithValue(ctx, processOptionKey, ProcessOptions{ProcessRemaining: processRemaining})
}

// WithLoopOptions caps the number of items a loop handles. Values <= 0 mean
// no limit.
func WithLoopOptions(ctx context.Context, maxIterations int) context.Context {
	return context.WithValue(ctx, loopOptionKey, LoopOptions{MaxLimitOption{Value: maxIterations}})
}

func GetMaxIterations(ctx context.Context, defaultMaxIterations int) int {
	options, ok := ctx.Value(loopOptionKey).(LoopOptions)
	if ok {
		return options.MaxIterations.Value
	}
	return defaultMaxIterations
}

func IsProcessRemainingEnabled(ctx context.Context, defaultProcessRemaining bool) bool {
	options, ok := ctx.Value(processOptionKey).(ProcessOptions)
	if ok {
		return options.ProcessRemaining
	}
	return defaultProcessRemaining
}
