package flow

// ControlFlow tells a loop whether to go on with a C or stop with a B.
// The zero value continues with the zero C.
type ControlFlow[B, C any] struct {
	brk  B
	cont C
	stop bool
}

func Continue[B, C any](c C) ControlFlow[B, C] {
	return ControlFlow[B, C]{cont: c}
}

func Break[C, B any](b B) ControlFlow[B, C] {
	return ControlFlow[B, C]{brk: b, stop: true}
}

func (cf ControlFlow[B, C]) IsContinue() bool {
	return !cf.stop
}

func (cf ControlFlow[B, C]) IsBreak() bool {
	return cf.stop
}

// ContinueValue returns the continue payload, absent for a break.
func (cf ControlFlow[B, C]) ContinueValue() Option[C] {
	return FromPair(cf.cont, !cf.stop)
}

// BreakValue returns the break payload, absent for a continue.
func (cf ControlFlow[B, C]) BreakValue() Option[B] {
	return FromPair(cf.brk, cf.stop)
}

func MapContinue[B, C, Out any](cf ControlFlow[B, C], onContinue func(c C) Out) ControlFlow[B, Out] {
	if cf.stop {
		return Break[Out](cf.brk)
	}
	return Continue[B](onContinue(cf.cont))
}

func MapBreak[B, C, Out any](cf ControlFlow[B, C], onBreak func(b B) Out) ControlFlow[Out, C] {
	if cf.stop {
		return Break[C](onBreak(cf.brk))
	}
	return Continue[Out](cf.cont)
}

// Finally collapses both arms into a single value.
func Finally[B, C, Out any](cf ControlFlow[B, C],
	onContinue func(c C) Out,
	onBreak func(b B) Out) Out {

	if cf.stop {
		return onBreak(cf.brk)
	}
	return onContinue(cf.cont)
}
