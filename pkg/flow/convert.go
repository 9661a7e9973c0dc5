package flow

// BreakOr continues with the value if present, otherwise breaks with b.
func BreakOr[T, B any](o Option[T], b B) ControlFlow[B, T] {
	if v, ok := o.Get(); ok {
		return Continue[B](v)
	}
	return Break[T](b)
}

// BreakOrElse continues with the value if present, otherwise breaks with
// the result of onNone. onNone is not called when the value is present.
func BreakOrElse[T, B any](o Option[T], onNone func() B) ControlFlow[B, T] {
	if v, ok := o.Get(); ok {
		return Continue[B](v)
	}
	return Break[T](onNone())
}

// BreakOrDefault continues with the value if present, otherwise breaks with
// the zero B.
func BreakOrDefault[B, T any](o Option[T]) ControlFlow[B, T] {
	var zero B
	return BreakOr(o, zero)
}

// ContinueOr breaks with the value if present, otherwise continues with c.
func ContinueOr[T, C any](o Option[T], c C) ControlFlow[T, C] {
	if v, ok := o.Get(); ok {
		return Break[C](v)
	}
	return Continue[T](c)
}

// ContinueOrElse breaks with the value if present, otherwise continues with
// the result of onNone. onNone is not called when the value is present.
func ContinueOrElse[T, C any](o Option[T], onNone func() C) ControlFlow[T, C] {
	if v, ok := o.Get(); ok {
		return Break[C](v)
	}
	return Continue[T](onNone())
}

// ContinueOrDefault breaks with the value if present, otherwise continues
// with the zero C.
func ContinueOrDefault[C, T any](o Option[T]) ControlFlow[T, C] {
	var zero C
	return ContinueOr(o, zero)
}

// OkOr succeeds with the value if present, otherwise fails with err.
func OkOr[T any](o Option[T], err error) Result[T] {
	if v, ok := o.Get(); ok {
		return Success(v)
	}
	return Fail[T](err)
}

func OkOrElse[T any](o Option[T], onNone func() error) Result[T] {
	if v, ok := o.Get(); ok {
		return Success(v)
	}
	return Fail[T](onNone())
}

// FromResult continues with a successful value and breaks with the error of
// a failed or cancelled result.
func FromResult[T any](r Result[T]) ControlFlow[error, T] {
	if r.IsSuccess() {
		return Continue[error](r.Result())
	}
	return Break[T](r.Err())
}
