package flow

// Option holds either a single value or nothing.
type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPair adapts the comma-ok form, e.g. v, ok := <-ch or v, ok := m[k].
func FromPair[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Value returns the value, or the zero value when absent.
func (o Option[T]) Value() T {
	return o.value
}

func (o Option[T]) Or(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}
