package tryutils

// Some creates an Option that contains a value.
func Some[T any](t T) Option[T] {
	return Option[T]{
		item: t,
		ok:   true,
	}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPair builds an Option from a comma-ok pair, so functions returning
// (T, bool) can be passed straight through:
//
//	tryutils.FromPair(cache.Lookup(key))
func FromPair[T any](t T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(t)
}

// FromPtr returns Some(*p), or None when p is nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Option represents a value that may or may not be present.
// The zero Option is None.
type Option[T any] struct {
	item T
	ok   bool
}

// Option implements Optional. An Option is already in canonical form.
func (o Option[T]) Option() Option[T] {
	return o
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and whether it is present.
// If the Option is None, returns (zero value, false).
func (o Option[T]) Get() (T, bool) {
	return o.item, o.ok
}

// GetOrDefault returns the contained value if the Option is Some,
// otherwise returns t.
func (o Option[T]) GetOrDefault(t T) T {
	if !o.ok {
		return t
	}
	return o.item
}

// Raw returns the stored value without checking presence.
// For None this is the zero value of T.
func (o Option[T]) Raw() T {
	return o.item
}
