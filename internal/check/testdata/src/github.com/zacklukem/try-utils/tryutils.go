// Package tryutils is a minimal copy of the directive API for analyzer tests.
package tryutils

type Option[T any] struct {
	item T
	ok   bool
}

func Some[T any](t T) Option[T] { return Option[T]{item: t, ok: true} }

func None[T any]() Option[T] { return Option[T]{} }

func (o Option[T]) Option() Option[T] { return o }

func (o Option[T]) Get() (T, bool) { return o.item, o.ok }

// Return is a method here too, to check methods are not reported.
func (o Option[T]) Return() T { return o.item }

type Optional[T any] interface {
	Option() Option[T]
}

func Get[T any](v Optional[T]) (T, bool) { return v.Option().Get() }

func Return[T any](v Optional[T], fallback ...any) T { panic("not expanded") }

func Continue[T any](v Optional[T], label ...string) T { panic("not expanded") }

func Break[T any](v Optional[T], label ...string) T { panic("not expanded") }

func selfTest() {
	_ = Return[int](Some(1)) // calls inside the package are allowed
}
