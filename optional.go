package tryutils

// Optional is implemented by every value the directives accept: anything
// that can state whether it is Some(payload) or None.
//
// Implementations must be total and side-effect free. Third-party types
// participate by adding the method:
//
//	func (c Cell) Option() tryutils.Option[string] {
//		if c.Empty {
//			return tryutils.None[string]()
//		}
//		return tryutils.Some(c.Text)
//	}
type Optional[T any] interface {
	Option() Option[T]
}

// Get normalizes v and returns its payload and whether it is present.
// Expanded directives branch on the second result.
func Get[T any](v Optional[T]) (T, bool) {
	return v.Option().Get()
}
