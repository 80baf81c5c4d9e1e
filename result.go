package tryutils

import "errors"

// ErrMissingDetail is the failure detail of a Result built with Err(nil).
var ErrMissingDetail = errors.New("tryutils: failed result without error detail")

// Result carries either a success payload or a failure detail.
type Result[T any] struct {
	value T
	err   error
}

// Ok creates a successful Result.
func Ok[T any](t T) Result[T] {
	return Result[T]{value: t}
}

// Err creates a failed Result. A nil err is replaced by ErrMissingDetail
// so the Result is still a failure.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrMissingDetail
	}
	return Result[T]{err: err}
}

// Of wraps a Go (value, error) return:
//
//	tryutils.Of(strconv.Atoi(s))
//
// A non-nil err makes the Result a failure regardless of t.
func Of[T any](t T, err error) Result[T] {
	if err != nil {
		return Result[T]{err: err}
	}
	return Ok(t)
}

// Option implements Optional. The failure detail is dropped.
func (r Result[T]) Option() Option[T] {
	if r.err != nil {
		return None[T]()
	}
	return Some(r.value)
}

// IsOk returns true for a successful Result.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr returns true for a failed Result.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Get returns the payload and failure detail in the usual Go shape.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Error returns the failure detail, or nil on success.
func (r Result[T]) Error() error {
	return r.err
}
