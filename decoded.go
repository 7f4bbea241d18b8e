package decoded

import "fmt"

// Decoded is the result of a failable decode: either Succeeded with a value
// or Failed with a DecodeError. The zero value is Succeeded with the zero T.
type Decoded[T any] struct {
	value T
	err   DecodeError
}

// Succeeded wraps v as a successful result.
func Succeeded[T any](v T) Decoded[T] { return Decoded[T]{value: v} }

// Failed wraps err as a failed result. It panics if err is nil, a nil
// *Multiple, or a Multiple with no errors.
func Failed[T any](err DecodeError) Decoded[T] {
	if err == nil {
		panic("decoded: Failed called with nil DecodeError")
	}
	if m, ok := err.(*Multiple); ok && m.Len() == 0 {
		panic("decoded: Failed called with empty Multiple")
	}
	return Decoded[T]{err: err}
}

// TypeMismatchError returns a failure for a value of the wrong shape. actual
// is rendered with %v.
func TypeMismatchError[T any](expected string, actual any) Decoded[T] {
	return Failed[T](TypeMismatch{Expected: expected, Actual: fmt.Sprint(actual)})
}

// MissingKeyError returns a failure for an absent key.
func MissingKeyError[T any](key string) Decoded[T] {
	return Failed[T](MissingKey{Key: key})
}

// CustomError returns a failure carrying msg.
func CustomError[T any](msg string) Decoded[T] {
	return Failed[T](Custom{Message: msg})
}

// MultipleErrors returns a Multiple failure holding the non-nil errs. It
// panics if errs holds no non-nil error.
func MultipleErrors[T any](errs ...DecodeError) Decoded[T] {
	m := NewMultiple(errs...)
	if m == nil {
		panic("decoded: MultipleErrors needs at least one error")
	}
	return Failed[T](m)
}

// Value returns the payload and true when d succeeded.
func (d Decoded[T]) Value() (T, bool) {
	if d.err != nil {
		var zero T
		return zero, false
	}
	return d.value, true
}

// ErrorValue returns the failure and true when d failed.
func (d Decoded[T]) ErrorValue() (DecodeError, bool) {
	return d.err, d.err != nil
}

// IsSucceeded reports whether d holds a value.
func (d Decoded[T]) IsSucceeded() bool { return d.err == nil }

// IsFailed reports whether d holds a DecodeError.
func (d Decoded[T]) IsFailed() bool { return d.err != nil }

// String renders Succeeded(v) or Failed(e).
func (d Decoded[T]) String() string {
	if d.err != nil {
		return "Failed(" + d.err.String() + ")"
	}
	return fmt.Sprintf("Succeeded(%v)", d.value)
}
