package decoded

import "fmt"

// Get returns the value, or the DecodeError as a Go error when d failed.
func (d Decoded[T]) Get() (T, error) {
	if d.err != nil {
		var zero T
		return zero, d.err
	}
	return d.value, nil
}

// MustGet returns the value and panics with the DecodeError when d failed.
// Materialize recovers such panics.
func (d Decoded[T]) MustGet() T {
	if d.err != nil {
		panic(d.err)
	}
	return d.value
}

// Materialize runs f and captures its outcome. A returned error, or a panic,
// becomes Failed(Custom(description)). It is the only place where Go's native
// failure paths are absorbed into Decoded; nothing raised inside f escapes.
func Materialize[T any](f func() (T, error)) (out Decoded[T]) {
	defer func() {
		if r := recover(); r != nil {
			out = Failed[T](Custom{Message: describePanic(r)})
		}
	}()
	v, err := f()
	if err != nil {
		return Failed[T](Custom{Message: err.Error()})
	}
	return Succeeded(v)
}

func describePanic(r any) string {
	if err, ok := r.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(r)
}
