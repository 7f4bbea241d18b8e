package decoded

// absentMismatch is the failure used when an optional value is missing.
var absentMismatch = TypeMismatch{Expected: "a present value", Actual: "absent"}

// Relax turns d into a result for an optional field. A MissingKey failure
// becomes Succeeded(nil); a success becomes a pointer to its value. Every
// other failure is kept, since a present value of the wrong type is still an
// error for an optional field.
func Relax[T any](d Decoded[T]) Decoded[*T] {
	if d.err == nil {
		v := d.value
		return Succeeded(&v)
	}
	if _, ok := d.err.(MissingKey); ok {
		return Succeeded[*T](nil)
	}
	return Failed[*T](d.err)
}

// FromOptional lifts a pointer into a Decoded. nil fails with a TypeMismatch.
func FromOptional[T any](p *T) Decoded[T] {
	if p == nil {
		return Failed[T](absentMismatch)
	}
	return Succeeded(*p)
}

// FromOK lifts a comma-ok pair into a Decoded, failing like FromOptional
// when ok is false.
func FromOK[T any](v T, ok bool) Decoded[T] {
	if !ok {
		return Failed[T](absentMismatch)
	}
	return Succeeded(v)
}
