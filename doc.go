// Package decoded provides:
//
// - A result type, Decoded[T], for the outcome of converting untyped JSON-like data into T
// - A closed error taxonomy, DecodeError (TypeMismatch, MissingKey, Custom, Multiple)
// - Accumulation of independent failures via Combine, so every invalid field is reported in one pass
// - Optional-field relaxation (Relax) and bridges to Go's (T, error) convention (Get, Materialize)
//
// Design policy:
// - Keep the core pure: no I/O, no logging, no shared mutable state.
// - Put parsing under source/ and concrete decoders under decode/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := source.JSONBytes(data)
//	user := decoded.Map2(
//		decode.Key(v, "name", decode.String),
//		decode.Key(v, "age", decode.Int),
//		func(name string, age int) User { return User{Name: name, Age: age} },
//	)
//	u, err := user.Get()
package decoded
