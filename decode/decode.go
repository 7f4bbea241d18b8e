// Package decode holds concrete decoders over the source value tree. Each
// decoder reports failures as decoded.DecodeError values so callers can
// accumulate them with decoded.Map2, decoded.Sequence and friends.
package decode

import (
	"math"

	"github.com/spf13/cast"

	"github.com/reoring/decoded"
	"github.com/reoring/decoded/source"
)

// Decoder converts one node of the value tree into T.
type Decoder[T any] func(v any) decoded.Decoded[T]

func mismatch[T any](expected string, v any) decoded.Decoded[T] {
	return decoded.Failed[T](decoded.TypeMismatch{Expected: expected, Actual: source.KindOf(v).String()})
}

func numberMismatch[T any](expected string, n source.Number) decoded.Decoded[T] {
	return decoded.Failed[T](decoded.TypeMismatch{Expected: expected, Actual: "Number(" + string(n) + ")"})
}

// Any accepts every node unchanged.
func Any(v any) decoded.Decoded[any] { return decoded.Succeeded(v) }

// String accepts string nodes.
func String(v any) decoded.Decoded[string] {
	s, ok := v.(string)
	if !ok {
		return mismatch[string]("String", v)
	}
	return decoded.Succeeded(s)
}

// Bool accepts boolean nodes.
func Bool(v any) decoded.Decoded[bool] {
	b, ok := v.(bool)
	if !ok {
		return mismatch[bool]("Bool", v)
	}
	return decoded.Succeeded(b)
}

// Int64 accepts integral numbers that fit in an int64.
func Int64(v any) decoded.Decoded[int64] {
	n, ok := v.(source.Number)
	if !ok {
		return mismatch[int64]("Int", v)
	}
	// cast parses with base 0, so 010, 0x10 and 1_000 must be refused first.
	if !n.Integral() {
		return numberMismatch[int64]("Int", n)
	}
	i, err := cast.ToInt64E(string(n))
	if err != nil {
		return numberMismatch[int64]("Int", n)
	}
	return decoded.Succeeded(i)
}

// Int accepts integral numbers that fit in an int.
func Int(v any) decoded.Decoded[int] {
	return decoded.FlatMap(Int64(v), func(i int64) decoded.Decoded[int] {
		if i < math.MinInt || i > math.MaxInt {
			return numberMismatch[int]("Int", v.(source.Number))
		}
		return decoded.Succeeded(int(i))
	})
}

// Float accepts any number.
func Float(v any) decoded.Decoded[float64] {
	n, ok := v.(source.Number)
	if !ok {
		return mismatch[float64]("Float", v)
	}
	if !n.Valid() {
		return numberMismatch[float64]("Float", n)
	}
	f, err := cast.ToFloat64E(string(n))
	if err != nil {
		return numberMismatch[float64]("Float", n)
	}
	return decoded.Succeeded(f)
}

// Nullable wraps dec so that null decodes to a nil pointer.
func Nullable[T any](dec Decoder[T]) Decoder[*T] {
	return func(v any) decoded.Decoded[*T] {
		if v == nil {
			return decoded.Succeeded[*T](nil)
		}
		return decoded.Map(dec(v), func(t T) *T { return &t })
	}
}
