package decode

import (
	"maps"
	"slices"
	"strconv"

	"github.com/reoring/decoded"
)

// Key decodes the value under name in obj. A non-object obj is a
// TypeMismatch; an absent key is MissingKey(name).
func Key[T any](obj any, name string, dec Decoder[T]) decoded.Decoded[T] {
	m, ok := obj.(map[string]any)
	if !ok {
		return mismatch[T]("Object", obj)
	}
	v, ok := m[name]
	if !ok {
		return decoded.MissingKeyError[T](name)
	}
	return dec(v)
}

// OptionalKey is Key relaxed for optional fields: an absent key yields nil,
// a present value of the wrong type is still a failure.
func OptionalKey[T any](obj any, name string, dec Decoder[T]) decoded.Decoded[*T] {
	return decoded.Relax(Key(obj, name, dec))
}

// KeyPath walks path through nested objects. MissingKey names the first
// absent segment.
func KeyPath[T any](obj any, path []string, dec Decoder[T]) decoded.Decoded[T] {
	if len(path) == 0 {
		return dec(obj)
	}
	return decoded.FlatMap(Key(obj, path[0], Any), func(next any) decoded.Decoded[T] {
		return KeyPath(next, path[1:], dec)
	})
}

// Field returns Key as a Decoder.
func Field[T any](name string, dec Decoder[T]) Decoder[T] {
	return func(v any) decoded.Decoded[T] { return Key(v, name, dec) }
}

// OptionalField returns OptionalKey as a Decoder.
func OptionalField[T any](name string, dec Decoder[T]) Decoder[*T] {
	return func(v any) decoded.Decoded[*T] { return OptionalKey(v, name, dec) }
}

// Index decodes the i-th element of arr. Out-of-range indexes report
// MissingKey("[i]").
func Index[T any](arr any, i int, dec Decoder[T]) decoded.Decoded[T] {
	a, ok := arr.([]any)
	if !ok {
		return mismatch[T]("Array", arr)
	}
	if i < 0 || i >= len(a) {
		return decoded.MissingKeyError[T]("[" + strconv.Itoa(i) + "]")
	}
	return dec(a[i])
}

// Map decodes every value of an object with dec, accumulating every bad
// value. Failures are ordered by key.
func Map[T any](dec Decoder[T]) Decoder[map[string]T] {
	return func(v any) decoded.Decoded[map[string]T] {
		m, ok := v.(map[string]any)
		if !ok {
			return mismatch[map[string]T]("Object", v)
		}
		out := make(map[string]T, len(m))
		var acc decoded.DecodeError
		for _, k := range slices.Sorted(maps.Keys(m)) {
			d := dec(m[k])
			if e, failed := d.ErrorValue(); failed {
				acc = decoded.Combine(acc, e)
				continue
			}
			out[k], _ = d.Value()
		}
		if acc != nil {
			return decoded.Failed[map[string]T](acc)
		}
		return decoded.Succeeded(out)
	}
}
