package decoded

// Map applies f to a successful value.
func Map[A, B any](d Decoded[A], f func(A) B) Decoded[B] {
	if d.err != nil {
		return Failed[B](d.err)
	}
	return Succeeded(f(d.value))
}

// FlatMap chains a decode that depends on a previous value. It stops at the
// first failure.
func FlatMap[A, B any](d Decoded[A], f func(A) Decoded[B]) Decoded[B] {
	if d.err != nil {
		return Failed[B](d.err)
	}
	return f(d.value)
}

// Apply applies a decoded function to a decoded argument. When both fail the
// failures are combined, function first.
func Apply[A, B any](f Decoded[func(A) B], x Decoded[A]) Decoded[B] {
	switch {
	case f.err != nil && x.err != nil:
		return Failed[B](Combine(f.err, x.err))
	case f.err != nil:
		return Failed[B](f.err)
	case x.err != nil:
		return Failed[B](x.err)
	}
	return Succeeded(f.value(x.value))
}

// Map2 builds a value from two independent results, accumulating failures
// left to right.
func Map2[A, B, R any](a Decoded[A], b Decoded[B], f func(A, B) R) Decoded[R] {
	fa := Map(a, func(a A) func(B) R {
		return func(b B) R { return f(a, b) }
	})
	return Apply(fa, b)
}

// Map3 is Map2 for three results.
func Map3[A, B, C, R any](a Decoded[A], b Decoded[B], c Decoded[C], f func(A, B, C) R) Decoded[R] {
	fab := Map2(a, b, func(a A, b B) func(C) R {
		return func(c C) R { return f(a, b, c) }
	})
	return Apply(fab, c)
}

// Map4 is Map2 for four results.
func Map4[A, B, C, D, R any](a Decoded[A], b Decoded[B], c Decoded[C], d Decoded[D], f func(A, B, C, D) R) Decoded[R] {
	fabc := Map3(a, b, c, func(a A, b B, c C) func(D) R {
		return func(d D) R { return f(a, b, c, d) }
	})
	return Apply(fabc, d)
}

// Or returns a when it succeeded, otherwise b.
func Or[T any](a, b Decoded[T]) Decoded[T] {
	if a.err == nil {
		return a
	}
	return b
}

// OrElse returns the value of d, or fallback when d failed.
func OrElse[T any](d Decoded[T], fallback T) T {
	if d.err != nil {
		return fallback
	}
	return d.value
}

// Sequence collects every value, or joins every failure in index order.
func Sequence[T any](ds []Decoded[T]) Decoded[[]T] {
	var acc DecodeError
	out := make([]T, 0, len(ds))
	for _, d := range ds {
		if d.err != nil {
			acc = Combine(acc, d.err)
			continue
		}
		if acc == nil {
			out = append(out, d.value)
		}
	}
	if acc != nil {
		return Failed[[]T](acc)
	}
	return Succeeded(out)
}
