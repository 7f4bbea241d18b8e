package decode

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/reoring/decoded"
)

// Array decodes every element with elem. Every bad element is reported, in
// index order.
func Array[T any](elem Decoder[T]) Decoder[[]T] {
	return func(v any) decoded.Decoded[[]T] {
		a, ok := v.([]any)
		if !ok {
			return mismatch[[]T]("Array", v)
		}
		results := make([]decoded.Decoded[T], len(a))
		for i, e := range a {
			results[i] = elem(e)
		}
		return decoded.Sequence(results)
	}
}

// ArrayParallel is Array with elements decoded on up to workers goroutines
// (workers <= 0 means unbounded). Results are stored by index before being
// sequenced, so the combined failure does not depend on completion order.
// If ctx ends first the result is a Custom failure carrying ctx.Err().
func ArrayParallel[T any](ctx context.Context, workers int, elem Decoder[T]) Decoder[[]T] {
	return func(v any) decoded.Decoded[[]T] {
		a, ok := v.([]any)
		if !ok {
			return mismatch[[]T]("Array", v)
		}
		results := make([]decoded.Decoded[T], len(a))
		g, gctx := errgroup.WithContext(ctx)
		if workers > 0 {
			g.SetLimit(workers)
		}
		for i, e := range a {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[i] = elem(e)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return decoded.CustomError[[]T](err.Error())
		}
		if err := ctx.Err(); err != nil {
			return decoded.CustomError[[]T](err.Error())
		}
		return decoded.Sequence(results)
	}
}
