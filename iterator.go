package subject

import (
	"context"
	"io"
)

// Iterator is the uniform produce-next-element-or-end contract: Next
// yields the next element, io.EOF once the sequence is over, or ctx.Err()
// if the wait was cancelled. [Cursor] satisfies it.
type Iterator[T any] interface {
	Next(ctx context.Context) (T, error)
}

// AsIterator hides the concrete type of it behind the plain [Iterator]
// contract.
func AsIterator[T any](it Iterator[T]) Iterator[T] {
	return iterator[T]{next: it.Next}
}

// IteratorFunc adapts a bare next function to an [Iterator].
func IteratorFunc[T any](next func(ctx context.Context) (T, error)) Iterator[T] {
	return iterator[T]{next: next}
}

type iterator[T any] struct {
	next func(ctx context.Context) (T, error)
}

func (i iterator[T]) Next(ctx context.Context) (T, error) {
	return i.next(ctx)
}

// Collect drains it into a slice, stopping at io.EOF. Any other error is
// returned alongside the elements read so far.
func Collect[T any](ctx context.Context, it Iterator[T]) ([]T, error) {
	var out []T
	for {
		v, err := it.Next(ctx)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
}
