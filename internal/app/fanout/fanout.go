// Package fanout runs one function over a slice of items with bounded
// concurrency and returns the results in input order. MediaOverview uses it
// to fetch the sections of a media entry in parallel.
//
// Unlike a bare errgroup, a failing item does not cancel its siblings: each
// item reports its own outcome.
package fanout

import (
	"context"
	"fmt"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// PanicError is the Err of an item whose fn panicked.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("fanout: panic: %v", e.Value)
}

// Run calls fn for every item with at most maxWorkers calls in flight
// (below 1 means 1) and blocks until all of them return. results[i] belongs
// to items[i].
//
// Items not yet started when ctx ends get ctx.Err() without calling fn;
// calls already running are expected to watch ctx themselves. A panic in fn
// is recovered into a *PanicError for that item.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		// Go blocks here until a slot frees up.
		g.Go(func() error {
			results[i] = call(ctx, item, fn)
			return nil
		})
	}

	_ = g.Wait()
	return results
}

func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	if err := ctx.Err(); err != nil {
		return Result[R]{Err: err}
	}
	defer func() {
		if v := recover(); v != nil {
			res = Result[R]{Err: &PanicError{Value: v, Stack: debug.Stack()}}
		}
	}()

	v, err := fn(ctx, item)
	return Result[R]{Value: v, Err: err}
}
