// Package parallel runs independent lookups concurrently.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultLimit is the default concurrency limit.
const DefaultLimit = 4

// Result holds the outcome of one call.
type Result[T any] struct {
	Value T
	Err   error
}

// Execute runs fn for every item concurrently and returns the results in
// the order of items. Individual errors are captured in Result.Err rather
// than failing the whole run.
func Execute[T any, R any](
	ctx context.Context,
	items []T,
	fn func(ctx context.Context, item T) (R, error),
) []Result[R] {
	return ExecuteWithLimit(ctx, items, DefaultLimit, fn)
}

// ExecuteWithLimit is like Execute but with a custom concurrency limit.
func ExecuteWithLimit[T any, R any](
	ctx context.Context,
	items []T,
	limit int,
	fn func(ctx context.Context, item T) (R, error),
) []Result[R] {
	results := make([]Result[R], len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, item := range items {
		g.Go(func() error {
			value, err := fn(gctx, item)
			// Each goroutine owns its slot.
			results[i] = Result[R]{Value: value, Err: err}

			return nil // Don't fail the group on individual errors
		})
	}

	_ = g.Wait()

	return results
}
