// Package sweep provides a bounded-parallel pass over a batch of items where
// individual failures are reported but never abort the batch.
package sweep

import (
	"context"
	"sync"
)

// Run processes items with workerCount goroutines. An error from process is
// handed to onError and the sweep continues; only context cancellation stops
// the batch early, in which case the context error is returned.
func Run[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onError func(T, error),
) error {
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}
	if len(items) == 0 {
		return ctx.Err()
	}

	tasks := make(chan T)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				if err := ctx.Err(); err != nil {
					return
				}
				if err := process(ctx, item); err != nil && onError != nil {
					onError(item, err)
				}
			}
		}()
	}

feed:
	for _, item := range items {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- item:
		}
	}
	close(tasks)
	wg.Wait()

	return ctx.Err()
}
