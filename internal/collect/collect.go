// Package collect provides the bounded parallel fan-out helper used to
// gather results across many repositories concurrently.
package collect

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds the number of concurrent tasks. The value is a small
// fixed constant chosen to stay within third-party API rate limits; it is
// never derived from the input size.
const DefaultWorkers = 12

// All applies fn to every id on a worker pool of at most workers goroutines
// and returns the concatenation of all produced items.
//
// Items produced for a single id stay contiguous and in their original order,
// but the order across ids is completion order and therefore
// non-deterministic. Callers must not rely on any particular interleaving.
//
// The call is fail-fast: the first error returned by fn fails the whole
// aggregate, remaining work observes a cancelled context, and partial results
// from other ids are discarded. All returns only after every started
// invocation has finished. fn must be safe to call concurrently.
func All[ID, R any](ctx context.Context, ids []ID, workers int, fn func(context.Context, ID) ([]R, error)) ([]R, error) {
	if workers < 1 {
		workers = 1
	}

	var (
		mu      sync.Mutex
		results []R
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for _, id := range ids {
		id := id
		eg.Go(func() error {
			items, err := fn(egCtx, id)
			if err != nil {
				return err
			}
			mu.Lock()
			results = append(results, items...)
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
