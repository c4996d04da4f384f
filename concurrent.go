package dawg

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentQueries bounds the number of goroutines batch helpers will
// run at once, so a very large batch against a very large graph doesn't
// spawn one goroutine per request.
const maxConcurrentQueries = 16

// LookupAll runs Lookup for each word in words concurrently and returns
// the results in the same order. Since a Graph is immutable and safe to
// share across goroutines without synchronization (see the package's
// concurrency notes), this is just Lookup fanned out; ctx cancellation
// only makes lookups that have not started yet skip their work, since
// Lookup itself has no suspension points to cancel.
func (g *Graph) LookupAll(ctx context.Context, words []string) []bool {
	results := make([]bool, len(words))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxConcurrentQueries)

	for i, word := range words {
		i, word := i, word
		eg.Go(func() error {
			if egCtx.Err() != nil {
				return egCtx.Err()
			}
			results[i] = g.Lookup(word)
			return nil
		})
	}

	// Lookup cannot itself fail, so the only possible error is context
	// cancellation; either way the caller only observes the results
	// slice, with unfilled entries left false.
	_ = eg.Wait()

	return results
}

// AnagramRequest is one query for AnagramsBatch.
type AnagramRequest struct {
	Rack       []byte
	WordLength int
	Fixed      map[int]byte
	Blank      byte
}

// AnagramsBatch runs Anagrams for each request concurrently, bounded by
// maxConcurrentQueries, and returns the results in request order. It
// returns the first error encountered (an ErrInvalidArgument from a
// malformed request, or ctx cancellation) together with a nil result
// slice; no partial results are returned.
func (g *Graph) AnagramsBatch(ctx context.Context, reqs []AnagramRequest) ([][]string, error) {
	results := make([][]string, len(reqs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxConcurrentQueries)

	for i, req := range reqs {
		i, req := i, req
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			words, err := g.Anagrams(req.Rack, req.WordLength, req.Fixed, req.Blank)
			if err != nil {
				return err
			}
			results[i] = words
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
