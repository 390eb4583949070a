package gridpath

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Query is one start/goal pair of a batch.
type Query struct {
	Start Coords
	Goal  Coords
}

// Route is the outcome of one Query. Err is set per route, so an
// unreachable goal does not fail the batch.
type Route struct {
	Query  Query
	Result Result
	Err    error
}

// WithWorkers specifies how many searches FindPaths runs at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// FindPaths runs one Search per query over the same grid. The grid must not
// change until FindPaths returns. Routes come back in query order. The
// only error returned is the context's, once it is done.
func FindPaths(ctx context.Context, grid Grid, queries []Query, options ...Option) ([]Route, error) {
	searchOptions := applyOptions(options)
	workers := searchOptions.NumberOfWorkers
	if workers < 1 {
		workers = 1
	}

	// Trace callbacks are not safe to share between goroutines.
	perSearch := append(options[:len(options):len(options)], WithTrace(nil))

	routes := make([]Route, len(queries))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, query := range queries {
		if err := groupCtx.Err(); err != nil {
			break
		}
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			result, err := Search(query.Start, query.Goal, grid, perSearch...)
			routes[i] = Route{Query: query, Result: result, Err: err}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return routes, nil
}
