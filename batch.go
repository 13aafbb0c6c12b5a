package simspace

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BatchDistances computes the distance from query to every object in
// objs, fanning the work out over at most parallelism goroutines.
// parallelism <= 0 uses GOMAXPROCS.
//
// Distance evaluation is pure, so the only coordination needed is the
// disjoint output ranges. The space's phase flag is not consulted;
// this is a query-evaluation path.
func BatchDistances[T Float](ctx context.Context, s Space[T], query *Object, objs []*Object, parallelism int) ([]T, error) {
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	out := make([]T, len(objs))
	if len(objs) == 0 {
		return out, nil
	}

	chunk := (len(objs) + parallelism - 1) / parallelism

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for start := 0; start < len(objs); start += chunk {
		end := min(start+chunk, len(objs))

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			for i := start; i < end; i++ {
				d, err := s.Distance(query, objs[i])
				if err != nil {
					return err
				}
				out[i] = d
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
