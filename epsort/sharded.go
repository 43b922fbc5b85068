package epsort

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pareto/eparchive"
)

// SortSharded sorts each table into its own archive concurrently, then
// merges the shard archives pairwise by re-inserting their entries into
// a single result archive, shard by shard in table order.
//
// The box-comparison rule is commutative between candidate and
// resident, so the merged surviving box set equals a sequential sort's;
// only the representative kept inside a shared box may differ, the same
// order-sensitivity any incremental epsilon-archive carries.
//
// opts.Archive.OnEvent fires only during the merge phase, never from
// shard goroutines, so the callback needs no synchronization.  A shard
// whose table yields no rows is skipped; if every shard is empty the
// call behaves like Sort over empty input.  The first shard failure
// cancels the remaining shards via ctx.
func SortSharded(ctx context.Context, tables []Table, opts Options) (*eparchive.Archive, error) {
	if len(tables) <= 1 {
		return Sort(tables, opts)
	}

	// 1) One archive per table, in parallel.  Events are muted here:
	//    they would interleave nondeterministically across goroutines.
	shardOpts := opts
	shardOpts.Archive = eparchive.Options{}

	shards := make([]*eparchive.Archive, len(tables))
	g, ctx := errgroup.WithContext(ctx)
	for i, table := range tables {
		i, table := i, table
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			arch, err := Sort([]Table{table}, shardOpts)
			if err != nil {
				// An empty shard is not a failure of the whole sort.
				if errors.Is(err, ErrEmptyInput) {
					return nil
				}
				// Restore the true table index lost to the single-table call.
				var rowErr *RowError
				if errors.As(err, &rowErr) {
					rowErr.Table = i
				}

				return err
			}
			shards[i] = arch

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// 2) Merge sequentially, earliest shard first, preserving the
	//    documented first-seen-wins tie behavior across shard order.
	var merged *eparchive.Archive
	for _, shard := range shards {
		if shard == nil {
			continue
		}
		if merged == nil {
			var err error
			if merged, err = eparchive.New(shard.Epsilons(), opts.Archive); err != nil {
				return nil, err
			}
		}
		objectives := shard.Objectives()
		tags := shard.Tags()
		for i := range objectives {
			if err := merged.Insert(objectives[i], tags[i]); err != nil {
				return nil, err
			}
		}
	}
	if merged == nil {
		// Every shard was empty: fall back to Sort's empty-input policy.
		return Sort(nil, opts)
	}

	return merged, nil
}
