// gather.go — structured join: run child operations concurrently, wait for
// all of them, then merge their outcomes sequentially in argument order.
//
// Each child gets its own outcome, so no outcome is ever mutated by two
// goroutines. Panics in a child are contained like a wrapper fault. The merge
// order is the argument order regardless of completion order, which keeps
// message provenance and payload tie-breaks deterministic.
package xgxstatus

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// GatherOption configures GatherWith and GatherResultsWith.
type GatherOption func(*gatherConfig)

type gatherConfig struct {
	limit    int
	failFast bool
	invoke   []InvokeOption
}

// WithLimit bounds the number of children running at once. n <= 0 means no
// limit.
func WithLimit(n int) GatherOption {
	return func(c *gatherConfig) { c.limit = n }
}

// FailFast cancels the context passed to the remaining children as soon as
// one child reports errors. Every child still runs to completion and is
// merged.
func FailFast() GatherOption {
	return func(c *gatherConfig) { c.failFast = true }
}

// WithInvokeOptions applies opts to the containment of each child.
func WithInvokeOptions(opts ...InvokeOption) GatherOption {
	return func(c *gatherConfig) { c.invoke = append(c.invoke, opts...) }
}

// errChildFailed only cancels the errgroup context; it never leaves this file.
var errChildFailed = errors.New("xgxstatus: gathered child failed")

// Gather runs ops concurrently and returns one Status with every child's
// outcome merged in argument order.
func Gather(ctx context.Context, ops ...func(context.Context) *Status) *Status {
	return GatherWith(ctx, nil, ops...)
}

// GatherWith is Gather with options.
func GatherWith(ctx context.Context, opts []GatherOption, ops ...func(context.Context) *Status) *Status {
	cfg := newGatherConfig(opts)
	children := gather(ctx, cfg, len(ops), New, func(ctx context.Context, i int, s *Status) {
		DoMergeContext(ctx, s, ops[i], cfg.invoke...)
	})
	out := New()
	for _, c := range children {
		out.Merge(c)
	}
	return out
}

// GatherResults runs ops concurrently and returns a Result whose payload holds
// each child's payload by position (zero T for children without one), with
// every child's errors and faults merged in argument order.
func GatherResults[T any](ctx context.Context, ops ...func(context.Context) *Result[T]) *Result[[]T] {
	return GatherResultsWith(ctx, nil, ops...)
}

// GatherResultsWith is GatherResults with options.
func GatherResultsWith[T any](ctx context.Context, opts []GatherOption, ops ...func(context.Context) *Result[T]) *Result[[]T] {
	cfg := newGatherConfig(opts)
	children := gather(ctx, cfg, len(ops), NewResult[T], func(ctx context.Context, i int, r *Result[T]) {
		CallResultContext(ctx, r, ops[i], cfg.invoke...)
	})
	out := NewResult[[]T]()
	if len(children) == 0 {
		return out
	}
	values := make([]T, len(children))
	for i, c := range children {
		out.Merge(c)
		values[i] = c.payload
	}
	return out.SetPayload(values)
}

func newGatherConfig(opts []GatherOption) gatherConfig {
	var cfg gatherConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// gather runs n children on an errgroup, each into its own fresh outcome, and
// returns the outcomes by index once all have finished.
func gather[S Accumulator[S]](ctx context.Context, cfg gatherConfig, n int, fresh func() S, run func(context.Context, int, S)) []S {
	g := &errgroup.Group{}
	gctx := ctx
	if cfg.failFast {
		g, gctx = errgroup.WithContext(ctx)
	}
	if cfg.limit > 0 {
		g.SetLimit(cfg.limit)
	}

	outs := make([]S, n)
	for i := range n {
		s := fresh()
		outs[i] = s
		g.Go(func() error {
			run(gctx, i, s)
			if s.HasErrors() {
				return errChildFailed
			}
			return nil
		})
	}
	_ = g.Wait()
	return outs
}
