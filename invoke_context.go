// invoke_context.go — context-aware invocation wrappers.
//
// These are the asynchronous flavor of invoke.go: the operation receives ctx
// and blocks (suspends) only at its own blocking points. The wrapper adds no
// waiting of its own and does not consult ctx; cancellation is the
// operation's business. To run an operation on another goroutine and await
// its outcome, see Go and Task.
package xgxstatus

import "context"

// DoContext is Do for a context-aware operation.
func DoContext[S Accumulator[S]](ctx context.Context, s S, fn func(context.Context) error, opts ...InvokeOption) S {
	return DoArg(s, fn, ctx, opts...)
}

// DoMergeContext is DoMerge for a context-aware operation.
func DoMergeContext[S Accumulator[S], R Reader](ctx context.Context, s S, fn func(context.Context) R, opts ...InvokeOption) S {
	return DoMerge(s, func() R { return fn(ctx) }, opts...)
}

// CallContext is Call for a context-aware operation.
func CallContext[S Accumulator[S], T any](ctx context.Context, s S, fn func(context.Context) (T, error), opts ...InvokeOption) T {
	return Call(s, func() (T, error) { return fn(ctx) }, opts...)
}

// CallResultContext is CallResult for a context-aware operation.
func CallResultContext[S Accumulator[S], T any](ctx context.Context, s S, fn func(context.Context) *Result[T], opts ...InvokeOption) T {
	return CallResult(s, func() *Result[T] { return fn(ctx) }, opts...)
}

// InvokeContext runs fn(ctx) and returns a new Status describing its outcome.
func InvokeContext(ctx context.Context, fn func(context.Context) error, opts ...InvokeOption) *Status {
	return DoContext(ctx, New(), fn, opts...)
}

// InvokeStatusContext runs fn(ctx) and returns a new Status with fn's Status
// merged in.
func InvokeStatusContext(ctx context.Context, fn func(context.Context) *Status, opts ...InvokeOption) *Status {
	return DoMergeContext(ctx, New(), fn, opts...)
}

// InvokeResultContext runs fn(ctx) and returns a new Result carrying its value,
// or its fault.
func InvokeResultContext[T any](ctx context.Context, fn func(context.Context) (T, error), opts ...InvokeOption) *Result[T] {
	r := NewResult[T]()
	r.InvokeSet(func() (T, error) { return fn(ctx) }, opts...)
	return r
}
