// task.go — Task: a one-shot completion cell for a Status or Result.
//
// A Task is the awaitable form of an outcome. One producer completes it
// (Complete, CompleteError, CompleteResult or SetFault); consumers observe it
// through OnComplete continuations, Done/Await, or Result.
//
// State machine:
//
//	TaskPending ─┬─ Complete / CompleteResult (no errors) ─→ TaskCompleted
//	             ├─ CompleteError / CompleteResult (errors) ─→ TaskCompletedError
//	             └─ SetFault ─────────────────────────────────→ TaskFaulted
//
// Every terminal transition happens at most once; later attempts return
// ErrAlreadyCompleted and change nothing. Continuations registered before
// the transition run exactly once, in registration order, on the completing
// goroutine after the Task is observable as terminal. Continuations
// registered afterwards run immediately on the registering goroutine.
//
// The zero Task is pending and ready to use. A Task must not be copied after
// first use.
package xgxstatus

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrAlreadyCompleted is returned when completing a Task that is not pending.
	ErrAlreadyCompleted = errors.New("xgxstatus: task already completed")
	// ErrNotCompleted is returned by Task.Result while the Task is pending.
	ErrNotCompleted = errors.New("xgxstatus: task not completed")

	errNilFault = errors.New("xgxstatus: nil fault")
)

// TaskState is the lifecycle state of a Task.
type TaskState uint8

const (
	TaskPending TaskState = iota
	TaskCompleted
	TaskCompletedError
	TaskFaulted
)

func (s TaskState) String() string {
	switch s {
	case TaskPending:
		return "pending"
	case TaskCompleted:
		return "completed"
	case TaskCompletedError:
		return "completed-error"
	case TaskFaulted:
		return "faulted"
	default:
		return fmt.Sprintf("TaskState(%d)", uint8(s))
	}
}

// Void is the payload type of Tasks that carry a plain Status.
type Void = struct{}

// Task is a one-shot completion cell holding a *Result[T] or a fault.
type Task[T any] struct {
	mu    sync.Mutex
	state TaskState
	res   *Result[T]
	fault error
	conts []func()
	done  chan struct{}
}

// closedDone is shared by Tasks that were terminal before anyone asked Done.
var closedDone = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// NewTask returns a pending Task.
func NewTask[T any]() *Task[T] { return &Task[T]{} }

// CompletedTask returns a Task already completed with a successful Result
// carrying v.
func CompletedTask[T any](v T) *Task[T] {
	t := &Task[T]{}
	_ = t.Complete(v)
	return t
}

// FailedTask returns a Task already completed with a Result holding e.
func FailedTask[T any](e Error) *Task[T] {
	t := &Task[T]{}
	_ = t.CompleteError(e)
	return t
}

// State reports the current state.
func (t *Task[T]) State() TaskState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// IsCompleted reports whether t reached any terminal state.
func (t *Task[T]) IsCompleted() bool { return t.State() != TaskPending }

// OnComplete registers fn to run once t is terminal. If t is already
// terminal, fn runs immediately.
func (t *Task[T]) OnComplete(fn func()) {
	if fn == nil {
		return
	}
	t.mu.Lock()
	if t.state == TaskPending {
		t.conts = append(t.conts, fn)
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()
	fn()
}

// Complete completes t with a successful Result carrying v.
func (t *Task[T]) Complete(v T) error {
	return t.finish(TaskCompleted, Ok(v), nil)
}

// CompleteError completes t with a Result holding e.
func (t *Task[T]) CompleteError(e Error) error {
	return t.finish(TaskCompletedError, NewResult[T]().Add(e), nil)
}

// CompleteResult completes t with r. The state is TaskCompletedError when r
// has errors. A nil r completes with an empty successful Result.
func (t *Task[T]) CompleteResult(r *Result[T]) error {
	if r == nil {
		r = NewResult[T]()
	}
	state := TaskCompleted
	if r.HasErrors() {
		state = TaskCompletedError
	}
	return t.finish(state, r, nil)
}

// SetFault moves t to TaskFaulted; Result will return err.
func (t *Task[T]) SetFault(err error) error {
	if err == nil {
		return errNilFault
	}
	return t.finish(TaskFaulted, nil, err)
}

func (t *Task[T]) finish(state TaskState, res *Result[T], fault error) error {
	t.mu.Lock()
	if t.state != TaskPending {
		cur := t.state
		t.mu.Unlock()
		return fmt.Errorf("%w (state %s)", ErrAlreadyCompleted, cur)
	}
	t.state, t.res, t.fault = state, res, fault
	conts := t.conts
	t.conts = nil
	if t.done == nil {
		t.done = closedDone
	} else {
		close(t.done)
	}
	t.mu.Unlock()

	for _, fn := range conts {
		fn()
	}
	return nil
}

// Result returns the completed Result, the stored fault when t is faulted,
// or ErrNotCompleted while t is pending.
func (t *Task[T]) Result() (*Result[T], error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch t.state {
	case TaskPending:
		return nil, ErrNotCompleted
	case TaskFaulted:
		return nil, t.fault
	default:
		return t.res, nil
	}
}

// Done returns a channel closed once t is terminal.
func (t *Task[T]) Done() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done == nil {
		if t.state != TaskPending {
			t.done = closedDone
		} else {
			t.done = make(chan struct{})
		}
	}
	return t.done
}

// Await blocks until t is terminal or ctx is done, then behaves like Result.
func (t *Task[T]) Await(ctx context.Context) (*Result[T], error) {
	select {
	case <-t.Done():
		return t.Result()
	case <-ctx.Done():
		// Prefer a completion that raced with cancellation.
		if t.IsCompleted() {
			return t.Result()
		}
		return nil, ctx.Err()
	}
}

// -----------------------------------------------------------------------------
// Producers
// -----------------------------------------------------------------------------

// Go runs fn on a new goroutine and returns a Task completed with its Result.
// A panic in fn faults the Task with a *PanicError.
func Go[T any](ctx context.Context, fn func(context.Context) *Result[T]) *Task[T] {
	t := NewTask[T]()
	go func() {
		var out *Result[T]
		if fault := contain(func() error {
			out = fn(ctx)
			return nil
		}); fault != nil {
			_ = t.SetFault(fault)
			return
		}
		_ = t.CompleteResult(out)
	}()
	return t
}

// GoValue is Go for an operation returning (T, error). A returned error
// completes the Task with ErrorsOf(err); a panic faults it.
func GoValue[T any](ctx context.Context, fn func(context.Context) (T, error)) *Task[T] {
	return Go(ctx, func(ctx context.Context) *Result[T] {
		v, err := fn(ctx)
		if err != nil {
			return NewResult[T]().AddErrors(ErrorsOf(err)...)
		}
		return Ok(v)
	})
}

// GoStatus is Go for an operation producing a Status.
func GoStatus(ctx context.Context, fn func(context.Context) *Status) *Task[Void] {
	return Go(ctx, func(ctx context.Context) *Result[Void] {
		return As[Void](fn(ctx))
	})
}

// AwaitMerge awaits t and merges its Result into s, returning the payload.
// A fault or a ctx error is recorded in s like a wrapper fault and the zero
// value is returned.
func AwaitMerge[S Accumulator[S], T any](ctx context.Context, s S, t *Task[T], opts ...InvokeOption) T {
	var zero T
	res, err := t.Await(ctx)
	if err != nil {
		record(s, err, opts)
		return zero
	}
	if res == nil {
		return zero
	}
	s.Merge(res)
	return res.payload
}
