package xgxstatus

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bubbleCtx returns a cancellable context created inside the current synctest
// bubble, so goroutines waiting on it count as durably blocked.
func bubbleCtx(t *testing.T) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}

func TestTask_ZeroValuePending(t *testing.T) {
	var task Task[int]
	assert.Equal(t, TaskPending, task.State())
	assert.False(t, task.IsCompleted())

	_, err := task.Result()
	assert.ErrorIs(t, err, ErrNotCompleted)

	require.NoError(t, task.Complete(3))
	res, err := task.Result()
	require.NoError(t, err)
	assert.Equal(t, 3, res.Payload())
}

func TestTask_States(t *testing.T) {
	ok := NewTask[string]()
	require.NoError(t, ok.Complete("v"))
	assert.Equal(t, TaskCompleted, ok.State())

	bad := NewTask[string]()
	require.NoError(t, bad.CompleteError(NewError("nope", WithCode(409))))
	assert.Equal(t, TaskCompletedError, bad.State())
	res, err := bad.Result()
	require.NoError(t, err, "a completed error is a value, not a fault")
	assert.True(t, HasCode(res, 409))

	viaResult := NewTask[string]()
	require.NoError(t, viaResult.CompleteResult(Failed[string]("x")))
	assert.Equal(t, TaskCompletedError, viaResult.State())

	empty := NewTask[string]()
	require.NoError(t, empty.CompleteResult(nil))
	assert.Equal(t, TaskCompleted, empty.State())

	faulted := NewTask[string]()
	require.NoError(t, faulted.SetFault(errBoom))
	assert.Equal(t, TaskFaulted, faulted.State())
	res, err = faulted.Result()
	assert.Nil(t, res)
	assert.Same(t, errBoom, err)
}

func TestTask_StateString(t *testing.T) {
	assert.Equal(t, "pending", TaskPending.String())
	assert.Equal(t, "completed", TaskCompleted.String())
	assert.Equal(t, "completed-error", TaskCompletedError.String())
	assert.Equal(t, "faulted", TaskFaulted.String())
	assert.Equal(t, "TaskState(9)", TaskState(9).String())
}

func TestTask_AlreadyCompleted(t *testing.T) {
	task := CompletedTask(1)

	assert.ErrorIs(t, task.Complete(2), ErrAlreadyCompleted)
	assert.ErrorIs(t, task.CompleteError(NewError("x")), ErrAlreadyCompleted)
	assert.ErrorIs(t, task.CompleteResult(Ok(3)), ErrAlreadyCompleted)
	assert.ErrorIs(t, task.SetFault(errBoom), ErrAlreadyCompleted)

	res, err := task.Result()
	require.NoError(t, err)
	assert.Equal(t, 1, res.Payload(), "later completions change nothing")
	assert.Equal(t, TaskCompleted, task.State())
}

func TestTask_SetFaultNil(t *testing.T) {
	task := NewTask[int]()
	assert.Error(t, task.SetFault(nil))
	assert.Equal(t, TaskPending, task.State())
}

func TestTask_FailedTask(t *testing.T) {
	task := FailedTask[int](NewError("gone"))
	assert.Equal(t, TaskCompletedError, task.State())
	res, err := task.Result()
	require.NoError(t, err)
	assert.Equal(t, "gone", res.ErrorString())
}

func TestTask_ContinuationsFireOnceAfterCompletion(t *testing.T) {
	task := NewTask[int]()
	var order []string
	task.OnComplete(func() {
		assert.True(t, task.IsCompleted(), "never before completion")
		order = append(order, "first")
	})
	task.OnComplete(nil)
	task.OnComplete(func() { order = append(order, "second") })
	assert.Empty(t, order)

	require.NoError(t, task.Complete(1))
	assert.Equal(t, []string{"first", "second"}, order)

	_ = task.Complete(2)
	assert.Equal(t, []string{"first", "second"}, order, "exactly once")
}

func TestTask_ContinuationAfterTerminalRunsImmediately(t *testing.T) {
	task := CompletedTask("done")
	ran := false
	task.OnComplete(func() { ran = true })
	assert.True(t, ran)
}

func TestTask_ContinuationsFireOnFault(t *testing.T) {
	task := NewTask[int]()
	fired := 0
	task.OnComplete(func() { fired++ })
	require.NoError(t, task.SetFault(errBoom))
	assert.Equal(t, 1, fired)
}

func TestTask_Done(t *testing.T) {
	task := NewTask[int]()
	done := task.Done()
	select {
	case <-done:
		t.Fatal("done before completion")
	default:
	}
	require.NoError(t, task.Complete(1))
	<-done
	<-task.Done()

	<-CompletedTask(2).Done()
}

func TestTask_AwaitSynctest(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		task := NewTask[string]()
		go func() {
			time.Sleep(time.Second)
			_ = task.Complete("late")
		}()

		res, err := task.Await(bubbleCtx(t))
		require.NoError(t, err)
		assert.Equal(t, "late", res.Payload())
	})
}

func TestTask_AwaitCancelledSynctest(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		task := NewTask[int]()
		ctx, cancel := context.WithTimeout(bubbleCtx(t), time.Second)
		defer cancel()

		res, err := task.Await(ctx)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.False(t, task.IsCompleted())
	})
}

func TestTask_SingleWinnerSynctest(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		task := NewTask[int]()
		var fired, wins atomic.Int32
		task.OnComplete(func() { fired.Add(1) })

		const producers = 32
		for i := range producers {
			go func() {
				var err error
				if i%2 == 0 {
					err = task.Complete(i + 1)
				} else {
					err = task.SetFault(errors.New("lost"))
				}
				if err == nil {
					wins.Add(1)
				}
			}()
		}
		synctest.Wait()

		assert.Equal(t, int32(1), wins.Load())
		assert.Equal(t, int32(1), fired.Load())
		assert.True(t, task.IsCompleted())
	})
}

func TestGo_Synctest(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctx := bubbleCtx(t)

		ok := Go(ctx, func(context.Context) *Result[int] {
			time.Sleep(10 * time.Millisecond)
			return OkWithMessage(5, "computed")
		})
		res, err := ok.Await(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, res.Payload())
		assert.Equal(t, "computed", res.Message())

		panicky := Go(ctx, func(context.Context) *Result[int] { panic("worker died") })
		_, err = panicky.Await(ctx)
		assert.True(t, IsPanic(err))
		assert.Equal(t, TaskFaulted, panicky.State())

		nilResult := Go(ctx, func(context.Context) *Result[int] { return nil })
		res, err = nilResult.Await(ctx)
		require.NoError(t, err)
		assert.True(t, res.Success())
	})
}

func TestGoValue_Synctest(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctx := bubbleCtx(t)

		task := GoValue(ctx, func(context.Context) (string, error) { return "v", nil })
		res, err := task.Await(ctx)
		require.NoError(t, err)
		assert.Equal(t, "v", res.Payload())

		task = GoValue(ctx, func(context.Context) (string, error) {
			return "", errors.Join(errors.New("a"), errors.New("b"))
		})
		res, err = task.Await(ctx)
		require.NoError(t, err)
		assert.Equal(t, TaskCompletedError, task.State())
		assert.Equal(t, []string{"a", "b"}, errorMessages(res))
	})
}

func TestGoStatus_Synctest(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctx := bubbleCtx(t)
		task := GoStatus(ctx, func(context.Context) *Status { return Fail("s1").AddError("s2") })
		res, err := task.Await(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"s1", "s2"}, errorMessages(res))
		assert.Equal(t, TaskCompletedError, task.State())
	})
}

func TestAwaitMerge_Synctest(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctx := bubbleCtx(t)
		s := New()

		v := AwaitMerge(ctx, s, GoValue(ctx, func(context.Context) (int, error) { return 4, nil }))
		assert.Equal(t, 4, v)
		assert.True(t, s.Success())

		v = AwaitMerge(ctx, s, Go(ctx, func(context.Context) *Result[int] { panic("x") }), KeepFault())
		assert.Equal(t, 0, v)
		assert.True(t, s.HasFaults())

		short, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		v = AwaitMerge(short, s, NewTask[int](), KeepFault())
		assert.Equal(t, 0, v)
		assert.True(t, Interrupted(s))
		assert.Len(t, s.Errors(), 2)
	})
}
