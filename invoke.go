// invoke.go — invocation wrappers that turn faults into outcome content.
//
// Contract (identical for every wrapper here and in invoke_context.go):
//  1. Run the operation exactly once.
//  2. On normal return: an outcome returned by the operation is merged into
//     the receiver and its payload returned; a bare value is returned (and,
//     for Result receivers that own the value, stored as the payload).
//  3. On a fault (a non-nil returned error or a panic), record it:
//     KeepFault() → AddFault(fault); default → the visible Error only. A
//     fault that is an Error is recorded as is.
//     Typed wrappers then return the zero value of T.
//  4. Never propagate the fault. Panics are recovered and become *PanicError.
//
// Two families:
//   - Invoke*   create a fresh Status/Result and return it.
//   - Do*/Call* accumulate into an existing outcome, *Status or *Result[T]
//     alike (anything that satisfies Accumulator).
package xgxstatus

// InvokeOption configures a wrapper call.
type InvokeOption func(*invokeConfig)

type invokeConfig struct {
	keepFault bool
	observers []func(error)
}

// KeepFault retains contained faults in the outcome's fault list (AddFault).
// Without it only the fault's message is recorded as an Error.
func KeepFault() InvokeOption {
	return func(c *invokeConfig) { c.keepFault = true }
}

// OnFault registers fn to observe every contained fault after it has been
// recorded. Observers run synchronously on the calling goroutine; they must
// not panic.
func OnFault(fn func(error)) InvokeOption {
	return func(c *invokeConfig) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

func newInvokeConfig(opts []InvokeOption) invokeConfig {
	var cfg invokeConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// contain runs fn and returns its error or the recovered panic.
func contain(fn func() error) (fault error) {
	defer func() {
		if v := recover(); v != nil {
			fault = newPanicError(v, 0)
		}
	}()
	return fn()
}

// record routes a contained fault into s.
func record[S Accumulator[S]](s S, fault error, opts []InvokeOption) {
	cfg := newInvokeConfig(opts)
	if cfg.keepFault {
		s.AddFault(fault)
	} else {
		s.Add(faultError(fault))
	}
	for _, observe := range cfg.observers {
		observe(fault)
	}
}

// -----------------------------------------------------------------------------
// Accumulate into an existing outcome
// -----------------------------------------------------------------------------

// Do runs fn and records its fault, if any, in s. It returns s.
func Do[S Accumulator[S]](s S, fn func() error, opts ...InvokeOption) S {
	if fault := contain(fn); fault != nil {
		record(s, fault, opts)
	}
	return s
}

// DoArg is Do for an operation that takes one argument.
func DoArg[S Accumulator[S], P any](s S, fn func(P) error, arg P, opts ...InvokeOption) S {
	if fault := contain(func() error { return fn(arg) }); fault != nil {
		record(s, fault, opts)
	}
	return s
}

// DoMerge runs fn and merges the outcome it returns into s. A nil outcome is
// ignored.
func DoMerge[S Accumulator[S], R Reader](s S, fn func() R, opts ...InvokeOption) S {
	var out R
	fault := contain(func() error {
		out = fn()
		return nil
	})
	if fault != nil {
		record(s, fault, opts)
		return s
	}
	return s.Merge(out)
}

// Call runs fn and returns its value. On a fault the fault is recorded in s
// and the zero value is returned.
func Call[S Accumulator[S], T any](s S, fn func() (T, error), opts ...InvokeOption) T {
	var out T
	fault := contain(func() error {
		var err error
		out, err = fn()
		return err
	})
	if fault != nil {
		record(s, fault, opts)
		var zero T
		return zero
	}
	return out
}

// CallResult runs fn, merges the Result it returns into s and returns that
// Result's payload. On a fault the fault is recorded in s and the zero value
// is returned.
func CallResult[S Accumulator[S], T any](s S, fn func() *Result[T], opts ...InvokeOption) T {
	var out *Result[T]
	fault := contain(func() error {
		out = fn()
		return nil
	})
	var zero T
	if fault != nil {
		record(s, fault, opts)
		return zero
	}
	if out == nil {
		return zero
	}
	s.Merge(out)
	return out.payload
}

// Invoke is Do with s as receiver.
func (s *Status) Invoke(fn func() error, opts ...InvokeOption) *Status {
	return Do(s, fn, opts...)
}

// Invoke is Do with r as receiver.
func (r *Result[T]) Invoke(fn func() error, opts ...InvokeOption) *Result[T] {
	return Do(r, fn, opts...)
}

// InvokeSet runs fn and stores its value as r's payload. On a fault the fault
// is recorded, the payload is left untouched and the zero value is returned.
func (r *Result[T]) InvokeSet(fn func() (T, error), opts ...InvokeOption) T {
	var v T
	fault := contain(func() error {
		var err error
		v, err = fn()
		return err
	})
	if fault != nil {
		record(r, fault, opts)
		var zero T
		return zero
	}
	r.payload = v
	return v
}

// InvokeMerge runs fn, merges the returned Result into r (r keeps its own
// payload if it has one) and returns the returned Result's payload.
func (r *Result[T]) InvokeMerge(fn func() *Result[T], opts ...InvokeOption) T {
	return CallResult(r, fn, opts...)
}

// -----------------------------------------------------------------------------
// Fresh outcomes
// -----------------------------------------------------------------------------

// Invoke runs fn and returns a new Status describing its outcome.
func Invoke(fn func() error, opts ...InvokeOption) *Status {
	return Do(New(), fn, opts...)
}

// InvokeArg runs fn(arg) and returns a new Status describing its outcome.
func InvokeArg[P any](fn func(P) error, arg P, opts ...InvokeOption) *Status {
	return DoArg(New(), fn, arg, opts...)
}

// InvokeStatus runs fn and returns a new Status with fn's Status merged in.
func InvokeStatus(fn func() *Status, opts ...InvokeOption) *Status {
	return DoMerge(New(), fn, opts...)
}

// InvokeResult runs fn and returns a new Result carrying its value, or its
// fault.
func InvokeResult[T any](fn func() (T, error), opts ...InvokeOption) *Result[T] {
	r := NewResult[T]()
	r.InvokeSet(fn, opts...)
	return r
}

// InvokeResultOf runs fn and returns a new Result with fn's Result merged in.
func InvokeResultOf[T any](fn func() *Result[T], opts ...InvokeOption) *Result[T] {
	r := NewResult[T]()
	CallResult(r, fn, opts...)
	return r
}
