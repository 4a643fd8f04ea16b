// construct.go — constructors for Status and Result.
//
// Scope:
//   - Pragmatic starting points for the common shapes: empty, success with a
//     message, failure with a message/Errors, failure from a fault.
//   - Everything here returns a fresh value owned by the caller.
package xgxstatus

// New returns an empty, successful Status.
func New() *Status { return &Status{} }

// NewWithMessage returns a successful Status with a custom success message.
// A blank msg keeps DefaultSuccessMessage.
func NewWithMessage(msg string) *Status {
	s := &Status{}
	s.setMessage(msg)
	return s
}

// Fail returns a Status holding one error.
func Fail(message string, userMessage ...string) *Status {
	return New().AddError(message, userMessage...)
}

// FailWith returns a Status holding errs.
func FailWith(errs ...Error) *Status {
	return New().AddErrors(errs...)
}

// FromFault returns a Status that keeps err as a fault (and its message as an
// error). A nil err yields a successful Status.
func FromFault(err error) *Status {
	return New().AddFault(err)
}

// NewResult returns an empty, successful Result without a payload.
func NewResult[T any]() *Result[T] { return &Result[T]{} }

// Ok returns a successful Result carrying v.
func Ok[T any](v T) *Result[T] {
	return &Result[T]{payload: v}
}

// OkWithMessage returns a successful Result carrying v with a custom success
// message.
func OkWithMessage[T any](v T, msg string) *Result[T] {
	r := &Result[T]{payload: v}
	r.setMessage(msg)
	return r
}

// Failed returns a Result[T] holding one error and no payload.
func Failed[T any](message string, userMessage ...string) *Result[T] {
	return NewResult[T]().AddError(message, userMessage...)
}

// FailedWith returns a Result[T] holding errs and no payload.
func FailedWith[T any](errs ...Error) *Result[T] {
	return NewResult[T]().AddErrors(errs...)
}
