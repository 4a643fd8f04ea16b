// result.go — the payload-carrying outcome accumulator.
//
// Result[T] is a Status with a payload slot. Accumulation and merging are the
// same as Status (shared core); Result adds the payload rules:
//
//   - HasPayload reports payload != zero value of T. A payload equal to the
//     zero value is indistinguishable from "absent". Choose payload types whose
//     zero value is never a valid success payload (pointers, structs with a
//     required field, ...), or treat HasPayload as advisory.
//   - Merge adopts the other side's payload only when the receiver has none.
//
// Conversions between Status and Result are explicit: Ok, As, WithPayload,
// Convert, ConvertWith and ToStatus.
package xgxstatus

// Result is the outcome of an operation that produces a value of type T.
// The zero value is a successful Result without a payload.
type Result[T any] struct {
	core
	payload T
}

// Payload returns the stored payload. It is returned even when errors exist;
// check Success or use Get when that matters.
func (r *Result[T]) Payload() T { return r.payload }

// HasPayload reports whether the payload differs from T's zero value.
func (r *Result[T]) HasPayload() bool { return !isZero(r.payload) }

// SetPayload stores v.
func (r *Result[T]) SetPayload(v T) *Result[T] {
	r.payload = v
	return r
}

// Get returns the payload and Err(), in the usual Go (value, error) shape.
func (r *Result[T]) Get() (T, error) {
	return r.payload, r.Err()
}

// AddError appends an Error built from message and an optional user message.
func (r *Result[T]) AddError(message string, userMessage ...string) *Result[T] {
	r.addError(newMessageError(message, userMessage))
	return r
}

// Add appends e.
func (r *Result[T]) Add(e Error) *Result[T] {
	r.addError(e)
	return r
}

// AddErrors appends errs in order.
func (r *Result[T]) AddErrors(errs ...Error) *Result[T] {
	r.errs = append(r.errs, errs...)
	return r
}

// AddFault keeps err as a fault and appends an Error with its message.
func (r *Result[T]) AddFault(err error) *Result[T] {
	r.addFault(err)
	return r
}

// AddErrorIfNil appends an error when v is nil.
func (r *Result[T]) AddErrorIfNil(v any, message string, userMessage ...string) *Result[T] {
	if isNil(v) {
		return r.AddError(message, userMessage...)
	}
	return r
}

// AddErrorIfZero appends an error when v is nil or the zero value of its type.
func (r *Result[T]) AddErrorIfZero(v any, message string, userMessage ...string) *Result[T] {
	if isNilOrZero(v) {
		return r.AddError(message, userMessage...)
	}
	return r
}

// SetMessage overrides the success message. Blank messages are ignored.
func (r *Result[T]) SetMessage(msg string) *Result[T] {
	r.setMessage(msg)
	return r
}

// Merge performs the base merge and then, if r has no payload and other is a
// Result[T] that has one, adopts other's payload. r's payload is never
// replaced by a merge.
func (r *Result[T]) Merge(other Reader) *Result[T] {
	r.merge(other)
	if IsNil(other) || r.HasPayload() {
		return r
	}
	if p, ok := other.(payloadHolder[T]); ok && p.HasPayload() {
		r.payload = p.Payload()
	}
	return r
}

// MergeInto merges r into dst and returns dst.
func (r *Result[T]) MergeInto(dst *Result[T]) *Result[T] {
	return dst.Merge(r)
}

// MergeIntoStatus merges r into dst and returns r's payload.
func (r *Result[T]) MergeIntoStatus(dst *Status) T {
	dst.Merge(r)
	return r.payload
}

// ToStatus returns a new Status with r's errors, faults and message. The
// payload is dropped.
func (r *Result[T]) ToStatus() *Status {
	s := &Status{}
	s.merge(r)
	return s
}

var _ Accumulator[*Result[int]] = (*Result[int])(nil)
