// predicates.go — small, policy-free questions about outcomes and faults.
//
// Scope:
//   - Reader predicates look at the recorded Errors (codes, groups, members).
//   - Fault predicates use errors.Is / errors.As, so they traverse single and
//     multi Unwrap chains alike, including a recovered panic(err).
//
// Out of scope: HTTP mapping, retry policy, logging.
package xgxstatus

import (
	"context"
	"errors"
)

// HasCode reports whether any recorded Error carries code.
func HasCode(r Reader, code int) bool {
	return anyError(r, func(e Error) bool { return e.code == code })
}

// HasGroup reports whether any recorded Error belongs to group.
func HasGroup(r Reader, group string) bool {
	return anyError(r, func(e Error) bool { return e.group == group })
}

// ErrorsFor returns the recorded Errors tagged with member, in order.
func ErrorsFor(r Reader, member string) []Error {
	if IsNil(r) {
		return nil
	}
	var out []Error
	for _, e := range r.Errors() {
		if e.member == member {
			out = append(out, e)
		}
	}
	return out
}

// FirstError returns the earliest recorded Error.
func FirstError(r Reader) (Error, bool) {
	if IsNil(r) {
		return Error{}, false
	}
	errs := r.Errors()
	if len(errs) == 0 {
		return Error{}, false
	}
	return errs[0], true
}

// FaultIs reports whether any retained fault matches target (errors.Is).
func FaultIs(r Reader, target error) bool {
	if IsNil(r) {
		return false
	}
	for _, f := range r.Faults() {
		if errors.Is(f, target) {
			return true
		}
	}
	return false
}

// FaultAs finds the first retained fault that matches E (errors.As).
func FaultAs[E error](r Reader) (E, bool) {
	var target E
	if IsNil(r) {
		return target, false
	}
	for _, f := range r.Faults() {
		if errors.As(f, &target) {
			return target, true
		}
	}
	return target, false
}

// IsPanic reports whether err is (or wraps) a recovered panic.
func IsPanic(err error) bool {
	var p *PanicError
	return errors.As(err, &p)
}

// IsInterrupt reports whether err denotes cancellation or a deadline expiry
// (context.Canceled / context.DeadlineExceeded anywhere in its chain).
func IsInterrupt(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Interrupted reports whether any retained fault is an interrupt. Awaits
// cancelled through their context are recorded this way under KeepFault.
func Interrupted(r Reader) bool {
	if IsNil(r) {
		return false
	}
	for _, f := range r.Faults() {
		if IsInterrupt(f) {
			return true
		}
	}
	return false
}

func anyError(r Reader, match func(Error) bool) bool {
	if IsNil(r) {
		return false
	}
	for _, e := range r.Errors() {
		if match(e) {
			return true
		}
	}
	return false
}
