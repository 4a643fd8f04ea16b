// status.go — the untyped outcome accumulator and the shared core.
//
// Model:
//   - core holds the ordered errors, the ordered faults and the success
//     message. Both Status and Result[T] embed it, so every query below is
//     shared and merge logic lives in exactly one place (merge.go).
//   - Mutators are defined per concrete type and return that type, keeping
//     chains fluent: New().AddError("a").Merge(other).AddFault(err).
//
// Ownership:
//   - A Status is owned by one flow at a time. It is NOT safe for concurrent
//     mutation; collect children first, then merge sequentially (see gather.go).
//   - Queries return copies; callers may mutate them freely.
package xgxstatus

import (
	"fmt"
	"reflect"
	"strings"
)

// DefaultSuccessMessage is the message of an outcome that has no errors and
// was never given another message.
const DefaultSuccessMessage = "Success"

// Reader is the read-only view shared by Status and Result[T]. Merge accepts
// any Reader, so untyped and typed outcomes interoperate.
type Reader interface {
	Errors() []Error
	Faults() []error
	Success() bool
	HasErrors() bool
	HasFaults() bool
	Message() string
}

// Accumulator is the mutator contract. S is the concrete outcome type so every
// method returns the receiver with its own type (*Status or *Result[T]).
//
// Generic helpers such as Do and Call are written against Accumulator and work
// with both outcome kinds.
type Accumulator[S any] interface {
	Reader
	AddError(message string, userMessage ...string) S
	Add(e Error) S
	AddErrors(errs ...Error) S
	AddFault(err error) S
	AddErrorIfNil(v any, message string, userMessage ...string) S
	AddErrorIfZero(v any, message string, userMessage ...string) S
	Merge(other Reader) S
}

type core struct {
	errs       []Error
	faults     []error
	successMsg string
}

func (c *core) Errors() []Error {
	if len(c.errs) == 0 {
		return nil
	}
	out := make([]Error, len(c.errs))
	copy(out, c.errs)
	return out
}

func (c *core) Faults() []error {
	if len(c.faults) == 0 {
		return nil
	}
	out := make([]error, len(c.faults))
	copy(out, c.faults)
	return out
}

// Success reports whether no errors were recorded.
func (c *core) Success() bool   { return len(c.errs) == 0 }
func (c *core) HasErrors() bool { return len(c.errs) > 0 }
func (c *core) HasFaults() bool { return len(c.faults) > 0 }

// Message returns the success message, or "Failed with N error(s)" once any
// error was recorded. It never lists the errors; see ErrorString.
func (c *core) Message() string {
	if len(c.errs) > 0 {
		return fmt.Sprintf("Failed with %d error(s)", len(c.errs))
	}
	if c.successMsg == "" {
		return DefaultSuccessMessage
	}
	return c.successMsg
}

// ErrorString joins the developer messages with newlines. It is empty when
// there are no errors.
func (c *core) ErrorString() string { return c.ErrorStringSep("\n") }

// ErrorStringSep joins the developer messages with sep.
func (c *core) ErrorStringSep(sep string) string {
	return joinErrors(c.errs, sep, Error.Message)
}

// UserString joins the user-safe messages with newlines. It is empty when
// there are no errors.
func (c *core) UserString() string { return c.UserStringSep("\n") }

// UserStringSep joins the user-safe messages with sep.
func (c *core) UserStringSep(sep string) string {
	return joinErrors(c.errs, sep, Error.UserMessage)
}

func (c *core) addError(e Error) { c.errs = append(c.errs, e) }

// addFault records err and its visible Error. Faults always surface as errors.
func (c *core) addFault(err error) {
	if err == nil {
		return
	}
	c.faults = append(c.faults, err)
	c.errs = append(c.errs, faultError(err))
}

func (c *core) setMessage(msg string) {
	if strings.TrimSpace(msg) != "" {
		c.successMsg = msg
	}
}

func joinErrors(errs []Error, sep string, text func(Error) string) string {
	if len(errs) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, e := range errs {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(text(e))
	}
	return sb.String()
}

// Status is the outcome of an operation without a payload. The zero value is
// a successful Status with DefaultSuccessMessage.
type Status struct {
	core
}

// AddError appends an Error built from message and an optional user message.
func (s *Status) AddError(message string, userMessage ...string) *Status {
	s.addError(newMessageError(message, userMessage))
	return s
}

// Add appends e.
func (s *Status) Add(e Error) *Status {
	s.addError(e)
	return s
}

// AddErrors appends errs in order.
func (s *Status) AddErrors(errs ...Error) *Status {
	s.errs = append(s.errs, errs...)
	return s
}

// AddFault keeps err as a fault and appends an Error with its message.
// A nil err is ignored.
func (s *Status) AddFault(err error) *Status {
	s.addFault(err)
	return s
}

// AddErrorIfNil appends an error when v is nil (including typed nil pointers,
// maps, slices, channels and funcs).
func (s *Status) AddErrorIfNil(v any, message string, userMessage ...string) *Status {
	if isNil(v) {
		return s.AddError(message, userMessage...)
	}
	return s
}

// AddErrorIfZero appends an error when v is nil or the zero value of its type.
func (s *Status) AddErrorIfZero(v any, message string, userMessage ...string) *Status {
	if isNilOrZero(v) {
		return s.AddError(message, userMessage...)
	}
	return s
}

// SetMessage overrides the success message. Blank messages are ignored.
func (s *Status) SetMessage(msg string) *Status {
	s.setMessage(msg)
	return s
}

// Merge appends other's errors and faults to s. When s is still error-free
// afterwards it adopts other's Message. See merge.go for the full protocol.
func (s *Status) Merge(other Reader) *Status {
	s.merge(other)
	return s
}

// MergeInto merges s into dst and returns dst.
func (s *Status) MergeInto(dst *Status) *Status {
	return dst.Merge(s)
}

func newMessageError(message string, userMessage []string) Error {
	e := Error{code: CodeUnset, message: message}
	if len(userMessage) > 0 {
		e.userMsg = userMessage[0]
	}
	return e
}

// isNil reports whether v is nil or holds a nil reference-kind value.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// isNilOrZero reports whether v is nil or holds the zero value of its
// dynamic type.
func isNilOrZero(v any) bool {
	return isNil(v) || reflect.ValueOf(v).IsZero()
}

var _ Accumulator[*Status] = (*Status)(nil)
