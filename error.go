// error.go — the Error record carried by Status and Result.
//
// An Error describes one expected, user-describable failure:
//   - code        machine-readable number (CodeUnset when not classified)
//   - group       optional grouping tag (e.g. the entity or subsystem)
//   - member      optional member tag (e.g. the offending field)
//   - message     developer-facing text
//   - userMessage user-safe text; falls back to message when empty
//
// Errors are values. They are immutable after construction and safe to share
// between outcomes; merging copies them, never the slice that holds them.
package xgxstatus

// CodeUnset is the code of an Error that was not classified.
const CodeUnset = -1

// Error is a single structured failure. The zero value carries code 0 and an
// empty message; use NewError so the code defaults to CodeUnset.
//
// Error implements the error interface so it interoperates with errors.Is/As
// and can be returned where plain errors are expected.
type Error struct {
	code    int
	group   string
	member  string
	message string
	userMsg string
}

// ErrorOption customizes an Error built by NewError.
type ErrorOption func(*Error)

// WithCode sets the classification code.
func WithCode(code int) ErrorOption {
	return func(e *Error) { e.code = code }
}

// WithGroup sets the grouping tag.
func WithGroup(group string) ErrorOption {
	return func(e *Error) { e.group = group }
}

// WithMember sets the member tag, usually a field or property name.
func WithMember(member string) ErrorOption {
	return func(e *Error) { e.member = member }
}

// WithUserMessage sets the user-safe message.
func WithUserMessage(msg string) ErrorOption {
	return func(e *Error) { e.userMsg = msg }
}

// NewError creates an Error with the given developer message.
//
// Example:
//
//	err := xgxstatus.NewError("user row missing",
//	    xgxstatus.WithCode(404),
//	    xgxstatus.WithGroup("users"),
//	    xgxstatus.WithUserMessage("We could not find that account."))
func NewError(message string, opts ...ErrorOption) Error {
	e := Error{code: CodeUnset, message: message}
	for _, opt := range opts {
		if opt != nil {
			opt(&e)
		}
	}
	return e
}

// Error returns the developer message.
func (e Error) Error() string { return e.message }

func (e Error) Code() int       { return e.code }
func (e Error) Group() string   { return e.group }
func (e Error) Member() string  { return e.member }
func (e Error) Message() string { return e.message }

// UserMessage returns the user-safe message, or the developer message when no
// user message was supplied.
func (e Error) UserMessage() string {
	if e.userMsg == "" {
		return e.message
	}
	return e.userMsg
}

// faultError builds the visible Error that accompanies a captured fault. A
// fault that already is an Error keeps its code, group and member.
func faultError(err error) Error {
	if e, ok := err.(Error); ok {
		return e
	}
	return NewError(err.Error())
}
