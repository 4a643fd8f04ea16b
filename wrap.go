// wrap.go — turning panics and foreign errors into status content.
//
// Purpose
//   - PanicError: the fault recorded when a wrapper or a task recovers a
//     panic. It keeps the original value and the stack at the panic site.
//   - ErrorsOf: convert any error into structured Errors, splitting joined
//     errors (errors.Join, multi-%w, Status.Err) into one entry per branch.
package xgxstatus

import (
	"fmt"
	"io"
)

// PanicError is a recovered panic. Error() returns "panic: <value>".
type PanicError struct {
	Value any
	Stack Stack
}

// newPanicError wraps a recovered value. skip counts frames above the caller.
func newPanicError(v any, skip int) *PanicError {
	return &PanicError{Value: v, Stack: captureStackDefault(skip + 1)}
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

// Unwrap returns the panic value when it is an error, so errors.Is/As can see
// through a recovered panic(err).
func (p *PanicError) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}
	return nil
}

// Format implements fmt.Formatter; %+v appends the stack (most recent first).
func (p *PanicError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, p.Error())
			if len(p.Stack) > 0 {
				_, _ = io.WriteString(s, "\nstack:")
				for _, fr := range p.Stack {
					_, _ = fmt.Fprintf(s, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
				}
			}
			return
		}
		_, _ = io.WriteString(s, p.Error())
	case 's':
		_, _ = io.WriteString(s, p.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", p.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(%T)", verb, p)
	}
}

// ErrorsOf converts err into Errors.
//   - nil → nil
//   - an error from Status.Err/Result.Err → its Errors, exactly
//   - a joined error → one entry per branch, depth-first, left to right
//   - an Error → itself; anything else → NewError(err.Error())
func ErrorsOf(err error) []Error {
	if err == nil {
		return nil
	}
	branches := splitJoined(err)
	out := make([]Error, 0, len(branches))
	for _, b := range branches {
		switch v := b.(type) {
		case Error:
			out = append(out, v)
		case *failure:
			out = append(out, v.errs...)
		default:
			out = append(out, NewError(b.Error()))
		}
	}
	return out
}
