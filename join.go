// join.go — exposing an outcome as a single Go error.
//
// Goals:
//   • Let outcomes cross APIs that speak plain `error`:
//       - Err() is nil on success, non-nil otherwise.
//       - Error() == newline-joined developer messages (like errors.Join).
//       - Unwrap() []error exposes every Error, then every fault, so
//         errors.Is/As reach both the structured records and the causes.
//   • Keep diagnostics rich:
//       - "%+v" prints each child with its own "%+v" (panic faults print
//         their stacks), "%v"/"%s"/"%q" keep the concise form.
//
// ErrorsOf(Err()) round-trips the structured errors exactly.
package xgxstatus

import (
	"fmt"
	"io"
	"strings"
)

// failure is the error returned by Err. It owns copies of the slices.
type failure struct {
	errs   []Error
	faults []error
}

func (f *failure) Error() string {
	return joinErrors(f.errs, "\n", Error.Message)
}

// Unwrap exposes the children to stdlib traversal (errors.Is/As walk pre-order).
func (f *failure) Unwrap() []error {
	out := make([]error, 0, len(f.errs)+len(f.faults))
	for _, e := range f.errs {
		out = append(out, e)
	}
	return append(out, f.faults...)
}

// Format implements fmt.Formatter.
//
//	%v, %s  → Error()
//	%q      → quoted Error()
//	%+v     → every error verbosely, then every fault with %+v
func (f *failure) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			writeVerboseEntries(s, f.errs, f.faults)
			return
		}
		_, _ = io.WriteString(s, f.Error())
	case 's':
		_, _ = io.WriteString(s, f.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", f.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(%T)", verb, f)
	}
}

// Err returns nil when the outcome succeeded, otherwise an error describing
// every recorded Error and wrapping every fault.
func (c *core) Err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return &failure{errs: c.Errors(), faults: c.Faults()}
}

// writeVerboseEntries renders the errors/faults sections used by %+v.
func writeVerboseEntries(w io.Writer, errs []Error, faults []error) {
	if len(errs) > 0 {
		_, _ = io.WriteString(w, "errors:")
		for _, e := range errs {
			_, _ = io.WriteString(w, "\n  ")
			writeVerboseError(w, e)
		}
	}
	if len(faults) > 0 {
		if len(errs) > 0 {
			_, _ = io.WriteString(w, "\n")
		}
		_, _ = io.WriteString(w, "faults:")
		for _, fe := range faults {
			// Indent nested multi-line output (stacks) under the entry.
			text := fmt.Sprintf("%+v", fe)
			_, _ = io.WriteString(w, "\n  "+strings.ReplaceAll(text, "\n", "\n    "))
		}
	}
}
