// format.go — fmt.Formatter implementations for Error, Status and Result.
//
// Behavior:
//
//   %s, %v   → concise: Error.Message / outcome Message().
//   %q       → quoted concise form.
//   %+v      → verbose, multi-line:
//                msg="Failed with 2 error(s)" payload=<v>
//                errors:
//                  code=404 group=users member=id msg="user 7 not found" user="..."
//                faults:
//                  <fault formatted with %+v>
//
// Rationale:
//   - Keep the core free of logging/JSON policy; only fmt formatting.
//   - Deterministic order: errors and faults print in insertion order.
package xgxstatus

import (
	"fmt"
	"io"
)

// writeVerboseError writes one Error's fields on a single line. Empty tags and
// an unset code are omitted; the user message is printed only when it differs.
func writeVerboseError(w io.Writer, e Error) {
	if e.code != CodeUnset {
		_, _ = fmt.Fprintf(w, "code=%d ", e.code)
	}
	if e.group != "" {
		_, _ = fmt.Fprintf(w, "group=%s ", e.group)
	}
	if e.member != "" {
		_, _ = fmt.Fprintf(w, "member=%s ", e.member)
	}
	_, _ = fmt.Fprintf(w, "msg=%q", e.message)
	if e.userMsg != "" && e.userMsg != e.message {
		_, _ = fmt.Fprintf(w, " user=%q", e.userMsg)
	}
}

func formatConcise(s fmt.State, verb rune, text string) {
	switch verb {
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", text)
	case 'v', 's':
		_, _ = io.WriteString(s, text)
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(%s)", verb, text)
	}
}

// -----------------------------------------------------------------------------
// Error formatting
// -----------------------------------------------------------------------------

func (e Error) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		writeVerboseError(s, e)
		return
	}
	formatConcise(s, verb, e.message)
}

// -----------------------------------------------------------------------------
// Outcome formatting
// -----------------------------------------------------------------------------

func (st *Status) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		_, _ = fmt.Fprintf(s, "msg=%q", st.Message())
		writeVerboseBody(s, &st.core)
		return
	}
	formatConcise(s, verb, st.Message())
}

func (r *Result[T]) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		_, _ = fmt.Fprintf(s, "msg=%q", r.Message())
		if r.HasPayload() {
			_, _ = fmt.Fprintf(s, " payload=%+v", r.payload)
		}
		writeVerboseBody(s, &r.core)
		return
	}
	formatConcise(s, verb, r.Message())
}

func writeVerboseBody(w io.Writer, c *core) {
	if len(c.errs) == 0 && len(c.faults) == 0 {
		return
	}
	_, _ = io.WriteString(w, "\n")
	writeVerboseEntries(w, c.errs, c.faults)
}
