// unwrap.go — splitting joined error trees into branches.
//
// Design notes (Go ≥1.20):
//   - errors.Join returns an error with Unwrap() []error; only those multi
//     nodes are split. A single-wrap chain (fmt.Errorf("ctx: %w", err)) stays
//     one branch so its full message survives.
//   - Outcome errors (Err()) are branches of their own; ErrorsOf reads their
//     structured entries directly.
//   - Cycles can only form through pointers, so repeated nodes are detected by
//     pointer identity. Value-typed errors (e.g. two equal Error values) are
//     never collapsed; the depth cap bounds anything else.
package xgxstatus

import "reflect"

type multiUnwrapper interface{ Unwrap() []error }

// ptrID returns a pointer identity for pointer-typed dynamic errors.
func ptrID(err error) (uintptr, bool) {
	if err == nil {
		return 0, false
	}
	rv := reflect.ValueOf(err)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return rv.Pointer(), true
	}
	return 0, false
}

// markSeen returns false if err is a pointer that was already visited.
func markSeen(err error, seen map[uintptr]struct{}) bool {
	if err == nil {
		return false
	}
	if id, ok := ptrID(err); ok {
		if _, dup := seen[id]; dup {
			return false
		}
		seen[id] = struct{}{}
	}
	return true
}

// splitJoined returns the branches of err: multi-unwrap nodes are expanded
// depth-first, left to right; every other node is returned as-is. A pointer
// node reachable twice is visited once.
func splitJoined(err error) []error {
	if err == nil {
		return nil
	}
	if _, ok := err.(multiUnwrapper); !ok {
		return []error{err}
	}
	if _, ok := err.(*failure); ok {
		return []error{err}
	}

	const maxDepth = 1 << 12 // generous cap against runaway graphs

	out := make([]error, 0, 4)
	stack := make([]error, 0, 8)
	seen := make(map[uintptr]struct{}, 16)

	stack = append(stack, err)
	_ = markSeen(err, seen)

	for len(stack) > 0 && len(stack) < maxDepth {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		m, ok := cur.(multiUnwrapper)
		if _, outcome := cur.(*failure); !ok || outcome {
			out = append(out, cur)
			continue
		}
		// Push in reverse for left-to-right DFS.
		kids := m.Unwrap()
		for i := len(kids) - 1; i >= 0; i-- {
			if c := kids[i]; c != nil && markSeen(c, seen) {
				stack = append(stack, c)
			}
		}
	}
	return out
}
