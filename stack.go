// stack.go — stack capture for recovered panics.
//
// Design goals:
//   - Correctness: use runtime.Callers + runtime.CallersFrames for accurate
//     frame resolution (handles inlining correctly).
//   - Cost only on the fault path: stacks are captured when a wrapper or a
//     task recovers a panic, never on success.
//   - Bounded depth.
package xgxstatus

import (
	"runtime"
	"strings"
)

// Frame represents a single call site in a stack trace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

const (
	// defaultMaxDepth bounds capture on exceptional paths.
	defaultMaxDepth = 64
)

// captureStackDefault captures a stack skipping 'skip' frames beyond its caller,
// with the default depth bound.
//
// When called from a deferred recover, the first frames belong to the runtime's
// panic machinery (runtime.gopanic and friends); captureStack drops them so the
// stack starts at the panicking function.
func captureStackDefault(skip int) Stack {
	return captureStack(skip, defaultMaxDepth)
}

// captureStack captures up to maxDepth frames, skipping 'skip' initial frames.
//
// Skip accounting:
//   • +1 for runtime.Callers itself
//   • +1 for captureStack
//   • +1 for captureStackDefault
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)

	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if isPanicFrame(fr.Function) {
			// Everything up to here is recover/defer plumbing.
			out = out[:0]
		}
		if !more {
			break
		}
	}
	return out
}

func isPanicFrame(fn string) bool {
	return fn == "runtime.gopanic" || fn == "runtime.sigpanic" || strings.HasPrefix(fn, "runtime.panic")
}
