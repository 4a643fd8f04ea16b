// doc.go — package documentation for xgx-status
//
// Package xgxstatus provides an outcome value for operations that can fail in
// more than one way at once. A *Status (no payload) or *Result[T] (payload of
// type T) accumulates structured Errors and captured faults, merges with
// other outcomes under one fixed protocol, and is produced safely by
// invocation wrappers that turn returned errors and panics into content
// instead of unwinding the caller.
//
// # Errors and Faults
//
//   - Error: an expected, user-describable failure. Code (CodeUnset when not
//     given), group, member, developer message and an optional user-facing
//     message that falls back to the developer message.
//   - Fault: an unexpected error or a recovered panic (*PanicError). A fault
//     recorded with AddFault is kept in Faults() AND surfaces as an Error
//     carrying its message.
//
// Wrappers record faults as Errors only, unless KeepFault() is passed:
//
//	s := xgxstatus.Invoke(save)                         // Errors only
//	s = xgxstatus.Invoke(save, xgxstatus.KeepFault())   // Errors + Faults
//
// # Merge Protocol
//
//	a.Merge(b)
//
//   - appends b's Errors, then b's Faults (never deduplicated)
//   - if a has no Errors afterwards, a's message becomes b.Message()
//   - Result only: a adopts b's payload when a has none; a's payload wins ties
//
// Status and Result[T] merge into each other freely; a Status source never
// sets a payload. "Has a payload" means "payload is not T's zero value", so
// choose payload types whose zero value is never a valid success.
//
// # Conversions
//
// There are no implicit conversions. Use Ok(v), As[T](s), WithPayload,
// Convert, ConvertWith and Result.ToStatus. Package statusmap builds mapped
// conversions on ConvertWith.
//
// # Templates and Catalogs
//
// A Template describes an Error with positional "{0}", "{1}" placeholders.
// Catalog maps enum-like keys to Templates statically; statusyaml loads a
// Catalog from YAML:
//
//	var catalog = xgxstatus.NewCatalog(map[Code]xgxstatus.Template{
//		NotFound: {Code: 404, Message: "Entity {0} not found"},
//	})
//	e, err := catalog.Error(NotFound, "user123") // "Entity user123 not found"
//
// # Tasks and Structured Join
//
// Task[T] is a one-shot completion cell: exactly one terminal transition,
// continuations fired once each, Done/Await for goroutine consumers. Go,
// GoValue and GoStatus run an operation on a goroutine and complete a Task
// with its outcome (a panic faults the Task). Gather and GatherResults run
// children concurrently and merge them in argument order.
//
// # Concurrency
//
// Status and Result are single-owner: build, merge and read them from one
// goroutine at a time. Task is safe for one producer and any number of
// consumers.
//
// # Formatting
//
// Error, Status and Result implement fmt.Formatter:
//   - `%v`, `%s`   → concise, single-line
//   - `%+v`        → verbose, multi-line (every Error's fields, faults with stacks)
//   - `%q`         → quoted concise form
//
// Err() exposes an outcome as a Go error for errors.Is/As interop; ErrorsOf
// converts any error (including joined errors) back into Errors.
//
// # Adapters
//
//   - statuszap: zap fields and fault logging
//   - statusmetrics: Prometheus counters for outcomes, errors and faults
//   - statusvalidate: validator/v10 failures as member-tagged Errors
//   - statusmap: mapstructure-backed payload conversion
//   - statusyaml: YAML error catalogs
package xgxstatus
